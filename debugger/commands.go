package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/riscv-emulator/iommu"
)

const helpText = `commands:
  decode <hex-word>          decode a 16/32-bit instruction word
  expand <hex-halfword>      expand a compressed instruction
  csr                        list IOMMU registers
  csr <name>                 read one IOMMU register
  csrw <name> <hex-value>    write one IOMMU register
  mem <hex-addr> [count]     dump memory double words
  memw <hex-addr> <hex-val>  write one memory double word
  translate <devid> <iova> [r|w|x]   run a translation request
  queues                     show queue pointers and status
  walk                       show the last directory walks
  process                    drain the IOMMU command queue
  history                    show command history
  help                       this text`

// Execute evaluates one command line and returns its output.
func (s *Session) Execute(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	s.remember(line)

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help", "?":
		return helpText, nil

	case "decode":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: decode <hex-word>")
		}
		word, err := parseHex(args[0], 32)
		if err != nil {
			return "", err
		}
		return s.DecodeWord(uint32(word)), nil

	case "expand":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: expand <hex-halfword>")
		}
		half, err := parseHex(args[0], 16)
		if err != nil {
			return "", err
		}
		expanded := s.decoder.ExpandCompressed(uint16(half))
		if expanded == 0 {
			return fmt.Sprintf("%#06x: illegal", half), nil
		}
		return fmt.Sprintf("%#06x -> %s", half, s.DecodeWord(expanded)), nil

	case "csr":
		if len(args) == 0 {
			return s.listCsrs(), nil
		}
		c, ok := s.mmu.CsrByName(args[0])
		if !ok {
			return "", fmt.Errorf("no register named %q", args[0])
		}
		return fmt.Sprintf("%-12s 0x%016x", c.Name(), s.mmu.ReadCsr(c.Number())), nil

	case "csrw":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: csrw <name> <hex-value>")
		}
		c, ok := s.mmu.CsrByName(args[0])
		if !ok {
			return "", fmt.Errorf("no register named %q", args[0])
		}
		val, err := parseHex(args[1], 64)
		if err != nil {
			return "", err
		}
		s.mmu.WriteCsr(c.Number(), val)
		return fmt.Sprintf("%-12s 0x%016x", c.Name(), s.mmu.ReadCsr(c.Number())), nil

	case "mem":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("usage: mem <hex-addr> [count]")
		}
		addr, err := parseHex(args[0], 64)
		if err != nil {
			return "", err
		}
		count := 1
		if len(args) == 2 {
			count, err = strconv.Atoi(args[1])
			if err != nil || count < 1 || count > 64 {
				return "", fmt.Errorf("bad count %q", args[1])
			}
		}
		var b strings.Builder
		for i := 0; i < count; i++ {
			v, _ := s.mem.Read(addr+uint64(i)*8, 8)
			fmt.Fprintf(&b, "%#018x: %#018x\n", addr+uint64(i)*8, v)
		}
		return strings.TrimRight(b.String(), "\n"), nil

	case "memw":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: memw <hex-addr> <hex-val>")
		}
		addr, err := parseHex(args[0], 64)
		if err != nil {
			return "", err
		}
		val, err := parseHex(args[1], 64)
		if err != nil {
			return "", err
		}
		s.mem.Write(addr, 8, val)
		return fmt.Sprintf("%#018x: %#018x", addr, val), nil

	case "translate":
		return s.runTranslate(args)

	case "queues":
		return s.queueStatus(), nil

	case "walk":
		return s.walkTrace(), nil

	case "process":
		s.mmu.ProcessCommandQueue()
		return s.queueStatus(), nil

	case "history":
		return strings.Join(s.History(), "\n"), nil
	}

	return "", fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Session) runTranslate(args []string) (string, error) {
	if len(args) < 2 || len(args) > 3 {
		return "", fmt.Errorf("usage: translate <devid> <iova> [r|w|x]")
	}
	devID, err := parseHex(args[0], 32)
	if err != nil {
		return "", err
	}
	iova, err := parseHex(args[1], 64)
	if err != nil {
		return "", err
	}
	typ := iommu.TtypeUntransRead
	if len(args) == 3 {
		switch args[2] {
		case "r":
			typ = iommu.TtypeUntransRead
		case "w":
			typ = iommu.TtypeUntransWrite
		case "x":
			typ = iommu.TtypeUntransExec
		default:
			return "", fmt.Errorf("bad access type %q", args[2])
		}
	}

	req := iommu.Request{DevID: uint32(devID), Iova: iova, Type: typ, Size: 4}
	pa, cause, ok := s.mmu.Translate(&req)
	if !ok {
		return fmt.Sprintf("fault: cause %d", cause), nil
	}
	return fmt.Sprintf("iova %#x -> pa %#x", iova, pa), nil
}

func (s *Session) listCsrs() string {
	var b strings.Builder
	names := []string{
		"capabilities", "fctl", "ddtp",
		"cqb", "cqh", "cqt", "fqb", "fqh", "fqt", "pqb", "pqh", "pqt",
		"cqcsr", "fqcsr", "pqcsr", "ipsr", "icvec",
	}
	for _, name := range names {
		c, ok := s.mmu.CsrByName(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-12s %#018x\n", name, s.mmu.ReadCsr(c.Number()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Session) queueStatus() string {
	var b strings.Builder
	cq := iommu.Cqcsr(s.mmu.ReadCsr(iommu.CsrCqcsr))
	fq := iommu.Fqcsr(s.mmu.ReadCsr(iommu.CsrFqcsr))
	pq := iommu.Pqcsr(s.mmu.ReadCsr(iommu.CsrPqcsr))

	fmt.Fprintf(&b, "cq: on=%v head=%d tail=%d ill=%v mf=%v to=%v\n",
		cq.Cqon(), s.mmu.ReadCsr(iommu.CsrCqh), s.mmu.ReadCsr(iommu.CsrCqt),
		cq.CmdIll(), cq.Cqmf(), cq.CmdTo())
	fmt.Fprintf(&b, "fq: on=%v head=%d tail=%d of=%v mf=%v\n",
		fq.Fqon(), s.mmu.ReadCsr(iommu.CsrFqh), s.mmu.ReadCsr(iommu.CsrFqt),
		fq.Fqof(), fq.Fqmf())
	fmt.Fprintf(&b, "pq: on=%v head=%d tail=%d of=%v mf=%v\n",
		pq.Pqon(), s.mmu.ReadCsr(iommu.CsrPqh), s.mmu.ReadCsr(iommu.CsrPqt),
		pq.Pqof(), pq.Pqmf())
	fmt.Fprintf(&b, "ats: pending invalidations=%v", s.mmu.HasPendingAtsInvals())
	return b.String()
}

func (s *Session) walkTrace() string {
	var b strings.Builder
	b.WriteString("device directory walk:\n")
	for _, e := range s.mmu.LastDeviceDirectoryWalk() {
		fmt.Fprintf(&b, "  %#018x: %#018x\n", e.Addr, e.Entry)
	}
	b.WriteString("process directory walk:\n")
	for _, e := range s.mmu.LastProcessDirectoryWalk() {
		fmt.Fprintf(&b, "  %#018x: %#018x\n", e.Addr, e.Entry)
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseHex accepts 0x-prefixed or bare hexadecimal.
func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, bits)
	if err != nil {
		return 0, fmt.Errorf("bad hex value %q", s)
	}
	return v, nil
}
