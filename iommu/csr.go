package iommu

import "strconv"

// CsrNumber identifies a memory mapped IOMMU register.
type CsrNumber int

const (
	CsrCapabilities CsrNumber = iota
	CsrFctl
	CsrDdtp
	CsrCqb
	CsrCqh
	CsrCqt
	CsrFqb
	CsrFqh
	CsrFqt
	CsrPqb
	CsrPqh
	CsrPqt
	CsrCqcsr
	CsrFqcsr
	CsrPqcsr
	CsrIpsr
	CsrIocountovf
	CsrIocountinh
	CsrIohpmcycles
	CsrIohpmctr1 // ..CsrIohpmctr1+30
	CsrIohpmevt1 = CsrIohpmctr1 + 31
	CsrTrReqIova = CsrIohpmevt1 + 31
	CsrTrReqCtl  = CsrTrReqIova + 1
	CsrTrResponse = CsrTrReqCtl + 1
	CsrIommuQosid = CsrTrResponse + 1
	CsrIcvec      = CsrIommuQosid + 1
	CsrMsiAddr0   = CsrIcvec + 1 // addr/data/vec_ctl repeat 16 times
	CsrMsiData0   = CsrMsiAddr0 + 1
	CsrMsiVecCtl0 = CsrMsiData0 + 1
	csrCount      = CsrMsiAddr0 + CsrNumber(3*16)
)

// Csr is one control and status register: its placement in the MMIO window,
// its reset value and its write discipline masks. Bits covered by rw1c clear
// on writing one; bits covered by rw1s set on writing one; bits outside the
// write mask are preserved.
type Csr struct {
	name   string
	number CsrNumber
	offset uint32 // byte offset within the MMIO window
	size   uint32 // 4 or 8 bytes
	resetV uint64
	mask   uint64
	rw1c   uint64
	rw1s   uint64
	value  uint64
}

// Name returns the register name.
func (c *Csr) Name() string { return c.name }

// Number returns the register number.
func (c *Csr) Number() CsrNumber { return c.number }

// Offset returns the byte offset of the register in the MMIO window.
func (c *Csr) Offset() uint32 { return c.offset }

// Size returns the register size in bytes.
func (c *Csr) Size() uint32 { return c.size }

// Mask returns the write mask.
func (c *Csr) Mask() uint64 { return c.mask }

// Rw1cMask returns the write-one-to-clear mask.
func (c *Csr) Rw1cMask() uint64 { return c.rw1c }

// Rw1sMask returns the write-one-to-set mask.
func (c *Csr) Rw1sMask() uint64 { return c.rw1s }

// read returns the current value.
func (c *Csr) read() uint64 { return c.value }

// write applies the write discipline: the write mask, the RW1C mask and the
// RW1S mask. The RW1C and RW1S masks must not overlap.
func (c *Csr) write(newVal uint64) {
	// Where RW1C is 0 the effective value is the new value; where RW1C is 1
	// a written 1 clears and a written 0 preserves.
	eff := newVal &^ c.rw1c
	eff |= c.rw1c & c.value &^ newVal

	// Where RW1S is 1 a written 1 sets and a written 0 preserves.
	eff &^= c.rw1s
	eff |= c.rw1s & (newVal | c.value&^newVal)

	wm := c.mask | c.rw1c | c.rw1s
	c.value = c.value&^wm | eff&wm
}

// poke writes through the write mask ignoring the RW1C/RW1S disciplines.
func (c *Csr) poke(newVal uint64) {
	c.value = c.value&^c.mask | newVal&c.mask
}

// pokeRaw replaces the value outright. Used by the IOMMU for fields that are
// read-only to software.
func (c *Csr) pokeRaw(newVal uint64) { c.value = newVal }

func (c *Csr) reset() { c.value = c.resetV }

func (c *Csr) setReset(v uint64) {
	c.resetV = v
	c.value = v
}

func (m *Iommu) csrAt(n CsrNumber) *Csr { return &m.csrs[n] }

// ReadCsr returns the value of the given CSR. For a 4-byte CSR the top 32
// bits are zero.
func (m *Iommu) ReadCsr(n CsrNumber) uint64 {
	c := m.csrAt(n)
	v := c.read()
	if c.size == 4 {
		v &= 0xffffffff
	}
	return v
}

// CsrAddress returns the memory address of the given CSR.
func (m *Iommu) CsrAddress(n CsrNumber) uint64 {
	return m.addr + uint64(m.csrAt(n).offset)
}

// CsrByName looks a register up by name; the second result is false when no
// register has that name.
func (m *Iommu) CsrByName(name string) (*Csr, bool) {
	for i := range m.csrs {
		if m.csrs[i].name == name {
			return &m.csrs[i], true
		}
	}
	return nil, false
}

func (m *Iommu) defineCsr(n CsrNumber, name string, offset, size uint32,
	reset, mask, rw1c, rw1s uint64) {
	m.csrs[n] = Csr{name: name, number: n, offset: offset, size: size,
		resetV: reset, mask: mask, rw1c: rw1c, rw1s: rw1s, value: reset}
	for w := offset / 4; w < (offset+size)/4; w++ {
		m.wordToCsr[w] = int(n)
	}
}

// defineCsrs lays out the register file per the memory map: the CSRs occupy
// the first 1024 bytes of the window.
func (m *Iommu) defineCsrs() {
	m.csrs = make([]Csr, csrCount)
	m.wordToCsr = make([]int, m.size/4)
	for i := range m.wordToCsr {
		m.wordToCsr[i] = -1
	}

	const qbMask = 0x003ffffffffffc1f // log2szm1 + ppn

	m.defineCsr(CsrCapabilities, "capabilities", 0, 8, 0, 0, 0, 0)
	m.defineCsr(CsrFctl, "fctl", 8, 4, 0, 0x7, 0, 0)
	m.defineCsr(CsrDdtp, "ddtp", 16, 8, 0, 0x003ffffffffffc0f, 0, 0)
	m.defineCsr(CsrCqb, "cqb", 24, 8, 0, qbMask, 0, 0)
	m.defineCsr(CsrCqh, "cqh", 32, 4, 0, 0, 0, 0)
	m.defineCsr(CsrCqt, "cqt", 36, 4, 0, 0xffffffff, 0, 0)
	m.defineCsr(CsrFqb, "fqb", 40, 8, 0, qbMask, 0, 0)
	m.defineCsr(CsrFqh, "fqh", 48, 4, 0, 0xffffffff, 0, 0)
	m.defineCsr(CsrFqt, "fqt", 52, 4, 0, 0, 0, 0)
	m.defineCsr(CsrPqb, "pqb", 56, 8, 0, qbMask, 0, 0)
	m.defineCsr(CsrPqh, "pqh", 64, 4, 0, 0xffffffff, 0, 0)
	m.defineCsr(CsrPqt, "pqt", 68, 4, 0, 0, 0, 0)
	m.defineCsr(CsrCqcsr, "cqcsr", 72, 4, 0, 0x00000f03, 0xf00, 0)
	m.defineCsr(CsrFqcsr, "fqcsr", 76, 4, 0, 0x00000303, 0x300, 0)
	m.defineCsr(CsrPqcsr, "pqcsr", 80, 4, 0, 0x00000303, 0x300, 0)
	m.defineCsr(CsrIpsr, "ipsr", 84, 4, 0, 0xf, 0xf, 0)
	m.defineCsr(CsrIocountovf, "iocountovf", 88, 4, 0, 0, 0, 0)
	m.defineCsr(CsrIocountinh, "iocountinh", 92, 4, 0, 0xffffffff, 0, 0)
	m.defineCsr(CsrIohpmcycles, "iohpmcycles", 96, 8, 0, ^uint64(0), 0, 0)
	for i := 0; i < 31; i++ {
		m.defineCsr(CsrIohpmctr1+CsrNumber(i), hpmName("iohpmctr", i+1),
			uint32(104+8*i), 8, 0, ^uint64(0), 0, 0)
	}
	for i := 0; i < 31; i++ {
		m.defineCsr(CsrIohpmevt1+CsrNumber(i), hpmName("iohpmevt", i+1),
			uint32(352+8*i), 8, 0, ^uint64(0), 0, 0)
	}
	m.defineCsr(CsrTrReqIova, "tr_req_iova", 600, 8, 0, ^uint64(0xfff), 0, 0)
	m.defineCsr(CsrTrReqCtl, "tr_req_ctl", 608, 8, 0, 0xffffff01fffff00f, 0, trReqCtlGoBusy)
	m.defineCsr(CsrTrResponse, "tr_response", 616, 8, 0, 0, 0, 0)
	m.defineCsr(CsrIommuQosid, "iommu_qosid", 624, 4, 0, 0x0fff0fff, 0, 0)
	m.defineCsr(CsrIcvec, "icvec", 760, 8, 0, 0xffff, 0, 0)
	for i := 0; i < 16; i++ {
		base := CsrMsiAddr0 + CsrNumber(3*i)
		off := uint32(768 + 16*i)
		m.defineCsr(base, hpmName("msi_addr", i), off, 8, 0, 0x00fffffffffffffc, 0, 0)
		m.defineCsr(base+1, hpmName("msi_data", i), off+8, 4, 0, 0xffffffff, 0, 0)
		m.defineCsr(base+2, hpmName("msi_vec_ctl", i), off+12, 4, 0, 1, 0, 0)
	}
}

func hpmName(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// Read reads a memory mapped register. The size must be 4 or 8 and the
// address naturally aligned; a 4-byte read of an 8-byte register returns the
// selected half.
func (m *Iommu) Read(addr uint64, size uint32) (uint64, bool) {
	if size != 4 && size != 8 {
		return 0, false
	}
	if addr&uint64(size-1) != 0 {
		return 0, false
	}

	if addr >= m.addr && addr-m.addr < m.size {
		offset := addr - m.addr
		if offset >= 1024 {
			return 0, false
		}
		ix := m.wordToCsr[offset/4]
		if ix < 0 {
			return 0, false
		}
		c := &m.csrs[ix]
		if size == 8 && c.size == 4 {
			return 0, false
		}
		val := m.readCsrForMmio(c.number)
		if size == 4 && c.size == 8 {
			if offset%8 == 4 {
				val >>= 32
			}
			val &= 0xffffffff
		}
		return val, true
	}

	if v, ok := m.pmp.read(addr, size); ok {
		return v, true
	}
	return m.pma.read(addr, size)
}

// readCsrForMmio returns the CSR value as seen through the MMIO window,
// deriving the read-only registers that are computed on access.
func (m *Iommu) readCsrForMmio(n CsrNumber) uint64 {
	if n == CsrIocountovf {
		return m.readIocountovf()
	}
	return m.ReadCsr(n)
}

// Write writes a memory mapped register. The size must be 4 or 8 and the
// address naturally aligned. A 4-byte write to an 8-byte register updates
// the selected half and preserves the other.
func (m *Iommu) Write(addr uint64, size uint32, data uint64) bool {
	if size != 4 && size != 8 {
		return false
	}
	if addr&uint64(size-1) != 0 {
		return false
	}

	if addr >= m.addr && addr-m.addr < m.size {
		offset := addr - m.addr
		if offset >= 1024 {
			return false
		}
		ix := m.wordToCsr[offset/4]
		if ix < 0 {
			return false
		}
		c := &m.csrs[ix]
		if size == 8 && c.size == 4 {
			return false
		}
		if size == 4 && c.size == 8 {
			// Merge with the preserved half.
			cur := c.read()
			if offset%8 == 4 {
				data = cur&0x00000000ffffffff | data<<32
			} else {
				data = cur&0xffffffff00000000 | data&0xffffffff
			}
		}
		m.WriteCsr(c.number, data)
		return true
	}

	if m.pmp.write(m, addr, size, data) {
		return true
	}
	return m.pma.write(m, addr, size, data)
}

// WriteCsr writes the given CSR by number, honoring the per-register write
// behavior (busy gates, enable edges, side effects) on top of the mask and
// RW1C/RW1S disciplines.
func (m *Iommu) WriteCsr(n CsrNumber, data uint64) {
	caps := m.capabilities()

	switch {
	case n == CsrCapabilities || n == CsrCqh || n == CsrFqt || n == CsrPqt ||
		n == CsrTrResponse || n == CsrIocountovf:
		return // read-only

	case n == CsrFctl:
		m.csrAt(n).write(data)

	case n == CsrDdtp:
		m.writeDdtp(data)

	case n == CsrCqb:
		m.csrAt(n).write(data)
		// Reset the tail within the new size mask.
		szMask := uint64(Qbase(m.ReadCsr(CsrCqb)).Capacity() - 1)
		m.csrAt(CsrCqt).pokeRaw(m.ReadCsr(CsrCqt) & szMask)

	case n == CsrFqb:
		m.csrAt(n).write(data)
		szMask := uint64(Qbase(m.ReadCsr(CsrFqb)).Capacity() - 1)
		m.csrAt(CsrFqh).pokeRaw(m.ReadCsr(CsrFqh) & szMask)

	case n == CsrPqb:
		if !caps.Ats() {
			return
		}
		m.csrAt(n).write(data)
		szMask := uint64(Qbase(m.ReadCsr(CsrPqb)).Capacity() - 1)
		m.csrAt(CsrPqh).pokeRaw(m.ReadCsr(CsrPqh) & szMask)

	case n == CsrCqt:
		szMask := uint64(Qbase(m.ReadCsr(CsrCqb)).Capacity() - 1)
		m.csrAt(n).pokeRaw(data & szMask)
		m.ProcessCommandQueue()

	case n == CsrFqh:
		szMask := uint64(Qbase(m.ReadCsr(CsrFqb)).Capacity() - 1)
		m.csrAt(n).pokeRaw(data & szMask)

	case n == CsrPqh:
		if !caps.Ats() {
			return
		}
		szMask := uint64(Qbase(m.ReadCsr(CsrPqb)).Capacity() - 1)
		m.csrAt(n).pokeRaw(data & szMask)

	case n == CsrCqcsr:
		m.writeCqcsr(data)

	case n == CsrFqcsr:
		m.writeFqcsr(data)

	case n == CsrPqcsr:
		m.writePqcsr(data)

	case n == CsrIpsr:
		m.writeIpsr(data)

	case n == CsrIocountinh || n == CsrIohpmcycles ||
		(n >= CsrIohpmctr1 && n < CsrIohpmctr1+31) ||
		(n >= CsrIohpmevt1 && n < CsrIohpmevt1+31):
		if !caps.Hpm() {
			return
		}
		m.csrAt(n).write(data)

	case n == CsrTrReqIova:
		if !caps.Debug() || TrReqCtl(m.ReadCsr(CsrTrReqCtl)).GoBusy() {
			return
		}
		m.csrAt(n).write(data)

	case n == CsrTrReqCtl:
		if !caps.Debug() {
			return
		}
		m.writeTrReqCtl(data)

	case n == CsrIommuQosid:
		if !caps.Qosid() {
			return
		}
		m.csrAt(n).write(data)

	case n == CsrIcvec:
		m.csrAt(n).write(data)

	case n >= CsrMsiAddr0 && n < csrCount:
		if caps.Igs() == IgsWsi {
			return // MSI configuration is ignored in WSI-only mode
		}
		m.csrAt(n).write(data)

	default:
		m.csrAt(n).write(data)
	}
}

// pokeCsr updates a CSR bypassing the RW1C/RW1S disciplines and the special
// write behavior. Used by the IOMMU itself for hardware-updated fields.
func (m *Iommu) pokeCsr(n CsrNumber, data uint64) {
	m.csrAt(n).pokeRaw(data)
}

func (m *Iommu) writeDdtp(data uint64) {
	cur := m.ReadCsr(CsrDdtp)
	mode := bits(data, 3, 0)
	if mode > uint64(DdtpLevel3) {
		mode = bits(cur, 3, 0) // out of range: keep the previous mode
	}
	busy := cur & 0x10 // busy is read-only to software
	next := data&0x003ffffffffffc00 | mode | busy
	m.csrAt(CsrDdtp).pokeRaw(next)
}

func (m *Iommu) writeCqcsr(data uint64) {
	cur := Cqcsr(m.ReadCsr(CsrCqcsr))
	if cur.Busy() {
		return
	}
	next := Cqcsr(data)
	out := uint64(cur)

	switch {
	case !cur.Cqen() && next.Cqen(): // enable rising edge
		m.csrAt(CsrCqh).pokeRaw(0)
		out &^= cqcsrCmdIll | cqcsrCmdTo | cqcsrCqmf | cqcsrFenceWIp
		out |= cqcsrCqon
	case cur.Cqen() && !next.Cqen():
		out &^= cqcsrCqon
	}

	out = out&^uint64(cqcsrCqen|cqcsrCie) | uint64(data)&(cqcsrCqen|cqcsrCie)
	for _, b := range []uint64{cqcsrCqmf, cqcsrCmdTo, cqcsrCmdIll, cqcsrFenceWIp} {
		if uint64(data)&b != 0 {
			out &^= b // RW1C
		}
	}
	m.csrAt(CsrCqcsr).pokeRaw(out)
}

func (m *Iommu) writeFqcsr(data uint64) {
	cur := Fqcsr(m.ReadCsr(CsrFqcsr))
	if cur.Busy() {
		return
	}
	next := Fqcsr(data)
	out := uint64(cur)

	switch {
	case !cur.Fqen() && next.Fqen():
		m.csrAt(CsrFqt).pokeRaw(0)
		out &^= fqcsrFqof | fqcsrFqmf
		out |= fqcsrFqon
	case cur.Fqen() && !next.Fqen():
		out &^= fqcsrFqon
	}

	out = out&^uint64(fqcsrFqen|fqcsrFie) | uint64(data)&(fqcsrFqen|fqcsrFie)
	for _, b := range []uint64{fqcsrFqmf, fqcsrFqof} {
		if uint64(data)&b != 0 {
			out &^= b
		}
	}
	m.csrAt(CsrFqcsr).pokeRaw(out)
}

func (m *Iommu) writePqcsr(data uint64) {
	if !m.capabilities().Ats() {
		return
	}
	cur := Pqcsr(m.ReadCsr(CsrPqcsr))
	if cur.Busy() {
		return
	}
	next := Pqcsr(data)
	out := uint64(cur)

	switch {
	case !cur.Pqen() && next.Pqen():
		m.csrAt(CsrPqt).pokeRaw(0)
		out &^= pqcsrPqof | pqcsrPqmf
		out |= pqcsrPqon
	case cur.Pqen() && !next.Pqen():
		out &^= pqcsrPqon
	}

	out = out&^uint64(pqcsrPqen|pqcsrPie) | uint64(data)&(pqcsrPqen|pqcsrPie)
	for _, b := range []uint64{pqcsrPqmf, pqcsrPqof} {
		if uint64(data)&b != 0 {
			out &^= b
		}
	}
	m.csrAt(CsrPqcsr).pokeRaw(out)
}

func (m *Iommu) writeIpsr(data uint64) {
	cur := Ipsr(m.ReadCsr(CsrIpsr))
	next := Ipsr(data)
	icvec := Icvec(m.ReadCsr(CsrIcvec))

	// With wired interrupts, clearing a pending bit deasserts its wire.
	if m.WiredInterrupts() && m.signalWiredInterrupt != nil {
		if next.Cip() && cur.Cip() {
			m.signalWiredInterrupt(icvec.Civ(), false)
		}
		if next.Fip() && cur.Fip() {
			m.signalWiredInterrupt(icvec.Fiv(), false)
		}
		if next.Pip() && cur.Pip() {
			m.signalWiredInterrupt(icvec.Piv(), false)
		}
		if next.Pmip() && cur.Pmip() {
			m.signalWiredInterrupt(icvec.Pmiv(), false)
		}
	}

	m.csrAt(CsrIpsr).write(data) // bits 0..3 are RW1C

	m.updateIpsr(ipsrEventNone) // sticky causes may re-assert
}

func (m *Iommu) writeTrReqCtl(data uint64) {
	cur := TrReqCtl(m.ReadCsr(CsrTrReqCtl))
	if cur.GoBusy() {
		return
	}
	m.csrAt(CsrTrReqCtl).write(data)
	if TrReqCtl(m.ReadCsr(CsrTrReqCtl)).GoBusy() {
		m.processDebugTranslation()
	}
}
