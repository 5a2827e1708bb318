// Package debugger provides an interactive inspection shell over the
// instruction decoder and the IOMMU model: a line-oriented command evaluator
// shared by the CLI, the TUI and the API server.
package debugger

import (
	"fmt"
	"sync"

	"github.com/lookbusy1344/riscv-emulator/iommu"
	"github.com/lookbusy1344/riscv-emulator/vm"
)

// SparseMemory is a byte-granular sparse host memory backing the IOMMU
// callbacks. Unwritten locations read as zero.
type SparseMemory struct {
	mu   sync.Mutex
	data map[uint64]byte
}

// NewSparseMemory returns an empty memory.
func NewSparseMemory() *SparseMemory {
	return &SparseMemory{data: make(map[uint64]byte)}
}

// Read reads size bytes at addr, little-endian.
func (m *SparseMemory) Read(addr uint64, size uint32) (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var v uint64
	for i := uint32(0); i < size; i++ {
		v |= uint64(m.data[addr+uint64(i)]) << (8 * i)
	}
	return v, true
}

// Write writes size bytes at addr, little-endian.
func (m *SparseMemory) Write(addr uint64, size uint32, data uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := uint32(0); i < size; i++ {
		m.data[addr+uint64(i)] = byte(data >> (8 * i))
	}
	return true
}

// Session owns a decoder and an IOMMU wired to a sparse memory, and keeps
// the command history. All methods are safe for use from one goroutine; the
// API server serializes access itself.
type Session struct {
	mu      sync.Mutex
	decoder *vm.Decoder
	mmu     *iommu.Iommu
	mem     *SparseMemory
	history []string
	histMax int
}

// NewSession builds a session. The IOMMU registers live at iommuBase and
// the stage-1/stage-2 walkers are identity mappings, which is what the
// inspection shell needs to poke at CSRs and directory structures.
func NewSession(rv64 bool, iommuBase, iommuSize, capabilities uint64, histMax int) *Session {
	mem := NewSparseMemory()
	mmu := iommu.NewWithCapabilities(iommuBase, iommuSize, capabilities)
	mmu.SetMemReadCb(mem.Read)
	mmu.SetMemWriteCb(mem.Write)
	mmu.SetStage1ConfigCb(func(mode, asid uint32, ppn uint64, sum bool) {})
	mmu.SetStage2ConfigCb(func(mode, gscid uint32, ppn uint64) {})
	mmu.SetStage1Cb(func(va uint64, priv iommu.PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return va, 0, true
	})
	mmu.SetStage2Cb(func(gpa uint64, priv iommu.PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return gpa, 0, true
	})
	mmu.SetStage2TrapInfoCb(func() (uint64, bool, bool) { return 0, false, false })

	if histMax <= 0 {
		histMax = 1000
	}
	return &Session{
		decoder: vm.NewDecoder(rv64),
		mmu:     mmu,
		mem:     mem,
		histMax: histMax,
	}
}

// Decoder returns the session decoder.
func (s *Session) Decoder() *vm.Decoder { return s.decoder }

// Iommu returns the session IOMMU.
func (s *Session) Iommu() *iommu.Iommu { return s.mmu }

// Memory returns the backing memory.
func (s *Session) Memory() *SparseMemory { return s.mem }

// History returns the evaluated command lines, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) remember(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, line)
	if len(s.history) > s.histMax {
		s.history = s.history[len(s.history)-s.histMax:]
	}
}

// DecodeWord decodes one instruction word and renders a summary.
func (s *Session) DecodeWord(word uint32) string {
	di := s.decoder.Decode(0, 0, word)
	if !di.IsValid() {
		return fmt.Sprintf("%#010x: illegal (size %d)", word, di.Size())
	}

	out := fmt.Sprintf("%#010x: %s", word, di.Name())
	for i := 0; i < di.OperandCount(); i++ {
		sep := " "
		if i > 0 {
			sep = ", "
		}
		switch di.IthOperandType(i) {
		case vm.OpIntReg:
			out += fmt.Sprintf("%sx%d", sep, di.IthOperand(i))
		case vm.OpFpReg:
			out += fmt.Sprintf("%sf%d", sep, di.IthOperand(i))
		case vm.OpVecReg:
			out += fmt.Sprintf("%sv%d", sep, di.IthOperand(i))
		case vm.OpCsReg:
			out += fmt.Sprintf("%scsr(%#x)", sep, di.IthOperand(i))
		case vm.OpImm:
			out += fmt.Sprintf("%s%d", sep, di.IthOperandAsInt(i))
		case vm.OpUimm:
			out += fmt.Sprintf("%s%d", sep, di.IthOperand(i))
		}
	}
	if di.IsVector() && di.IsMasked() {
		out += ", v0.t"
	}
	return out
}
