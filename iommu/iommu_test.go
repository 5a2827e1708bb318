package iommu

import (
	"testing"
)

// testMemory is a sparse byte-addressable memory backing the IOMMU callbacks
// in tests.
type testMemory struct {
	data map[uint64]byte
	// Addresses that fail reads or writes, to provoke access faults.
	badRead  map[uint64]bool
	badWrite map[uint64]bool
}

func newTestMemory() *testMemory {
	return &testMemory{
		data:     make(map[uint64]byte),
		badRead:  make(map[uint64]bool),
		badWrite: make(map[uint64]bool),
	}
}

func (m *testMemory) read(addr uint64, size uint32) (uint64, bool) {
	if m.badRead[addr] {
		return 0, false
	}
	var v uint64
	for i := uint32(0); i < size; i++ {
		v |= uint64(m.data[addr+uint64(i)]) << (8 * i)
	}
	return v, true
}

func (m *testMemory) write(addr uint64, size uint32, data uint64) bool {
	if m.badWrite[addr] {
		return false
	}
	for i := uint32(0); i < size; i++ {
		m.data[addr+uint64(i)] = byte(data >> (8 * i))
	}
	return true
}

func (m *testMemory) writeDword(addr, val uint64) {
	m.write(addr, 8, val)
}

func (m *testMemory) readDword(addr uint64) uint64 {
	v, _ := m.read(addr, 8)
	return v
}

const testIommuBase = 0x1000_0000

// newTestIommu builds an IOMMU wired to a fresh memory model with identity
// stage-1/stage-2 translation.
func newTestIommu(t *testing.T, capabilities uint64) (*Iommu, *testMemory) {
	t.Helper()
	mem := newTestMemory()
	m := NewWithCapabilities(testIommuBase, 4096, capabilities)
	m.SetMemReadCb(mem.read)
	m.SetMemWriteCb(mem.write)
	m.SetStage1ConfigCb(func(mode, asid uint32, ppn uint64, sum bool) {})
	m.SetStage2ConfigCb(func(mode, gscid uint32, ppn uint64) {})
	m.SetStage1Cb(func(va uint64, priv PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return va, 0, true
	})
	m.SetStage2Cb(func(gpa uint64, priv PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return gpa, 0, true
	})
	m.SetStage2TrapInfoCb(func() (uint64, bool, bool) { return 0, false, false })
	return m, mem
}

// enableFaultQueue points the fault queue at the given page and enables it.
func enableFaultQueue(m *Iommu, ppn uint64, log2szm1 uint32) {
	m.WriteCsr(CsrFqb, ppn<<10|uint64(log2szm1))
	m.WriteCsr(CsrFqcsr, fqcsrFqen)
}

// enableCommandQueue points the command queue at the given page and enables
// it.
func enableCommandQueue(m *Iommu, ppn uint64, log2szm1 uint32) {
	m.WriteCsr(CsrCqb, ppn<<10|uint64(log2szm1))
	m.WriteCsr(CsrCqcsr, cqcsrCqen)
}

func TestContainsAddr(t *testing.T) {
	m, _ := newTestIommu(t, 0)
	if !m.ContainsAddr(testIommuBase) {
		t.Error("base address should be contained")
	}
	if !m.ContainsAddr(testIommuBase + 4095) {
		t.Error("last window byte should be contained")
	}
	if m.ContainsAddr(testIommuBase + 4096) {
		t.Error("address past the window should not be contained")
	}
	if m.ContainsAddr(testIommuBase - 1) {
		t.Error("address before the window should not be contained")
	}
}

func TestByteSwap(t *testing.T) {
	if got := byteSwap(0x0123456789abcdef); got != 0xefcdab8967452301 {
		t.Errorf("byteSwap: got %#x", got)
	}
}

func TestWiredInterruptsModes(t *testing.T) {
	// WSI-only: always wired, fctl.wsi reset to 1.
	m, _ := newTestIommu(t, uint64(IgsWsi)<<28)
	if !m.WiredInterrupts() {
		t.Error("WSI-only mode must use wired interrupts")
	}
	if !Fctl(m.ReadCsr(CsrFctl)).Wsi() {
		t.Error("fctl.wsi must reset to 1 in WSI-only mode")
	}

	// MSI-only: never wired and wsi not writable.
	m, _ = newTestIommu(t, uint64(IgsMsi)<<28)
	if m.WiredInterrupts() {
		t.Error("MSI-only mode must not use wired interrupts")
	}
	m.WriteCsr(CsrFctl, 2)
	if Fctl(m.ReadCsr(CsrFctl)).Wsi() {
		t.Error("fctl.wsi must be hardwired in MSI-only mode")
	}

	// Both: follows fctl.wsi, which is writable.
	m, _ = newTestIommu(t, uint64(IgsBoth)<<28)
	if m.WiredInterrupts() {
		t.Error("Both mode defaults to MSI")
	}
	m.WriteCsr(CsrFctl, 2)
	if !m.WiredInterrupts() {
		t.Error("fctl.wsi should select wired interrupts in Both mode")
	}
}
