package iommu

import "testing"

// Write discipline: for every CSR with write mask M, RW1C mask C and RW1S
// mask S, a write of v leaves bit b cleared if b∈C and v[b]=1, set if b∈S
// and v[b]=1, and untouched if b is outside M∪C∪S.
func TestCsrWriteDiscipline(t *testing.T) {
	var c Csr
	c.mask = 0x00ff
	c.rw1c = 0x0f00
	c.rw1s = 0xf000
	c.value = 0xaaaa

	old := c.value
	v := uint64(0x5a5a)
	c.write(v)

	for b := uint(0); b < 16; b++ {
		bitOf := func(x uint64) uint64 { return x >> b & 1 }
		got := bitOf(c.value)
		switch {
		case c.rw1c>>b&1 == 1 && bitOf(v) == 1:
			if got != 0 {
				t.Errorf("bit %d: rw1c write of 1 should clear", b)
			}
		case c.rw1c>>b&1 == 1:
			if got != bitOf(old) {
				t.Errorf("bit %d: rw1c write of 0 should preserve", b)
			}
		case c.rw1s>>b&1 == 1 && bitOf(v) == 1:
			if got != 1 {
				t.Errorf("bit %d: rw1s write of 1 should set", b)
			}
		case c.rw1s>>b&1 == 1:
			if got != bitOf(old) {
				t.Errorf("bit %d: rw1s write of 0 should preserve", b)
			}
		case c.mask>>b&1 == 1:
			if got != bitOf(v) {
				t.Errorf("bit %d: plain writable bit should take the new value", b)
			}
		default:
			if got != bitOf(old) {
				t.Errorf("bit %d: unwritable bit should be preserved", b)
			}
		}
	}
}

func TestCsrLayout(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	offsets := []struct {
		n      CsrNumber
		name   string
		offset uint32
		size   uint32
	}{
		{CsrCapabilities, "capabilities", 0, 8},
		{CsrFctl, "fctl", 8, 4},
		{CsrDdtp, "ddtp", 16, 8},
		{CsrCqb, "cqb", 24, 8},
		{CsrCqh, "cqh", 32, 4},
		{CsrCqt, "cqt", 36, 4},
		{CsrFqb, "fqb", 40, 8},
		{CsrFqh, "fqh", 48, 4},
		{CsrFqt, "fqt", 52, 4},
		{CsrPqb, "pqb", 56, 8},
		{CsrPqh, "pqh", 64, 4},
		{CsrPqt, "pqt", 68, 4},
		{CsrCqcsr, "cqcsr", 72, 4},
		{CsrFqcsr, "fqcsr", 76, 4},
		{CsrPqcsr, "pqcsr", 80, 4},
		{CsrIpsr, "ipsr", 84, 4},
		{CsrIocountovf, "iocountovf", 88, 4},
		{CsrIocountinh, "iocountinh", 92, 4},
		{CsrIohpmcycles, "iohpmcycles", 96, 8},
		{CsrTrReqIova, "tr_req_iova", 600, 8},
		{CsrTrReqCtl, "tr_req_ctl", 608, 8},
		{CsrTrResponse, "tr_response", 616, 8},
		{CsrIommuQosid, "iommu_qosid", 624, 4},
		{CsrIcvec, "icvec", 760, 8},
		{CsrMsiAddr0, "msi_addr0", 768, 8},
		{CsrMsiData0, "msi_data0", 776, 4},
		{CsrMsiVecCtl0, "msi_vec_ctl0", 780, 4},
	}

	for _, tt := range offsets {
		c := m.csrAt(tt.n)
		if c.Name() != tt.name {
			t.Errorf("csr %d: name %q, want %q", tt.n, c.Name(), tt.name)
		}
		if c.Offset() != tt.offset {
			t.Errorf("%s: offset %d, want %d", tt.name, c.Offset(), tt.offset)
		}
		if c.Size() != tt.size {
			t.Errorf("%s: size %d, want %d", tt.name, c.Size(), tt.size)
		}
		if c.Rw1cMask()&c.Rw1sMask() != 0 {
			t.Errorf("%s: rw1c and rw1s masks overlap", tt.name)
		}
	}

	if c, ok := m.CsrByName("ddtp"); !ok || c.Number() != CsrDdtp {
		t.Error("CsrByName(ddtp) failed")
	}
}

func TestCapabilitiesReadOnly(t *testing.T) {
	m, _ := newTestIommu(t, 0xdead0000)
	m.Write(testIommuBase, 8, 0xffffffffffffffff)
	if m.ReadCsr(CsrCapabilities) != 0xdead0000 {
		t.Error("capabilities must be read-only through MMIO")
	}
}

func TestHalfWordAccess(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	// ddtp is 8 bytes at offset 16; write the halves separately.
	addr := m.CsrAddress(CsrDdtp)
	if !m.Write(addr, 4, 0xfffffc01) { // low half: mode=1 (Bare) + ppn bits
		t.Fatal("low half write failed")
	}
	if !m.Write(addr+4, 4, 0x000fffff) { // high half of ppn
		t.Fatal("high half write failed")
	}

	full := m.ReadCsr(CsrDdtp)
	if Ddtp(full).Mode() != DdtpBare {
		t.Errorf("mode lost on half write: %#x", full)
	}
	if Ddtp(full).Ppn() != 0x3ffffffffff {
		t.Errorf("ppn mismatch: %#x", Ddtp(full).Ppn())
	}

	// 4-byte reads return the selected half.
	lo, ok := m.Read(addr, 4)
	if !ok || lo != full&0xffffffff {
		t.Errorf("low half read: %#x", lo)
	}
	hi, ok := m.Read(addr+4, 4)
	if !ok || hi != full>>32 {
		t.Errorf("high half read: %#x", hi)
	}

	// Misaligned and oversized accesses fail.
	if _, ok := m.Read(addr+2, 4); ok {
		t.Error("misaligned read should fail")
	}
	if _, ok := m.Read(m.CsrAddress(CsrFctl), 8); ok {
		t.Error("8-byte read of a 4-byte register should fail")
	}
	if m.Write(addr+1, 8, 0) {
		t.Error("misaligned write should fail")
	}
}

func TestDdtpModeRevert(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	m.WriteCsr(CsrDdtp, uint64(DdtpLevel2))
	if Ddtp(m.ReadCsr(CsrDdtp)).Mode() != DdtpLevel2 {
		t.Fatal("mode write failed")
	}

	// An out-of-range mode keeps the previous one.
	m.WriteCsr(CsrDdtp, 9)
	if Ddtp(m.ReadCsr(CsrDdtp)).Mode() != DdtpLevel2 {
		t.Error("out-of-range mode should revert to the previous mode")
	}
}

func TestQueueBaseResetsPointer(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	// Grow the command queue so large tail values are representable.
	m.WriteCsr(CsrCqb, 0x10<<10|7) // capacity 256
	m.pokeCsr(CsrCqt, 0xf0)

	// Shrinking the queue clips the tail to the new size mask.
	m.WriteCsr(CsrCqb, 0x10<<10|1) // capacity 4
	if got := m.ReadCsr(CsrCqt); got != 0xf0&3 {
		t.Errorf("cqt not masked on cqb write: %#x", got)
	}
}

func TestCqcsrEnableEdges(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	// Seed sticky error bits and a stale head.
	m.pokeCsr(CsrCqcsr, cqcsrCmdIll|cqcsrCqmf)
	m.pokeCsr(CsrCqh, 3)

	// Rising edge clears transients, resets the head and sets cqon.
	m.WriteCsr(CsrCqcsr, cqcsrCqen)
	cq := Cqcsr(m.ReadCsr(CsrCqcsr))
	if !cq.Cqon() || !cq.Cqen() {
		t.Error("enable edge should set cqen and cqon")
	}
	if cq.CmdIll() || cq.Cqmf() {
		t.Error("enable edge should clear transient errors")
	}
	if m.ReadCsr(CsrCqh) != 0 {
		t.Error("enable edge should reset cqh")
	}

	// Falling edge clears cqon.
	m.WriteCsr(CsrCqcsr, 0)
	cq = Cqcsr(m.ReadCsr(CsrCqcsr))
	if cq.Cqon() || cq.Cqen() {
		t.Error("disable edge should clear cqen and cqon")
	}

	// Busy gates all writes.
	m.pokeCsr(CsrCqcsr, cqcsrBusy)
	m.WriteCsr(CsrCqcsr, cqcsrCqen)
	if Cqcsr(m.ReadCsr(CsrCqcsr)).Cqen() {
		t.Error("busy must gate cqcsr writes")
	}
}

func TestIpsrClearDeassertsWire(t *testing.T) {
	m, _ := newTestIommu(t, uint64(IgsWsi)<<28)

	type event struct {
		vector uint32
		assert bool
	}
	var events []event
	m.SetWiredInterruptCb(func(vector uint32, assert bool) {
		events = append(events, event{vector, assert})
	})

	m.pokeCsr(CsrIpsr, ipsrFip)
	m.WriteCsr(CsrIpsr, ipsrFip)
	if Ipsr(m.ReadCsr(CsrIpsr)).Fip() {
		t.Error("writing 1 should clear the RW1C fip bit")
	}
	found := false
	for _, e := range events {
		if !e.assert {
			found = true
		}
	}
	if !found {
		t.Error("clearing fip should deassert the wire")
	}
}

func TestHpmGatedByCapability(t *testing.T) {
	m, _ := newTestIommu(t, 0) // no HPM capability
	m.WriteCsr(CsrIocountinh, 0xffffffff)
	if m.ReadCsr(CsrIocountinh) != 0 {
		t.Error("iocountinh must be write-ignored without the HPM capability")
	}

	m, _ = newTestIommu(t, 1<<30) // HPM capability
	m.WriteCsr(CsrIocountinh, 0x55)
	if m.ReadCsr(CsrIocountinh) != 0x55 {
		t.Error("iocountinh must be writable with the HPM capability")
	}
}

func TestMsiCfgTblGatedByIgs(t *testing.T) {
	m, _ := newTestIommu(t, uint64(IgsWsi)<<28)
	m.WriteCsr(CsrMsiAddr0, 0x1000)
	if m.ReadCsr(CsrMsiAddr0) != 0 {
		t.Error("msi_addr writes must be ignored in WSI-only mode")
	}

	m, _ = newTestIommu(t, uint64(IgsMsi)<<28)
	m.WriteCsr(CsrMsiAddr0, 0x1004)
	if m.ReadCsr(CsrMsiAddr0) != 0x1004 {
		t.Errorf("msi_addr write lost: %#x", m.ReadCsr(CsrMsiAddr0))
	}
	// The low two address bits are reserved.
	m.WriteCsr(CsrMsiAddr0, 0x1003)
	if m.ReadCsr(CsrMsiAddr0)&3 != 0 {
		t.Error("msi_addr low bits must read zero")
	}
}

func TestIcvecFields(t *testing.T) {
	m, _ := newTestIommu(t, 0)
	m.WriteCsr(CsrIcvec, 0x4321)
	ic := Icvec(m.ReadCsr(CsrIcvec))
	if ic.Civ() != 1 || ic.Fiv() != 2 || ic.Pmiv() != 3 || ic.Piv() != 4 {
		t.Errorf("icvec fields wrong: %#x", uint64(ic))
	}
}

func TestDebugTranslationInterface(t *testing.T) {
	caps := uint64(1) << 31 // debug capability
	m, _ := newTestIommu(t, caps)

	// Bare mode: the translation succeeds with pa == iova.
	m.WriteCsr(CsrDdtp, uint64(DdtpBare))
	m.WriteCsr(CsrTrReqIova, 0x5000)
	// NW=1 (read), go_busy=1.
	m.WriteCsr(CsrTrReqCtl, 1<<3|trReqCtlGoBusy)

	ctl := TrReqCtl(m.ReadCsr(CsrTrReqCtl))
	if ctl.GoBusy() {
		t.Error("go_busy must self-clear after the translation")
	}
	resp := m.ReadCsr(CsrTrResponse)
	if resp&1 != 0 {
		t.Error("translation should not fault in Bare mode")
	}
	if ppn := resp >> 10 & 0xfffffffffff; ppn != 0x5 {
		t.Errorf("expected ppn 0x5, got %#x", ppn)
	}

	// Without the debug capability the interface is inert.
	m2, _ := newTestIommu(t, 0)
	m2.WriteCsr(CsrTrReqCtl, trReqCtlGoBusy)
	if m2.ReadCsr(CsrTrReqCtl) != 0 {
		t.Error("tr_req_ctl must be write-ignored without the debug capability")
	}
}
