package iommu

import "testing"

func TestPmpRegionLookup(t *testing.T) {
	pm := NewPmpManager()
	pm.DefineRegion(0x1000, 0x1fff, PmpNapot, PmpRead|PmpWrite, 0, false)
	pm.DefineRegion(0x2000, 0x2fff, PmpNapot, PmpRead, 1, true)

	p := pm.GetPmp(0x1800)
	if p.Mode != PmpRead|PmpWrite || p.Index != 0 {
		t.Errorf("wrong region for 0x1800: %+v", p)
	}

	// Machine mode bypasses unlocked regions.
	if !pm.GetPmp(0x1800).IsWrite(PrivMachine) {
		t.Error("machine mode should bypass unlocked region")
	}
	// Locked regions are enforced even in machine mode.
	if pm.GetPmp(0x2800).IsWrite(PrivMachine) {
		t.Error("locked region must be enforced in machine mode")
	}
	if !pm.GetPmp(0x2800).IsRead(PrivMachine) {
		t.Error("locked region grants configured reads")
	}

	// No region: default denies supervisor access.
	if pm.GetPmp(0x9000).IsRead(PrivSupervisor) {
		t.Error("unmatched address must deny supervisor reads")
	}

	// Repeated lookups hit the fast-region cache and agree.
	for i := 0; i < 4; i++ {
		if p := pm.GetPmp(0x1800); p.Index != 0 {
			t.Fatalf("cached lookup diverged: %+v", p)
		}
	}
}

func TestPmpFirstMatchPriority(t *testing.T) {
	pm := NewPmpManager()
	// Overlapping regions: the first match wins.
	pm.DefineRegion(0x1000, 0x10ff, PmpNapot, PmpRead, 0, false)
	pm.DefineRegion(0x1000, 0x1fff, PmpNapot, PmpRead|PmpWrite, 1, false)

	if p := pm.GetPmp(0x1080); p.Index != 0 {
		t.Errorf("first region should win: %+v", p)
	}
	// Beyond the first region the second matches; the cached fast region
	// must not return the shadowed prefix.
	if p := pm.GetPmp(0x1800); p.Index != 1 {
		t.Errorf("second region should match 0x1800: %+v", p)
	}
	if p := pm.GetPmp(0x1080); p.Index != 0 {
		t.Errorf("first region should still win after caching: %+v", p)
	}
}

func TestUnpackMemoryProtection(t *testing.T) {
	pm := NewPmpManager()

	// NA4: cfg A field 2, address value is word address.
	mode, typ, locked, low, high := pm.UnpackMemoryProtection(0x13, 0x400, 0, false)
	if typ != PmpNa4 || locked || mode != PmpRead|PmpWrite {
		t.Fatalf("na4 unpack: %v %v %v", mode, typ, locked)
	}
	if low != 0x1000 || high != 0x1003 {
		t.Errorf("na4 range: %#x..%#x", low, high)
	}

	// NAPOT with one trailing one bit: 16-byte region.
	_, typ, _, low, high = pm.UnpackMemoryProtection(0x19, 0x401, 0, false)
	if typ != PmpNapot {
		t.Fatalf("napot unpack: %v", typ)
	}
	if low != 0x1000 || high != 0x100f {
		t.Errorf("napot range: %#x..%#x", low, high)
	}

	// TOR uses the preceding register as the base.
	_, typ, _, low, high = pm.UnpackMemoryProtection(0x0b, 0x800, 0x400, false)
	if typ != PmpTor {
		t.Fatalf("tor unpack: %v", typ)
	}
	if low != 0x1000 || high != 0x1fff {
		t.Errorf("tor range: %#x..%#x", low, high)
	}

	// TOR with a zero top is an empty range.
	_, typ, _, _, _ = pm.UnpackMemoryProtection(0x0b, 0, 0x400, false)
	if typ != PmpOff {
		t.Errorf("empty tor should be off: %v", typ)
	}

	// Off entries stay off.
	_, typ, _, _, _ = pm.UnpackMemoryProtection(0x03, 0x400, 0, false)
	if typ != PmpOff {
		t.Errorf("off unpack: %v", typ)
	}
}

func TestLegalizePmpcfg(t *testing.T) {
	pm := NewPmpManager()

	// A locked byte keeps its previous value.
	prev := uint64(0x80 | 0x0f)
	next := pm.LegalizePmpcfg(prev, 0x00)
	if next&0xff != prev&0xff {
		t.Errorf("locked byte must be preserved: %#x", next)
	}

	// The w=1,r=0 combination preserves the previous xwr field.
	next = pm.LegalizePmpcfg(0x01, 0x02)
	if next&7 != 1 {
		t.Errorf("w-without-r must preserve xwr: %#x", next)
	}

	// NA4 is rejected when the grain is non-zero.
	pm.SetGrain(1)
	next = pm.LegalizePmpcfg(0x00, uint64(PmpNa4)<<3|3)
	if next>>3&3 != 0 {
		t.Errorf("na4 must be rejected with grain > 0: %#x", next)
	}
	pm.SetGrain(0)

	// NA4 rejected when disabled.
	pm.EnableNa4(false)
	next = pm.LegalizePmpcfg(0x00, uint64(PmpNa4)<<3|3)
	if next>>3&3 != 0 {
		t.Errorf("na4 must be rejected when disabled: %#x", next)
	}

	// TOR rejected when disabled.
	pm.EnableNa4(true)
	pm.EnableTor(false)
	next = pm.LegalizePmpcfg(0x00, uint64(PmpTor)<<3|3)
	if next>>3&3 != 0 {
		t.Errorf("tor must be rejected when disabled: %#x", next)
	}
}

func TestPmpMmioRegs(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	const cfgAddr = testIommuBase + 0x1000
	const addrAddr = testIommuBase + 0x1400
	if !m.DefinePmpRegs(cfgAddr, 1, addrAddr, 8) {
		t.Fatal("DefinePmpRegs failed")
	}
	if m.DefinePmpRegs(cfgAddr, 2, addrAddr, 8) {
		t.Error("inconsistent counts must be rejected")
	}
	if !m.DefinePmpRegs(cfgAddr, 1, addrAddr, 8) {
		t.Fatal("re-define failed")
	}

	if !m.ContainsAddr(cfgAddr) || !m.ContainsAddr(addrAddr) {
		t.Error("PMP registers must be inside the IOMMU region")
	}

	// Program pmpaddr0 as NAPOT covering 0x1000..0x100f, read-only and
	// locked so the check applies to IOMMU (machine) accesses too.
	if !m.Write(addrAddr, 8, 0x401) {
		t.Fatal("pmpaddr write failed")
	}
	cfgVal := uint64(0x80) | uint64(PmpNapot)<<3 | uint64(PmpRead)
	if !m.Write(cfgAddr, 8, cfgVal) {
		t.Fatal("pmpcfg write failed")
	}

	if got, ok := m.Read(cfgAddr, 8); !ok || got != cfgVal {
		t.Errorf("pmpcfg readback: %#x", got)
	}

	// The region manager now denies IOMMU writes into the region.
	if m.pmpWritable(0x1000) {
		t.Error("read-only PMP region must deny writes")
	}
	if !m.pmpReadable(0x1000) {
		t.Error("read-only PMP region must allow reads")
	}
	// Machine-mode bypass applies outside any region only through unlocked
	// defaults; an unmatched address is denied for non-machine but the
	// IOMMU accesses as machine.
	if !m.pmpWritable(0x80000) {
		t.Error("unmatched addresses bypass for machine-mode accesses")
	}
}

func TestPmaRegs(t *testing.T) {
	m, _ := newTestIommu(t, 0)

	const cfgAddr = testIommuBase + 0x1800
	if !m.DefinePmaRegs(cfgAddr, 2) {
		t.Fatal("DefinePmaRegs failed")
	}

	// Region at 0x2000, one page, read-only idempotent.
	val := uint64(0x2000) | 1<<7 | 1 | 1<<3
	if !m.Write(cfgAddr, 8, val) {
		t.Fatal("pmacfg write failed")
	}
	pma := m.PmaManager().GetPma(0x2800)
	if !pma.Read || pma.Write {
		t.Errorf("pma attributes wrong: %+v", pma)
	}
	if m.pmaWritable(0x2800) {
		t.Error("read-only PMA region must deny writes")
	}

	// w=1,r=0 is legalized away.
	if !m.Write(cfgAddr+8, 8, uint64(0x3000)|1<<7|2) {
		t.Fatal("pmacfg write failed")
	}
	v, _ := m.Read(cfgAddr+8, 8)
	if v&3 == 2 {
		t.Error("w-without-r must be legalized")
	}
}
