package iommu

import mathbits "math/bits"

// Physical memory protection. Regions are word aligned; lookups return the
// first matching region, falling back to a no-access default.

// PmpType is the address matching mode of a PMP entry.
type PmpType uint8

const (
	PmpOff PmpType = iota
	PmpTor
	PmpNa4
	PmpNapot
)

// PmpMode is the access permission bits of a PMP entry.
type PmpMode uint8

const (
	PmpNone  PmpMode = 0
	PmpRead  PmpMode = 1
	PmpWrite PmpMode = 2
	PmpExec  PmpMode = 4
)

// Pmp is the protection attached to a region of the address space.
type Pmp struct {
	Mode   PmpMode
	Type   PmpType
	Locked bool
	Index  uint32 // index of the defining PMPADDR register
}

// IsRead reports whether a load is allowed at the given privilege. Machine
// mode bypasses unlocked entries.
func (p Pmp) IsRead(mode PrivilegeMode) bool {
	if mode == PrivMachine && !p.Locked {
		return true
	}
	return p.Mode&PmpRead != 0
}

// IsWrite reports whether a store is allowed at the given privilege.
func (p Pmp) IsWrite(mode PrivilegeMode) bool {
	if mode == PrivMachine && !p.Locked {
		return true
	}
	return p.Mode&PmpWrite != 0
}

// IsExec reports whether a fetch is allowed at the given privilege.
func (p Pmp) IsExec(mode PrivilegeMode) bool {
	if mode == PrivMachine && !p.Locked {
		return true
	}
	return p.Mode&PmpExec != 0
}

type pmpRegion struct {
	first, last uint64
	pmp         Pmp
}

// PmpManager maps addresses to protection regions. A one-entry cache of the
// last matched region accelerates streaming accesses.
type PmpManager struct {
	regions []pmpRegion

	fastValid  bool
	fastFirst  uint64
	fastLast   uint64
	fastRegion pmpRegion

	enabled    bool
	torEnabled bool
	na4Enabled bool

	grain uint // G: log2(grain) - 2
}

// NewPmpManager returns a manager with TOR and NA4 enabled and no regions.
func NewPmpManager() *PmpManager {
	return &PmpManager{torEnabled: true, na4Enabled: true}
}

// Reset removes all regions.
func (pm *PmpManager) Reset() {
	pm.regions = pm.regions[:0]
	pm.fastValid = false
}

// Enable turns enforcement on or off.
func (pm *PmpManager) Enable(flag bool) { pm.enabled = flag }

// IsEnabled reports whether enforcement is on.
func (pm *PmpManager) IsEnabled() bool { return pm.enabled }

// EnableTor enables or disables top-of-range matching.
func (pm *PmpManager) EnableTor(flag bool) { pm.torEnabled = flag }

// EnableNa4 enables or disables NA4 matching.
func (pm *PmpManager) EnableNa4(flag bool) { pm.na4Enabled = flag }

// SetGrain sets the G parameter; the grain size is 2^(G+2) bytes.
func (pm *PmpManager) SetGrain(g uint) { pm.grain = g }

// Grain returns the G parameter.
func (pm *PmpManager) Grain() uint { return pm.grain }

// DefineRegion appends a region covering [addr0, addr1] (word aligned).
func (pm *PmpManager) DefineRegion(addr0, addr1 uint64, typ PmpType, mode PmpMode,
	index uint32, locked bool) {
	addr0 = addr0 >> 2 << 2
	addr1 = addr1 >> 2 << 2
	pm.regions = append(pm.regions, pmpRegion{addr0, addr1,
		Pmp{Mode: mode, Type: typ, Locked: locked, Index: index}})
	pm.fastValid = false
}

// GetPmp returns the protection of the word containing addr, or a no-access
// value if no region matches.
func (pm *PmpManager) GetPmp(addr uint64) Pmp {
	addr = addr >> 2 << 2
	if pm.fastValid && addr >= pm.fastFirst && addr <= pm.fastLast {
		return pm.fastRegion.pmp
	}
	for ix, region := range pm.regions {
		if addr >= region.first && addr <= region.last {
			pm.updateCachedRegion(region, ix)
			return region.pmp
		}
	}
	return Pmp{}
}

// updateCachedRegion remembers the part of the matched region that lies above
// the last address of every higher-priority region ending at or after its
// start, so no cached address is shadowed.
func (pm *PmpManager) updateCachedRegion(region pmpRegion, ix int) {
	first, last := region.first, region.last
	for i := 0; i < ix; i++ {
		if first <= pm.regions[i].last {
			first = pm.regions[i].last + 4
		}
	}
	if first <= last {
		pm.fastValid = true
		pm.fastFirst = first
		pm.fastLast = last
		pm.fastRegion = region
	}
}

// UnpackConfigByte splits a PMPCFG byte into mode, type and lock.
func UnpackConfigByte(b uint8) (PmpMode, PmpType, bool) {
	return PmpMode(b & 7), PmpType(b >> 3 & 3), b&0x80 != 0
}

// UnpackMemoryProtection derives the region covered by one PMPADDR register
// from its value, its PMPCFG byte and the preceding PMPADDR value (for TOR).
func (pm *PmpManager) UnpackMemoryProtection(cfgByte uint8, pmpVal, prevPmpVal uint64,
	rv32 bool) (mode PmpMode, typ PmpType, locked bool, low, high uint64) {

	mode, typ, locked = UnpackConfigByte(cfgByte)

	switch typ {
	case PmpOff:
		return

	case PmpTor:
		low = prevPmpVal >> pm.grain << pm.grain << 2
		high = pmpVal >> pm.grain << pm.grain << 2
		if high == 0 {
			typ = PmpOff // empty range
			return
		}
		high--
		return
	}

	sizeM1 := uint64(3)
	napot := pmpVal
	if typ == PmpNapot {
		var rzi uint
		all := uint64(0xffffffffffffffff)
		if rv32 {
			all = 0xffffffff
		}
		if pmpVal == all {
			napot = 0
			rzi = 64
			if rv32 {
				rzi = 32
			}
		} else {
			rzi = uint(mathbits.TrailingZeros64(^pmpVal))
			napot = napot >> rzi << rzi
		}
		if rzi+3 >= 64 {
			sizeM1 = ^uint64(0)
		} else {
			sizeM1 = uint64(1)<<(rzi+3) - 1
		}
	}

	low = napot >> pm.grain << pm.grain << 2
	high = low + sizeM1
	return
}

// LegalizePmpcfg sanitizes a PMPCFG write: locked bytes keep their previous
// value, NA4 is rejected when disabled or when the grain is non-zero, TOR is
// rejected when disabled, and the reserved w=1,r=0 combination preserves the
// previous xwr field.
func (pm *PmpManager) LegalizePmpcfg(prev, next uint64) uint64 {
	var legal uint64
	for i := 0; i < 8; i++ {
		pb := uint8(prev >> (i * 8))
		nb := uint8(next >> (i * 8))

		if pb>>7 != 0 {
			nb = pb // locked byte
		} else {
			aField := nb >> 3 & 3
			if aField == uint8(PmpNa4) {
				if !pm.na4Enabled || pm.grain != 0 {
					nb = pb&0x18 | nb&^uint8(0x18) // preserve the A field
				}
			} else if aField == uint8(PmpTor) {
				if !pm.torEnabled {
					nb = pb&0x18 | nb&^uint8(0x18)
				}
			}
			if nb&3 == 2 { // w=1, r=0 is reserved
				nb = pb&7 | nb&^uint8(7)
			}
		}

		legal |= uint64(nb) << (i * 8)
	}
	return legal
}

// pmpRegs is the optional memory mapped PMPCFG/PMPADDR register file.
type pmpRegs struct {
	enabled   bool
	cfgAddr   uint64
	cfgCount  uint32
	addrAddr  uint64
	addrCount uint32
	cfg       []uint64
	addrVals  []uint64
	mgr       *PmpManager
}

// DefinePmpRegs maps the PMPCFG and PMPADDR register files at the given
// addresses. Counts must be consistent (one PMPCFG per 8 PMPADDR) and the
// addresses double-word aligned. A zero count disables the file.
func (m *Iommu) DefinePmpRegs(cfgAddr uint64, cfgCount uint32,
	addrAddr uint64, addrCount uint32) bool {

	if cfgCount == 0 && addrCount == 0 {
		m.pmp = pmpRegs{}
		return true
	}
	if addrCount != 8 && addrCount != 16 && addrCount != 64 {
		return false
	}
	if addrCount/8 != cfgCount {
		return false
	}
	if cfgAddr&7 != 0 || addrAddr&7 != 0 {
		return false
	}

	m.pmp = pmpRegs{
		enabled:   true,
		cfgAddr:   cfgAddr,
		cfgCount:  cfgCount,
		addrAddr:  addrAddr,
		addrCount: addrCount,
		cfg:       make([]uint64, cfgCount),
		addrVals:  make([]uint64, addrCount),
		mgr:       NewPmpManager(),
	}
	return true
}

// PmpManager returns the region manager backing the PMP register file, nil
// when PMP is not configured.
func (m *Iommu) PmpManager() *PmpManager { return m.pmp.mgr }

func (p *pmpRegs) contains(addr uint64) bool {
	if !p.enabled {
		return false
	}
	if addr >= p.cfgAddr && addr < p.cfgAddr+uint64(p.cfgCount)*8 {
		return true
	}
	return addr >= p.addrAddr && addr < p.addrAddr+uint64(p.addrCount)*8
}

func (p *pmpRegs) read(addr uint64, size uint32) (uint64, bool) {
	if !p.enabled || size != 8 || addr&7 != 0 {
		return 0, false
	}
	if addr >= p.cfgAddr && addr < p.cfgAddr+uint64(p.cfgCount)*8 {
		return p.cfg[(addr-p.cfgAddr)/8], true
	}
	if addr >= p.addrAddr && addr < p.addrAddr+uint64(p.addrCount)*8 {
		ix := (addr - p.addrAddr) / 8
		return p.mgr.adjustPmpValue(p.addrVals[ix], p.cfgByte(uint32(ix))), true
	}
	return 0, false
}

func (p *pmpRegs) write(m *Iommu, addr uint64, size uint32, data uint64) bool {
	if !p.enabled || size != 8 || addr&7 != 0 {
		return false
	}
	if addr >= p.cfgAddr && addr < p.cfgAddr+uint64(p.cfgCount)*8 {
		ix := (addr - p.cfgAddr) / 8
		p.cfg[ix] = p.mgr.LegalizePmpcfg(p.cfg[ix], data)
		p.update()
		return true
	}
	if addr >= p.addrAddr && addr < p.addrAddr+uint64(p.addrCount)*8 {
		ix := (addr - p.addrAddr) / 8
		p.addrVals[ix] = data
		if p.cfgByte(uint32(ix))>>3&3 != 0 { // entry is active
			p.update()
		}
		return true
	}
	return false
}

// cfgByte returns the PMPCFG byte governing the PMPADDR register at ix.
func (p *pmpRegs) cfgByte(ix uint32) uint8 {
	return uint8(p.cfg[ix/8] >> (8 * (ix % 8)))
}

// update rebuilds the region manager from the register values.
func (p *pmpRegs) update() {
	p.mgr.Reset()
	for ix := uint32(0); ix < p.addrCount; ix++ {
		var prev uint64
		if ix > 0 {
			prev = p.addrVals[ix-1]
		}
		mode, typ, locked, low, high := p.mgr.UnpackMemoryProtection(
			p.cfgByte(ix), p.addrVals[ix], prev, false)
		p.mgr.DefineRegion(low, high, typ, mode, ix, locked)
	}
}

// adjustPmpValue returns the software-visible value of a PMPADDR register,
// which differs from the stored value when the grain is non-zero.
func (pm *PmpManager) adjustPmpValue(value uint64, cfgByte uint8) uint64 {
	if pm.grain == 0 {
		return value
	}
	aField := cfgByte >> 3 & 3
	if aField < 2 { // OFF or TOR: clear the low G bits
		return value >> pm.grain << pm.grain
	}
	// NAPOT: set the low G-1 bits
	if pm.grain >= 2 {
		mask := ^uint64(0) >> (64 - pm.grain + 1)
		value |= mask
	}
	return value
}

// pmpReadable applies the PMP check for an IOMMU-generated read.
func (m *Iommu) pmpReadable(addr uint64) bool {
	if !m.pmp.enabled {
		return true
	}
	return m.pmp.mgr.GetPmp(addr).IsRead(PrivMachine)
}

// pmpWritable applies the PMP check for an IOMMU-generated write.
func (m *Iommu) pmpWritable(addr uint64) bool {
	if !m.pmp.enabled {
		return true
	}
	return m.pmp.mgr.GetPmp(addr).IsWrite(PrivMachine)
}
