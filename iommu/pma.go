package iommu

// Physical memory attributes: per-region access and memory-type attributes
// over host physical addresses.

// Pma is the attribute set of one region.
type Pma struct {
	Read       bool
	Write      bool
	Exec       bool
	Idempotent bool // main memory semantics when true, IO otherwise
	Cacheable  bool
	Coherent   bool
}

// defaultPma grants full access with main-memory semantics; used when no
// region matches and PMA is not enforcing.
var defaultPma = Pma{Read: true, Write: true, Exec: true,
	Idempotent: true, Cacheable: true, Coherent: true}

type pmaRegion struct {
	first, last uint64
	pma         Pma
	valid       bool
}

// PmaManager maps addresses to attribute regions.
type PmaManager struct {
	regions []pmaRegion

	fastValid bool
	fastIx    int
}

// NewPmaManager returns a manager with the given number of region slots.
func NewPmaManager(count int) *PmaManager {
	return &PmaManager{regions: make([]pmaRegion, count)}
}

// DefineRegion installs the region at the given slot.
func (pm *PmaManager) DefineRegion(ix int, first, last uint64, pma Pma) bool {
	if ix < 0 || ix >= len(pm.regions) {
		return false
	}
	pm.regions[ix] = pmaRegion{first: first, last: last, pma: pma, valid: true}
	pm.fastValid = false
	return true
}

// GetPma returns the attributes of the region containing addr, or the
// default attributes if none matches.
func (pm *PmaManager) GetPma(addr uint64) Pma {
	if pm.fastValid {
		r := &pm.regions[pm.fastIx]
		if r.valid && addr >= r.first && addr <= r.last {
			return r.pma
		}
	}
	for ix := range pm.regions {
		r := &pm.regions[ix]
		if r.valid && addr >= r.first && addr <= r.last {
			pm.fastValid = true
			pm.fastIx = ix
			return r.pma
		}
	}
	return defaultPma
}

// UnpackPmacfg decodes one PMACFG register value: bits 0-2 are r/w/x, bit 3
// idempotent, bit 4 cacheable, bit 5 coherent, bit 7 valid; bits 63:12 hold
// the base page and bits 11:8 the log2 size in pages.
func UnpackPmacfg(val uint64) (valid bool, low, high uint64, pma Pma) {
	valid = bit(val, 7)
	if !valid {
		return
	}
	pma = Pma{
		Read:       bit(val, 0),
		Write:      bit(val, 1),
		Exec:       bit(val, 2),
		Idempotent: bit(val, 3),
		Cacheable:  bit(val, 4),
		Coherent:   bit(val, 5),
	}
	low = val >> 12 << 12
	size := uint64(pageSize) << bits(val, 11, 8)
	high = low + size - 1
	return
}

// LegalizePmacfg sanitizes a PMACFG write: the w=1,r=0 combination preserves
// the previous access field.
func LegalizePmacfg(prev, next uint64) uint64 {
	if next&3 == 2 {
		next = prev&7 | next&^uint64(7)
	}
	return next
}

// pmaRegs is the optional memory mapped PMACFG register file.
type pmaRegs struct {
	enabled  bool
	cfgAddr  uint64
	cfgCount uint32
	cfg      []uint64
	mgr      *PmaManager
}

// DefinePmaRegs maps the PMACFG register file at the given double-word
// aligned address. A zero count disables the file.
func (m *Iommu) DefinePmaRegs(cfgAddr uint64, cfgCount uint32) bool {
	if cfgCount == 0 {
		m.pma = pmaRegs{}
		return true
	}
	if cfgAddr&7 != 0 {
		return false
	}
	m.pma = pmaRegs{
		enabled:  true,
		cfgAddr:  cfgAddr,
		cfgCount: cfgCount,
		cfg:      make([]uint64, cfgCount),
		mgr:      NewPmaManager(int(cfgCount)),
	}
	return true
}

// PmaManager returns the region manager backing the PMA register file, nil
// when PMA is not configured.
func (m *Iommu) PmaManager() *PmaManager { return m.pma.mgr }

func (p *pmaRegs) contains(addr uint64) bool {
	return p.enabled && addr >= p.cfgAddr && addr < p.cfgAddr+uint64(p.cfgCount)*8
}

func (p *pmaRegs) read(addr uint64, size uint32) (uint64, bool) {
	if !p.contains(addr) || size != 8 || addr&7 != 0 {
		return 0, false
	}
	return p.cfg[(addr-p.cfgAddr)/8], true
}

func (p *pmaRegs) write(m *Iommu, addr uint64, size uint32, data uint64) bool {
	if !p.contains(addr) || size != 8 || addr&7 != 0 {
		return false
	}
	ix := (addr - p.cfgAddr) / 8
	data = LegalizePmacfg(p.cfg[ix], data)
	p.cfg[ix] = data
	if valid, low, high, pma := UnpackPmacfg(data); valid {
		p.mgr.DefineRegion(int(ix), low, high, pma)
	}
	return true
}

// pmaReadable applies the PMA check for an IOMMU-generated read.
func (m *Iommu) pmaReadable(addr uint64) bool {
	if !m.pma.enabled {
		return true
	}
	return m.pma.mgr.GetPma(addr).Read
}

// pmaWritable applies the PMA check for an IOMMU-generated write.
func (m *Iommu) pmaWritable(addr uint64) bool {
	if !m.pma.enabled {
		return true
	}
	return m.pma.mgr.GetPma(addr).Write
}
