package iommu

import (
	"io"
	"log"
)

// Callback signatures through which the IOMMU reaches the rest of the
// system. Memory callbacks perform byte-granular host physical access; the
// stage callbacks are the execution engine's page table walkers.
type (
	// MemReadFn reads size bytes at addr. It reports false on a failed
	// PMA/PMP check.
	MemReadFn func(addr uint64, size uint32) (data uint64, ok bool)

	// MemWriteFn writes size bytes at addr.
	MemWriteFn func(addr uint64, size uint32, data uint64) bool

	// Stage1ConfigFn configures the first-stage walker before a walk.
	Stage1ConfigFn func(mode uint32, asid uint32, ppn uint64, sum bool)

	// Stage2ConfigFn configures the second-stage walker before a walk.
	Stage2ConfigFn func(mode uint32, gscid uint32, ppn uint64)

	// Stage1Fn translates va to a guest physical address. On failure it
	// returns a RISC-V exception cause (1..23).
	Stage1Fn func(va uint64, priv PrivilegeMode, r, w, x bool) (gpa uint64, cause uint32, ok bool)

	// Stage2Fn translates a guest physical address to a host physical one.
	Stage2Fn func(gpa uint64, priv PrivilegeMode, r, w, x bool) (pa uint64, cause uint32, ok bool)

	// Stage2TrapInfoFn retrieves the details of the most recent second-stage
	// fault: the faulting GPA, whether the access was implicit, and whether
	// an implicit access was a write.
	Stage2TrapInfoFn func() (gpa uint64, implicit, write bool)

	// WiredInterruptFn asserts or deasserts a wired interrupt line.
	WiredInterruptFn func(vector uint32, assert bool)

	// SendInvalReqFn sends a PCIe ATS invalidation request message.
	SendInvalReqFn func(devID, pid uint32, pv bool, addr uint64, global bool,
		scope InvalidationScope, itag uint8)

	// SendPrgrFn sends a PCIe page request group response message.
	SendPrgrFn func(devID, pid uint32, pv bool, prgi uint32, code PrgrResponseCode,
		dsv bool, dseg uint32)
)

const pageSize = 4096

// Directory cache geometry.
const (
	ddtCacheSize = 64
	pdtCacheSize = 128
	maxItags     = 2
)

// Iommu models one IOMMU instance with its memory mapped registers at
// [addr, addr+size). After construction the capabilities must be configured
// with ConfigureCapabilities and the device reset with Reset; the callbacks
// must be installed before the first translation.
type Iommu struct {
	addr uint64 // base of the MMIO window
	size uint64 // size of the MMIO window in bytes

	csrs      []Csr
	wordToCsr []int // word offset within the window -> CSR index, -1 if none

	// Cached writability of the fctl fields, derived from capabilities.
	beWritable  bool
	wsiWritable bool
	gxlWritable bool

	rcidWidth uint
	mcidWidth uint

	// Dsv controls the destination-segment-valid flag of outgoing PRGR
	// messages.
	Dsv bool

	logger *log.Logger

	memRead  MemReadFn
	memWrite MemWriteFn

	stage1Config   Stage1ConfigFn
	stage2Config   Stage2ConfigFn
	stage1         Stage1Fn
	stage2         Stage2Fn
	stage2TrapInfo Stage2TrapInfoFn

	signalWiredInterrupt WiredInterruptFn
	sendInvalReq         SendInvalReqFn
	sendPrgr             SendPrgrFn

	// Directory caches.
	ddtCache       []ddtCacheEntry
	pdtCache       []pdtCacheEntry
	cacheTimestamp uint64

	// Address/entry pairs of the most recent directory walks.
	deviceDirWalk  []WalkEntry
	processDirWalk []WalkEntry

	// ATS invalidation tracking.
	itags            [maxItags]itagTracker
	cqStalledForItag bool
	iofenceWaiting   bool
	atsInvalTimeout  bool
	blockedAtsInval  *blockedAtsInval
	pendingIofence   *pendingIofence

	// PMP/PMA register files (optional, mapped beyond the CSR window).
	pmp pmpRegs
	pma pmaRegs
}

// WalkEntry is one (address, entry) pair visited during a directory walk.
type WalkEntry struct {
	Addr  uint64
	Entry uint64
}

// New creates an IOMMU with its registers mapped at [addr, addr+size).
func New(addr, size uint64) *Iommu {
	io1 := &Iommu{
		addr:     addr,
		size:     size,
		logger:   log.New(io.Discard, "", 0),
		ddtCache: make([]ddtCacheEntry, ddtCacheSize),
		pdtCache: make([]pdtCacheEntry, pdtCacheSize),
	}
	io1.defineCsrs()
	return io1
}

// NewWithCapabilities creates an IOMMU and configures and resets it with the
// given capabilities value.
func NewWithCapabilities(addr, size, capabilities uint64) *Iommu {
	io1 := New(addr, size)
	io1.ConfigureCapabilities(capabilities)
	io1.Reset()
	return io1
}

// SetLogger installs a debug trace logger. A nil logger disables tracing.
func (m *Iommu) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	m.logger = l
}

// Callback installers.

func (m *Iommu) SetMemReadCb(cb MemReadFn)                 { m.memRead = cb }
func (m *Iommu) SetMemWriteCb(cb MemWriteFn)               { m.memWrite = cb }
func (m *Iommu) SetStage1ConfigCb(cb Stage1ConfigFn)       { m.stage1Config = cb }
func (m *Iommu) SetStage2ConfigCb(cb Stage2ConfigFn)       { m.stage2Config = cb }
func (m *Iommu) SetStage1Cb(cb Stage1Fn)                   { m.stage1 = cb }
func (m *Iommu) SetStage2Cb(cb Stage2Fn)                   { m.stage2 = cb }
func (m *Iommu) SetStage2TrapInfoCb(cb Stage2TrapInfoFn)   { m.stage2TrapInfo = cb }
func (m *Iommu) SetWiredInterruptCb(cb WiredInterruptFn)   { m.signalWiredInterrupt = cb }
func (m *Iommu) SetSendInvalReqCb(cb SendInvalReqFn)       { m.sendInvalReq = cb }
func (m *Iommu) SetSendPrgrCb(cb SendPrgrFn)               { m.sendPrgr = cb }

// PageSize returns the page size used by the directory walks.
func (m *Iommu) PageSize() uint64 { return pageSize }

// ContainsAddr reports whether addr falls in the MMIO window of this IOMMU,
// including the optional PMP/PMA register regions.
func (m *Iommu) ContainsAddr(addr uint64) bool {
	if addr >= m.addr && addr < m.addr+m.size {
		return true
	}
	return m.pmp.contains(addr) || m.pma.contains(addr)
}

func (m *Iommu) capabilities() Capabilities {
	return Capabilities(m.ReadCsr(CsrCapabilities))
}

func (m *Iommu) fctl() Fctl { return Fctl(m.ReadCsr(CsrFctl)) }

// IsDcExtended reports whether device contexts use the 64-byte extended
// format.
func (m *Iommu) IsDcExtended() bool { return m.capabilities().MsiFlat() }

// bigEndian reports whether IOMMU-generated accesses are byte swapped.
func (m *Iommu) bigEndian() bool { return m.fctl().Be() }

// WiredInterrupts reports whether the IOMMU signals interrupts on wires
// rather than by MSI.
func (m *Iommu) WiredInterrupts() bool {
	switch m.capabilities().Igs() {
	case IgsWsi:
		return true
	case IgsBoth:
		return m.fctl().Wsi()
	}
	return false
}

// ConfigureCapabilities sets the read-only capabilities CSR and applies the
// register gating it implies. Call before Reset.
func (m *Iommu) ConfigureCapabilities(value uint64) {
	m.csrAt(CsrCapabilities).setReset(value)
	caps := Capabilities(value)

	m.beWritable = caps.End()
	m.wsiWritable = caps.Igs() == IgsBoth
	// GXL is writable only when both 32-bit and 64-bit second-stage modes
	// are available.
	m.gxlWritable = caps.Sv32x4() && (caps.Sv39x4() || caps.Sv48x4() || caps.Sv57x4())

	m.rcidWidth = 12
	m.mcidWidth = 12

	var fctlMask uint64
	if m.beWritable {
		fctlMask |= 1
	}
	if m.wsiWritable {
		fctlMask |= 2
	}
	if m.gxlWritable {
		fctlMask |= 4
	}
	m.csrAt(CsrFctl).mask = fctlMask

	var fctlReset uint64
	if caps.Igs() == IgsWsi {
		fctlReset = 2 // wsi hardwired to 1 in WSI-only mode
	}
	m.csrAt(CsrFctl).setReset(fctlReset)
}

// Reset resets all CSRs to their reset values and clears the caches, the
// ITAG trackers and the stall state.
func (m *Iommu) Reset() {
	for i := range m.csrs {
		m.csrs[i].reset()
	}
	for i := range m.ddtCache {
		m.ddtCache[i].valid = false
	}
	for i := range m.pdtCache {
		m.pdtCache[i].valid = false
	}
	m.cacheTimestamp = 0
	for i := range m.itags {
		m.itags[i] = itagTracker{}
	}
	m.cqStalledForItag = false
	m.iofenceWaiting = false
	m.atsInvalTimeout = false
	m.blockedAtsInval = nil
	m.pendingIofence = nil
	m.deviceDirWalk = nil
	m.processDirWalk = nil
}

// LastDeviceDirectoryWalk returns the (address, entry) pairs visited by the
// most recent device directory walk.
func (m *Iommu) LastDeviceDirectoryWalk() []WalkEntry { return m.deviceDirWalk }

// LastProcessDirectoryWalk returns the (address, entry) pairs visited by the
// most recent process directory walk.
func (m *Iommu) LastProcessDirectoryWalk() []WalkEntry { return m.processDirWalk }

// memReadSized reads size bytes of physical memory, byte swapping when
// bigEnd is set.
func (m *Iommu) memReadSized(addr uint64, size uint32, bigEnd bool) (uint64, bool) {
	if size == 0 || size > 8 || size&(size-1) != 0 {
		return 0, false
	}
	if !m.pmpReadable(addr) || !m.pmaReadable(addr) {
		return 0, false
	}
	val, ok := m.memRead(addr, size)
	if !ok {
		return 0, false
	}
	if bigEnd {
		val = byteSwap(val) >> ((8 - uint(size)) * 8)
	}
	return val, true
}

// memWriteSized writes size bytes of physical memory, byte swapping when
// bigEnd is set.
func (m *Iommu) memWriteSized(addr uint64, size uint32, bigEnd bool, data uint64) bool {
	if size == 0 || size > 8 || size&(size-1) != 0 {
		return false
	}
	if !m.pmpWritable(addr) || !m.pmaWritable(addr) {
		return false
	}
	if bigEnd {
		data = byteSwap(data) >> ((8 - uint(size)) * 8)
	}
	return m.memWrite(addr, size, data)
}

// memReadDouble reads one double word, byte swapping when bigEnd is set.
func (m *Iommu) memReadDouble(addr uint64, bigEnd bool) (uint64, bool) {
	val, ok := m.memReadSized(addr, 8, false)
	if !ok {
		return 0, false
	}
	if bigEnd {
		val = byteSwap(val)
	}
	return val, true
}

// memWriteDouble writes one double word, byte swapping when bigEnd is set.
func (m *Iommu) memWriteDouble(addr uint64, bigEnd bool, data uint64) bool {
	if bigEnd {
		data = byteSwap(data)
	}
	return m.memWriteSized(addr, 8, false, data)
}

func byteSwap(v uint64) uint64 {
	v = v>>32 | v<<32
	v = (v&0xffff0000ffff0000)>>16 | (v&0x0000ffff0000ffff)<<16
	v = (v&0xff00ff00ff00ff00)>>8 | (v&0x00ff00ff00ff00ff)<<8
	return v
}

// signalInterrupt raises the interrupt for the given vector: a wire in WSI
// mode, an MSI write otherwise.
func (m *Iommu) signalInterrupt(vector uint32) {
	if m.WiredInterrupts() {
		if m.signalWiredInterrupt != nil {
			m.signalWiredInterrupt(vector, true)
		}
		return
	}

	if vector >= 16 {
		return
	}
	addr := m.ReadCsr(CsrMsiAddr0 + CsrNumber(3*vector))
	data := uint32(m.ReadCsr(CsrMsiData0 + CsrNumber(3*vector)))
	ctl := m.ReadCsr(CsrMsiVecCtl0 + CsrNumber(3*vector))

	if ctl&1 != 0 {
		return // vector is masked
	}

	if !m.memWriteSized(addr, 4, m.bigEndian(), uint64(data)) {
		rec := FaultRecord{
			Cause:  CauseMsiStoreFault,
			Iotval: addr,
			Ttyp:   TtypeNone,
		}
		m.writeFaultRecord(rec)
	}
}

// ipsr events that can force a pending bit even without a sticky error flag.
type ipsrEvent int

const (
	ipsrEventNone ipsrEvent = iota
	ipsrEventNewFault
	ipsrEventNewPageRequest
	ipsrEventHpmOverflow
)

// updateIpsr raises any interrupt whose cause is pending and enabled and
// whose ipsr bit is not yet set.
func (m *Iommu) updateIpsr(event ipsrEvent) {
	ipsr := Ipsr(m.ReadCsr(CsrIpsr))
	icvec := Icvec(m.ReadCsr(CsrIcvec))
	cqcsr := Cqcsr(m.ReadCsr(CsrCqcsr))
	fqcsr := Fqcsr(m.ReadCsr(CsrFqcsr))
	pqcsr := Pqcsr(m.ReadCsr(CsrPqcsr))

	if cqcsr.Cie() && !ipsr.Cip() &&
		(cqcsr.FenceWIp() || cqcsr.CmdIll() || cqcsr.CmdTo() || cqcsr.Cqmf()) {
		m.pokeCsr(CsrIpsr, uint64(ipsr)|ipsrCip)
		ipsr = Ipsr(m.ReadCsr(CsrIpsr))
		m.signalInterrupt(icvec.Civ())
	}

	if fqcsr.Fie() && !ipsr.Fip() &&
		(fqcsr.Fqof() || fqcsr.Fqmf() || event == ipsrEventNewFault) {
		m.pokeCsr(CsrIpsr, uint64(ipsr)|ipsrFip)
		ipsr = Ipsr(m.ReadCsr(CsrIpsr))
		m.signalInterrupt(icvec.Fiv())
	}

	if pqcsr.Pie() && !ipsr.Pip() &&
		(pqcsr.Pqof() || pqcsr.Pqmf() || event == ipsrEventNewPageRequest) {
		m.pokeCsr(CsrIpsr, uint64(ipsr)|ipsrPip)
		ipsr = Ipsr(m.ReadCsr(CsrIpsr))
		m.signalInterrupt(icvec.Piv())
	}

	if event == ipsrEventHpmOverflow && !ipsr.Pmip() {
		m.pokeCsr(CsrIpsr, uint64(ipsr)|ipsrPmip)
		m.signalInterrupt(icvec.Pmiv())
	}
}
