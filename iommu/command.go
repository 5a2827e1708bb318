package iommu

// Command queue entries are 16 bytes with a common opcode (bits 0-6) and
// function (bits 7-9) header in the first double word.

// CommandOpcode is the command opcode field.
type CommandOpcode uint32

const (
	OpcodeIotinval CommandOpcode = 1
	OpcodeIofence  CommandOpcode = 2
	OpcodeIodir    CommandOpcode = 3
	OpcodeAts      CommandOpcode = 4
)

// Command function codes.
const (
	FuncAtsInval     = 0
	FuncAtsPrgr      = 1
	FuncIodirDdt     = 0
	FuncIodirPdt     = 1
	FuncIofenceC     = 0
	FuncIotinvalVma  = 0
	FuncIotinvalGvma = 1
)

// Command is one 16-byte command queue entry.
type Command struct {
	Dw0 uint64
	Dw1 uint64
}

func (c Command) Opcode() CommandOpcode { return CommandOpcode(bits(c.Dw0, 6, 0)) }
func (c Command) Func() uint32          { return uint32(bits(c.Dw0, 9, 7)) }

func (c Command) IsAts() bool      { return c.Opcode() == OpcodeAts }
func (c Command) IsIodir() bool    { return c.Opcode() == OpcodeIodir }
func (c Command) IsIofence() bool  { return c.Opcode() == OpcodeIofence }
func (c Command) IsIotinval() bool { return c.Opcode() == OpcodeIotinval }

func (c Command) IsAtsInval() bool     { return c.IsAts() && c.Func() == FuncAtsInval }
func (c Command) IsAtsPrgr() bool      { return c.IsAts() && c.Func() == FuncAtsPrgr }
func (c Command) IsIodirDdt() bool     { return c.IsIodir() && c.Func() == FuncIodirDdt }
func (c Command) IsIodirPdt() bool     { return c.IsIodir() && c.Func() == FuncIodirPdt }
func (c Command) IsIofenceC() bool     { return c.IsIofence() && c.Func() == FuncIofenceC }
func (c Command) IsIotinvalVma() bool  { return c.IsIotinval() && c.Func() == FuncIotinvalVma }
func (c Command) IsIotinvalGvma() bool { return c.IsIotinval() && c.Func() == FuncIotinvalGvma }

// ATS.INVAL / ATS.PRGR shared routing fields.
func (c Command) atsPid() uint32  { return uint32(bits(c.Dw0, 31, 12)) }
func (c Command) atsPv() bool     { return bit(c.Dw0, 32) }
func (c Command) atsDsv() bool    { return bit(c.Dw0, 33) }
func (c Command) atsRid() uint32  { return uint32(bits(c.Dw0, 55, 40)) }
func (c Command) atsDseg() uint32 { return uint32(bits(c.Dw0, 63, 56)) }

// ATS.INVAL payload.
func (c Command) invalGlobal() bool  { return bit(c.Dw1, 0) }
func (c Command) invalSize() bool    { return bit(c.Dw1, 11) }
func (c Command) invalAddr() uint64  { return c.Dw1 >> 12 << 12 }

// ATS.PRGR payload.
func (c Command) prgrPrgi() uint32 { return uint32(bits(c.Dw1, 40, 32)) }
func (c Command) prgrCode() uint32 { return uint32(bits(c.Dw1, 47, 44)) }

// IODIR fields.
func (c Command) iodirPid() uint32 { return uint32(bits(c.Dw0, 31, 12)) }
func (c Command) iodirDv() bool    { return bit(c.Dw0, 33) }
func (c Command) iodirDid() uint32 { return uint32(bits(c.Dw0, 63, 40)) }

// IOFENCE.C fields.
func (c Command) fenceAv() bool    { return bit(c.Dw0, 10) }
func (c Command) fenceWsi() bool   { return bit(c.Dw0, 11) }
func (c Command) fencePr() bool    { return bit(c.Dw0, 12) }
func (c Command) fencePw() bool    { return bit(c.Dw0, 13) }
func (c Command) fenceData() uint32 { return uint32(c.Dw0 >> 32) }
func (c Command) fenceAddr() uint64 { return bits(c.Dw1, 61, 0) << 2 }
func (c Command) fenceReserved() bool {
	return bits(c.Dw0, 31, 14) != 0 || bits(c.Dw1, 63, 62) != 0
}

// IOTINVAL fields.
func (c Command) invalVmaAv() bool     { return bit(c.Dw0, 10) }
func (c Command) invalPscid() uint32   { return uint32(bits(c.Dw0, 31, 12)) }
func (c Command) invalPscv() bool      { return bit(c.Dw0, 32) }
func (c Command) invalGv() bool        { return bit(c.Dw0, 33) }
func (c Command) invalGscid() uint32   { return uint32(bits(c.Dw0, 59, 44)) }
func (c Command) iotinvalAddr() uint64 { return bits(c.Dw1, 61, 10) << 12 }

// itagTracker records one outstanding ATS invalidation.
type itagTracker struct {
	busy       bool
	dsv        bool
	dseg       uint8
	rid        uint16
	devID      uint32 // dseg << 16 | rid when dsv
	pv         bool
	pid        uint32
	address    uint64
	global     bool
	scope      InvalidationScope
	numRspRcvd uint8
}

type blockedAtsInval struct {
	devID  uint32
	pid    uint32
	pv     bool
	dsv    bool
	dseg   uint8
	rid    uint16
	addr   uint64
	global bool
	scope  InvalidationScope
}

type pendingIofence struct {
	pr, pw, av, wsi bool
	addr            uint64
	data            uint32
}

// HasPendingAtsInvals reports whether any ATS invalidation is outstanding.
func (m *Iommu) HasPendingAtsInvals() bool { return m.anyItagBusy() }

func (m *Iommu) anyItagBusy() bool {
	for i := range m.itags {
		if m.itags[i].busy {
			return true
		}
	}
	return false
}

func (m *Iommu) countBusyItags() int {
	n := 0
	for i := range m.itags {
		if m.itags[i].busy {
			n++
		}
	}
	return n
}

func (m *Iommu) allocateItag(b blockedAtsInval) (uint8, bool) {
	for i := range m.itags {
		if m.itags[i].busy {
			continue
		}
		m.itags[i] = itagTracker{
			busy: true, dsv: b.dsv, dseg: b.dseg, rid: b.rid, devID: b.devID,
			pv: b.pv, pid: b.pid, address: b.addr, global: b.global, scope: b.scope,
		}
		return uint8(i), true
	}
	return 0, false
}

// ProcessCommandQueue drains the command queue until it is empty or a stall
// or error condition stops processing.
func (m *Iommu) ProcessCommandQueue() {
	for m.ProcessCommand() {
	}
}

// ProcessCommand executes the command at the head of the queue. It reports
// whether the head advanced.
func (m *Iommu) ProcessCommand() bool {
	if m.cqStalledForItag || m.iofenceWaiting {
		return false
	}
	cqcsr := Cqcsr(m.ReadCsr(CsrCqcsr))
	if !cqcsr.Cqon() || cqcsr.CmdIll() || cqcsr.Cqmf() {
		return false
	}
	if m.cqEmpty() {
		return false
	}

	cqb := Qbase(m.ReadCsr(CsrCqb))
	cqh := uint32(m.ReadCsr(CsrCqh))
	if cqh >= cqb.Capacity() {
		return false // invalid head pointer
	}

	cmdAddr := cqb.Ppn()<<12 + uint64(cqh)*16
	dw0, ok0 := m.memReadDouble(cmdAddr, false)
	dw1, ok1 := m.memReadDouble(cmdAddr+8, false)
	if !ok0 || !ok1 {
		m.setCqcsrBits(cqcsrCqmf)
		return false
	}

	cmd := Command{dw0, dw1}

	advance := true
	switch {
	case cmd.IsAtsInval():
		advance = m.executeAtsInval(cmd)
	case cmd.IsAtsPrgr():
		advance = m.executeAtsPrgr(cmd)
	case cmd.IsIodirDdt() || cmd.IsIodirPdt():
		m.executeIodir(cmd)
	case cmd.IsIofenceC():
		advance = m.executeIofenceC(cmd)
	case cmd.IsIotinvalVma() || cmd.IsIotinvalGvma():
		m.executeIotinval(cmd)
	default:
		advance = false
		m.setCqcsrBits(cqcsrCmdIll)
	}

	if advance {
		m.advanceCqh()
	}
	return advance
}

func (m *Iommu) advanceCqh() {
	cqb := Qbase(m.ReadCsr(CsrCqb))
	cqh := uint32(m.ReadCsr(CsrCqh))
	m.pokeCsr(CsrCqh, uint64((cqh+1)%cqb.Capacity()))
}

// setCqcsrBits sets the given sticky error bits and updates the interrupt
// state.
func (m *Iommu) setCqcsrBits(bits uint64) {
	m.pokeCsr(CsrCqcsr, m.ReadCsr(CsrCqcsr)|bits)
	m.updateIpsr(ipsrEventNone)
}

func (m *Iommu) executeAtsInval(cmd Command) bool {
	if !m.capabilities().Ats() {
		m.setCqcsrBits(cqcsrCmdIll)
		return false
	}

	rid := cmd.atsRid()
	dsv := cmd.atsDsv()
	dseg := cmd.atsDseg()
	devID := rid
	if dsv {
		devID = dseg<<16 | rid
	}

	scope := ScopeGlobalDevice
	if !cmd.invalGlobal() {
		switch {
		case cmd.atsPv() && cmd.invalAddr() != 0:
			scope = ScopeProcessAndAddress
		case cmd.atsPv():
			scope = ScopeProcessSpecific
		case cmd.invalAddr() != 0:
			scope = ScopeAddressSpecific
		}
	}

	b := blockedAtsInval{
		devID: devID, pid: cmd.atsPid(), pv: cmd.atsPv(), dsv: dsv,
		dseg: uint8(dseg), rid: uint16(rid), addr: cmd.invalAddr(),
		global: cmd.invalGlobal(), scope: scope,
	}

	itag, ok := m.allocateItag(b)
	if !ok {
		// Both ITAGs are busy: stall the queue until one frees up.
		m.blockedAtsInval = &b
		m.cqStalledForItag = true
		return false
	}

	m.logger.Printf("ATS.INVAL: devId=%#x itag=%d scope=%d", devID, itag, scope)
	if m.sendInvalReq != nil {
		m.sendInvalReq(devID, b.pid, b.pv, b.addr, b.global, b.scope, itag)
	}
	return true
}

func (m *Iommu) executeAtsPrgr(cmd Command) bool {
	if !m.capabilities().Ats() {
		m.setCqcsrBits(cqcsrCmdIll)
		return false
	}

	rid := cmd.atsRid()
	dsv := cmd.atsDsv()
	dseg := cmd.atsDseg()
	devID := rid
	if dsv {
		devID = dseg<<16 | rid
	}

	if m.sendPrgr != nil {
		m.sendPrgr(devID, cmd.atsPid(), cmd.atsPv(), cmd.prgrPrgi(),
			PrgrResponseCode(cmd.prgrCode()), dsv, dseg)
	}
	return true
}

func (m *Iommu) executeIodir(cmd Command) {
	pid := cmd.iodirPid()
	dv := cmd.iodirDv()
	did := cmd.iodirDid()
	extended := m.IsDcExtended()
	ddtpMode := Ddtp(m.ReadCsr(CsrDdtp)).Mode()

	checkWidth := func(id uint32) bool {
		ddi1 := devidDdi(id, 1, extended)
		ddi2 := devidDdi(id, 2, extended)
		if ddtpMode == DdtpLevel2 && ddi2 != 0 {
			return false
		}
		if ddtpMode == DdtpLevel1 && (ddi2 != 0 || ddi1 != 0) {
			return false
		}
		return true
	}

	if cmd.IsIodirDdt() {
		if dv && !checkWidth(did) {
			return
		}
		m.invalidateDdtCache(did, dv)
		return
	}

	// IODIR.INVAL_PDT: DV must be set and the device must use a process
	// directory.
	if !dv || !checkWidth(did) {
		return
	}
	var dc DeviceContext
	if _, ok := m.LoadDeviceContext(did, &dc); !ok {
		return
	}
	if !dc.Pdtv() {
		return
	}
	pdi1 := procidPdi(pid, 1)
	pdi2 := procidPdi(pid, 2)
	mode := dc.PdtpMode()
	if (mode == PdtpPd17 && pdi2 != 0) ||
		(mode == PdtpPd8 && (pdi2 != 0 || pdi1 != 0)) {
		return
	}
	m.invalidatePdtCache(did, pid)
}

func (m *Iommu) executeIofenceC(cmd Command) bool {
	if cmd.fenceReserved() || (cmd.fenceWsi() && !m.fctl().Wsi()) {
		m.setCqcsrBits(cqcsrCmdIll)
		return false
	}

	pr, pw := cmd.fencePr(), cmd.fencePw()
	av, wsi := cmd.fenceAv(), cmd.fenceWsi()
	addr := cmd.fenceAddr()
	data := cmd.fenceData()

	if m.anyItagBusy() {
		// Outstanding ATS invalidations: stash and stall until all ITAGs
		// are released.
		m.logger.Printf("IOFENCE.C: waiting for %d pending ATS invalidations", m.countBusyItags())
		m.pendingIofence = &pendingIofence{pr: pr, pw: pw, av: av, wsi: wsi, addr: addr, data: data}
		m.iofenceWaiting = true
		return false
	}

	return m.executeIofenceCore(pr, pw, av, wsi, addr, data)
}

func (m *Iommu) executeIofenceCore(pr, pw, av, wsi bool, addr uint64, data uint32) bool {
	// Surface a preceding ATS invalidation timeout before retiring.
	if m.atsInvalTimeout {
		if !Cqcsr(m.ReadCsr(CsrCqcsr)).CmdTo() {
			m.setCqcsrBits(cqcsrCmdTo)
			return false
		}
		m.atsInvalTimeout = false
	}

	// PR/PW ordering is provided by the synchronous memory callbacks.
	_ = pr
	_ = pw

	if av {
		if !m.memWriteSized(addr, 4, false, uint64(data)) {
			m.setCqcsrBits(cqcsrCqmf)
			return false
		}
	}

	if wsi && m.WiredInterrupts() {
		m.setCqcsrBits(cqcsrFenceWIp)
	}

	return true
}

// retryPendingIofence retries a stalled IOFENCE.C once all ITAGs are free.
func (m *Iommu) retryPendingIofence() bool {
	if m.pendingIofence == nil {
		return true
	}
	f := m.pendingIofence
	if !m.executeIofenceCore(f.pr, f.pw, f.av, f.wsi, f.addr, f.data) {
		return false
	}
	m.iofenceWaiting = false
	m.pendingIofence = nil
	m.advanceCqh()
	return true
}

// retryBlockedAtsInval retries a stalled ATS.INVAL once an ITAG is free.
func (m *Iommu) retryBlockedAtsInval() {
	if m.blockedAtsInval == nil {
		return
	}
	b := *m.blockedAtsInval
	itag, ok := m.allocateItag(b)
	if !ok {
		return
	}

	m.logger.Printf("ATS.INVAL: retried blocked request itag=%d devId=%#x", itag, b.devID)
	if m.sendInvalReq != nil {
		m.sendInvalReq(b.devID, b.pid, b.pv, b.addr, b.global, b.scope, itag)
	}
	m.blockedAtsInval = nil
	m.cqStalledForItag = false
	m.advanceCqh()
}

func (m *Iommu) executeIotinval(cmd Command) {
	av := cmd.invalVmaAv()
	pscv := cmd.invalPscv()
	gv := cmd.invalGv()
	addr := cmd.iotinvalAddr()

	if cmd.IsIotinvalVma() {
		if pscv && !av {
			m.logger.Printf("IOTINVAL.VMA: PSCV without AV ignored")
			return
		}
		m.logger.Printf("IOTINVAL.VMA: gv=%v av=%v pscv=%v pscid=%#x gscid=%#x addr=%#x",
			gv, av, pscv, cmd.invalPscid(), cmd.invalGscid(), addr)
		return
	}

	// IOTINVAL.GVMA: PSCV must be zero.
	if pscv {
		m.logger.Printf("IOTINVAL.GVMA: PSCV must be zero")
		return
	}
	m.logger.Printf("IOTINVAL.GVMA: gv=%v av=%v gscid=%#x addr=%#x",
		gv, av, cmd.invalGscid(), addr)
}

// AtsInvalidationCompletion is called by the device when it completes an ATS
// invalidation. itagVector is a bitmap of completed ITAGs;
// completionCount is the expected number of completion messages per ITAG.
func (m *Iommu) AtsInvalidationCompletion(devID uint32, itagVector uint32, completionCount uint8) {
	for i := 0; i < maxItags; i++ {
		if itagVector&(1<<i) == 0 {
			continue
		}
		t := &m.itags[i]
		if !t.busy {
			m.logger.Printf("unexpected completion for idle itag %d", i)
			continue
		}
		if t.devID != devID {
			m.logger.Printf("device id mismatch for itag %d: want %#x got %#x", i, t.devID, devID)
			continue
		}
		t.numRspRcvd++
		if t.numRspRcvd == completionCount {
			t.busy = false
			m.retryBlockedAtsInval()
			if m.iofenceWaiting && !m.anyItagBusy() {
				m.retryPendingIofence()
			}
		}
	}
}

// AtsInvalidationTimeout marks the given ITAGs as timed out. They are
// released immediately; the next IOFENCE.C surfaces the timeout via
// cqcsr.cmd_to.
func (m *Iommu) AtsInvalidationTimeout(itagVector uint32) {
	for i := 0; i < maxItags; i++ {
		if itagVector&(1<<i) != 0 && m.itags[i].busy {
			m.itags[i].busy = false
		}
	}
	m.atsInvalTimeout = true
	m.retryBlockedAtsInval()
	if m.iofenceWaiting && !m.anyItagBusy() {
		m.retryPendingIofence()
	}
}
