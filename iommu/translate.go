package iommu

// Translate performs an address translation request. It returns the host
// physical address on success; on failure it returns the fault cause and,
// unless reporting is suppressed by DC.tc.DTF, appends a fault record to the
// fault queue.
func (m *Iommu) Translate(req *Request) (pa uint64, cause uint32, ok bool) {
	pa, cause, repFault, ok := m.translate(req)
	if ok {
		return pa, 0, true
	}

	if repFault {
		rec := FaultRecord{
			Cause: cause,
			Ttyp:  req.Type,
		}
		switch req.Type {
		case TtypeUntransExec, TtypeUntransRead, TtypeUntransWrite,
			TtypeTransExec, TtypeTransRead, TtypeTransWrite, TtypePcieAts:
			rec.Did = req.DevID
			rec.Pv = req.HasProcID
			if rec.Pv {
				rec.Pid = req.ProcID
				rec.Priv = req.PrivMode == PrivSupervisor
			}
			rec.Iotval = req.Iova
			if cause == CauseInstGuestPage || cause == CauseLoadGuestPage ||
				cause == CauseStoreGuestPage {
				rec.Iotval2 = m.guestPageFaultInfo()
			}
		}
		m.writeFaultRecord(rec)
	}

	return 0, cause, false
}

// guestPageFaultInfo encodes the stage-2 trap side band into iotval2:
// bits 63:2 hold the guest physical address, bit 0 the implicit flag and
// bit 1 the implicit-write flag.
func (m *Iommu) guestPageFaultInfo() uint64 {
	if m.stage2TrapInfo == nil {
		return 0
	}
	gpa, implicit, write := m.stage2TrapInfo()
	iotval2 := gpa >> 2 << 2
	if implicit {
		iotval2 |= 1
		if write {
			iotval2 |= 2
		}
	}
	return iotval2
}

// translate is the core translation walk. repFault reports whether a failing
// translation should be written to the fault queue.
func (m *Iommu) translate(req *Request) (pa uint64, cause uint32, repFault, ok bool) {
	m.deviceDirWalk = m.deviceDirWalk[:0]
	m.processDirWalk = m.processDirWalk[:0]

	repFault = true
	processID := req.ProcID

	if req.IsTranslated() {
		m.countEvent(HpmEventTranslatedReq, req.HasProcID, req.ProcID, false, 0, req.DevID, false, 0)
	} else if !req.IsAts() {
		m.countEvent(HpmEventUntranslatedReq, req.HasProcID, req.ProcID, false, 0, req.DevID, false, 0)
	} else {
		m.countEvent(HpmEventAtsReq, req.HasProcID, req.ProcID, false, 0, req.DevID, false, 0)
	}

	ddtp := Ddtp(m.ReadCsr(CsrDdtp))

	// Step 1: mode Off disallows all inbound transactions.
	if ddtp.Mode() == DdtpOff {
		return 0, CauseAllInboundDis, repFault, false
	}

	// Step 2: mode Bare passes untranslated requests through unchanged and
	// rejects translated and ATS requests.
	if ddtp.Mode() == DdtpBare {
		if req.IsTranslated() || req.IsAts() {
			return 0, CauseTransTypeDis, repFault, false
		}
		return req.Iova, 0, repFault, true
	}

	// Steps 3-5: check the device id against the directory depth.
	extended := m.IsDcExtended()
	ddi1 := devidDdi(req.DevID, 1, extended)
	ddi2 := devidDdi(req.DevID, 2, extended)
	if (ddtp.Mode() == DdtpLevel2 && ddi2 != 0) ||
		(ddtp.Mode() == DdtpLevel1 && (ddi2 != 0 || ddi1 != 0)) {
		return 0, CauseTransTypeDis, repFault, false
	}

	// Step 6: locate the device context.
	var dc DeviceContext
	if cause, okDc := m.LoadDeviceContext(req.DevID, &dc); !okDc {
		return 0, cause, repFault, false
	}

	if len(m.deviceDirWalk) != 0 {
		gscv := dc.IohgatpMode() != IohgatpBare
		pscv := dc.Pscid() != 0
		m.countEvent(HpmEventDdtWalk, req.HasProcID, req.ProcID, pscv, dc.Pscid(),
			req.DevID, gscv, dc.IohgatpGscid())
	}

	dtf := dc.Dtf()

	// Step 7: permission gates.
	if ((req.IsTranslated() || req.IsAts()) && !dc.Ats()) ||
		(req.HasProcID && !dc.Pdtv()) {
		return 0, CauseTransTypeDis, !dtf, false
	}
	if req.HasProcID && dc.Pdtv() {
		pdi1 := procidPdi(req.ProcID, 1)
		pdi2 := procidPdi(req.ProcID, 2)
		mode := dc.PdtpMode()
		if (mode == PdtpPd17 && pdi2 != 0) ||
			(mode == PdtpPd8 && (pdi2 != 0 || pdi1 != 0)) {
			return 0, CauseTransTypeDis, !dtf, false
		}
	}

	// Step 8: a translated request with T2GPA clear is already complete.
	if req.IsTranslated() && !dc.T2gpa() {
		return req.Iova, 0, repFault, true
	}

	// Steps 9-16: select the first-stage root.
	var pscid uint32
	sum := false
	iohgatp := dc.Iohgatp
	iosatp := uint64(IosatpBare) << 60
	if !dc.Pdtv() {
		iosatp = dc.Iosatp()
	}

	switch {
	case req.IsTranslated() && dc.T2gpa():
		// The iova is a GPA; first stage is Bare.
		iosatp = uint64(IosatpBare) << 60

	case !dc.Pdtv():
		pscid = dc.Pscid()

	default:
		if dc.Dpe() && !req.HasProcID {
			processID = 0
		}
		if !dc.Dpe() && !req.HasProcID {
			iosatp = uint64(IosatpBare) << 60
		} else if dc.PdtpMode() == PdtpBare {
			iosatp = uint64(IosatpBare) << 60
		} else {
			var pc ProcessContext
			if cause, okPc := m.LoadProcessContext(&dc, req.DevID, processID, &pc); !okPc {
				return 0, cause, !dc.Dtf(), false
			}
			if len(m.processDirWalk) != 0 {
				gscv := dc.IohgatpMode() != IohgatpBare
				m.countEvent(HpmEventPdtWalk, req.HasProcID, req.ProcID, pc.Valid(),
					pc.Pscid(), req.DevID, gscv, dc.IohgatpGscid())
			}
			if req.PrivMode == PrivSupervisor && !pc.Ens() {
				return 0, CauseTransTypeDis, !dtf, false
			}
			iosatp = pc.Fsc
			pscid = pc.Pscid()
			sum = pc.Sum()
		}
	}

	// Step 17: first-stage translation.
	gpa := req.Iova
	if g, cause, okS1 := m.stage1Translate(iosatp, iohgatp, req.PrivMode, pscid,
		req.IsRead(), req.IsWrite(), req.IsExec(), sum, req.Iova); okS1 {
		gpa = g
	} else {
		return 0, cause, !dtf, false
	}

	// Step 18: MSI remap.
	if extended && dc.MsiMode() != MsiOff {
		res, cause := m.msiTranslate(&dc, req, gpa)
		if res != nil {
			pa = res.Pa
			return pa, 0, repFault, true
		}
		if cause != 0 {
			return 0, cause, !dtf, false
		}
		// Not an MSI address; continue with the regular walk.
	}

	// Step 19: second-stage translation.
	if p, cause, okS2 := m.stage2Translate(iohgatp, req.PrivMode,
		req.IsRead(), req.IsWrite(), req.IsExec(), gpa); okS2 {
		pa = p
	} else {
		return 0, cause, !dtf, false
	}

	return pa, 0, repFault, true
}

// LoadDeviceContext walks the device directory tree for the given device id.
// A cached context is returned without touching memory.
func (m *Iommu) LoadDeviceContext(devID uint32, dc *DeviceContext) (cause uint32, ok bool) {
	m.deviceDirWalk = m.deviceDirWalk[:0]

	if entry := m.findDdtCacheEntry(devID); entry != nil {
		*dc = entry.dc
		return 0, true
	}

	extended := m.IsDcExtended()
	bigEnd := m.bigEndian()
	ddtp := Ddtp(m.ReadCsr(CsrDdtp))

	addr := ddtp.Ppn() * pageSize
	levels := ddtp.Levels()
	if levels == 0 {
		return CauseDdtNotValid, false
	}

	for i := levels - 1; i > 0; i-- {
		ddteAddr := addr + uint64(devidDdi(devID, i, extended))*8
		ddteVal, okRead := m.memReadDouble(ddteAddr, bigEnd)
		if !okRead {
			return CauseDdtLoadFault, false
		}
		m.deviceDirWalk = append(m.deviceDirWalk, WalkEntry{ddteAddr, ddteVal})

		ddte := Ddte(ddteVal)
		if !ddte.Valid() {
			return CauseDdtNotValid, false
		}
		if ddte.reservedBits() {
			return CauseDdtMisconfigured, false
		}
		addr = ddte.Ppn() * pageSize
	}

	dcSize := deviceContextSize(extended)
	dcAddr := addr + uint64(devidDdi(devID, 0, extended))*dcSize
	var dwords [8]uint64
	for i := uint64(0); i < dcSize/8; i++ {
		v, okRead := m.memReadDouble(dcAddr+i*8, bigEnd)
		if !okRead {
			return CauseDdtLoadFault, false
		}
		dwords[i] = v
	}

	*dc = DeviceContext{
		Tc: dwords[0], Iohgatp: dwords[1], Ta: dwords[2], Fsc: dwords[3],
		Msiptp: dwords[4], Msimask: dwords[5], Msipat: dwords[6], Resv: dwords[7],
	}

	if !dc.Valid() {
		return CauseDdtNotValid, false
	}
	if m.misconfiguredDc(dc) {
		return CauseDdtMisconfigured, false
	}

	m.updateDdtCache(devID, dc)
	return 0, true
}

// LoadProcessContext walks the process directory tree of the given device
// context. Intermediate table addresses undergo second-stage translation
// when IOHGATP is not Bare.
func (m *Iommu) LoadProcessContext(dc *DeviceContext, devID, pid uint32,
	pc *ProcessContext) (cause uint32, ok bool) {

	m.processDirWalk = m.processDirWalk[:0]

	if entry := m.findPdtCacheEntry(devID, pid); entry != nil {
		*pc = entry.pc
		return 0, true
	}

	bigEnd := dc.Sbe()
	addr := dc.PdtpPpn() * pageSize
	levels := dc.ProcessTableLevels()
	if levels == 0 {
		return CausePdtNotValid, false
	}

	i := levels - 1
	for {
		// The table address is a GPA under non-Bare IOHGATP: implicit
		// second-stage translation.
		if dc.IohgatpMode() != IohgatpBare {
			pa, cause2, okS2 := m.stage2Translate(dc.Iohgatp, PrivUser,
				true, false, false, addr)
			if !okS2 {
				return cause2, false
			}
			addr = pa
		}

		if i == 0 {
			break
		}

		pdteAddr := addr + uint64(procidPdi(pid, i))*8
		pdteVal, okRead := m.memReadDouble(pdteAddr, bigEnd)
		if !okRead {
			return CausePdtLoadFault, false
		}
		m.processDirWalk = append(m.processDirWalk, WalkEntry{pdteAddr, pdteVal})

		pdte := Pdte(pdteVal)
		if !pdte.Valid() {
			return CausePdtNotValid, false
		}
		if pdteVal&pdteResMask != 0 {
			return CausePdtMisconfigured, false
		}
		i--
		addr = pdte.Ppn() * pageSize
	}

	pcAddr := addr + uint64(procidPdi(pid, 0))*16
	ta, ok1 := m.memReadDouble(pcAddr, bigEnd)
	fsc, ok2 := m.memReadDouble(pcAddr+8, bigEnd)
	if !ok1 || !ok2 {
		return CausePdtLoadFault, false
	}
	pc.Ta, pc.Fsc = ta, fsc

	if !pc.Valid() {
		return CausePdtNotValid, false
	}
	if m.misconfiguredPc(pc, dc.Sxl()) {
		return CausePdtMisconfigured, false
	}

	m.updatePdtCache(devID, pid, pc)
	return 0, true
}

// misconfiguredDc applies the device context validation rules.
func (m *Iommu) misconfiguredDc(dc *DeviceContext) bool {
	caps := m.capabilities()
	fctl := m.fctl()
	extended := caps.MsiFlat()

	if dc.NonZeroReservedBits(extended, caps.Qosid()) {
		return true
	}

	if !caps.Ats() && (dc.Ats() || dc.Pri() || dc.Prpr()) {
		return true
	}
	if !dc.Ats() && (dc.T2gpa() || dc.Pri()) {
		return true
	}
	if !dc.Pri() && dc.Prpr() {
		return true
	}
	if !caps.T2gpa() && dc.T2gpa() {
		return true
	}
	if dc.T2gpa() && dc.IohgatpMode() == IohgatpBare {
		return true
	}

	if dc.Pdtv() {
		mode := dc.PdtpMode()
		if mode != PdtpBare && mode != PdtpPd8 && mode != PdtpPd17 && mode != PdtpPd20 {
			return true
		}
		if !caps.Pd20() && mode == PdtpPd20 {
			return true
		}
		if !caps.Pd17() && mode == PdtpPd17 {
			return true
		}
		if !caps.Pd8() && mode == PdtpPd8 {
			return true
		}
	} else {
		mode := dc.IosatpMode()
		if dc.Sxl() {
			if mode != IosatpBare && mode != IosatpSv32 {
				return true
			}
			if !caps.Sv32() && mode == IosatpSv32 {
				return true
			}
		} else {
			if mode != IosatpBare && mode != IosatpSv39 && mode != IosatpSv48 &&
				mode != IosatpSv57 {
				return true
			}
			if !caps.Sv39() && mode == IosatpSv39 {
				return true
			}
			if !caps.Sv48() && mode == IosatpSv48 {
				return true
			}
			if !caps.Sv57() && mode == IosatpSv57 {
				return true
			}
		}
		if dc.Dpe() {
			return true
		}
	}

	gmode := dc.IohgatpMode()
	if fctl.Gxl() {
		if gmode != IohgatpBare && gmode != IohgatpSv32x4 {
			return true
		}
		if !caps.Sv32x4() && gmode == IohgatpSv32x4 {
			return true
		}
	} else {
		if gmode != IohgatpBare && gmode != IohgatpSv39x4 &&
			gmode != IohgatpSv48x4 && gmode != IohgatpSv57x4 {
			return true
		}
		if !caps.Sv39x4() && gmode == IohgatpSv39x4 {
			return true
		}
		if !caps.Sv48x4() && gmode == IohgatpSv48x4 {
			return true
		}
		if !caps.Sv57x4() && gmode == IohgatpSv57x4 {
			return true
		}
	}

	msiMode := dc.MsiMode()
	if extended && msiMode != MsiOff && msiMode != MsiFlat {
		return true
	}

	// A non-Bare second-stage root must be 16 KiB aligned.
	if gmode != IohgatpBare && dc.IohgatpPpn()&3 != 0 {
		return true
	}

	if !caps.AmoHwad() && (dc.Sade() || dc.Gade()) {
		return true
	}

	if !caps.End() && fctl.Be() != dc.Sbe() {
		return true
	}

	// SXL legality relative to GXL.
	if fctl.Gxl() && !dc.Sxl() {
		return true
	}
	if !fctl.Gxl() && !m.gxlWritable && dc.Sxl() {
		return true
	}

	// SBE legality relative to BE.
	if !m.beWritable && dc.Sbe() != fctl.Be() {
		return true
	}

	if caps.Qosid() &&
		(dc.Rcid()>>m.rcidWidth != 0 || dc.Mcid()>>m.mcidWidth != 0) {
		return true
	}

	// When the second stage is Bare the MSI table must be Off.
	if gmode == IohgatpBare && msiMode != MsiOff {
		return true
	}

	return false
}

// misconfiguredPc applies the process context validation rules.
func (m *Iommu) misconfiguredPc(pc *ProcessContext, sxl bool) bool {
	caps := m.capabilities()

	if pc.NonZeroReservedBits() {
		return true
	}

	mode := pc.IosatpMode()
	if sxl {
		if mode != IosatpBare && mode != IosatpSv32 {
			return true
		}
		if !caps.Sv32() && mode == IosatpSv32 {
			return true
		}
	} else {
		if mode != IosatpBare && mode != IosatpSv39 && mode != IosatpSv48 &&
			mode != IosatpSv57 {
			return true
		}
		if !caps.Sv39() && mode == IosatpSv39 {
			return true
		}
		if !caps.Sv48() && mode == IosatpSv48 {
			return true
		}
		if !caps.Sv57() && mode == IosatpSv57 {
			return true
		}
	}

	return false
}

// msiResult is the outcome of a successful MSI translation.
type msiResult struct {
	Pa     uint64 // translated address (basic mode)
	IsMrif bool
	Mrif   uint64 // MRIF memory address
	Nppn   uint64 // notice MSI destination address
	Nid    uint32 // 11-bit notice interrupt id
}

// msiTranslate performs MSI address translation for a guest physical
// address. A nil result with a zero cause means the address is not an MSI
// address and the regular walk applies.
func (m *Iommu) msiTranslate(dc *DeviceContext, req *Request, gpa uint64) (*msiResult, uint32) {
	if !m.IsDcExtended() {
		return nil, 0
	}
	if !dc.IsMsiAddress(gpa) {
		return nil, 0
	}

	bigEnd := m.bigEndian()

	// Extract the interrupt file number and locate the 16-byte PTE.
	file := ExtractMsiBits(gpa>>12, dc.MsiMask())
	root := dc.MsiPpn() * pageSize
	pteAddr := root | file*16

	pte0, ok0 := m.memReadDouble(pteAddr, bigEnd)
	pte1, ok1 := m.memReadDouble(pteAddr+8, bigEnd)
	if !ok0 || !ok1 {
		return nil, CauseMsiLoadFault
	}

	p0 := msiPte0(pte0)
	if !p0.valid() {
		return nil, CauseMsiNotValid
	}
	// Custom PTEs are implementation defined; treat as misconfigured.
	if p0.custom() {
		return nil, CauseMsiMisconfigured
	}
	if p0.mode() != msiPteBasic && p0.mode() != msiPteMrif {
		return nil, CauseMsiMisconfigured
	}

	res := &msiResult{}

	if p0.mode() == msiPteBasic {
		if p0.reservedBits() || pte1 != 0 {
			return nil, CauseMsiMisconfigured
		}
		res.Pa = p0.ppn()<<12 | gpa&0xfff
	} else { // MRIF
		if !m.capabilities().MsiMrif() {
			return nil, CauseMsiMisconfigured
		}
		mp0 := msiMrifPte0(pte0)
		mp1 := msiMrifPte1(pte1)
		if mp0.reservedBits() || mp1.reservedBits() {
			return nil, CauseMsiMisconfigured
		}
		res.IsMrif = true
		res.Mrif = mp0.addr() * 512
		res.Nppn = mp1.nppn() << 12
		res.Nid = mp1.nid()
	}

	// The implied permissions are R=W=U=1, X=0: an execute access always
	// faults.
	if req.IsExec() {
		return nil, CauseInstAccess
	}

	return res, 0
}

// stage1Translate configures both walkers and runs the first stage.
func (m *Iommu) stage1Translate(iosatp, iohgatp uint64, priv PrivilegeMode,
	pscid uint32, r, w, x, sum bool, va uint64) (uint64, uint32, bool) {

	satp := Iosatp(iosatp)
	m.stage1Config(uint32(satp.Mode()), pscid, satp.Ppn(), sum)

	hgatp := Iohgatp(iohgatp)
	m.stage2Config(uint32(hgatp.Mode()), hgatp.Gscid(), hgatp.Ppn())

	return m.stage1(va, priv, r, w, x)
}

// stage2Translate configures the second-stage walker and runs it.
func (m *Iommu) stage2Translate(iohgatp uint64, priv PrivilegeMode,
	r, w, x bool, gpa uint64) (uint64, uint32, bool) {

	hgatp := Iohgatp(iohgatp)
	m.stage2Config(uint32(hgatp.Mode()), hgatp.Gscid(), hgatp.Ppn())
	return m.stage2(gpa, priv, r, w, x)
}

// ReadForDevice translates the request and reads host memory on behalf of
// the device.
func (m *Iommu) ReadForDevice(req *Request) (data uint64, cause uint32, ok bool) {
	if !req.IsRead() {
		return 0, 0, false
	}
	pa, cause, ok := m.Translate(req)
	if !ok {
		return 0, cause, false
	}
	data, okRead := m.memReadSized(pa, req.Size, false)
	return data, 0, okRead
}

// WriteForDevice translates the request and writes host memory on behalf of
// the device.
func (m *Iommu) WriteForDevice(req *Request, data uint64) (cause uint32, ok bool) {
	if !req.IsWrite() {
		return 0, false
	}
	pa, cause, ok := m.Translate(req)
	if !ok {
		return cause, false
	}
	return 0, m.memWriteSized(pa, req.Size, false, data)
}

// T2gpaTranslate runs the first stage only and returns a guest physical
// address, for devices operating under T2GPA containment.
func (m *Iommu) T2gpaTranslate(req *Request) (gpa uint64, cause uint32, ok bool) {
	m.deviceDirWalk = m.deviceDirWalk[:0]
	m.processDirWalk = m.processDirWalk[:0]

	ddtp := Ddtp(m.ReadCsr(CsrDdtp))
	if ddtp.Mode() == DdtpOff {
		return 0, CauseAllInboundDis, false
	}
	if ddtp.Mode() == DdtpBare {
		return req.Iova, 0, true
	}

	var dc DeviceContext
	if cause, okDc := m.LoadDeviceContext(req.DevID, &dc); !okDc {
		return 0, cause, false
	}
	if !dc.Ats() || !dc.T2gpa() {
		return 0, CauseTransTypeDis, false
	}

	r := req.IsRead() || req.IsExec()
	w := req.IsWrite()
	x := req.IsExec()

	if dc.Pdtv() {
		if !req.HasProcID && !dc.Dpe() {
			return 0, CauseTransTypeDis, false
		}
		procID := uint32(0)
		if req.HasProcID {
			procID = req.ProcID
		}
		var pc ProcessContext
		if cause, okPc := m.LoadProcessContext(&dc, req.DevID, procID, &pc); !okPc {
			return 0, cause, false
		}
		return m.stage1Translate(pc.Fsc, dc.Iohgatp, req.PrivMode, pc.Pscid(),
			r, w, x, pc.Sum(), req.Iova)
	}

	return m.stage1Translate(dc.Iosatp(), dc.Iohgatp, req.PrivMode, dc.Pscid(),
		r, w, x, false, req.Iova)
}

// AtsTranslate services a PCIe ATS translation request and fills the
// completion fields.
func (m *Iommu) AtsTranslate(req *Request) (AtsResponse, uint32) {
	var resp AtsResponse
	pa, cause, ok := m.Translate(req)
	resp.Success = ok
	if !ok {
		resp.IsCompleterAbort = cause == CauseInstAccess ||
			cause == CauseLoadAccess || cause == CauseStoreAccess ||
			cause == CauseMsiLoadFault || cause == CauseMsiMisconfigured ||
			cause == CausePdtLoadFault || cause == CausePdtMisconfigured
	}
	resp.TranslatedAddr = pa
	resp.WritePerm = req.IsWrite()
	resp.ExecPerm = req.IsExec()
	resp.PrivMode = req.HasProcID && req.PrivMode == PrivSupervisor
	return resp, cause
}

// processDebugTranslation services the debug translation interface: it runs
// the request described by tr_req_iova/tr_req_ctl and deposits the outcome
// into tr_response, then clears go_busy.
func (m *Iommu) processDebugTranslation() {
	ctl := TrReqCtl(m.ReadCsr(CsrTrReqCtl))

	req := Request{
		DevID:     ctl.Did(),
		HasProcID: ctl.Pv(),
		ProcID:    ctl.Pid(),
		Iova:      m.ReadCsr(CsrTrReqIova),
		Size:      1,
	}
	if ctl.Nw() {
		req.Type = TtypeUntransRead
	} else {
		req.Type = TtypeUntransWrite
	}
	if ctl.Priv() {
		req.PrivMode = PrivSupervisor
	} else {
		req.PrivMode = PrivUser
	}

	pa, _, ok := m.Translate(&req)
	if ok {
		m.pokeCsr(CsrTrResponse, trResponse(false, pa>>12, false))
	} else {
		m.pokeCsr(CsrTrResponse, trResponse(true, 0, false))
	}

	m.pokeCsr(CsrTrReqCtl, uint64(ctl)&^uint64(trReqCtlGoBusy))
}
