package iommu

// Ring buffer helpers shared by the three in-memory queues. A queue is empty
// when head == tail and full when advancing the tail would reach the head.

// QueueAddress returns the base address of the queue rooted at the given
// queue base CSR.
func (m *Iommu) QueueAddress(qbase CsrNumber) uint64 {
	return Qbase(m.ReadCsr(qbase)).Ppn() << 12
}

// QueueCapacity returns the entry capacity of the queue rooted at the given
// queue base CSR.
func (m *Iommu) QueueCapacity(qbase CsrNumber) uint32 {
	return Qbase(m.ReadCsr(qbase)).Capacity()
}

func (m *Iommu) queueFull(qbase, qhead, qtail CsrNumber) bool {
	capa := Qbase(m.ReadCsr(qbase)).Capacity()
	head := uint32(m.ReadCsr(qhead))
	tail := uint32(m.ReadCsr(qtail))
	return (tail+1)%capa == head
}

func (m *Iommu) queueEmpty(qhead, qtail CsrNumber) bool {
	return m.ReadCsr(qhead) == m.ReadCsr(qtail)
}

func (m *Iommu) cqEmpty() bool { return m.queueEmpty(CsrCqh, CsrCqt) }
func (m *Iommu) fqFull() bool  { return m.queueFull(CsrFqb, CsrFqh, CsrFqt) }
func (m *Iommu) pqFull() bool  { return m.queueFull(CsrPqb, CsrPqh, CsrPqt) }

// writeFaultRecord appends a 32-byte fault record at the fault queue tail.
// A full queue sets fqcsr.fqof; a failed store sets fqcsr.fqmf. Neither is
// fatal.
func (m *Iommu) writeFaultRecord(rec FaultRecord) {
	fqcsr := Fqcsr(m.ReadCsr(CsrFqcsr))
	if !fqcsr.Fqon() {
		return
	}

	if m.fqFull() {
		m.pokeCsr(CsrFqcsr, m.ReadCsr(CsrFqcsr)|fqcsrFqof)
		m.updateIpsr(ipsrEventNone)
		return
	}

	fqb := Qbase(m.ReadCsr(CsrFqb))
	fqt := uint32(m.ReadCsr(CsrFqt))
	slotAddr := fqb.Ppn()<<12 + uint64(fqt)*32

	bigEnd := m.bigEndian()
	for i, dw := range rec.pack() {
		if !m.memWriteDouble(slotAddr+uint64(i)*8, bigEnd, dw) {
			m.pokeCsr(CsrFqcsr, m.ReadCsr(CsrFqcsr)|fqcsrFqmf)
			m.updateIpsr(ipsrEventNone)
			return
		}
	}

	m.pokeCsr(CsrFqt, uint64((fqt+1)%fqb.Capacity()))
	m.updateIpsr(ipsrEventNewFault)
}

// writePageRequest appends a 16-byte page request at the page request queue
// tail. Requests are dropped while the queue is off or in an error state.
func (m *Iommu) writePageRequest(req PageRequest) {
	pqcsr := Pqcsr(m.ReadCsr(CsrPqcsr))
	if !pqcsr.Pqon() {
		return
	}
	if pqcsr.Pqmf() || pqcsr.Pqof() {
		return // discard until software clears the error
	}

	if m.pqFull() {
		m.pokeCsr(CsrPqcsr, m.ReadCsr(CsrPqcsr)|pqcsrPqof)
		m.updateIpsr(ipsrEventNone)
		return
	}

	pqb := Qbase(m.ReadCsr(CsrPqb))
	pqt := uint32(m.ReadCsr(CsrPqt))
	slotAddr := pqb.Ppn()<<12 + uint64(pqt)*16

	bigEnd := m.bigEndian()
	for i, dw := range req {
		if !m.memWriteDouble(slotAddr+uint64(i)*8, bigEnd, dw) {
			m.pokeCsr(CsrPqcsr, m.ReadCsr(CsrPqcsr)|pqcsrPqmf)
			m.updateIpsr(ipsrEventNone)
			return
		}
	}

	m.pokeCsr(CsrPqt, uint64((pqt+1)%pqb.Capacity()))
	m.updateIpsr(ipsrEventNewPageRequest)
}

// AtsPageRequest services a "Page Request" PCIe message from a device. The
// request is queued when possible; otherwise, for last-in-group requests, an
// immediate page request group response is sent with the appropriate code.
func (m *Iommu) AtsPageRequest(req PageRequest) {
	devID := req.Did()
	pid := req.Pid()
	pv := req.Pv()
	r, w, last := req.Read(), req.Write(), req.Last()
	prgi := req.Prgi()

	responseCode := PrgrFailure
	rid := devID & 0xffff
	dseg := devID >> 16 & 0xff

	rec := FaultRecord{
		Pid:    pid,
		Pv:     pv,
		Priv:   req.Priv(),
		Ttyp:   TtypePcieMessage,
		Did:    devID,
		Iotval: pcieMsgCodePageReq,
	}

	extended := m.IsDcExtended()
	ddi1 := devidDdi(devID, 1, extended)
	ddi2 := devidDdi(devID, 2, extended)

	ddtpMode := Ddtp(m.ReadCsr(CsrDdtp)).Mode()

	var dc DeviceContext
	send := false

	switch {
	case ddtpMode == DdtpOff:
		rec.Cause = CauseAllInboundDis
		m.writeFaultRecord(rec)
		responseCode = PrgrFailure
		send = true

	case ddtpMode == DdtpBare ||
		(ddtpMode == DdtpLevel2 && ddi2 != 0) ||
		(ddtpMode == DdtpLevel1 && (ddi2 != 0 || ddi1 != 0)):
		rec.Cause = CauseTransTypeDis
		m.writeFaultRecord(rec)
		responseCode = PrgrInvalidRequest
		send = true

	default:
		if cause, ok := m.LoadDeviceContext(devID, &dc); !ok {
			rec.Cause = cause
			m.writeFaultRecord(rec)
			responseCode = PrgrFailure
			send = true
		}
	}

	prpr := false
	if !send {
		prpr = dc.Prpr()
		pqcsr := Pqcsr(m.ReadCsr(CsrPqcsr))
		switch {
		case !dc.Pri():
			rec.Cause = CauseTransTypeDis
			m.writeFaultRecord(rec)
			responseCode = PrgrInvalidRequest
			send = true
		case !pqcsr.Pqon() || !pqcsr.Pqen() || pqcsr.Pqmf():
			responseCode = PrgrFailure
			send = true
		case pqcsr.Pqof():
			responseCode = PrgrSuccess
			send = true
		}
	}

	if !send {
		before := Pqcsr(m.ReadCsr(CsrPqcsr))
		m.writePageRequest(req)
		after := Pqcsr(m.ReadCsr(CsrPqcsr))
		switch {
		case after.Pqof() && !before.Pqof():
			responseCode = PrgrSuccess
			send = true
		case after.Pqmf() && !before.Pqmf():
			responseCode = PrgrFailure
			send = true
		}
	}

	if !send {
		return
	}

	// Only respond to last-in-group requests that ask for a response.
	if !last || (last && !r && !w) {
		return
	}
	if m.sendPrgr == nil {
		return
	}

	// PRPR gates the PASID in Invalid/Success responses.
	includePasid := pv
	if responseCode == PrgrInvalidRequest || responseCode == PrgrSuccess {
		includePasid = prpr && pv
	}
	respPid := uint32(0)
	if includePasid {
		respPid = pid
	}
	m.sendPrgr(rid, respPid, includePasid, prgi, responseCode, m.Dsv, dseg)
}
