package iommu

// Hardware performance monitoring: a 63-bit cycle counter and 31 event
// counters with per-counter event selection and filtering.

// IncrementCycles advances the iohpmcycles counter by one unless counting is
// inhibited. An overflow wrap sets the OF bit and raises the perf-monitor
// interrupt.
func (m *Iommu) IncrementCycles() {
	if !m.capabilities().Hpm() {
		return
	}
	if m.ReadCsr(CsrIocountinh)&1 != 0 { // cycle inhibit
		return
	}
	cyc := Iohpmcycles(m.ReadCsr(CsrIohpmcycles))
	counter := (cyc.Counter() + 1) & 0x7fffffffffffffff
	next := counter | boolBit(cyc.Of(), 63)
	m.pokeCsr(CsrIohpmcycles, next)
	if counter == 0 && !cyc.Of() {
		m.pokeCsr(CsrIohpmcycles, next|1<<63)
		m.updateIpsr(ipsrEventHpmOverflow)
	}
}

// readIocountovf derives the read-only overflow summary register from the
// counter OF bits.
func (m *Iommu) readIocountovf() uint64 {
	if !m.capabilities().Hpm() {
		return 0
	}
	var v uint64
	if Iohpmcycles(m.ReadCsr(CsrIohpmcycles)).Of() {
		v |= 1
	}
	for i := 0; i < 31; i++ {
		if Iohpmevt(m.ReadCsr(CsrIohpmevt1 + CsrNumber(i))).Of() {
			v |= 1 << (i + 1)
		}
	}
	return v
}

// countEvent bumps every enabled counter whose event selector matches the
// given event. The IDT bit of the selector picks between DID/PID filtering
// (untranslated requests) and GSCID/PSCID filtering (translated requests).
func (m *Iommu) countEvent(event HpmEventID, pv bool, pid uint32,
	pscv bool, pscid uint32, did uint32, gscv bool, gscid uint32) {

	if !m.capabilities().Hpm() {
		return
	}
	inhibit := uint32(m.ReadCsr(CsrIocountinh)) >> 1 // bit i+1 inhibits counter i+1

	for i := 0; i < 31; i++ {
		if inhibit>>i&1 != 0 {
			continue
		}
		evt := Iohpmevt(m.ReadCsr(CsrIohpmevt1 + CsrNumber(i)))
		if evt.EventID() != uint32(event) {
			continue
		}

		idt := evt.Idt()
		processIDValid := pv
		processIDValue := pid
		deviceIDValid := true
		deviceIDValue := did
		if idt {
			processIDValid = pscv
			processIDValue = pscid
			deviceIDValid = gscv
			deviceIDValue = gscid
		}

		if evt.PvPscv() {
			if !processIDValid || evt.PidPscid() != processIDValue {
				continue
			}
		}
		if evt.DvGscv() {
			if !deviceIDValid {
				continue
			}
			mask := uint32(0xffffff)
			if evt.Dmask() {
				// Range match: the low bits of did_gscid up to and
				// including its first zero bit are wild.
				mask = evt.DidGscid() + 1
				mask = ^(mask ^ evt.DidGscid())
			}
			if evt.DidGscid()&mask != deviceIDValue&mask {
				continue
			}
		}

		ctr := m.ReadCsr(CsrIohpmctr1+CsrNumber(i)) + 1
		m.pokeCsr(CsrIohpmctr1+CsrNumber(i), ctr)
		if ctr == 0 && !evt.Of() {
			m.pokeCsr(CsrIohpmevt1+CsrNumber(i), uint64(evt)|iohpmevtOf)
			m.updateIpsr(ipsrEventHpmOverflow)
		}
	}
}
