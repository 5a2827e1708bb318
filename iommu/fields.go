package iommu

// Typed views over the packed register layouts. Go has no C unions; each view
// wraps the raw integer and exposes the fields at their architectural bit
// positions.

// bits extracts bits hi..lo of v.
func bits(v uint64, hi, lo uint) uint64 {
	return v >> lo & (1<<(hi-lo+1) - 1)
}

func bit(v uint64, n uint) bool { return v>>n&1 != 0 }

func boolBit(b bool, n uint) uint64 {
	if b {
		return 1 << n
	}
	return 0
}

// Capabilities is the read-only capabilities CSR.
type Capabilities uint64

func (c Capabilities) Version() uint32 { return uint32(bits(uint64(c), 7, 0)) }
func (c Capabilities) Sv32() bool      { return bit(uint64(c), 8) }
func (c Capabilities) Sv39() bool      { return bit(uint64(c), 9) }
func (c Capabilities) Sv48() bool      { return bit(uint64(c), 10) }
func (c Capabilities) Sv57() bool      { return bit(uint64(c), 11) }
func (c Capabilities) Svpbmt() bool    { return bit(uint64(c), 15) }
func (c Capabilities) Sv32x4() bool    { return bit(uint64(c), 16) }
func (c Capabilities) Sv39x4() bool    { return bit(uint64(c), 17) }
func (c Capabilities) Sv48x4() bool    { return bit(uint64(c), 18) }
func (c Capabilities) Sv57x4() bool    { return bit(uint64(c), 19) }
func (c Capabilities) AmoMrif() bool   { return bit(uint64(c), 21) }
func (c Capabilities) MsiFlat() bool   { return bit(uint64(c), 22) }
func (c Capabilities) MsiMrif() bool   { return bit(uint64(c), 23) }
func (c Capabilities) AmoHwad() bool   { return bit(uint64(c), 24) }
func (c Capabilities) Ats() bool       { return bit(uint64(c), 25) }
func (c Capabilities) T2gpa() bool     { return bit(uint64(c), 26) }
func (c Capabilities) End() bool       { return bit(uint64(c), 27) }
func (c Capabilities) Igs() IgsMode    { return IgsMode(bits(uint64(c), 29, 28)) }
func (c Capabilities) Hpm() bool       { return bit(uint64(c), 30) }
func (c Capabilities) Debug() bool     { return bit(uint64(c), 31) }
func (c Capabilities) Pas() uint32     { return uint32(bits(uint64(c), 37, 32)) }
func (c Capabilities) Pd8() bool       { return bit(uint64(c), 38) }
func (c Capabilities) Pd17() bool      { return bit(uint64(c), 39) }
func (c Capabilities) Pd20() bool      { return bit(uint64(c), 40) }
func (c Capabilities) Qosid() bool     { return bit(uint64(c), 41) }

// IgsMode is the interrupt generation support field of the capabilities CSR.
type IgsMode uint32

const (
	IgsMsi IgsMode = iota
	IgsWsi
	IgsBoth
	IgsReserved
)

// Fctl is the features control CSR.
type Fctl uint32

func (f Fctl) Be() bool  { return bit(uint64(f), 0) }
func (f Fctl) Wsi() bool { return bit(uint64(f), 1) }
func (f Fctl) Gxl() bool { return bit(uint64(f), 2) }

// DdtpMode is the device directory table mode.
type DdtpMode uint32

const (
	DdtpOff DdtpMode = iota
	DdtpBare
	DdtpLevel1
	DdtpLevel2
	DdtpLevel3
)

// Ddtp is the device directory table pointer CSR.
type Ddtp uint64

func (d Ddtp) Mode() DdtpMode { return DdtpMode(bits(uint64(d), 3, 0)) }
func (d Ddtp) Busy() bool     { return bit(uint64(d), 4) }
func (d Ddtp) Ppn() uint64    { return bits(uint64(d), 53, 10) }

// Levels returns the number of directory levels, zero when the mode encodes
// none.
func (d Ddtp) Levels() int {
	switch d.Mode() {
	case DdtpLevel1:
		return 1
	case DdtpLevel2:
		return 2
	case DdtpLevel3:
		return 3
	}
	return 0
}

// Qbase is the layout shared by cqb, fqb and pqb.
type Qbase uint64

func (q Qbase) Log2szm1() uint32 { return uint32(bits(uint64(q), 4, 0)) }
func (q Qbase) Ppn() uint64      { return bits(uint64(q), 53, 10) }

// Capacity returns the number of entries in the queue buffer.
func (q Qbase) Capacity() uint32 { return 1 << (q.Log2szm1() + 1) }

// Cqcsr field positions.
type Cqcsr uint32

func (c Cqcsr) Cqen() bool     { return bit(uint64(c), 0) }
func (c Cqcsr) Cie() bool      { return bit(uint64(c), 1) }
func (c Cqcsr) Cqmf() bool     { return bit(uint64(c), 8) }
func (c Cqcsr) CmdTo() bool    { return bit(uint64(c), 9) }
func (c Cqcsr) CmdIll() bool   { return bit(uint64(c), 10) }
func (c Cqcsr) FenceWIp() bool { return bit(uint64(c), 11) }
func (c Cqcsr) Cqon() bool     { return bit(uint64(c), 16) }
func (c Cqcsr) Busy() bool     { return bit(uint64(c), 17) }

const (
	cqcsrCqen     = 1 << 0
	cqcsrCie      = 1 << 1
	cqcsrCqmf     = 1 << 8
	cqcsrCmdTo    = 1 << 9
	cqcsrCmdIll   = 1 << 10
	cqcsrFenceWIp = 1 << 11
	cqcsrCqon     = 1 << 16
	cqcsrBusy     = 1 << 17
)

// Fqcsr field positions.
type Fqcsr uint32

func (f Fqcsr) Fqen() bool { return bit(uint64(f), 0) }
func (f Fqcsr) Fie() bool  { return bit(uint64(f), 1) }
func (f Fqcsr) Fqmf() bool { return bit(uint64(f), 8) }
func (f Fqcsr) Fqof() bool { return bit(uint64(f), 9) }
func (f Fqcsr) Fqon() bool { return bit(uint64(f), 16) }
func (f Fqcsr) Busy() bool { return bit(uint64(f), 17) }

const (
	fqcsrFqen = 1 << 0
	fqcsrFie  = 1 << 1
	fqcsrFqmf = 1 << 8
	fqcsrFqof = 1 << 9
	fqcsrFqon = 1 << 16
	fqcsrBusy = 1 << 17
)

// Pqcsr field positions.
type Pqcsr uint32

func (p Pqcsr) Pqen() bool { return bit(uint64(p), 0) }
func (p Pqcsr) Pie() bool  { return bit(uint64(p), 1) }
func (p Pqcsr) Pqmf() bool { return bit(uint64(p), 8) }
func (p Pqcsr) Pqof() bool { return bit(uint64(p), 9) }
func (p Pqcsr) Pqon() bool { return bit(uint64(p), 16) }
func (p Pqcsr) Busy() bool { return bit(uint64(p), 17) }

const (
	pqcsrPqen = 1 << 0
	pqcsrPie  = 1 << 1
	pqcsrPqmf = 1 << 8
	pqcsrPqof = 1 << 9
	pqcsrPqon = 1 << 16
	pqcsrBusy = 1 << 17
)

// Ipsr field positions (all RW1C).
type Ipsr uint32

func (i Ipsr) Cip() bool  { return bit(uint64(i), 0) }
func (i Ipsr) Fip() bool  { return bit(uint64(i), 1) }
func (i Ipsr) Pmip() bool { return bit(uint64(i), 2) }
func (i Ipsr) Pip() bool  { return bit(uint64(i), 3) }

const (
	ipsrCip  = 1 << 0
	ipsrFip  = 1 << 1
	ipsrPmip = 1 << 2
	ipsrPip  = 1 << 3
)

// Icvec is the interrupt cause to vector mapping CSR.
type Icvec uint64

func (i Icvec) Civ() uint32  { return uint32(bits(uint64(i), 3, 0)) }
func (i Icvec) Fiv() uint32  { return uint32(bits(uint64(i), 7, 4)) }
func (i Icvec) Pmiv() uint32 { return uint32(bits(uint64(i), 11, 8)) }
func (i Icvec) Piv() uint32  { return uint32(bits(uint64(i), 15, 12)) }

// TrReqCtl is the debug translation request control CSR.
type TrReqCtl uint64

func (t TrReqCtl) GoBusy() bool { return bit(uint64(t), 0) }
func (t TrReqCtl) Priv() bool   { return bit(uint64(t), 1) }
func (t TrReqCtl) Exe() bool    { return bit(uint64(t), 2) }
func (t TrReqCtl) Nw() bool     { return bit(uint64(t), 3) }
func (t TrReqCtl) Pid() uint32  { return uint32(bits(uint64(t), 31, 12)) }
func (t TrReqCtl) Pv() bool     { return bit(uint64(t), 32) }
func (t TrReqCtl) Did() uint32  { return uint32(bits(uint64(t), 63, 40)) }

const trReqCtlGoBusy = 1 << 0

// trResponse builds the debug translation response value.
func trResponse(fault bool, ppn uint64, super bool) uint64 {
	return boolBit(fault, 0) | boolBit(super, 9) | ppn<<10&0x003ffffffffffc00
}

// Iohpmcycles is the HPM clock cycle counter.
type Iohpmcycles uint64

func (c Iohpmcycles) Counter() uint64 { return bits(uint64(c), 62, 0) }
func (c Iohpmcycles) Of() bool        { return bit(uint64(c), 63) }

// Iohpmevt is one HPM event selector.
type Iohpmevt uint64

func (e Iohpmevt) EventID() uint32  { return uint32(bits(uint64(e), 14, 0)) }
func (e Iohpmevt) Dmask() bool      { return bit(uint64(e), 15) }
func (e Iohpmevt) PidPscid() uint32 { return uint32(bits(uint64(e), 35, 16)) }
func (e Iohpmevt) DidGscid() uint32 { return uint32(bits(uint64(e), 59, 36)) }
func (e Iohpmevt) PvPscv() bool     { return bit(uint64(e), 60) }
func (e Iohpmevt) DvGscv() bool     { return bit(uint64(e), 61) }
func (e Iohpmevt) Idt() bool        { return bit(uint64(e), 62) }
func (e Iohpmevt) Of() bool         { return bit(uint64(e), 63) }

const iohpmevtOf = uint64(1) << 63

// HpmEventID enumerates the countable events.
type HpmEventID uint32

const (
	HpmEventNone HpmEventID = iota
	HpmEventUntranslatedReq
	HpmEventTranslatedReq
	HpmEventAtsReq
	HpmEventTlbMiss
	HpmEventDdtWalk
	HpmEventPdtWalk
	HpmEventS2Walk
)
