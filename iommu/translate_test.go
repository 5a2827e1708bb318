package iommu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Capabilities used by most walk tests: every paging mode, MSI flat/MRIF,
// ATS, T2GPA, all PD depths.
const testCaps = uint64(1)<<8 | 1<<9 | 1<<10 | 1<<11 | // Sv32..Sv57
	1<<16 | 1<<17 | 1<<18 | 1<<19 | // Sv32x4..Sv57x4
	1<<22 | 1<<23 | // MSI flat + MRIF
	1<<24 | // AMO HWAD
	1<<25 | 1<<26 | // ATS + T2GPA
	1<<38 | 1<<39 | 1<<40 // PD8/PD17/PD20

// Base-format capabilities: no MSI flat, so 32-byte device contexts.
const testCapsBase = testCaps &^ (uint64(1) << 22)

const (
	ddtRootPage = uint64(0x100) // ppn of the device directory root
	fqPage      = uint64(0x200) // ppn of the fault queue
	cqPage      = uint64(0x300) // ppn of the command queue
	pqPage      = uint64(0x380) // ppn of the page request queue
)

// installDeviceContext writes a single-level (DdtpLevel1) device directory
// with the given context for the device id.
func installDeviceContext(m *Iommu, mem *testMemory, devID uint32, dc DeviceContext) {
	extended := m.IsDcExtended()
	dcSize := deviceContextSize(extended)
	addr := ddtRootPage*pageSize + uint64(devidDdi(devID, 0, extended))*dcSize
	mem.writeDword(addr, dc.Tc)
	mem.writeDword(addr+8, dc.Iohgatp)
	mem.writeDword(addr+16, dc.Ta)
	mem.writeDword(addr+24, dc.Fsc)
	if extended {
		mem.writeDword(addr+32, dc.Msiptp)
		mem.writeDword(addr+40, dc.Msimask)
		mem.writeDword(addr+48, dc.Msipat)
		mem.writeDword(addr+56, dc.Resv)
	}
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel1))
}

// IOMMU off: every inbound request fails with cause 256 and a fault record
// lands at the fault queue tail.
func TestTranslateOff(t *testing.T) {
	m, mem := newTestIommu(t, 0)
	enableFaultQueue(m, fqPage, 3)

	req := Request{DevID: 1, Iova: 0x4000, Type: TtypeUntransRead}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseAllInboundDis), cause)

	// One record at the tail.
	require.Equal(t, uint64(1), m.ReadCsr(CsrFqt))
	rec := unpackFaultRecord([4]uint64{
		mem.readDword(fqPage * pageSize),
		mem.readDword(fqPage*pageSize + 8),
		mem.readDword(fqPage*pageSize + 16),
		mem.readDword(fqPage*pageSize + 24),
	})
	require.Equal(t, uint32(CauseAllInboundDis), rec.Cause)
	require.Equal(t, uint32(1), rec.Did)
	require.Equal(t, uint64(0x4000), rec.Iotval)
}

// Bare mode: untranslated requests pass through unchanged; translated and
// ATS requests fail with cause 260.
func TestTranslateBare(t *testing.T) {
	m, _ := newTestIommu(t, 0)
	enableFaultQueue(m, fqPage, 3)
	m.WriteCsr(CsrDdtp, uint64(DdtpBare))

	req := Request{DevID: 1, Iova: 0x1000, Type: TtypeUntransRead}
	pa, cause, ok := m.Translate(&req)
	require.True(t, ok)
	require.Equal(t, uint32(0), cause)
	require.Equal(t, uint64(0x1000), pa)
	require.Equal(t, uint64(0), m.ReadCsr(CsrFqt), "no fault record expected")

	for _, typ := range []Ttype{TtypeTransRead, TtypeTransWrite, TtypeTransExec, TtypePcieAts} {
		req := Request{DevID: 1, Iova: 0x1000, Type: typ}
		_, cause, ok := m.Translate(&req)
		require.False(t, ok, "type %d", typ)
		require.Equal(t, uint32(CauseTransTypeDis), cause)
	}
}

// A one-level walk to a valid base-format context with everything Bare:
// the translation is the identity through the stage callbacks.
func TestTranslateSingleLevelWalk(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	enableFaultQueue(m, fqPage, 3)

	dc := DeviceContext{Tc: 1} // valid, first and second stage Bare
	installDeviceContext(m, mem, 7, dc)

	req := Request{DevID: 7, Iova: 0x12345, Type: TtypeUntransRead}
	pa, cause, ok := m.Translate(&req)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0x12345), pa)

	// The walk is recorded for inspection: level-1 mode has no non-leaf
	// entries, so the trace is empty but the context was cached.
	var dc2 DeviceContext
	_, ok = m.LoadDeviceContext(7, &dc2)
	require.True(t, ok)
	require.Equal(t, dc.Tc, dc2.Tc)
}

// Device ids wider than the directory depth fault with 260.
func TestTranslateDeviceIdTooWide(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 1})

	// Level1 with base format covers 7 bits of device id.
	req := Request{DevID: 1 << 8, Iova: 0, Type: TtypeUntransRead}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseTransTypeDis), cause)
}

// A two-level walk exercises the non-leaf entries and their validation.
func TestTranslateTwoLevelWalk(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	enableFaultQueue(m, fqPage, 3)

	const leafPage = uint64(0x120)
	devID := uint32(3<<7 | 5) // ddi1=3, ddi0=5 in base format

	// Non-leaf: root[3] -> leafPage.
	mem.writeDword(ddtRootPage*pageSize+3*8, leafPage<<10|1)
	// Leaf context at leafPage[5].
	addr := leafPage*pageSize + 5*32
	mem.writeDword(addr, 1) // valid, everything Bare

	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel2))

	req := Request{DevID: devID, Iova: 0xabc, Type: TtypeUntransRead}
	pa, cause, ok := m.Translate(&req)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0xabc), pa)

	walk := m.LastDeviceDirectoryWalk()
	require.Len(t, walk, 1)
	require.Equal(t, ddtRootPage*pageSize+3*8, walk[0].Addr)

	// An invalid non-leaf entry faults with 258.
	m.Reset()
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel2))
	mem.writeDword(ddtRootPage*pageSize+3*8, 0)
	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseDdtNotValid), cause)

	// Reserved bits in a non-leaf entry fault with 259.
	m.Reset()
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel2))
	mem.writeDword(ddtRootPage*pageSize+3*8, leafPage<<10|1|2)
	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseDdtMisconfigured), cause)

	// A failing load faults with 257.
	m.Reset()
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel2))
	mem.badRead[ddtRootPage*pageSize+3*8] = true
	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseDdtLoadFault), cause)
}

// Misconfigured device contexts fault with 259.
func TestMisconfiguredDeviceContext(t *testing.T) {
	tests := []struct {
		name string
		caps uint64
		dc   DeviceContext
	}{
		{"reserved tc bits", testCapsBase, DeviceContext{Tc: 1 | 1<<63}},
		{"ats without capability", testCapsBase &^ (1 << 25), DeviceContext{Tc: 1 | 1<<1}},
		{"t2gpa without ats", testCapsBase, DeviceContext{Tc: 1 | 1<<3}},
		{"prpr without pri", testCapsBase, DeviceContext{Tc: 1 | 1<<6}},
		{"dpe without pdtv", testCapsBase, DeviceContext{Tc: 1 | 1<<9}},
		{"sade without amo hwad", testCapsBase &^ (1 << 24), DeviceContext{Tc: 1 | 1<<8}},
		{"unsupported iosatp mode", testCapsBase, DeviceContext{Tc: 1, Fsc: uint64(2) << 60}},
		{"sv39 without capability", testCapsBase &^ (1 << 9), DeviceContext{Tc: 1, Fsc: uint64(IosatpSv39) << 60}},
		{"iohgatp bad mode", testCapsBase, DeviceContext{Tc: 1, Iohgatp: uint64(3) << 60}},
		{"iohgatp misaligned root", testCapsBase, DeviceContext{Tc: 1, Iohgatp: uint64(IohgatpSv39x4)<<60 | 1}},
		{"t2gpa with bare iohgatp", testCapsBase, DeviceContext{Tc: 1 | 1<<1 | 1<<3}},
	}

	for _, tt := range tests {
		m, mem := newTestIommu(t, tt.caps)
		installDeviceContext(m, mem, 1, tt.dc)
		req := Request{DevID: 1, Iova: 0, Type: TtypeUntransRead}
		_, cause, ok := m.Translate(&req)
		require.False(t, ok, tt.name)
		require.Equal(t, uint32(CauseDdtMisconfigured), cause, tt.name)
	}
}

// An invalid leaf context faults with 258.
func TestInvalidDeviceContext(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 0})

	req := Request{DevID: 1, Iova: 0, Type: TtypeUntransRead}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseDdtNotValid), cause)
}

// Translated requests need DC.tc.EN_ATS; process ids need DC.tc.PDTV.
func TestPermissionGates(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 1})

	req := Request{DevID: 1, Iova: 0x800, Type: TtypeTransRead}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseTransTypeDis), cause)

	req = Request{DevID: 1, Iova: 0x800, Type: TtypeUntransRead, HasProcID: true, ProcID: 1}
	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseTransTypeDis), cause)
}

// A translated request with EN_ATS and no T2GPA completes immediately.
func TestTranslatedFastPath(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 1 | 1<<1}) // valid + ats

	req := Request{DevID: 1, Iova: 0xcafe0, Type: TtypeTransRead}
	pa, cause, ok := m.Translate(&req)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0xcafe0), pa)
}

// DTF suppresses fault reporting but not the failure itself.
func TestDtfSuppressesReporting(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	enableFaultQueue(m, fqPage, 3)
	// valid + dtf, translated request without ats -> cause 260, unreported.
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 1 | 1<<4})

	req := Request{DevID: 1, Iova: 0, Type: TtypeTransRead}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseTransTypeDis), cause)
	require.Equal(t, uint64(0), m.ReadCsr(CsrFqt), "DTF must suppress the fault record")
}

// Stage-1 faults propagate with their architectural cause and guest page
// faults carry iotval2.
func TestStageFaults(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	enableFaultQueue(m, fqPage, 3)
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 1})

	m.SetStage1Cb(func(va uint64, priv PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return 0, CauseLoadPage, false
	})
	req := Request{DevID: 1, Iova: 0x9000, Type: TtypeUntransRead}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseLoadPage), cause)

	// Guest page fault: the stage-2 trap info lands in iotval2.
	m.SetStage1Cb(func(va uint64, priv PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return 0, CauseLoadGuestPage, false
	})
	m.SetStage2TrapInfoCb(func() (uint64, bool, bool) { return 0xdead000, true, true })

	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseLoadGuestPage), cause)

	// Second record in the queue.
	require.Equal(t, uint64(2), m.ReadCsr(CsrFqt))
	rec := unpackFaultRecord([4]uint64{
		mem.readDword(fqPage*pageSize + 32),
		mem.readDword(fqPage*pageSize + 40),
		mem.readDword(fqPage*pageSize + 48),
		mem.readDword(fqPage*pageSize + 56),
	})
	require.Equal(t, uint64(0xdead000)>>2<<2|3, rec.Iotval2)
}

// Process directory walk: PD8 with a valid process context supplies the
// first-stage root and PSCID.
func TestProcessContextWalk(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	enableFaultQueue(m, fqPage, 3)

	const pdtPage = uint64(0x140)
	// valid + pdtv; fsc holds the pdtp: mode PD8 + ppn.
	dc := DeviceContext{
		Tc:  1 | 1<<5,
		Fsc: uint64(PdtpPd8)<<60 | pdtPage,
	}
	installDeviceContext(m, mem, 1, dc)

	// Process context for pid 2 at pdtPage + 2*16: valid + ens, pscid 5.
	pcAddr := pdtPage*pageSize + 2*16
	mem.writeDword(pcAddr, 1|1<<1|5<<12)
	mem.writeDword(pcAddr+8, 0) // iosatp Bare

	var gotAsid uint32
	m.SetStage1ConfigCb(func(mode, asid uint32, ppn uint64, sum bool) { gotAsid = asid })

	req := Request{DevID: 1, Iova: 0x777, Type: TtypeUntransRead, HasProcID: true, ProcID: 2}
	pa, cause, ok := m.Translate(&req)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0x777), pa)
	require.Equal(t, uint32(5), gotAsid)

	// Supervisor privilege requires ENS.
	mem.writeDword(pcAddr, 1|5<<12) // drop ens
	m.Reset()
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel1))
	req.PrivMode = PrivSupervisor
	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseTransTypeDis), cause)

	// An invalid process context faults with 266.
	mem.writeDword(pcAddr, 0)
	m.Reset()
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel1))
	req.PrivMode = PrivUser
	_, cause, ok = m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CausePdtNotValid), cause)
}

// A process id wider than the PDT depth faults with 260.
func TestProcessIdTooWide(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)
	dc := DeviceContext{Tc: 1 | 1<<5, Fsc: uint64(PdtpPd8) << 60}
	installDeviceContext(m, mem, 1, dc)

	req := Request{DevID: 1, Iova: 0, Type: TtypeUntransRead, HasProcID: true, ProcID: 1 << 10}
	_, cause, ok := m.Translate(&req)
	require.False(t, ok)
	require.Equal(t, uint32(CauseTransTypeDis), cause)
}

// DPE selects process id zero when the request has none.
func TestDefaultProcessEnable(t *testing.T) {
	m, mem := newTestIommu(t, testCapsBase)

	const pdtPage = uint64(0x150)
	dc := DeviceContext{
		Tc:  1 | 1<<5 | 1<<9, // valid + pdtv + dpe
		Fsc: uint64(PdtpPd8)<<60 | pdtPage,
	}
	installDeviceContext(m, mem, 1, dc)

	// Process context for pid 0: valid, iosatp Bare.
	mem.writeDword(pdtPage*pageSize, 1)
	mem.writeDword(pdtPage*pageSize+8, 0)

	req := Request{DevID: 1, Iova: 0x1234, Type: TtypeUntransRead}
	pa, cause, ok := m.Translate(&req)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0x1234), pa)
}

// ReadForDevice/WriteForDevice bridge translated accesses to host memory.
func TestDeviceBridge(t *testing.T) {
	m, mem := newTestIommu(t, 0)
	m.WriteCsr(CsrDdtp, uint64(DdtpBare))

	wr := Request{DevID: 1, Iova: 0x6000, Type: TtypeUntransWrite, Size: 8}
	cause, ok := m.WriteForDevice(&wr, 0x1122334455667788)
	require.True(t, ok, "cause %d", cause)

	rd := Request{DevID: 1, Iova: 0x6000, Type: TtypeUntransRead, Size: 8}
	data, cause, ok := m.ReadForDevice(&rd)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0x1122334455667788), data)
	require.Equal(t, uint64(0x1122334455667788), mem.readDword(0x6000))

	// Mismatched request types are rejected outright.
	_, _, ok = m.ReadForDevice(&wr)
	require.False(t, ok)
}

// T2GPA translation returns the GPA after the first stage only.
func TestT2gpaTranslate(t *testing.T) {
	m, mem := newTestIommu(t, testCaps)
	dc := DeviceContext{
		Tc:      1 | 1<<1 | 1<<3, // valid + ats + t2gpa
		Iohgatp: uint64(IohgatpSv39x4)<<60 | 4,
	}
	installDeviceContext(m, mem, 1, dc)

	m.SetStage1Cb(func(va uint64, priv PrivilegeMode, r, w, x bool) (uint64, uint32, bool) {
		return va + 0x1000, 0, true
	})

	req := Request{DevID: 1, Iova: 0x2000, Type: TtypeUntransRead}
	gpa, cause, ok := m.T2gpaTranslate(&req)
	require.True(t, ok, "cause %d", cause)
	require.Equal(t, uint64(0x3000), gpa)
}

// ATS translation reports UR/CA classification on failure.
func TestAtsTranslate(t *testing.T) {
	m, mem := newTestIommu(t, testCaps)
	dc := DeviceContext{Tc: 1 | 1<<1} // valid + ats
	installDeviceContext(m, mem, 1, dc)

	req := Request{DevID: 1, Iova: 0x4000, Type: TtypePcieAts}
	resp, cause := m.AtsTranslate(&req)
	require.True(t, resp.Success, "cause %d", cause)
	require.Equal(t, uint64(0x4000), resp.TranslatedAddr)

	// A device context load fault is a completer abort case only for the
	// listed causes; cause 258 maps to Unsupported Request.
	m.Reset()
	m.WriteCsr(CsrDdtp, ddtRootPage<<10|uint64(DdtpLevel1))
	resp, cause = m.AtsTranslate(&Request{DevID: 9, Iova: 0, Type: TtypePcieAts})
	require.False(t, resp.Success)
	require.Equal(t, uint32(CauseDdtNotValid), cause)
	require.False(t, resp.IsCompleterAbort)
}
