package iommu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Ring invariants: the tail stays inside the buffer and fullness is
// (tail+1) mod capacity == head.
func TestQueueInvariants(t *testing.T) {
	m, _ := newTestIommu(t, 0)
	enableFaultQueue(m, fqPage, 1) // capacity 4

	capa := m.QueueCapacity(CsrFqb)
	require.Equal(t, uint32(4), capa)
	require.Equal(t, fqPage*pageSize, m.QueueAddress(CsrFqb))

	for i := 0; i < 10; i++ {
		m.writeFaultRecord(FaultRecord{Cause: uint32(i)})
		tail := uint32(m.ReadCsr(CsrFqt))
		require.Less(t, tail, capa, "tail out of range")

		head := uint32(m.ReadCsr(CsrFqh))
		full := (tail+1)%capa == head
		require.Equal(t, full, m.fqFull())
	}
}

// Overflow sets fqof and drops records until software clears it.
func TestFaultQueueOverflow(t *testing.T) {
	m, _ := newTestIommu(t, 0)
	enableFaultQueue(m, fqPage, 1) // capacity 4: 3 usable slots

	for i := 0; i < 3; i++ {
		m.writeFaultRecord(FaultRecord{Cause: 256})
	}
	require.Equal(t, uint64(3), m.ReadCsr(CsrFqt))
	require.False(t, Fqcsr(m.ReadCsr(CsrFqcsr)).Fqof())

	m.writeFaultRecord(FaultRecord{Cause: 256})
	require.True(t, Fqcsr(m.ReadCsr(CsrFqcsr)).Fqof())
	require.Equal(t, uint64(3), m.ReadCsr(CsrFqt), "tail must not advance on overflow")

	// Draining one entry makes room again.
	m.WriteCsr(CsrFqh, 1)
	require.False(t, m.fqFull())
}

// A failing record store sets fqmf.
func TestFaultQueueMemoryFault(t *testing.T) {
	m, mem := newTestIommu(t, 0)
	enableFaultQueue(m, fqPage, 1)

	mem.badWrite[fqPage*pageSize] = true
	m.writeFaultRecord(FaultRecord{Cause: 256})
	require.True(t, Fqcsr(m.ReadCsr(CsrFqcsr)).Fqmf())
	require.Equal(t, uint64(0), m.ReadCsr(CsrFqt))
}

// Records honor the big-endian control.
func TestFaultQueueEndianness(t *testing.T) {
	m, mem := newTestIommu(t, uint64(1)<<27) // END capability: fctl.be writable
	m.WriteCsr(CsrFctl, 1)                   // big-endian
	enableFaultQueue(m, fqPage, 1)

	rec := FaultRecord{Cause: 256, Did: 0xabcd}
	m.writeFaultRecord(rec)

	stored := mem.readDword(fqPage * pageSize)
	require.Equal(t, byteSwap(rec.pack()[0]), stored)
}

// The fault record layout round-trips through its packed form.
func TestFaultRecordPack(t *testing.T) {
	rec := FaultRecord{
		Cause:   CauseDdtMisconfigured,
		Pid:     0x12345,
		Pv:      true,
		Priv:    true,
		Ttyp:    TtypeUntransWrite,
		Did:     0xabcdef,
		Iotval:  0xdeadbeef,
		Iotval2: 0x42,
	}
	got := unpackFaultRecord(rec.pack())
	require.Equal(t, rec, got)
}

// Page request queueing and the immediate-response paths.
func TestAtsPageRequest(t *testing.T) {
	m, mem := newTestIommu(t, testCaps)

	type prgr struct {
		devID uint32
		code  PrgrResponseCode
		pv    bool
	}
	var responses []prgr
	m.SetSendPrgrCb(func(devID, pid uint32, pv bool, prgi uint32, code PrgrResponseCode,
		dsv bool, dseg uint32) {
		responses = append(responses, prgr{devID, code, pv})
	})

	// PRI-enabled device context.
	installDeviceContext(m, mem, 1, DeviceContext{Tc: 1 | 1<<1 | 1<<2}) // valid+ats+pri

	// Enable the page request queue.
	m.WriteCsr(CsrPqb, pqPage<<10|1)
	m.WriteCsr(CsrPqcsr, pqcsrPqen)
	require.True(t, Pqcsr(m.ReadCsr(CsrPqcsr)).Pqon())

	// A last-in-group read/write request gets queued, no response.
	req := MakePageRequest(1, 0, false, false, false, true, true, true, 0x11, 0x9000)
	m.AtsPageRequest(req)
	require.Equal(t, uint64(1), m.ReadCsr(CsrPqt))
	require.Empty(t, responses)

	// The queued entry round-trips.
	got := PageRequest{
		mem.readDword(pqPage * pageSize),
		mem.readDword(pqPage*pageSize + 8),
	}
	require.Equal(t, req, got)

	// PRI disabled: fault 260 and an immediate Invalid Request response.
	m2, mem2 := newTestIommu(t, testCaps)
	m2.SetSendPrgrCb(func(devID, pid uint32, pv bool, prgi uint32, code PrgrResponseCode,
		dsv bool, dseg uint32) {
		responses = append(responses, prgr{devID, code, pv})
	})
	installDeviceContext(m2, mem2, 1, DeviceContext{Tc: 1 | 1<<1}) // no PRI
	m2.WriteCsr(CsrPqb, pqPage<<10|1)
	m2.WriteCsr(CsrPqcsr, pqcsrPqen)
	enableFaultQueue(m2, fqPage, 3)

	m2.AtsPageRequest(req)
	require.Len(t, responses, 1)
	require.Equal(t, PrgrInvalidRequest, responses[0].code)
	require.Equal(t, uint64(1), m2.ReadCsr(CsrFqt), "fault 260 must be recorded")

	// Queue off: immediate Failure response.
	responses = nil
	m3, mem3 := newTestIommu(t, testCaps)
	m3.SetSendPrgrCb(func(devID, pid uint32, pv bool, prgi uint32, code PrgrResponseCode,
		dsv bool, dseg uint32) {
		responses = append(responses, prgr{devID, code, pv})
	})
	installDeviceContext(m3, mem3, 1, DeviceContext{Tc: 1 | 1<<1 | 1<<2})
	m3.AtsPageRequest(req)
	require.Len(t, responses, 1)
	require.Equal(t, PrgrFailure, responses[0].code)
}
