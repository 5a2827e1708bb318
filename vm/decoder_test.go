package vm

import "testing"

func TestDecodeAddi(t *testing.T) {
	d := NewDecoder(true)
	// addi x1, x2, 10
	di := d.Decode(0, 0, 0x00A10093)

	if di.InstId() != IdAddi {
		t.Fatalf("expected addi, got %s", di.Name())
	}
	if di.Size() != 4 {
		t.Errorf("expected size 4, got %d", di.Size())
	}
	if di.Op0() != 1 || di.Op1() != 2 || di.Op2() != 10 {
		t.Errorf("bad operands: %d %d %d", di.Op0(), di.Op1(), di.Op2())
	}
	if !di.IsValid() {
		t.Error("expected valid decode")
	}
	if di.IsLoad() {
		t.Error("addi is not a load")
	}
}

func TestDecodeIllegalZero(t *testing.T) {
	d := NewDecoder(true)
	di := d.Decode(0, 0, 0)

	if di.IsValid() {
		t.Error("word 0 should be invalid")
	}
	if di.InstId() != IdIllegal {
		t.Errorf("expected illegal, got %s", di.Name())
	}
	// Low bits 00 select the compressed path.
	if di.Size() != 2 {
		t.Errorf("expected size 2, got %d", di.Size())
	}
}

func TestDecodeKnownEncodings(t *testing.T) {
	tests := []struct {
		name string
		rv64 bool
		word uint32
		id   InstId
		op0  uint32
		op1  uint32
		op2  uint32
	}{
		{"add", true, 0x003100b3, IdAdd, 1, 2, 3},
		{"sub", true, 0x403100b3, IdSub, 1, 2, 3},
		{"lui", true, 0x000120b7, IdLui, 1, 0x12, 0},
		{"auipc", true, 0x00012097, IdAuipc, 1, 0x12, 0},
		{"lb", true, 0x00410083, IdLb, 1, 2, 4},
		{"lw neg offset", true, 0xffc12083, IdLw, 1, 2, 0xfffffffc},
		{"ld", true, 0x00413083, IdLd, 1, 2, 4},
		{"sw", true, 0x00112223, IdSw, 1, 2, 4},
		{"sd", true, 0x00113223, IdSd, 1, 2, 4},
		{"beq", true, 0x00208463, IdBeq, 1, 2, 8},
		{"jal", true, 0x008000ef, IdJal, 1, 8, 0},
		{"jalr", true, 0x00408067, IdJalr, 0, 1, 4},
		{"csrrw", true, 0x30011073, IdCsrrw, 0, 2, 0x300},
		{"csrrs", true, 0x300120f3, IdCsrrs, 1, 2, 0x300},
		{"ecall", true, 0x00000073, IdEcall, 0, 0, 0},
		{"ebreak", true, 0x00100073, IdEbreak, 0, 0, 1},
		{"wfi", true, 0x10500073, IdWfi, 0, 0, 0x105},
		{"mret", true, 0x30200073, IdMret, 0, 0, 0x302},
		{"sret", true, 0x10200073, IdSret, 0, 0, 0x102},
		{"sfence.vma", true, 0x12208073, IdSfenceVma, 1, 2, 0x122},
		{"mul", true, 0x023100b3, IdMul, 1, 2, 3},
		{"divu", true, 0x0231d0b3, IdDivu, 1, 3, 3},
		{"mulw", true, 0x023101bb, IdMulw, 3, 2, 3},
		{"lr.w", true, 0x1000a0af, IdLrW, 1, 1, 0},
		{"sc.w", true, 0x1830a0af, IdScW, 1, 1, 3},
		{"amoadd.w", true, 0x0030a0af, IdAmoaddW, 1, 1, 3},
		{"amoswap.d", true, 0x0830b0af, IdAmoswapD, 1, 1, 3},
		{"fadd.s", true, 0x003100d3, IdFaddS, 1, 2, 3},
		{"fadd.d", true, 0x023100d3, IdFaddD, 1, 2, 3},
		{"fadd.h", true, 0x043100d3, IdFaddH, 1, 2, 3},
		{"fsqrt.s", true, 0x580100d3, IdFsqrtS, 1, 2, 0},
		{"fcvt.w.s", true, 0xc00100d3, IdFcvtWS, 1, 2, 0},
		{"fcvt.s.w", true, 0xd00100d3, IdFcvtSW, 1, 2, 0},
		{"fmv.x.w", true, 0xe00080d3, IdFmvXW, 1, 1, 0},
		{"fclass.d", true, 0xe20090d3, IdFclassD, 1, 1, 0},
		{"flw", true, 0x00412087, IdFlw, 1, 2, 4},
		{"fsd", true, 0x00113227, IdFsd, 1, 2, 4},
		{"fmadd.s", true, 0x203100c3, IdFmaddS, 1, 2, 3},
		{"fence", true, 0x0ff0000f, IdFence, 0, 0, 0},
		{"fence.tso", true, 0x8330000f, IdFenceTso, 0, 0, 0},
		{"pause", true, 0x0100000f, IdPause, 0, 0, 0},
		{"fence.i", true, 0x0000100f, IdFenceI, 0, 0, 0},
		{"cbo.zero", true, 0x0041200f, IdCboZero, 2, 0, 0},
		{"sh1add", true, 0x203120b3, IdSh1add, 1, 2, 3},
		{"andn", true, 0x403170b3, IdAndn, 1, 2, 3},
		{"czero.eqz", true, 0x0e3150b3, IdCzeroEqz, 1, 2, 3},
		{"vsetvl", true, 0x803170d7, IdVsetvl, 1, 2, 3},
	}

	for _, tt := range tests {
		d := NewDecoder(tt.rv64)
		di := d.Decode(0, 0, tt.word)
		if di.InstId() != tt.id {
			t.Errorf("%s (%#x): expected %s got %s", tt.name, tt.word, tt.id, di.Name())
			continue
		}
		if tt.id == IdIllegal {
			continue
		}
		if di.Op0() != tt.op0 || di.Op1() != tt.op1 || di.Op2() != tt.op2 {
			t.Errorf("%s: bad operands: got %d %d %d want %d %d %d",
				tt.name, di.Op0(), di.Op1(), di.Op2(), tt.op0, tt.op1, tt.op2)
		}
	}
}

func TestDecodeClz(t *testing.T) {
	d := NewDecoder(true)
	// clz x1, x2: imm12 = 0x600, funct3 = 1
	di := d.Decode(0, 0, 0x60011093)
	if di.InstId() != IdClz {
		t.Fatalf("expected clz, got %s", di.Name())
	}
	if di.Op0() != 1 || di.Op1() != 2 {
		t.Errorf("bad operands: %d %d", di.Op0(), di.Op1())
	}
}

func TestDecodeRev8ModeDependent(t *testing.T) {
	// rev8 is 0x6b8 on rv64 and 0x698 on rv32.
	word64 := uint32(0x6b8<<20 | 2<<15 | 5<<12 | 1<<7 | 0x13)
	word32 := uint32(0x698<<20 | 2<<15 | 5<<12 | 1<<7 | 0x13)

	di64 := NewDecoder(true).Decode(0, 0, word64)
	if id := di64.InstId(); id != IdRev8_64 {
		t.Errorf("rv64 rev8: got %s", id)
	}
	di32 := NewDecoder(false).Decode(0, 0, word32)
	if id := di32.InstId(); id != IdRev8_32 {
		t.Errorf("rv32 rev8: got %s", id)
	}
	diMismatch := NewDecoder(false).Decode(0, 0, word64)
	if id := diMismatch.InstId(); id == IdRev8_64 {
		t.Error("rv64 rev8 encoding must not decode on rv32")
	}
}

// Totality and structural invariants over a sweep of the encoding space.
func TestDecodeTotality(t *testing.T) {
	for _, rv64 := range []bool{false, true} {
		d := NewDecoder(rv64)
		// A multiplicative stride gives a well-spread sample of the 32-bit
		// space without taking minutes.
		word := uint32(0)
		for i := 0; i < 2_000_000; i++ {
			di := d.Decode(0, 0, word)

			if di.IsValid() != (di.InstId() != IdIllegal) {
				t.Fatalf("word %#x: valid flag disagrees with entry", word)
			}
			if word&3 != 3 {
				if di.Size() != 2 {
					t.Fatalf("word %#x: expected size 2, got %d", word, di.Size())
				}
			} else if di.Size() != 4 {
				t.Fatalf("word %#x: expected size 4, got %d", word, di.Size())
			}
			if !di.IsVector() && (di.IsMasked() || di.VecFieldCount() != 0) {
				t.Fatalf("word %#x: vector attributes on non-vector %s", word, di.Name())
			}

			word = word*2654435761 + 12345
		}
	}
}

// Operand slots beyond the operand count read as zero with type None.
func TestOperandBounds(t *testing.T) {
	d := NewDecoder(true)
	words := []uint32{
		0x00A10093, // addi
		0x00000073, // ecall
		0x0ff0000f, // fence
		0x1000a0af, // lr.w
		0x000120b7, // lui
		0x12345678, // whatever this is
	}
	for _, w := range words {
		di := d.Decode(0, 0, w)
		for i := di.OperandCount(); i < 6; i++ {
			if di.IthOperand(i) != 0 {
				t.Errorf("word %#x: operand %d should read 0", w, i)
			}
			if di.IthOperandType(i) != OpNone {
				t.Errorf("word %#x: operand %d should have type None", w, i)
			}
			if di.IthOperandMode(i) != ModeNone {
				t.Errorf("word %#x: operand %d should have mode None", w, i)
			}
		}
	}
}

// For csrrs/csrrc with rs1=x0 the CSR operand is effectively read-only.
func TestEffectiveCsrOperandMode(t *testing.T) {
	d := NewDecoder(true)

	// csrrs x1, 0x300, x0
	di := d.Decode(0, 0, 0x300020f3)
	if di.InstId() != IdCsrrs {
		t.Fatalf("expected csrrs, got %s", di.Name())
	}
	if di.Op1() != 0 {
		t.Fatalf("expected rs1=0, got %d", di.Op1())
	}
	if di.IthOperandMode(2) != ModeReadWrite {
		t.Errorf("static mode of CSR operand should be read-write")
	}
	if di.EffectiveIthOperandMode(2) != ModeRead {
		t.Errorf("effective mode of CSR operand should be read")
	}

	// csrrc x1, 0x300, x2: the write happens.
	di = d.Decode(0, 0, 0x300130f3)
	if di.InstId() != IdCsrrc {
		t.Fatalf("expected csrrc, got %s", di.Name())
	}
	if di.EffectiveIthOperandMode(2) != ModeReadWrite {
		t.Errorf("effective mode should stay read-write for rs1!=0")
	}
}

func TestFenceBits(t *testing.T) {
	d := NewDecoder(true)
	// fence rw, r: pred=0b0011, succ=0b0010
	word := uint32(0x3<<24 | 0x2<<20 | 0x0f)
	di := d.Decode(0, 0, word)
	if di.InstId() != IdFence {
		t.Fatalf("expected fence, got %s", di.Name())
	}
	if !di.IsFencePredRead() || !di.IsFencePredWrite() {
		t.Error("expected pred read+write")
	}
	if !di.IsFenceSuccRead() || di.IsFenceSuccWrite() {
		t.Error("expected succ read only")
	}
}

func TestAtomicAcquireRelease(t *testing.T) {
	d := NewDecoder(true)
	// amoadd.w with aq=1 rl=1
	di := d.Decode(0, 0, 0x0030a0af|3<<25)
	if !di.IsAtomicAcquire() || !di.IsAtomicRelease() {
		t.Error("expected aq and rl set")
	}
	if di.AmoSize() != 4 {
		t.Errorf("expected amo size 4, got %d", di.AmoSize())
	}
}

func TestHypervisorLoadsStores(t *testing.T) {
	d := NewDecoder(true)

	// hlv.b x1, (x2): top12=0x600, funct3=4
	di := d.Decode(0, 0, 0x600<<20|2<<15|4<<12|1<<7|0x73)
	if di.InstId() != IdHlvB {
		t.Fatalf("expected hlv.b, got %s", di.Name())
	}
	if !di.IsHypervisor() || !di.IsLoad() {
		t.Error("hlv.b should be a hypervisor load")
	}

	// hsv.w x3, (x2): top7=0x35, rs2=3, rd=0
	di = d.Decode(0, 0, uint32(0x35)<<25|3<<20|2<<15|4<<12|0x73)
	if di.InstId() != IdHsvW {
		t.Fatalf("expected hsv.w, got %s", di.Name())
	}
	if di.Op0() != 3 || di.Op1() != 2 {
		t.Errorf("bad operands: %d %d", di.Op0(), di.Op1())
	}
}

func TestOpcodeTableIllegalSentinel(t *testing.T) {
	tbl := NewInstTable()
	e := tbl.Entry(IdIllegal)
	if e == nil {
		t.Fatal("illegal entry must exist")
	}
	if e.IsLoad() || e.IsStore() || e.IsBranch() || e.IsVector() || e.IsFp() ||
		e.IsAtomic() || e.IsCompressed() || e.IsCsr() {
		t.Error("all category predicates must be false for the illegal sentinel")
	}
	if e.OperandCount() != 0 {
		t.Error("illegal entry has no operands")
	}
	// Out of range ids map to the sentinel.
	if tbl.Entry(instIdCount+5).InstId() != IdIllegal {
		t.Error("out of range id should map to illegal")
	}
}

func TestOpcodeTableMetadata(t *testing.T) {
	tbl := NewInstTable()

	tests := []struct {
		id    InstId
		check func(e *InstEntry) bool
		desc  string
	}{
		{IdLb, func(e *InstEntry) bool { return e.IsLoad() && e.LoadSize() == 1 && !e.IsUnsignedLoad() }, "lb signed byte load"},
		{IdLhu, func(e *InstEntry) bool { return e.IsLoad() && e.LoadSize() == 2 && e.IsUnsignedLoad() }, "lhu unsigned half load"},
		{IdSd, func(e *InstEntry) bool { return e.IsStore() && e.StoreSize() == 8 }, "sd 8 byte store"},
		{IdAmoaddW, func(e *InstEntry) bool { return e.IsAmo() && e.IsAtomic() && e.AmoSize() == 4 }, "amoadd.w"},
		{IdLrD, func(e *InstEntry) bool { return e.IsLr() && e.IsAtomic() && !e.IsAmo() }, "lr.d"},
		{IdScW, func(e *InstEntry) bool { return e.IsSc() && e.IsStore() }, "sc.w"},
		{IdBeq, func(e *InstEntry) bool { return e.IsBranch() && e.IsConditionalBranch() }, "beq"},
		{IdJalr, func(e *InstEntry) bool { return e.IsBranch() && e.IsBranchToRegister() }, "jalr"},
		{IdJal, func(e *InstEntry) bool { return e.IsBranch() && !e.IsConditionalBranch() }, "jal"},
		{IdMulh, func(e *InstEntry) bool { return e.IsMultiply() }, "mulh"},
		{IdRemu, func(e *InstEntry) bool { return e.IsDivide() }, "remu"},
		{IdFaddS, func(e *InstEntry) bool { return e.IsFp() && e.HasRoundingMode() && e.ModifiesFflags() }, "fadd.s"},
		{IdFsgnjS, func(e *InstEntry) bool { return e.IsFp() && !e.HasRoundingMode() }, "fsgnj.s"},
		{IdLui, func(e *InstEntry) bool { return e.ImmediateShiftSize() == 12 }, "lui shift"},
		{IdCsrrw, func(e *InstEntry) bool { return e.IsCsr() }, "csrrw"},
		{IdCboFlush, func(e *InstEntry) bool { return e.IsCmo() }, "cbo.flush"},
		{IdHfenceGvma, func(e *InstEntry) bool { return e.IsHypervisor() }, "hfence.gvma"},
		{IdCAddi, func(e *InstEntry) bool { return e.IsCompressed() }, "c.addi"},
		{IdVaddVv, func(e *InstEntry) bool { return e.IsVector() }, "vadd.vv"},
		{IdVfaddVv, func(e *InstEntry) bool { return e.IsVector() && e.IsFp() }, "vfadd.vv"},
		{IdVle32V, func(e *InstEntry) bool { return e.IsVector() && e.IsLoad() }, "vle32.v"},
		{IdVse32V, func(e *InstEntry) bool { return e.IsVector() && e.IsStore() }, "vse32.v"},
	}

	for _, tt := range tests {
		if !tt.check(tbl.Entry(tt.id)) {
			t.Errorf("%s: metadata check failed", tt.desc)
		}
	}
}
