package vm

import "testing"

// Vector instruction encodings: opcode 0x57, funct3 selects the operand
// form, the top six bits of funct7 select the operation and bit 25 is the
// mask bit.
func vecWord(f6, vm, vs2, vs1, f3, vd uint32) uint32 {
	return f6<<26 | vm<<25 | vs2<<20 | vs1<<15 | f3<<12 | vd<<7 | 0x57
}

func TestDecodeVecArith(t *testing.T) {
	d := NewDecoder(true)

	// vadd.vv v1, v2, v3 (vm=1): operands come out as (vd, vs2, vs1).
	di := d.Decode(0, 0, vecWord(0, 1, 2, 3, 0, 1))
	if di.InstId() != IdVaddVv {
		t.Fatalf("expected vadd.vv, got %s", di.Name())
	}
	if di.Op0() != 1 || di.Op1() != 2 || di.Op2() != 3 {
		t.Errorf("bad operands: %d %d %d", di.Op0(), di.Op1(), di.Op2())
	}
	if di.IsMasked() {
		t.Error("vm=1 means unmasked")
	}
	if !di.IsVector() {
		t.Error("vadd.vv is a vector instruction")
	}

	// Same encoding with vm=0 is masked.
	di = d.Decode(0, 0, vecWord(0, 0, 2, 3, 0, 1))
	if !di.IsMasked() {
		t.Error("vm=0 means masked")
	}

	// vmacc.vv swaps op1 and op2: encoding has vs2=2, vs1=3 but the
	// assembler order is (vd, vs1, vs2).
	di = d.Decode(0, 0, vecWord(0x2d, 1, 2, 3, 2, 1))
	if di.InstId() != IdVmaccVv {
		t.Fatalf("expected vmacc.vv, got %s", di.Name())
	}
	if di.Op1() != 3 || di.Op2() != 2 {
		t.Errorf("vmacc.vv operand swap missing: %d %d", di.Op1(), di.Op2())
	}

	// vfmacc.vf swaps as well.
	di = d.Decode(0, 0, vecWord(0x2c, 1, 2, 3, 5, 1))
	if di.InstId() != IdVfmaccVf {
		t.Fatalf("expected vfmacc.vf, got %s", di.Name())
	}
	if di.Op1() != 3 || di.Op2() != 2 {
		t.Errorf("vfmacc.vf operand swap missing: %d %d", di.Op1(), di.Op2())
	}

	// vmv.v.v requires vs2=0.
	di = d.Decode(0, 0, vecWord(0x17, 1, 0, 3, 0, 1))
	if di.InstId() != IdVmvVV {
		t.Fatalf("expected vmv.v.v, got %s", di.Name())
	}
	// vmerge.vvm is the masked variant of the same cell.
	di = d.Decode(0, 0, vecWord(0x17, 0, 2, 3, 0, 1))
	if di.InstId() != IdVmergeVvm {
		t.Fatalf("expected vmerge.vvm, got %s", di.Name())
	}

	// vadd.vi sign-extends the 5-bit immediate.
	di = d.Decode(0, 0, vecWord(0, 1, 2, 0x1f, 3, 1))
	if di.InstId() != IdVaddVi {
		t.Fatalf("expected vadd.vi, got %s", di.Name())
	}
	if di.Op2SignExtended() != -1 {
		t.Errorf("expected imm -1, got %d", di.Op2SignExtended())
	}

	// vsll.vi keeps the immediate unsigned.
	di = d.Decode(0, 0, vecWord(0x25, 1, 2, 0x1f, 3, 1))
	if di.InstId() != IdVsllVi {
		t.Fatalf("expected vsll.vi, got %s", di.Name())
	}
	if di.Op2() != 0x1f {
		t.Errorf("expected uimm 31, got %d", di.Op2())
	}

	// vror.vi folds bit 26 into the rotate amount.
	di = d.Decode(0, 0, vecWord(0x15, 1, 2, 3, 3, 1))
	if di.InstId() != IdVrorVi {
		t.Fatalf("expected vror.vi, got %s", di.Name())
	}
	if di.Op2() != 3|0x20 {
		t.Errorf("expected rotate amount 35, got %d", di.Op2())
	}
}

func TestDecodeVsetvli(t *testing.T) {
	d := NewDecoder(true)

	// vsetvli x1, x2, e32m1: vtypei=0x10 in the funct7/rs2 field.
	word := uint32(0x10)<<20 | 2<<15 | 7<<12 | 1<<7 | 0x57
	di := d.Decode(0, 0, word)
	if di.InstId() != IdVsetvli {
		t.Fatalf("expected vsetvli, got %s", di.Name())
	}
	if di.Op0() != 1 || di.Op1() != 2 || di.Op2() != 0x10 {
		t.Errorf("bad operands: %d %d %#x", di.Op0(), di.Op1(), di.Op2())
	}

	// vsetivli x1, 3, vtypei: top two bits of funct7 are 11.
	word = uint32(3)<<30 | uint32(0x10)<<20 | 3<<15 | 7<<12 | 1<<7 | 0x57
	di = d.Decode(0, 0, word)
	if di.InstId() != IdVsetivli {
		t.Fatalf("expected vsetivli, got %s", di.Name())
	}
	if di.Op1() != 3 {
		t.Errorf("expected uimm 3, got %d", di.Op1())
	}
}

// Vector load encodings: opcode 0x07 with funct3 in {0,5,6,7}.
func vecLoadWord(nf, mew, mop, vm, lumop, rs1, f3, vd uint32) uint32 {
	return nf<<29 | mew<<28 | mop<<26 | vm<<25 | lumop<<20 | rs1<<15 | f3<<12 | vd<<7 | 0x07
}

func TestDecodeVecLoads(t *testing.T) {
	d := NewDecoder(true)

	// vle32.v v1, (x2)
	di := d.Decode(0, 0, vecLoadWord(0, 0, 0, 1, 0, 2, 6, 1))
	if di.InstId() != IdVle32V {
		t.Fatalf("expected vle32.v, got %s", di.Name())
	}
	if !di.IsVectorLoad() || di.IsVectorStore() {
		t.Error("vle32.v is a vector load")
	}
	if di.VecLoadElemSize() != 4 {
		t.Errorf("expected element size 4, got %d", di.VecLoadElemSize())
	}
	if di.VecFieldCount() != 0 {
		t.Errorf("expected no fields, got %d", di.VecFieldCount())
	}

	// vlse64.v v1, (x2), x3: strided
	di = d.Decode(0, 0, vecLoadWord(0, 0, 2, 1, 3, 2, 7, 1))
	if di.InstId() != IdVlse64V {
		t.Fatalf("expected vlse64.v, got %s", di.Name())
	}
	if !di.IsVectorLoadStrided() {
		t.Error("vlse64.v is strided")
	}
	if di.Op2() != 3 {
		t.Errorf("expected stride register 3, got %d", di.Op2())
	}

	// vluxei8.v: indexed unordered
	di = d.Decode(0, 0, vecLoadWord(0, 0, 1, 1, 3, 2, 0, 1))
	if di.InstId() != IdVluxei8V {
		t.Fatalf("expected vluxei8.v, got %s", di.Name())
	}
	if !di.IsVectorLoadIndexed() {
		t.Error("vluxei8.v is indexed")
	}

	// vlseg3e16.v: segmented, nf=2 -> 3 fields
	di = d.Decode(0, 0, vecLoadWord(2, 0, 0, 1, 0, 2, 5, 1))
	if di.InstId() != IdVlsege16V {
		t.Fatalf("expected vlsege16.v, got %s", di.Name())
	}
	if di.VecFieldCount() != 3 {
		t.Errorf("expected field count 3, got %d", di.VecFieldCount())
	}

	// vl2re32.v: whole register load, nf=1 -> 2 registers
	di = d.Decode(0, 0, vecLoadWord(1, 0, 0, 1, 8, 2, 6, 1))
	if di.InstId() != IdVlre32V {
		t.Fatalf("expected vlre32.v, got %s", di.Name())
	}
	if di.VecFieldCount() != 2 {
		t.Errorf("expected field count 2, got %d", di.VecFieldCount())
	}

	// vle8ff.v: fault only first
	di = d.Decode(0, 0, vecLoadWord(0, 0, 0, 1, 0x10, 2, 0, 1))
	if di.InstId() != IdVle8ffV {
		t.Fatalf("expected vle8ff.v, got %s", di.Name())
	}
	if !di.IsVectorLoadFaultFirst() {
		t.Error("vle8ff.v is fault-only-first")
	}

	// vlm.v: mask load
	di = d.Decode(0, 0, vecLoadWord(0, 0, 0, 1, 0xb, 2, 0, 1))
	if di.InstId() != IdVlmV {
		t.Fatalf("expected vlm.v, got %s", di.Name())
	}

	// mew=1 selects the wide element sizes.
	di = d.Decode(0, 0, vecLoadWord(0, 1, 0, 1, 0, 2, 0, 1))
	if di.InstId() != IdVle128V {
		t.Fatalf("expected vle128.v, got %s", di.Name())
	}
	if di.VecLoadElemSize() != 16 {
		t.Errorf("expected element size 16, got %d", di.VecLoadElemSize())
	}
}

func TestDecodeVecStores(t *testing.T) {
	d := NewDecoder(true)

	// vse32.v v1, (x2): opcode 0x27. The stored register is op0.
	word := uint32(1)<<25 | 2<<15 | 6<<12 | 1<<7 | 0x27
	di := d.Decode(0, 0, word)
	if di.InstId() != IdVse32V {
		t.Fatalf("expected vse32.v, got %s", di.Name())
	}
	if !di.IsVectorStore() {
		t.Error("vse32.v is a vector store")
	}
	if di.Op0() != 1 || di.Op1() != 2 {
		t.Errorf("bad operands: %d %d", di.Op0(), di.Op1())
	}
	if di.VecStoreElemSize() != 4 {
		t.Errorf("expected element size 4, got %d", di.VecStoreElemSize())
	}

	// vs2r.v v2, (x3): whole register store, nf=1.
	word = uint32(1)<<29 | 1<<25 | 8<<20 | 3<<15 | 0<<12 | 2<<7 | 0x27
	di = d.Decode(0, 0, word)
	if di.InstId() != IdVs2rV {
		t.Fatalf("expected vs2r.v, got %s", di.Name())
	}
	if di.VecFieldCount() != 2 {
		t.Errorf("expected field count 2, got %d", di.VecFieldCount())
	}
}

func TestDecodeVecCrypto(t *testing.T) {
	d := NewDecoder(true)

	// Vector crypto opcode 0x77: vghsh.vv v1, v2, v3 (f6=0b101100, f3=2).
	word := uint32(0b101100)<<26 | 1<<25 | 2<<20 | 3<<15 | 2<<12 | 1<<7 | 0x77
	di := d.Decode(0, 0, word)
	if di.InstId() != IdVghshVv {
		t.Fatalf("expected vghsh.vv, got %s", di.Name())
	}

	// vaesef.vv v1, v2: f6=0b101000, vs1 selects the function (3).
	word = uint32(0b101000)<<26 | 1<<25 | 2<<20 | 3<<15 | 2<<12 | 1<<7 | 0x77
	di = d.Decode(0, 0, word)
	if di.InstId() != IdVaesefVv {
		t.Fatalf("expected vaesef.vv, got %s", di.Name())
	}

	// Masked vector crypto is illegal.
	word = uint32(0b101100)<<26 | 0<<25 | 2<<20 | 3<<15 | 2<<12 | 1<<7 | 0x77
	if di := d.Decode(0, 0, word); di.IsValid() {
		t.Errorf("masked vghsh.vv must be illegal, got %s", di.Name())
	}
}

func TestDecodeVqdot(t *testing.T) {
	d := NewDecoder(true)

	// Custom opcode 0x5b: vqdot.vv (f6=0b101100, f3=2).
	word := uint32(0b101100)<<26 | 1<<25 | 2<<20 | 3<<15 | 2<<12 | 1<<7 | 0x5b
	di := d.Decode(0, 0, word)
	if di.InstId() != IdVqdotVv {
		t.Fatalf("expected vqdot.vv, got %s", di.Name())
	}
	if di.Op0() != 1 || di.Op1() != 2 || di.Op2() != 3 {
		t.Errorf("bad operands: %d %d %d", di.Op0(), di.Op1(), di.Op2())
	}
}
