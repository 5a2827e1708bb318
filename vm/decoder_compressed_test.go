package vm

import "testing"

func TestDecodeCLi(t *testing.T) {
	d := NewDecoder(true)
	// c.li x5, -1 = 0x52FD
	di := d.Decode(0, 0, 0x52FD)

	if di.InstId() != IdCLi {
		t.Fatalf("expected c.li, got %s", di.Name())
	}
	if di.Size() != 2 {
		t.Errorf("expected size 2, got %d", di.Size())
	}
	if di.Op0() != 5 || di.Op1() != 0 {
		t.Errorf("bad operands: %d %d", di.Op0(), di.Op1())
	}
	if di.Op2SignExtended() != -1 {
		t.Errorf("expected imm -1, got %d", di.Op2SignExtended())
	}
	if !di.IsCompressed() {
		t.Error("c.li is compressed")
	}
}

func TestDecodeCompressedKnown(t *testing.T) {
	tests := []struct {
		name string
		rv64 bool
		word uint16
		id   InstId
		op0  uint32
		op1  uint32
		op2  uint32
	}{
		// c.addi4spn x8, sp, 16: nzuimm[4] is inst[11] -> raw 0x0800
		{"c.addi4spn", true, 0x0800, IdCAddi4spn, 8, 2, 16},
		// c.lw x8, 0(x9): funct3=2, rs1'=1, rd'=0
		{"c.lw", true, 0x4080, IdCLw, 8, 9, 0},
		// c.sw x8, 0(x9)
		{"c.sw", true, 0xC080, IdCSw, 8, 9, 0},
		// c.addi x1, x1, 1
		{"c.addi", true, 0x0085, IdCAddi, 1, 1, 1},
		// c.nop decodes as c.addi x0, x0, 0
		{"c.nop", true, 0x0001, IdCAddi, 0, 0, 0},
		// c.slli x1, x1, 1
		{"c.slli", true, 0x0086, IdCSlli, 1, 1, 1},
		// c.mv x1, x2: quadrant 2, funct3=4, rd=1, rs2=2
		{"c.mv", true, 0x808A, IdCMv, 1, 0, 2},
		// c.add x1, x2: bit 12 set
		{"c.add", true, 0x908A, IdCAdd, 1, 1, 2},
		// c.jr x1
		{"c.jr", true, 0x8082, IdCJr, 0, 1, 0},
		// c.jalr x1
		{"c.jalr", true, 0x9082, IdCJalr, 1, 1, 0},
		// c.ebreak
		{"c.ebreak", true, 0x9002, IdCEbreak, 0, 0, 0},
		// c.lwsp x1, 0(sp)
		{"c.lwsp", true, 0x4082, IdCLwsp, 1, 2, 0},
		// c.swsp x1, 0(sp)
		{"c.swsp", true, 0xC006, IdCSwsp, 1, 2, 0},
		// c.sub x8, x9
		{"c.sub", true, 0x8C05, IdCSub, 8, 8, 9},
		// c.xor x8, x9
		{"c.xor", true, 0x8C25, IdCXor, 8, 8, 9},
		// c.and x8, x9
		{"c.and", true, 0x8C65, IdCAnd, 8, 8, 9},
		// c.andi x8, 1
		{"c.andi", true, 0x8805, IdCAndi, 8, 8, 1},
		// c.lui x3, 1
		{"c.lui", true, 0x6185, IdCLui, 3, 1, 0},
		// c.addi16sp sp, 16
		{"c.addi16sp", true, 0x6141, IdCAddi16sp, 2, 2, 16},
	}

	for _, tt := range tests {
		d := NewDecoder(tt.rv64)
		di := d.Decode(0, 0, uint32(tt.word))
		if di.InstId() != tt.id {
			t.Errorf("%s (%#x): expected %s got %s", tt.name, tt.word, tt.id, di.Name())
			continue
		}
		if di.Op0() != tt.op0 || di.Op1() != tt.op1 || di.Op2() != tt.op2 {
			t.Errorf("%s: bad operands: got %d %d %d want %d %d %d",
				tt.name, di.Op0(), di.Op1(), di.Op2(), tt.op0, tt.op1, tt.op2)
		}
		if di.Size() != 2 {
			t.Errorf("%s: expected size 2", tt.name)
		}
	}
}

func TestCompressedModeDisambiguation(t *testing.T) {
	// Quadrant 1, funct3 = 1: c.jal on rv32, c.addiw on rv64.
	word := uint32(0x2001) // rd field = 0

	di := NewDecoder(false).Decode(0, 0, word)
	if di.InstId() != IdCJal {
		t.Errorf("rv32: expected c.jal, got %s", di.Name())
	}

	// On rv64 the same encoding with rd=0 is illegal (c.addiw requires
	// rd != 0).
	di = NewDecoder(true).Decode(0, 0, word)
	if di.IsValid() {
		t.Errorf("rv64: c.addiw with rd=0 must be illegal, got %s", di.Name())
	}

	// With rd=1 it is c.addiw on rv64.
	word = 0x2085 // rd=1, imm=1
	di = NewDecoder(true).Decode(0, 0, word)
	if di.InstId() != IdCAddiw {
		t.Errorf("rv64: expected c.addiw, got %s", di.Name())
	}

	// Quadrant 0, funct3 = 3: c.flw on rv32, c.ld on rv64.
	word = 0x6080
	di32 := NewDecoder(false).Decode(0, 0, word)
	if id := di32.InstId(); id != IdCFlw {
		t.Errorf("rv32: expected c.flw, got %s", id)
	}
	di64 := NewDecoder(true).Decode(0, 0, word)
	if id := di64.InstId(); id != IdCLd {
		t.Errorf("rv64: expected c.ld, got %s", id)
	}
}

func TestCompressedEdgeCases(t *testing.T) {
	d := NewDecoder(true)

	// c.addi4spn with a zero immediate is illegal.
	if di := d.Decode(0, 0, 0x0000); di.IsValid() {
		t.Error("all-zero halfword must be illegal")
	}
	// Non-zero rd' but zero imm: still illegal.
	if di := d.Decode(0, 0, 0x0004); di.IsValid() {
		t.Error("c.addi4spn with zero immediate must be illegal")
	}

	// c.lwsp with rd=0 is illegal.
	if di := d.Decode(0, 0, 0x4002); di.IsValid() {
		t.Error("c.lwsp with rd=0 must be illegal")
	}

	// c.jr with rd=0 is illegal.
	if di := d.Decode(0, 0, 0x8002); di.IsValid() {
		t.Error("c.jr with rd=0 must be illegal")
	}

	// Quadrant 1 funct3 3 with zero addi16sp immediate and odd rd <= 15 is
	// the Zcmop maybe-op.
	// rd=1, bit12=0, imm bits zero: 0x6081
	di := d.Decode(0, 0, 0x6081)
	if di.InstId() != IdCMop {
		t.Errorf("expected c.mop, got %s", di.Name())
	}
	// Even rd with zero immediate stays illegal (rd=4).
	if di := d.Decode(0, 0, 0x6201); di.IsValid() {
		t.Errorf("even rd with zero addi16sp immediate must be illegal, got %s", di.Name())
	}
}

func TestZcbEncodings(t *testing.T) {
	d := NewDecoder(true)

	checks := []struct {
		word uint16
		id   InstId
	}{
		{0x8000, IdCLbu}, // funct6 0x20
		{0x8400, IdCLhu}, // funct6 0x21, funct1 0
		{0x8440, IdCLh},  // funct6 0x21, funct1 1
		{0x8800, IdCSb},  // funct6 0x22
		{0x8C00, IdCSh},  // funct6 0x23, funct1 0
	}
	for _, tt := range checks {
		decoded := d.Decode(0, 0, uint32(tt.word))
		if id := decoded.InstId(); id != tt.id {
			t.Errorf("%#x: expected %s got %s", tt.word, tt.id, id)
		}
	}
}

// expansionOf maps each compressed instruction to its expanded
// counterpart for the round-trip test. IdIllegal means the expansion is mode
// dependent or checked separately.
func expansionOf(id InstId, rv64 bool) InstId {
	switch id {
	case IdCAddi4spn, IdCAddi, IdCLi, IdCAddi16sp:
		return IdAddi
	case IdCFld, IdCFldsp:
		return IdFld
	case IdCLw, IdCLwsp:
		return IdLw
	case IdCFlw, IdCFlwsp:
		return IdFlw
	case IdCLd, IdCLdsp:
		return IdLd
	case IdCLbu:
		return IdLbu
	case IdCLh:
		return IdLh
	case IdCLhu:
		return IdLhu
	case IdCSb:
		return IdSb
	case IdCSh:
		return IdSh
	case IdCFsd, IdCFsdsp:
		return IdFsd
	case IdCSw, IdCSwsp:
		return IdSw
	case IdCFsw, IdCFswsp:
		return IdFsw
	case IdCSd, IdCSdsp:
		return IdSd
	case IdCJal, IdCJ:
		return IdJal
	case IdCAddiw:
		return IdAddiw
	case IdCLui:
		return IdLui
	case IdCSrli:
		return IdSrli
	case IdCSrai:
		return IdSrai
	case IdCAndi, IdCZextB:
		return IdAndi
	case IdCSub:
		return IdSub
	case IdCXor:
		return IdXor
	case IdCOr:
		return IdOr
	case IdCAnd:
		return IdAnd
	case IdCSubw:
		return IdSubw
	case IdCAddw:
		return IdAddw
	case IdCMul:
		return IdMul
	case IdCSextB:
		return IdSextB
	case IdCSextH:
		return IdSextH
	case IdCZextH:
		if rv64 {
			return IdPackw
		}
		return IdPack
	case IdCZextW:
		return IdAddUw
	case IdCNot:
		return IdXori
	case IdCBeqz:
		return IdBeq
	case IdCBnez:
		return IdBne
	case IdCSlli:
		return IdSlli
	case IdCJr, IdCJalr:
		return IdJalr
	case IdCMv, IdCAdd:
		return IdAdd
	case IdCEbreak:
		return IdEbreak
	case IdCMop:
		return IdLui // maybe-op expands to a no-op lui
	}
	return IdIllegal
}

// Round trip: every legal compressed encoding expands to a 32-bit encoding
// that decodes to the equivalent instruction with the same operands.
func TestExpandRoundTrip(t *testing.T) {
	for _, rv64 := range []bool{false, true} {
		d := NewDecoder(rv64)
		for w := 0; w < 0x10000; w++ {
			hw := uint16(w)
			if hw&3 == 3 {
				continue // not compressed
			}
			di := d.Decode(0, 0, uint32(hw))
			expanded := d.ExpandCompressed(hw)

			if !di.IsValid() {
				if expanded != 0 {
					t.Fatalf("rv64=%v %#04x: illegal decode but non-zero expansion %#x",
						rv64, hw, expanded)
				}
				continue
			}
			if expanded == 0 {
				t.Fatalf("rv64=%v %#04x (%s): legal decode but no expansion",
					rv64, hw, di.Name())
			}

			exp := d.Decode(0, 0, expanded)
			want := expansionOf(di.InstId(), rv64)
			if want == IdIllegal {
				t.Fatalf("rv64=%v %#04x: no expansion mapping for %s", rv64, hw, di.Name())
			}
			if exp.InstId() != want {
				t.Fatalf("rv64=%v %#04x (%s): expansion %#x decodes to %s, want %s",
					rv64, hw, di.Name(), expanded, exp.Name(), want)
			}

			if di.InstId() == IdCMop {
				continue // the no-op expansion does not carry operands
			}
			for i := 0; i < di.OperandCount(); i++ {
				if di.IthOperand(i) != exp.IthOperand(i) {
					t.Fatalf("rv64=%v %#04x (%s -> %s): operand %d mismatch: %#x vs %#x",
						rv64, hw, di.Name(), exp.Name(), i,
						di.IthOperand(i), exp.IthOperand(i))
				}
			}
		}
	}
}
