package vm

// Decoder maps a 16 or 32 bit encoded instruction to a DecodedInst using an
// immutable opcode table. Decoding is a pure function of the encoded word and
// the XLEN mode; it performs no memory access and never panics. Unrecognized
// encodings map to the IdIllegal entry.
type Decoder struct {
	table *InstTable
	rv64  bool
}

// NewDecoder creates a decoder. rv64 selects RV64 decoding of the mode
// dependent encodings (c.jal vs c.addiw, rev8, word shifts).
func NewDecoder(rv64 bool) *Decoder {
	return &Decoder{table: NewInstTable(), rv64: rv64}
}

// Table returns the opcode table of this decoder.
func (d *Decoder) Table() *InstTable { return d.table }

// Rv64 reports whether the decoder is in RV64 mode.
func (d *Decoder) Rv64() bool { return d.rv64 }

// isCompressedInst reports whether the low 16 bits of inst form a compressed
// instruction.
func isCompressedInst(inst uint32) bool { return inst&3 != 3 }

// Decode decodes the instruction at the given virtual/physical address.
func (d *Decoder) Decode(addr, physAddr uint64, inst uint32) DecodedInst {
	var di DecodedInst
	d.DecodeInto(addr, physAddr, inst, &di)
	return di
}

// DecodeInto decodes into an existing DecodedInst, avoiding an allocation in
// the fetch loop. For vector load/store instructions op3 carries the field
// count (non-zero for segmented and whole-register forms).
func (d *Decoder) DecodeInto(addr, physAddr uint64, inst uint32, di *DecodedInst) {
	var op0, op1, op2, op3 uint32
	entry := d.decode(inst, &op0, &op1, &op2, &op3)
	di.reset(addr, physAddr, inst, entry, op0, op1, op2, op3)

	if entry.IsVector() {
		di.setMasked((inst>>25)&1 == 0)
		di.setVecFieldCount(0)
		if di.IsVectorLoad() || di.IsVectorStore() {
			di.setVecFieldCount(op3)
		}
	}
}

func (d *Decoder) entry(id InstId) *InstEntry { return d.table.Entry(id) }

func (d *Decoder) illegal() *InstEntry { return d.table.Entry(IdIllegal) }

// decode is the format dispatch. It fills the operand slots and returns the
// opcode table entry of the matched instruction.
func (d *Decoder) decode(inst uint32, op0, op1, op2, op3 *uint32) *InstEntry {
	if isCompressedInst(inst) {
		return d.decode16(uint16(inst), op0, op1, op2)
	}

	*op0, *op1, *op2, *op3 = 0, 0, 0, 0

	opcode := (inst & 0x7f) >> 2 // Upper 5 bits of the 7-bit opcode.

	switch opcode {
	case 0b00000: // I-form loads
		f := iForm(inst)
		*op0, *op1, *op2 = f.rd(), f.rs1(), f.immed()
		switch f.funct3() {
		case 0:
			return d.entry(IdLb)
		case 1:
			return d.entry(IdLh)
		case 2:
			return d.entry(IdLw)
		case 3:
			return d.entry(IdLd)
		case 4:
			return d.entry(IdLbu)
		case 5:
			return d.entry(IdLhu)
		case 6:
			return d.entry(IdLwu)
		}
		return d.illegal()

	case 0b00001: // FP and vector loads
		f := iForm(inst)
		*op0, *op1 = f.rd(), f.rs1()
		f3 := f.funct3()
		if f3 == 1 || f3 == 2 || f3 == 3 {
			*op2 = f.immed()
		} else {
			*op2 = f.rs2()
		}
		switch f3 {
		case 0, 5, 6, 7:
			return d.decodeVecLoad(f3, f.uimmed(), op3)
		case 1:
			return d.entry(IdFlh)
		case 2:
			return d.entry(IdFlw)
		case 3:
			return d.entry(IdFld)
		}
		return d.illegal()

	case 0b00011: // fence group
		f := iForm(inst)
		im, rd := f.uimmed(), f.rd()
		switch f.funct3() {
		case 0:
			if f.top4() == 0 {
				if f.pred() == 1 && f.succ() == 0 && rd == 0 && f.rs1() == 0 {
					return d.entry(IdPause)
				}
				return d.entry(IdFence)
			}
			if f.top4() == 8 {
				return d.entry(IdFenceTso)
			}
			// Reserved fm values are treated as a plain fence.
			return d.entry(IdFence)
		case 1:
			return d.entry(IdFenceI)
		case 2:
			*op0 = f.rs1()
			if rd == 0 {
				switch im {
				case 0:
					return d.entry(IdCboInval)
				case 1:
					return d.entry(IdCboClean)
				case 2:
					return d.entry(IdCboFlush)
				case 4:
					return d.entry(IdCboZero)
				}
			}
		}
		return d.illegal()

	case 0b00100: // I-form ALU
		return d.decodeImmAlu(inst, op0, op1, op2)

	case 0b00101: // auipc
		f := uForm(inst)
		*op0, *op1 = f.rd(), f.immed()
		return d.entry(IdAuipc)

	case 0b00110: // I-form word ALU
		f := iForm(inst)
		*op0, *op1, *op2 = f.rd(), f.rs1(), f.immed()
		switch f.funct3() {
		case 0:
			return d.entry(IdAddiw)
		case 1:
			if f.top7() == 0 {
				*op2 = f.shamt() & 0x1f
				return d.entry(IdSlliw)
			}
			if f.top6() == 2 {
				*op2 &= 0x7f
				return d.entry(IdSlliUw)
			}
			if f.top5() == 0x0c {
				switch f.uimmed() & 0x7f {
				case 0:
					return d.entry(IdClzw)
				case 1:
					return d.entry(IdCtzw)
				case 2:
					return d.entry(IdCpopw)
				}
			}
		case 5:
			*op2 = f.shamt() & 0x1f
			switch f.top7() {
			case 0:
				return d.entry(IdSrliw)
			case 0x20:
				return d.entry(IdSraiw)
			case 0x30:
				return d.entry(IdRoriw)
			}
		}
		return d.illegal()

	case 0b01000: // S-form stores; stored register is op0
		f := sForm(inst)
		*op0, *op1, *op2 = f.rs2(), f.rs1(), f.immed()
		switch f.funct3() {
		case 0:
			return d.entry(IdSb)
		case 1:
			return d.entry(IdSh)
		case 2:
			return d.entry(IdSw)
		case 3:
			if d.rv64 {
				return d.entry(IdSd)
			}
		}
		return d.illegal()

	case 0b01001: // FP and vector stores
		f := sForm(inst)
		*op0, *op1, *op2 = f.rs2(), f.rs1(), f.immed()
		f3 := f.funct3()
		if f3 != 1 && f3 != 2 && f3 != 3 {
			// Vector store: op0 is the stored vector register.
			*op0, *op1, *op2 = f.vrd(), f.rs1(), f.rs2()
		}
		switch f3 {
		case 0, 5, 6, 7:
			return d.decodeVecStore(f3, f.vimm12(), op3)
		case 1:
			return d.entry(IdFsh)
		case 2:
			return d.entry(IdFsw)
		case 3:
			return d.entry(IdFsd)
		}
		return d.illegal()

	case 0b01011: // R-form atomics
		f := rForm(inst)
		*op0, *op1, *op2 = f.rd(), f.rs1(), f.rs2()
		top5 := f.top5()
		switch f.funct3() {
		case 2:
			switch top5 {
			case 0:
				return d.entry(IdAmoaddW)
			case 1:
				return d.entry(IdAmoswapW)
			case 2:
				if *op2 == 0 {
					return d.entry(IdLrW)
				}
			case 3:
				return d.entry(IdScW)
			case 4:
				return d.entry(IdAmoxorW)
			case 5:
				return d.entry(IdAmocasW)
			case 8:
				return d.entry(IdAmoorW)
			case 0x0c:
				return d.entry(IdAmoandW)
			case 0x10:
				return d.entry(IdAmominW)
			case 0x14:
				return d.entry(IdAmomaxW)
			case 0x18:
				return d.entry(IdAmominuW)
			case 0x1c:
				return d.entry(IdAmomaxuW)
			}
		case 3:
			switch top5 {
			case 0:
				return d.entry(IdAmoaddD)
			case 1:
				return d.entry(IdAmoswapD)
			case 2:
				if *op2 == 0 {
					return d.entry(IdLrD)
				}
			case 3:
				return d.entry(IdScD)
			case 4:
				return d.entry(IdAmoxorD)
			case 5:
				return d.entry(IdAmocasD)
			case 8:
				return d.entry(IdAmoorD)
			case 0x0c:
				return d.entry(IdAmoandD)
			case 0x10:
				return d.entry(IdAmominD)
			case 0x14:
				return d.entry(IdAmomaxD)
			case 0x18:
				return d.entry(IdAmominuD)
			case 0x1c:
				return d.entry(IdAmomaxuD)
			}
		case 4:
			if top5 == 5 {
				return d.entry(IdAmocasQ)
			}
		}
		return d.illegal()

	case 0b01100: // R-form ALU
		return d.decodeRegAlu(inst, op0, op1, op2, op3)

	case 0b01101: // lui
		f := uForm(inst)
		*op0, *op1 = f.rd(), f.immed()
		return d.entry(IdLui)

	case 0b01110: // R-form word ALU
		return d.decodeRegAluWord(inst, op0, op1, op2)

	case 0b10000, 0b10001, 0b10010, 0b10011: // FMA group
		f := rForm(inst)
		*op0, *op1, *op2 = f.rd(), f.rs1(), f.rs2()
		*op3 = f.funct7() >> 2
		fmt3 := f.funct7() & 3
		var ids [3]InstId
		switch opcode {
		case 0b10000:
			ids = [3]InstId{IdFmaddS, IdFmaddD, IdFmaddH}
		case 0b10001:
			ids = [3]InstId{IdFmsubS, IdFmsubD, IdFmsubH}
		case 0b10010:
			ids = [3]InstId{IdFnmsubS, IdFnmsubD, IdFnmsubH}
		default:
			ids = [3]InstId{IdFnmaddS, IdFnmaddD, IdFnmaddH}
		}
		if fmt3 < 3 {
			return d.entry(ids[fmt3])
		}
		return d.illegal()

	case 0b10100:
		return d.decodeFp(inst, op0, op1, op2)

	case 0b10101:
		return d.decodeVec(inst, op0, op1, op2, op3)

	case 0b10110: // custom vector quad-dot opcode
		f := rForm(inst)
		*op0, *op1, *op2 = f.rd(), f.rs2(), f.rs1() // operand order reversed
		f3, f6 := f.funct3(), f.top6()
		if f3 == 2 {
			switch f6 {
			case 0b101100:
				return d.entry(IdVqdotVv)
			case 0b101000:
				return d.entry(IdVqdotuVv)
			case 0b101010:
				return d.entry(IdVqdotsuVv)
			}
		} else if f3 == 6 {
			switch f6 {
			case 0b101100:
				return d.entry(IdVqdotVx)
			case 0b101000:
				return d.entry(IdVqdotuVx)
			case 0b101010:
				return d.entry(IdVqdotsuVx)
			case 0b101110:
				return d.entry(IdVqdotusVx)
			}
		}
		return d.illegal()

	case 0b11000: // B-form branches
		f := bForm(inst)
		*op0, *op1, *op2 = f.rs1(), f.rs2(), f.immed()
		switch f.funct3() {
		case 0:
			return d.entry(IdBeq)
		case 1:
			return d.entry(IdBne)
		case 4:
			return d.entry(IdBlt)
		case 5:
			return d.entry(IdBge)
		case 6:
			return d.entry(IdBltu)
		case 7:
			return d.entry(IdBgeu)
		}
		return d.illegal()

	case 0b11001: // jalr
		f := iForm(inst)
		*op0, *op1, *op2 = f.rd(), f.rs1(), f.immed()
		if f.funct3() == 0 {
			return d.entry(IdJalr)
		}
		return d.illegal()

	case 0b11011: // jal
		f := jForm(inst)
		*op0, *op1 = f.rd(), f.immed()
		return d.entry(IdJal)

	case 0b11100: // system
		return d.decodeSystem(inst, op0, op1, op2)

	case 0b11101:
		return d.decodeVecCrypto(inst, op0, op1, op2)
	}

	return d.illegal()
}

// decodeImmAlu handles major opcode 0b00100: addi and friends, the shift
// immediate group, and the Zbkb/Zknh/Zksh unary operations hiding under
// funct3 1 and 5.
func (d *Decoder) decodeImmAlu(inst uint32, op0, op1, op2 *uint32) *InstEntry {
	f := iForm(inst)
	*op0, *op1, *op2 = f.rd(), f.rs1(), f.immed()

	switch f.funct3() {
	case 0:
		return d.entry(IdAddi)
	case 1:
		if f.uimmed() == 0x08f {
			return d.entry(IdZip)
		}
		switch *op2 {
		case 0x100:
			return d.entry(IdSha256sum0)
		case 0x101:
			return d.entry(IdSha256sum1)
		case 0x102:
			return d.entry(IdSha256sig0)
		case 0x103:
			return d.entry(IdSha256sig1)
		case 0x104:
			return d.entry(IdSha512sum0)
		case 0x105:
			return d.entry(IdSha512sum1)
		case 0x106:
			return d.entry(IdSha512sig0)
		case 0x107:
			return d.entry(IdSha512sig1)
		case 0x108:
			return d.entry(IdSm3p0)
		case 0x109:
			return d.entry(IdSm3p1)
		}
		top5 := f.uimmed() >> 7
		amt := f.uimmed() & 0x7f
		switch top5 {
		case 0:
			*op2 = amt
			return d.entry(IdSlli)
		case 5:
			*op2 = amt
			return d.entry(IdBseti)
		case 9:
			*op2 = amt
			return d.entry(IdBclri)
		case 0x0c:
			switch amt {
			case 0:
				return d.entry(IdClz)
			case 1:
				return d.entry(IdCtz)
			case 2:
				return d.entry(IdCpop)
			case 4:
				return d.entry(IdSextB)
			case 5:
				return d.entry(IdSextH)
			}
		case 0x0d:
			*op2 = amt
			return d.entry(IdBinvi)
		}
		if *op2 == 0x300 {
			return d.entry(IdAes64im)
		}
		if *op2>>4 == 0x31 {
			*op2 &= 0xf
			return d.entry(IdAes64ks1i)
		}
	case 2:
		return d.entry(IdSlti)
	case 3:
		return d.entry(IdSltiu)
	case 4:
		return d.entry(IdXori)
	case 5:
		im := f.uimmed()
		top5 := im >> 7
		shamt := im & 0x7f
		*op2 = shamt
		switch top5 {
		case 0:
			return d.entry(IdSrli)
		case 5:
			if shamt == 7 {
				return d.entry(IdOrcB)
			}
			return d.illegal()
		case 8:
			return d.entry(IdSrai)
		case 9:
			return d.entry(IdBexti)
		case 0xc:
			return d.entry(IdRori)
		}
		if im == 0x687 {
			return d.entry(IdBrev8)
		}
		if im == 0x08f {
			return d.entry(IdUnzip)
		}
		if d.rv64 && im == 0x6b8 {
			return d.entry(IdRev8_64)
		}
		if !d.rv64 && im == 0x698 {
			return d.entry(IdRev8_32)
		}
	case 6:
		return d.entry(IdOri)
	case 7:
		return d.entry(IdAndi)
	}
	return d.illegal()
}

// decodeRegAlu handles major opcode 0b01100.
func (d *Decoder) decodeRegAlu(inst uint32, op0, op1, op2, op3 *uint32) *InstEntry {
	f := rForm(inst)
	*op0, *op1, *op2 = f.rd(), f.rs1(), f.rs2()
	f7, f3 := f.funct7(), f.funct3()

	switch f7 {
	case 0:
		switch f3 {
		case 0:
			return d.entry(IdAdd)
		case 1:
			return d.entry(IdSll)
		case 2:
			return d.entry(IdSlt)
		case 3:
			return d.entry(IdSltu)
		case 4:
			return d.entry(IdXor)
		case 5:
			return d.entry(IdSrl)
		case 6:
			return d.entry(IdOr)
		case 7:
			return d.entry(IdAnd)
		}
	case 1:
		switch f3 {
		case 0:
			return d.entry(IdMul)
		case 1:
			return d.entry(IdMulh)
		case 2:
			return d.entry(IdMulhsu)
		case 3:
			return d.entry(IdMulhu)
		case 4:
			return d.entry(IdDiv)
		case 5:
			return d.entry(IdDivu)
		case 6:
			return d.entry(IdRem)
		case 7:
			return d.entry(IdRemu)
		}
	case 4:
		if f3 == 4 {
			return d.entry(IdPack)
		}
		if f3 == 7 {
			return d.entry(IdPackh)
		}
	case 5:
		switch f3 {
		case 1:
			return d.entry(IdClmul)
		case 2:
			return d.entry(IdClmulr)
		case 3:
			return d.entry(IdClmulh)
		case 4:
			return d.entry(IdMin)
		case 5:
			return d.entry(IdMinu)
		case 6:
			return d.entry(IdMax)
		case 7:
			return d.entry(IdMaxu)
		}
	case 7:
		if f3 == 5 {
			return d.entry(IdCzeroEqz)
		}
		if f3 == 7 {
			return d.entry(IdCzeroNez)
		}
	case 0x10:
		switch f3 {
		case 2:
			return d.entry(IdSh1add)
		case 4:
			return d.entry(IdSh2add)
		case 6:
			return d.entry(IdSh3add)
		}
	case 0x14:
		switch f3 {
		case 1:
			return d.entry(IdBset)
		case 2:
			return d.entry(IdXpermN)
		case 4:
			return d.entry(IdXpermB)
		}
	case 0x19:
		if f3 == 0 {
			return d.entry(IdAes64es)
		}
	case 0x1b:
		if f3 == 0 {
			return d.entry(IdAes64esm)
		}
	case 0x1d:
		if f3 == 0 {
			return d.entry(IdAes64ds)
		}
	case 0x1f:
		if f3 == 0 {
			return d.entry(IdAes64dsm)
		}
	case 0x20:
		switch f3 {
		case 0:
			return d.entry(IdSub)
		case 4:
			return d.entry(IdXnor)
		case 5:
			return d.entry(IdSra)
		case 6:
			return d.entry(IdOrn)
		case 7:
			return d.entry(IdAndn)
		}
	case 0x24:
		if f3 == 1 {
			return d.entry(IdBclr)
		}
		if f3 == 5 {
			return d.entry(IdBext)
		}
	case 0x28:
		if f3 == 0 {
			return d.entry(IdSha512sum0r)
		}
	case 0x29:
		if f3 == 0 {
			return d.entry(IdSha512sum1r)
		}
	case 0x2a:
		if f3 == 0 {
			return d.entry(IdSha512sig0l)
		}
	case 0x2b:
		if f3 == 0 {
			return d.entry(IdSha512sig1l)
		}
	case 0x2e:
		if f3 == 0 {
			return d.entry(IdSha512sig0h)
		}
	case 0x2f:
		if f3 == 0 {
			return d.entry(IdSha512sig1h)
		}
	case 0x30:
		if f3 == 1 {
			return d.entry(IdRol)
		}
		if f3 == 5 {
			return d.entry(IdRor)
		}
	case 0x34:
		if f3 == 1 {
			return d.entry(IdBinv)
		}
	case 0x3f:
		if f3 == 0 {
			return d.entry(IdAes64ks2)
		}
	}

	// Zkn/Zks 32-bit forms select a byte with the top two bits of funct7.
	if f3 == 0 {
		var id InstId
		switch f7 & 0x1f {
		case 0x11:
			id = IdAes32esi
		case 0x13:
			id = IdAes32esmi
		case 0x15:
			id = IdAes32dsi
		case 0x17:
			id = IdAes32dsmi
		case 0x18:
			id = IdSm4ed
		case 0x1a:
			id = IdSm4ks
		}
		if id != IdIllegal {
			*op3 = inst >> 30
			return d.entry(id)
		}
	}

	return d.illegal()
}

// decodeRegAluWord handles major opcode 0b01110.
func (d *Decoder) decodeRegAluWord(inst uint32, op0, op1, op2 *uint32) *InstEntry {
	f := rForm(inst)
	*op0, *op1, *op2 = f.rd(), f.rs1(), f.rs2()
	f7, f3 := f.funct7(), f.funct3()

	switch f7 {
	case 0:
		switch f3 {
		case 0:
			return d.entry(IdAddw)
		case 1:
			return d.entry(IdSllw)
		case 5:
			return d.entry(IdSrlw)
		}
	case 1:
		switch f3 {
		case 0:
			return d.entry(IdMulw)
		case 4:
			return d.entry(IdDivw)
		case 5:
			return d.entry(IdDivuw)
		case 6:
			return d.entry(IdRemw)
		case 7:
			return d.entry(IdRemuw)
		}
	case 4:
		if f3 == 0 {
			return d.entry(IdAddUw)
		}
		if f3 == 4 {
			return d.entry(IdPackw)
		}
	case 0x10:
		switch f3 {
		case 2:
			return d.entry(IdSh1addUw)
		case 4:
			return d.entry(IdSh2addUw)
		case 6:
			return d.entry(IdSh3addUw)
		}
	case 0x20:
		if f3 == 0 {
			return d.entry(IdSubw)
		}
		if f3 == 5 {
			return d.entry(IdSraw)
		}
	case 0x30:
		if f3 == 1 {
			return d.entry(IdRolw)
		}
		if f3 == 5 {
			return d.entry(IdRorw)
		}
	}
	return d.illegal()
}

// decodeSystem handles major opcode 0b11100: environment calls, fences,
// hypervisor loads/stores, CSR access and the maybe-ops.
func (d *Decoder) decodeSystem(inst uint32, op0, op1, op2 *uint32) *InstEntry {
	f := iForm(inst)
	*op0, *op1, *op2 = f.rd(), f.rs1(), f.uimmed()

	switch f.funct3() {
	case 1:
		return d.entry(IdCsrrw)
	case 2:
		return d.entry(IdCsrrs)
	case 3:
		return d.entry(IdCsrrc)
	case 5:
		return d.entry(IdCsrrwi)
	case 6:
		return d.entry(IdCsrrsi)
	case 7:
		return d.entry(IdCsrrci)
	case 0:
		funct7 := *op2 >> 5
		switch {
		case funct7 == 0:
			if *op1 != 0 || *op0 != 0 {
				return d.illegal()
			}
			switch *op2 {
			case 0:
				return d.entry(IdEcall)
			case 1:
				return d.entry(IdEbreak)
			case 0x0d:
				return d.entry(IdWrsNto)
			case 0x1d:
				return d.entry(IdWrsSto)
			}
		case funct7 == 9:
			if *op0 != 0 {
				return d.illegal()
			}
			*op0, *op1 = f.rs1(), f.rs2()
			return d.entry(IdSfenceVma)
		case funct7 == 0xb && *op0 == 0:
			*op0, *op1 = f.rs1(), f.rs2()
			return d.entry(IdSinvalVma)
		case funct7 == 0xc:
			*op2 = f.rs2()
			if *op0 == 0 && *op1 == 0 && *op2 == 0 {
				return d.entry(IdSfenceWInval)
			}
			if *op0 == 0 && *op1 == 0 && *op2 == 1 {
				return d.entry(IdSfenceInvalIr)
			}
			return d.illegal()
		case funct7 == 0x11 && *op0 == 0:
			*op0, *op1 = f.rs1(), f.rs2()
			return d.entry(IdHfenceVvma)
		case funct7 == 0x13 && *op0 == 0:
			*op0, *op1 = f.rs1(), f.rs2()
			return d.entry(IdHinvalVvma)
		case funct7 == 0x31 && *op0 == 0:
			*op0, *op1 = f.rs1(), f.rs2()
			return d.entry(IdHfenceGvma)
		case funct7 == 0x33 && *op0 == 0:
			*op0, *op1 = f.rs1(), f.rs2()
			return d.entry(IdHinvalGvma)
		case *op2 == 0x102 && *op0 == 0 && *op1 == 0:
			return d.entry(IdSret)
		case *op2 == 0x302 && *op0 == 0 && *op1 == 0:
			return d.entry(IdMret)
		case *op2 == 0x702 && *op0 == 0 && *op1 == 0:
			return d.entry(IdMnret)
		case *op2 == 0x105 && *op0 == 0 && *op1 == 0:
			return d.entry(IdWfi)
		case *op2 == 0x7b2 && *op0 == 0 && *op1 == 0:
			return d.entry(IdDret)
		}
	case 4:
		top12 := *op2
		top7 := top12 >> 5

		// mop.rr: I format with an rs2 field.
		switch top7 {
		case 0x41, 0x43, 0x45, 0x47, 0x61, 0x63, 0x65, 0x67:
			*op2 = rForm(inst).rs2()
			return d.entry(IdMopRr)
		}

		*op2 = 0
		if isMopR(top12) {
			return d.entry(IdMopR)
		}

		switch top12 {
		case 0x600:
			return d.entry(IdHlvB)
		case 0x601:
			return d.entry(IdHlvBu)
		case 0x640:
			return d.entry(IdHlvH)
		case 0x641:
			return d.entry(IdHlvHu)
		case 0x680:
			return d.entry(IdHlvW)
		case 0x643:
			return d.entry(IdHlvxHu)
		case 0x683:
			return d.entry(IdHlvxWu)
		case 0x681:
			return d.entry(IdHlvWu)
		case 0x6c0:
			return d.entry(IdHlvD)
		}

		rd := f.rd()
		*op0 = top12 & 0x1f // rs2 field: the stored register
		if rd == 0 {
			switch top7 {
			case 0x31:
				return d.entry(IdHsvB)
			case 0x33:
				return d.entry(IdHsvH)
			case 0x35:
				return d.entry(IdHsvW)
			case 0x37:
				return d.entry(IdHsvD)
			}
		}
	}
	return d.illegal()
}

// isMopR matches the 32 mop.r.n encodings of Zimop.
func isMopR(top12 uint32) bool {
	switch top12 {
	case 0x81c, 0x81d, 0x81e, 0x81f,
		0x85c, 0x85d, 0x85e, 0x85f,
		0x89c, 0x89d, 0x89e, 0x89f,
		0x8dc, 0x8dd, 0x8de, 0x8df,
		0xc1c, 0xc1d, 0xc1e, 0xc1f,
		0xc5c, 0xc5d, 0xc5e, 0xc5f,
		0xc9c, 0xc9d, 0xc9e, 0xc9f,
		0xcdc, 0xcdd, 0xcde, 0xcdf:
		return true
	}
	return false
}
