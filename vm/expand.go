package vm

// Encoders used by the compressed-instruction expander. Each returns the
// 32-bit encoding of the named instruction with the given operands; the
// operand order matches the decoder conventions (loads: rd, rs1, offset;
// stores: rs2, rs1, offset).

func encodeR(opcode, funct3, funct7, rd, rs1, rs2 uint32) uint32 {
	return funct7<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | funct3<<12 | (rd&0x1f)<<7 | opcode
}

func encodeI(opcode, funct3, rd, rs1, imm uint32) uint32 {
	return (imm&0xfff)<<20 | (rs1&0x1f)<<15 | funct3<<12 | (rd&0x1f)<<7 | opcode
}

func encodeS(opcode, funct3, rs2, rs1, imm uint32) uint32 {
	return (imm>>5&0x7f)<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | funct3<<12 | (imm&0x1f)<<7 | opcode
}

func encodeB(opcode, funct3, rs1, rs2, imm uint32) uint32 {
	return (imm>>12&1)<<31 | (imm>>5&0x3f)<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 |
		funct3<<12 | (imm>>1&0xf)<<8 | (imm>>11&1)<<7 | opcode
}

func encodeU(opcode, rd, imm20 uint32) uint32 {
	return (imm20&0xfffff)<<12 | (rd&0x1f)<<7 | opcode
}

func encodeJ(opcode, rd, imm uint32) uint32 {
	return (imm>>20&1)<<31 | (imm>>1&0x3ff)<<21 | (imm>>11&1)<<20 |
		(imm>>12&0xff)<<12 | (rd&0x1f)<<7 | opcode
}

func encodeAddi(rd, rs1, imm uint32) uint32  { return encodeI(0x13, 0, rd, rs1, imm) }
func encodeAddiw(rd, rs1, imm uint32) uint32 { return encodeI(0x1b, 0, rd, rs1, imm) }
func encodeAndi(rd, rs1, imm uint32) uint32  { return encodeI(0x13, 7, rd, rs1, imm) }
func encodeXori(rd, rs1, imm uint32) uint32  { return encodeI(0x13, 4, rd, rs1, imm) }
func encodeLui(rd, imm20 uint32) uint32      { return encodeU(0x37, rd, imm20) }
func encodeLw(rd, rs1, imm uint32) uint32    { return encodeI(0x03, 2, rd, rs1, imm) }
func encodeLd(rd, rs1, imm uint32) uint32    { return encodeI(0x03, 3, rd, rs1, imm) }
func encodeLbu(rd, rs1, imm uint32) uint32   { return encodeI(0x03, 4, rd, rs1, imm) }
func encodeLh(rd, rs1, imm uint32) uint32    { return encodeI(0x03, 1, rd, rs1, imm) }
func encodeLhu(rd, rs1, imm uint32) uint32   { return encodeI(0x03, 5, rd, rs1, imm) }
func encodeFld(rd, rs1, imm uint32) uint32   { return encodeI(0x07, 3, rd, rs1, imm) }
func encodeFlw(rd, rs1, imm uint32) uint32   { return encodeI(0x07, 2, rd, rs1, imm) }
func encodeSw(rs2, rs1, imm uint32) uint32   { return encodeS(0x23, 2, rs2, rs1, imm) }
func encodeSd(rs2, rs1, imm uint32) uint32   { return encodeS(0x23, 3, rs2, rs1, imm) }
func encodeSb(rs2, rs1, imm uint32) uint32   { return encodeS(0x23, 0, rs2, rs1, imm) }
func encodeSh(rs2, rs1, imm uint32) uint32   { return encodeS(0x23, 1, rs2, rs1, imm) }
func encodeFsd(rs2, rs1, imm uint32) uint32  { return encodeS(0x27, 3, rs2, rs1, imm) }
func encodeFsw(rs2, rs1, imm uint32) uint32  { return encodeS(0x27, 2, rs2, rs1, imm) }
func encodeJal(rd, imm uint32) uint32        { return encodeJ(0x6f, rd, imm) }
func encodeJalr(rd, rs1, imm uint32) uint32  { return encodeI(0x67, 0, rd, rs1, imm) }
func encodeBeq(rs1, rs2, imm uint32) uint32  { return encodeB(0x63, 0, rs1, rs2, imm) }
func encodeBne(rs1, rs2, imm uint32) uint32  { return encodeB(0x63, 1, rs1, rs2, imm) }
func encodeAdd(rd, rs1, rs2 uint32) uint32   { return encodeR(0x33, 0, 0, rd, rs1, rs2) }
func encodeSub(rd, rs1, rs2 uint32) uint32   { return encodeR(0x33, 0, 0x20, rd, rs1, rs2) }
func encodeXor(rd, rs1, rs2 uint32) uint32   { return encodeR(0x33, 4, 0, rd, rs1, rs2) }
func encodeOr(rd, rs1, rs2 uint32) uint32    { return encodeR(0x33, 6, 0, rd, rs1, rs2) }
func encodeAnd(rd, rs1, rs2 uint32) uint32   { return encodeR(0x33, 7, 0, rd, rs1, rs2) }
func encodeSubw(rd, rs1, rs2 uint32) uint32  { return encodeR(0x3b, 0, 0x20, rd, rs1, rs2) }
func encodeAddw(rd, rs1, rs2 uint32) uint32  { return encodeR(0x3b, 0, 0, rd, rs1, rs2) }
func encodeMul(rd, rs1, rs2 uint32) uint32   { return encodeR(0x33, 0, 1, rd, rs1, rs2) }
func encodeEbreak() uint32                   { return encodeI(0x73, 0, 0, 0, 1) }
func encodeSextB(rd, rs1 uint32) uint32      { return encodeI(0x13, 1, rd, rs1, 0x604) }
func encodeSextH(rd, rs1 uint32) uint32      { return encodeI(0x13, 1, rd, rs1, 0x605) }
func encodeAddUw(rd, rs1, rs2 uint32) uint32 { return encodeR(0x3b, 0, 4, rd, rs1, rs2) }

func encodeZextH(rd, rs1 uint32, rv64 bool) uint32 {
	if rv64 {
		return encodeR(0x3b, 4, 4, rd, rs1, 0) // packw rd, rs1, x0
	}
	return encodeR(0x33, 4, 4, rd, rs1, 0) // pack rd, rs1, x0
}

func encodeSlli(rd, rs1, amt uint32) uint32 { return encodeI(0x13, 1, rd, rs1, amt&0x3f) }
func encodeSrli(rd, rs1, amt uint32) uint32 { return encodeI(0x13, 5, rd, rs1, amt&0x3f) }

func encodeSrai(rd, rs1, amt uint32) uint32 {
	return encodeI(0x13, 5, rd, rs1, amt&0x3f|0x400)
}

// ExpandCompressed returns the 32-bit instruction equivalent to the given
// compressed instruction, or zero when the encoding is illegal. The expanded
// encoding decodes to the same operands as the compressed one.
func (d *Decoder) ExpandCompressed(inst uint16) uint32 {
	quadrant := inst & 3
	funct3 := inst >> 13

	const illegal = 0

	switch quadrant {
	case 0:
		switch funct3 {
		case 0: // c.addi4spn
			if inst == 0 {
				return illegal
			}
			f := ciwForm(inst)
			if f.immed() == 0 {
				return illegal
			}
			return encodeAddi(8+f.rdp(), regSp, f.immed())

		case 1: // c.fld
			f := clForm(inst)
			return encodeFld(8+f.rdp(), 8+f.rs1p(), f.ldImmed())

		case 2: // c.lw
			f := clForm(inst)
			return encodeLw(8+f.rdp(), 8+f.rs1p(), f.lwImmed())

		case 3: // c.flw / c.ld
			f := clForm(inst)
			if d.rv64 {
				return encodeLd(8+f.rdp(), 8+f.rs1p(), f.ldImmed())
			}
			return encodeFlw(8+f.rdp(), 8+f.rs1p(), f.lwImmed())

		case 4: // Zcb loads/stores
			f := clbForm(inst)
			rd, rs1 := 8+f.rdp(), 8+f.rs1p()
			switch f.funct6() {
			case 0x20:
				return encodeLbu(rd, rs1, f.immed())
			case 0x21:
				if f.funct1() == 0 {
					return encodeLhu(rd, rs1, f.immed()&2)
				}
				return encodeLh(rd, rs1, f.immed()&2)
			case 0x22:
				return encodeSb(rd, rs1, f.immed())
			case 0x23:
				if f.funct1() == 0 {
					return encodeSh(rd, rs1, f.immed()&2)
				}
			}
			return illegal

		case 5: // c.fsd
			f := csForm(inst)
			return encodeFsd(8+f.rs2p(), 8+f.rs1p(), f.sdImmed())

		case 6: // c.sw
			f := csForm(inst)
			return encodeSw(8+f.rs2p(), 8+f.rs1p(), f.swImmed())

		case 7: // c.fsw / c.sd
			f := csForm(inst)
			if !d.rv64 {
				return encodeFsw(8+f.rs2p(), 8+f.rs1p(), f.swImmed())
			}
			return encodeSd(8+f.rs2p(), 8+f.rs1p(), f.sdImmed())
		}
		return illegal

	case 1:
		switch funct3 {
		case 0: // c.addi
			f := ciForm(inst)
			return encodeAddi(f.rd(), f.rd(), f.addiImmed())

		case 1: // c.jal / c.addiw
			if d.rv64 {
				f := ciForm(inst)
				if f.rd() == 0 {
					return illegal
				}
				return encodeAddiw(f.rd(), f.rd(), f.addiImmed())
			}
			f := cjForm(inst)
			return encodeJal(regRa, f.immed())

		case 2: // c.li
			f := ciForm(inst)
			return encodeAddi(f.rd(), regX0, f.addiImmed())

		case 3: // c.addi16sp / c.lui / c.mop
			f := ciForm(inst)
			immed16 := f.addi16spImmed()
			if immed16 == 0 {
				if f.rd() <= 15 && f.rd()&1 != 0 {
					return encodeLui(f.rd(), 0) // maybe-op expands to a no-op lui
				}
				return illegal
			}
			if f.rd() == regSp {
				return encodeAddi(f.rd(), f.rd(), immed16)
			}
			return encodeLui(f.rd(), f.luiImmed())

		case 4:
			f := caiForm(inst)
			immed := f.andiImmed()
			rd := 8 + f.rdp()
			switch f.funct2() {
			case 0:
				if f.ic5() != 0 && !d.rv64 {
					return illegal
				}
				return encodeSrli(rd, rd, f.shiftImmed())
			case 1:
				if f.ic5() != 0 && !d.rv64 {
					return illegal
				}
				return encodeSrai(rd, rd, f.shiftImmed())
			case 2:
				return encodeAndi(rd, rd, immed)
			}
			rs2 := 8 + (immed & 7)
			imm34 := (immed >> 3) & 3
			if immed&0x20 == 0 {
				switch imm34 {
				case 0:
					return encodeSub(rd, rd, rs2)
				case 1:
					return encodeXor(rd, rd, rs2)
				case 2:
					return encodeOr(rd, rd, rs2)
				}
				return encodeAnd(rd, rd, rs2)
			}
			if imm34 == 3 { // Zcb unary group
				switch immed & 7 {
				case 0:
					return encodeAndi(rd, rd, 0xff) // c.zext.b
				case 1:
					return encodeSextB(rd, rd)
				case 2:
					return encodeZextH(rd, rd, d.rv64)
				case 3:
					return encodeSextH(rd, rd)
				case 4:
					return encodeAddUw(rd, rd, 0) // c.zext.w
				case 5:
					return encodeXori(rd, rd, ^uint32(0)) // c.not
				}
				return illegal
			}
			if imm34 == 2 {
				return encodeMul(rd, rd, rs2)
			}
			if !d.rv64 {
				return illegal
			}
			if imm34 == 0 {
				return encodeSubw(rd, rd, rs2)
			}
			if imm34 == 1 {
				return encodeAddw(rd, rd, rs2)
			}
			return illegal

		case 5: // c.j
			f := cjForm(inst)
			return encodeJal(regX0, f.immed())

		case 6: // c.beqz
			f := cbForm(inst)
			return encodeBeq(8+f.rs1p(), regX0, f.immed())
		}

		// funct3 == 7: c.bnez
		f := cbForm(inst)
		return encodeBne(8+f.rs1p(), regX0, f.immed())

	case 2:
		switch funct3 {
		case 0: // c.slli
			f := ciForm(inst)
			if f.ic5() != 0 && !d.rv64 {
				return illegal
			}
			return encodeSlli(f.rd(), f.rd(), f.slliImmed())

		case 1: // c.fldsp
			f := ciForm(inst)
			return encodeFld(f.rd(), regSp, f.ldspImmed())

		case 2: // c.lwsp
			f := ciForm(inst)
			if f.rd() == 0 {
				return illegal
			}
			return encodeLw(f.rd(), regSp, f.lwspImmed())

		case 3: // c.flwsp / c.ldsp
			f := ciForm(inst)
			if d.rv64 {
				if f.rd() == 0 {
					return illegal
				}
				return encodeLd(f.rd(), regSp, f.ldspImmed())
			}
			return encodeFlw(f.rd(), regSp, f.lwspImmed())

		case 4: // c.jr c.mv c.ebreak c.jalr c.add
			f := ciForm(inst)
			immed := f.slliImmed()
			rd := f.rd()
			rs2 := immed & 0x1f
			if immed&0x20 == 0 {
				if rs2 == regX0 {
					if rd == regX0 {
						return illegal
					}
					return encodeJalr(regX0, rd, 0)
				}
				return encodeAdd(rd, regX0, rs2)
			}
			if rs2 == regX0 {
				if rd == regX0 {
					return encodeEbreak()
				}
				return encodeJalr(regRa, rd, 0)
			}
			return encodeAdd(rd, rd, rs2)

		case 5: // c.fsdsp
			f := cswspForm(inst)
			return encodeFsd(f.rs2(), regSp, f.sdImmed())

		case 6: // c.swsp
			f := cswspForm(inst)
			return encodeSw(f.rs2(), regSp, f.swImmed())

		case 7: // c.fswsp / c.sdsp
			f := cswspForm(inst)
			if d.rv64 {
				return encodeSd(f.rs2(), regSp, f.sdImmed())
			}
			return encodeFsw(f.rs2(), regSp, f.swImmed())
		}
	}

	return illegal
}
