package vm

// decode16 decodes a 16-bit compressed instruction. The operand slots follow
// the conventions of the expanded instruction: c.lw produces the operands of
// "lw rd', offset(rs1')".
func (d *Decoder) decode16(inst uint16, op0, op1, op2 *uint32) *InstEntry {
	quadrant := inst & 3
	funct3 := inst >> 13

	*op0, *op1, *op2 = 0, 0, 0

	switch quadrant {
	case 0:
		switch funct3 {
		case 0: // illegal, c.addi4spn
			if inst == 0 {
				return d.illegal()
			}
			f := ciwForm(inst)
			immed := f.immed()
			if immed == 0 {
				return d.illegal()
			}
			*op0, *op1, *op2 = 8+f.rdp(), regSp, immed
			return d.entry(IdCAddi4spn)

		case 1: // c.fld (c.lq is rv128 only)
			f := clForm(inst)
			*op0, *op1, *op2 = 8+f.rdp(), 8+f.rs1p(), f.ldImmed()
			return d.entry(IdCFld)

		case 2: // c.lw
			f := clForm(inst)
			*op0, *op1, *op2 = 8+f.rdp(), 8+f.rs1p(), f.lwImmed()
			return d.entry(IdCLw)

		case 3: // c.flw (rv32), c.ld (rv64)
			f := clForm(inst)
			if d.rv64 {
				*op0, *op1, *op2 = 8+f.rdp(), 8+f.rs1p(), f.ldImmed()
				return d.entry(IdCLd)
			}
			*op0, *op1, *op2 = 8+f.rdp(), 8+f.rs1p(), f.lwImmed()
			return d.entry(IdCFlw)

		case 4: // Zcb loads/stores
			f := clbForm(inst)
			switch f.funct6() {
			case 0x20:
				*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rdp(), f.immed()
				return d.entry(IdCLbu)
			case 0x21:
				*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rdp(), f.immed()&2
				if f.funct1() == 0 {
					return d.entry(IdCLhu)
				}
				return d.entry(IdCLh)
			case 0x22:
				*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rdp(), f.immed()
				return d.entry(IdCSb)
			case 0x23:
				*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rdp(), f.immed()&2
				if f.funct1() == 0 {
					return d.entry(IdCSh)
				}
			}
			return d.illegal()

		case 5: // c.fsd
			f := csForm(inst)
			*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rs2p(), f.sdImmed()
			return d.entry(IdCFsd)

		case 6: // c.sw
			f := csForm(inst)
			*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rs2p(), f.swImmed()
			return d.entry(IdCSw)

		case 7: // c.fsw (rv32), c.sd (rv64)
			f := csForm(inst)
			if !d.rv64 {
				*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rs2p(), f.swImmed()
				return d.entry(IdCFsw)
			}
			*op1, *op0, *op2 = 8+f.rs1p(), 8+f.rs2p(), f.sdImmed()
			return d.entry(IdCSd)
		}
		return d.illegal()

	case 1:
		switch funct3 {
		case 0: // c.nop, c.addi
			f := ciForm(inst)
			*op0, *op1, *op2 = f.rd(), f.rd(), f.addiImmed()
			return d.entry(IdCAddi)

		case 1: // c.jal in rv32, c.addiw in rv64
			if d.rv64 {
				f := ciForm(inst)
				*op0, *op1, *op2 = f.rd(), f.rd(), f.addiImmed()
				if *op0 == 0 {
					return d.illegal()
				}
				return d.entry(IdCAddiw)
			}
			f := cjForm(inst)
			*op0, *op1, *op2 = regRa, f.immed(), 0
			return d.entry(IdCJal)

		case 2: // c.li
			f := ciForm(inst)
			*op0, *op1, *op2 = f.rd(), regX0, f.addiImmed()
			return d.entry(IdCLi)

		case 3: // c.addi16sp, c.lui, c.mop
			f := ciForm(inst)
			immed16 := f.addi16spImmed()
			if immed16 == 0 {
				// Could be the Zcmop maybe-op: only odd rd <= 15 is valid.
				if f.rd() <= 15 && f.rd()&1 != 0 {
					*op0, *op1, *op2 = f.rd(), f.addiImmed(), 0
					return d.entry(IdCMop)
				}
				return d.illegal()
			}
			if f.rd() == regSp {
				*op0, *op1, *op2 = f.rd(), f.rd(), immed16
				return d.entry(IdCAddi16sp)
			}
			*op0, *op1, *op2 = f.rd(), f.luiImmed(), 0
			return d.entry(IdCLui)

		case 4: // c.srli c.srai c.andi c.sub c.xor c.or c.and c.subw c.addw + Zcb
			f := caiForm(inst)
			immed := f.andiImmed()
			rd := 8 + f.rdp()
			switch f.funct2() {
			case 0: // c.srli
				if f.ic5() != 0 && !d.rv64 {
					return d.illegal()
				}
				*op0, *op1, *op2 = rd, rd, f.shiftImmed()
				return d.entry(IdCSrli)
			case 1: // c.srai
				if f.ic5() != 0 && !d.rv64 {
					return d.illegal()
				}
				*op0, *op1, *op2 = rd, rd, f.shiftImmed()
				return d.entry(IdCSrai)
			case 2: // c.andi
				*op0, *op1, *op2 = rd, rd, immed
				return d.entry(IdCAndi)
			}

			// funct2 == 3: register-register subgroup.
			rs2 := 8 + (immed & 7)
			imm34 := (immed >> 3) & 3
			*op0, *op1, *op2 = rd, rd, rs2
			if immed&0x20 == 0 {
				switch imm34 {
				case 0:
					return d.entry(IdCSub)
				case 1:
					return d.entry(IdCXor)
				case 2:
					return d.entry(IdCOr)
				}
				return d.entry(IdCAnd)
			}
			if imm34 == 3 { // Zcb unary group
				*op0, *op1 = rd, rd
				switch immed & 7 {
				case 0:
					*op2 = 0xff
					return d.entry(IdCZextB)
				case 1:
					return d.entry(IdCSextB)
				case 2:
					return d.entry(IdCZextH)
				case 3:
					return d.entry(IdCSextH)
				case 4:
					*op2 = 0
					return d.entry(IdCZextW)
				case 5:
					*op2 = ^uint32(0)
					return d.entry(IdCNot)
				}
				return d.illegal()
			}
			if imm34 == 2 {
				return d.entry(IdCMul)
			}
			if !d.rv64 {
				return d.illegal()
			}
			if imm34 == 0 {
				return d.entry(IdCSubw)
			}
			if imm34 == 1 {
				return d.entry(IdCAddw)
			}
			return d.illegal()

		case 5: // c.j
			f := cjForm(inst)
			*op0, *op1, *op2 = regX0, f.immed(), 0
			return d.entry(IdCJ)

		case 6: // c.beqz
			f := cbForm(inst)
			*op0, *op1, *op2 = 8+f.rs1p(), regX0, f.immed()
			return d.entry(IdCBeqz)
		}

		// funct3 == 7: c.bnez
		f := cbForm(inst)
		*op0, *op1, *op2 = 8+f.rs1p(), regX0, f.immed()
		return d.entry(IdCBnez)

	case 2:
		switch funct3 {
		case 0: // c.slli
			f := ciForm(inst)
			if f.ic5() != 0 && !d.rv64 {
				return d.illegal()
			}
			*op0, *op1, *op2 = f.rd(), f.rd(), f.slliImmed()
			return d.entry(IdCSlli)

		case 1: // c.fldsp
			f := ciForm(inst)
			*op0, *op1, *op2 = f.rd(), regSp, f.ldspImmed()
			return d.entry(IdCFldsp)

		case 2: // c.lwsp
			f := ciForm(inst)
			if f.rd() == 0 {
				return d.illegal()
			}
			*op0, *op1, *op2 = f.rd(), regSp, f.lwspImmed()
			return d.entry(IdCLwsp)

		case 3: // c.flwsp (rv32), c.ldsp (rv64)
			f := ciForm(inst)
			if d.rv64 {
				if f.rd() == 0 {
					return d.illegal()
				}
				*op0, *op1, *op2 = f.rd(), regSp, f.ldspImmed()
				return d.entry(IdCLdsp)
			}
			*op0, *op1, *op2 = f.rd(), regSp, f.lwspImmed()
			return d.entry(IdCFlwsp)

		case 4: // c.jr c.mv c.ebreak c.jalr c.add
			f := ciForm(inst)
			immed := uint32(f.slliImmed())
			rd := f.rd()
			rs2 := immed & 0x1f
			if immed&0x20 == 0 { // c.jr or c.mv
				if rs2 == regX0 {
					if rd == regX0 {
						return d.illegal()
					}
					*op0, *op1, *op2 = regX0, rd, 0
					return d.entry(IdCJr)
				}
				*op0, *op1, *op2 = rd, regX0, rs2
				return d.entry(IdCMv)
			}
			// c.ebreak, c.jalr or c.add
			if rs2 == regX0 {
				if rd == regX0 {
					return d.entry(IdCEbreak)
				}
				*op0, *op1, *op2 = regRa, rd, 0
				return d.entry(IdCJalr)
			}
			*op0, *op1, *op2 = rd, rd, rs2
			return d.entry(IdCAdd)

		case 5: // c.fsdsp
			f := cswspForm(inst)
			*op1, *op0, *op2 = regSp, f.rs2(), f.sdImmed()
			return d.entry(IdCFsdsp)

		case 6: // c.swsp
			f := cswspForm(inst)
			*op1, *op0, *op2 = regSp, f.rs2(), f.swImmed()
			return d.entry(IdCSwsp)

		case 7: // c.fswsp (rv32), c.sdsp (rv64)
			f := cswspForm(inst)
			if d.rv64 {
				*op1, *op0, *op2 = regSp, f.rs2(), f.sdImmed()
				return d.entry(IdCSdsp)
			}
			*op1, *op0, *op2 = regSp, f.rs2(), f.swImmed()
			return d.entry(IdCFswsp)
		}
	}

	return d.illegal() // quadrant 3 is the uncompressed space
}
