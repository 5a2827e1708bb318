package vm

// decodeVec handles major opcode 0b10101 (vector arithmetic and
// configuration). A number of encodings carry their operands in the reverse
// of the assembler order (multiply-add, merge, moves); the swaps below follow
// the V extension operand tables.
func (d *Decoder) decodeVec(inst uint32, op0, op1, op2, op3 *uint32) *InstEntry {
	f := rForm(inst)
	f3, f6 := f.funct3(), f.top6()
	vm := (inst >> 25) & 1

	*op3 = 0

	switch f3 {
	case 0: // OPIVV
		*op0 = f.rd()
		*op1 = f.rs2() // operand order reversed
		*op2 = f.rs1()

		switch f6 {
		case 0:
			return d.entry(IdVaddVv)
		case 1:
			return d.entry(IdVandnVv)
		case 2:
			return d.entry(IdVsubVv)
		case 4:
			return d.entry(IdVminuVv)
		case 5:
			return d.entry(IdVminVv)
		case 6:
			return d.entry(IdVmaxuVv)
		case 7:
			return d.entry(IdVmaxVv)
		case 9:
			return d.entry(IdVandVv)
		case 0xa:
			return d.entry(IdVorVv)
		case 0xb:
			return d.entry(IdVxorVv)
		case 0xc:
			return d.entry(IdVrgatherVv)
		case 0xe:
			return d.entry(IdVrgatherei16Vv)
		case 0x10:
			return d.entry(IdVadcVvm)
		case 0x11:
			return d.entry(IdVmadcVvm)
		case 0x12:
			return d.entry(IdVsbcVvm)
		case 0x13:
			return d.entry(IdVmsbcVvm)
		case 0x14:
			return d.entry(IdVrorVv)
		case 0x15:
			return d.entry(IdVrolVv)
		case 0x17:
			if vm == 0 {
				return d.entry(IdVmergeVvm)
			}
			*op1, *op2 = *op2, *op1
			if *op2 == 0 {
				return d.entry(IdVmvVV)
			}
		case 0x18:
			return d.entry(IdVmseqVv)
		case 0x19:
			return d.entry(IdVmsneVv)
		case 0x1a:
			return d.entry(IdVmsltuVv)
		case 0x1b:
			return d.entry(IdVmsltVv)
		case 0x1c:
			return d.entry(IdVmsleuVv)
		case 0x1d:
			return d.entry(IdVmsleVv)
		case 0x20:
			return d.entry(IdVsadduVv)
		case 0x21:
			return d.entry(IdVsaddVv)
		case 0x22:
			return d.entry(IdVssubuVv)
		case 0x23:
			return d.entry(IdVssubVv)
		case 0x25:
			return d.entry(IdVsllVv)
		case 0x27:
			return d.entry(IdVsmulVv)
		case 0x28:
			return d.entry(IdVsrlVv)
		case 0x29:
			return d.entry(IdVsraVv)
		case 0x2a:
			return d.entry(IdVssrlVv)
		case 0x2b:
			return d.entry(IdVssraVv)
		case 0x2c:
			return d.entry(IdVnsrlWv)
		case 0x2d:
			return d.entry(IdVnsraWv)
		case 0x2e:
			return d.entry(IdVnclipuWv)
		case 0x2f:
			return d.entry(IdVnclipWv)
		case 0x30:
			return d.entry(IdVwredsumuVs)
		case 0x31:
			return d.entry(IdVwredsumVs)
		case 0x35:
			return d.entry(IdVwsllVv)
		}
		return d.illegal()

	case 1: // OPFVV
		*op0 = f.rd()
		*op1 = f.rs2()
		*op2 = f.rs1()

		switch f6 {
		case 0:
			return d.entry(IdVfaddVv)
		case 1:
			return d.entry(IdVfredusumVs)
		case 2:
			return d.entry(IdVfsubVv)
		case 3:
			return d.entry(IdVfredosumVs)
		case 4:
			return d.entry(IdVfminVv)
		case 5:
			return d.entry(IdVfredminVs)
		case 6:
			return d.entry(IdVfmaxVv)
		case 7:
			return d.entry(IdVfredmaxVs)
		case 8:
			return d.entry(IdVfsgnjVv)
		case 9:
			return d.entry(IdVfsgnjnVv)
		case 0xa:
			return d.entry(IdVfsgnjxVv)
		case 0x10:
			if *op2 == 0 {
				return d.entry(IdVfmvFS)
			}
			return d.illegal()
		case 0x12:
			switch *op2 {
			case 0:
				return d.entry(IdVfcvtXuFV)
			case 1:
				return d.entry(IdVfcvtXFV)
			case 2:
				return d.entry(IdVfcvtFXuV)
			case 3:
				return d.entry(IdVfcvtFXV)
			case 6:
				return d.entry(IdVfcvtRtzXuFV)
			case 7:
				return d.entry(IdVfcvtRtzXFV)
			case 8:
				return d.entry(IdVfwcvtXuFV)
			case 9:
				return d.entry(IdVfwcvtXFV)
			case 0xa:
				return d.entry(IdVfwcvtFXuV)
			case 0xb:
				return d.entry(IdVfwcvtFXV)
			case 0xc:
				return d.entry(IdVfwcvtFFV)
			case 0xd:
				return d.entry(IdVfwcvtbf16FFV)
			case 0xe:
				return d.entry(IdVfwcvtRtzXuFV)
			case 0xf:
				return d.entry(IdVfwcvtRtzXFV)
			case 0x10:
				return d.entry(IdVfncvtXuFW)
			case 0x11:
				return d.entry(IdVfncvtXFW)
			case 0x12:
				return d.entry(IdVfncvtFXuW)
			case 0x13:
				return d.entry(IdVfncvtFXW)
			case 0x14:
				return d.entry(IdVfncvtFFW)
			case 0x15:
				return d.entry(IdVfncvtRodFFW)
			case 0x16:
				return d.entry(IdVfncvtRtzXuFW)
			case 0x17:
				return d.entry(IdVfncvtRtzXFW)
			case 0x1d:
				return d.entry(IdVfncvtbf16FFW)
			}
		case 0x13:
			switch *op2 {
			case 0:
				return d.entry(IdVfsqrtV)
			case 4:
				return d.entry(IdVfrsqrt7V)
			case 5:
				return d.entry(IdVfrec7V)
			case 0x10:
				return d.entry(IdVfclassV)
			}
		case 0x18:
			return d.entry(IdVmfeqVv)
		case 0x19:
			return d.entry(IdVmfleVv)
		case 0x1b:
			return d.entry(IdVmfltVv)
		case 0x1c:
			return d.entry(IdVmfneVv)
		case 0x20:
			return d.entry(IdVfdivVv)
		case 0x24:
			return d.entry(IdVfmulVv)
		case 0x28:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmaddVv)
		case 0x29:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmaddVv)
		case 0x2a:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmsubVv)
		case 0x2b:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmsubVv)
		case 0x2c:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmaccVv)
		case 0x2d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmaccVv)
		case 0x2e:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmsacVv)
		case 0x2f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmsacVv)
		case 0x30:
			return d.entry(IdVfwaddVv)
		case 0x31:
			return d.entry(IdVfwredusumVs)
		case 0x32:
			return d.entry(IdVfwsubVv)
		case 0x33:
			return d.entry(IdVfwredosumVs)
		case 0x34:
			return d.entry(IdVfwaddWv)
		case 0x36:
			return d.entry(IdVfwsubWv)
		case 0x38:
			return d.entry(IdVfwmulVv)
		case 0x3b:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwmaccbf16Vv)
		case 0x3c:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwmaccVv)
		case 0x3d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwnmaccVv)
		case 0x3e:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwmsacVv)
		case 0x3f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwnmsacVv)
		}
		return d.illegal()

	case 2: // OPMVV
		*op0 = f.rd()
		*op1 = f.rs2()
		*op2 = f.rs1()

		switch f6 {
		case 0:
			return d.entry(IdVredsumVs)
		case 1:
			return d.entry(IdVredandVs)
		case 2:
			return d.entry(IdVredorVs)
		case 3:
			return d.entry(IdVredxorVs)
		case 4:
			return d.entry(IdVredminuVs)
		case 5:
			return d.entry(IdVredminVs)
		case 6:
			return d.entry(IdVredmaxuVs)
		case 7:
			return d.entry(IdVredmaxVs)
		case 8:
			return d.entry(IdVaadduVv)
		case 9:
			return d.entry(IdVaaddVv)
		case 0xa:
			return d.entry(IdVasubuVv)
		case 0xb:
			return d.entry(IdVasubVv)
		case 0xc:
			return d.entry(IdVclmulVv)
		case 0xd:
			return d.entry(IdVclmulhVv)
		case 0x10:
			switch *op2 {
			case 0:
				return d.entry(IdVmvXS)
			case 0x10:
				return d.entry(IdVcpopM)
			case 0x11:
				return d.entry(IdVfirstM)
			}
			return d.illegal()
		case 0x12:
			switch *op2 {
			case 2:
				return d.entry(IdVzextVf8)
			case 4:
				return d.entry(IdVzextVf4)
			case 6:
				return d.entry(IdVzextVf2)
			case 3:
				return d.entry(IdVsextVf8)
			case 5:
				return d.entry(IdVsextVf4)
			case 7:
				return d.entry(IdVsextVf2)
			case 8:
				return d.entry(IdVbrev8V)
			case 9:
				return d.entry(IdVrev8V)
			case 10:
				return d.entry(IdVbrevV)
			case 12:
				return d.entry(IdVclzV)
			case 13:
				return d.entry(IdVctzV)
			case 14:
				return d.entry(IdVcpopV)
			}
			return d.illegal()
		case 0x14:
			switch *op2 {
			case 1:
				return d.entry(IdVmsbfM)
			case 2:
				return d.entry(IdVmsofM)
			case 3:
				return d.entry(IdVmsifM)
			case 0x10:
				return d.entry(IdViotaM)
			case 0x11:
				return d.entry(IdVidV)
			}
			return d.illegal()
		case 0x17:
			return d.entry(IdVcompressVm)
		case 0x19:
			return d.entry(IdVmandMm)
		case 0x1d:
			return d.entry(IdVmnandMm)
		case 0x18:
			return d.entry(IdVmandnMm)
		case 0x1b:
			return d.entry(IdVmxorMm)
		case 0x1a:
			return d.entry(IdVmorMm)
		case 0x1e:
			return d.entry(IdVmnorMm)
		case 0x1c:
			return d.entry(IdVmornMm)
		case 0x1f:
			return d.entry(IdVmxnorMm)
		case 0x20:
			return d.entry(IdVdivuVv)
		case 0x21:
			return d.entry(IdVdivVv)
		case 0x22:
			return d.entry(IdVremuVv)
		case 0x23:
			return d.entry(IdVremVv)
		case 0x24:
			return d.entry(IdVmulhuVv)
		case 0x25:
			return d.entry(IdVmulVv)
		case 0x26:
			return d.entry(IdVmulhsuVv)
		case 0x27:
			return d.entry(IdVmulhVv)
		case 0x29:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVmaddVv)
		case 0x2b:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVnmsubVv)
		case 0x2d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVmaccVv)
		case 0x2f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVnmsacVv)
		case 0x30:
			return d.entry(IdVwadduVv)
		case 0x31:
			return d.entry(IdVwaddVv)
		case 0x32:
			return d.entry(IdVwsubuVv)
		case 0x33:
			return d.entry(IdVwsubVv)
		case 0x34:
			return d.entry(IdVwadduWv)
		case 0x35:
			return d.entry(IdVwaddWv)
		case 0x36:
			return d.entry(IdVwsubuWv)
		case 0x37:
			return d.entry(IdVwsubWv)
		case 0x38:
			return d.entry(IdVwmuluVv)
		case 0x3a:
			return d.entry(IdVwmulsuVv)
		case 0x3b:
			return d.entry(IdVwmulVv)
		case 0x3c:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccuVv)
		case 0x3d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccVv)
		case 0x3f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccsuVv)
		}
		return d.illegal()

	case 3: // OPIVI
		*op0 = f.rd()
		*op1 = f.rs2()
		uimm5 := f.rs1()
		simm := uint32(signExtend(uimm5, 5))
		*op2 = simm

		switch f6 {
		case 0:
			return d.entry(IdVaddVi)
		case 3:
			return d.entry(IdVrsubVi)
		case 9:
			return d.entry(IdVandVi)
		case 0xa:
			return d.entry(IdVorVi)
		case 0xb:
			return d.entry(IdVxorVi)
		case 0xc:
			*op2 = uimm5
			return d.entry(IdVrgatherVi)
		case 0xe:
			*op2 = uimm5
			return d.entry(IdVslideupVi)
		case 0xf:
			*op2 = uimm5
			return d.entry(IdVslidedownVi)
		case 0x10:
			return d.entry(IdVadcVim)
		case 0x11:
			return d.entry(IdVmadcVim)
		case 0x14: // bit 26 of the rotate amount is zero
			*op2 = uimm5
			return d.entry(IdVrorVi)
		case 0x15: // bit 26 of the rotate amount is one
			*op2 = uimm5 | 0x20
			return d.entry(IdVrorVi)
		case 0x17:
			if vm == 0 {
				return d.entry(IdVmergeVim)
			}
			*op1 = simm
			*op2 = f.rs2()
			if *op2 == 0 {
				return d.entry(IdVmvVI)
			}
		case 0x18:
			return d.entry(IdVmseqVi)
		case 0x19:
			return d.entry(IdVmsneVi)
		case 0x1c:
			return d.entry(IdVmsleuVi)
		case 0x1d:
			return d.entry(IdVmsleVi)
		case 0x1e:
			return d.entry(IdVmsgtuVi)
		case 0x1f:
			return d.entry(IdVmsgtVi)
		case 0x20:
			return d.entry(IdVsadduVi)
		case 0x21:
			return d.entry(IdVsaddVi)
		case 0x25:
			*op2 = uimm5
			return d.entry(IdVsllVi)
		case 0x27:
			switch int32(simm) {
			case 0:
				return d.entry(IdVmv1rV)
			case 1:
				return d.entry(IdVmv2rV)
			case 3:
				return d.entry(IdVmv4rV)
			case 7:
				return d.entry(IdVmv8rV)
			}
		case 0x28:
			*op2 = uimm5
			return d.entry(IdVsrlVi)
		case 0x29:
			*op2 = uimm5
			return d.entry(IdVsraVi)
		case 0x2a:
			*op2 = uimm5
			return d.entry(IdVssrlVi)
		case 0x2b:
			*op2 = uimm5
			return d.entry(IdVssraVi)
		case 0x2c:
			*op2 = uimm5
			return d.entry(IdVnsrlWi)
		case 0x2d:
			*op2 = uimm5
			return d.entry(IdVnsraWi)
		case 0x2e:
			*op2 = uimm5
			return d.entry(IdVnclipuWi)
		case 0x2f:
			*op2 = uimm5
			return d.entry(IdVnclipWi)
		case 0x35:
			*op2 = uimm5
			return d.entry(IdVwsllVi)
		}
		return d.illegal()

	case 4: // OPIVX
		*op0 = f.rd()
		*op1 = f.rs2()
		*op2 = f.rs1()

		switch f6 {
		case 0:
			return d.entry(IdVaddVx)
		case 1:
			return d.entry(IdVandnVx)
		case 2:
			return d.entry(IdVsubVx)
		case 3:
			return d.entry(IdVrsubVx)
		case 4:
			return d.entry(IdVminuVx)
		case 5:
			return d.entry(IdVminVx)
		case 6:
			return d.entry(IdVmaxuVx)
		case 7:
			return d.entry(IdVmaxVx)
		case 9:
			return d.entry(IdVandVx)
		case 0xa:
			return d.entry(IdVorVx)
		case 0xb:
			return d.entry(IdVxorVx)
		case 0xc:
			return d.entry(IdVrgatherVx)
		case 0xe:
			return d.entry(IdVslideupVx)
		case 0xf:
			return d.entry(IdVslidedownVx)
		case 0x10:
			return d.entry(IdVadcVxm)
		case 0x11:
			return d.entry(IdVmadcVxm)
		case 0x12:
			return d.entry(IdVsbcVxm)
		case 0x13:
			return d.entry(IdVmsbcVxm)
		case 0x14:
			return d.entry(IdVrorVx)
		case 0x15:
			return d.entry(IdVrolVx)
		case 0x17:
			if vm == 0 {
				return d.entry(IdVmergeVxm)
			}
			*op1, *op2 = *op2, *op1
			if *op2 == 0 {
				return d.entry(IdVmvVX)
			}
		case 0x18:
			return d.entry(IdVmseqVx)
		case 0x19:
			return d.entry(IdVmsneVx)
		case 0x1a:
			return d.entry(IdVmsltuVx)
		case 0x1b:
			return d.entry(IdVmsltVx)
		case 0x1c:
			return d.entry(IdVmsleuVx)
		case 0x1d:
			return d.entry(IdVmsleVx)
		case 0x1e:
			return d.entry(IdVmsgtuVx)
		case 0x1f:
			return d.entry(IdVmsgtVx)
		case 0x20:
			return d.entry(IdVsadduVx)
		case 0x21:
			return d.entry(IdVsaddVx)
		case 0x22:
			return d.entry(IdVssubuVx)
		case 0x23:
			return d.entry(IdVssubVx)
		case 0x25:
			return d.entry(IdVsllVx)
		case 0x27:
			return d.entry(IdVsmulVx)
		case 0x28:
			return d.entry(IdVsrlVx)
		case 0x29:
			return d.entry(IdVsraVx)
		case 0x2a:
			return d.entry(IdVssrlVx)
		case 0x2b:
			return d.entry(IdVssraVx)
		case 0x2c:
			return d.entry(IdVnsrlWx)
		case 0x2d:
			return d.entry(IdVnsraWx)
		case 0x2e:
			return d.entry(IdVnclipuWx)
		case 0x2f:
			return d.entry(IdVnclipWx)
		case 0x35:
			return d.entry(IdVwsllVx)
		}
		return d.illegal()

	case 6: // OPMVX
		*op0 = f.rd()
		*op1 = f.rs2()
		*op2 = f.rs1()

		switch f6 {
		case 8:
			return d.entry(IdVaadduVx)
		case 9:
			return d.entry(IdVaaddVx)
		case 0xa:
			return d.entry(IdVasubuVx)
		case 0xb:
			return d.entry(IdVasubVx)
		case 0xc:
			return d.entry(IdVclmulVx)
		case 0xd:
			return d.entry(IdVclmulhVx)
		case 0xe:
			return d.entry(IdVslide1upVx)
		case 0xf:
			return d.entry(IdVslide1downVx)
		case 0x10:
			*op1, *op2 = *op2, *op1
			if *op2 == 0 {
				return d.entry(IdVmvSX)
			}
			return d.illegal()
		case 0x20:
			return d.entry(IdVdivuVx)
		case 0x21:
			return d.entry(IdVdivVx)
		case 0x22:
			return d.entry(IdVremuVx)
		case 0x23:
			return d.entry(IdVremVx)
		case 0x24:
			return d.entry(IdVmulhuVx)
		case 0x25:
			return d.entry(IdVmulVx)
		case 0x26:
			return d.entry(IdVmulhsuVx)
		case 0x27:
			return d.entry(IdVmulhVx)
		case 0x29:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVmaddVx)
		case 0x2b:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVnmsubVx)
		case 0x2d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVmaccVx)
		case 0x2f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVnmsacVx)
		case 0x30:
			return d.entry(IdVwadduVx)
		case 0x31:
			return d.entry(IdVwaddVx)
		case 0x32:
			return d.entry(IdVwsubuVx)
		case 0x33:
			return d.entry(IdVwsubVx)
		case 0x34:
			return d.entry(IdVwadduWx)
		case 0x35:
			return d.entry(IdVwaddWx)
		case 0x36:
			return d.entry(IdVwsubuWx)
		case 0x37:
			return d.entry(IdVwsubWx)
		case 0x38:
			return d.entry(IdVwmuluVx)
		case 0x3a:
			return d.entry(IdVwmulsuVx)
		case 0x3b:
			return d.entry(IdVwmulVx)
		case 0x3c:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccuVx)
		case 0x3d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccVx)
		case 0x3e:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccusVx)
		case 0x3f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVwmaccsuVx)
		}
		return d.illegal()

	case 5: // OPFVF
		*op0 = f.rd()
		*op1 = f.rs2()
		*op2 = f.rs1()

		switch f6 {
		case 0:
			return d.entry(IdVfaddVf)
		case 2:
			return d.entry(IdVfsubVf)
		case 4:
			return d.entry(IdVfminVf)
		case 6:
			return d.entry(IdVfmaxVf)
		case 8:
			return d.entry(IdVfsgnjVf)
		case 9:
			return d.entry(IdVfsgnjnVf)
		case 0xa:
			return d.entry(IdVfsgnjxVf)
		case 0xe:
			return d.entry(IdVfslide1upVf)
		case 0xf:
			return d.entry(IdVfslide1downVf)
		case 0x10:
			*op1, *op2 = *op2, *op1
			if *op2 == 0 {
				return d.entry(IdVfmvSF)
			}
			return d.illegal()
		case 0x17:
			if vm == 0 {
				return d.entry(IdVfmergeVfm)
			}
			*op1 = f.rs1()
			*op2 = f.rs2()
			if *op2 == 0 {
				return d.entry(IdVfmvVF)
			}
		case 0x18:
			return d.entry(IdVmfeqVf)
		case 0x19:
			return d.entry(IdVmfleVf)
		case 0x1b:
			return d.entry(IdVmfltVf)
		case 0x1c:
			return d.entry(IdVmfneVf)
		case 0x1d:
			return d.entry(IdVmfgtVf)
		case 0x1f:
			return d.entry(IdVmfgeVf)
		case 0x20:
			return d.entry(IdVfdivVf)
		case 0x21:
			return d.entry(IdVfrdivVf)
		case 0x24:
			return d.entry(IdVfmulVf)
		case 0x27:
			return d.entry(IdVfrsubVf)
		case 0x28:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmaddVf)
		case 0x29:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmaddVf)
		case 0x2a:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmsubVf)
		case 0x2b:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmsubVf)
		case 0x2c:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmaccVf)
		case 0x2d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmaccVf)
		case 0x2e:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfmsacVf)
		case 0x2f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfnmsacVf)
		case 0x30:
			return d.entry(IdVfwaddVf)
		case 0x32:
			return d.entry(IdVfwsubVf)
		case 0x34:
			return d.entry(IdVfwaddWf)
		case 0x36:
			return d.entry(IdVfwsubWf)
		case 0x38:
			return d.entry(IdVfwmulVf)
		case 0x3b:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwmaccbf16Vf)
		case 0x3c:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwmaccVf)
		case 0x3d:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwnmaccVf)
		case 0x3e:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwmsacVf)
		case 0x3f:
			*op1, *op2 = *op2, *op1
			return d.entry(IdVfwnmsacVf)
		}
		return d.illegal()

	case 7: // configuration
		*op0 = f.rd()
		*op1 = f.rs1()
		*op2 = f.rs2()

		if f6>>5 == 0 {
			*op2 = (f.funct7()&0x3f)<<5 | *op2
			return d.entry(IdVsetvli)
		}
		if f6>>4 == 3 {
			*op2 = (f.funct7()&0x1f)<<5 | *op2
			return d.entry(IdVsetivli)
		}
		if f.funct7() == 0x40 {
			return d.entry(IdVsetvl)
		}
	}

	return d.illegal()
}

// vecElemIds maps a funct3 data width to the id of the 8/16/32/64 (mew=0) or
// 128/256/512/1024 (mew=1) variant of one vector load/store family.
type vecElemIds struct {
	narrow [8]InstId // indexed by funct3; only 0, 5, 6, 7 are populated
	wide   [8]InstId
}

func (v *vecElemIds) pick(f3, mew uint32) InstId {
	if f3 > 7 {
		return IdIllegal
	}
	if mew == 0 {
		return v.narrow[f3]
	}
	return v.wide[f3]
}

var (
	vecLoadUnit = vecElemIds{
		narrow: [8]InstId{0: IdVle8V, 5: IdVle16V, 6: IdVle32V, 7: IdVle64V},
		wide:   [8]InstId{0: IdVle128V, 5: IdVle256V, 6: IdVle512V, 7: IdVle1024V},
	}
	vecLoadSeg = vecElemIds{
		narrow: [8]InstId{0: IdVlsege8V, 5: IdVlsege16V, 6: IdVlsege32V, 7: IdVlsege64V},
		wide:   [8]InstId{0: IdVlsege128V, 5: IdVlsege256V, 6: IdVlsege512V, 7: IdVlsege1024V},
	}
	vecLoadWhole = vecElemIds{
		narrow: [8]InstId{0: IdVlre8V, 5: IdVlre16V, 6: IdVlre32V, 7: IdVlre64V},
		wide:   [8]InstId{0: IdVlre128V, 5: IdVlre256V, 6: IdVlre512V, 7: IdVlre1024V},
	}
	vecLoadFF = vecElemIds{
		narrow: [8]InstId{0: IdVle8ffV, 5: IdVle16ffV, 6: IdVle32ffV, 7: IdVle64ffV},
		wide:   [8]InstId{0: IdVle128ffV, 5: IdVle256ffV, 6: IdVle512ffV, 7: IdVle1024ffV},
	}
	vecLoadSegFF = vecElemIds{
		narrow: [8]InstId{0: IdVlsege8ffV, 5: IdVlsege16ffV, 6: IdVlsege32ffV, 7: IdVlsege64ffV},
		wide:   [8]InstId{0: IdVlsege128ffV, 5: IdVlsege256ffV, 6: IdVlsege512ffV, 7: IdVlsege1024ffV},
	}
	vecLoadIdxU = vecElemIds{
		narrow: [8]InstId{0: IdVluxei8V, 5: IdVluxei16V, 6: IdVluxei32V, 7: IdVluxei64V},
		wide:   [8]InstId{0: IdVluxei128V, 5: IdVluxei256V, 6: IdVluxei512V, 7: IdVluxei1024V},
	}
	vecLoadIdxSegU = vecElemIds{
		narrow: [8]InstId{0: IdVluxsegei8V, 5: IdVluxsegei16V, 6: IdVluxsegei32V, 7: IdVluxsegei64V},
		wide:   [8]InstId{0: IdVluxsegei128V, 5: IdVluxsegei256V, 6: IdVluxsegei512V, 7: IdVluxsegei1024V},
	}
	vecLoadStride = vecElemIds{
		narrow: [8]InstId{0: IdVlse8V, 5: IdVlse16V, 6: IdVlse32V, 7: IdVlse64V},
		wide:   [8]InstId{0: IdVlse128V, 5: IdVlse256V, 6: IdVlse512V, 7: IdVlse1024V},
	}
	vecLoadStrideSeg = vecElemIds{
		narrow: [8]InstId{0: IdVlssege8V, 5: IdVlssege16V, 6: IdVlssege32V, 7: IdVlssege64V},
		wide:   [8]InstId{0: IdVlssege128V, 5: IdVlssege256V, 6: IdVlssege512V, 7: IdVlssege1024V},
	}
	vecLoadIdxO = vecElemIds{
		narrow: [8]InstId{0: IdVloxei8V, 5: IdVloxei16V, 6: IdVloxei32V, 7: IdVloxei64V},
		wide:   [8]InstId{0: IdVloxei128V, 5: IdVloxei256V, 6: IdVloxei512V, 7: IdVloxei1024V},
	}
	vecLoadIdxSegO = vecElemIds{
		narrow: [8]InstId{0: IdVloxsegei8V, 5: IdVloxsegei16V, 6: IdVloxsegei32V, 7: IdVloxsegei64V},
		wide:   [8]InstId{0: IdVloxsegei128V, 5: IdVloxsegei256V, 6: IdVloxsegei512V, 7: IdVloxsegei1024V},
	}

	vecStoreUnit = vecElemIds{
		narrow: [8]InstId{0: IdVse8V, 5: IdVse16V, 6: IdVse32V, 7: IdVse64V},
		wide:   [8]InstId{0: IdVse128V, 5: IdVse256V, 6: IdVse512V, 7: IdVse1024V},
	}
	vecStoreSeg = vecElemIds{
		narrow: [8]InstId{0: IdVssege8V, 5: IdVssege16V, 6: IdVssege32V, 7: IdVssege64V},
		wide:   [8]InstId{0: IdVssege128V, 5: IdVssege256V, 6: IdVssege512V, 7: IdVssege1024V},
	}
	vecStoreIdxU = vecElemIds{
		narrow: [8]InstId{0: IdVsuxei8V, 5: IdVsuxei16V, 6: IdVsuxei32V, 7: IdVsuxei64V},
		wide:   [8]InstId{0: IdVsuxei128V, 5: IdVsuxei256V, 6: IdVsuxei512V, 7: IdVsuxei1024V},
	}
	vecStoreIdxSegU = vecElemIds{
		narrow: [8]InstId{0: IdVsuxsegei8V, 5: IdVsuxsegei16V, 6: IdVsuxsegei32V, 7: IdVsuxsegei64V},
		wide:   [8]InstId{0: IdVsuxsegei128V, 5: IdVsuxsegei256V, 6: IdVsuxsegei512V, 7: IdVsuxsegei1024V},
	}
	vecStoreStride = vecElemIds{
		narrow: [8]InstId{0: IdVsse8V, 5: IdVsse16V, 6: IdVsse32V, 7: IdVsse64V},
		wide:   [8]InstId{0: IdVsse128V, 5: IdVsse256V, 6: IdVsse512V, 7: IdVsse1024V},
	}
	vecStoreStrideSeg = vecElemIds{
		narrow: [8]InstId{0: IdVsssege8V, 5: IdVsssege16V, 6: IdVsssege32V, 7: IdVsssege64V},
		wide:   [8]InstId{0: IdVsssege128V, 5: IdVsssege256V, 6: IdVsssege512V, 7: IdVsssege1024V},
	}
	vecStoreIdxO = vecElemIds{
		narrow: [8]InstId{0: IdVsoxei8V, 5: IdVsoxei16V, 6: IdVsoxei32V, 7: IdVsoxei64V},
		wide:   [8]InstId{0: IdVsoxei128V, 5: IdVsoxei256V, 6: IdVsoxei512V, 7: IdVsoxei1024V},
	}
	vecStoreIdxSegO = vecElemIds{
		narrow: [8]InstId{0: IdVsoxsegei8V, 5: IdVsoxsegei16V, 6: IdVsoxsegei32V, 7: IdVsoxsegei64V},
		wide:   [8]InstId{0: IdVsoxsegei128V, 5: IdVsoxsegei256V, 6: IdVsoxsegei512V, 7: IdVsoxsegei1024V},
	}
)

// decodeVecLoad decodes the vector sub-forms of major opcode 0b00001. The
// imm12 field carries lumop (bits 0-4), mop (bits 6-7), mew (bit 8) and nf
// (bits 9-11). fieldCount receives the segment field count for segmented and
// whole-register forms.
func (d *Decoder) decodeVecLoad(f3, imm12 uint32, fieldCount *uint32) *InstEntry {
	lumop := imm12 & 0x1f
	mop := (imm12 >> 6) & 3
	mew := (imm12 >> 8) & 1
	nf := (imm12 >> 9) & 7

	switch mop {
	case 0: // unit stride
		switch lumop {
		case 0:
			if nf == 0 {
				return d.entry(vecLoadUnit.pick(f3, mew))
			}
			*fieldCount = nf + 1
			return d.entry(vecLoadSeg.pick(f3, mew))
		case 8: // whole register
			*fieldCount = nf + 1
			return d.entry(vecLoadWhole.pick(f3, mew))
		case 0xb:
			if nf == 0 && mew == 0 && f3 == 0 {
				return d.entry(IdVlmV)
			}
		case 0x10: // fault only on first
			if nf == 0 {
				return d.entry(vecLoadFF.pick(f3, mew))
			}
			*fieldCount = nf + 1
			return d.entry(vecLoadSegFF.pick(f3, mew))
		}
	case 1: // indexed unordered
		if nf == 0 {
			return d.entry(vecLoadIdxU.pick(f3, mew))
		}
		*fieldCount = nf + 1
		return d.entry(vecLoadIdxSegU.pick(f3, mew))
	case 2: // strided
		if nf == 0 {
			return d.entry(vecLoadStride.pick(f3, mew))
		}
		*fieldCount = nf + 1
		return d.entry(vecLoadStrideSeg.pick(f3, mew))
	case 3: // indexed ordered
		if nf == 0 {
			return d.entry(vecLoadIdxO.pick(f3, mew))
		}
		*fieldCount = nf + 1
		return d.entry(vecLoadIdxSegO.pick(f3, mew))
	}

	return d.illegal()
}

// decodeVecStore mirrors decodeVecLoad for major opcode 0b01001.
func (d *Decoder) decodeVecStore(f3, imm12 uint32, fieldCount *uint32) *InstEntry {
	sumop := imm12 & 0x1f
	mop := (imm12 >> 6) & 3
	mew := (imm12 >> 8) & 1
	nf := (imm12 >> 9) & 7

	switch mop {
	case 0: // unit stride
		switch sumop {
		case 0:
			if nf == 0 {
				return d.entry(vecStoreUnit.pick(f3, mew))
			}
			*fieldCount = nf + 1
			return d.entry(vecStoreSeg.pick(f3, mew))
		case 8: // whole register
			if mew == 0 && f3 == 0 {
				*fieldCount = nf + 1
				switch nf {
				case 0:
					return d.entry(IdVs1rV)
				case 1:
					return d.entry(IdVs2rV)
				case 3:
					return d.entry(IdVs4rV)
				case 7:
					return d.entry(IdVs8rV)
				}
				return d.illegal()
			}
		case 0xb:
			if nf == 0 && mew == 0 && f3 == 0 {
				return d.entry(IdVsmV)
			}
		}
	case 1: // indexed unordered
		if nf == 0 {
			return d.entry(vecStoreIdxU.pick(f3, mew))
		}
		*fieldCount = nf + 1
		return d.entry(vecStoreIdxSegU.pick(f3, mew))
	case 2: // strided
		if nf == 0 {
			return d.entry(vecStoreStride.pick(f3, mew))
		}
		*fieldCount = nf + 1
		return d.entry(vecStoreStrideSeg.pick(f3, mew))
	case 3: // indexed ordered
		if nf == 0 {
			return d.entry(vecStoreIdxO.pick(f3, mew))
		}
		*fieldCount = nf + 1
		return d.entry(vecStoreIdxSegO.pick(f3, mew))
	}

	return d.illegal()
}

// decodeVecCrypto handles major opcode 0b11101 (vector AES, SHA-2, SM3, SM4
// and GCM). All of these are valid only unmasked.
func (d *Decoder) decodeVecCrypto(inst uint32, op0, op1, op2 *uint32) *InstEntry {
	f := rForm(inst)
	f3, f6 := f.funct3(), f.top6()
	masked := (inst>>25)&1 == 0

	if f3 != 2 {
		return d.illegal()
	}

	*op0 = f.rd()
	*op1 = f.rs2() // operand order reversed
	*op2 = f.rs1()

	switch f6 {
	case 0b100000:
		if !masked {
			return d.entry(IdVsm3meVv)
		}
	case 0b100001:
		if !masked {
			return d.entry(IdVsm4kVi)
		}
	case 0b100010:
		if !masked {
			return d.entry(IdVaeskf1Vi)
		}
	case 0b101000:
		if !masked {
			switch *op2 {
			case 0:
				return d.entry(IdVaesdmVv)
			case 1:
				return d.entry(IdVaesdfVv)
			case 2:
				return d.entry(IdVaesemVv)
			case 3:
				return d.entry(IdVaesefVv)
			case 0x10:
				return d.entry(IdVsm4rVv)
			case 0x11:
				return d.entry(IdVgmulVv)
			}
		}
	case 0b101001:
		if !masked {
			switch *op2 {
			case 0:
				return d.entry(IdVaesdmVs)
			case 1:
				return d.entry(IdVaesdfVs)
			case 2:
				return d.entry(IdVaesemVs)
			case 3:
				return d.entry(IdVaesefVs)
			case 7:
				return d.entry(IdVaeszVs)
			case 0x10:
				return d.entry(IdVsm4rVs)
			}
		}
	case 0b101010:
		if !masked {
			return d.entry(IdVaeskf2Vi)
		}
	case 0b101011:
		if !masked {
			return d.entry(IdVsm3cVi)
		}
	case 0b101100:
		if !masked {
			return d.entry(IdVghshVv)
		}
	case 0b101101:
		if !masked {
			return d.entry(IdVsha2msVv)
		}
	case 0b101110:
		if !masked {
			return d.entry(IdVsha2chVv)
		}
	case 0b101111:
		if !masked {
			return d.entry(IdVsha2clVv)
		}
	}

	return d.illegal()
}
