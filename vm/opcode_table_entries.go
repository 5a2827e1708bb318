package vm

// Metadata for every instruction in the catalogue. Operand order matches the
// conventions in decoded.go: loads are (rd, rs1, offset), stores are
// (rs2, rs1, offset) and vector forms are (vd, vs2, vs1) post swap.
func (t *InstTable) defineEntries() {
	t.set(IdAdd, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdAddUw, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdAddi, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdAddiw, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdAddw, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdAes32dsi, FormR, ExtZknd, 0, 0, 0, xW, xR, xR, uimm)
	t.set(IdAes32dsmi, FormR, ExtZknd, 0, 0, 0, xW, xR, xR, uimm)
	t.set(IdAes32esi, FormR, ExtZkne, 0, 0, 0, xW, xR, xR, uimm)
	t.set(IdAes32esmi, FormR, ExtZkne, 0, 0, 0, xW, xR, xR, uimm)
	t.set(IdAes64ds, FormR, ExtZknd, 0, 0, 0, xW, xR, xR)
	t.set(IdAes64dsm, FormR, ExtZknd, 0, 0, 0, xW, xR, xR)
	t.set(IdAes64es, FormR, ExtZkne, 0, 0, 0, xW, xR, xR)
	t.set(IdAes64esm, FormR, ExtZkne, 0, 0, 0, xW, xR, xR)
	t.set(IdAes64im, FormI, ExtZknd, 0, 0, 0, xW, xR)
	t.set(IdAes64ks1i, FormI, ExtZknd, 0, 0, 0, xW, xR, uimm)
	t.set(IdAes64ks2, FormR, ExtZknd, 0, 0, 0, xW, xR, xR)
	t.set(IdAmoaddD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmoaddW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmoandD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmoandW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmocasD, FormR, ExtZacas, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmocasQ, FormR, ExtZacas, flagAmo|flagAtomic, 16, 0, xW, xR, xR)
	t.set(IdAmocasW, FormR, ExtZacas, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmomaxD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmomaxW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmomaxuD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmomaxuW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmominD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmominW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmominuD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmominuW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmoorD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmoorW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmoswapD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmoswapW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAmoxorD, FormR, ExtA, flagAmo|flagAtomic, 8, 0, xW, xR, xR)
	t.set(IdAmoxorW, FormR, ExtA, flagAmo|flagAtomic, 4, 0, xW, xR, xR)
	t.set(IdAnd, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdAndi, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdAndn, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdAuipc, FormU, ExtI, 0, 0, 12, xW, imm)
	t.set(IdBclr, FormR, ExtZbs, 0, 0, 0, xW, xR, xR)
	t.set(IdBclri, FormI, ExtZbs, 0, 0, 0, xW, xR, imm)
	t.set(IdBeq, FormB, ExtI, flagBranch|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdBext, FormR, ExtZbs, 0, 0, 0, xW, xR, xR)
	t.set(IdBexti, FormI, ExtZbs, 0, 0, 0, xW, xR, imm)
	t.set(IdBge, FormB, ExtI, flagBranch|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdBgeu, FormB, ExtI, flagBranch|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdBinv, FormR, ExtZbs, 0, 0, 0, xW, xR, xR)
	t.set(IdBinvi, FormI, ExtZbs, 0, 0, 0, xW, xR, imm)
	t.set(IdBlt, FormB, ExtI, flagBranch|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdBltu, FormB, ExtI, flagBranch|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdBne, FormB, ExtI, flagBranch|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdBrev8, FormI, ExtZbkb, 0, 0, 0, xW, xR)
	t.set(IdBset, FormR, ExtZbs, 0, 0, 0, xW, xR, xR)
	t.set(IdBseti, FormI, ExtZbs, 0, 0, 0, xW, xR, imm)
	t.set(IdCAdd, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCAddi, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCAddi16sp, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCAddi4spn, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCAddiw, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCAddw, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCAnd, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCAndi, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCBeqz, FormCb, ExtC, flagBranch|flagCompressed|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdCBnez, FormCb, ExtC, flagBranch|flagCompressed|flagCondBranch, 0, 0, xR, xR, imm)
	t.set(IdCEbreak, FormCi, ExtC, flagCompressed, 0, 0)
	t.set(IdCFld, FormCl, ExtC, flagCompressed|flagFp|flagLoad, 8, 0, fW, xR, uimm)
	t.set(IdCFldsp, FormCi, ExtC, flagCompressed|flagFp|flagLoad, 8, 0, fW, xR, uimm)
	t.set(IdCFlw, FormCl, ExtC, flagCompressed|flagFp|flagLoad, 4, 0, fW, xR, uimm)
	t.set(IdCFlwsp, FormCi, ExtC, flagCompressed|flagFp|flagLoad, 4, 0, fW, xR, uimm)
	t.set(IdCFsd, FormCs, ExtC, flagCompressed|flagFp|flagStore, 8, 0, fR, xR, uimm)
	t.set(IdCFsdsp, FormCsw, ExtC, flagCompressed|flagFp|flagStore, 8, 0, fR, xR, uimm)
	t.set(IdCFsw, FormCs, ExtC, flagCompressed|flagFp|flagStore, 4, 0, fR, xR, uimm)
	t.set(IdCFswsp, FormCsw, ExtC, flagCompressed|flagFp|flagStore, 4, 0, fR, xR, uimm)
	t.set(IdCJ, FormCj, ExtC, flagBranch|flagCompressed, 0, 0, xW, imm)
	t.set(IdCJal, FormCj, ExtC, flagBranch|flagCompressed, 0, 0, xW, imm)
	t.set(IdCJalr, FormCi, ExtC, flagBranch|flagBranchToReg|flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCJr, FormCi, ExtC, flagBranch|flagBranchToReg|flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCLbu, FormCl, ExtZcb, flagCompressed|flagLoad|flagUnsigned, 1, 0, xW, xR, uimm)
	t.set(IdCLd, FormCl, ExtC, flagCompressed|flagLoad, 8, 0, xW, xR, uimm)
	t.set(IdCLdsp, FormCi, ExtC, flagCompressed|flagLoad, 8, 0, xW, xR, uimm)
	t.set(IdCLh, FormCl, ExtZcb, flagCompressed|flagLoad, 2, 0, xW, xR, uimm)
	t.set(IdCLhu, FormCl, ExtZcb, flagCompressed|flagLoad|flagUnsigned, 2, 0, xW, xR, uimm)
	t.set(IdCLi, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCLui, FormCi, ExtC, flagCompressed, 0, 12, xW, imm)
	t.set(IdCLw, FormCl, ExtC, flagCompressed|flagLoad, 4, 0, xW, xR, uimm)
	t.set(IdCLwsp, FormCi, ExtC, flagCompressed|flagLoad, 4, 0, xW, xR, uimm)
	t.set(IdCMop, FormCi, ExtZcmop, flagCompressed, 0, 0, xW, xR)
	t.set(IdCMul, FormCa, ExtZcb, flagCompressed|flagMultiply, 0, 0, xW, xR, xR)
	t.set(IdCMv, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCNot, FormCi, ExtZcb, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCOr, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCSb, FormCs, ExtZcb, flagCompressed|flagStore, 1, 0, xR, xR, uimm)
	t.set(IdCSd, FormCs, ExtC, flagCompressed|flagStore, 8, 0, xR, xR, uimm)
	t.set(IdCSdsp, FormCsw, ExtC, flagCompressed|flagStore, 8, 0, xR, xR, uimm)
	t.set(IdCSextB, FormCi, ExtZcb, flagCompressed, 0, 0, xW, xR)
	t.set(IdCSextH, FormCi, ExtZcb, flagCompressed, 0, 0, xW, xR)
	t.set(IdCSh, FormCs, ExtZcb, flagCompressed|flagStore, 2, 0, xR, xR, uimm)
	t.set(IdCSlli, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCSrai, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCSrli, FormCi, ExtC, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCSub, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCSubw, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCSw, FormCs, ExtC, flagCompressed|flagStore, 4, 0, xR, xR, uimm)
	t.set(IdCSwsp, FormCsw, ExtC, flagCompressed|flagStore, 4, 0, xR, xR, uimm)
	t.set(IdCXor, FormCa, ExtC, flagCompressed, 0, 0, xW, xR, xR)
	t.set(IdCZextB, FormCi, ExtZcb, flagCompressed, 0, 0, xW, xR, imm)
	t.set(IdCZextH, FormCi, ExtZcb, flagCompressed, 0, 0, xW, xR)
	t.set(IdCZextW, FormCi, ExtZcb, flagCompressed, 0, 0, xW, xR)
	t.set(IdCboClean, FormI, ExtZicbom, flagCmo, 0, 0, xR)
	t.set(IdCboFlush, FormI, ExtZicbom, flagCmo, 0, 0, xR)
	t.set(IdCboInval, FormI, ExtZicbom, flagCmo, 0, 0, xR)
	t.set(IdCboZero, FormI, ExtZicboz, flagCmo, 0, 0, xR)
	t.set(IdClmul, FormR, ExtZbc, 0, 0, 0, xW, xR, xR)
	t.set(IdClmulh, FormR, ExtZbc, 0, 0, 0, xW, xR, xR)
	t.set(IdClmulr, FormR, ExtZbc, 0, 0, 0, xW, xR, xR)
	t.set(IdClz, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdClzw, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdCpop, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdCpopw, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdCsrrc, FormI, ExtZicsr, flagCsr, 0, 0, xW, xR, csRW)
	t.set(IdCsrrci, FormI, ExtZicsr, flagCsr, 0, 0, xW, uimm, csRW)
	t.set(IdCsrrs, FormI, ExtZicsr, flagCsr, 0, 0, xW, xR, csRW)
	t.set(IdCsrrsi, FormI, ExtZicsr, flagCsr, 0, 0, xW, uimm, csRW)
	t.set(IdCsrrw, FormI, ExtZicsr, flagCsr, 0, 0, xW, xR, csRW)
	t.set(IdCsrrwi, FormI, ExtZicsr, flagCsr, 0, 0, xW, uimm, csRW)
	t.set(IdCtz, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdCtzw, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdCzeroEqz, FormR, ExtZicond, 0, 0, 0, xW, xR, xR)
	t.set(IdCzeroNez, FormR, ExtZicond, 0, 0, 0, xW, xR, xR)
	t.set(IdDiv, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdDivu, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdDivuw, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdDivw, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdDret, FormI, ExtI, 0, 0, 0)
	t.set(IdEbreak, FormI, ExtI, 0, 0, 0)
	t.set(IdEcall, FormI, ExtI, 0, 0, 0)
	t.set(IdFaddD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFaddH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFaddS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFclassD, FormR, ExtD, flagFp, 0, 0, xW, fR)
	t.set(IdFclassH, FormR, ExtZfh, flagFp, 0, 0, xW, fR)
	t.set(IdFclassS, FormR, ExtF, flagFp, 0, 0, xW, fR)
	t.set(IdFcvtBf16S, FormR, ExtZfbfmin, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtDH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtDL, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtDLu, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtDS, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtDW, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtDWu, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtHD, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtHL, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtHLu, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtHS, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtHW, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtHWu, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtLD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtLH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtLS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtLuD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtLuH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtLuS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtSBf16, FormR, ExtZfbfmin, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtSD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtSH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFcvtSL, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtSLu, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtSW, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtSWu, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, xR)
	t.set(IdFcvtWD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtWH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtWS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtWuD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtWuH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtWuS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFcvtmodWD, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, xW, fR)
	t.set(IdFdivD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFdivH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFdivS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFence, FormI, ExtI, 0, 0, 0)
	t.set(IdFenceI, FormI, ExtZifencei, 0, 0, 0)
	t.set(IdFenceTso, FormI, ExtI, 0, 0, 0)
	t.set(IdFeqD, FormR, ExtD, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFeqH, FormR, ExtZfh, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFeqS, FormR, ExtF, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFld, FormI, ExtD, flagFp|flagLoad, 8, 0, fW, xR, imm)
	t.set(IdFleD, FormR, ExtD, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFleH, FormR, ExtZfh, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFleS, FormR, ExtF, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFleqD, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFleqH, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFleqS, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFlh, FormI, ExtZfh, flagFp|flagLoad, 2, 0, fW, xR, imm)
	t.set(IdFliD, FormR, ExtZfa, flagFp, 0, 0, fW, uimm)
	t.set(IdFliH, FormR, ExtZfa, flagFp, 0, 0, fW, uimm)
	t.set(IdFliS, FormR, ExtZfa, flagFp, 0, 0, fW, uimm)
	t.set(IdFltD, FormR, ExtD, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFltH, FormR, ExtZfh, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFltS, FormR, ExtF, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFltqD, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFltqH, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFltqS, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, xW, fR, fR)
	t.set(IdFlw, FormI, ExtF, flagFp|flagLoad, 4, 0, fW, xR, imm)
	t.set(IdFmaddD, FormR4, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFmaddH, FormR4, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFmaddS, FormR4, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFmaxD, FormR, ExtD, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFmaxH, FormR, ExtZfh, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFmaxS, FormR, ExtF, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFmaxmD, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFmaxmH, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFmaxmS, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFminD, FormR, ExtD, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFminH, FormR, ExtZfh, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFminS, FormR, ExtF, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFminmD, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFminmH, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFminmS, FormR, ExtZfa, flagFp|flagModifiesFflags, 0, 0, fW, fR, fR)
	t.set(IdFmsubD, FormR4, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFmsubH, FormR4, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFmsubS, FormR4, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFmulD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFmulH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFmulS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFmvDX, FormR, ExtD, flagFp, 0, 0, fW, xR)
	t.set(IdFmvHX, FormR, ExtZfh, flagFp, 0, 0, fW, xR)
	t.set(IdFmvWX, FormR, ExtF, flagFp, 0, 0, fW, xR)
	t.set(IdFmvXD, FormR, ExtD, flagFp, 0, 0, xW, fR)
	t.set(IdFmvXH, FormR, ExtZfh, flagFp, 0, 0, xW, fR)
	t.set(IdFmvXW, FormR, ExtF, flagFp, 0, 0, xW, fR)
	t.set(IdFmvhXD, FormR, ExtZfa, flagFp, 0, 0, xW, fR)
	t.set(IdFmvpDX, FormR, ExtZfa, flagFp, 0, 0, fW, xR, xR)
	t.set(IdFnmaddD, FormR4, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFnmaddH, FormR4, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFnmaddS, FormR4, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFnmsubD, FormR4, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFnmsubH, FormR4, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFnmsubS, FormR4, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR, fR)
	t.set(IdFroundD, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFroundH, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFroundS, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFroundnxD, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFroundnxH, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFroundnxS, FormR, ExtZfa, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFsd, FormS, ExtD, flagFp|flagStore, 8, 0, fR, xR, imm)
	t.set(IdFsgnjD, FormR, ExtD, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjH, FormR, ExtZfh, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjS, FormR, ExtF, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjnD, FormR, ExtD, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjnH, FormR, ExtZfh, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjnS, FormR, ExtF, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjxD, FormR, ExtD, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjxH, FormR, ExtZfh, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsgnjxS, FormR, ExtF, flagFp, 0, 0, fW, fR, fR)
	t.set(IdFsh, FormS, ExtZfh, flagFp|flagStore, 2, 0, fR, xR, imm)
	t.set(IdFsqrtD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFsqrtH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFsqrtS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR)
	t.set(IdFsubD, FormR, ExtD, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFsubH, FormR, ExtZfh, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFsubS, FormR, ExtF, flagFp|flagModifiesFflags|flagRoundingMode, 0, 0, fW, fR, fR)
	t.set(IdFsw, FormS, ExtF, flagFp|flagStore, 4, 0, fR, xR, imm)
	t.set(IdHfenceGvma, FormI, ExtH, flagHyper, 0, 0, xR, xR)
	t.set(IdHfenceVvma, FormI, ExtH, flagHyper, 0, 0, xR, xR)
	t.set(IdHinvalGvma, FormI, ExtH, flagHyper, 0, 0, xR, xR)
	t.set(IdHinvalVvma, FormI, ExtH, flagHyper, 0, 0, xR, xR)
	t.set(IdHlvB, FormI, ExtH, flagHyper|flagLoad, 1, 0, xW, xR)
	t.set(IdHlvBu, FormI, ExtH, flagHyper|flagLoad|flagUnsigned, 1, 0, xW, xR)
	t.set(IdHlvD, FormI, ExtH, flagHyper|flagLoad, 8, 0, xW, xR)
	t.set(IdHlvH, FormI, ExtH, flagHyper|flagLoad, 2, 0, xW, xR)
	t.set(IdHlvHu, FormI, ExtH, flagHyper|flagLoad|flagUnsigned, 2, 0, xW, xR)
	t.set(IdHlvW, FormI, ExtH, flagHyper|flagLoad, 4, 0, xW, xR)
	t.set(IdHlvWu, FormI, ExtH, flagHyper|flagLoad|flagUnsigned, 4, 0, xW, xR)
	t.set(IdHlvxHu, FormI, ExtH, flagHyper|flagLoad|flagUnsigned, 2, 0, xW, xR)
	t.set(IdHlvxWu, FormI, ExtH, flagHyper|flagLoad|flagUnsigned, 4, 0, xW, xR)
	t.set(IdHsvB, FormI, ExtH, flagHyper|flagStore, 1, 0, xR, xR)
	t.set(IdHsvD, FormI, ExtH, flagHyper|flagStore, 8, 0, xR, xR)
	t.set(IdHsvH, FormI, ExtH, flagHyper|flagStore, 2, 0, xR, xR)
	t.set(IdHsvW, FormI, ExtH, flagHyper|flagStore, 4, 0, xR, xR)
	t.set(IdJal, FormJ, ExtI, flagBranch, 0, 0, xW, imm)
	t.set(IdJalr, FormI, ExtI, flagBranch|flagBranchToReg, 0, 0, xW, xR, imm)
	t.set(IdLb, FormI, ExtI, flagLoad, 1, 0, xW, xR, imm)
	t.set(IdLbu, FormI, ExtI, flagLoad|flagUnsigned, 1, 0, xW, xR, imm)
	t.set(IdLd, FormI, ExtI, flagLoad, 8, 0, xW, xR, imm)
	t.set(IdLh, FormI, ExtI, flagLoad, 2, 0, xW, xR, imm)
	t.set(IdLhu, FormI, ExtI, flagLoad|flagUnsigned, 2, 0, xW, xR, imm)
	t.set(IdLrD, FormR, ExtA, flagAtomic|flagLoad|flagLr, 8, 0, xW, xR)
	t.set(IdLrW, FormR, ExtA, flagAtomic|flagLoad|flagLr, 4, 0, xW, xR)
	t.set(IdLui, FormU, ExtI, 0, 0, 12, xW, imm)
	t.set(IdLw, FormI, ExtI, flagLoad, 4, 0, xW, xR, imm)
	t.set(IdLwu, FormI, ExtI, flagLoad|flagUnsigned, 4, 0, xW, xR, imm)
	t.set(IdMax, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdMaxu, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdMin, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdMinu, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdMnret, FormI, ExtI, 0, 0, 0)
	t.set(IdMopR, FormI, ExtZimop, 0, 0, 0, xW, xR)
	t.set(IdMopRr, FormI, ExtZimop, 0, 0, 0, xW, xR, xR)
	t.set(IdMret, FormI, ExtI, 0, 0, 0)
	t.set(IdMul, FormR, ExtM, flagMultiply, 0, 0, xW, xR, xR)
	t.set(IdMulh, FormR, ExtM, flagMultiply, 0, 0, xW, xR, xR)
	t.set(IdMulhsu, FormR, ExtM, flagMultiply, 0, 0, xW, xR, xR)
	t.set(IdMulhu, FormR, ExtM, flagMultiply, 0, 0, xW, xR, xR)
	t.set(IdMulw, FormR, ExtM, flagMultiply, 0, 0, xW, xR, xR)
	t.set(IdOr, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdOrcB, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdOri, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdOrn, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdPack, FormR, ExtZbkb, 0, 0, 0, xW, xR, xR)
	t.set(IdPackh, FormR, ExtZbkb, 0, 0, 0, xW, xR, xR)
	t.set(IdPackw, FormR, ExtZbkb, 0, 0, 0, xW, xR, xR)
	t.set(IdPause, FormI, ExtZihintpause, 0, 0, 0)
	t.set(IdRem, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdRemu, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdRemuw, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdRemw, FormR, ExtM, flagDivide, 0, 0, xW, xR, xR)
	t.set(IdRev8_32, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdRev8_64, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdRol, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdRolw, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdRor, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdRori, FormI, ExtZbb, 0, 0, 0, xW, xR, imm)
	t.set(IdRoriw, FormI, ExtZbb, 0, 0, 0, xW, xR, imm)
	t.set(IdRorw, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdSb, FormS, ExtI, flagStore, 1, 0, xR, xR, imm)
	t.set(IdScD, FormR, ExtA, flagAtomic|flagSc|flagStore, 8, 0, xW, xR, xR)
	t.set(IdScW, FormR, ExtA, flagAtomic|flagSc|flagStore, 4, 0, xW, xR, xR)
	t.set(IdSd, FormS, ExtI, flagStore, 8, 0, xR, xR, imm)
	t.set(IdSextB, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdSextH, FormI, ExtZbb, 0, 0, 0, xW, xR)
	t.set(IdSfenceInvalIr, FormI, ExtSvinval, 0, 0, 0)
	t.set(IdSfenceVma, FormI, ExtI, 0, 0, 0, xR, xR)
	t.set(IdSfenceWInval, FormI, ExtSvinval, 0, 0, 0)
	t.set(IdSh, FormS, ExtI, flagStore, 2, 0, xR, xR, imm)
	t.set(IdSh1add, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdSh1addUw, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdSh2add, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdSh2addUw, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdSh3add, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdSh3addUw, FormR, ExtZba, 0, 0, 0, xW, xR, xR)
	t.set(IdSha256sig0, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha256sig1, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha256sum0, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha256sum1, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha512sig0, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha512sig0h, FormR, ExtZknh, 0, 0, 0, xW, xR, xR)
	t.set(IdSha512sig0l, FormR, ExtZknh, 0, 0, 0, xW, xR, xR)
	t.set(IdSha512sig1, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha512sig1h, FormR, ExtZknh, 0, 0, 0, xW, xR, xR)
	t.set(IdSha512sig1l, FormR, ExtZknh, 0, 0, 0, xW, xR, xR)
	t.set(IdSha512sum0, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha512sum0r, FormR, ExtZknh, 0, 0, 0, xW, xR, xR)
	t.set(IdSha512sum1, FormI, ExtZknh, 0, 0, 0, xW, xR)
	t.set(IdSha512sum1r, FormR, ExtZknh, 0, 0, 0, xW, xR, xR)
	t.set(IdSinvalVma, FormI, ExtSvinval, 0, 0, 0, xR, xR)
	t.set(IdSll, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSlli, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSlliUw, FormI, ExtZba, 0, 0, 0, xW, xR, imm)
	t.set(IdSlliw, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSllw, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSlt, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSlti, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSltiu, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSltu, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSm3p0, FormI, ExtZksh, 0, 0, 0, xW, xR)
	t.set(IdSm3p1, FormI, ExtZksh, 0, 0, 0, xW, xR)
	t.set(IdSm4ed, FormR, ExtZksed, 0, 0, 0, xW, xR, xR, uimm)
	t.set(IdSm4ks, FormR, ExtZksed, 0, 0, 0, xW, xR, xR, uimm)
	t.set(IdSra, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSrai, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSraiw, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSraw, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSret, FormI, ExtI, 0, 0, 0)
	t.set(IdSrl, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSrli, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSrliw, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdSrlw, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSub, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSubw, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdSw, FormS, ExtI, flagStore, 4, 0, xR, xR, imm)
	t.set(IdUnzip, FormI, ExtZbkb, 0, 0, 0, xW, xR)
	t.set(IdVaaddVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaaddVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVaadduVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaadduVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVadcVim, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVadcVvm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVadcVxm, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVaddVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVaddVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaddVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVaesdfVs, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesdfVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesdmVs, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesdmVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesefVs, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesefVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesemVs, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaesemVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVaeskf1Vi, FormV, ExtZvk, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVaeskf2Vi, FormV, ExtZvk, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVaeszVs, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVandVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVandVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVandVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVandnVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVandnVx, FormV, ExtZvk, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVasubVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVasubVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVasubuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVasubuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVbrev8V, FormV, ExtZvk, flagVector, 0, 0, vW, vR)
	t.set(IdVbrevV, FormV, ExtZvk, flagVector, 0, 0, vW, vR)
	t.set(IdVclmulVv, FormV, ExtZvk, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVclmulVx, FormV, ExtZvk, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVclmulhVv, FormV, ExtZvk, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVclmulhVx, FormV, ExtZvk, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVclzV, FormV, ExtZvk, flagVector, 0, 0, vW, vR)
	t.set(IdVcompressVm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVcpopM, FormV, ExtV, flagVector, 0, 0, xW, vR)
	t.set(IdVcpopV, FormV, ExtZvk, flagVector, 0, 0, vW, vR)
	t.set(IdVctzV, FormV, ExtZvk, flagVector, 0, 0, vW, vR)
	t.set(IdVdivVv, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVdivVx, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVdivuVv, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVdivuVx, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVfaddVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfaddVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfclassV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfcvtFXV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfcvtFXuV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfcvtRtzXFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfcvtRtzXuFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfcvtXFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfcvtXuFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfdivVf, FormV, ExtV, flagDivide|flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfdivVv, FormV, ExtV, flagDivide|flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfirstM, FormV, ExtV, flagFp|flagVector, 0, 0, xW, vR)
	t.set(IdVfmaccVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfmaccVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmaddVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfmaddVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmaxVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfmaxVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmergeVfm, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfminVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfminVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmsacVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfmsacVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmsubVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfmsubVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmulVf, FormV, ExtV, flagFp|flagMultiply|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfmulVv, FormV, ExtV, flagFp|flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfmvFS, FormV, ExtV, flagFp|flagVector, 0, 0, fW, vR)
	t.set(IdVfmvSF, FormV, ExtV, flagFp|flagVector, 0, 0, vW, fR)
	t.set(IdVfmvVF, FormV, ExtV, flagFp|flagVector, 0, 0, vW, fR)
	t.set(IdVfncvtFFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtFXW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtFXuW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtRodFFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtRtzXFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtRtzXuFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtXFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtXuFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfncvtbf16FFW, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfnmaccVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfnmaccVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfnmaddVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfnmaddVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfnmsacVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfnmsacVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfnmsubVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfnmsubVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfrdivVf, FormV, ExtV, flagDivide|flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfrec7V, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfredmaxVs, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfredminVs, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfredosumVs, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfredusumVs, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfrsqrt7V, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfrsubVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfsgnjVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfsgnjVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfsgnjnVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfsgnjnVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfsgnjxVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfsgnjxVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfslide1downVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfslide1upVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfsqrtV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfsubVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfsubVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwaddVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwaddVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwaddWf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwaddWv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwcvtFFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtFXV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtFXuV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtRtzXFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtRtzXuFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtXFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtXuFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwcvtbf16FFV, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR)
	t.set(IdVfwmaccVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwmaccVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwmaccbf16Vf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwmaccbf16Vv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwmsacVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwmsacVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwmulVf, FormV, ExtV, flagFp|flagMultiply|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwmulVv, FormV, ExtV, flagFp|flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwnmaccVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwnmaccVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwnmsacVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwnmsacVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwredosumVs, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwredusumVs, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwsubVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwsubVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVfwsubWf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVfwsubWv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVghshVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVgmulVv, FormV, ExtZvk, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVidV, FormV, ExtV, flagVector, 0, 0, vW)
	t.set(IdViotaM, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVle1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle1024ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle128ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR)
	t.set(IdVle16ffV, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR)
	t.set(IdVle256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle256ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR)
	t.set(IdVle32ffV, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR)
	t.set(IdVle512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle512ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle64ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVle8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR)
	t.set(IdVle8ffV, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR)
	t.set(IdVlmV, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR)
	t.set(IdVloxei1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxei128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxei16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, vR)
	t.set(IdVloxei256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxei32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, vR)
	t.set(IdVloxei512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxei64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxei8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, vR)
	t.set(IdVloxsegei1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxsegei128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxsegei16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, vR)
	t.set(IdVloxsegei256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxsegei32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, vR)
	t.set(IdVloxsegei512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxsegei64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVloxsegei8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, vR)
	t.set(IdVlre1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVlre128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVlre16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR)
	t.set(IdVlre256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVlre32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR)
	t.set(IdVlre512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVlre64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR)
	t.set(IdVlre8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR)
	t.set(IdVlse1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlse128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlse16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, xR)
	t.set(IdVlse256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlse32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, xR)
	t.set(IdVlse512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlse64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlse8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, xR)
	t.set(IdVlsege1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege1024ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege128ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, xR)
	t.set(IdVlsege16ffV, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, xR)
	t.set(IdVlsege256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege256ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, xR)
	t.set(IdVlsege32ffV, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, xR)
	t.set(IdVlsege512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege512ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege64ffV, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlsege8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, xR)
	t.set(IdVlsege8ffV, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, xR)
	t.set(IdVlssege1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlssege128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlssege16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, xR)
	t.set(IdVlssege256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlssege32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, xR)
	t.set(IdVlssege512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlssege64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, xR)
	t.set(IdVlssege8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, xR)
	t.set(IdVluxei1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxei128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxei16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, vR)
	t.set(IdVluxei256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxei32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, vR)
	t.set(IdVluxei512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxei64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxei8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, vR)
	t.set(IdVluxsegei1024V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxsegei128V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxsegei16V, FormV, ExtV, flagLoad|flagVector, 2, 0, vW, xR, vR)
	t.set(IdVluxsegei256V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxsegei32V, FormV, ExtV, flagLoad|flagVector, 4, 0, vW, xR, vR)
	t.set(IdVluxsegei512V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxsegei64V, FormV, ExtV, flagLoad|flagVector, 8, 0, vW, xR, vR)
	t.set(IdVluxsegei8V, FormV, ExtV, flagLoad|flagVector, 1, 0, vW, xR, vR)
	t.set(IdVmaccVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmaccVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmadcVim, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmadcVvm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmadcVxm, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmaddVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmaddVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmandMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmandnMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmaxVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmaxVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmaxuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmaxuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmergeVim, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmergeVvm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmergeVxm, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmfeqVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVmfeqVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmfgeVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVmfgtVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVmfleVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVmfleVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmfltVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVmfltVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmfneVf, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, fR)
	t.set(IdVmfneVv, FormV, ExtV, flagFp|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVminVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVminVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVminuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVminuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmnandMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmnorMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmorMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmornMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsbcVvm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsbcVxm, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsbfM, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmseqVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmseqVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmseqVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsgtVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmsgtVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsgtuVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmsgtuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsifM, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsleVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmsleVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsleVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsleuVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmsleuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsleuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsltVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsltVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsltuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsltuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsneVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVmsneVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmsneVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmsofM, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmulVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmulVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmulhVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmulhVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmulhsuVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmulhsuVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmulhuVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmulhuVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVmv1rV, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVmv2rV, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVmv4rV, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVmv8rV, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVmvSX, FormV, ExtV, flagVector, 0, 0, vW, xR)
	t.set(IdVmvVI, FormV, ExtV, flagVector, 0, 0, vW, imm)
	t.set(IdVmvVV, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVmvVX, FormV, ExtV, flagVector, 0, 0, vW, xR)
	t.set(IdVmvXS, FormV, ExtV, flagVector, 0, 0, xW, vR)
	t.set(IdVmxnorMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVmxorMm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnclipWi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVnclipWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnclipWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVnclipuWi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVnclipuWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnclipuWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVnmsacVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnmsacVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVnmsubVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnmsubVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVnsraWi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVnsraWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnsraWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVnsrlWi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVnsrlWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVnsrlWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVorVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVorVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVorVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVqdotVv, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVqdotVx, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVqdotsuVv, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVqdotsuVx, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVqdotuVv, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVqdotuVx, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVqdotusVx, FormV, ExtZvqdot, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVredandVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredmaxVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredmaxuVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredminVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredminuVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredorVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredsumVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVredxorVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVremVv, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVremVx, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVremuVv, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVremuVx, FormV, ExtV, flagDivide|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVrev8V, FormV, ExtZvk, flagVector, 0, 0, vW, vR)
	t.set(IdVrgatherVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVrgatherVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVrgatherVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVrgatherei16Vv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVrolVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVrolVx, FormV, ExtZvk, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVrorVi, FormV, ExtZvk, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVrorVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVrorVx, FormV, ExtZvk, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVrsubVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVrsubVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVs1rV, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVs2rV, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVs4rV, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVs8rV, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVsaddVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsaddVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsaddVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsadduVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsadduVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsadduVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsbcVvm, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsbcVxm, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVse1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVse128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVse16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR)
	t.set(IdVse256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVse32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR)
	t.set(IdVse512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVse64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVse8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVsetivli, FormI, ExtV, flagVector, 0, 0, xW, uimm, uimm)
	t.set(IdVsetvl, FormR, ExtV, flagVector, 0, 0, xW, xR, xR)
	t.set(IdVsetvli, FormI, ExtV, flagVector, 0, 0, xW, xR, uimm)
	t.set(IdVsextVf2, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVsextVf4, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVsextVf8, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVsha2chVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsha2clVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsha2msVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVslide1downVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVslide1upVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVslidedownVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVslidedownVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVslideupVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVslideupVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsllVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsllVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsllVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsm3cVi, FormV, ExtZvk, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsm3meVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsm4kVi, FormV, ExtZvk, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsm4rVs, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsm4rVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsmV, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVsmulVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsmulVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsoxei1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxei128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxei16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR, vR)
	t.set(IdVsoxei256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxei32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR, vR)
	t.set(IdVsoxei512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxei64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxei8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR, vR)
	t.set(IdVsoxsegei1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxsegei128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxsegei16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR, vR)
	t.set(IdVsoxsegei256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxsegei32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR, vR)
	t.set(IdVsoxsegei512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxsegei64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsoxsegei8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR, vR)
	t.set(IdVsraVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsraVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsraVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsrlVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVsrlVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsrlVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsse1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsse128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsse16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR, xR)
	t.set(IdVsse256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsse32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR, xR)
	t.set(IdVsse512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsse64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsse8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR, xR)
	t.set(IdVssege1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVssege128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVssege16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR)
	t.set(IdVssege256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVssege32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR)
	t.set(IdVssege512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVssege64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR)
	t.set(IdVssege8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR)
	t.set(IdVssraVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVssraVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVssraVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVssrlVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVssrlVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVssrlVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsssege1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsssege128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsssege16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR, xR)
	t.set(IdVsssege256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsssege32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR, xR)
	t.set(IdVsssege512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsssege64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, xR)
	t.set(IdVsssege8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR, xR)
	t.set(IdVssubVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVssubVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVssubuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVssubuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsubVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVsubVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVsuxei1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxei128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxei16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR, vR)
	t.set(IdVsuxei256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxei32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR, vR)
	t.set(IdVsuxei512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxei64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxei8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR, vR)
	t.set(IdVsuxsegei1024V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxsegei128V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxsegei16V, FormV, ExtV, flagStore|flagVector, 2, 0, vR, xR, vR)
	t.set(IdVsuxsegei256V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxsegei32V, FormV, ExtV, flagStore|flagVector, 4, 0, vR, xR, vR)
	t.set(IdVsuxsegei512V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxsegei64V, FormV, ExtV, flagStore|flagVector, 8, 0, vR, xR, vR)
	t.set(IdVsuxsegei8V, FormV, ExtV, flagStore|flagVector, 1, 0, vR, xR, vR)
	t.set(IdVwaddVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwaddVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwaddWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwaddWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwadduVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwadduVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwadduWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwadduWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmaccVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwmaccVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmaccsuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwmaccsuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmaccuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwmaccuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmaccusVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmulVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwmulVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmulsuVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwmulsuVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwmuluVv, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwmuluVx, FormV, ExtV, flagMultiply|flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwredsumVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwredsumuVs, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwsllVi, FormV, ExtZvk, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVwsllVv, FormV, ExtZvk, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwsllVx, FormV, ExtZvk, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwsubVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwsubVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwsubWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwsubWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwsubuVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwsubuVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVwsubuWv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVwsubuWx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVxorVi, FormV, ExtV, flagVector, 0, 0, vW, vR, imm)
	t.set(IdVxorVv, FormV, ExtV, flagVector, 0, 0, vW, vR, vR)
	t.set(IdVxorVx, FormV, ExtV, flagVector, 0, 0, vW, vR, xR)
	t.set(IdVzextVf2, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVzextVf4, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdVzextVf8, FormV, ExtV, flagVector, 0, 0, vW, vR)
	t.set(IdWfi, FormI, ExtI, 0, 0, 0)
	t.set(IdWrsNto, FormI, ExtZawrs, 0, 0, 0)
	t.set(IdWrsSto, FormI, ExtZawrs, 0, 0, 0)
	t.set(IdXnor, FormR, ExtZbb, 0, 0, 0, xW, xR, xR)
	t.set(IdXor, FormR, ExtI, 0, 0, 0, xW, xR, xR)
	t.set(IdXori, FormI, ExtI, 0, 0, 0, xW, xR, imm)
	t.set(IdXpermB, FormR, ExtZbkx, 0, 0, 0, xW, xR, xR)
	t.set(IdXpermN, FormR, ExtZbkx, 0, 0, 0, xW, xR, xR)
	t.set(IdZip, FormI, ExtZbkb, 0, 0, 0, xW, xR)
}
