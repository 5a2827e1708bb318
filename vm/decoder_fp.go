package vm

// fpFamily carries the per-format instruction ids selected by the common
// funct7/funct3/rs2 cascade of major opcode 0b10100. The low two bits of
// funct7 select the format: 0 single, 1 double, 2 half.
type fpFamily struct {
	add, sub, mul, div                InstId
	sgnj, sgnjn, sgnjx                InstId
	min, minm, max, maxm              InstId
	sqrt                              InstId
	le, leq, lt, ltq, eq              InstId
	cvtW, cvtWu, cvtL, cvtLu          InstId // fp to int
	cvtFromW, cvtFromWu               InstId // int to fp
	cvtFromL, cvtFromLu               InstId
	mvToX, class, mvFromX, fli        InstId
}

var fpSingle = fpFamily{
	add: IdFaddS, sub: IdFsubS, mul: IdFmulS, div: IdFdivS,
	sgnj: IdFsgnjS, sgnjn: IdFsgnjnS, sgnjx: IdFsgnjxS,
	min: IdFminS, minm: IdFminmS, max: IdFmaxS, maxm: IdFmaxmS,
	sqrt: IdFsqrtS,
	le: IdFleS, leq: IdFleqS, lt: IdFltS, ltq: IdFltqS, eq: IdFeqS,
	cvtW: IdFcvtWS, cvtWu: IdFcvtWuS, cvtL: IdFcvtLS, cvtLu: IdFcvtLuS,
	cvtFromW: IdFcvtSW, cvtFromWu: IdFcvtSWu, cvtFromL: IdFcvtSL, cvtFromLu: IdFcvtSLu,
	mvToX: IdFmvXW, class: IdFclassS, mvFromX: IdFmvWX, fli: IdFliS,
}

var fpDouble = fpFamily{
	add: IdFaddD, sub: IdFsubD, mul: IdFmulD, div: IdFdivD,
	sgnj: IdFsgnjD, sgnjn: IdFsgnjnD, sgnjx: IdFsgnjxD,
	min: IdFminD, minm: IdFminmD, max: IdFmaxD, maxm: IdFmaxmD,
	sqrt: IdFsqrtD,
	le: IdFleD, leq: IdFleqD, lt: IdFltD, ltq: IdFltqD, eq: IdFeqD,
	cvtW: IdFcvtWD, cvtWu: IdFcvtWuD, cvtL: IdFcvtLD, cvtLu: IdFcvtLuD,
	cvtFromW: IdFcvtDW, cvtFromWu: IdFcvtDWu, cvtFromL: IdFcvtDL, cvtFromLu: IdFcvtDLu,
	mvToX: IdFmvXD, class: IdFclassD, mvFromX: IdFmvDX, fli: IdFliD,
}

var fpHalf = fpFamily{
	add: IdFaddH, sub: IdFsubH, mul: IdFmulH, div: IdFdivH,
	sgnj: IdFsgnjH, sgnjn: IdFsgnjnH, sgnjx: IdFsgnjxH,
	min: IdFminH, minm: IdFminmH, max: IdFmaxH, maxm: IdFmaxmH,
	sqrt: IdFsqrtH,
	le: IdFleH, leq: IdFleqH, lt: IdFltH, ltq: IdFltqH, eq: IdFeqH,
	cvtW: IdFcvtWH, cvtWu: IdFcvtWuH, cvtL: IdFcvtLH, cvtLu: IdFcvtLuH,
	cvtFromW: IdFcvtHW, cvtFromWu: IdFcvtHWu, cvtFromL: IdFcvtHL, cvtFromLu: IdFcvtHLu,
	mvToX: IdFmvXH, class: IdFclassH, mvFromX: IdFmvHX, fli: IdFliH,
}

// decodeFp handles major opcode 0b10100 (floating point arithmetic,
// conversion, comparison and move).
func (d *Decoder) decodeFp(inst uint32, op0, op1, op2 *uint32) *InstEntry {
	f := rForm(inst)
	*op0, *op1, *op2 = f.rd(), f.rs1(), f.rs2()

	f7, f3 := f.funct7(), f.funct3()
	top5 := f7 >> 2
	rs2 := *op2

	var fam *fpFamily
	switch f7 & 3 {
	case 0:
		fam = &fpSingle
	case 1:
		fam = &fpDouble
	case 2:
		fam = &fpHalf
	default:
		return d.illegal()
	}

	switch top5 {
	case 0:
		return d.entry(fam.add)
	case 1:
		return d.entry(fam.sub)
	case 2:
		return d.entry(fam.mul)
	case 3:
		return d.entry(fam.div)
	case 4:
		switch f3 {
		case 0:
			return d.entry(fam.sgnj)
		case 1:
			return d.entry(fam.sgnjn)
		case 2:
			return d.entry(fam.sgnjx)
		}
		return d.illegal()
	case 5:
		switch f3 {
		case 0:
			return d.entry(fam.min)
		case 2:
			return d.entry(fam.minm)
		case 1:
			return d.entry(fam.max)
		case 3:
			return d.entry(fam.maxm)
		}
		return d.illegal()
	case 8:
		// Format conversions; the rs2 field selects the source format.
		switch fam {
		case &fpDouble:
			switch rs2 {
			case 0:
				return d.entry(IdFcvtDS)
			case 2:
				return d.entry(IdFcvtDH)
			case 4:
				return d.entry(IdFroundD)
			case 5:
				return d.entry(IdFroundnxD)
			}
		case &fpSingle:
			switch rs2 {
			case 1:
				return d.entry(IdFcvtSD)
			case 2:
				return d.entry(IdFcvtSH)
			case 4:
				return d.entry(IdFroundS)
			case 5:
				return d.entry(IdFroundnxS)
			case 6:
				return d.entry(IdFcvtSBf16)
			}
		case &fpHalf:
			switch rs2 {
			case 0:
				return d.entry(IdFcvtHS)
			case 1:
				return d.entry(IdFcvtHD)
			case 4:
				return d.entry(IdFroundH)
			case 5:
				return d.entry(IdFroundnxH)
			case 8:
				return d.entry(IdFcvtBf16S)
			}
		}
		return d.illegal()
	case 0xb:
		if rs2 == 0 {
			return d.entry(fam.sqrt)
		}
		return d.illegal()
	case 0x14:
		switch f3 {
		case 0:
			return d.entry(fam.le)
		case 4:
			return d.entry(fam.leq)
		case 1:
			return d.entry(fam.lt)
		case 5:
			return d.entry(fam.ltq)
		case 2:
			return d.entry(fam.eq)
		}
		return d.illegal()
	case 0x16:
		if fam == &fpDouble && f3 == 0 {
			return d.entry(IdFmvpDX)
		}
		return d.illegal()
	case 0x18:
		switch rs2 {
		case 0:
			return d.entry(fam.cvtW)
		case 1:
			return d.entry(fam.cvtWu)
		case 2:
			return d.entry(fam.cvtL)
		case 3:
			return d.entry(fam.cvtLu)
		case 8:
			if fam == &fpDouble && f3 == 1 {
				return d.entry(IdFcvtmodWD)
			}
		}
		return d.illegal()
	case 0x1a:
		switch rs2 {
		case 0:
			return d.entry(fam.cvtFromW)
		case 1:
			return d.entry(fam.cvtFromWu)
		case 2:
			return d.entry(fam.cvtFromL)
		case 3:
			return d.entry(fam.cvtFromLu)
		}
		return d.illegal()
	case 0x1c:
		if rs2 == 0 && f3 == 0 {
			return d.entry(fam.mvToX)
		}
		if rs2 == 0 && f3 == 1 {
			return d.entry(fam.class)
		}
		if fam == &fpDouble && rs2 == 1 && f3 == 0 {
			return d.entry(IdFmvhXD)
		}
		return d.illegal()
	case 0x1e:
		if rs2 == 0 && f3 == 0 {
			return d.entry(fam.mvFromX)
		}
		if rs2 == 1 && f3 == 0 {
			return d.entry(fam.fli)
		}
	}

	return d.illegal()
}
