package vm

// DecodedInst models a decoded instruction: address, raw encoding and operand
// fields. All instructions are viewed as "inst op0, op1, op2, op3" where the
// operands are optional. Loads of the form "load rd, offset(rs1)" map to
// (rd, rs1, offset); stores of the form "store rs2, offset(rs1)" map to
// (rs2, rs1, offset).
type DecodedInst struct {
	addr     uint64
	physAddr uint64
	inst     uint32
	size     uint32
	entry    *InstEntry // nil for an invalid decode
	op       [4]uint32
	values   [4]uint64 // operand values, set by the execution engine
	valid    bool
	masked   bool  // vector instructions only
	vecFields uint8 // vector ld/st segment field count
}

// instructionSize returns the size in bytes of an encoded instruction: 2 when
// the low two bits are not 11, else 4.
func instructionSize(inst uint32) uint32 {
	if inst&3 != 3 {
		return 2
	}
	return 4
}

// Size returns the instruction size in bytes (2 or 4).
func (di *DecodedInst) Size() uint32 { return di.size }

// Address returns the virtual address of the instruction.
func (di *DecodedInst) Address() uint64 { return di.addr }

// PhysAddress returns the physical address of the instruction.
func (di *DecodedInst) PhysAddress() uint64 { return di.physAddr }

// Inst returns the raw encoded instruction.
func (di *DecodedInst) Inst() uint32 { return di.inst }

// Op0 returns the first operand (typically the destination register).
func (di *DecodedInst) Op0() uint32 { return di.op[0] }

// Op1 returns the second operand (typically source register rs1).
func (di *DecodedInst) Op1() uint32 { return di.op[1] }

// Op1SignExtended returns the second operand as a signed value.
func (di *DecodedInst) Op1SignExtended() int64 { return int64(int32(di.op[1])) }

// Op2 returns the third operand (source register rs2 or an immediate).
func (di *DecodedInst) Op2() uint32 { return di.op[2] }

// Op2SignExtended returns the third operand as a signed value.
func (di *DecodedInst) Op2SignExtended() int64 { return int64(int32(di.op[2])) }

// Op3 returns the fourth operand (source register rs3 of fused multiply-add).
func (di *DecodedInst) Op3() uint32 { return di.op[3] }

// OperandCount returns the operand count of the instruction, immediates
// included.
func (di *DecodedInst) OperandCount() int {
	if di.entry == nil {
		return 0
	}
	return di.entry.OperandCount()
}

// IthOperand returns the i-th operand, or zero if i is out of bounds.
func (di *DecodedInst) IthOperand(i int) uint32 {
	if i < 0 || i >= di.OperandCount() {
		return 0
	}
	return di.op[i]
}

// IthOperandAsInt returns the i-th operand as a signed value, or zero if i is
// out of bounds.
func (di *DecodedInst) IthOperandAsInt(i int) int32 {
	return int32(di.IthOperand(i))
}

// IthOperandType returns the type of the i-th operand, or OpNone when i is
// out of bounds.
func (di *DecodedInst) IthOperandType(i int) OperandType {
	if di.entry == nil {
		return OpNone
	}
	return di.entry.IthOperandType(i)
}

// IthOperandMode returns the access mode of the i-th operand, or ModeNone
// when i is out of bounds.
func (di *DecodedInst) IthOperandMode(i int) OperandMode {
	if di.entry == nil {
		return ModeNone
	}
	return di.entry.IthOperandMode(i)
}

// EffectiveIthOperandMode is like IthOperandMode except that for csrrs/csrrc
// the CSR operand is downgraded to read-only when the source register is x0
// (no write to the CSR will occur).
func (di *DecodedInst) EffectiveIthOperandMode(i int) OperandMode {
	mode := di.IthOperandMode(i)
	id := di.InstId()
	if id == IdCsrrs || id == IdCsrrc {
		if di.IthOperandType(i) == OpCsReg && di.Op1() == 0 {
			return ModeRead
		}
	}
	return mode
}

// IsValid reports whether the decode matched a known instruction.
func (di *DecodedInst) IsValid() bool { return di.valid }

// Invalidate marks the instruction as invalid.
func (di *DecodedInst) Invalidate() { di.valid = false }

// Entry returns the opcode table entry, nil for an invalid decode.
func (di *DecodedInst) Entry() *InstEntry { return di.entry }

// InstId returns the instruction id, IdIllegal for an invalid decode.
func (di *DecodedInst) InstId() InstId {
	if di.entry == nil {
		return IdIllegal
	}
	return di.entry.InstId()
}

// Name returns the assembler mnemonic of the instruction.
func (di *DecodedInst) Name() string { return di.InstId().String() }

// Extension returns the ISA extension of the instruction.
func (di *DecodedInst) Extension() RvExtension {
	if di.entry == nil {
		return ExtNone
	}
	return di.entry.Extension()
}

// Format returns the encoding format of the instruction.
func (di *DecodedInst) Format() RvFormat {
	if di.entry == nil {
		return FormNone
	}
	return di.entry.Format()
}

// HasRoundingMode reports whether the instruction has an explicit rounding
// mode field.
func (di *DecodedInst) HasRoundingMode() bool {
	return di.entry != nil && di.entry.HasRoundingMode()
}

// RoundingMode returns the rounding mode field of a floating point
// instruction.
func (di *DecodedInst) RoundingMode() uint32 { return (di.inst >> 12) & 7 }

// HasDynamicRoundingMode reports whether the rounding mode field is set to
// dynamic.
func (di *DecodedInst) HasDynamicRoundingMode() bool {
	return di.HasRoundingMode() && di.RoundingMode() == 7
}

// ModifiesFflags reports whether the instruction updates the FFLAGS CSR.
func (di *DecodedInst) ModifiesFflags() bool {
	return di.entry != nil && di.entry.ModifiesFflags()
}

// ImmediateShiftSize returns the left shift to apply to immediate operands.
func (di *DecodedInst) ImmediateShiftSize() int {
	if di.entry == nil {
		return 0
	}
	return di.entry.ImmediateShiftSize()
}

// IsXRet reports whether this is one of mret/sret/dret.
func (di *DecodedInst) IsXRet() bool {
	id := di.InstId()
	return id == IdMret || id == IdSret || id == IdDret
}

// IsAtomicAcquire reports whether the acquire bit is set in an atomic
// instruction.
func (di *DecodedInst) IsAtomicAcquire() bool {
	return di.IsAtomic() && (di.inst>>26)&1 != 0
}

// IsAtomicRelease reports whether the release bit is set in an atomic
// instruction.
func (di *DecodedInst) IsAtomicRelease() bool {
	return di.IsAtomic() && (di.inst>>25)&1 != 0
}

// IsFence reports whether this is a fence instruction (not fence.tso).
func (di *DecodedInst) IsFence() bool { return di.InstId() == IdFence }

// IsPause reports whether this is a pause instruction.
func (di *DecodedInst) IsPause() bool { return di.InstId() == IdPause }

// IsFenceTso reports whether this is a fence.tso instruction.
func (di *DecodedInst) IsFenceTso() bool { return di.InstId() == IdFenceTso }

// IsFenceI reports whether this is a fence.i instruction.
func (di *DecodedInst) IsFenceI() bool { return di.InstId() == IdFenceI }

// IsSfenceVma reports whether this is an sfence.vma instruction.
func (di *DecodedInst) IsSfenceVma() bool { return di.InstId() == IdSfenceVma }

func (di *DecodedInst) isFenceLike() bool { return di.IsFence() || di.IsFenceTso() }

// Fence predecessor/successor bits.

func (di *DecodedInst) IsFencePredRead() bool   { return di.isFenceLike() && (di.inst>>25)&1 != 0 }
func (di *DecodedInst) IsFencePredWrite() bool  { return di.isFenceLike() && (di.inst>>24)&1 != 0 }
func (di *DecodedInst) IsFencePredInput() bool  { return di.isFenceLike() && (di.inst>>27)&1 != 0 }
func (di *DecodedInst) IsFencePredOutput() bool { return di.isFenceLike() && (di.inst>>26)&1 != 0 }
func (di *DecodedInst) IsFenceSuccRead() bool   { return di.isFenceLike() && (di.inst>>21)&1 != 0 }
func (di *DecodedInst) IsFenceSuccWrite() bool  { return di.isFenceLike() && (di.inst>>20)&1 != 0 }
func (di *DecodedInst) IsFenceSuccInput() bool  { return di.isFenceLike() && (di.inst>>23)&1 != 0 }
func (di *DecodedInst) IsFenceSuccOutput() bool { return di.isFenceLike() && (di.inst>>22)&1 != 0 }

// Category predicates, delegated to the opcode table entry.

func (di *DecodedInst) IsAmo() bool        { return di.entry != nil && di.entry.IsAmo() }
func (di *DecodedInst) IsAtomic() bool     { return di.entry != nil && di.entry.IsAtomic() }
func (di *DecodedInst) IsHypervisor() bool { return di.entry != nil && di.entry.IsHypervisor() }
func (di *DecodedInst) IsFp() bool         { return di.entry != nil && di.entry.IsFp() }
func (di *DecodedInst) IsCmo() bool        { return di.entry != nil && di.entry.IsCmo() }
func (di *DecodedInst) IsVector() bool     { return di.entry != nil && di.entry.IsVector() }
func (di *DecodedInst) IsCsr() bool        { return di.entry != nil && di.entry.IsCsr() }
func (di *DecodedInst) IsMultiply() bool   { return di.entry != nil && di.entry.IsMultiply() }
func (di *DecodedInst) IsDivide() bool     { return di.entry != nil && di.entry.IsDivide() }
func (di *DecodedInst) IsLoad() bool       { return di.entry != nil && di.entry.IsLoad() }
func (di *DecodedInst) IsStore() bool      { return di.entry != nil && di.entry.IsStore() }
func (di *DecodedInst) IsLr() bool         { return di.entry != nil && di.entry.IsLr() }
func (di *DecodedInst) IsSc() bool         { return di.entry != nil && di.entry.IsSc() }
func (di *DecodedInst) IsCompressed() bool { return di.entry != nil && di.entry.IsCompressed() }

// IsUnsignedLoad reports whether the instruction is a zero-extending load.
func (di *DecodedInst) IsUnsignedLoad() bool {
	return di.entry != nil && di.entry.IsUnsignedLoad()
}

// IsCboZero reports whether this is a cbo.zero instruction.
func (di *DecodedInst) IsCboZero() bool { return di.InstId() == IdCboZero }

// LoadSize returns the data size in bytes of a load, zero for non-loads.
func (di *DecodedInst) LoadSize() int {
	if di.entry == nil {
		return 0
	}
	return di.entry.LoadSize()
}

// StoreSize returns the data size in bytes of a store, zero for non-stores.
func (di *DecodedInst) StoreSize() int {
	if di.entry == nil {
		return 0
	}
	return di.entry.StoreSize()
}

// AmoSize returns the data size in bytes of an AMO, zero otherwise.
func (di *DecodedInst) AmoSize() int {
	if di.entry == nil {
		return 0
	}
	return di.entry.AmoSize()
}

func (di *DecodedInst) IsBranch() bool { return di.entry != nil && di.entry.IsBranch() }

func (di *DecodedInst) IsConditionalBranch() bool {
	return di.entry != nil && di.entry.IsConditionalBranch()
}

func (di *DecodedInst) IsBranchToRegister() bool {
	return di.entry != nil && di.entry.IsBranchToRegister()
}

// IsUnconditionalBranch reports whether this is a jal/jalr style branch.
func (di *DecodedInst) IsUnconditionalBranch() bool {
	return di.IsBranch() && !di.IsConditionalBranch()
}

// IsCall reports whether this is a call: jal/jalr with destination x1 or x5.
func (di *DecodedInst) IsCall() bool {
	return di.IsUnconditionalBranch() && (di.Op0() == 1 || di.Op0() == 5)
}

// IsReturn reports whether this is a return: jalr x0, ra, 0.
func (di *DecodedInst) IsReturn() bool {
	return di.IsBranchToRegister() && di.Op0() == 0 && di.Op1() == 1 && di.Op2() == 0
}

// IsMop reports whether this is a maybe-operation.
func (di *DecodedInst) IsMop() bool {
	id := di.InstId()
	return id == IdMopRr || id == IdMopR || id == IdCMop
}

// IsVsetvli reports whether this is a vsetvli instruction.
func (di *DecodedInst) IsVsetvli() bool { return di.InstId() == IdVsetvli }

// IsVsetivli reports whether this is a vsetivli instruction.
func (di *DecodedInst) IsVsetivli() bool { return di.InstId() == IdVsetivli }

// IsVsetvl reports whether this is a vsetvl instruction.
func (di *DecodedInst) IsVsetvl() bool { return di.InstId() == IdVsetvl }

// IsVectorFp reports whether this is a vector floating point instruction.
func (di *DecodedInst) IsVectorFp() bool {
	if !di.IsVector() {
		return false
	}
	f3 := (di.inst >> 12) & 7
	return f3 == 1 || f3 == 5
}

// IsVectorLoad reports whether this is a vector load instruction.
func (di *DecodedInst) IsVectorLoad() bool {
	if !di.IsVector() {
		return false
	}
	f3 := (di.inst >> 12) & 7
	return di.inst&0x7f == 7 && (f3 == 0 || f3 >= 5)
}

// IsVectorStore reports whether this is a vector store instruction.
func (di *DecodedInst) IsVectorStore() bool {
	if !di.IsVector() {
		return false
	}
	f3 := (di.inst >> 12) & 7
	return di.inst&0x7f == 0x27 && (f3 == 0 || f3 >= 5)
}

// IsVectorLoadStrided reports whether this is a strided vector load.
func (di *DecodedInst) IsVectorLoadStrided() bool {
	return di.IsVectorLoad() && (di.inst>>26)&3 == 2
}

// IsVectorStoreStrided reports whether this is a strided vector store.
func (di *DecodedInst) IsVectorStoreStrided() bool {
	return di.IsVectorStore() && (di.inst>>26)&3 == 2
}

// IsVectorLoadIndexed reports whether this is an indexed vector load.
func (di *DecodedInst) IsVectorLoadIndexed() bool {
	mop := (di.inst >> 26) & 3
	return di.IsVectorLoad() && (mop == 1 || mop == 3)
}

// IsVectorStoreIndexed reports whether this is an indexed vector store.
func (di *DecodedInst) IsVectorStoreIndexed() bool {
	mop := (di.inst >> 26) & 3
	return di.IsVectorStore() && (mop == 1 || mop == 3)
}

// IsVectorLoadFaultFirst reports whether this is a fault-only-first vector
// load.
func (di *DecodedInst) IsVectorLoadFaultFirst() bool {
	switch di.InstId() {
	case IdVle8ffV, IdVle16ffV, IdVle32ffV, IdVle64ffV,
		IdVle128ffV, IdVle256ffV, IdVle512ffV, IdVle1024ffV,
		IdVlsege8ffV, IdVlsege16ffV, IdVlsege32ffV, IdVlsege64ffV,
		IdVlsege128ffV, IdVlsege256ffV, IdVlsege512ffV, IdVlsege1024ffV:
		return true
	}
	return false
}

// VecLoadOrStoreElemSize returns the element size in bytes of a vector
// load/store (the index element size for indexed forms), zero otherwise.
func (di *DecodedInst) VecLoadOrStoreElemSize() int {
	if !di.IsVectorLoad() && !di.IsVectorStore() {
		return 0
	}
	var size int
	switch (di.inst >> 12) & 7 {
	case 0:
		size = 1
	case 5:
		size = 2
	case 6:
		size = 4
	case 7:
		size = 8
	default:
		return 0
	}
	if (di.inst>>28)&1 != 0 { // mew
		size *= 16
	}
	return size
}

// VecLoadElemSize returns the element size of a vector load, zero otherwise.
func (di *DecodedInst) VecLoadElemSize() int {
	if !di.IsVectorLoad() {
		return 0
	}
	return di.VecLoadOrStoreElemSize()
}

// VecStoreElemSize returns the element size of a vector store, zero
// otherwise.
func (di *DecodedInst) VecStoreElemSize() int {
	if !di.IsVectorStore() {
		return 0
	}
	return di.VecLoadOrStoreElemSize()
}

// IsMasked reports whether a vector instruction executes under a mask.
func (di *DecodedInst) IsMasked() bool { return di.masked }

// VecFieldCount returns the field count of a segmented or whole-register
// vector load/store, zero otherwise.
func (di *DecodedInst) VecFieldCount() int { return int(di.vecFields) }

// SetIthOperandValue associates a value with the i-th operand for diagnostic
// purposes. Immediate operands and out of range indices are ignored.
func (di *DecodedInst) SetIthOperandValue(i int, value uint64) {
	if i < 0 || i >= di.OperandCount() {
		return
	}
	switch di.IthOperandType(i) {
	case OpImm, OpUimm, OpNone:
		return
	}
	di.values[i] = value
}

// IthOperandValue returns the value associated with the i-th operand.
func (di *DecodedInst) IthOperandValue(i int) uint64 {
	if i < 0 || i >= 4 {
		return 0
	}
	return di.values[i]
}

// reset re-initializes the decoded instruction in place.
func (di *DecodedInst) reset(addr, physAddr uint64, inst uint32, entry *InstEntry,
	op0, op1, op2, op3 uint32) {
	*di = DecodedInst{
		addr:     addr,
		physAddr: physAddr,
		inst:     inst,
		size:     instructionSize(inst),
		entry:    entry,
		op:       [4]uint32{op0, op1, op2, op3},
		valid:    entry != nil && entry.InstId() != IdIllegal,
	}
}

func (di *DecodedInst) setMasked(flag bool)      { di.masked = flag }
func (di *DecodedInst) setVecFieldCount(n uint32) { di.vecFields = uint8(n) }
