package vm

// OperandType classifies a single operand slot of an instruction.
type OperandType int

const (
	OpNone  OperandType = iota // No operand in this slot
	OpIntReg                   // Integer register number
	OpFpReg                    // Floating point register number
	OpVecReg                   // Vector register number
	OpCsReg                    // Control and status register number
	OpImm                      // Signed immediate value
	OpUimm                     // Unsigned immediate value
)

// OperandMode describes how an instruction uses an operand.
type OperandMode int

const (
	ModeNone OperandMode = iota
	ModeRead
	ModeWrite
	ModeReadWrite
)

// RvFormat is the encoding format of an instruction.
type RvFormat int

const (
	FormNone RvFormat = iota
	FormR
	FormR4
	FormI
	FormS
	FormB
	FormU
	FormJ
	FormV // vector R-type layout (funct6/vm/vs2/vs1/funct3/vd)
	FormCi
	FormCl
	FormCs
	FormCsw
	FormCa
	FormCb
	FormCj
)

// RvExtension identifies the ISA extension an instruction belongs to.
type RvExtension int

const (
	ExtNone RvExtension = iota
	ExtI
	ExtM
	ExtA
	ExtF
	ExtD
	ExtZfh
	ExtZfa
	ExtZfbfmin
	ExtZba
	ExtZbb
	ExtZbc
	ExtZbs
	ExtZbkb
	ExtZbkx
	ExtZknd
	ExtZkne
	ExtZknh
	ExtZksed
	ExtZksh
	ExtZicsr
	ExtZifencei
	ExtZicbom
	ExtZicboz
	ExtZicond
	ExtZihintpause
	ExtZawrs
	ExtZacas
	ExtZimop
	ExtZcmop
	ExtC
	ExtZcb
	ExtH
	ExtSvinval
	ExtV
	ExtZvk
	ExtZvqdot
)

type instFlags uint32

const (
	flagLoad instFlags = 1 << iota
	flagStore
	flagAmo
	flagLr
	flagSc
	flagAtomic
	flagBranch
	flagCondBranch
	flagBranchToReg
	flagCompressed
	flagCsr
	flagFp
	flagVector
	flagMultiply
	flagDivide
	flagHyper
	flagCmo
	flagModifiesFflags
	flagRoundingMode
	flagUnsigned
)

// operand packs the type and access mode of one operand slot.
type operand struct {
	typ  OperandType
	mode OperandMode
}

// Shorthands used by the generated entry definitions.
var (
	xW    = operand{OpIntReg, ModeWrite}
	xR    = operand{OpIntReg, ModeRead}
	fW    = operand{OpFpReg, ModeWrite}
	fR    = operand{OpFpReg, ModeRead}
	vW    = operand{OpVecReg, ModeWrite}
	vR    = operand{OpVecReg, ModeRead}
	csRW  = operand{OpCsReg, ModeReadWrite}
	imm   = operand{OpImm, ModeNone}
	uimm  = operand{OpUimm, ModeNone}
)

// InstEntry holds the static metadata of one instruction. Entries are owned by
// an InstTable and are immutable after construction.
type InstEntry struct {
	id       InstId
	form     RvFormat
	ext      RvExtension
	flags    instFlags
	dataSize uint8 // load/store/AMO access size in bytes
	immShift uint8 // left shift applied to immediate operands
	opCount  uint8
	ops      [4]operand
}

// InstId returns the instruction id of this entry.
func (e *InstEntry) InstId() InstId { return e.id }

// Name returns the assembler mnemonic.
func (e *InstEntry) Name() string { return e.id.String() }

// Format returns the encoding format.
func (e *InstEntry) Format() RvFormat { return e.form }

// Extension returns the ISA extension of the instruction.
func (e *InstEntry) Extension() RvExtension { return e.ext }

// OperandCount returns the number of operands (immediates included).
func (e *InstEntry) OperandCount() int { return int(e.opCount) }

// IthOperandType returns the type of the i-th operand or OpNone when i is out
// of bounds.
func (e *InstEntry) IthOperandType(i int) OperandType {
	if i < 0 || i >= int(e.opCount) {
		return OpNone
	}
	return e.ops[i].typ
}

// IthOperandMode returns the access mode of the i-th operand or ModeNone when
// i is out of bounds.
func (e *InstEntry) IthOperandMode(i int) OperandMode {
	if i < 0 || i >= int(e.opCount) {
		return ModeNone
	}
	return e.ops[i].mode
}

func (e *InstEntry) isSet(f instFlags) bool { return e.id != IdIllegal && e.flags&f != 0 }

// Category predicates. All of them report false for the illegal sentinel.

func (e *InstEntry) IsLoad() bool            { return e.isSet(flagLoad) }
func (e *InstEntry) IsStore() bool           { return e.isSet(flagStore) }
func (e *InstEntry) IsAmo() bool             { return e.isSet(flagAmo) }
func (e *InstEntry) IsLr() bool              { return e.isSet(flagLr) }
func (e *InstEntry) IsSc() bool              { return e.isSet(flagSc) }
func (e *InstEntry) IsAtomic() bool          { return e.isSet(flagAtomic) }
func (e *InstEntry) IsBranch() bool          { return e.isSet(flagBranch) }
func (e *InstEntry) IsConditionalBranch() bool { return e.isSet(flagCondBranch) }
func (e *InstEntry) IsBranchToRegister() bool  { return e.isSet(flagBranchToReg) }
func (e *InstEntry) IsCompressed() bool      { return e.isSet(flagCompressed) }
func (e *InstEntry) IsCsr() bool             { return e.isSet(flagCsr) }
func (e *InstEntry) IsFp() bool              { return e.isSet(flagFp) }
func (e *InstEntry) IsVector() bool          { return e.isSet(flagVector) }
func (e *InstEntry) IsMultiply() bool        { return e.isSet(flagMultiply) }
func (e *InstEntry) IsDivide() bool          { return e.isSet(flagDivide) }
func (e *InstEntry) IsHypervisor() bool      { return e.isSet(flagHyper) }
func (e *InstEntry) IsCmo() bool             { return e.isSet(flagCmo) }
func (e *InstEntry) ModifiesFflags() bool    { return e.isSet(flagModifiesFflags) }
func (e *InstEntry) HasRoundingMode() bool   { return e.isSet(flagRoundingMode) }

// IsUnsignedLoad reports whether a load zero-extends its result.
func (e *InstEntry) IsUnsignedLoad() bool { return e.isSet(flagLoad) && e.isSet(flagUnsigned) }

// LoadSize returns the data size in bytes of a load, zero for non-loads.
func (e *InstEntry) LoadSize() int {
	if !e.IsLoad() {
		return 0
	}
	return int(e.dataSize)
}

// StoreSize returns the data size in bytes of a store, zero for non-stores.
func (e *InstEntry) StoreSize() int {
	if !e.IsStore() {
		return 0
	}
	return int(e.dataSize)
}

// AmoSize returns the data size in bytes of an AMO (excluding lr/sc), zero
// otherwise.
func (e *InstEntry) AmoSize() int {
	if !e.IsAmo() {
		return 0
	}
	return int(e.dataSize)
}

// ImmediateShiftSize returns the left shift to apply to immediate operands.
func (e *InstEntry) ImmediateShiftSize() int { return int(e.immShift) }

// InstTable is the catalogue of all supported instructions, indexed by InstId.
// It is immutable after construction and safe to share.
type InstTable struct {
	entries [instIdCount]InstEntry
}

// NewInstTable constructs the instruction catalogue.
func NewInstTable() *InstTable {
	t := &InstTable{}
	for i := range t.entries {
		t.entries[i].id = IdIllegal
	}
	t.entries[IdIllegal] = InstEntry{id: IdIllegal}
	t.defineEntries()
	return t
}

func (t *InstTable) set(id InstId, form RvFormat, ext RvExtension, fl instFlags,
	dataSize, immShift uint8, ops ...operand) {
	e := InstEntry{id: id, form: form, ext: ext, flags: fl, dataSize: dataSize,
		immShift: immShift, opCount: uint8(len(ops))}
	copy(e.ops[:], ops)
	t.entries[id] = e
}

// Entry returns the entry for the given id. Unknown ids map to the illegal
// sentinel entry; the result is never nil.
func (t *InstTable) Entry(id InstId) *InstEntry {
	if id >= instIdCount {
		return &t.entries[IdIllegal]
	}
	return &t.entries[id]
}
