package module

// Instruction is one decoded SPIR-V instruction: the opcode and word
// count unpacked from the header word, plus the full word slice
// (including that header word at index 0) so operand words can still be
// addressed by their original word-count-relative position.
type Instruction struct {
	Opcode    Opcode
	WordCount uint16
	Words     []uint32
}

// Operand returns Words[i], the i-th word counting the header word as 0.
// Operands therefore start at index 1.
func (ins Instruction) Operand(i int) uint32 {
	return ins.Words[i]
}

// SideKind distinguishes which side table, if any, an IdInstruction's
// SideRef indexes into. A sum type in place of the original decoder's
// single u32 field overloaded with a max-uint32 sentinel: the zero value
// SideNone is the unset state, so a freshly zeroed IdInstruction (as
// produced when Module.IdInstructions is sized to the id bound) is
// already a valid "unset" side reference.
type SideKind uint8

const (
	SideNone SideKind = iota
	SideType
	SideVariable
)

// SideRef points from an id's IdInstruction to its entry in Module.Types
// or Module.Variables, or nowhere (SideNone) for ids that never appear
// as the result of a type- or variable-defining instruction (function
// ids, value ids produced by ordinary operations, and so on).
type SideRef struct {
	Kind  SideKind
	Index uint32
}

// IsSet reports whether the reference points at a side table slot.
func (s SideRef) IsSet() bool { return s.Kind != SideNone }

// IdInstruction is the per-id slot of the Module Table: one for every id
// in [0, Bound), most of them left at their zero value because the
// corresponding id is never the result id of an instruction the decoder
// cares about (a temporary SSA value, an unused forward-declared id,
// and so on).
type IdInstruction struct {
	Instruction
	ID   uint32
	Name string

	// DecorationIndices are indices into Module.Decorations whose target
	// (OpDecorate's or OpDecorateId's target-id operand, or
	// OpMemberDecorate's struct-type operand) is this id.
	DecorationIndices []uint32

	// Side is set when this id also names a Type or a Variable, letting
	// callers resolve from an id straight to the richer Type/Variable
	// record without a linear scan.
	Side SideRef
}
