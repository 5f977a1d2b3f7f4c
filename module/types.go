package module

// SizeUnset marks a Type whose size has not yet been computed by the
// Type Sizer, matching the original decoder's U32_MAX sentinel. Parse
// finalizes the size of every type before returning, but the sentinel
// stays reachable to the sizer itself while a type's computation is in
// flight.
const SizeUnset = uint64(^uint32(0))

// StructMember describes one member of an OpTypeStruct. Name and Offset
// arrive after the struct's own type record is created — OpMemberName
// and the Offset decoration from OpMemberDecorate are both applied in a
// deferred fixup pass once every referenced id is guaranteed to exist —
// so both fields start zero-valued and are filled in later.
type StructMember struct {
	TypeID uint32
	Name   string
	Offset uint64
}

// Type is the side-table record for any id produced by a type-defining
// opcode (see IsTypeOpcode). Instruction.Words holds the type's own
// operands (component type ids, element counts, and so on); Members is
// only populated for OpTypeStruct.
type Type struct {
	Instruction IdInstruction
	Size        uint64
	Members     []StructMember
}
