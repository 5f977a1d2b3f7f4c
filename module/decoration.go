package module

// Decoration is a raw OpDecorate, OpMemberDecorate, or OpDecorateId
// instruction, kept verbatim in Module.Decorations. IdInstruction's
// DecorationIndices reference decorations by index into this slice
// rather than copying them, since one target id commonly collects
// several decorations.
//
// Decoration is a defined type rather than an alias for Instruction so
// it can carry its own Operand method with decoration-specific word
// offsets, distinct from Instruction.Operand's header-relative one.
// Construction sites convert an Instruction to Decoration explicitly.
type Decoration Instruction

// TargetID returns the id a decoration instruction applies to: the
// result-less target operand at word index 1 for OpDecorate/
// OpDecorateId, or the struct type id for OpMemberDecorate.
func (d Decoration) TargetID() uint32 {
	return d.Words[1]
}

// MemberIndex returns the member index for an OpMemberDecorate
// instruction. Only valid when d.Opcode == OpMemberDecorate.
func (d Decoration) MemberIndex() uint32 {
	return d.Words[2]
}

// Kind returns the decoration enumerant: word 2 for OpDecorate/
// OpDecorateId, word 3 for OpMemberDecorate (which has the member index
// in between the target and the enumerant).
func (d Decoration) Kind() DecorationKind {
	if d.Opcode == OpMemberDecorate {
		return DecorationKind(d.Words[3])
	}
	return DecorationKind(d.Words[2])
}

// Operand returns the decoration's i-th enumerant-argument word; i = 0
// is the first one (e.g. the binding number for DecorationBinding, the
// byte offset for DecorationOffset). It adjusts for OpMemberDecorate's
// extra member-index word.
func (d Decoration) Operand(i int) uint32 {
	if d.Opcode == OpMemberDecorate {
		return d.Words[4+i]
	}
	return d.Words[3+i]
}
