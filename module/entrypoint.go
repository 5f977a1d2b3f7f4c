package module

// IndexUnset marks an EntryPoint whose FunctionIndex has not yet been
// resolved by the Functions section (an entry point is declared by
// OpEntryPoint before its OpFunction is reached in the instruction
// stream, so the link is necessarily filled in later).
const IndexUnset = ^uint32(0)

// ExecutionMode is one OpExecutionMode or OpExecutionModeId instruction
// attached to an entry point. Words holds the mode's own operand words
// (local size, invocation count, and so on); the decoder does not
// interpret them beyond storing them, since no execution mode's payload
// feeds pipeline reflection.
type ExecutionMode struct {
	Mode  ExecutionModeKind
	Words []uint32
}

// EntryPoint is one OpEntryPoint instruction: an execution model, a
// name, the ids of the module-scope interface variables it statically
// uses (InterfaceRefs — Vulkan shaders list every referenced global
// here, unlike older Kernel-style modules), and the execution modes
// later attached to it.
type EntryPoint struct {
	ID             uint32
	ExecutionModel ExecutionModel
	Name           string
	InterfaceRefs  []uint32
	ExecutionModes []ExecutionMode

	// FunctionIndex is the index into Module.Functions of this entry
	// point's defining function, resolved once the Functions section
	// reaches the matching OpFunction. IndexUnset until then; a module
	// that never resolves every entry point's FunctionIndex is
	// structurally invalid (spec.md: "entry point has no function").
	FunctionIndex uint32
}
