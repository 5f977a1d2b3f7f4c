package module

// Module is the fully decoded form of one SPIR-V binary: the id-indexed
// table described by spec.md §3, plus the ordered per-section records
// the Section Decoder collects as it walks the instruction stream once.
//
// IdInstructions is sized to Bound and indexed directly by id — most
// slots are left zero-valued, since most ids in a module never need a
// name, a decoration, or a side-table entry. Types, Variables, Functions
// and EntryPoints are dense slices in first-occurrence order; an
// IdInstruction's Side field (for Types/Variables) or an EntryPoint's
// FunctionIndex field (for Functions) links an id back to its dense
// record.
type Module struct {
	// Bound is the module's id bound: valid ids are [0, Bound).
	Bound uint32

	AddressingModel AddressingModel
	MemoryModel     MemoryModelKind

	IdInstructions []IdInstruction
	EntryPoints    []EntryPoint
	Types          []Type
	Variables      []Variable
	Functions      []Function
	Decorations    []Decoration
}

// New returns a Module with IdInstructions pre-sized to bound and every
// slot's ID field set to its own index, mirroring the original decoder's
// initialization of its id_instructions array before any section runs.
func New(bound uint32) *Module {
	m := &Module{
		Bound:          bound,
		IdInstructions: make([]IdInstruction, bound),
	}
	for i := range m.IdInstructions {
		m.IdInstructions[i].ID = uint32(i)
	}
	return m
}

// IdInstruction returns the side-table slot for id, or false if id is
// out of range.
func (m *Module) IdInstruction(id uint32) (*IdInstruction, bool) {
	if id >= uint32(len(m.IdInstructions)) {
		return nil, false
	}
	return &m.IdInstructions[id], true
}

// TypeByID resolves id to its Type record via the id's SideRef, or false
// if id does not name a type.
func (m *Module) TypeByID(id uint32) (*Type, bool) {
	idInstr, ok := m.IdInstruction(id)
	if !ok || idInstr.Side.Kind != SideType {
		return nil, false
	}
	return &m.Types[idInstr.Side.Index], true
}

// VariableByID resolves id to its Variable record via the id's SideRef,
// or false if id does not name a variable or constant.
func (m *Module) VariableByID(id uint32) (*Variable, bool) {
	idInstr, ok := m.IdInstruction(id)
	if !ok || idInstr.Side.Kind != SideVariable {
		return nil, false
	}
	return &m.Variables[idInstr.Side.Index], true
}

// EntryPointByID looks up an entry point by the id its defining
// OpEntryPoint instruction names. Grounded on the original decoder's
// get_entry_point_by_id, used while decoding OpExecutionMode to find the
// mode's target entry point.
func (m *Module) EntryPointByID(id uint32) (*EntryPoint, bool) {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].ID == id {
			return &m.EntryPoints[i], true
		}
	}
	return nil, false
}
