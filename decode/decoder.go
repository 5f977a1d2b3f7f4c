package decode

import "github.com/gospv/spv/module"

// Options configures a single decode. The zero value is the default,
// permissive decode described by spec.md.
type Options struct {
	// Strict turns OpDecorationGroup, OpGroupDecorate, and
	// OpGroupMemberDecorate — silently skipped by default — into a fatal
	// UnsupportedFeature error instead.
	Strict bool
}

// deferredMemberName records an OpMemberName instruction whose target
// struct type may not exist yet (some producers emit member names
// before the OpTypeStruct that declares them), to be applied once every
// type is known.
type deferredMemberName struct {
	structID uint32
	member   uint32
	name     string
}

// deferredMemberDecoration records an OpMemberDecorate instruction's
// Offset payload for the same reason.
type deferredMemberDecoration struct {
	structID uint32
	member   uint32
	offset   uint64
}

type decoderState struct {
	m       *module.Module
	instrs  []module.Instruction
	opts    Options
	pos     int
	names   []deferredMemberName
	offsets []deferredMemberDecoration
}

// Parse decodes a raw SPIR-V binary into a Module. It performs no
// validation beyond what spec.md's error kinds require: a structurally
// valid but semantically nonsensical module (e.g. a struct member typed
// as a function) decodes without error, since detecting that class of
// mistake is full SPIR-V validation, an explicit non-goal.
func Parse(buf []byte, opts Options) (*module.Module, *ParseError) {
	reader, perr := newWordReader(buf)
	if perr != nil {
		return nil, perr
	}
	hdr := reader.readHeader()

	instrs, perr := scanInstructions(reader.words)
	if perr != nil {
		return nil, perr
	}

	m := module.New(hdr.bound)
	st := &decoderState{m: m, instrs: instrs, opts: opts}

	Logger().Debug("decoding SPIR-V module",
		zapField("bound", hdr.bound), zapField("instructions", len(instrs)))

	if perr := st.decodeCapabilities(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeExtensions(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeExtInstImports(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeMemoryModel(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeEntryPoints(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeExecutionModes(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeDebug(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeDecorations(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeTypesConstantsGlobals(); perr != nil {
		return nil, perr
	}
	if perr := st.decodeFunctions(); perr != nil {
		return nil, perr
	}

	st.applyMemberFixups()

	for i := range m.Types {
		if _, perr := Size(m, m.Types[i].Instruction.ID); perr != nil {
			return nil, perr
		}
	}

	for i := range m.EntryPoints {
		if m.EntryPoints[i].FunctionIndex == module.IndexUnset {
			return nil, newError(StructuralError, -1,
				"entry point %q (id %d) has no function", m.EntryPoints[i].Name, m.EntryPoints[i].ID)
		}
	}

	Logger().Debug("decode complete",
		zapField("types", len(m.Types)), zapField("variables", len(m.Variables)),
		zapField("functions", len(m.Functions)), zapField("entry points", len(m.EntryPoints)))

	return m, nil
}

func (st *decoderState) byteOffset() int {
	if st.pos >= len(st.instrs) {
		return -1
	}
	// The header size plus the word counts of every earlier instruction
	// give the exact byte offset of the current instruction's first word.
	off := headerWords
	for i := 0; i < st.pos; i++ {
		off += int(st.instrs[i].WordCount)
	}
	return off * 4
}

func (st *decoderState) peek() (module.Instruction, bool) {
	if st.pos >= len(st.instrs) {
		return module.Instruction{}, false
	}
	return st.instrs[st.pos], true
}

// 1. Capabilities
func (st *decoderState) decodeCapabilities() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok || ins.Opcode != module.OpCapability {
			return nil
		}
		st.pos++
	}
}

// 2. Extensions
func (st *decoderState) decodeExtensions() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok || ins.Opcode != module.OpExtension {
			return nil
		}
		st.pos++
	}
}

// 3. Extended instruction set imports
func (st *decoderState) decodeExtInstImports() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok || ins.Opcode != module.OpExtInstImport {
			return nil
		}
		id := ins.Words[1]
		idInstr, valid := st.m.IdInstruction(id)
		if !valid {
			return newError(StructuralError, st.byteOffset(), "OpExtInstImport result id %d exceeds id bound %d", id, st.m.Bound)
		}
		idInstr.Instruction = ins
		st.pos++
	}
}

// 4. Memory model (required, exactly one)
func (st *decoderState) decodeMemoryModel() *ParseError {
	ins, ok := st.peek()
	if !ok || ins.Opcode != module.OpMemoryModel {
		return newError(StructuralError, st.byteOffset(), "missing required OpMemoryModel instruction")
	}
	st.m.AddressingModel = module.AddressingModel(ins.Words[1])
	st.m.MemoryModel = module.MemoryModelKind(ins.Words[2])
	st.pos++
	return nil
}

// 5. Entry points
func (st *decoderState) decodeEntryPoints() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok || ins.Opcode != module.OpEntryPoint {
			return nil
		}
		if len(ins.Words) < 4 {
			return newError(StructuralError, st.byteOffset(), "OpEntryPoint instruction too short")
		}
		id := ins.Words[2]
		name, nameWordLen := readLiteralString(ins.Words, 3)
		refsStart := 3 + nameWordLen
		var refs []uint32
		if refsStart < int(ins.WordCount) {
			refs = append([]uint32(nil), ins.Words[refsStart:ins.WordCount]...)
		}
		st.m.EntryPoints = append(st.m.EntryPoints, module.EntryPoint{
			ID:             id,
			ExecutionModel: module.ExecutionModel(ins.Words[1]),
			Name:           name,
			InterfaceRefs:  refs,
			FunctionIndex:  module.IndexUnset,
		})
		st.pos++
	}
}

// 6. Execution modes
func (st *decoderState) decodeExecutionModes() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok || (ins.Opcode != module.OpExecutionMode && ins.Opcode != module.OpExecutionModeId) {
			return nil
		}
		targetID := ins.Words[1]
		ep, found := st.m.EntryPointByID(targetID)
		if !found {
			return newError(StructuralError, st.byteOffset(),
				"%s targets id %d which is not a declared entry point", ins.Opcode, targetID)
		}
		ep.ExecutionModes = append(ep.ExecutionModes, module.ExecutionMode{
			Mode:  module.ExecutionModeKind(ins.Words[2]),
			Words: append([]uint32(nil), ins.Words[3:ins.WordCount]...),
		})
		st.pos++
	}
}

// 7. Debug instructions
func (st *decoderState) decodeDebug() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok {
			return nil
		}
		switch ins.Opcode {
		case module.OpString, module.OpSource, module.OpSourceExtension, module.OpSourceContinued:
			st.pos++
		case module.OpName:
			id := ins.Words[1]
			name, _ := readLiteralString(ins.Words, 2)
			idInstr, valid := st.m.IdInstruction(id)
			if !valid {
				return newError(StructuralError, st.byteOffset(), "OpName target id %d exceeds id bound %d", id, st.m.Bound)
			}
			idInstr.Name = name
			st.pos++
		case module.OpMemberName:
			structID := ins.Words[1]
			member := ins.Words[2]
			name, _ := readLiteralString(ins.Words, 3)
			st.names = append(st.names, deferredMemberName{structID: structID, member: member, name: name})
			st.pos++
		case module.OpModuleProcessed:
			st.pos++
		default:
			return nil
		}
	}
}

// 8. Annotations / decorations
func (st *decoderState) decodeDecorations() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok {
			return nil
		}
		switch ins.Opcode {
		case module.OpDecorate, module.OpDecorateId:
			targetID := ins.Words[1]
			idx := uint32(len(st.m.Decorations))
			st.m.Decorations = append(st.m.Decorations, module.Decoration(ins))
			idInstr, valid := st.m.IdInstruction(targetID)
			if !valid {
				return newError(StructuralError, st.byteOffset(), "decoration target id %d exceeds id bound %d", targetID, st.m.Bound)
			}
			idInstr.DecorationIndices = append(idInstr.DecorationIndices, idx)
			st.pos++
		case module.OpMemberDecorate:
			structID := ins.Words[1]
			member := ins.Words[2]
			idx := uint32(len(st.m.Decorations))
			st.m.Decorations = append(st.m.Decorations, module.Decoration(ins))
			idInstr, valid := st.m.IdInstruction(structID)
			if !valid {
				return newError(StructuralError, st.byteOffset(), "member decoration target id %d exceeds id bound %d", structID, st.m.Bound)
			}
			idInstr.DecorationIndices = append(idInstr.DecorationIndices, idx)
			if module.DecorationKind(ins.Words[3]) == module.DecorationOffset {
				st.offsets = append(st.offsets, deferredMemberDecoration{
					structID: structID, member: member, offset: uint64(ins.Words[4]),
				})
			}
			st.pos++
		case module.OpDecorationGroup, module.OpGroupDecorate, module.OpGroupMemberDecorate:
			if st.opts.Strict {
				return newError(UnsupportedFeature, st.byteOffset(), "%s is not supported in strict mode", ins.Opcode)
			}
			st.pos++
		default:
			return nil
		}
	}
}

// 9. Types, constants, and module-scope global variables
func (st *decoderState) decodeTypesConstantsGlobals() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok {
			return nil
		}
		switch {
		case ins.Opcode == module.OpTypeForwardPointer, ins.Opcode == module.OpLine, ins.Opcode == module.OpNoLine:
			st.pos++
			continue
		case module.IsTypeOpcode(ins.Opcode):
			id := ins.Words[1]
			idInstr, valid := st.m.IdInstruction(id)
			if !valid {
				return newError(StructuralError, st.byteOffset(), "type id %d exceeds id bound %d", id, st.m.Bound)
			}
			idInstr.Instruction = ins
			typ := module.Type{Instruction: *idInstr, Size: module.SizeUnset}
			if ins.Opcode == module.OpTypeStruct {
				memberCount := int(ins.WordCount) - 2
				typ.Members = make([]module.StructMember, memberCount)
				for i := 0; i < memberCount; i++ {
					typ.Members[i].TypeID = ins.Words[2+i]
				}
			}
			st.m.Types = append(st.m.Types, typ)
			idInstr.Side = module.SideRef{Kind: module.SideType, Index: uint32(len(st.m.Types) - 1)}
			st.pos++
		case module.IsConstantOrVariableOpcode(ins.Opcode):
			id := ins.Words[2]
			idInstr, valid := st.m.IdInstruction(id)
			if !valid {
				return newError(StructuralError, st.byteOffset(), "constant/variable id %d exceeds id bound %d", id, st.m.Bound)
			}
			idInstr.Instruction = ins
			st.m.Variables = append(st.m.Variables, module.Variable{Instruction: *idInstr})
			idInstr.Side = module.SideRef{Kind: module.SideVariable, Index: uint32(len(st.m.Variables) - 1)}
			st.pos++
		default:
			return nil
		}
	}
}

// 10. Functions (the entry-point-without-function check runs in Parse)
func (st *decoderState) decodeFunctions() *ParseError {
	for {
		ins, ok := st.peek()
		if !ok {
			return nil
		}
		if ins.Opcode != module.OpFunction {
			return newError(StructuralError, st.byteOffset(), "unexpected %s outside a function body", ins.Opcode)
		}
		id := ins.Words[2]
		idInstr, valid := st.m.IdInstruction(id)
		if !valid {
			return newError(StructuralError, st.byteOffset(), "function id %d exceeds id bound %d", id, st.m.Bound)
		}
		idInstr.Instruction = ins

		body := []module.Instruction{ins}
		st.pos++
		for {
			bodyIns, ok := st.peek()
			if !ok {
				return newError(StructuralError, st.byteOffset(), "function id %d missing OpFunctionEnd", id)
			}
			body = append(body, bodyIns)
			st.pos++
			if bodyIns.Opcode == module.OpFunctionEnd {
				break
			}
		}

		fn := module.Function{Instruction: *idInstr, Body: body}
		st.m.Functions = append(st.m.Functions, fn)
		functionIndex := uint32(len(st.m.Functions) - 1)

		if ep, found := st.m.EntryPointByID(id); found {
			ep.FunctionIndex = functionIndex
		}
	}
}

// applyMemberFixups applies deferred OpMemberName/OpMemberDecorate
// payloads once every OpTypeStruct has necessarily been decoded.
// Grounded on the original decoder's deferred fixup loops: member slots
// are grown lazily since names and offsets can arrive in either order
// relative to the member's own position in the struct.
func (st *decoderState) applyMemberFixups() {
	for _, dn := range st.names {
		typ, ok := st.m.TypeByID(dn.structID)
		if !ok {
			continue
		}
		growMembers(typ, dn.member)
		typ.Members[dn.member].Name = dn.name
	}
	for _, do := range st.offsets {
		typ, ok := st.m.TypeByID(do.structID)
		if !ok {
			continue
		}
		growMembers(typ, do.member)
		typ.Members[do.member].Offset = do.offset
	}
}

func growMembers(typ *module.Type, member uint32) {
	for uint32(len(typ.Members)) <= member {
		typ.Members = append(typ.Members, module.StructMember{})
	}
}
