package decode

import "github.com/gospv/spv/module"

// Size computes the byte size of the type named by typeID, memoizing the
// result on the type's own record so repeated queries (e.g. one push
// constant range and several bindings sharing a struct type) only pay
// for the recursive walk once. Parse calls this for every type before
// returning, so by the time a caller reaches a Type through the module
// its Size is already finalized; Reflect's own calls to Size are then
// pure cache hits. Grounded on the original decoder's
// calculate_type_size and its unconditional collect_type_information
// pass over every type in the module.
func Size(m *module.Module, typeID uint32) (uint64, *ParseError) {
	return sizeType(m, typeID, make(map[uint32]bool))
}

func sizeType(m *module.Module, typeID uint32, visiting map[uint32]bool) (uint64, *ParseError) {
	typ, ok := m.TypeByID(typeID)
	if !ok {
		return 0, newError(StructuralError, -1, "id %d does not name a type", typeID)
	}
	if typ.Size != module.SizeUnset {
		return typ.Size, nil
	}
	if visiting[typeID] {
		return 0, newError(StructuralError, -1, "type id %d is part of a size-calculation cycle", typeID)
	}
	visiting[typeID] = true
	defer delete(visiting, typeID)

	ins := typ.Instruction.Instruction
	var size uint64

	switch ins.Opcode {
	case module.OpTypeVoid, module.OpTypeBool,
		module.OpTypeImage, module.OpTypeSampler, module.OpTypeSampledImage,
		module.OpTypeRuntimeArray, module.OpTypeOpaque, module.OpTypePointer,
		module.OpTypeFunction, module.OpTypeEvent, module.OpTypeDeviceEvent,
		module.OpTypeReserveId, module.OpTypeQueue, module.OpTypePipe,
		module.OpTypePipeStorage, module.OpTypeNamedBarrier:
		size = 0

	case module.OpTypeInt, module.OpTypeFloat:
		size = uint64(ins.Words[2]) / 8

	case module.OpTypeVector, module.OpTypeMatrix:
		componentSize, err := sizeType(m, ins.Words[2], visiting)
		if err != nil {
			return 0, err
		}
		size = componentSize * uint64(ins.Words[3])

	case module.OpTypeArray:
		elemSize, err := sizeType(m, ins.Words[2], visiting)
		if err != nil {
			return 0, err
		}
		lengthID := ins.Words[3]
		lengthVar, ok := m.VariableByID(lengthID)
		if !ok {
			return 0, newError(StructuralError, -1, "array length id %d is not a constant", lengthID)
		}
		length := uint64(lengthVar.Instruction.Instruction.Words[3])
		size = elemSize * length

	case module.OpTypeStruct:
		if len(typ.Members) == 0 {
			size = 0
			break
		}
		maxOffsetMember := 0
		for i := 1; i < len(typ.Members); i++ {
			if typ.Members[i].Offset > typ.Members[maxOffsetMember].Offset {
				maxOffsetMember = i
			}
		}
		maxOffset := typ.Members[maxOffsetMember].Offset
		if maxOffset > 0 {
			memberSize, err := sizeType(m, typ.Members[maxOffsetMember].TypeID, visiting)
			if err != nil {
				return 0, err
			}
			size = memberSize + maxOffset
		} else {
			var sum uint64
			for _, mem := range typ.Members {
				memberSize, err := sizeType(m, mem.TypeID, visiting)
				if err != nil {
					return 0, err
				}
				sum += memberSize
			}
			size = sum
		}

	default:
		return 0, newError(UnsupportedFeature, -1, "cannot compute size of type opcode %s", ins.Opcode)
	}

	typ.Size = size
	return size, nil
}
