package reflect

import (
	"github.com/gospv/spv/decode"
	"github.com/gospv/spv/module"
	"go.uber.org/zap"
)

// PushConstantRange is one entry point's push-constant usage, shaped
// like VkPushConstantRange. Offset is always 0 — a documented limitation
// carried forward from the decoder this is grounded on, which never
// tracks a push-constant block's true byte offset within a shader that
// declares more than one push-constant variable.
type PushConstantRange struct {
	StageFlags uint32
	Offset     uint32
	Size       uint32
}

// DescriptorSetLayoutBinding is one binding slot within a descriptor set
// layout, shaped like VkDescriptorSetLayoutBinding. DescriptorCount is
// always 1 — arrayed resources are never expanded, for the same reason
// the Function Body Scan never chases more than one level of access
// chain.
type DescriptorSetLayoutBinding struct {
	Binding         uint32
	DescriptorType  module.DescriptorType
	DescriptorCount uint32
	StageFlags      uint32
}

// DescriptorSetLayout collects the bindings observed for one descriptor
// set number. Bindings is dense and index-aligned to binding number:
// gaps left by a shader that skips binding numbers are zero-valued,
// unset slots (mirroring the original's array-growth behavior, which
// never compacts binding numbers).
type DescriptorSetLayout struct {
	Set      uint32
	Bindings []DescriptorSetLayoutBinding
}

// PipelineInfo is the complete reflection result for a module: every
// entry point's push-constant ranges and descriptor-set-layout bindings,
// merged across entry points that share a binding (their StageFlags are
// unioned together rather than producing duplicate binding records).
type PipelineInfo struct {
	PushConstants  []PushConstantRange
	DescriptorSets []DescriptorSetLayout
}

// stageFlags computes a Vulkan-shape shader-stage bitmask from an
// execution model: 1<<model for every model below Kernel, 0 otherwise
// (Kernel and beyond are OpenCL-style compute, outside the graphics/
// Vulkan-compute pipeline this reflector targets).
func stageFlags(model module.ExecutionModel) uint32 {
	if model >= module.ExecutionModelKernel {
		return 0
	}
	return 1 << uint32(model)
}

// Reflect scans every entry point's function body and produces the
// pipeline-layout information a renderer needs to create descriptor set
// layouts and a pipeline layout without re-parsing the shader itself.
// Grounded on the original decoder's get_pipeline_info.
func Reflect(mod *module.Module) (*PipelineInfo, *decode.ParseError) {
	info := &PipelineInfo{}
	setIndex := make(map[uint32]int)

	for i := range mod.EntryPoints {
		ep := &mod.EntryPoints[i]
		if ep.FunctionIndex == module.IndexUnset || ep.FunctionIndex >= uint32(len(mod.Functions)) {
			return nil, decode.NewError(decode.StructuralError,
				"entry point %q has no resolved function", ep.Name)
		}
		fn := &mod.Functions[ep.FunctionIndex]
		CollectReferencedVariables(mod, fn)
		flags := stageFlags(ep.ExecutionModel)

		Logger().Debug("reflecting entry point",
			zapField("name", ep.Name), zapField("stage_flags", flags),
			zapField("referenced_variables", fn.ReferencedVariables.Len()))

		for _, varIndex := range fn.ReferencedVariables.Slice() {
			v := &mod.Variables[varIndex]
			if v.Instruction.Instruction.Opcode != module.OpVariable {
				continue
			}
			storageClass := module.StorageClass(v.Instruction.Instruction.Words[3])

			if storageClass == module.StorageClassPushConstant {
				size, perr := indirectTypeSize(mod, v.Instruction.Instruction.Words[1])
				if perr != nil {
					return nil, perr
				}
				info.PushConstants = append(info.PushConstants, PushConstantRange{
					StageFlags: flags,
					Offset:     0,
					Size:       uint32(size),
				})
				Logger().Debug("push constant range",
					zapField("entry_point", ep.Name), zapField("size", size))
				continue
			}

			binding, descriptorSet, ok := bindingAndSet(mod, v)
			if !ok {
				continue
			}

			setPos, exists := setIndex[descriptorSet]
			if !exists {
				setPos = len(info.DescriptorSets)
				setIndex[descriptorSet] = setPos
				info.DescriptorSets = append(info.DescriptorSets, DescriptorSetLayout{Set: descriptorSet})
			}
			layout := &info.DescriptorSets[setPos]
			for uint32(len(layout.Bindings)) <= binding {
				layout.Bindings = append(layout.Bindings, DescriptorSetLayoutBinding{})
			}
			slot := &layout.Bindings[binding]
			descType, ok := classify(mod, v.Instruction.Instruction.Words[1])
			if !ok {
				continue
			}
			slot.Binding = binding
			slot.DescriptorCount = 1
			slot.DescriptorType = descType
			slot.StageFlags |= flags

			Logger().Debug("descriptor binding",
				zapField("entry_point", ep.Name), zapField("set", descriptorSet),
				zapField("binding", binding), zapField("descriptor_type", descType))
		}
	}

	return info, nil
}

// bindingAndSet scans a variable's decorations for Binding and
// DescriptorSet, returning ok=false if either is absent (a module-scope
// variable decorated with only one of the two, or neither, contributes
// nothing to a descriptor set layout).
func bindingAndSet(mod *module.Module, v *module.Variable) (binding, set uint32, ok bool) {
	var haveBinding, haveSet bool
	for _, idx := range v.Instruction.DecorationIndices {
		dec := mod.Decorations[idx]
		if dec.Opcode != module.OpDecorate && dec.Opcode != module.OpDecorateId {
			continue
		}
		switch dec.Kind() {
		case module.DecorationBinding:
			binding = dec.Operand(0)
			haveBinding = true
		case module.DecorationDescriptorSet:
			set = dec.Operand(0)
			haveSet = true
		}
	}
	return binding, set, haveBinding && haveSet
}

// classify maps a variable's pointer result type to a Vulkan descriptor
// type, following one OpTypePointer hop to inspect the pointee type.
// Grounded on get_descriptor_type_by_spirv_type.
func classify(mod *module.Module, resultTypeID uint32) (module.DescriptorType, bool) {
	ptrType, ok := mod.TypeByID(resultTypeID)
	if !ok || ptrType.Instruction.Instruction.Opcode != module.OpTypePointer {
		return 0, false
	}
	storageClass := module.StorageClass(ptrType.Instruction.Instruction.Words[2])
	pointeeID := ptrType.Instruction.Instruction.Words[3]
	pointee, ok := mod.TypeByID(pointeeID)
	if !ok {
		return 0, false
	}

	switch pointee.Instruction.Instruction.Opcode {
	case module.OpTypeImage:
		return module.DescriptorTypeSampledImage, true
	case module.OpTypeSampler:
		return module.DescriptorTypeSampler, true
	case module.OpTypeSampledImage:
		return module.DescriptorTypeCombinedImageSampler, true
	case module.OpTypeBool, module.OpTypeInt, module.OpTypeFloat, module.OpTypeVector,
		module.OpTypeMatrix, module.OpTypeArray, module.OpTypeRuntimeArray, module.OpTypeStruct:
		switch storageClass {
		case module.StorageClassUniform:
			return module.DescriptorTypeUniformBuffer, true
		case module.StorageClassStorageBuffer:
			return module.DescriptorTypeStorageBuffer, true
		}
	}
	return 0, false
}

// indirectTypeSize follows one OpTypePointer hop from resultTypeID and
// returns the byte size of the pointee type. Grounded on
// get_indirect_type_size.
func indirectTypeSize(mod *module.Module, resultTypeID uint32) (uint64, *decode.ParseError) {
	ptrType, ok := mod.TypeByID(resultTypeID)
	if !ok || ptrType.Instruction.Instruction.Opcode != module.OpTypePointer {
		return 0, decode.NewError(decode.StructuralError, "id %d is not a pointer type", resultTypeID)
	}
	pointeeID := ptrType.Instruction.Instruction.Words[3]
	return decode.Size(mod, pointeeID)
}

func zapField(key string, value any) zap.Field { return zap.Any(key, value) }
