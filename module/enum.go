package module

import "fmt"

// Opcode is a SPIR-V instruction opcode, the low 16 bits of an
// instruction's first word.
type Opcode uint16

// Opcodes recognized by the section decoder. Only the opcodes spec.md's
// eleven logical sections need to distinguish are named here; anything
// else is carried as an opaque Instruction and, where a section allows
// it, simply skipped.
const (
	OpNop              Opcode = 0
	OpUndef            Opcode = 1
	OpSourceContinued  Opcode = 2
	OpSource           Opcode = 3
	OpSourceExtension  Opcode = 4
	OpName             Opcode = 5
	OpMemberName       Opcode = 6
	OpString           Opcode = 7
	OpLine             Opcode = 8
	OpExtension        Opcode = 10
	OpExtInstImport    Opcode = 11
	OpExtInst          Opcode = 12
	OpMemoryModel      Opcode = 14
	OpEntryPoint       Opcode = 15
	OpExecutionMode    Opcode = 16
	OpCapability       Opcode = 17

	OpTypeVoid          Opcode = 19
	OpTypeBool          Opcode = 20
	OpTypeInt           Opcode = 21
	OpTypeFloat         Opcode = 22
	OpTypeVector        Opcode = 23
	OpTypeMatrix        Opcode = 24
	OpTypeImage         Opcode = 25
	OpTypeSampler       Opcode = 26
	OpTypeSampledImage  Opcode = 27
	OpTypeArray         Opcode = 28
	OpTypeRuntimeArray  Opcode = 29
	OpTypeStruct        Opcode = 30
	OpTypeOpaque        Opcode = 31
	OpTypePointer       Opcode = 32
	OpTypeFunction      Opcode = 33
	OpTypeEvent         Opcode = 34
	OpTypeDeviceEvent   Opcode = 35
	OpTypeReserveId     Opcode = 36
	OpTypeQueue         Opcode = 37
	OpTypePipe          Opcode = 38
	OpTypeForwardPointer Opcode = 39

	OpConstantTrue         Opcode = 41
	OpConstantFalse        Opcode = 42
	OpConstant             Opcode = 43
	OpConstantComposite    Opcode = 44
	OpConstantSampler      Opcode = 45
	OpConstantNull         Opcode = 46
	OpSpecConstantTrue     Opcode = 48
	OpSpecConstantFalse    Opcode = 49
	OpSpecConstant         Opcode = 50
	OpSpecConstantComposite Opcode = 51
	OpSpecConstantOp       Opcode = 52

	OpFunction          Opcode = 54
	OpFunctionParameter Opcode = 55
	OpFunctionEnd       Opcode = 56
	OpFunctionCall      Opcode = 57

	OpVariable   Opcode = 59
	OpLoad       Opcode = 61
	OpStore      Opcode = 62
	OpAccessChain Opcode = 65

	OpDecorate             Opcode = 71
	OpMemberDecorate       Opcode = 72
	OpDecorationGroup      Opcode = 73
	OpGroupDecorate        Opcode = 74
	OpGroupMemberDecorate  Opcode = 75

	OpLabel       Opcode = 248
	OpReturn      Opcode = 253
	OpReturnValue Opcode = 254

	OpNoLine          Opcode = 317
	OpTypePipeStorage Opcode = 322
	OpTypeNamedBarrier Opcode = 327
	OpModuleProcessed Opcode = 330
	OpExecutionModeId Opcode = 331
	OpDecorateId      Opcode = 332
)

var opcodeNames = map[Opcode]string{
	OpNop: "Nop", OpUndef: "Undef", OpSourceContinued: "SourceContinued",
	OpSource: "Source", OpSourceExtension: "SourceExtension", OpName: "Name",
	OpMemberName: "MemberName", OpString: "String", OpLine: "Line",
	OpExtension: "Extension", OpExtInstImport: "ExtInstImport", OpExtInst: "ExtInst",
	OpMemoryModel: "MemoryModel", OpEntryPoint: "EntryPoint", OpExecutionMode: "ExecutionMode",
	OpCapability: "Capability",
	OpTypeVoid: "TypeVoid", OpTypeBool: "TypeBool", OpTypeInt: "TypeInt",
	OpTypeFloat: "TypeFloat", OpTypeVector: "TypeVector", OpTypeMatrix: "TypeMatrix",
	OpTypeImage: "TypeImage", OpTypeSampler: "TypeSampler", OpTypeSampledImage: "TypeSampledImage",
	OpTypeArray: "TypeArray", OpTypeRuntimeArray: "TypeRuntimeArray", OpTypeStruct: "TypeStruct",
	OpTypeOpaque: "TypeOpaque", OpTypePointer: "TypePointer", OpTypeFunction: "TypeFunction",
	OpTypeEvent: "TypeEvent", OpTypeDeviceEvent: "TypeDeviceEvent", OpTypeReserveId: "TypeReserveId",
	OpTypeQueue: "TypeQueue", OpTypePipe: "TypePipe", OpTypeForwardPointer: "TypeForwardPointer",
	OpConstantTrue: "ConstantTrue", OpConstantFalse: "ConstantFalse", OpConstant: "Constant",
	OpConstantComposite: "ConstantComposite", OpConstantSampler: "ConstantSampler", OpConstantNull: "ConstantNull",
	OpSpecConstantTrue: "SpecConstantTrue", OpSpecConstantFalse: "SpecConstantFalse", OpSpecConstant: "SpecConstant",
	OpSpecConstantComposite: "SpecConstantComposite", OpSpecConstantOp: "SpecConstantOp",
	OpFunction: "Function", OpFunctionParameter: "FunctionParameter", OpFunctionEnd: "FunctionEnd",
	OpFunctionCall: "FunctionCall",
	OpVariable: "Variable", OpLoad: "Load", OpStore: "Store", OpAccessChain: "AccessChain",
	OpDecorate: "Decorate", OpMemberDecorate: "MemberDecorate", OpDecorationGroup: "DecorationGroup",
	OpGroupDecorate: "GroupDecorate", OpGroupMemberDecorate: "GroupMemberDecorate",
	OpLabel: "Label", OpReturn: "Return", OpReturnValue: "ReturnValue",
	OpNoLine: "NoLine", OpTypePipeStorage: "TypePipeStorage", OpTypeNamedBarrier: "TypeNamedBarrier",
	OpModuleProcessed: "ModuleProcessed", OpExecutionModeId: "ExecutionModeId", OpDecorateId: "DecorateId",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return "Op" + name
	}
	return fmt.Sprintf("Op<%d>", uint16(o))
}

// IsTypeOpcode reports whether op declares a type (the set handled by
// the Types/Constants/Globals section's type branch).
func IsTypeOpcode(op Opcode) bool {
	switch op {
	case OpTypeVoid, OpTypeBool, OpTypeInt, OpTypeFloat, OpTypeVector, OpTypeMatrix,
		OpTypeImage, OpTypeSampler, OpTypeSampledImage, OpTypeArray, OpTypeRuntimeArray,
		OpTypeStruct, OpTypeOpaque, OpTypePointer, OpTypeFunction, OpTypeEvent,
		OpTypeDeviceEvent, OpTypeReserveId, OpTypeQueue, OpTypePipe, OpTypePipeStorage,
		OpTypeNamedBarrier:
		return true
	}
	return false
}

// IsConstantOrVariableOpcode reports whether op declares a constant,
// specialization constant, or variable — the other branch of the
// Types/Constants/Globals section, sharing the Variable side table.
func IsConstantOrVariableOpcode(op Opcode) bool {
	switch op {
	case OpVariable, OpConstantTrue, OpConstantFalse, OpConstant, OpConstantComposite,
		OpConstantSampler, OpConstantNull, OpSpecConstantTrue, OpSpecConstantFalse,
		OpSpecConstant, OpSpecConstantComposite, OpSpecConstantOp:
		return true
	}
	return false
}

// AddressingModel is the SPIR-V addressing model named by OpMemoryModel's
// first operand.
type AddressingModel uint32

const (
	AddressingLogical AddressingModel = iota
	AddressingPhysical32
	AddressingPhysical64
)

// MemoryModelKind is the SPIR-V memory model named by OpMemoryModel's
// second operand.
type MemoryModelKind uint32

const (
	MemoryModelSimple MemoryModelKind = iota
	MemoryModelGLSL450
	MemoryModelOpenCL
	MemoryModelVulkan
)

// ExecutionModel is the shader stage named by OpEntryPoint's first
// operand. Stage bit flags are computed as 1 << model for models below
// Kernel; see reflect.stageFlags.
type ExecutionModel uint32

const (
	ExecutionModelVertex ExecutionModel = iota
	ExecutionModelTessellationControl
	ExecutionModelTessellationEvaluation
	ExecutionModelGeometry
	ExecutionModelFragment
	ExecutionModelGLCompute
	ExecutionModelKernel
)

func (m ExecutionModel) String() string {
	switch m {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelTessellationControl:
		return "TessellationControl"
	case ExecutionModelTessellationEvaluation:
		return "TessellationEvaluation"
	case ExecutionModelGeometry:
		return "Geometry"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	default:
		return fmt.Sprintf("ExecutionModel<%d>", uint32(m))
	}
}

// ExecutionModeKind is the enumerant carried by OpExecutionMode /
// OpExecutionModeId. Only the wire value is kept; spec.md treats
// execution modes as opaque payload attached to an entry point.
type ExecutionModeKind uint32

// StorageClass is the SPIR-V storage class named by OpTypePointer's
// storage-class operand and OpVariable's storage-class operand.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = iota
	StorageClassInput
	StorageClassUniform
	StorageClassOutput
	StorageClassWorkgroup
	StorageClassCrossWorkgroup
	StorageClassPrivate
	StorageClassFunction
	StorageClassGeneric
	StorageClassPushConstant
	StorageClassAtomicCounter
	StorageClassImage
	StorageClassStorageBuffer
)

var storageClassNames = map[StorageClass]string{
	StorageClassUniformConstant: "uniform_constant",
	StorageClassInput:           "input",
	StorageClassUniform:         "uniform",
	StorageClassOutput:          "output",
	StorageClassWorkgroup:       "workgroup",
	StorageClassCrossWorkgroup:  "cross_workgroup",
	StorageClassPrivate:         "private",
	StorageClassFunction:        "function",
	StorageClassGeneric:         "generic",
	StorageClassPushConstant:    "push_constant",
	StorageClassAtomicCounter:   "atomic_counter",
	StorageClassImage:           "image",
	StorageClassStorageBuffer:   "storage_buffer",
}

// String renders a StorageClass the way the original decoder's
// disassembly printer did: a lowercase snake_case name.
func (s StorageClass) String() string {
	if name, ok := storageClassNames[s]; ok {
		return name
	}
	return fmt.Sprintf("storage_class_%d", uint32(s))
}

// DecorationKind is the enumerant carried by OpDecorate / OpMemberDecorate
// / OpDecorateId's decoration operand.
type DecorationKind uint32

const (
	DecorationBlock         DecorationKind = 2
	DecorationBufferBlock   DecorationKind = 3
	DecorationBinding       DecorationKind = 33
	DecorationDescriptorSet DecorationKind = 34
	DecorationOffset        DecorationKind = 35
)

// Capability is the enumerant carried by OpCapability's sole operand.
// Only CapabilityMatrix and CapabilityShader have named constants; any
// other value decodes fine and is named only by Capability.String.
type Capability uint32

const (
	CapabilityMatrix Capability = 0
	CapabilityShader Capability = 1
)

// Dim is the enumerant carried by OpTypeImage's dimensionality operand.
type Dim uint32

const (
	Dim1D Dim = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpassData
)

// DescriptorType mirrors the subset of VkDescriptorType values the
// Pipeline Reflector can produce. Only the numeric enumerant values and
// the two output record shapes in package reflect (PushConstantRange,
// DescriptorSetLayoutBinding) are borrowed from Vulkan; no Vulkan client
// library is a dependency of this module.
type DescriptorType uint32

const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeCombinedImageSampler
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformTexelBuffer
	DescriptorTypeStorageTexelBuffer
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
)
