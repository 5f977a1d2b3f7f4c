package module

import "fmt"

// This file supplies String methods for the enumerants whose names
// enum.go does not already render (enum.go covers StorageClass,
// ExecutionModel, and Opcode). Most values in these tables have no named
// constant; the tables exist for diagnostic output, primarily the
// disassembler tool.

var addressingModelNames = map[AddressingModel]string{
	AddressingLogical: "Logical", AddressingPhysical32: "Physical32", AddressingPhysical64: "Physical64",
}

func (a AddressingModel) String() string {
	if name, ok := addressingModelNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AddressingModel<%d>", uint32(a))
}

var memoryModelNames = map[MemoryModelKind]string{
	MemoryModelSimple: "Simple", MemoryModelGLSL450: "GLSL450",
	MemoryModelOpenCL: "OpenCL", MemoryModelVulkan: "Vulkan",
}

func (m MemoryModelKind) String() string {
	if name, ok := memoryModelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MemoryModel<%d>", uint32(m))
}

var capabilityNames = map[Capability]string{
	0: "Matrix", 1: "Shader", 2: "Geometry", 3: "Tessellation",
	4: "Addresses", 5: "Linkage", 6: "Kernel", 7: "Vector16",
	8: "Float16Buffer", 9: "Float16", 10: "Float64", 11: "Int64",
	12: "Int64Atomics", 13: "ImageBasic", 14: "ImageReadWrite", 15: "ImageMipmap",
	17: "Pipes", 18: "Groups", 19: "DeviceEnqueue", 20: "LiteralSampler",
	21: "AtomicStorage", 22: "Int16", 23: "TessellationPointSize",
	24: "GeometryPointSize", 25: "ImageGatherExtended", 27: "StorageImageMultisample",
	32: "ClipDistance", 33: "CullDistance", 34: "ImageCubeArray",
	35: "SampleRateShading", 36: "ImageRect", 37: "SampledRect",
	38: "GenericPointer", 39: "Int8", 40: "InputAttachment",
	50: "ImageQuery", 51: "DerivativeControl", 52: "InterpolationFunction",
	53: "TransformFeedback", 54: "GeometryStreams",
	58: "SubgroupDispatch", 59: "NamedBarrier", 60: "PipeStorage",
	61: "GroupNonUniform",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Capability<%d>", uint32(c))
}

var decorationNames = map[DecorationKind]string{
	0: "RelaxedPrecision", 1: "SpecId", 2: "Block", 3: "BufferBlock",
	4: "RowMajor", 5: "ColMajor", 6: "ArrayStride", 7: "MatrixStride",
	8: "GLSLShared", 9: "GLSLPacked", 10: "CPacked", 11: "BuiltIn",
	13: "NoPerspective", 14: "Flat", 15: "Patch", 16: "Centroid",
	17: "Sample", 18: "Invariant", 19: "Restrict", 20: "Aliased",
	21: "Volatile", 22: "Constant", 23: "Coherent", 24: "NonWritable",
	25: "NonReadable", 26: "Uniform", 28: "SaturatedConversion",
	29: "Stream", 30: "Location", 31: "Component", 32: "Index",
	33: "Binding", 34: "DescriptorSet", 35: "Offset", 36: "XfbBuffer",
	37: "XfbStride", 38: "FuncParamAttr", 39: "FPRoundingMode",
	40: "FPFastMathMode", 41: "LinkageAttributes", 42: "NoContraction",
	43: "InputAttachmentIndex", 44: "Alignment",
}

func (d DecorationKind) String() string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Decoration<%d>", uint32(d))
}

// BuiltIn is the enumerant carried by a DecorationBuiltIn decoration's
// operand. It has no bearing on pipeline reflection; it exists purely
// for the disassembler's diagnostic output.
type BuiltIn uint32

const DecorationBuiltIn DecorationKind = 11

var builtInNames = map[BuiltIn]string{
	0: "Position", 1: "PointSize", 3: "ClipDistance", 4: "CullDistance",
	5: "VertexId", 6: "InstanceId", 7: "PrimitiveId", 8: "InvocationId",
	9: "Layer", 10: "ViewportIndex", 11: "TessLevelOuter", 12: "TessLevelInner",
	13: "TessCoord", 14: "PatchVertices", 15: "FragCoord", 16: "PointCoord",
	17: "FrontFacing", 18: "SampleId", 19: "SamplePosition", 20: "SampleMask",
	22: "FragDepth", 23: "HelperInvocation", 24: "NumWorkgroups",
	25: "WorkgroupSize", 26: "WorkgroupId", 27: "LocalInvocationId",
	28: "GlobalInvocationId", 29: "LocalInvocationIndex",
	42: "VertexIndex", 43: "InstanceIndex",
}

func (b BuiltIn) String() string {
	if name, ok := builtInNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BuiltIn<%d>", uint32(b))
}

var executionModeNames = map[ExecutionModeKind]string{
	0: "Invocations", 1: "SpacingEqual", 2: "SpacingFractionalEven",
	3: "SpacingFractionalOdd", 4: "VertexOrderCw", 5: "VertexOrderCcw",
	6: "PixelCenterInteger", 7: "OriginUpperLeft", 8: "OriginLowerLeft",
	9: "EarlyFragmentTests", 10: "PointMode", 11: "Xfb", 12: "DepthReplacing",
	14: "DepthGreater", 15: "DepthLess", 16: "DepthUnchanged",
	17: "LocalSize", 18: "LocalSizeHint", 19: "InputPoints", 20: "InputLines",
	22: "Triangles", 24: "Quads", 25: "Isolines",
	26: "OutputVertices", 27: "OutputPoints",
	28: "OutputLineStrip", 29: "OutputTriangleStrip", 30: "VecTypeHint",
	31: "ContractionOff", 33: "Initializer", 34: "Finalizer",
	35: "SubgroupSize", 36: "SubgroupsPerWorkgroup",
}

func (e ExecutionModeKind) String() string {
	if name, ok := executionModeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionMode<%d>", uint32(e))
}

var dimNames = map[Dim]string{
	Dim1D: "1D", Dim2D: "2D", Dim3D: "3D", DimCube: "Cube",
	DimRect: "Rect", DimBuffer: "Buffer", DimSubpassData: "SubpassData",
}

func (d Dim) String() string {
	if name, ok := dimNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dim<%d>", uint32(d))
}
