package reflect

import (
	"testing"

	"github.com/gospv/spv/decode"
	"github.com/gospv/spv/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectUniformBuffer(t *testing.T) {
	mod, perr := decode.Parse(uniformBufferVertexShader(), decode.Options{})
	require.Nil(t, perr)

	info, perr := Reflect(mod)
	require.Nil(t, perr)

	require.Len(t, info.DescriptorSets, 1)
	set := info.DescriptorSets[0]
	assert.Equal(t, uint32(0), set.Set)
	require.Len(t, set.Bindings, 1)

	binding := set.Bindings[0]
	assert.Equal(t, uint32(0), binding.Binding)
	assert.Equal(t, module.DescriptorTypeUniformBuffer, binding.DescriptorType)
	assert.Equal(t, uint32(1), binding.DescriptorCount)
	assert.Equal(t, uint32(1<<module.ExecutionModelVertex), binding.StageFlags)
	assert.Empty(t, info.PushConstants)
}

func TestReflectPushConstant(t *testing.T) {
	mod, perr := decode.Parse(pushConstantFragmentShader(), decode.Options{})
	require.Nil(t, perr)

	info, perr := Reflect(mod)
	require.Nil(t, perr)

	require.Len(t, info.PushConstants, 1)
	pc := info.PushConstants[0]
	assert.Equal(t, uint32(0), pc.Offset)
	assert.Equal(t, uint32(64), pc.Size)
	assert.Equal(t, uint32(1<<module.ExecutionModelFragment), pc.StageFlags)
	assert.Empty(t, info.DescriptorSets)
}

func TestReflectSharedBindingUnionsStageFlags(t *testing.T) {
	// Two entry points in the same module, both referencing the same
	// uniform-buffer variable: the resulting binding's StageFlags should
	// be the union of both stages, not two separate binding records.
	b := newWordBuilder(15)
	b.instr(module.OpCapability, 1)
	b.instr(module.OpMemoryModel, uint32(module.AddressingLogical), uint32(module.MemoryModelGLSL450))
	epVertex := append([]uint32{uint32(module.ExecutionModelVertex), 8}, literalString("vs")...)
	b.instr(module.OpEntryPoint, epVertex...)
	epFragment := append([]uint32{uint32(module.ExecutionModelFragment), 9}, literalString("fs")...)
	b.instr(module.OpEntryPoint, epFragment...)

	b.instr(module.OpDecorate, 4, uint32(module.DecorationBlock))
	b.instr(module.OpMemberDecorate, 4, 0, uint32(module.DecorationOffset), 0)
	b.instr(module.OpDecorate, 6, uint32(module.DecorationBinding), 2)
	b.instr(module.OpDecorate, 6, uint32(module.DecorationDescriptorSet), 1)

	b.instr(module.OpTypeVoid, 1)
	b.instr(module.OpTypeFloat, 2, 32)
	b.instr(module.OpTypeVector, 3, 2, 4)
	b.instr(module.OpTypeStruct, 4, 3)
	b.instr(module.OpTypePointer, 5, uint32(module.StorageClassUniform), 4)
	b.instr(module.OpVariable, 5, 6, uint32(module.StorageClassUniform))
	b.instr(module.OpTypeFunction, 7, 1)

	b.instr(module.OpFunction, 1, 8, 0, 7)
	b.instr(module.OpLabel, 10)
	b.instr(module.OpLoad, 4, 11, 6)
	b.instr(module.OpReturn)
	b.instr(module.OpFunctionEnd)

	b.instr(module.OpFunction, 1, 9, 0, 7)
	b.instr(module.OpLabel, 12)
	b.instr(module.OpLoad, 4, 13, 6)
	b.instr(module.OpReturn)
	b.instr(module.OpFunctionEnd)

	mod, perr := decode.Parse(b.bytes(), decode.Options{})
	require.Nil(t, perr)

	info, perr := Reflect(mod)
	require.Nil(t, perr)

	require.Len(t, info.DescriptorSets, 1)
	require.Len(t, info.DescriptorSets[0].Bindings, 3) // index-aligned: bindings 0,1 are zero-valued gaps
	binding := info.DescriptorSets[0].Bindings[2]
	want := uint32(1<<module.ExecutionModelVertex) | uint32(1<<module.ExecutionModelFragment)
	assert.Equal(t, want, binding.StageFlags)
}
