package reflect

import (
	"encoding/binary"

	"github.com/gospv/spv/module"
)

// wordBuilder assembles minimal SPIR-V word streams for tests. Not
// exported product code — see decode's own builder_test.go for the
// rationale; this package needs its own copy since decode's is
// unexported to that package.
type wordBuilder struct {
	words []uint32
}

const spirvMagic uint32 = 0x07230203

func newWordBuilder(bound uint32) *wordBuilder {
	b := &wordBuilder{}
	b.words = append(b.words, spirvMagic, 0x00010000, 0, bound, 0)
	return b
}

func (b *wordBuilder) instr(opcode module.Opcode, words ...uint32) *wordBuilder {
	wordCount := uint16(1 + len(words))
	header := uint32(wordCount)<<16 | uint32(opcode)
	b.words = append(b.words, header)
	b.words = append(b.words, words...)
	return b
}

func literalString(s string) []uint32 {
	buf := []byte(s)
	buf = append(buf, 0)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = uint32(buf[i*4]) | uint32(buf[i*4+1])<<8 | uint32(buf[i*4+2])<<16 | uint32(buf[i*4+3])<<24
	}
	return words
}

func (b *wordBuilder) bytes() []byte {
	buf := make([]byte, len(b.words)*4)
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

// uniformBufferVertexShader mirrors decode's fixture of the same name:
// a vertex entry point reading one vec4 field from a uniform buffer
// bound at set 0, binding 0.
//
// ids: 1=void 2=float 3=vec4 4=struct{vec4} 5=ptr(Uniform,->4)
// 6=variable(Uniform) 7=fn type 8=main function 9=label
// 10=ptr(Uniform,->2) 11=int32 12=const int 0 13=access chain result
// 14=load result
func uniformBufferVertexShader() []byte {
	b := newWordBuilder(15)
	b.instr(module.OpCapability, 1)
	b.instr(module.OpMemoryModel, uint32(module.AddressingLogical), uint32(module.MemoryModelGLSL450))
	epWords := append([]uint32{uint32(module.ExecutionModelVertex), 8}, literalString("main")...)
	b.instr(module.OpEntryPoint, epWords...)

	b.instr(module.OpDecorate, 4, uint32(module.DecorationBlock))
	b.instr(module.OpMemberDecorate, 4, 0, uint32(module.DecorationOffset), 0)
	b.instr(module.OpDecorate, 6, uint32(module.DecorationBinding), 0)
	b.instr(module.OpDecorate, 6, uint32(module.DecorationDescriptorSet), 0)

	b.instr(module.OpTypeVoid, 1)
	b.instr(module.OpTypeFloat, 2, 32)
	b.instr(module.OpTypeVector, 3, 2, 4)
	b.instr(module.OpTypeStruct, 4, 3)
	b.instr(module.OpTypePointer, 5, uint32(module.StorageClassUniform), 4)
	b.instr(module.OpVariable, 5, 6, uint32(module.StorageClassUniform))
	b.instr(module.OpTypeFunction, 7, 1)
	b.instr(module.OpTypePointer, 10, uint32(module.StorageClassUniform), 2)
	b.instr(module.OpTypeInt, 11, 32, 0)
	b.instr(module.OpConstant, 11, 12, 0)

	b.instr(module.OpFunction, 1, 8, 0, 7)
	b.instr(module.OpLabel, 9)
	b.instr(module.OpAccessChain, 10, 13, 6, 12)
	b.instr(module.OpLoad, 2, 14, 13)
	b.instr(module.OpReturn)
	b.instr(module.OpFunctionEnd)
	return b.bytes()
}

// pushConstantFragmentShader builds a fragment entry point whose
// function loads a 64-byte push-constant block directly (no access
// chain — a direct OpLoad of the variable itself, the other shape the
// Function Body Scan must recognize).
//
// ids: 1=void 2=float 3=struct{[16]float} 4=ptr(PushConstant,->3)
// 5=variable(PushConstant) 6=fn type 7=main function 8=label
// 9=int32 10=const 16 11=array[16]float 13=load result(struct)
func pushConstantFragmentShader() []byte {
	b := newWordBuilder(14)
	b.instr(module.OpCapability, 1)
	b.instr(module.OpMemoryModel, uint32(module.AddressingLogical), uint32(module.MemoryModelGLSL450))
	epWords := append([]uint32{uint32(module.ExecutionModelFragment), 7}, literalString("main")...)
	b.instr(module.OpEntryPoint, epWords...)

	b.instr(module.OpMemberDecorate, 3, 0, uint32(module.DecorationOffset), 0)

	b.instr(module.OpTypeVoid, 1)
	b.instr(module.OpTypeFloat, 2, 32)
	b.instr(module.OpTypeInt, 9, 32, 0)
	b.instr(module.OpConstant, 9, 10, 16)
	b.instr(module.OpTypeArray, 11, 2, 10)
	b.instr(module.OpTypeStruct, 3, 11)
	b.instr(module.OpTypePointer, 4, uint32(module.StorageClassPushConstant), 3)
	b.instr(module.OpVariable, 4, 5, uint32(module.StorageClassPushConstant))
	b.instr(module.OpTypeFunction, 6, 1)

	b.instr(module.OpFunction, 1, 7, 0, 6)
	b.instr(module.OpLabel, 8)
	// direct load, no access chain: base = variable id 5 itself
	b.instr(module.OpLoad, 3, 13, 5)
	b.instr(module.OpReturn)
	b.instr(module.OpFunctionEnd)
	return b.bytes()
}
