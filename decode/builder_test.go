package decode

import (
	"encoding/binary"

	"github.com/gospv/spv/module"
)

// wordBuilder assembles a minimal, valid SPIR-V word stream for tests.
// It is deliberately not exported product code: emitting SPIR-V is out
// of scope for this module, so this exists solely to fabricate test
// fixtures the way a real compiler's output would be shaped, without
// needing an actual SPIR-V toolchain in the test environment.
type wordBuilder struct {
	words []uint32
}

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

// literalString encodes s the way SPIR-V string literals are packed:
// UTF-8 bytes, a null terminator, padded to a word boundary.
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

// minimalVertexShader builds a module with one vertex entry point, no
// interesting resources: OpCapability Shader, OpMemoryModel, one
// OpEntryPoint with an empty function body.
func minimalVertexShader() []byte {
	// ids: 1=void, 2=fn type, 3=main function, 4=entry label
	b := newWordBuilder(5)
	b.instr(module.OpCapability, 1) // Shader
	b.instr(module.OpMemoryModel, uint32(module.AddressingLogical), uint32(module.MemoryModelGLSL450))
	epWords := append([]uint32{uint32(module.ExecutionModelVertex), 3}, literalString("main")...)
	b.instr(module.OpEntryPoint, epWords...)
	b.instr(module.OpTypeVoid, 1)
	b.instr(module.OpTypeFunction, 2, 1)
	b.instr(module.OpFunction, 1, 3, 0, 2)
	b.instr(module.OpLabel, 4)
	b.instr(module.OpReturn)
	b.instr(module.OpFunctionEnd)
	return b.bytes()
}

// uniformBufferVertexShader builds a module with one vertex entry point
// that reads a single vec4 field out of a uniform-buffer-backed struct
// bound at set 0, binding 0 — the concrete scenario spec.md's testable
// properties describe for a minimal uniform buffer binding.
//
// ids: 1=void 2=float 3=vec4 4=struct{vec4} 5=ptr(Uniform,->4)
// 6=variable(Uniform) 7=fn type 8=main function 9=label
// 10=ptr(Uniform,->2) 11=int32 12=const int 0 13=access chain result
// 14=load result
func uniformBufferVertexShader() []byte {
	b := newWordBuilder(15)
	b.instr(module.OpCapability, 1) // Shader
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
