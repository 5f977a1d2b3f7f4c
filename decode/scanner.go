package decode

import "github.com/gospv/spv/module"

// scanInstructions walks the word stream once, from the first word past
// the header, splitting it into the flat instruction index the Section
// Decoder then walks section by section. SPIR-V has no instruction
// delimiter beyond the word count packed into each instruction's own
// header word, so this single linear pass is the only way to find
// instruction boundaries before any section-specific interpretation
// begins.
func scanInstructions(words []uint32) ([]module.Instruction, *ParseError) {
	var instrs []module.Instruction
	i := headerWords
	for i < len(words) {
		wordOffset := i
		first := words[i]
		wordCount := uint16(first >> 16)
		opcode := module.Opcode(first & 0xffff)
		if wordCount == 0 {
			return nil, newError(StructuralError, wordOffset*4,
				"instruction at word %d has a zero word count", wordOffset)
		}
		if i+int(wordCount) > len(words) {
			return nil, newError(Truncated, wordOffset*4,
				"instruction at word %d (%s) declares %d words but only %d remain",
				wordOffset, opcode, wordCount, len(words)-i)
		}
		instrs = append(instrs, module.Instruction{
			Opcode:    opcode,
			WordCount: wordCount,
			Words:     words[i : i+int(wordCount) : i+int(wordCount)],
		})
		i += int(wordCount)
	}
	return instrs, nil
}

// readLiteralString decodes a null-terminated, nul-padded UTF-8 string
// literal starting at words[start], returning the string and the number
// of words it occupies (including padding to the next word boundary).
func readLiteralString(words []uint32, start int) (string, int) {
	var buf []byte
	wordLen := 0
	for i := start; i < len(words); i++ {
		wordLen++
		w := words[i]
		bytes4 := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
		terminated := false
		for _, b := range bytes4 {
			if b == 0 {
				terminated = true
				break
			}
			buf = append(buf, b)
		}
		if terminated {
			break
		}
	}
	return string(buf), wordLen
}
