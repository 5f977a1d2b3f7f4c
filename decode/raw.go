package decode

import "github.com/gospv/spv/module"

// Header is the decoded form of a SPIR-V module's fixed header, exposed
// for callers that want it without running the full Section Decoder —
// namely the disassembler, which prints it verbatim and then walks
// instructions on its own rather than through Parse's semantic passes.
type Header struct {
	Version   uint32
	Generator uint32
	Bound     uint32
}

// ScanRaw reads the header and splits the word stream into instructions
// without any of Parse's section-by-section interpretation. It exists so
// tools like a disassembler can reuse the Word Reader and Instruction
// Scanner instead of re-parsing the byte stream by hand, while printing
// every instruction exactly as it appears rather than the subset Parse
// retains.
func ScanRaw(buf []byte) (Header, []module.Instruction, *ParseError) {
	reader, perr := newWordReader(buf)
	if perr != nil {
		return Header{}, nil, perr
	}
	hdr := reader.readHeader()
	instrs, perr := scanInstructions(reader.words)
	if perr != nil {
		return Header{}, nil, perr
	}
	return Header{Version: hdr.version, Generator: hdr.generator, Bound: hdr.bound}, instrs, nil
}
