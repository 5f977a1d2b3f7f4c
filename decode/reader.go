package decode

import "encoding/binary"

const spirvMagic uint32 = 0x07230203

// headerWords is the number of 32-bit words in the fixed SPIR-V header:
// magic, version, generator magic, id bound, reserved (schema).
const headerWords = 5

// header is the decoded form of a SPIR-V module's fixed 5-word header.
type header struct {
	version   uint32
	generator uint32
	bound     uint32
}

// wordReader turns a raw byte buffer into a stream of native-endian
// 32-bit words, detecting byte order from the magic number: a
// big-endian producer writes the same magic value with its bytes
// swapped, so trying both orders and keeping whichever one produces the
// canonical magic recovers the module's byte order without a separate
// flag.
type wordReader struct {
	words []uint32
}

func newWordReader(buf []byte) (*wordReader, *ParseError) {
	if len(buf) < headerWords*4 {
		return nil, newError(Truncated, len(buf),
			"buffer has %d bytes, need at least %d for the header", len(buf), headerWords*4)
	}
	if len(buf)%4 != 0 {
		return nil, newError(Truncated, len(buf), "buffer length %d is not a multiple of 4", len(buf))
	}

	order := binary.ByteOrder(binary.LittleEndian)
	if binary.LittleEndian.Uint32(buf[0:4]) != spirvMagic {
		if binary.BigEndian.Uint32(buf[0:4]) == spirvMagic {
			order = binary.BigEndian
		} else {
			return nil, newError(BadMagic, 0, "bad magic number 0x%08x", binary.LittleEndian.Uint32(buf[0:4]))
		}
	}

	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = order.Uint32(buf[i*4 : i*4+4])
	}
	return &wordReader{words: words}, nil
}

func (r *wordReader) readHeader() header {
	return header{
		version:   r.words[1],
		generator: r.words[2],
		bound:     r.words[3],
		// words[4] is the reserved schema word; SPIR-V requires it be 0
		// but no known producer sets it, so it is read and discarded.
	}
}
