package decode

import "testing"

func TestNewWordReaderLittleEndian(t *testing.T) {
	buf := minimalVertexShader()
	r, perr := newWordReader(buf)
	if perr != nil {
		t.Fatalf("newWordReader: %v", perr)
	}
	if r.words[0] != spirvMagic {
		t.Errorf("words[0] = 0x%08x, want magic", r.words[0])
	}
}

func TestNewWordReaderBigEndian(t *testing.T) {
	little := minimalVertexShader()
	big := make([]byte, len(little))
	for i := 0; i < len(little); i += 4 {
		big[i], big[i+1], big[i+2], big[i+3] = little[i+3], little[i+2], little[i+1], little[i]
	}
	r, perr := newWordReader(big)
	if perr != nil {
		t.Fatalf("newWordReader: %v", perr)
	}
	if r.words[0] != spirvMagic {
		t.Errorf("words[0] = 0x%08x, want magic", r.words[0])
	}
}

func TestNewWordReaderTruncated(t *testing.T) {
	_, perr := newWordReader([]byte{0x03, 0x02, 0x23, 0x07})
	if perr == nil || perr.Kind != Truncated {
		t.Fatalf("expected Truncated, got %v", perr)
	}
}

func TestNewWordReaderBadMagic(t *testing.T) {
	buf := minimalVertexShader()
	buf[0] = 0xff
	_, perr := newWordReader(buf)
	if perr == nil || perr.Kind != BadMagic {
		t.Fatalf("expected BadMagic, got %v", perr)
	}
}

func TestNewWordReaderNotWordAligned(t *testing.T) {
	buf := minimalVertexShader()
	_, perr := newWordReader(buf[:len(buf)-1])
	if perr == nil || perr.Kind != Truncated {
		t.Fatalf("expected Truncated, got %v", perr)
	}
}
