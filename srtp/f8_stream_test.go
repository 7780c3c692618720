package srtp

import (
	"bytes"
	"testing"

	"github.com/lanikai/srtp/internal/blockcipher"
)

func TestF8StreamXORIsInvolution(t *testing.T) {
	key := make([]byte, 16)
	salt := make([]byte, 14)
	for i := range key {
		key[i] = byte(i + 1)
	}
	for i := range salt {
		salt[i] = byte(i + 100)
	}

	outer, err := blockcipher.NewAES(key)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}
	maskedKey := f8MaskedKey(key, salt)
	inner, err := blockcipher.NewAES(maskedKey)
	if err != nil {
		t.Fatalf("NewAES inner: %v", err)
	}

	ivF8 := make([]byte, 16)
	ivF8[0] = 0x80 // RTP version bits, which ivFormationF8 always zeroes
	copy(ivF8[1:12], []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	for i := 0; i < 4; i++ {
		ivF8[12+i] = byte(i)
	}

	plaintext := []byte("the quick brown fox jumps over the lazy dog!!!!")
	buf := append([]byte(nil), plaintext...)

	f8StreamXOR(outer, inner, ivF8, buf)
	if bytes.Equal(buf, plaintext) {
		t.Fatal("F8 stream did not change the buffer")
	}

	f8StreamXOR(outer, inner, ivF8, buf)
	if !bytes.Equal(buf, plaintext) {
		t.Fatal("applying the same F8 stream twice must restore the original plaintext")
	}
}

func TestF8MaskedKeyPadsSaltWith0x55(t *testing.T) {
	key := make([]byte, 16)
	salt := []byte{1, 2, 3} // shorter than key

	masked := f8MaskedKey(key, salt)
	if len(masked) != len(key) {
		t.Fatalf("expected masked key length %d, got %d", len(key), len(masked))
	}
	// key is all zero, so masked key equals m directly.
	want := []byte{1, 2, 3}
	for i, b := range want {
		if masked[i] != b {
			t.Fatalf("byte %d: got %x want %x", i, masked[i], b)
		}
	}
	for i := len(want); i < len(masked); i++ {
		if masked[i] != 0x55 {
			t.Fatalf("byte %d: expected 0x55 padding, got %x", i, masked[i])
		}
	}
}
