package srtp

import (
	"github.com/lanikai/srtp/internal/blockcipher"
)

// f8Mask is the padding byte used to construct m, the value XORed with
// the session encryption key to produce the inner cipher's key. See RFC
// 3711 §4.1.2.
const f8Mask = 0x55

// f8MaskedKey computes the key used to initialize the F8 inner cipher:
// encKey XOR m, where m is the session salt right-padded with 0x55 up to
// the length of encKey. This XOR happens once, during key derivation
// (see deriveSrtpKeys in kdf.go); the resulting key schedule is reused for
// every packet's IV whitening step.
func f8MaskedKey(encKey, salt []byte) []byte {
	m := padWithByte(salt, len(encKey), f8Mask)
	masked := make([]byte, len(encKey))
	for i := range encKey {
		masked[i] = encKey[i] ^ m[i]
	}
	return masked
}

func padWithByte(b []byte, size int, pad byte) []byte {
	out := make([]byte, size)
	copy(out, b)
	for i := len(b); i < size; i++ {
		out[i] = pad
	}
	return out
}

// f8StreamXOR produces len(dst) bytes of SRTP F8-mode keystream (RFC 3711
// §4.1.2) and XORs it into dst in place.
//
// outer is keyed with the session encryption key; inner is keyed with the
// masked key from f8MaskedKey, computed once at key-derivation time. ivF8
// is the 16-byte per-packet F8 IV from ivFormationF8 (see context.go).
//
// Per packet, the per-packet IV is first whitened by one inner-cipher
// block encryption to produce IV': IV' = inner.Encrypt(ivF8). The
// keystream is then the standard output-feedback-like chain
//
//	S(-1) = 0
//	S(j)  = outer.Encrypt(IV' XOR S(j-1) XOR counter(j)),  j = 0, 1, ...
//
// where counter(j) occupies the low 4 bytes of a 16-byte, otherwise-zero
// block, big-endian.
func f8StreamXOR(outer, inner blockcipher.Cipher, ivF8 []byte, dst []byte) {
	blockSize := outer.BlockSize()

	ivPrime := make([]byte, blockSize)
	inner.Encrypt(ivPrime, ivF8)

	prev := make([]byte, blockSize)  // S(j-1), starts at S(-1) = 0
	block := make([]byte, blockSize) // scratch for IV' XOR S(j-1) XOR counter
	keystream := make([]byte, blockSize)

	var counter uint32
	for offset := 0; offset < len(dst); offset += blockSize {
		copy(block, ivPrime)
		xorInPlace(block, prev)
		xorCounter(block, counter)

		outer.Encrypt(keystream, block)

		n := blockSize
		if remaining := len(dst) - offset; remaining < n {
			n = remaining
		}
		for i := 0; i < n; i++ {
			dst[offset+i] ^= keystream[i]
		}

		copy(prev, keystream)
		counter++
	}
}

func xorInPlace(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// xorCounter XORs a big-endian 32-bit counter into the low 4 bytes of a
// 16-byte block.
func xorCounter(block []byte, counter uint32) {
	n := len(block)
	block[n-4] ^= byte(counter >> 24)
	block[n-3] ^= byte(counter >> 16)
	block[n-2] ^= byte(counter >> 8)
	block[n-1] ^= byte(counter)
}
