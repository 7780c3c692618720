// Package blockcipher wraps the block-cipher primitives SRTP policy can
// select (AES, Twofish) behind one narrow interface, so CounterStream and
// F8Stream don't need to know which algorithm backs a given context.
package blockcipher

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/twofish"
	errors "golang.org/x/xerrors"
)

// Cipher is the minimal block-cipher surface SRTP's counter-mode and F8
// keystream generators need: the block size, and single-block encryption.
// Both AES and Twofish use the same 128-bit block size in their SRTP
// profiles, but callers should not assume that.
type Cipher interface {
	BlockSize() int
	Encrypt(dst, src []byte)
}

type aesCipher struct {
	block cipher.Block
}

// NewAES constructs an AES block cipher keyed with key (16, 24, or 32
// bytes for AES-128/192/256).
func NewAES(key []byte) (Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Errorf("blockcipher: aes: %w", err)
	}
	return &aesCipher{block}, nil
}

func (c *aesCipher) BlockSize() int          { return c.block.BlockSize() }
func (c *aesCipher) Encrypt(dst, src []byte) { c.block.Encrypt(dst, src) }

type twofishCipher struct {
	block *twofish.Cipher
}

// NewTwofish constructs a Twofish block cipher keyed with key (16, 24, or
// 32 bytes).
func NewTwofish(key []byte) (Cipher, error) {
	block, err := twofish.NewCipher(key)
	if err != nil {
		return nil, errors.Errorf("blockcipher: twofish: %w", err)
	}
	return &twofishCipher{block}, nil
}

func (c *twofishCipher) BlockSize() int          { return c.block.BlockSize() }
func (c *twofishCipher) Encrypt(dst, src []byte) { c.block.Encrypt(dst, src) }
