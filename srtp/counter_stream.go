package srtp

import (
	"crypto/cipher"

	"github.com/lanikai/srtp/internal/blockcipher"
)

// counterStreamXOR produces len(dst) bytes of AES/Twofish counter-mode
// keystream from block, keyed and IV'd as described by iv, and XORs them
// into dst in place. iv must be 16 bytes; bytes 14-15 are the big-endian
// block counter, which cipher.NewCTR increments internally after each
// block — this is exactly the "treat the last two bytes of the IV as a
// counter" construction of RFC 3711 §4.1.1/§4.3.3.
//
// Used both to XOR a packet payload (dst already holds ciphertext or
// plaintext) and to fill a key-derivation buffer (dst is zeroed, so XOR
// degenerates to assignment — see deriveKey in kdf.go).
func counterStreamXOR(block blockcipher.Cipher, iv []byte, dst []byte) {
	stream := cipher.NewCTR(blockAdapter{block}, iv)
	stream.XORKeyStream(dst, dst)
}

// blockAdapter satisfies crypto/cipher.Block on top of the narrower
// blockcipher.Cipher interface. SRTP's counter mode never decrypts a
// block directly (decryption is the same keystream XOR as encryption), so
// Decrypt is never called in practice, but cipher.Block requires it.
type blockAdapter struct {
	blockcipher.Cipher
}

func (b blockAdapter) Decrypt(dst, src []byte) {
	b.Encrypt(dst, src)
}
