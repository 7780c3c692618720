package srtp

import (
	"github.com/lanikai/srtp/internal/blockcipher"
)

// newBlockCipher constructs the block cipher backend named by enc, keyed
// with key. It is the only place Policy.EncryptionType is translated into
// a concrete internal/blockcipher.Cipher.
func newBlockCipher(enc EncryptionType, key []byte) (blockcipher.Cipher, error) {
	switch enc {
	case EncryptionAESCM, EncryptionAESF8:
		return blockcipher.NewAES(key)
	case EncryptionTwofishCM, EncryptionTwofishF8:
		return blockcipher.NewTwofish(key)
	case EncryptionNone:
		return nil, nil
	default:
		return nil, errUnsupportedEncryption(enc)
	}
}
