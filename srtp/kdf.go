package srtp

import "github.com/lanikai/srtp/internal/blockcipher"

// Labels for the three key-derivation domains of RFC 3711 §4.3.
const (
	labelEncryption     = 0x00
	labelAuthentication = 0x01
	labelSalt           = 0x02
)

// deriveKey implements RFC 3711 §4.3: form an IV from label, index, and
// kdr, then run CounterStream keyed by masterCipher (already keyed with
// the master key) to fill an outLen-byte buffer. masterSalt must be at
// least 14 bytes.
func deriveKey(masterCipher blockcipher.Cipher, masterSalt []byte, label byte, index uint64, kdr uint64, outLen int) []byte {
	keyID := uint64(label) << 48
	if kdr != 0 {
		keyID |= index / kdr
	}

	iv := make([]byte, 16)
	copy(iv, masterSalt[:7])
	for i := 7; i <= 13; i++ {
		shift := uint(8 * (13 - i))
		iv[i] = masterSalt[i] ^ byte(keyID>>shift)
	}

	out := make([]byte, outLen)
	counterStreamXOR(masterCipher, iv, out)
	return out
}

// deriveSrtpKeys derives session encryption, authentication, and salt keys
// from the context's master key and master salt at the given 48-bit
// index, per RFC 3711 §4.3, and loads them into this context's cipher and
// MAC instances. It then zeroizes all master and transient session
// material in a fixed order: master key; session authentication key, once
// the MAC has absorbed it; session encryption key, once the cipher(s)
// have absorbed it; master salt.
//
// The session salt is the one piece of derived material that survives:
// CM and F8 IV formation need it for every packet (see context.go).
//
// deriveSrtpKeys must be called at most once per context. The master key
// is destroyed on the first call, so a second call would derive session
// keys from a zeroed master key.
func (c *CryptoContext) deriveSrtpKeys(index uint64) error {
	prfType := c.policy.EncryptionType
	if prfType == EncryptionNone {
		prfType = EncryptionAESCM
	}
	masterCipher, err := newBlockCipher(prfType, c.masterKey)
	if err != nil {
		return err
	}
	zeroize(c.masterKey)

	var encKey, authKey []byte
	if c.policy.EncryptionType != EncryptionNone {
		encKey = deriveKey(masterCipher, c.masterSalt, labelEncryption, index, c.kdr, c.policy.EncKeyLength)
	}
	if c.policy.AuthenticationType != AuthenticationNone {
		authKey = deriveKey(masterCipher, c.masterSalt, labelAuthentication, index, c.kdr, c.policy.AuthKeyLength)
	}
	c.sessionSalt = deriveKey(masterCipher, c.masterSalt, labelSalt, index, c.kdr, c.policy.SaltKeyLength)

	if c.policy.AuthenticationType != AuthenticationNone {
		mac, err := newMacAdapter(c.policy.AuthenticationType, authKey, c.policy.AuthTagLength)
		if err != nil {
			return err
		}
		c.mac = mac
	}
	zeroize(authKey)

	if c.policy.EncryptionType != EncryptionNone {
		if c.policy.EncryptionType.isF8() {
			maskedKey := f8MaskedKey(encKey, c.sessionSalt)
			innerCipher, err := newBlockCipher(c.policy.EncryptionType, maskedKey)
			if err != nil {
				return err
			}
			c.innerCipher = innerCipher
			zeroize(maskedKey)
		}
		cipher, err := newBlockCipher(c.policy.EncryptionType, encKey)
		if err != nil {
			return err
		}
		c.cipher = cipher
	}
	zeroize(encKey)

	zeroize(c.masterSalt)

	return nil
}
