package srtp

import (
	"crypto/hmac"
	"crypto/sha1"
	"hash"

	"github.com/enceve/crypto/skein"
)

// macAdapter computes a packet authentication tag over an arbitrary byte
// region. For HMAC-SHA1 the tag is truncated to AuthTagLength where it's
// used (in context.go), since crypto/hmac always produces a full 20-byte
// output. Skein-MAC is different: its output length is a parameter of the
// compression function itself, so AuthTagLength is threaded into the hash
// construction at newMacAdapter time and Tag already returns exactly
// AuthTagLength bytes.
type macAdapter struct {
	newHash func() hash.Hash
}

// newMacAdapter builds the MAC backend named by auth, keyed with key.
// tagLength is the policy's AuthTagLength in bytes. HMAC-SHA1 uses
// crypto/hmac and crypto/sha1 directly and ignores tagLength (Tag's caller
// truncates). Skein-MAC uses enceve/crypto/skein, which is not part of
// golang.org/x/crypto but is the only maintained Go implementation of the
// algorithm; per RFC 3711 §4.3 it runs as Skein-512 with a MAC output
// length in bits equal to 8*tagLength.
func newMacAdapter(auth AuthenticationType, key []byte, tagLength int) (*macAdapter, error) {
	switch auth {
	case AuthenticationHMACSHA1:
		k := append([]byte(nil), key...)
		return &macAdapter{newHash: func() hash.Hash {
			return hmac.New(sha1.New, k)
		}}, nil
	case AuthenticationSkein:
		k := append([]byte(nil), key...)
		return &macAdapter{newHash: func() hash.Hash {
			return skein.New512(k, tagLength)
		}}, nil
	case AuthenticationNone:
		return nil, nil
	default:
		return nil, errUnsupportedAuthentication(auth)
	}
}

// Tag returns the MAC over the concatenation of parts, written to the
// underlying hash in order without an intermediate copy.
func (m *macAdapter) Tag(parts ...[]byte) []byte {
	h := m.newHash()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
