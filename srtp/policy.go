package srtp

// EncryptionType selects the confidentiality transform a Policy applies.
// See https://tools.ietf.org/html/rfc3711#section-4.1.
type EncryptionType int

const (
	EncryptionNone EncryptionType = iota
	EncryptionAESCM
	EncryptionAESF8
	EncryptionTwofishCM
	EncryptionTwofishF8
)

func (e EncryptionType) String() string {
	switch e {
	case EncryptionNone:
		return "none"
	case EncryptionAESCM:
		return "AES-CM"
	case EncryptionAESF8:
		return "AES-F8"
	case EncryptionTwofishCM:
		return "Twofish-CM"
	case EncryptionTwofishF8:
		return "Twofish-F8"
	default:
		return "unknown"
	}
}

func (e EncryptionType) isF8() bool {
	return e == EncryptionAESF8 || e == EncryptionTwofishF8
}

func (e EncryptionType) isTwofish() bool {
	return e == EncryptionTwofishCM || e == EncryptionTwofishF8
}

// AuthenticationType selects the integrity transform a Policy applies.
// See https://tools.ietf.org/html/rfc3711#section-4.2.
type AuthenticationType int

const (
	AuthenticationNone AuthenticationType = iota
	AuthenticationHMACSHA1
	AuthenticationSkein
)

func (a AuthenticationType) String() string {
	switch a {
	case AuthenticationNone:
		return "none"
	case AuthenticationHMACSHA1:
		return "HMAC-SHA1"
	case AuthenticationSkein:
		return "Skein-MAC"
	default:
		return "unknown"
	}
}

// Policy is the immutable set of algorithm selectors and key/tag lengths
// shared by all CryptoContexts that protect the same stream. A Policy is
// never mutated after construction and may be shared across contexts.
type Policy struct {
	EncryptionType     EncryptionType
	AuthenticationType AuthenticationType

	// EncKeyLength is the session encryption key length in bytes
	// (typically 16 for AES-128/Twofish-128, 32 for AES-256).
	EncKeyLength int

	// SaltKeyLength is the session salt length in bytes (typically 14).
	SaltKeyLength int

	// AuthKeyLength is the session authentication key length in bytes.
	AuthKeyLength int

	// AuthTagLength is the length, in bytes, that the MAC is truncated to
	// when appended to or verified against a packet.
	AuthTagLength int
}

// DefaultPolicy returns the RFC 3711 §8.2 default parameters: AES-CM-128
// encryption, HMAC-SHA1-80 authentication.
func DefaultPolicy() Policy {
	return Policy{
		EncryptionType:     EncryptionAESCM,
		AuthenticationType: AuthenticationHMACSHA1,
		EncKeyLength:       16,
		SaltKeyLength:      14,
		AuthKeyLength:      20,
		AuthTagLength:      10,
	}
}

func (p Policy) validate() error {
	switch p.EncryptionType {
	case EncryptionNone, EncryptionAESCM, EncryptionAESF8, EncryptionTwofishCM, EncryptionTwofishF8:
	default:
		return errUnsupportedEncryption(p.EncryptionType)
	}
	switch p.AuthenticationType {
	case AuthenticationNone, AuthenticationHMACSHA1, AuthenticationSkein:
	default:
		return errUnsupportedAuthentication(p.AuthenticationType)
	}
	if p.EncryptionType != EncryptionNone && p.EncKeyLength <= 0 {
		return ErrUnsupportedPolicy
	}
	if p.AuthenticationType != AuthenticationNone && (p.AuthKeyLength <= 0 || p.AuthTagLength <= 0) {
		return ErrUnsupportedPolicy
	}
	return nil
}
