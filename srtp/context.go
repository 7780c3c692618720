// Package srtp implements per-source SRTP cryptographic contexts: key
// derivation, packet protection and unprotection, replay detection, and
// roll-over-counter estimation, per RFC 3711.
package srtp

import (
	"crypto/subtle"

	"github.com/lanikai/srtp/internal/blockcipher"
	"github.com/lanikai/srtp/internal/logging"
	"github.com/lanikai/srtp/internal/packet"
	"github.com/lanikai/srtp/internal/rtpheader"
)

var log = logging.DefaultLogger.WithTag("srtp")

type contextState int

const (
	stateFresh contextState = iota
	stateReady
)

// CryptoContext protects a single SSRC's RTP stream. It is single-owner,
// single-threaded: its index state (roll-over counter, last sequence
// number, replay mask) is mutated by Protect/Unprotect without locking. Multiple
// contexts for different SSRCs may run on different goroutines
// concurrently with no coordination required.
type CryptoContext struct {
	ssrc uint32
	roc  uint32
	kdr  uint64

	masterKey  []byte
	masterSalt []byte
	policy     Policy

	state contextState

	sl    uint16
	slSet bool

	replay replayWindow

	sessionSalt []byte
	cipher      blockcipher.Cipher
	innerCipher blockcipher.Cipher // F8 only
	mac         *macAdapter
}

// New constructs a Fresh CryptoContext for ssrc, with initial roll-over
// counter roc and key-derivation rate kdr (0 disables periodic
// rederivation), using the given master key and salt material. It validates
// policy's selectors and lengths; the lengths of masterKey and masterSalt
// are not checked against it. It copies masterKey and masterSalt; the caller's slices are not
// retained and may be reused or zeroized by the caller immediately after
// this call returns.
func New(ssrc uint32, roc uint32, kdr uint64, masterKey, masterSalt []byte, policy Policy) (*CryptoContext, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	return &CryptoContext{
		ssrc:       ssrc,
		roc:        roc,
		kdr:        kdr,
		masterKey:  append([]byte(nil), masterKey...),
		masterSalt: append([]byte(nil), masterSalt...),
		policy:     policy,
		state:      stateFresh,
	}, nil
}

// DeriveSRTPKeys transitions the context from Fresh to Ready, deriving
// session keys at the given 48-bit index and zeroizing master material.
// It must be called exactly once; see deriveSrtpKeys in kdf.go for the
// zeroization ordering this guarantees.
func (c *CryptoContext) DeriveSRTPKeys(index uint64) error {
	if err := c.deriveSrtpKeys(index); err != nil {
		return err
	}
	c.state = stateReady
	return nil
}

// DeriveContext returns a new Fresh context for a different ssrc/roc/kdr,
// sharing this context's master key and salt. It must be called before
// this context's DeriveSRTPKeys, since that call zeroizes the master
// material the fork needs to copy. Calling it afterward returns
// ErrParentAlreadyDerived.
func (c *CryptoContext) DeriveContext(ssrc uint32, roc uint32, kdr uint64) (*CryptoContext, error) {
	if c.state != stateFresh {
		return nil, ErrParentAlreadyDerived
	}
	return New(ssrc, roc, kdr, c.masterKey, c.masterSalt, c.policy)
}

// AuthTagLength returns the number of trailing tag bytes Protect appends
// and Unprotect strips.
func (c *CryptoContext) AuthTagLength() int {
	if c.policy.AuthenticationType == AuthenticationNone {
		return 0
	}
	return c.policy.AuthTagLength
}

// MKILength is always 0: this package reserves but never emits an MKI
// field.
func (c *CryptoContext) MKILength() int { return 0 }

// SSRC returns the synchronization source this context protects.
func (c *CryptoContext) SSRC() uint32 { return c.ssrc }

// ROC returns the current roll-over counter.
func (c *CryptoContext) ROC() uint32 { return c.roc }

// SetROC overrides the roll-over counter, e.g. when resynchronizing from
// an out-of-band signal.
func (c *CryptoContext) SetROC(roc uint32) { c.roc = roc }

// Protect encrypts and authenticates the RTP packet in buf in place,
// appending an authentication tag if the policy enables one. buf's
// logical length is extended by AuthTagLength() bytes on return.
func (c *CryptoContext) Protect(buf *packet.Buffer) error {
	if c.state != stateReady {
		return ErrFreshContext
	}

	region := buf.Region(buf.Offset(), buf.Len()-buf.Offset())
	hdr, hdrLen, err := rtpheader.Parse(region)
	if err != nil {
		return err
	}
	payload := region[hdrLen:]
	index := (uint64(c.roc) << 16) | uint64(hdr.Sequence)

	if err := c.encrypt(region[:hdrLen], payload, hdr, index); err != nil {
		return err
	}

	if c.mac != nil {
		var rocBytes [4]byte
		putUint32BE(rocBytes[:], c.roc)
		tag := c.mac.Tag(region, rocBytes[:])
		buf.Append(tag[:c.policy.AuthTagLength])
	}

	if hdr.Sequence == 0xFFFF {
		c.roc++
		log.Debug("ssrc %d: ROC incremented to %d on sequence wrap", c.ssrc, c.roc)
	}
	return nil
}

// Unprotect verifies and decrypts the RTP packet in buf in place. It
// returns true and mutates buf (removing the auth tag, decrypting the
// payload) and the context's replay/ROC state only if the packet is
// accepted; on rejection buf and all context state are left unchanged.
func (c *CryptoContext) Unprotect(buf *packet.Buffer) (bool, error) {
	if c.state != stateReady {
		return false, ErrFreshContext
	}

	region := buf.Region(buf.Offset(), buf.Len()-buf.Offset())
	hdr, hdrLen, err := rtpheader.Parse(region)
	if err != nil {
		return false, err
	}
	s := hdr.Sequence
	sl := c.sl
	if !c.slSet {
		sl = s
	}

	guessedIndex, guessedROC := guessIndex(c.roc, sl, s)
	if diff := int64(guessedROC) - int64(c.roc); diff > 1 || diff < -1 {
		log.Warn("ssrc %d: ROC estimate jumped from %d to %d (sequence %d, last %d)", c.ssrc, c.roc, guessedROC, s, sl)
	}
	if !c.replay.check(guessedIndex) {
		return false, &ReplayError{Index: guessedIndex}
	}

	if c.mac != nil {
		tagLen := c.policy.AuthTagLength
		if buf.Len()-buf.Offset() < hdrLen+tagLen {
			return false, &AuthError{Index: guessedIndex}
		}
		tag := make([]byte, tagLen)
		buf.ReadRegion(buf.Len()-tagLen, tagLen, tag)
		buf.Shrink(tagLen)

		region = buf.Region(buf.Offset(), buf.Len()-buf.Offset())
		var rocBytes [4]byte
		putUint32BE(rocBytes[:], guessedROC)
		want := c.mac.Tag(region, rocBytes[:])
		if subtle.ConstantTimeCompare(want[:tagLen], tag) != 1 {
			buf.Append(tag)
			return false, &AuthError{Index: guessedIndex}
		}
	}

	payload := region[hdrLen:]
	if err := c.encrypt(region[:hdrLen], payload, hdr, guessedIndex); err != nil {
		return false, err
	}

	c.replay.update(guessedIndex)
	c.sl = sl
	c.slSet = true
	if s > c.sl {
		c.sl = s
	}
	if guessedROC > c.roc {
		c.roc = guessedROC
		c.sl = s
		log.Debug("ssrc %d: ROC promoted to %d", c.ssrc, c.roc)
	}
	return true, nil
}

// encrypt dispatches on the policy's encryption kind and XORs the
// matching keystream into payload in place. header is the raw RTP header
// bytes (needed for F8 IV formation); index is the 48-bit packet index to
// use for CM IV formation.
func (c *CryptoContext) encrypt(header, payload []byte, hdr rtpheader.Header, index uint64) error {
	switch c.policy.EncryptionType {
	case EncryptionNone:
		return nil
	case EncryptionAESCM, EncryptionTwofishCM:
		iv := ivFormationCM(c.sessionSalt, hdr.SSRC, index)
		counterStreamXOR(c.cipher, iv, payload)
		return nil
	case EncryptionAESF8, EncryptionTwofishF8:
		iv := ivFormationF8(header, uint32(index>>16))
		f8StreamXOR(c.cipher, c.innerCipher, iv, payload)
		return nil
	default:
		return errUnsupportedEncryption(c.policy.EncryptionType)
	}
}

// ivFormationCM builds the 16-byte counter-mode IV of RFC 3711 §4.1.1.
func ivFormationCM(sessionSalt []byte, ssrc uint32, index uint64) []byte {
	iv := make([]byte, 16)
	copy(iv, sessionSalt[:4])

	var ssrcBytes [4]byte
	putUint32BE(ssrcBytes[:], ssrc)
	for i := 0; i < 4; i++ {
		iv[4+i] = ssrcBytes[i] ^ sessionSalt[4+i]
	}

	var indexBytes [6]byte
	indexBytes[0] = byte(index >> 40)
	indexBytes[1] = byte(index >> 32)
	indexBytes[2] = byte(index >> 24)
	indexBytes[3] = byte(index >> 16)
	indexBytes[4] = byte(index >> 8)
	indexBytes[5] = byte(index)
	for i := 0; i < 6; i++ {
		iv[8+i] = indexBytes[i] ^ sessionSalt[8+i]
	}
	return iv
}

// ivFormationF8 builds the 16-byte F8-mode IV of RFC 3711 §4.1.2.2: the
// first 12 bytes of the RTP header with byte 0 zeroed, followed by the ROC
// big-endian.
func ivFormationF8(header []byte, roc uint32) []byte {
	iv := make([]byte, 16)
	copy(iv, header[:12])
	iv[0] = 0x00
	putUint32BE(iv[12:16], roc)
	return iv
}

func putUint32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
