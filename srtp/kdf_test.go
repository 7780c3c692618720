package srtp

import (
	"bytes"
	"testing"

	"github.com/lanikai/srtp/internal/blockcipher"
)

func TestDeriveKeyIVFormation(t *testing.T) {
	masterSalt := make([]byte, 14)
	for i := range masterSalt {
		masterSalt[i] = byte(i + 1)
	}
	masterKey := make([]byte, 16)
	cipher, err := blockcipher.NewAES(masterKey)
	if err != nil {
		t.Fatalf("NewAES: %v", err)
	}

	// KDR = 0: key_id = label << 48, independent of index.
	k1 := deriveKey(cipher, masterSalt, labelEncryption, 0, 0, 16)
	k2 := deriveKey(cipher, masterSalt, labelEncryption, 12345, 0, 16)
	if !bytes.Equal(k1, k2) {
		t.Fatal("with kdr=0, derived key must not depend on index")
	}

	// Different labels must produce different keys.
	authKey := deriveKey(cipher, masterSalt, labelAuthentication, 0, 0, 16)
	if bytes.Equal(k1, authKey) {
		t.Fatal("encryption and authentication labels must derive different keys")
	}
}

func TestDeriveKeyRespectsKDR(t *testing.T) {
	masterSalt := make([]byte, 14)
	masterKey := make([]byte, 16)
	cipher, _ := blockcipher.NewAES(masterKey)

	kdr := uint64(1000)
	a := deriveKey(cipher, masterSalt, labelSalt, 500, kdr, 14)  // index/kdr = 0
	b := deriveKey(cipher, masterSalt, labelSalt, 1500, kdr, 14) // index/kdr = 1
	if bytes.Equal(a, b) {
		t.Fatal("keys derived on either side of a KDR boundary must differ")
	}

	c := deriveKey(cipher, masterSalt, labelSalt, 999, kdr, 14) // still index/kdr = 0
	if !bytes.Equal(a, c) {
		t.Fatal("keys derived within the same KDR interval must match")
	}
}

func TestDeriveSrtpKeysSetsUpCipherAndMac(t *testing.T) {
	ctx, err := New(1, 0, 0, rfc3711MasterKey(t), rfc3711MasterSalt(t), DefaultPolicy())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ctx.DeriveSRTPKeys(0); err != nil {
		t.Fatalf("DeriveSRTPKeys: %v", err)
	}
	if ctx.cipher == nil {
		t.Fatal("expected cipher to be set up")
	}
	if ctx.mac == nil {
		t.Fatal("expected mac to be set up")
	}
	if len(ctx.sessionSalt) != DefaultPolicy().SaltKeyLength {
		t.Fatalf("expected session salt length %d, got %d", DefaultPolicy().SaltKeyLength, len(ctx.sessionSalt))
	}
}

func TestDeriveSrtpKeysF8SetsUpInnerCipher(t *testing.T) {
	policy := DefaultPolicy()
	policy.EncryptionType = EncryptionAESF8

	ctx, err := New(1, 0, 0, rfc3711MasterKey(t), rfc3711MasterSalt(t), policy)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ctx.DeriveSRTPKeys(0); err != nil {
		t.Fatalf("DeriveSRTPKeys: %v", err)
	}
	if ctx.innerCipher == nil {
		t.Fatal("expected F8 inner cipher to be set up")
	}
}
