package srtp

import (
	"fmt"

	errors "golang.org/x/xerrors"
)

// ErrUnsupportedPolicy is returned from New when a Policy names an
// encryption or authentication kind this package does not implement.
var ErrUnsupportedPolicy = errors.New("srtp: unsupported policy")

// ErrFreshContext is returned when Protect or Unprotect is called before
// DeriveSRTPKeys has transitioned the context out of the Fresh state.
var ErrFreshContext = errors.New("srtp: context not ready: call DeriveSRTPKeys before Protect/Unprotect")

// ErrParentAlreadyDerived is returned by DeriveContext when the parent
// context's master key material has already been zeroized by a prior
// DeriveSRTPKeys call. Forking must happen before the parent derives its
// session keys; see the "fork before derive" precondition on
// CryptoContext.DeriveContext.
var ErrParentAlreadyDerived = errors.New("srtp: cannot fork context after DeriveSRTPKeys")

func errUnsupportedEncryption(e EncryptionType) error {
	return errors.Errorf("%w: encryption type %s", ErrUnsupportedPolicy, e)
}

func errUnsupportedAuthentication(a AuthenticationType) error {
	return errors.Errorf("%w: authentication type %s", ErrUnsupportedPolicy, a)
}

// ReplayError reports that Unprotect rejected a packet because its index
// was outside the replay window's acceptance range or had already been
// seen. Context state, including the replay mask, is left unchanged.
type ReplayError struct {
	Index uint64
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("srtp: replay rejected: index %d", e.Index)
}

// AuthError reports that Unprotect's MAC verification failed after the
// replay check passed. Context state, including the replay mask, is left
// unchanged — a forged packet must not be able to close off a future real
// one.
type AuthError struct {
	Index uint64
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("srtp: authentication failed: index %d", e.Index)
}
