package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Verification errors.
var (
	ErrBadSignature = errors.New("signature verification failed")
	ErrBadPublicKey = errors.New("malformed public key")
)

// PublicKey is a signer identity. Only ed25519 keys are supported.
type PublicKey []byte

// String returns the key's hex encoding.
func (k PublicKey) String() string {
	return hex.EncodeToString(k)
}

// Equal reports whether two keys are the same.
func (k PublicKey) Equal(other PublicKey) bool {
	return ed25519.PublicKey(k).Equal(ed25519.PublicKey(other))
}

// ParsePublicKey parses a hex-encoded ed25519 public key.
func ParsePublicKey(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPublicKey, err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBadPublicKey, len(b), ed25519.PublicKeySize)
	}
	return PublicKey(b), nil
}

// Digest computes the BLAKE2b-256 request digest over the canonical signed
// bytes, i.e. the request serialized with its signature field zeroed.
func Digest(signedBytes []byte) []byte {
	sum := blake2b.Sum256(signedBytes)
	return sum[:]
}

// Authenticator verifies that a request was signed by the claimed signer.
// Implementations must be safe for concurrent use.
type Authenticator interface {
	// Verify checks signature over the canonical signed bytes of a request
	// against the signer's public key. A nil return means the signer
	// identity is authentic.
	Verify(signedBytes, signature []byte, signer PublicKey) error
}

// Ed25519Verifier verifies BLAKE2b request digests with ed25519.
type Ed25519Verifier struct{}

// Verify implements Authenticator.
func (Ed25519Verifier) Verify(signedBytes, signature []byte, signer PublicKey) error {
	if len(signer) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBadPublicKey, len(signer), ed25519.PublicKeySize)
	}
	if !ed25519.Verify(ed25519.PublicKey(signer), Digest(signedBytes), signature) {
		return ErrBadSignature
	}
	return nil
}

// Sign produces a signature a [Ed25519Verifier] accepts. Provided for
// clients and tests; the registry itself never signs anything.
func Sign(priv ed25519.PrivateKey, signedBytes []byte) []byte {
	return ed25519.Sign(priv, Digest(signedBytes))
}

// AllowAll accepts every request. For tests and local development only.
type AllowAll struct{}

// Verify implements Authenticator and always succeeds.
func (AllowAll) Verify(_, _ []byte, _ PublicKey) error { return nil }

// Compile-time interface satisfaction checks.
var (
	_ Authenticator = Ed25519Verifier{}
	_ Authenticator = AllowAll{}
)
