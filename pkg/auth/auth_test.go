package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"
)

func TestEd25519Verifier(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	msg := []byte("route create request with zeroed signature")
	sig := Sign(priv, msg)

	v := Ed25519Verifier{}

	t.Run("Valid", func(t *testing.T) {
		if err := v.Verify(msg, sig, PublicKey(pub)); err != nil {
			t.Errorf("Verify() error = %v", err)
		}
	})

	t.Run("TamperedMessage", func(t *testing.T) {
		err := v.Verify([]byte("different bytes"), sig, PublicKey(pub))
		if !errors.Is(err, ErrBadSignature) {
			t.Errorf("Verify() error = %v, want ErrBadSignature", err)
		}
	})

	t.Run("WrongSigner", func(t *testing.T) {
		otherPub, _, _ := ed25519.GenerateKey(rand.Reader)
		err := v.Verify(msg, sig, PublicKey(otherPub))
		if !errors.Is(err, ErrBadSignature) {
			t.Errorf("Verify() error = %v, want ErrBadSignature", err)
		}
	})

	t.Run("TruncatedKey", func(t *testing.T) {
		err := v.Verify(msg, sig, PublicKey(pub[:16]))
		if !errors.Is(err, ErrBadPublicKey) {
			t.Errorf("Verify() error = %v, want ErrBadPublicKey", err)
		}
	})
}

func TestParsePublicKey(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(rand.Reader)
	key := PublicKey(pub)

	parsed, err := ParsePublicKey(key.String())
	if err != nil {
		t.Fatalf("ParsePublicKey() error = %v", err)
	}
	if !parsed.Equal(key) {
		t.Error("round-tripped key differs")
	}

	if _, err := ParsePublicKey("zz"); !errors.Is(err, ErrBadPublicKey) {
		t.Errorf("ParsePublicKey(garbage) error = %v, want ErrBadPublicKey", err)
	}
	if _, err := ParsePublicKey("aabb"); !errors.Is(err, ErrBadPublicKey) {
		t.Errorf("ParsePublicKey(short) error = %v, want ErrBadPublicKey", err)
	}
}

func TestAllowAll(t *testing.T) {
	if err := (AllowAll{}).Verify(nil, nil, nil); err != nil {
		t.Errorf("AllowAll.Verify() error = %v", err)
	}
}
