package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints EdDSA-signed tokens with an Ed25519 keypair. Keys are
// generated at construction and live only as long as the process; issued
// tokens cannot outlive a restart, which is acceptable for this service.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner generates a fresh Ed25519 keypair for signing.
func NewSigner(kid string) (*Signer, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}

	return &Signer{
		kid: kid,
		key: key,
		pub: pub,
	}, nil
}

func (s *Signer) KID() string { return s.kid }
func (s *Signer) Alg() string { return jwt.SigningMethodEdDSA.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Validate does a quick sanity check to make sure we actually have keys.
func (s *Signer) Validate() error {
	if s.key == nil || s.pub == nil {
		return errors.New("jwtx: nil Ed25519 key")
	}
	if len(s.key) != ed25519.PrivateKeySize {
		return errors.New("jwtx: invalid Ed25519 private key size")
	}
	if len(s.pub) != ed25519.PublicKeySize {
		return errors.New("jwtx: invalid Ed25519 public key size")
	}
	return nil
}

// Verifier returns a Verifier bound to this signer's public key, enforcing
// the given issuer on every token it checks.
func (s *Signer) Verifier(issuer string) Verifier {
	return &edVerifier{pub: s.pub, issuer: issuer}
}
