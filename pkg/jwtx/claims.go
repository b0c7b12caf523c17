package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for issued bearer tokens.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the bearer-token claims issued by this service. We keep
// additive changes only to preserve compatibility for later.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the display name of the account the token was issued for.
	Name string `json:"name,omitempty"`
}

// NewClaims builds minimally-correct claims for a freshly issued token.
func NewClaims(subject, name, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name: name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
