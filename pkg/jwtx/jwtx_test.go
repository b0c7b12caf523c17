package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("test-key")
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	now := time.Now().UTC()
	claims := NewClaims("42", "Alice", "accounts-test", time.Hour, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := signer.Verifier("accounts-test").Verify(token)
	require.NoError(t, err)
	require.Equal(t, "42", got.Subject)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "accounts-test", got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("test-key")
	require.NoError(t, err)

	token, err := signer.Sign(NewClaims("1", "", "issuer-a", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = signer.Verifier("issuer-b").Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("test-key")
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	token, err := signer.Sign(NewClaims("1", "", "accounts-test", time.Hour, issued))
	require.NoError(t, err)

	_, err = signer.Verifier("accounts-test").Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	signerA, err := NewSigner("a")
	require.NoError(t, err)
	signerB, err := NewSigner("b")
	require.NoError(t, err)

	token, err := signerA.Sign(NewClaims("1", "", "accounts-test", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = signerB.Verifier("accounts-test").Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("test-key")
	require.NoError(t, err)

	_, err = signer.Verifier("accounts-test").Verify("not.a.token")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNewJTIIsRandom(t *testing.T) {
	t.Parallel()

	a, b := NewJTI(), NewJTI()
	require.NotEqual(t, a, b)
	require.False(t, strings.ContainsAny(a, "+/="), "jti must be URL-safe")
}
