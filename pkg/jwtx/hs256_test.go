package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://auth.test.local"

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer, err := NewSignerHS256(testKey())
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	claims := NewAccessClaims(
		"user_123", "alice@example.com", "alice",
		[]string{"Admin", "Editor"},
		time.Hour, testIssuer, time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := NewVerifierHS256(testKey(), testIssuer, []string{testIssuer})
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user_123", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "alice", got.Name)
	require.Equal(t, []string{"Admin", "Editor"}, got.Roles)
	require.NotEmpty(t, got.ID, "jti must be set")
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer, err := NewSignerHS256(testKey())
	require.NoError(t, err)

	claims := NewAccessClaims("u", "", "", nil, time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierHS256([]byte("a-completely-different-key-here!"), testIssuer, nil)
	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, err := NewSignerHS256(testKey())
	require.NoError(t, err)

	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := NewAccessClaims("u", "", "", nil, time.Hour, testIssuer, past)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierHS256(testKey(), testIssuer, nil)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer, err := NewSignerHS256(testKey())
	require.NoError(t, err)

	claims := NewAccessClaims("u", "", "", nil, time.Hour, "https://someone-else", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierHS256(testKey(), testIssuer, nil)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	claims := NewAccessClaims("u", "", "", nil, time.Hour, testIssuer, time.Now().UTC())
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	verifier := NewVerifierHS256(testKey(), testIssuer, nil)
	_, err = verifier.Verify(token)
	require.Error(t, err, "alg=none must never validate")
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewVerifierHS256(testKey(), testIssuer, nil)
	_, err := verifier.Verify("not.a.token")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNewSignerRejectsEmptyKey(t *testing.T) {
	_, err := NewSignerHS256(nil)
	require.Error(t, err)
}
