package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, kid string) (*EdDSASigner, Verifier) {
	t.Helper()

	signer, err := GenerateSignerEdDSA(kid)
	require.NoError(t, err)

	keys := NewKeySet()
	keys.AddSigner(signer)

	return signer, NewVerifierEdDSA(keys, "lingo-auth")
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, verifier := newTestSigner(t, "key-1")

	claims := NewClaims(KindAccess, "user-123", "teacher", "t@example.com", "teach", DefaultAccessTokenTTL, "lingo-auth", time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "teacher", got.Role)
	require.Equal(t, "t@example.com", got.Email)
	require.Equal(t, KindAccess, got.Kind)
	require.False(t, got.Temp)
	require.NotEmpty(t, got.ID, "jti must be present for denylisting")
}

func TestChallengeClaimsCarryTempMarker(t *testing.T) {
	t.Parallel()

	claims := NewClaims(KindChallenge, "user-123", "student", "s@example.com", "stu", ChallengeTokenTTL, "lingo-auth", time.Now())
	require.True(t, claims.Temp)
	require.NoError(t, claims.ValidateKind(KindChallenge))
	require.ErrorIs(t, claims.ValidateKind(KindAccess), ErrWrongKind)
}

func TestVerifyRejectsUnknownKID(t *testing.T) {
	t.Parallel()

	signer, _ := newTestSigner(t, "key-1")
	_, otherVerifier := newTestSigner(t, "key-2")

	token, err := signer.Sign(NewClaims(KindAccess, "u", "admin", "", "", time.Minute, "lingo-auth", time.Now()))
	require.NoError(t, err)

	_, err = otherVerifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, verifier := newTestSigner(t, "key-1")

	claims := NewClaims(KindAccess, "u", "admin", "", "", time.Minute, "lingo-auth", time.Now().Add(-2*time.Minute))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := GenerateSignerEdDSA("key-1")
	require.NoError(t, err)
	keys := NewKeySet()
	keys.AddSigner(signer)
	verifier := NewVerifierEdDSA(keys, "expected-issuer")

	token, err := signer.Sign(NewClaims(KindAccess, "u", "admin", "", "", time.Minute, "another-issuer", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestValidateExpiryBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("valid within window", func(t *testing.T) {
		c := NewClaims(KindAccess, "u", "", "", "", time.Minute, "iss", time.Now())
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired in the past", func(t *testing.T) {
		c := NewClaims(KindAccess, "u", "", "", "", time.Minute, "iss", time.Now().Add(-2*time.Minute))
		require.ErrorIs(t, c.ValidateExpiry(), ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := NewClaims(KindAccess, "u", "", "", "", time.Minute, "iss", time.Now().Add(time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), ErrNotYetValid)
	})
}

func TestTTL(t *testing.T) {
	t.Parallel()

	c := NewClaims(KindRefresh, "u", "", "", "", time.Hour, "iss", time.Now())
	require.InDelta(t, time.Hour, c.TTL(), float64(time.Second))

	expired := Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	require.Zero(t, expired.TTL())
}

func TestSignerPEMRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := GenerateSignerEdDSA("key-1")
	require.NoError(t, err)

	pemBytes, err := signer.MarshalPKCS8PEM()
	require.NoError(t, err)

	loaded, err := NewSignerEdDSA("key-1", pemBytes)
	require.NoError(t, err)
	require.Equal(t, signer.PublicKey(), loaded.PublicKey())
}
