package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Access tokens are short-lived; refresh tokens
// trade security for convenience; challenge and reset tokens are single
// purpose and expire quickly.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
	ChallengeTokenTTL      = 5 * time.Minute
	ResetTokenTTL          = 15 * time.Minute
)

// TokenKind distinguishes the four token variants the service mints. A token
// of one kind is never accepted where another kind is required.
type TokenKind string

const (
	KindAccess    TokenKind = "access"
	KindRefresh   TokenKind = "refresh"
	KindChallenge TokenKind = "challenge"
	KindReset     TokenKind = "reset"
)

// Claims are the signed claims carried by every token the service issues.
type Claims struct {
	jwt.RegisteredClaims

	// Kind marks which token variant this is (access, refresh, challenge, reset).
	Kind TokenKind `json:"kind,omitempty"`

	// Temp is set on challenge tokens only. A temp token authorizes OTP
	// submission and nothing else.
	Temp bool `json:"temp,omitempty"`

	// Role is the user's role name (admin, teacher, student).
	Role string `json:"role,omitempty"`

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Username of the authenticated user.
	Username string `json:"username,omitempty"`
}

// NewClaims builds minimally-correct claims for a token of the given kind.
func NewClaims(
	kind TokenKind,
	subject string,
	role, email, username string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Kind:     kind,
		Temp:     kind == KindChallenge,
		Role:     role,
		Email:    email,
		Username: username,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateKind ensures the token is of the expected variant. Kind confusion
// is a hard failure: a challenge token must never pass as an access token
// and vice versa.
func (c *Claims) ValidateKind(expected TokenKind) error {
	if c.Kind != expected {
		return ErrWrongKind
	}
	return nil
}

// TTL returns the remaining lifetime of the token, or zero if expired.
func (c *Claims) TTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
