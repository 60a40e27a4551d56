package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nativoenglish/lingo/internal/auth/denylist"
	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/pkg/jwtx"
)

// TokenService mints and verifies the four token kinds. Tokens are stateless
// JWTs; revocation goes through the injected denylist keyed by jti.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Denylist denylist.Denylist
	Issuer   string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return jwtx.DefaultRefreshTokenTTL
}

// IssuePair mints a fresh access + refresh token pair for the user.
func (s *TokenService) IssuePair(u domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	access, err := s.Signer.Sign(jwtx.NewClaims(
		jwtx.KindAccess, u.ID, u.Role.String(), u.Email, u.Username,
		s.accessTTL(), s.Issuer, now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.Signer.Sign(jwtx.NewClaims(
		jwtx.KindRefresh, u.ID, u.Role.String(), u.Email, u.Username,
		s.refreshTTL(), s.Issuer, now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}

// IssueChallenge mints the temporary token a 2FA user holds between login
// and OTP verification. It is only accepted by verify-otp and resend-otp.
func (s *TokenService) IssueChallenge(u domain.User) (string, time.Time, error) {
	now := time.Now()
	claims := jwtx.NewClaims(
		jwtx.KindChallenge, u.ID, u.Role.String(), u.Email, u.Username,
		jwtx.ChallengeTokenTTL, s.Issuer, now,
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign challenge token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// IssueReset mints a single-purpose password reset token.
func (s *TokenService) IssueReset(u domain.User) (string, error) {
	token, err := s.Signer.Sign(jwtx.NewClaims(
		jwtx.KindReset, u.ID, u.Role.String(), u.Email, u.Username,
		jwtx.ResetTokenTTL, s.Issuer, time.Now(),
	))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return token, nil
}

// VerifyKind validates signature, expiry and issuer, enforces the token
// kind, and rejects denylisted tokens. Every verification failure collapses
// to ErrInvalidToken so callers leak nothing about why.
func (s *TokenService) VerifyKind(ctx context.Context, token string, kind jwtx.TokenKind) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if err := claims.ValidateKind(kind); err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	revoked, err := s.Denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("failed to check denylist: %w", err)
	}
	if revoked {
		return jwtx.Claims{}, ErrInvalidToken
	}

	return claims, nil
}

// Revoke denylists the token's jti for its remaining lifetime.
func (s *TokenService) Revoke(ctx context.Context, claims jwtx.Claims) error {
	if err := s.Denylist.Revoke(ctx, claims.ID, claims.TTL()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the claims' jti is already on the denylist.
func (s *TokenService) IsRevoked(ctx context.Context, claims jwtx.Claims) (bool, error) {
	return s.Denylist.IsRevoked(ctx, claims.ID)
}

// verifyClaims parses and validates a raw token without a kind check. Used
// by logout, which needs to distinguish "already revoked" from "garbage".
func (s *TokenService) verifyClaims(token string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) || errors.Is(err, jwt.ErrTokenExpired) {
			return jwtx.Claims{}, ErrTokenAlreadyInvalid
		}
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}
