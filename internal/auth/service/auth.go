package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/notify"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/pkg/cryptox"
	"github.com/nativoenglish/lingo/pkg/jwtx"
	"github.com/nativoenglish/lingo/pkg/slogx"
)

// notifyTimeout bounds the fire-and-forget email goroutine so a hung SMTP
// host cannot leak goroutines.
const notifyTimeout = 30 * time.Second

// AuthService orchestrates the login, OTP and logout flows. It owns no
// state of its own; everything is delegated to the store, the token service
// and the OTP service.
type AuthService struct {
	Store    store.Store
	Tokens   *TokenService
	OTP      *OTPService
	Notifier notify.Notifier
}

// Login verifies credentials and either returns a full token pair or, when
// the user has 2FA enabled, a short-lived challenge token after emailing a
// fresh one-time code.
//
// Credential failures are indistinguishable: wrong username, wrong password
// and a suspended account all return ErrInvalidCredentials, so a caller who
// guessed a password still learns nothing about the account's state.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash comparison anyway so the timing doesn't
			// reveal whether the username exists.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	enabled, err := s.twoFactorEnabled(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if !enabled {
		pair, err := s.Tokens.IssuePair(user)
		if err != nil {
			return nil, err
		}
		return &domain.LoginResult{
			UserID: user.ID,
			Role:   user.Role,
			Tokens: pair,
		}, nil
	}

	code, err := s.OTP.GenerateCode(ctx, user)
	if err != nil {
		return nil, err
	}
	s.dispatchOTP(ctx, user, code)

	temp, expiresAt, err := s.Tokens.IssueChallenge(user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		UserID:        user.ID,
		Role:          user.Role,
		TwoFAEnabled:  true,
		TempToken:     temp,
		TempExpiresAt: expiresAt,
	}, nil
}

// VerifyOtp consumes the submitted code and upgrades the challenge to a full
// token pair. The caller has already been authenticated by a challenge token;
// userID comes from its claims. The user is returned alongside the pair so
// the handler can echo the identity back.
func (s *AuthService) VerifyOtp(ctx context.Context, userID, code string) (domain.User, *domain.TokenPair, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrInvalidToken
		}
		return domain.User{}, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		// Suspended mid-challenge; same answer as a bad token.
		return domain.User{}, nil, ErrInvalidToken
	}

	if err := s.OTP.ValidateCode(ctx, userID, code); err != nil {
		return domain.User{}, nil, err
	}

	pair, err := s.Tokens.IssuePair(user)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, pair, nil
}

// ResendOtp invalidates the outstanding code and emails a fresh one. It
// requires 2FA to be enabled; a challenge token for a user who has since
// disabled 2FA gets ErrTwoFactorNotEnabled.
func (s *AuthService) ResendOtp(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	enabled, err := s.twoFactorEnabled(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !enabled {
		return domain.User{}, ErrTwoFactorNotEnabled
	}

	code, err := s.OTP.GenerateCode(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	s.dispatchOTP(ctx, user, code)

	return user, nil
}

// Logout revokes the presented refresh token. Revoking twice, or presenting
// an expired token, returns ErrTokenAlreadyInvalid.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.Tokens.verifyClaims(refreshToken)
	if err != nil {
		return err
	}
	if err := claims.ValidateKind(jwtx.KindRefresh); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	revoked, err := s.Tokens.IsRevoked(ctx, claims)
	if err != nil {
		return fmt.Errorf("failed to check denylist: %w", err)
	}
	if revoked {
		return ErrTokenAlreadyInvalid
	}

	return s.Tokens.Revoke(ctx, claims)
}

// Refresh rotates a refresh token: the old token's jti is denylisted and a
// new pair is issued. A revoked or expired refresh token is rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.Tokens.VerifyKind(ctx, refreshToken, jwtx.KindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		// Suspension invalidates outstanding refresh tokens.
		return nil, ErrInvalidToken
	}

	// Rotate: the old refresh token dies with this use.
	if err := s.Tokens.Revoke(ctx, claims); err != nil {
		return nil, err
	}

	return s.Tokens.IssuePair(user)
}

func (s *AuthService) twoFactorEnabled(ctx context.Context, userID string) (bool, error) {
	prefs, err := s.Store.Prefs().GetPrefs(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil // no prefs row means 2FA was never enabled
		}
		return false, fmt.Errorf("failed to get prefs: %w", err)
	}
	return prefs.Enable2FA, nil
}

// dispatchOTP emails the code from its own goroutine so delivery latency
// never shows up in the login path. Failures are logged, not surfaced.
func (s *AuthService) dispatchOTP(ctx context.Context, user domain.User, code string) {
	log := slogx.FromContext(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := s.Notifier.SendOTPCode(sendCtx, user.Email, user.Username, code); err != nil {
			log.Error("failed to send otp email",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
	}()
}
