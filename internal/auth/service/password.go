package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nativoenglish/lingo/internal/auth/notify"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/pkg/cryptox"
	"github.com/nativoenglish/lingo/pkg/jwtx"
	"github.com/nativoenglish/lingo/pkg/slogx"
)

// PasswordService runs the forgot/update password flow with single-purpose
// reset tokens.
type PasswordService struct {
	Store    store.Store
	Tokens   *TokenService
	Notifier notify.Notifier
}

// RequestReset emails a reset token to the address if an account exists.
// It never reports whether the address was found; the endpoint is not a
// user-existence oracle.
func (s *PasswordService) RequestReset(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil // same outcome as success, on purpose
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil
	}

	token, err := s.Tokens.IssueReset(user)
	if err != nil {
		return err
	}

	log := slogx.FromContext(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := s.Notifier.SendPasswordReset(sendCtx, user.Email, user.Username, token); err != nil {
			log.Error("failed to send reset email",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// UpdatePassword validates the reset token, stores the new password hash and
// denylists the token so it cannot be replayed.
func (s *PasswordService) UpdatePassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.Tokens.VerifyKind(ctx, resetToken, jwtx.KindReset)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, claims.Subject, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	// One reset per token.
	return s.Tokens.Revoke(ctx, claims)
}
