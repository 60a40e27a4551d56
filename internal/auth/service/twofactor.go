package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/store"
)

// TwoFactorService manages the per-user 2FA preference.
type TwoFactorService struct {
	Store store.Store
}

// SetEnabled flips the 2FA flag and returns the resulting preference row.
// The TOTP secret is untouched either way; disabling keeps it for the next
// enable.
func (s *TwoFactorService) SetEnabled(ctx context.Context, userID string, enabled bool) (domain.UserPrefs, error) {
	if err := s.Store.Prefs().SetTwoFactor(ctx, userID, enabled); err != nil {
		return domain.UserPrefs{}, fmt.Errorf("failed to set 2fa: %w", err)
	}

	prefs, err := s.Store.Prefs().GetPrefs(ctx, userID)
	if err != nil {
		return domain.UserPrefs{}, fmt.Errorf("failed to get prefs: %w", err)
	}
	return prefs, nil
}

// Enabled reports whether the user has 2FA turned on. A missing prefs row
// means off.
func (s *TwoFactorService) Enabled(ctx context.Context, userID string) (bool, error) {
	prefs, err := s.Store.Prefs().GetPrefs(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get prefs: %w", err)
	}
	return prefs.Enable2FA, nil
}
