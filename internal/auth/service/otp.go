package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/pkg/idx"
)

// OTPCodeTTL is how long a generated code stays valid. Validity is governed
// by the stored row's expires_at, not by the TOTP time step.
const OTPCodeTTL = 5 * time.Minute

// OTPService derives 6-digit codes from a per-user TOTP secret and tracks
// their validity as rows. Transactional invalidate-then-insert guarantees at
// most one unused row per user at any time.
type OTPService struct {
	Store  store.Store
	Issuer string // account issuer for TOTP secret generation (e.g. "Nativo English")
}

// GenerateCode derives a fresh 6-digit code for the user and persists it,
// invalidating any previously unused code in the same transaction. The
// user's TOTP secret is created on first use and reused afterwards.
func (s *OTPService) GenerateCode(ctx context.Context, u domain.User) (string, error) {
	secret, err := s.ensureSecret(ctx, u)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	code, err := totp.GenerateCodeCustom(secret, now, totp.ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to derive code: %w", err)
	}

	row := domain.OneTimeCode{
		ID:        idx.New().String(),
		UserID:    u.ID,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(OTPCodeTTL),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.OTPCodes().InvalidateUnusedCodes(ctx, u.ID); err != nil {
			return fmt.Errorf("failed to invalidate previous codes: %w", err)
		}
		if err := tx.OTPCodes().CreateCode(ctx, row); err != nil {
			return fmt.Errorf("failed to store code: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

// ValidateCode checks the submitted digits against the stored rows and
// consumes the matching one. Replays and lost races surface as ErrInvalidOtp;
// a correct-but-stale code surfaces as ErrExpiredOtp.
func (s *OTPService) ValidateCode(ctx context.Context, userID, code string) error {
	row, err := s.Store.OTPCodes().GetCodeForUser(ctx, userID, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOtp
		}
		return fmt.Errorf("failed to look up code: %w", err)
	}

	if row.IsUsed {
		return ErrInvalidOtp
	}
	if !time.Now().Before(row.ExpiresAt) {
		return ErrExpiredOtp
	}

	consumed, err := s.Store.OTPCodes().ConsumeCode(ctx, row.ID)
	if err != nil {
		return fmt.Errorf("failed to consume code: %w", err)
	}
	if !consumed {
		// Another verification won the race.
		return ErrInvalidOtp
	}

	return nil
}

// ensureSecret returns the user's TOTP secret, generating and persisting one
// on first use.
func (s *OTPService) ensureSecret(ctx context.Context, u domain.User) (string, error) {
	prefs, err := s.Store.Prefs().GetPrefs(ctx, u.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("failed to get prefs: %w", err)
	}
	if err == nil && prefs.OTPSecret != nil && *prefs.OTPSecret != "" {
		return *prefs.OTPSecret, nil
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: u.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	if err := s.Store.Prefs().SetOTPSecret(ctx, u.ID, key.Secret()); err != nil {
		return "", fmt.Errorf("failed to store TOTP secret: %w", err)
	}
	return key.Secret(), nil
}
