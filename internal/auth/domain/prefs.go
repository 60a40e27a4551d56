package domain

import "time"

// UserPrefs holds the per-user two-factor policy. The row is created lazily:
// a user without one behaves as if 2FA is disabled.
type UserPrefs struct {
	UserID        string // one-to-one with User
	Enable2FA     bool
	OTPSecret     *string // TOTP secret, generated once and reused (nullable)
	PreferredLang string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
