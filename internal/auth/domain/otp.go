package domain

import "time"

// OneTimeCode is a stored 6-digit code row. Validity is governed entirely by
// the row: a code is usable iff is_used = false and now < expires_at.
// At most one unused row exists per user at any instant.
type OneTimeCode struct {
	ID        string
	UserID    string
	Code      string // 6 digits
	CreatedAt time.Time
	ExpiresAt time.Time // CreatedAt + 5 minutes
	IsUsed    bool
}

// Usable reports whether the code can still be consumed at the given time.
// A code presented exactly at its expiry instant is already expired.
func (c OneTimeCode) Usable(now time.Time) bool {
	return !c.IsUsed && now.Before(c.ExpiresAt)
}
