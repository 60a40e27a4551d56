package domain

import "time"

// TokenPair is what a completed authentication returns: a short-lived access
// token and a longer-lived refresh token, both signed JWTs. Neither is
// persisted as a row; revocation goes through the denylist.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	ExpiresIn    int64  `json:"expires_in"` // access token lifetime in seconds
}

// LoginResult is the outcome of a credential check. Exactly one of Tokens or
// TempToken is populated: full tokens when 2FA is off, a challenge token when
// a second factor is still owed.
type LoginResult struct {
	UserID        string
	Role          Role
	TwoFAEnabled  bool
	Tokens        *TokenPair // nil while a challenge is pending
	TempToken     string     // empty unless a challenge is pending
	TempExpiresAt time.Time
}
