package domain

import "time"

// User is a platform account. Accounts are suspended (is_active = false)
// rather than deleted.
type User struct {
	ID           string
	Username     string
	Email        string // unique
	PasswordHash string // argon2id encoded
	Role         Role
	IsActive     bool
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
