package store

import (
	"context"
	"errors"
	"time"

	"github.com/nativoenglish/lingo/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Users() Users
	Prefs() Prefs
	OTPCodes() OTPCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step operations that must be atomic
	// (e.g. invalidate-then-insert of one-time codes).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used by the forgot-password flow.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns a page of users ordered by creation (newest first)
	// along with the total count.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error)

	// UpdateUser mutates username/email/name fields and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdateUserRole changes the role and bumps updated_at.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role) error

	// UpdatePasswordHash sets the password_hash (argon2id) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetUserActive activates or suspends the account.
	SetUserActive(ctx context.Context, userID string, active bool) error
}

type Prefs interface {
	// GetPrefs returns the two-factor preference row for a user.
	// Absence (ErrNotFound) means 2FA is disabled.
	GetPrefs(ctx context.Context, userID string) (domain.UserPrefs, error)

	// SetTwoFactor flips the enable_2fa flag, creating the row lazily.
	SetTwoFactor(ctx context.Context, userID string, enabled bool) error

	// SetOTPSecret stores the TOTP secret. Written exactly once per user;
	// subsequent code generation reuses it.
	SetOTPSecret(ctx context.Context, userID string, secret string) error
}

type OTPCodes interface {
	// CreateCode inserts a fresh one-time code row.
	CreateCode(ctx context.Context, c domain.OneTimeCode) error

	// GetCodeForUser returns the most recent row matching the submitted
	// digits for a user, used or not, so the caller can distinguish
	// "never existed" from "stale".
	GetCodeForUser(ctx context.Context, userID, code string) (domain.OneTimeCode, error)

	// InvalidateUnusedCodes marks every unused code for the user as used.
	// Run inside a transaction together with CreateCode.
	InvalidateUnusedCodes(ctx context.Context, userID string) error

	// ConsumeCode atomically flips is_used from false to true. Returns
	// false when the row was already consumed (lost race or replay).
	ConsumeCode(ctx context.Context, codeID string) (bool, error)

	// CountUnusedCodes reports how many unused rows a user has. The
	// invariant is that this never exceeds one.
	CountUnusedCodes(ctx context.Context, userID string) (int, error)

	// DeleteExpiredCodes removes rows past their expiry (housekeeping).
	// Returns the number of rows pruned.
	DeleteExpiredCodes(ctx context.Context, olderThan time.Time) (int64, error)
}
