// Package denylist tracks revoked token IDs (jti claims) until their natural
// expiry. Logout and refresh rotation revoke the old token's jti; the HTTP
// auth middleware consults the list before trusting an otherwise valid token.
package denylist

import (
	"context"
	"time"
)

// Denylist is the revocation set. Entries only need to live for the
// remaining lifetime of the token they revoke, so both implementations
// take a TTL and expire entries on their own.
type Denylist interface {
	// Revoke adds a token ID to the set for the given TTL.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether the token ID is in the set.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
