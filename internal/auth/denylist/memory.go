package denylist

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryDenylist keeps revocations in process memory. Suitable for a single
// replica or for tests; the cache janitor sweeps expired entries.
type MemoryDenylist struct {
	cache *gocache.Cache
}

func NewMemory() *MemoryDenylist {
	return &MemoryDenylist{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (d *MemoryDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.cache.Set(jti, struct{}{}, ttl)
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, found := d.cache.Get(jti)
	return found, nil
}
