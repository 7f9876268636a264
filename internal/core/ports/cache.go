package ports

import (
	"context"
	"time"
)

// CacheRepository is the cache behind module lookups and reference counters.
// Values are stored as JSON.
type CacheRepository interface {
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// GetOrSet reads key into dest, or stores what fetch returns on a miss
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	// Increment bumps the counter at key and returns its new value
	Increment(ctx context.Context, key string) (int64, error)
}
