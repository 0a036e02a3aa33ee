package tokenstore

import (
	"context"
	"time"

	"autoparts/internal/errors"
)

// ErrMiss is returned by a Backend when a key is absent or expired.
var ErrMiss = errors.New("tokenstore: key not found")

// Backend is a key/value store with per-key expiry for server-side sessions.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value; a non-positive ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
