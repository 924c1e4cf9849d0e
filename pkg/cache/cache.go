// Package cache stores computed layouts so repeated visualizations of the
// same network skip the force simulation.
//
// A cache key is derived from the graph topology ([GraphHash]) and the
// simulation parameters ([LayoutKey]), so any change to either produces a
// fresh entry. [FileCache] persists entries under a directory for CLI use;
// [NullCache] disables caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiration.
type Cache interface {
	// Get retrieves the value for key. The second return reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means the entry never
	// expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
