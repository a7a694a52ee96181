// Package cache stores enrichment responses between runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per key under a local directory (default)
//   - [RedisCache]: a shared Redis instance, keys namespaced by a prefix
//   - [NullCache]: never stores anything (--no-cache)
//
// Values are opaque bytes; callers JSON-encode their own types. Keys are
// built with [Key] so that every backend sees the same key for the same
// request.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
type Clearer interface {
	Clear(ctx context.Context) error
}
