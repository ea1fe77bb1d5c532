// Package cache provides layout-result caching with pluggable backends.
//
// A layout pass is a pure function of its inputs, which makes results
// perfectly cacheable: the key is a hash of (items, container, config,
// strategy). Backends:
//   - file: directory-based cache for CLI usage
//   - redis: shared cache for multi-instance service deployments
//   - null: disabled caching for tests and one-shot runs
//
// Keys are generated by a Keyer so multi-tenant deployments can prefix
// namespaces without touching call sites.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime of a cached layout.
const DefaultTTL = 24 * time.Hour

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
