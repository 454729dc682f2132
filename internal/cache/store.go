// Package cache provides the TTL stores and the coalescing load layer the
// pipeline's stats and render caches are built from.
package cache

import "context"

// Store is a TTL-keyed value store. Expired entries are reported as absent;
// physical removal timing is an implementation detail.
type Store[T any] interface {
	// Get retrieves a value. Returns the value, whether a live entry was
	// found, and any error.
	Get(ctx context.Context, key string) (T, bool, error)

	// Set stores a value for the store's configured lifetime.
	Set(ctx context.Context, key string, value T) error

	// Invalidate removes a value.
	Invalidate(ctx context.Context, key string) error
}
