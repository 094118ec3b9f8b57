// Package storage holds the durable key-value backends behind the draft
// store. Values live under a namespace (one per visitor session) so a whole
// session can be evicted at once, the way a browser drops an origin's
// local storage.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("storage: key not found")
	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("storage: corrupt value")
)

// Store is a namespaced byte-value store.
type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace string, keys ...string) error
}

// Evictor is implemented by backends that can drop idle namespaces.
// Backends with native expiry (redis) report zero and rely on TTLs.
type Evictor interface {
	EvictIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// Toucher is implemented by backends that track idleness. Touch marks a
// namespace as active without changing its values.
type Toucher interface {
	Touch(ctx context.Context, namespace string) error
}
