// Package storage defines the key-value persistence seam the platform's
// repositories are built on. Values are opaque JSON snapshots; keys are
// fixed namespaced strings owned by the repository layer.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been set or has
// been deleted.
var ErrKeyNotFound = errors.New("key not found")

// Store is the injected persistence interface. Implementations must be
// safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
