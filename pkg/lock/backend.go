// Package lock implements the distributed resource lock manager: exclusive,
// TTL-bounded locks over typed resources with per-key priority wait queues.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// ErrNotHeld is returned when an operation references a lock that is not
// currently active.
var ErrNotHeld = errors.New("lock not held")

// BackendError wraps a storage failure. Callers may retry; the manager never
// falls back to a different backend.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("lock backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// IsBackendError reports whether err is a lock backend failure.
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// Backend is the lock record store. Implementations must make Put visible to
// subsequent Get calls on the same key (linearisable per key).
type Backend interface {
	// Get returns the lock stored at key, or nil if absent.
	Get(ctx context.Context, key string) (*models.Lock, error)

	// Put stores the lock at key with the given TTL. A zero TTL stores the
	// record without backend-side eviction.
	Put(ctx context.Context, key string, lock *models.Lock, ttl time.Duration) error

	// Delete removes the lock at key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all stored lock records.
	List(ctx context.Context) ([]*models.Lock, error)
}
