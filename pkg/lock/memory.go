package lock

import (
	"context"
	"sync"
	"time"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// MemoryBackend is the in-process lock store. It never evicts on its own;
// the manager's read-path expiry checks and periodic sweep handle TTLs.
type MemoryBackend struct {
	mu    sync.RWMutex
	locks map[string]*models.Lock
}

// NewMemoryBackend creates an empty in-process backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{locks: make(map[string]*models.Lock)}
}

// Get returns the lock stored at key, or nil if absent.
func (b *MemoryBackend) Get(_ context.Context, key string) (*models.Lock, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.locks[key], nil
}

// Put stores the lock at key. The TTL is carried in the record itself.
func (b *MemoryBackend) Put(_ context.Context, key string, lock *models.Lock, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.locks[key] = lock
	return nil
}

// Delete removes the lock at key.
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.locks, key)
	return nil
}

// List returns all stored lock records.
func (b *MemoryBackend) List(_ context.Context) ([]*models.Lock, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*models.Lock, 0, len(b.locks))
	for _, l := range b.locks {
		out = append(out, l)
	}
	return out, nil
}
