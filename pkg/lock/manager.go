package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

// sweepInterval is how often the in-process backend is scanned for expired
// locks. The distributed backend relies on Redis TTL eviction instead.
const sweepInterval = time.Minute

// minStoreTTL floors the backend TTL so that zero-TTL locks remain readable
// until the next read-path expiry check releases them.
const minStoreTTL = time.Second

// AcquireRequest describes one lock acquisition.
type AcquireRequest struct {
	Resource   models.ResourceType
	ResourceID string
	OwnerID    string

	// TTL of the lock. Nil applies the manager default; an explicit zero
	// acquires a lock that expires at the next read.
	TTL *time.Duration

	// Priority orders the wait queue when the lock is held. Higher values
	// are granted first; equal priorities are FIFO. Priority never preempts
	// a currently held lock.
	Priority int

	Metadata map[string]any
}

// AcquireResult is the outcome of a non-blocking acquire: either an active
// lock or a queued wait entry.
type AcquireResult struct {
	Lock     *models.Lock `json:"lock,omitempty"`
	Queued   bool         `json:"queued"`
	WaitID   string       `json:"wait_id,omitempty"`
	Position int          `json:"position,omitempty"`
}

// Metrics is an observability snapshot of the lock table.
type Metrics struct {
	ActiveLocks int                         `json:"active_locks"`
	QueueDepth  map[string]int              `json:"queue_depth"`
	ByType      map[models.ResourceType]int `json:"by_type"`
}

// ReleasedEvent is published on lock:released.
type ReleasedEvent struct {
	Lock   *models.Lock `json:"lock"`
	Reason string       `json:"reason"` // "released" or "expired"
}

// GrantedEvent is published on lock:granted-from-queue when a waiter receives
// a lock released by its previous owner.
type GrantedEvent struct {
	WaitID string       `json:"wait_id"`
	Lock   *models.Lock `json:"lock"`
}

// waitEntry is one queued acquisition for a held key.
type waitEntry struct {
	id       string
	req      AcquireRequest
	ttl      time.Duration
	priority int
}

// Manager coordinates exclusive locks over a backend. Wait queues are always
// in-process; they do not survive a restart, and pending acquisitions
// re-enqueue on client retry.
type Manager struct {
	backend     Backend
	events      *bus.Bus
	defaultTTL  time.Duration
	distributed bool

	mu     sync.Mutex
	queues map[string][]*waitEntry
	index  map[string]string // lock id → key, for release/extend by id

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewManager creates a lock manager over the given backend. events may be
// nil (bus publication disabled). distributed suppresses the periodic sweep,
// deferring expiry to the store's TTL eviction plus read-path checks.
func NewManager(backend Backend, events *bus.Bus, defaultTTL time.Duration, distributed bool) *Manager {
	if backend == nil {
		panic("lock.NewManager: backend must not be nil")
	}
	return &Manager{
		backend:     backend,
		events:      events,
		defaultTTL:  defaultTTL,
		distributed: distributed,
		queues:      make(map[string][]*waitEntry),
		index:       make(map[string]string),
		stopCh:      make(chan struct{}),
	}
}

// Start launches the background expiry sweep (in-process mode only).
func (m *Manager) Start(ctx context.Context) {
	if m.distributed {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep(ctx)
			}
		}
	}()
}

// Stop halts the background sweep. Safe to call multiple times.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
}

// Acquire attempts to take the lock for req's resource. It never blocks: if
// the key is held the request joins the wait queue and a queued result is
// returned.
func (m *Manager) Acquire(ctx context.Context, req AcquireRequest) (*AcquireResult, error) {
	if !req.Resource.IsValid() {
		return nil, fmt.Errorf("invalid resource type %q", req.Resource)
	}
	if req.ResourceID == "" {
		return nil, fmt.Errorf("resource id is required")
	}
	if req.OwnerID == "" {
		return nil, fmt.Errorf("owner id is required")
	}

	ttl := m.defaultTTL
	if req.TTL != nil {
		ttl = *req.TTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := models.LockKey(req.Resource, req.ResourceID)
	existing, err := m.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsExpired(time.Now()) {
		if err := m.expireLocked(ctx, key, existing); err != nil {
			return nil, err
		}
		// The head waiter may have been granted the freed key.
		existing, err = m.backend.Get(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	if existing != nil {
		entry := &waitEntry{
			id:       uuid.New().String(),
			req:      req,
			ttl:      ttl,
			priority: req.Priority,
		}
		pos := m.enqueueLocked(key, entry)
		return &AcquireResult{Queued: true, WaitID: entry.id, Position: pos}, nil
	}

	lock, err := m.storeLocked(ctx, key, req, ttl)
	if err != nil {
		return nil, err
	}
	m.publish(bus.TopicLockAcquired, lock)
	return &AcquireResult{Lock: lock}, nil
}

// Release frees the lock with the given id and grants the key to the head of
// its wait queue, if any. Idempotent: releasing an unknown or already
// released lock returns false.
func (m *Manager) Release(ctx context.Context, lockID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releaseLocked(ctx, lockID, "released")
}

// Extend pushes out the expiry of an active lock. Returns false if the lock
// is no longer active.
func (m *Manager) Extend(ctx context.Context, lockID string, additional time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, lock, err := m.findLocked(ctx, lockID)
	if err != nil || lock == nil {
		return false, err
	}
	if lock.IsExpired(time.Now()) {
		if err := m.expireLocked(ctx, key, lock); err != nil {
			return false, err
		}
		return false, nil
	}

	lock.ExpiresAt = lock.ExpiresAt.Add(additional)
	if err := m.backend.Put(ctx, key, lock, storeTTL(lock.ExpiresAt)); err != nil {
		return false, err
	}
	return true, nil
}

// IsLocked reports whether the resource is currently held. An expired lock
// encountered here is released first (and its queue head granted).
func (m *Manager) IsLocked(ctx context.Context, t models.ResourceType, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := models.LockKey(t, id)
	lock, err := m.backend.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if lock == nil {
		return false, nil
	}
	if lock.IsExpired(time.Now()) {
		if err := m.expireLocked(ctx, key, lock); err != nil {
			return false, err
		}
		granted, err := m.backend.Get(ctx, key)
		if err != nil {
			return false, err
		}
		return granted != nil, nil
	}
	return true, nil
}

// ReleaseAllByOwner frees every lock held by the owner and returns the count
// released.
func (m *Manager) ReleaseAllByOwner(ctx context.Context, ownerID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	locks, err := m.backend.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, lock := range locks {
		if lock.OwnerID != ownerID {
			continue
		}
		released, err := m.releaseLocked(ctx, lock.ID, "released")
		if err != nil {
			return count, err
		}
		if released {
			count++
		}
	}
	return count, nil
}

// ActiveLocks returns a snapshot of all unexpired locks.
func (m *Manager) ActiveLocks(ctx context.Context) ([]*models.Lock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	locks, err := m.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]*models.Lock, 0, len(locks))
	for _, lock := range locks {
		if !lock.IsExpired(now) {
			out = append(out, lock)
		}
	}
	return out, nil
}

// Metrics returns the active lock count, per-resource queue depths, and lock
// counts grouped by resource type.
func (m *Manager) Metrics(ctx context.Context) (*Metrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	locks, err := m.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	metrics := &Metrics{
		QueueDepth: make(map[string]int, len(m.queues)),
		ByType:     make(map[models.ResourceType]int),
	}
	for _, lock := range locks {
		if lock.IsExpired(now) {
			continue
		}
		metrics.ActiveLocks++
		metrics.ByType[lock.Resource]++
	}
	for key, queue := range m.queues {
		metrics.QueueDepth[key] = len(queue)
	}
	return metrics, nil
}

// --- internal (all require m.mu held) ---

// releaseLocked frees a lock by id and grants the next waiter.
func (m *Manager) releaseLocked(ctx context.Context, lockID, reason string) (bool, error) {
	key, lock, err := m.findLocked(ctx, lockID)
	if err != nil || lock == nil {
		return false, err
	}
	if err := m.backend.Delete(ctx, key); err != nil {
		return false, err
	}
	delete(m.index, lockID)
	m.publish(bus.TopicLockReleased, &ReleasedEvent{Lock: lock, Reason: reason})
	if err := m.grantNextLocked(ctx, key); err != nil {
		return true, err
	}
	return true, nil
}

// findLocked resolves a lock id to its key and current record. The local
// index is tried first; in distributed mode a lock created by another
// replica is found by scanning.
func (m *Manager) findLocked(ctx context.Context, lockID string) (string, *models.Lock, error) {
	if key, ok := m.index[lockID]; ok {
		lock, err := m.backend.Get(ctx, key)
		if err != nil {
			return "", nil, err
		}
		if lock == nil || lock.ID != lockID {
			// Stale index entry: the key expired or was taken over.
			delete(m.index, lockID)
			return "", nil, nil
		}
		return key, lock, nil
	}

	locks, err := m.backend.List(ctx)
	if err != nil {
		return "", nil, err
	}
	for _, lock := range locks {
		if lock.ID == lockID {
			return lock.Key(), lock, nil
		}
	}
	return "", nil, nil
}

// expireLocked removes an expired lock and grants the next waiter.
func (m *Manager) expireLocked(ctx context.Context, key string, lock *models.Lock) error {
	if err := m.backend.Delete(ctx, key); err != nil {
		return err
	}
	delete(m.index, lock.ID)
	m.publish(bus.TopicLockReleased, &ReleasedEvent{Lock: lock, Reason: "expired"})
	return m.grantNextLocked(ctx, key)
}

// grantNextLocked pops the head of the key's wait queue and grants it a
// fresh lock with the waiter's original TTL. Empty queues are removed.
func (m *Manager) grantNextLocked(ctx context.Context, key string) error {
	queue := m.queues[key]
	if len(queue) == 0 {
		delete(m.queues, key)
		return nil
	}
	head := queue[0]
	if len(queue) == 1 {
		delete(m.queues, key)
	} else {
		m.queues[key] = queue[1:]
	}

	lock, err := m.storeLocked(ctx, key, head.req, head.ttl)
	if err != nil {
		return err
	}
	m.publish(bus.TopicLockGrantedFromQueue, &GrantedEvent{WaitID: head.id, Lock: lock})
	return nil
}

// enqueueLocked inserts the entry before the first waiter with strictly
// lower priority (stable for equal priorities) and returns its position.
func (m *Manager) enqueueLocked(key string, entry *waitEntry) int {
	queue := m.queues[key]
	pos := len(queue)
	for i, waiting := range queue {
		if waiting.priority < entry.priority {
			pos = i
			break
		}
	}
	queue = append(queue, nil)
	copy(queue[pos+1:], queue[pos:])
	queue[pos] = entry
	m.queues[key] = queue
	return pos
}

// storeLocked writes a new active lock for the request.
func (m *Manager) storeLocked(ctx context.Context, key string, req AcquireRequest, ttl time.Duration) (*models.Lock, error) {
	now := time.Now()
	lock := &models.Lock{
		ID:         uuid.New().String(),
		Resource:   req.Resource,
		ResourceID: req.ResourceID,
		OwnerID:    req.OwnerID,
		AcquiredAt: now,
		ExpiresAt:  now.Add(ttl),
		Metadata:   req.Metadata,
	}
	if err := m.backend.Put(ctx, key, lock, storeTTL(lock.ExpiresAt)); err != nil {
		return nil, err
	}
	m.index[lock.ID] = key
	return lock, nil
}

// sweep releases every expired lock found in the backend.
func (m *Manager) sweep(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	locks, err := m.backend.List(ctx)
	if err != nil {
		slog.Error("Lock sweep failed to list locks", "error", err)
		return
	}
	now := time.Now()
	for _, lock := range locks {
		if !lock.IsExpired(now) {
			continue
		}
		if err := m.expireLocked(ctx, lock.Key(), lock); err != nil {
			slog.Error("Lock sweep failed to expire lock",
				"lock_id", lock.ID, "key", lock.Key(), "error", err)
		}
	}
}

func (m *Manager) publish(topic bus.Topic, payload any) {
	if m.events == nil {
		return
	}
	m.events.Publish(topic, payload)
}

func storeTTL(expiresAt time.Time) time.Duration {
	ttl := time.Until(expiresAt)
	if ttl < minStoreTTL {
		return minStoreTTL
	}
	return ttl
}
