package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/bus"
	"github.com/MiniSankaz/fleetd/pkg/models"
)

func newTestManager(t *testing.T) (*Manager, *bus.Bus) {
	t.Helper()
	events := bus.New()
	m := NewManager(NewMemoryBackend(), events, 5*time.Minute, false)
	return m, events
}

func ttl(d time.Duration) *time.Duration { return &d }

func fileReq(id, owner string) AcquireRequest {
	return AcquireRequest{Resource: models.ResourceFile, ResourceID: id, OwnerID: owner}
}

func TestAcquireAndRelease(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, fileReq("/p/x", "owner-a"))
	require.NoError(t, err)
	require.NotNil(t, res.Lock)
	assert.False(t, res.Queued)
	assert.Equal(t, "owner-a", res.Lock.OwnerID)
	assert.Equal(t, "lock:file:/p/x", res.Lock.Key())

	held, err := m.IsLocked(ctx, models.ResourceFile, "/p/x")
	require.NoError(t, err)
	assert.True(t, held)

	ok, err := m.Release(ctx, res.Lock.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	held, err = m.IsLocked(ctx, models.ResourceFile, "/p/x")
	require.NoError(t, err)
	assert.False(t, held)
}

func TestReleaseIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, fileReq("/p/x", "owner-a"))
	require.NoError(t, err)

	ok, err := m.Release(ctx, res.Lock.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Release(ctx, res.Lock.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAcquireHeldKeyQueues(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	first, err := m.Acquire(ctx, fileReq("/p/x", "owner-a"))
	require.NoError(t, err)
	require.NotNil(t, first.Lock)

	second, err := m.Acquire(ctx, fileReq("/p/x", "owner-b"))
	require.NoError(t, err)
	assert.True(t, second.Queued)
	assert.NotEmpty(t, second.WaitID)
	assert.Nil(t, second.Lock)
}

func TestQueueGrantsByPriorityThenFIFO(t *testing.T) {
	// S2: B queues with priority 5, C with priority 10. On release, C is
	// granted first, then B.
	m, events := newTestManager(t)
	ctx := context.Background()
	granted := events.Subscribe(bus.TopicLockGrantedFromQueue)
	defer granted.Close()

	a, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceFile, ResourceID: "/p/x", OwnerID: "A", TTL: ttl(60 * time.Second),
	})
	require.NoError(t, err)

	b, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceFile, ResourceID: "/p/x", OwnerID: "B", Priority: 5,
	})
	require.NoError(t, err)
	require.True(t, b.Queued)
	assert.Equal(t, 0, b.Position)

	c, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceFile, ResourceID: "/p/x", OwnerID: "C", Priority: 10,
	})
	require.NoError(t, err)
	require.True(t, c.Queued)
	assert.Equal(t, 0, c.Position)

	ok, err := m.Release(ctx, a.Lock.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ev := <-granted.C()
	grant := ev.Payload.(*GrantedEvent)
	assert.Equal(t, c.WaitID, grant.WaitID)
	assert.Equal(t, "C", grant.Lock.OwnerID)

	ok, err = m.Release(ctx, grant.Lock.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ev = <-granted.C()
	grant = ev.Payload.(*GrantedEvent)
	assert.Equal(t, b.WaitID, grant.WaitID)
	assert.Equal(t, "B", grant.Lock.OwnerID)
}

func TestEqualPriorityIsFIFO(t *testing.T) {
	m, events := newTestManager(t)
	ctx := context.Background()
	granted := events.Subscribe(bus.TopicLockGrantedFromQueue)
	defer granted.Close()

	a, err := m.Acquire(ctx, fileReq("/p/y", "A"))
	require.NoError(t, err)
	first, err := m.Acquire(ctx, fileReq("/p/y", "B"))
	require.NoError(t, err)
	_, err = m.Acquire(ctx, fileReq("/p/y", "C"))
	require.NoError(t, err)

	_, err = m.Release(ctx, a.Lock.ID)
	require.NoError(t, err)

	ev := <-granted.C()
	assert.Equal(t, first.WaitID, ev.Payload.(*GrantedEvent).WaitID)
}

func TestZeroTTLExpiresAtNextRead(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceDatabase, ResourceID: "main", OwnerID: "A", TTL: ttl(0),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Lock)

	held, err := m.IsLocked(ctx, models.ResourceDatabase, "main")
	require.NoError(t, err)
	assert.False(t, held)

	// Already released by the expiry check above.
	ok, err := m.Release(ctx, res.Lock.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpiredLockGrantsQueueHead(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceService, ResourceID: "api", OwnerID: "A", TTL: ttl(0),
	})
	require.NoError(t, err)

	// A's record is still stored, but the read-path expiry check releases
	// it, so B acquires directly instead of queueing.
	b, err := m.Acquire(ctx, fileServiceReq("api", "B"))
	require.NoError(t, err)
	assert.False(t, b.Queued)
	assert.Equal(t, "B", b.Lock.OwnerID)
}

func fileServiceReq(id, owner string) AcquireRequest {
	return AcquireRequest{Resource: models.ResourceService, ResourceID: id, OwnerID: owner}
}

func TestExtend(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceWorkspace, ResourceID: "w1", OwnerID: "A", TTL: ttl(time.Minute),
	})
	require.NoError(t, err)
	before := res.Lock.ExpiresAt

	ok, err := m.Extend(ctx, res.Lock.ID, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	active, err := m.ActiveLocks(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, before.Add(time.Minute), active[0].ExpiresAt)
}

func TestExtendExpiredLockFails(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceWorkspace, ResourceID: "w1", OwnerID: "A", TTL: ttl(0),
	})
	require.NoError(t, err)

	ok, err := m.Extend(ctx, res.Lock.ID, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReleaseAllByOwner(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, fileReq("/a", "owner-1"))
	require.NoError(t, err)
	_, err = m.Acquire(ctx, fileReq("/b", "owner-1"))
	require.NoError(t, err)
	_, err = m.Acquire(ctx, fileReq("/c", "owner-2"))
	require.NoError(t, err)

	count, err := m.ReleaseAllByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	active, err := m.ActiveLocks(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "owner-2", active[0].OwnerID)
}

func TestMetrics(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, fileReq("/a", "A"))
	require.NoError(t, err)
	_, err = m.Acquire(ctx, AcquireRequest{Resource: models.ResourcePort, ResourceID: "4190", OwnerID: "A"})
	require.NoError(t, err)
	_, err = m.Acquire(ctx, fileReq("/a", "B")) // queued
	require.NoError(t, err)

	metrics, err := m.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.ActiveLocks)
	assert.Equal(t, 1, metrics.ByType[models.ResourceFile])
	assert.Equal(t, 1, metrics.ByType[models.ResourcePort])
	assert.Equal(t, 1, metrics.QueueDepth["lock:file:/a"])
}

func TestAcquireValidatesInput(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, AcquireRequest{Resource: "disk", ResourceID: "x", OwnerID: "A"})
	assert.Error(t, err)

	_, err = m.Acquire(ctx, AcquireRequest{Resource: models.ResourceFile, OwnerID: "A"})
	assert.Error(t, err)

	_, err = m.Acquire(ctx, AcquireRequest{Resource: models.ResourceFile, ResourceID: "x"})
	assert.Error(t, err)
}

func TestSweepReleasesExpiredLocks(t *testing.T) {
	m, events := newTestManager(t)
	ctx := context.Background()
	released := events.Subscribe(bus.TopicLockReleased)
	defer released.Close()

	_, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceTerminal, ResourceID: "t1", OwnerID: "A", TTL: ttl(0),
	})
	require.NoError(t, err)

	m.sweep(ctx)

	ev := <-released.C()
	payload := ev.Payload.(*ReleasedEvent)
	assert.Equal(t, "expired", payload.Reason)
	assert.Equal(t, "A", payload.Lock.OwnerID)

	active, err := m.ActiveLocks(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}
