package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

func newRedisManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewManager(NewRedisBackend(rdb), nil, 5*time.Minute, true), mr
}

func TestRedisAcquireReleaseRoundTrip(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, fileReq("/p/x", "owner-a"))
	require.NoError(t, err)
	require.NotNil(t, res.Lock)

	// The record lands under the canonical key with a TTL.
	require.True(t, mr.Exists("lock:file:/p/x"))
	assert.Positive(t, mr.TTL("lock:file:/p/x"))

	held, err := m.IsLocked(ctx, models.ResourceFile, "/p/x")
	require.NoError(t, err)
	assert.True(t, held)

	ok, err := m.Release(ctx, res.Lock.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, mr.Exists("lock:file:/p/x"))
}

func TestRedisContentionQueues(t *testing.T) {
	m, _ := newRedisManager(t)
	ctx := context.Background()

	first, err := m.Acquire(ctx, fileReq("/p/x", "A"))
	require.NoError(t, err)
	require.NotNil(t, first.Lock)

	queued, err := m.Acquire(ctx, fileReq("/p/x", "B"))
	require.NoError(t, err)
	require.True(t, queued.Queued)

	// Releasing A grants B's wait entry atomically.
	ok, err := m.Release(ctx, first.Lock.ID)
	require.NoError(t, err)
	require.True(t, ok)

	active, err := m.ActiveLocks(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "B", active[0].OwnerID)
}

func TestRedisTTLEviction(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	res, err := m.Acquire(ctx, AcquireRequest{
		Resource: models.ResourceFile, ResourceID: "/p/x", OwnerID: "A", TTL: ttl(30 * time.Second),
	})
	require.NoError(t, err)

	mr.FastForward(time.Minute)

	held, err := m.IsLocked(ctx, models.ResourceFile, "/p/x")
	require.NoError(t, err)
	assert.False(t, held)

	ok, err := m.Release(ctx, res.Lock.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBackendErrorSurfaces(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	m := NewManager(NewRedisBackend(rdb), nil, 5*time.Minute, true)
	ctx := context.Background()

	// Simulate an unreachable store: no fallback, the error surfaces.
	mr.Close()

	_, err := m.Acquire(ctx, fileReq("/p/x", "A"))
	require.Error(t, err)
	assert.True(t, IsBackendError(err))
}
