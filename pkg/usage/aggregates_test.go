package usage

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

func newTestAggregates(t *testing.T) (*Aggregates, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAggregates(rdb), mr
}

func TestAggregatesAddFoldsIntoDailyAndWeeklyHashes(t *testing.T) {
	agg, mr := newTestAggregates(t)
	ctx := context.Background()

	at := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	rec := &models.UsageRecord{
		ID:           "rec-1",
		Model:        models.ModelOpus,
		InputTokens:  1000,
		OutputTokens: 2000,
		DurationMs:   1_800_000, // 0.5h
		Cost:         0.1650,
		UserID:       "user-1",
		CreatedAt:    at,
	}
	require.NoError(t, agg.Add(ctx, rec))
	require.NoError(t, agg.Add(ctx, rec))

	for _, key := range []string{
		DailyKey("user-1", at),
		WeeklyKey("user-1", at),
	} {
		snapshot, err := agg.Snapshot(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "6000", snapshot["total_tokens"], key)
		assert.Equal(t, "2", snapshot["calls"], key)
		assert.Equal(t, "6000", snapshot["opus_tokens"], key)
		assert.Equal(t, "0.33", snapshot["total_cost"], key)
		assert.Equal(t, "1", snapshot["opus_hours"], key)
		assert.Greater(t, mr.TTL(key), time.Duration(0), key)
	}
}

func TestWeeklyModelHours(t *testing.T) {
	agg, _ := newTestAggregates(t)
	ctx := context.Background()

	at := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	rec := &models.UsageRecord{
		ID:         "rec-1",
		Model:      models.ModelSonnet,
		DurationMs: 5_400_000, // 1.5h
		UserID:     "user-1",
		CreatedAt:  at,
	}
	require.NoError(t, agg.Add(ctx, rec))

	hours, present, err := agg.WeeklyModelHours(ctx, "user-1", models.ModelSonnet, at)
	require.NoError(t, err)
	assert.True(t, present)
	assert.InDelta(t, 1.5, hours, 0.001)

	// A class never written reports absent, not zero-present.
	_, present, err = agg.WeeklyModelHours(ctx, "user-1", models.ModelOpus, at)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestWeeklyCountersRollOverAtISOWeekBoundary(t *testing.T) {
	agg, _ := newTestAggregates(t)
	ctx := context.Background()

	sunday := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)
	rec := &models.UsageRecord{
		ID:         "rec-1",
		Model:      models.ModelOpus,
		DurationMs: 3_600_000,
		UserID:     "user-1",
		CreatedAt:  sunday,
	}
	require.NoError(t, agg.Add(ctx, rec))

	hours, present, err := agg.WeeklyModelHours(ctx, "user-1", models.ModelOpus, sunday)
	require.NoError(t, err)
	assert.True(t, present)
	assert.InDelta(t, 1.0, hours, 0.001)

	// The next ISO week starts from a clean slate.
	_, present, err = agg.WeeklyModelHours(ctx, "user-1", models.ModelOpus, monday)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestSnapshotOfMissingKeyIsEmpty(t *testing.T) {
	agg, _ := newTestAggregates(t)
	snapshot, err := agg.Snapshot(context.Background(), "usage:daily:nobody:2026-01-01")
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}
