package usage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// Aggregates maintains the fast per-window counters in Redis. The counters
// are derived state: they can always be rebuilt from the durable records.
type Aggregates struct {
	rdb *redis.Client
}

// NewAggregates wraps an existing Redis client.
func NewAggregates(rdb *redis.Client) *Aggregates {
	return &Aggregates{rdb: rdb}
}

// Add folds one record into the user's daily and weekly counter hashes and
// refreshes the key TTLs.
func (a *Aggregates) Add(ctx context.Context, rec *models.UsageRecord) error {
	tokens := int64(rec.InputTokens + rec.OutputTokens)
	model := string(rec.Model)

	pipe := a.rdb.Pipeline()
	for _, k := range []struct {
		key string
		ttl time.Duration
	}{
		{DailyKey(rec.UserID, rec.CreatedAt), dailyKeyTTL},
		{WeeklyKey(rec.UserID, rec.CreatedAt), weeklyKeyTTL},
	} {
		pipe.HIncrBy(ctx, k.key, "total_tokens", tokens)
		pipe.HIncrByFloat(ctx, k.key, "total_cost", rec.Cost)
		pipe.HIncrBy(ctx, k.key, "calls", 1)
		pipe.HIncrBy(ctx, k.key, model+"_tokens", tokens)
		pipe.HIncrByFloat(ctx, k.key, model+"_cost", rec.Cost)
		pipe.HIncrByFloat(ctx, k.key, model+"_hours", rec.Hours())
		pipe.Expire(ctx, k.key, k.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("updating usage aggregates: %w", err)
	}
	return nil
}

// WeeklyModelHours returns the user's accumulated hours for a model class in
// the week containing now. Present reports whether a counter exists.
func (a *Aggregates) WeeklyModelHours(ctx context.Context, userID string, model models.ModelClass, now time.Time) (hours float64, present bool, err error) {
	val, err := a.rdb.HGet(ctx, WeeklyKey(userID, now), string(model)+"_hours").Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading weekly hours: %w", err)
	}
	hours, err = strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parsing weekly hours counter: %w", err)
	}
	return hours, true, nil
}

// Snapshot returns all counters under the given key. A missing key yields an
// empty map.
func (a *Aggregates) Snapshot(ctx context.Context, key string) (map[string]string, error) {
	vals, err := a.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("reading usage counters: %w", err)
	}
	return vals, nil
}
