package lock

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// lockKeyPattern matches every lock record key in the store.
const lockKeyPattern = "lock:*"

// RedisBackend stores lock records as JSON values with a matching key TTL.
// Expiry is enforced both by Redis eviction and by the manager's read-path
// checks.
type RedisBackend struct {
	rdb *redis.Client
}

// NewRedisBackend wraps an existing Redis client.
func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

// Get returns the lock stored at key, or nil if absent.
func (b *RedisBackend) Get(ctx context.Context, key string) (*models.Lock, error) {
	data, err := b.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, &BackendError{Op: "get", Err: err}
	}
	var lock models.Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, &BackendError{Op: "decode", Err: err}
	}
	return &lock, nil
}

// Put stores the lock at key with the given TTL.
func (b *RedisBackend) Put(ctx context.Context, key string, lock *models.Lock, ttl time.Duration) error {
	data, err := json.Marshal(lock)
	if err != nil {
		return &BackendError{Op: "encode", Err: err}
	}
	if err := b.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return &BackendError{Op: "set", Err: err}
	}
	return nil
}

// Delete removes the lock at key.
func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := b.rdb.Del(ctx, key).Err(); err != nil {
		return &BackendError{Op: "del", Err: err}
	}
	return nil
}

// List scans the keyspace for lock records. Records that disappear between
// scan and fetch (TTL eviction) are skipped.
func (b *RedisBackend) List(ctx context.Context) ([]*models.Lock, error) {
	var out []*models.Lock
	iter := b.rdb.Scan(ctx, 0, lockKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		lock, err := b.Get(ctx, iter.Val())
		if err != nil {
			return nil, err
		}
		if lock != nil {
			out = append(out, lock)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, &BackendError{Op: "scan", Err: err}
	}
	return out, nil
}
