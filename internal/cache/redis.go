package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"bakery/internal/catalog"
	"bakery/internal/domain"
)

const snapshotKey = "bakery:catalog:snapshot"

// RedisSnapshotCache последний удачный снимок каталога в Redis.
// Используется как запасной вариант до встроенного каталога.
type RedisSnapshotCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ catalog.SnapshotCache = (*RedisSnapshotCache)(nil)

func NewRedisSnapshotCache(client *redis.Client, baseTTL time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, baseTTL: baseTTL}
}

func (r *RedisSnapshotCache) Get(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot failed: %w", err)
	}
	return &snap, nil
}

func (r *RedisSnapshotCache) Set(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	ttl := r.baseTTL
	if ttl > 0 {
		ttl += time.Duration(rand.Intn(5)) * time.Minute
	}
	if err := r.client.Set(ctx, snapshotKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSnapshotCache) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
