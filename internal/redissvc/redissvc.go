package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

const snapshotKeyPrefix = "inventory:snapshot:"

// RedisService stores derived snapshots as JSON with a TTL.
type RedisService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ttl time.Duration) *RedisService {
	return &RedisService{
		rdb: rdb,
		ttl: ttl,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func SnapshotKey(fingerprint string) string {
	return snapshotKeyPrefix + fingerprint
}

func (a *RedisService) GetSnapshot(ctx context.Context, fingerprint string) (*models.Snapshot, bool, error) {
	val, err := a.rdb.Get(ctx, SnapshotKey(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}
	var s models.Snapshot
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}
	return &s, true, nil
}

func (a *RedisService) SetSnapshot(ctx context.Context, fingerprint string, s *models.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := a.rdb.Set(ctx, SnapshotKey(fingerprint), data, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to redis: %w", err)
	}
	return nil
}
