package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarelabs/wayfare/internal/domain"
)

// CachePool stores a city/category candidate pool with a TTL.
func (s *Store) CachePool(ctx context.Context, city, category string, pool []*domain.Location, ttl time.Duration) error {
	data, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("failed to marshal pool: %w", err)
	}
	if err := s.client.Set(ctx, PoolKey(city, category), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache pool: %w", err)
	}
	return nil
}

// GetCachedPool retrieves a cached candidate pool. ok=false is a miss.
func (s *Store) GetCachedPool(ctx context.Context, city, category string) ([]*domain.Location, bool, error) {
	data, err := s.client.Get(ctx, PoolKey(city, category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached pool: %w", err)
	}

	var pool []*domain.Location
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal pool: %w", err)
	}
	return pool, true, nil
}

// InvalidatePool removes one cached pool.
func (s *Store) InvalidatePool(ctx context.Context, city, category string) error {
	if err := s.client.Del(ctx, PoolKey(city, category)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate pool: %w", err)
	}
	return nil
}

// FlushPools removes all cached pools. Called after a catalog reload so
// stale pools never outlive the data they were derived from.
func (s *Store) FlushPools(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixPool+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete pool key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush pools: %w", err)
	}
	return nil
}
