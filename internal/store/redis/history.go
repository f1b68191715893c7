package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarelabs/wayfare/internal/domain"
)

// SaveHistory persists a trip's edit history, refreshing its TTL.
// The write is last-writer-wins at trip granularity; the caller is the
// serialization point for concurrent edits to the same trip.
func (s *Store) SaveHistory(ctx context.Context, tripID string, h domain.History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := s.client.Set(ctx, HistoryKey(tripID), data, DefaultHistoryTTL).Err(); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// GetHistory retrieves a trip's edit history. A trip with no persisted
// history gets a fresh empty log, not an error.
func (s *Store) GetHistory(ctx context.Context, tripID string) (domain.History, error) {
	data, err := s.client.Get(ctx, HistoryKey(tripID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewHistory(), nil
		}
		return domain.History{}, fmt.Errorf("failed to get history: %w", err)
	}

	var h domain.History
	if err := json.Unmarshal(data, &h); err != nil {
		return domain.History{}, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return h, nil
}

// DeleteHistory removes a trip's edit history.
func (s *Store) DeleteHistory(ctx context.Context, tripID string) error {
	if err := s.client.Del(ctx, HistoryKey(tripID)).Err(); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}

// HistoryTripIDs scans all persisted trip histories.
func (s *Store) HistoryTripIDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, KeyPrefixHistory+"*", 0).Iterator()
	for iter.Next(ctx) {
		id, err := ExtractTripID(iter.Val())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan histories: %w", err)
	}
	return ids, nil
}
