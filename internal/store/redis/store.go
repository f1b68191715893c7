package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultHistoryTTL bounds how long an idle trip's edit history is
	// kept (refreshed on every write).
	DefaultHistoryTTL = 30 * 24 * time.Hour
	// DefaultPoolTTL is the TTL for cached candidate pools.
	DefaultPoolTTL = 15 * time.Minute
)

// Store handles Redis operations for edit histories and pool caches.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}
