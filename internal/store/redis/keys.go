package redis

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixHistory is the prefix for per-trip edit history keys
	KeyPrefixHistory = "wayfare:history:"
	// KeyPrefixPool is the prefix for cached candidate pools
	KeyPrefixPool = "wayfare:pool:"
)

// HistoryKey returns the Redis key for a trip's edit history.
func HistoryKey(tripID string) string {
	return KeyPrefixHistory + tripID
}

// PoolKey returns the Redis key for a cached candidate pool. Category
// may be empty for the unfiltered city pool.
func PoolKey(city, category string) string {
	city = strings.ToLower(strings.TrimSpace(city))
	if category == "" {
		category = "all"
	}
	return KeyPrefixPool + city + ":" + category
}

// ExtractTripID extracts the trip id from a history key.
func ExtractTripID(key string) (string, error) {
	if len(key) <= len(KeyPrefixHistory) || !strings.HasPrefix(key, KeyPrefixHistory) {
		return "", fmt.Errorf("invalid history key: %s", key)
	}
	return key[len(KeyPrefixHistory):], nil
}
