// Package cache provides the placement-result cache used by the HTTP API.
//
// Placement computation is deterministic: the same pictograph in the same
// grid mode always yields the same result, so responses can be cached
// indefinitely under a content hash of the canonicalized request. Three
// backends exist:
//
//   - memory: in-process map with TTL, for single-instance deployments
//   - redis: shared cache for multi-instance deployments
//   - null: disables caching
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores serialized placement results under content-hash keys.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PlacementKey builds the cache key for a placement request: a prefix plus
// the SHA-256 of the canonical JSON encoding of its parts.
func PlacementKey(parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("placement:%s", hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 hex digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
