package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Persisted key space. The per-user keys (user, favorites, savedItems,
// collections) are namespaced with the owning user id via ForUser so that
// data never leaks between accounts; adminCollections and products are
// global.
const (
	KeyUser             = "user"
	KeyFavorites        = "favorites"
	KeySavedItems       = "savedItems"
	KeyCollections      = "collections"
	KeyAdminCollections = "adminCollections"
	KeyProducts         = "products"
)

// SoftSizeBudget is the advisory ceiling on total stored bytes. Nothing
// enforces it; backends inherit whatever quota the host environment has.
const SoftSizeBudget = 5_000_000

// Store is the durable key-value layer underneath every manager. Writes are
// synchronous write-through; there is no buffering or batching.
type Store interface {
	// Get returns the stored bytes, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// ForUser namespaces a per-user key with the owning user id.
func ForUser(key, userID string) string {
	return key + ":" + userID
}

// GetJSON decodes the value under key into v. It returns false when the key
// is absent or holds malformed JSON — malformed entries are treated as
// absent, never surfaced as errors, so callers fall back to their empty
// default. Only backend failures propagate.
func GetJSON(ctx context.Context, s Store, key string, v interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil || !json.Valid(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON serializes v and writes it through unconditionally.
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
