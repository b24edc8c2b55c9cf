package membership

import (
	"context"

	"github.com/debghosh/kreations/storage"
)

// Set is one named per-user membership set of item ids (favorites, saved
// items). The same type serves every set — only the key name differs.
// Membership has set semantics (no duplicates) but insertion order is
// preserved in the persisted array.
type Set struct {
	store storage.Store
	name  string
}

func NewSet(s storage.Store, name string) *Set {
	return &Set{store: s, name: name}
}

// Favorites and SavedItems are the two sets the storefront uses. They are
// independent: membership in one implies nothing about the other.
func Favorites(s storage.Store) *Set {
	return NewSet(s, storage.KeyFavorites)
}

func SavedItems(s storage.Store) *Set {
	return NewSet(s, storage.KeySavedItems)
}

func (s *Set) Name() string {
	return s.name
}

func (s *Set) key(userID string) string {
	return storage.ForUser(s.name, userID)
}

// List returns the member ids in insertion order. Absent or malformed
// persisted state degrades to the empty set.
func (s *Set) List(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	if _, err := storage.GetJSON(ctx, s.store, s.key(userID), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Toggle flips membership of itemID and reports the new state: true when the
// item is now a member. Two toggles always restore the original state.
func (s *Set) Toggle(ctx context.Context, userID, itemID string) (bool, error) {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == itemID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, itemID)
	}

	if err := storage.SetJSON(ctx, s.store, s.key(userID), next); err != nil {
		return false, err
	}
	return !found, nil
}

// Add appends itemID unless it is already a member.
func (s *Set) Add(ctx context.Context, userID, itemID string) error {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == itemID {
			return nil
		}
	}
	return storage.SetJSON(ctx, s.store, s.key(userID), append(ids, itemID))
}

// Remove filters itemID out; removing a non-member is a no-op.
func (s *Set) Remove(ctx context.Context, userID, itemID string) error {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == itemID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		return nil
	}
	return storage.SetJSON(ctx, s.store, s.key(userID), next)
}

func (s *Set) Contains(ctx context.Context, userID, itemID string) (bool, error) {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Set) Count(ctx context.Context, userID string) (int, error) {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
