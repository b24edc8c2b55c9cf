package collections

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/debghosh/kreations/models"
	"github.com/debghosh/kreations/storage"
)

var (
	// ErrInvalidName rejects a collection whose name trims to empty.
	ErrInvalidName = errors.New("collection name is required")
	// ErrEmptySelection rejects an admin collection created with no items.
	ErrEmptySelection = errors.New("select at least one item")
)

// Update carries the fields a collection update may change. Nil fields are
// left untouched (shallow merge).
type Update struct {
	Name     *string
	Featured *bool
}

// Manager implements the collection CRUD contract for one of the two
// disjoint collection spaces. User collections live under a per-user key;
// admin collections share one global key, carry the featured flag, and must
// curate at least one item at creation. User collections may start empty.
type Manager struct {
	store    storage.Store
	key      string
	idPrefix string
	admin    bool
}

func NewUserManager(s storage.Store) *Manager {
	return &Manager{store: s, key: storage.KeyCollections, idPrefix: "collection", admin: false}
}

func NewAdminManager(s storage.Store) *Manager {
	return &Manager{store: s, key: storage.KeyAdminCollections, idPrefix: "admin-collection", admin: true}
}

// IsAdmin reports whether this manager operates on the admin space.
func (m *Manager) IsAdmin() bool {
	return m.admin
}

// storageKey resolves the persisted key for an owner. The admin space is
// global; owner is ignored there.
func (m *Manager) storageKey(owner string) string {
	if m.admin {
		return m.key
	}
	return storage.ForUser(m.key, owner)
}

func (m *Manager) load(ctx context.Context, owner string) ([]models.Collection, error) {
	list := []models.Collection{}
	if _, err := storage.GetJSON(ctx, m.store, m.storageKey(owner), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Collection{}
	}
	return list, nil
}

func (m *Manager) persist(ctx context.Context, owner string, list []models.Collection) error {
	return storage.SetJSON(ctx, m.store, m.storageKey(owner), list)
}

// newID builds a "{prefix}-{timestamp}-{random}" id. The random hex suffix
// keeps rapid successive creations from colliding within a session; there is
// no global uniqueness check beyond that.
func (m *Manager) newID() string {
	return fmt.Sprintf("%s-%d-%s", m.idPrefix, time.Now().UnixMilli(), randomSuffix(4))
}

func randomSuffix(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand"
	}
	return hex.EncodeToString(bytes)
}

// Create validates the name (and, in the admin space, the selection),
// suppresses duplicate item ids, and appends the new collection.
func (m *Manager) Create(ctx context.Context, owner, name string, itemIDs []string, featured bool) (*models.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if m.admin && len(itemIDs) == 0 {
		return nil, ErrEmptySelection
	}

	list, err := m.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	col := models.Collection{
		ID:        m.newID(),
		Name:      name,
		Items:     dedupe(itemIDs),
		CreatedAt: time.Now().UTC(),
	}
	if m.admin {
		col.IsAdminCollection = true
		col.Featured = featured
	} else {
		col.IsUserCreated = true
	}

	if err := m.persist(ctx, owner, append(list, col)); err != nil {
		return nil, err
	}
	return &col, nil
}

// Delete removes the matching collection. Deleting an unknown id is an
// idempotent no-op, not an error.
func (m *Manager) Delete(ctx context.Context, owner, collectionID string) error {
	list, err := m.load(ctx, owner)
	if err != nil {
		return err
	}
	next := make([]models.Collection, 0, len(list))
	found := false
	for _, col := range list {
		if col.ID == collectionID {
			found = true
			continue
		}
		next = append(next, col)
	}
	if !found {
		return nil
	}
	return m.persist(ctx, owner, next)
}

// AddItem adds itemID to the collection's item set; duplicates are
// suppressed and a missing collection is a silent no-op.
func (m *Manager) AddItem(ctx context.Context, owner, collectionID, itemID string) error {
	list, err := m.load(ctx, owner)
	if err != nil {
		return err
	}
	changed := false
	for i := range list {
		if list[i].ID != collectionID {
			continue
		}
		if !list[i].HasItem(itemID) {
			list[i].Items = append(list[i].Items, itemID)
			changed = true
		}
		break
	}
	if !changed {
		return nil
	}
	return m.persist(ctx, owner, list)
}

// RemoveItem drops itemID from the collection's item set; a missing
// collection or item is a silent no-op.
func (m *Manager) RemoveItem(ctx context.Context, owner, collectionID, itemID string) error {
	list, err := m.load(ctx, owner)
	if err != nil {
		return err
	}
	changed := false
	for i := range list {
		if list[i].ID != collectionID {
			continue
		}
		next := make([]string, 0, len(list[i].Items))
		for _, id := range list[i].Items {
			if id == itemID {
				changed = true
				continue
			}
			next = append(next, id)
		}
		list[i].Items = next
		break
	}
	if !changed {
		return nil
	}
	return m.persist(ctx, owner, list)
}

// ApplyUpdate shallow-merges the non-nil fields into the matching collection
// and returns it, or nil when the id is unknown (no-op).
func (m *Manager) ApplyUpdate(ctx context.Context, owner, collectionID string, upd Update) (*models.Collection, error) {
	list, err := m.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != collectionID {
			continue
		}
		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return nil, ErrInvalidName
			}
			list[i].Name = name
		}
		if upd.Featured != nil && m.admin {
			list[i].Featured = *upd.Featured
		}
		if err := m.persist(ctx, owner, list); err != nil {
			return nil, err
		}
		col := list[i]
		return &col, nil
	}
	return nil, nil
}

// GetByID returns the collection, or nil when unknown.
func (m *Manager) GetByID(ctx context.Context, owner, collectionID string) (*models.Collection, error) {
	list, err := m.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	for _, col := range list {
		if col.ID == collectionID {
			return &col, nil
		}
	}
	return nil, nil
}

func (m *Manager) List(ctx context.Context, owner string) ([]models.Collection, error) {
	return m.load(ctx, owner)
}

func (m *Manager) Count(ctx context.Context, owner string) (int, error) {
	list, err := m.load(ctx, owner)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// Featured returns the admin collections flagged for the homepage.
func (m *Manager) Featured(ctx context.Context) ([]models.Collection, error) {
	list, err := m.load(ctx, "")
	if err != nil {
		return nil, err
	}
	out := []models.Collection{}
	for _, col := range list {
		if col.Featured {
			out = append(out, col)
		}
	}
	return out, nil
}

func dedupe(ids []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
