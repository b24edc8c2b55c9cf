package catalog

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

// ErrInvalidItem rejects an admin-created item missing a title or carrying a
// negative price.
var ErrInvalidItem = errors.New("title is required and price must be non-negative")

// CategoryAll is the sentinel meaning "no category filtering".
const CategoryAll = "all"

// Catalog is the layered product list: the built-in seed until an admin
// mutates it, the persisted products key afterwards. The first admin write
// materializes the seed into the key so later reads have one authoritative
// source.
type Catalog struct {
	store storage.Store
}

func New(s storage.Store) *Catalog {
	return &Catalog{store: s}
}

// All returns every catalog item. Absent or malformed persisted state falls
// back to the seed.
func (c *Catalog) All(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	ok, err := storage.GetJSON(ctx, c.store, storage.KeyProducts, &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedItems(), nil
	}
	return items, nil
}

// ByID returns the item, or nil when unknown.
func (c *Catalog) ByID(ctx context.Context, id string) (*models.Item, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, nil
}

// ByCategory filters on the category field; CategoryAll returns everything.
func (c *Catalog) ByCategory(ctx context.Context, category string) ([]models.Item, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == CategoryAll {
		return items, nil
	}
	out := []models.Item{}
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

// Featured returns the items flagged for the homepage.
func (c *Catalog) Featured(ctx context.Context) ([]models.Item, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Item{}
	for _, item := range items {
		if item.Featured {
			out = append(out, item)
		}
	}
	return out, nil
}

// materialize returns the persisted product list, copying the seed into the
// products key first if no admin has written one yet.
func (c *Catalog) materialize(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	ok, err := storage.GetJSON(ctx, c.store, storage.KeyProducts, &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		items = SeedItems()
	}
	return items, nil
}

// Create appends an item to the catalog. An empty id gets a generated one;
// an existing id is replaced (last write wins).
func (c *Catalog) Create(ctx context.Context, item models.Item) (*models.Item, error) {
	if strings.TrimSpace(item.Title) == "" || item.Price < 0 {
		return nil, ErrInvalidItem
	}
	if item.ID == "" {
		item.ID = newItemID()
	}

	items, err := c.materialize(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := storage.SetJSON(ctx, c.store, storage.KeyProducts, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemUpdate carries the fields an admin update may change; nil fields are
// left untouched.
type ItemUpdate struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Subcategory *string   `json:"subcategory"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	Featured    *bool     `json:"featured"`
	InStock     *bool     `json:"inStock"`
	Popularity  *int      `json:"popularity"`
}

// Update shallow-merges the given fields into the matching item and returns
// it, or nil when the id is unknown (no-op).
func (c *Catalog) Update(ctx context.Context, id string, upd ItemUpdate) (*models.Item, error) {
	items, err := c.materialize(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if upd.Title != nil {
			items[i].Title = *upd.Title
		}
		if upd.Category != nil {
			items[i].Category = *upd.Category
		}
		if upd.Subcategory != nil {
			items[i].Subcategory = *upd.Subcategory
		}
		if upd.Price != nil {
			if *upd.Price < 0 {
				return nil, ErrInvalidItem
			}
			items[i].Price = *upd.Price
		}
		if upd.Description != nil {
			items[i].Description = *upd.Description
		}
		if upd.Image != nil {
			items[i].Image = *upd.Image
		}
		if upd.Tags != nil {
			items[i].Tags = *upd.Tags
		}
		if upd.Featured != nil {
			items[i].Featured = *upd.Featured
		}
		if upd.InStock != nil {
			items[i].InStock = *upd.InStock
		}
		if upd.Popularity != nil {
			items[i].Popularity = *upd.Popularity
		}
		if err := storage.SetJSON(ctx, c.store, storage.KeyProducts, items); err != nil {
			return nil, err
		}
		item := items[i]
		return &item, nil
	}
	return nil, nil
}

// Delete removes the item; an unknown id is a silent no-op.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	items, err := c.materialize(ctx)
	if err != nil {
		return err
	}
	next := make([]models.Item, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		return nil
	}
	return storage.SetJSON(ctx, c.store, storage.KeyProducts, next)
}

func newItemID() string {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("item-%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("item-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(bytes))
}
