package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debghosh/kreations/models"
	"github.com/debghosh/kreations/storage"
)

func TestAllFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	items, err := cat.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 12)
}

func TestByID(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	item, err := cat.ByID(ctx, "w1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Amber Sunset Pillar Candle", item.Title)

	missing, err := cat.ByID(ctx, "zz9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestByCategoryWithAllSentinel(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	wax, err := cat.ByCategory(ctx, "wax")
	require.NoError(t, err)
	assert.Len(t, wax, 6)
	for _, item := range wax {
		assert.Equal(t, "wax", item.Category)
	}

	all, err := cat.ByCategory(ctx, CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	none, err := cat.ByCategory(ctx, "ceramics")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFeatured(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	featured, err := cat.Featured(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, item := range featured {
		assert.True(t, item.Featured)
	}
}

func TestCreateMaterializesSeed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	cat := New(store)

	created, err := cat.Create(ctx, models.Item{
		Title:    "Terrazzo Resin Planter",
		Category: "resin",
		Price:    39,
		InStock:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "empty id gets generated")

	items, err := cat.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 13, "seed plus the new item")

	// The products key is authoritative now
	raw, err := store.Get(ctx, storage.KeyProducts)
	require.NoError(t, err)
	assert.NotNil(t, raw)
}

func TestCreateRejectsInvalidItem(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	_, err := cat.Create(ctx, models.Item{Title: "  ", Price: 10})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = cat.Create(ctx, models.Item{Title: "Bargain", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	price := 49.0
	featured := false
	item, err := cat.Update(ctx, "w1", ItemUpdate{Price: &price, Featured: &featured})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 49.0, item.Price)
	assert.False(t, item.Featured)
	assert.Equal(t, "Amber Sunset Pillar Candle", item.Title, "unspecified fields survive")

	// Last write wins, no versioning
	price = 59.0
	item, err = cat.Update(ctx, "w1", ItemUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 59.0, item.Price)
}

func TestUpdateMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	title := "Ghost"
	item, err := cat.Update(ctx, "zz9", ItemUpdate{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestDeleteSeedItem(t *testing.T) {
	ctx := context.Background()
	cat := New(storage.NewMemoryStore())

	require.NoError(t, cat.Delete(ctx, "w1"))

	item, err := cat.ByID(ctx, "w1")
	require.NoError(t, err)
	assert.Nil(t, item)

	items, err := cat.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 11)

	// Unknown id is a no-op
	require.NoError(t, cat.Delete(ctx, "w1"))
}

func TestMutationsSurviveReload(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	cat := New(store)
	inStock := false
	_, err := cat.Update(ctx, "w2", ItemUpdate{InStock: &inStock})
	require.NoError(t, err)

	// A fresh Catalog over the same store sees the overlay
	reloaded := New(store)
	item, err := reloaded.ByID(ctx, "w2")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.False(t, item.InStock)
}

func TestCorruptProductsKeyFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyProducts, []byte("not-json")))

	cat := New(store)
	items, err := cat.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 12)
}
