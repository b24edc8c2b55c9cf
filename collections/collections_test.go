package collections

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debghosh/kreations/storage"
)

func TestCreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	col, err := mgr.Create(ctx, "u1", "Gift Ideas", []string{"w1", "r2", "w1"}, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(col.ID, "collection-"))
	assert.True(t, col.IsUserCreated)
	assert.False(t, col.IsAdminCollection)
	assert.Equal(t, []string{"w1", "r2"}, col.Items, "duplicate ids are suppressed")

	got, err := mgr.GetByID(ctx, "u1", col.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gift Ideas", got.Name)
	assert.Equal(t, []string{"w1", "r2"}, got.Items)
}

func TestCreateRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	_, err := mgr.Create(ctx, "u1", "   ", nil, false)
	assert.ErrorIs(t, err, ErrInvalidName)

	count, err := mgr.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, count, "nothing may be persisted on a failed create")
}

func TestAdminCreateRequiresItems(t *testing.T) {
	ctx := context.Background()
	mgr := NewAdminManager(storage.NewMemoryStore())

	_, err := mgr.Create(ctx, "", "Empty Set", nil, true)
	assert.ErrorIs(t, err, ErrEmptySelection)

	count, err := mgr.Count(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserCollectionMayStartEmpty(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	col, err := mgr.Create(ctx, "u1", "Someday", nil, false)
	require.NoError(t, err)
	assert.Empty(t, col.Items)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	col, err := mgr.Create(ctx, "u1", "Short Lived", []string{"w1"}, false)
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, "u1", col.ID))
	got, err := mgr.GetByID(ctx, "u1", col.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op, not an error
	require.NoError(t, mgr.Delete(ctx, "u1", col.ID))
}

func TestAddAndRemoveItem(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	col, err := mgr.Create(ctx, "u1", "Trays", []string{"w6"}, false)
	require.NoError(t, err)

	require.NoError(t, mgr.AddItem(ctx, "u1", col.ID, "r1"))
	require.NoError(t, mgr.AddItem(ctx, "u1", col.ID, "r1")) // duplicate suppressed

	got, err := mgr.GetByID(ctx, "u1", col.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"w6", "r1"}, got.Items)

	require.NoError(t, mgr.RemoveItem(ctx, "u1", col.ID, "w6"))
	got, err = mgr.GetByID(ctx, "u1", col.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, got.Items)

	// Unknown collection id is a silent no-op
	require.NoError(t, mgr.AddItem(ctx, "u1", "collection-0-none", "w1"))
	require.NoError(t, mgr.RemoveItem(ctx, "u1", "collection-0-none", "w1"))
}

func TestApplyUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	mgr := NewAdminManager(storage.NewMemoryStore())

	col, err := mgr.Create(ctx, "", "Winter Picks", []string{"w1", "w4"}, false)
	require.NoError(t, err)
	assert.False(t, col.Featured)

	featured := true
	updated, err := mgr.ApplyUpdate(ctx, "", col.ID, Update{Featured: &featured})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Winter Picks", updated.Name, "untouched fields survive the merge")

	name := "Winter Warmers"
	updated, err = mgr.ApplyUpdate(ctx, "", col.ID, Update{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Winter Warmers", updated.Name)
	assert.True(t, updated.Featured)

	// Unknown id is a no-op returning nil
	missing, err := mgr.ApplyUpdate(ctx, "", "admin-collection-0-none", Update{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateRejectsBlankRename(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	col, err := mgr.Create(ctx, "u1", "Named", []string{"w1"}, false)
	require.NoError(t, err)

	blank := "  "
	_, err = mgr.ApplyUpdate(ctx, "u1", col.ID, Update{Name: &blank})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestUserAndAdminSpacesAreDisjoint(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	userMgr := NewUserManager(store)
	adminMgr := NewAdminManager(store)

	userCol, err := userMgr.Create(ctx, "u1", "Mine", []string{"w1"}, false)
	require.NoError(t, err)
	adminCol, err := adminMgr.Create(ctx, "", "Curated", []string{"r1"}, true)
	require.NoError(t, err)

	fromAdmin, err := adminMgr.GetByID(ctx, "", userCol.ID)
	require.NoError(t, err)
	assert.Nil(t, fromAdmin)

	fromUser, err := userMgr.GetByID(ctx, "u1", adminCol.ID)
	require.NoError(t, err)
	assert.Nil(t, fromUser)

	assert.True(t, adminCol.IsAdminCollection)
	assert.True(t, adminCol.Featured)
}

func TestFeaturedFiltersAdminCollections(t *testing.T) {
	ctx := context.Background()
	mgr := NewAdminManager(storage.NewMemoryStore())

	_, err := mgr.Create(ctx, "", "Front Page", []string{"w1"}, true)
	require.NoError(t, err)
	_, err = mgr.Create(ctx, "", "Back Catalog", []string{"w2"}, false)
	require.NoError(t, err)

	featured, err := mgr.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Front Page", featured[0].Name)
}

func TestIDsDifferAcrossRapidCreates(t *testing.T) {
	ctx := context.Background()
	mgr := NewUserManager(storage.NewMemoryStore())

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		col, err := mgr.Create(ctx, "u1", "Burst", []string{"w1"}, false)
		require.NoError(t, err)
		assert.False(t, seen[col.ID], "random suffix must keep rapid creations apart")
		seen[col.ID] = true
	}
}
