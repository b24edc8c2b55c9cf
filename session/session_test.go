package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debghosh/kreations/membership"
	"github.com/debghosh/kreations/models"
	"github.com/debghosh/kreations/storage"
)

func TestLoginRejectsEmptyFields(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(storage.NewMemoryStore())

	_, err := mgr.Login(ctx, "", "secret", models.RoleSubscriber)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = mgr.Login(ctx, "jo@example.com", "", models.RoleSubscriber)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = mgr.Login(ctx, "   ", "secret", models.RoleSubscriber)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBuildsUserFromEmail(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(storage.NewMemoryStore())

	user, err := mgr.Login(ctx, "juliette@example.com", "anything", "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "juliette", user.Name)
	assert.Equal(t, models.RoleSubscriber, user.Role, "role defaults to subscriber")
	assert.False(t, user.JoinedDate.IsZero())

	stored, err := mgr.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.Email, stored.Email)
}

func TestLoginGrantsRequestedRole(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(storage.NewMemoryStore())

	admin, err := mgr.Login(ctx, "boss@example.com", "pw", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	isAdmin, err := mgr.IsAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isSub, err := mgr.IsSubscriber(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, isSub)
}

func TestRapidLoginsAreIndependentSessions(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(storage.NewMemoryStore())

	first, err := mgr.Login(ctx, "same@example.com", "pw", models.RoleSubscriber)
	require.NoError(t, err)
	second, err := mgr.Login(ctx, "same@example.com", "pw", models.RoleSubscriber)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetUserUnknownID(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(storage.NewMemoryStore())

	user, err := mgr.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

// Logout must clear the user record and every per-user data key so a later
// login on the same store starts with nothing inherited.
func TestLogoutClearsOwnership(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	mgr := NewManager(store)
	favs := membership.Favorites(store)

	alice, err := mgr.Login(ctx, "alice@example.com", "pw", models.RoleSubscriber)
	require.NoError(t, err)
	require.NoError(t, favs.Add(ctx, alice.ID, "w1"))

	require.NoError(t, mgr.Logout(ctx, alice.ID))

	gone, err := mgr.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	contains, err := favs.Contains(ctx, alice.ID, "w1")
	require.NoError(t, err)
	assert.False(t, contains)

	bob, err := mgr.Login(ctx, "bob@example.com", "pw", models.RoleSubscriber)
	require.NoError(t, err)
	count, err := favs.Count(ctx, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "a new login must not inherit another user's data")
}
