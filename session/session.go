package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/debghosh/kreations/models"
	"github.com/debghosh/kreations/storage"
)

// ErrInvalidCredentials rejects a login with an empty email or password.
var ErrInvalidCredentials = errors.New("email and password are required")

// Manager owns user identity and the login/logout lifecycle. It is a plain
// value over a Store — callers pass it where needed, there is no ambient
// current-user singleton.
type Manager struct {
	store storage.Store
}

func NewManager(s storage.Store) *Manager {
	return &Manager{store: s}
}

// Login is demo-grade on purpose: any non-empty email/password pair succeeds
// and the requested role is taken at face value. Do not mistake this for
// authentication.
func (m *Manager) Login(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if role == "" {
		role = models.RoleSubscriber
	}

	user := &models.User{
		ID:         uuid.NewString(),
		Email:      email,
		Role:       role,
		Name:       strings.SplitN(email, "@", 2)[0],
		JoinedDate: time.Now().UTC(),
	}

	if err := storage.SetJSON(ctx, m.store, storage.ForUser(storage.KeyUser, user.ID), user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout removes the user record and every per-user data key. Leaving the
// sets behind would hand one user's favorites and collections to whoever
// logs in next on the same store, so logout always clears.
func (m *Manager) Logout(ctx context.Context, userID string) error {
	keys := []string{
		storage.KeyUser,
		storage.KeyFavorites,
		storage.KeySavedItems,
		storage.KeyCollections,
	}
	for _, key := range keys {
		if err := m.store.Remove(ctx, storage.ForUser(key, userID)); err != nil {
			return err
		}
	}
	return nil
}

// GetUser returns the persisted user, or nil when the id is unknown.
func (m *Manager) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	ok, err := storage.GetJSON(ctx, m.store, storage.ForUser(storage.KeyUser, userID), &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// VerifyRole reports whether the user exists and carries the given role.
func (m *Manager) VerifyRole(ctx context.Context, userID string, role models.Role) (bool, error) {
	user, err := m.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == role, nil
}

func (m *Manager) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return m.VerifyRole(ctx, userID, models.RoleAdmin)
}

func (m *Manager) IsSubscriber(ctx context.Context, userID string) (bool, error) {
	return m.VerifyRole(ctx, userID, models.RoleSubscriber)
}
