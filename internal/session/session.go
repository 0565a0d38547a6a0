package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
)

// ErrNotSignedIn is the not-found condition for the current-user key.
// Callers surface it by directing the user to sign in, never by crashing.
var ErrNotSignedIn = errors.New("not signed in, run 'habitkit auth signin' first")

// Manager resolves and updates the active user. Identity always flows out
// of here as an explicit value; no other package reads the currentUser key.
type Manager struct {
	store storage.Store
}

func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// Current returns the signed-in user, or ErrNotSignedIn.
func (m *Manager) Current() (models.User, error) {
	raw, err := m.store.Get(constants.CurrentUserKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, ErrNotSignedIn
		}
		return models.User{}, fmt.Errorf("failed to read session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to parse session: %w", err)
	}

	return user, nil
}

// Start records the user as the active session.
func (m *Manager) Start(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := m.store.Set(constants.CurrentUserKey, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// End clears the active session. Ending an absent session is not an error.
func (m *Manager) End() error {
	if err := m.store.Delete(constants.CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
