package session

import (
	"context"
	"encoding/json"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/logging"
	"taskflow/internal/repository/sqlite"
)

// DefaultSlotName is the fixed slot the session is persisted under.
const DefaultSlotName = "taskflow_user"

// Manager persists the authenticated user across restarts. The user is
// serialized as JSON into a single named slot; no other entity shares
// that slot.
type Manager struct {
	repo     sqlite.Repository
	slotName string
}

// NewManager creates a session manager over the given slot repository
// using the default slot name.
func NewManager(repo sqlite.Repository) *Manager {
	return NewManagerWithSlot(repo, DefaultSlotName)
}

// NewManagerWithSlot creates a session manager using a custom slot
// name.
func NewManagerWithSlot(repo sqlite.Repository, slotName string) *Manager {
	return &Manager{
		repo:     repo,
		slotName: slotName,
	}
}

// Save persists the user to the session slot.
func (m *Manager) Save(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.NewStorageError("encode session", err)
	}
	if err := m.repo.PutSlot(ctx, m.slotName, data); err != nil {
		return err
	}
	logging.Debugf("session saved for %s\n", user.Email)
	return nil
}

// Load restores a previously persisted session. Returns (nil, nil)
// when no session has been persisted, leaving the caller
// unauthenticated.
func (m *Manager) Load(ctx context.Context) (*domain.User, error) {
	data, err := m.repo.GetSlot(ctx, m.slotName)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.NewStorageError("decode session", err)
	}
	return &user, nil
}

// Clear removes the persisted session. Clearing an absent session is
// a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	return m.repo.DeleteSlot(ctx, m.slotName)
}
