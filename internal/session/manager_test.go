package session

import (
	"context"
	"testing"

	"taskflow/internal/domain"
	"taskflow/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewManager(repo)
}

func TestManager_SaveAndLoad(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	user := domain.User{ID: "u1", Email: "a@b.com", DisplayName: "Al"}
	require.NoError(t, manager.Save(ctx, user))

	restored, err := manager.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "a@b.com", restored.Email)
	assert.Equal(t, "Al", restored.DisplayName)
	assert.Equal(t, "u1", restored.ID)
}

func TestManager_Load_NoSession(t *testing.T) {
	manager := setupManager(t)

	restored, err := manager.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestManager_Clear(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	require.NoError(t, manager.Save(ctx, domain.User{ID: "u1", Email: "a@b.com", DisplayName: "Al"}))
	require.NoError(t, manager.Clear(ctx))

	restored, err := manager.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestManager_Clear_WithoutSession(t *testing.T) {
	manager := setupManager(t)

	// Logout with no persisted session must not error.
	assert.NoError(t, manager.Clear(context.Background()))
}

func TestManager_Save_OverwritesPreviousSession(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	require.NoError(t, manager.Save(ctx, domain.User{ID: "u1", Email: "a@b.com", DisplayName: "Al"}))
	require.NoError(t, manager.Save(ctx, domain.User{ID: "u2", Email: "c@d.com", DisplayName: "Cee"}))

	restored, err := manager.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "u2", restored.ID)
	assert.Equal(t, "c@d.com", restored.Email)
}

func TestManager_CustomSlotName(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	first := NewManagerWithSlot(repo, "slot_one")
	second := NewManagerWithSlot(repo, "slot_two")
	ctx := context.Background()

	require.NoError(t, first.Save(ctx, domain.User{ID: "u1", Email: "a@b.com", DisplayName: "Al"}))

	restored, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored, "sessions in different slots must not leak into each other")
}
