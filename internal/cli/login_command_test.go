package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("logs in and stores the session", func(t *testing.T) {
		app := setupTestApp(t)

		err := NewLoginCommand(app).Execute(ctx, "alex@example.com", "Alex")
		require.NoError(t, err)

		user := app.store.User()
		require.NotNil(t, user)
		assert.Equal(t, "alex@example.com", user.Email)
		assert.Equal(t, "Alex", user.DisplayName)
	})

	t.Run("derives a display name from the email", func(t *testing.T) {
		app := setupTestApp(t)

		err := NewLoginCommand(app).Execute(ctx, "alex@example.com", "")
		require.NoError(t, err)

		require.NotNil(t, app.store.User())
		assert.Equal(t, "alex", app.store.User().DisplayName)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		app := setupTestApp(t)

		err := NewLoginCommand(app).Execute(ctx, "not-an-email", "Alex")
		require.Error(t, err)
		assert.Nil(t, app.store.User())
	})
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "alex", displayNameFromEmail("alex@example.com"))
	assert.Equal(t, "no-at-sign", displayNameFromEmail("no-at-sign"))
}
