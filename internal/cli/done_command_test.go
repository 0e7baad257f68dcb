package cli

import (
	"context"
	"testing"

	"taskflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoneCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("toggles completion both ways", func(t *testing.T) {
		app := setupLoggedInApp(t)
		task := app.store.AddTask(domain.TaskInput{Title: "Buy milk", Priority: domain.PriorityLow})
		cmd := NewDoneCommand(app)

		require.NoError(t, cmd.Execute(ctx, task.ID))
		got, _ := app.store.Task(task.ID)
		assert.True(t, got.IsCompleted)

		require.NoError(t, cmd.Execute(ctx, task.ID))
		got, _ = app.store.Task(task.ID)
		assert.False(t, got.IsCompleted)
	})

	t.Run("rejects an unknown task", func(t *testing.T) {
		app := setupLoggedInApp(t)

		err := NewDoneCommand(app).Execute(ctx, "no-such-task")
		assert.Error(t, err)
	})
}
