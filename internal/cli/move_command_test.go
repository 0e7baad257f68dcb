package cli

import (
	"context"
	"testing"

	"taskflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("moves a task to a priority lane", func(t *testing.T) {
		app := setupLoggedInApp(t)
		task := app.store.AddTask(domain.TaskInput{Title: "Buy milk", Priority: domain.PriorityLow})

		err := NewMoveCommand(app).Execute(ctx, task.ID, "high")
		require.NoError(t, err)

		got, _ := app.store.Task(task.ID)
		assert.Equal(t, domain.PriorityHigh, got.Priority)
	})

	t.Run("moves a task to the done column", func(t *testing.T) {
		app := setupLoggedInApp(t)
		task := app.store.AddTask(domain.TaskInput{Title: "Buy milk", Priority: domain.PriorityLow})

		err := NewMoveCommand(app).Execute(ctx, task.ID, "done")
		require.NoError(t, err)

		got, _ := app.store.Task(task.ID)
		assert.True(t, got.IsCompleted)
	})

	t.Run("moves a completed task back to active", func(t *testing.T) {
		app := setupLoggedInApp(t)
		task := app.store.AddTask(domain.TaskInput{Title: "Buy milk", Priority: domain.PriorityLow})
		app.store.ToggleTaskCompletion(task.ID)

		err := NewMoveCommand(app).Execute(ctx, task.ID, "active")
		require.NoError(t, err)

		got, _ := app.store.Task(task.ID)
		assert.False(t, got.IsCompleted)
	})

	t.Run("rejects an unknown lane", func(t *testing.T) {
		app := setupLoggedInApp(t)
		task := app.store.AddTask(domain.TaskInput{Title: "Buy milk", Priority: domain.PriorityLow})

		err := NewMoveCommand(app).Execute(ctx, task.ID, "backlog")
		assert.Error(t, err)
	})
}
