package cli

import (
	"context"
	"fmt"

	"taskflow/internal/store"
)

// DeleteCommand handles the rm command
type DeleteCommand struct {
	app          *App
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the rm command
func (c *DeleteCommand) Execute(ctx context.Context, taskRef string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	id, err := c.app.resolveTaskID(taskRef)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	task, _ := c.store.Task(id)
	c.store.DeleteTask(id)

	fmt.Printf("Deleted task %s: %s\n", shortID(id), task.Title)
	return nil
}
