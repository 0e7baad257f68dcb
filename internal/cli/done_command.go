package cli

import (
	"context"
	"fmt"

	"taskflow/internal/store"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app          *App
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, taskRef string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	id, err := c.app.resolveTaskID(taskRef)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	c.store.ToggleTaskCompletion(id)

	task, _ := c.store.Task(id)
	if task.IsCompleted {
		fmt.Printf("Completed task %s: %s\n", shortID(task.ID), task.Title)
	} else {
		fmt.Printf("Reopened task %s: %s\n", shortID(task.ID), task.Title)
	}
	return nil
}
