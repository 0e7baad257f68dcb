package cli

import (
	"context"
	"fmt"

	"taskflow/internal/store"
	"taskflow/internal/transition"
)

// MoveCommand handles the move command
type MoveCommand struct {
	app          *App
	store        *store.Store
	transitions  *transition.Engine
	errorHandler *ErrorHandler
}

// NewMoveCommand creates a new move command handler
func NewMoveCommand(app *App) *MoveCommand {
	return &MoveCommand{
		app:          app,
		store:        app.store,
		transitions:  app.transitions,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context, taskRef, lane string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	id, err := c.app.resolveTaskID(taskRef)
	if err != nil {
		return c.errorHandler.Handle("move task", err)
	}

	target, err := transition.ParseTarget(lane)
	if err != nil {
		return c.errorHandler.Handle("move task", err)
	}

	c.transitions.Drop(id, target)

	task, _ := c.store.Task(id)
	fmt.Printf("Moved task %s: %s\n", shortID(task.ID), task.Title)
	return nil
}
