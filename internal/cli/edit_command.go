package cli

import (
	"context"
	"fmt"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/store"
	"taskflow/internal/validation"
)

// EditOptions carries the fields to change on a task. Nil means keep
// the current value.
type EditOptions struct {
	Title       *string
	Description *string
	Priority    *string
	Category    *string
	Due         *string
	ClearDue    bool
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	store        *store.Store
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		store:        app.store,
		validator:    app.taskValidator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, taskRef string, opts EditOptions) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	id, err := c.app.resolveTaskID(taskRef)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	update, err := c.buildUpdate(opts)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	c.store.UpdateTask(id, update)

	task, _ := c.store.Task(id)
	fmt.Printf("Updated task %s: %s\n", shortID(task.ID), task.Title)
	return nil
}

// buildUpdate converts the flag values into a partial update,
// validating each changed field.
func (c *EditCommand) buildUpdate(opts EditOptions) (domain.TaskUpdate, error) {
	update := domain.TaskUpdate{ClearDueDate: opts.ClearDue}

	if opts.Title != nil {
		validTitle, err := c.validator.GetValidTitle(*opts.Title)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.Title = &validTitle
	}
	if opts.Description != nil {
		update.Description = opts.Description
	}
	if opts.Priority != nil {
		priority, err := domain.ParsePriority(*opts.Priority)
		if err != nil {
			return domain.TaskUpdate{}, errors.NewInvalidInputError("priority", err.Error())
		}
		update.Priority = &priority
	}
	if opts.Category != nil {
		category, err := c.app.resolveCategory(*opts.Category)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.CategoryID = &category.ID
	}
	if opts.Due != nil {
		if opts.ClearDue {
			return domain.TaskUpdate{}, errors.NewInvalidInputError("due", "--due and --clear-due are mutually exclusive")
		}
		due, err := parseDueDate(*opts.Due)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.DueDate = &due
	}

	return update, nil
}
