package cli

import (
	"context"
	"fmt"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/store"
	"taskflow/internal/validation"
)

// AddOptions carries the optional fields of a new task.
type AddOptions struct {
	Description string
	Priority    string
	Category    string
	Due         string
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	store        *store.Store
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		store:        app.store,
		validator:    app.taskValidator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, title string, opts AddOptions) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	validTitle, err := c.validator.GetValidTitle(title)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	priority := domain.PriorityMedium
	if opts.Priority != "" {
		priority, err = domain.ParsePriority(opts.Priority)
		if err != nil {
			return c.errorHandler.Handle("add task", errors.NewInvalidInputError("priority", err.Error()))
		}
	}

	categoryID := ""
	if opts.Category != "" {
		category, err := c.app.resolveCategory(opts.Category)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		categoryID = category.ID
	}

	input := domain.TaskInput{
		Title:       validTitle,
		Description: opts.Description,
		Priority:    priority,
		CategoryID:  categoryID,
	}
	if opts.Due != "" {
		due, err := parseDueDate(opts.Due)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		input.DueDate = &due
	}

	task := c.store.AddTask(input)
	fmt.Printf("Added task %s: %s\n", shortID(task.ID), task.Title)
	return nil
}
