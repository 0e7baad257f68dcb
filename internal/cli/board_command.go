package cli

import (
	"context"
	"fmt"

	"taskflow/internal/domain"
	"taskflow/internal/query"
	"taskflow/internal/store"
)

// BoardCommand handles the board command
type BoardCommand struct {
	app          *App
	store        *store.Store
	queries      *query.Engine
	errorHandler *ErrorHandler
}

// NewBoardCommand creates a new board command handler
func NewBoardCommand(app *App) *BoardCommand {
	return &BoardCommand{
		app:          app,
		store:        app.store,
		queries:      app.queries,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the board command
func (c *BoardCommand) Execute(ctx context.Context) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	result := c.queries.Run(query.Options{SortBy: query.SortByCreated, Direction: query.SortAscending})

	lanes := map[domain.Priority][]domain.Task{}
	for _, task := range result.Active {
		lanes[task.Priority] = append(lanes[task.Priority], task)
	}

	for _, priority := range domain.Priorities {
		c.printLane(string(priority), lanes[priority])
	}
	c.printLane("Completed", result.Completed)
	return nil
}

// printLane renders one board column.
func (c *BoardCommand) printLane(name string, tasks []domain.Task) {
	fmt.Printf("%s (%d)\n", name, len(tasks))
	for _, task := range tasks {
		fmt.Printf("  %-8s  %s\n", shortID(task.ID), task.Title)
	}
	fmt.Println()
}
