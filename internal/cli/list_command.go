package cli

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/query"
	"taskflow/internal/store"
)

// ListOptions carries the filter and sort flags of the list command.
type ListOptions struct {
	Search    string
	Category  string
	Priority  string
	SortBy    string
	Direction string
}

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	store        *store.Store
	queries      *query.Engine
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		store:        app.store,
		queries:      app.queries,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	queryOpts, err := c.buildQueryOptions(opts)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	result := c.queries.Run(queryOpts)
	c.printResult(result)
	return nil
}

// buildQueryOptions converts the flag values into derived-view options.
func (c *ListCommand) buildQueryOptions(opts ListOptions) (query.Options, error) {
	c.store.SetSearchQuery(opts.Search)

	queryOpts := query.Options{
		Search: c.store.SearchQuery(),
	}

	if opts.Category != "" {
		category, err := c.app.resolveCategory(opts.Category)
		if err != nil {
			return query.Options{}, err
		}
		queryOpts.CategoryID = category.ID
	}

	if opts.Priority != "" && !strings.EqualFold(opts.Priority, string(query.FilterAllPriorities)) {
		priority, err := domain.ParsePriority(opts.Priority)
		if err != nil {
			return query.Options{}, errors.NewInvalidInputError("priority", err.Error())
		}
		queryOpts.Priority = query.PriorityFilter(priority)
	}

	if opts.SortBy != "" {
		sortBy, err := parseSortOption(opts.SortBy)
		if err != nil {
			return query.Options{}, err
		}
		queryOpts.SortBy = sortBy
	}

	if opts.Direction != "" {
		direction, err := parseSortDirection(opts.Direction)
		if err != nil {
			return query.Options{}, err
		}
		queryOpts.Direction = direction
	}

	return queryOpts, nil
}

// printResult renders the two partitions as separate sections.
func (c *ListCommand) printResult(result query.Result) {
	if len(result.Active) == 0 && len(result.Completed) == 0 {
		fmt.Println("No tasks found")
		return
	}

	if len(result.Active) > 0 {
		fmt.Printf("Active (%d)\n", len(result.Active))
		for _, task := range result.Active {
			fmt.Println(c.formatTaskLine(task))
		}
	}

	if len(result.Completed) > 0 {
		if len(result.Active) > 0 {
			fmt.Println()
		}
		fmt.Printf("Completed (%d)\n", len(result.Completed))
		for _, task := range result.Completed {
			fmt.Println(c.formatTaskLine(task))
		}
	}
}

// formatTaskLine renders a single task row.
func (c *ListCommand) formatTaskLine(task domain.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-8s  %-6s  %-40s  %s", shortID(task.ID), task.Priority, truncate(task.Title, 40), c.app.categoryName(task.CategoryID))
	if task.DueDate != nil {
		fmt.Fprintf(&sb, "  due %s", task.DueDateKey())
		if !task.IsCompleted && task.IsOverdue(timeNow()) {
			sb.WriteString(" (overdue)")
		}
	}
	return sb.String()
}

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// parseSortOption parses a sort flag value.
func parseSortOption(input string) (query.SortOption, error) {
	switch strings.ToLower(input) {
	case "priority":
		return query.SortByPriority, nil
	case "duedate", "due":
		return query.SortByDueDate, nil
	case "alphabetical", "alpha", "title":
		return query.SortByAlphabetical, nil
	case "created", "createdat":
		return query.SortByCreated, nil
	default:
		return "", errors.NewInvalidInputError("sort", fmt.Sprintf("%q is not a sort option; use priority, dueDate, alphabetical, or created", input))
	}
}

// parseSortDirection parses a direction flag value.
func parseSortDirection(input string) (query.SortDirection, error) {
	switch strings.ToLower(input) {
	case "asc", "ascending":
		return query.SortAscending, nil
	case "desc", "descending":
		return query.SortDescending, nil
	default:
		return "", errors.NewInvalidInputError("direction", fmt.Sprintf("%q is not a direction; use asc or desc", input))
	}
}
