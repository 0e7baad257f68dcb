package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"taskflow/internal/errors"
	"taskflow/internal/query"
	"taskflow/internal/store"
)

// CalendarCommand handles the calendar command
type CalendarCommand struct {
	app          *App
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{
		app:          app,
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the calendar command
func (c *CalendarCommand) Execute(ctx context.Context, month string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if month == "" {
		month = timeNow().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return c.errorHandler.Handle("show calendar", errors.NewInvalidInputError("month", fmt.Sprintf("%q is not a month; use YYYY-MM", month)))
	}

	byDate := query.GroupByDueDate(c.store.Tasks())

	var dates []string
	for date := range byDate {
		if strings.HasPrefix(date, month+"-") {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	if len(dates) == 0 {
		fmt.Printf("No tasks due in %s\n", month)
		return nil
	}

	for _, date := range dates {
		fmt.Println(date)
		for _, task := range byDate[date] {
			status := " "
			if task.IsCompleted {
				status = "x"
			}
			fmt.Printf("  [%s] %-8s  %s (%s)\n", status, shortID(task.ID), task.Title, c.app.categoryName(task.CategoryID))
		}
	}
	return nil
}
