package cli

import (
	"context"
	"fmt"

	"taskflow/internal/store"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	store        *store.Store
	errorHandler *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		store:        app.store,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute(ctx context.Context) error {
	if c.store.User() == nil {
		fmt.Println("Not logged in")
		return nil
	}

	if err := c.store.Logout(ctx); err != nil {
		return c.errorHandler.Handle("log out", err)
	}

	fmt.Println("Logged out")
	return nil
}
