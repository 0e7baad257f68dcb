package cli

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/store"
	"taskflow/internal/validation"
)

// LoginCommand handles the login command
type LoginCommand struct {
	store        *store.Store
	validator    *validation.CredentialsValidator
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		store:        app.store,
		validator:    app.credentialsValidator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, email, displayName string) error {
	if displayName == "" {
		displayName = displayNameFromEmail(email)
	}

	if err := c.validator.ValidateLogin(email, displayName); err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	user, err := c.store.Login(ctx, email, displayName)
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	fmt.Printf("Logged in as %s <%s>\n", user.DisplayName, user.Email)
	return nil
}

// displayNameFromEmail derives a fallback display name from the part
// of the address before the @.
func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
