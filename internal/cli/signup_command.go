package cli

import (
	"context"
	"fmt"

	"taskflow/internal/store"
	"taskflow/internal/validation"
)

// SignupCommand handles the signup command
type SignupCommand struct {
	store        *store.Store
	validator    *validation.CredentialsValidator
	errorHandler *ErrorHandler
}

// NewSignupCommand creates a new signup command handler
func NewSignupCommand(app *App) *SignupCommand {
	return &SignupCommand{
		store:        app.store,
		validator:    app.credentialsValidator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the signup command
func (c *SignupCommand) Execute(ctx context.Context, email, displayName, password, confirmPassword string) error {
	if displayName == "" {
		displayName = displayNameFromEmail(email)
	}

	if err := c.validator.ValidateSignup(email, displayName, password, confirmPassword); err != nil {
		return c.errorHandler.Handle("sign up", err)
	}

	user, err := c.store.Signup(ctx, email, displayName)
	if err != nil {
		return c.errorHandler.Handle("sign up", err)
	}

	fmt.Printf("Account created for %s <%s>\n", user.DisplayName, user.Email)
	return nil
}
