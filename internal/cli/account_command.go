package cli

import (
	"context"
	"fmt"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/store"
	"taskflow/internal/validation"
)

// AccountUpdateOptions carries the profile fields to change. Nil means
// keep the current value.
type AccountUpdateOptions struct {
	Email       *string
	DisplayName *string
}

// AccountCommand handles the account subcommands
type AccountCommand struct {
	app          *App
	store        *store.Store
	validator    *validation.CredentialsValidator
	errorHandler *ErrorHandler
}

// NewAccountCommand creates a new account command handler
func NewAccountCommand(app *App) *AccountCommand {
	return &AccountCommand{
		app:          app,
		store:        app.store,
		validator:    app.credentialsValidator,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteUpdate runs the account update command
func (c *AccountCommand) ExecuteUpdate(ctx context.Context, opts AccountUpdateOptions) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if opts.Email == nil && opts.DisplayName == nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("flags", "pass --email or --name to change something"))
	}

	update := domain.UserUpdate{
		Email:       opts.Email,
		DisplayName: opts.DisplayName,
	}
	if err := c.store.UpdateUser(ctx, update); err != nil {
		return c.errorHandler.Handle("update profile", err)
	}

	user := c.store.User()
	fmt.Printf("Profile updated: %s <%s>\n", user.DisplayName, user.Email)
	return nil
}

// ExecutePasswd runs the account passwd command
func (c *AccountCommand) ExecutePasswd(ctx context.Context, currentPassword, newPassword, confirmPassword string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.validator.ValidatePasswordChange(currentPassword, newPassword, confirmPassword); err != nil {
		return c.errorHandler.Handle("change password", err)
	}

	if err := c.store.ChangePassword(ctx, currentPassword, newPassword); err != nil {
		return c.errorHandler.Handle("change password", err)
	}

	fmt.Println("Password changed")
	return nil
}

// ExecuteDelete runs the account delete command
func (c *AccountCommand) ExecuteDelete(ctx context.Context, confirmed bool) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if !confirmed {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("confirmation", "account deletion is permanent; pass --yes to confirm"))
	}

	if err := c.store.DeleteAccount(ctx); err != nil {
		return c.errorHandler.Handle("delete account", err)
	}

	fmt.Println("Account deleted")
	return nil
}
