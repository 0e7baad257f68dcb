package cli

import (
	"context"
	"fmt"

	"taskflow/internal/store"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	store *store.Store
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{store: app.store}
}

// Execute runs the whoami command
func (c *WhoamiCommand) Execute(ctx context.Context) error {
	user := c.store.User()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("%s <%s>\n", user.DisplayName, user.Email)
	fmt.Printf("id: %s\n", user.ID)
	return nil
}
