package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/query"
	"taskflow/internal/repository/sqlite"
	"taskflow/internal/store"
	"taskflow/internal/transition"
	"taskflow/internal/validation"
)

// App wires the store and engines into the command tree. The store is
// constructed once at process start and injected everywhere; commands
// never reach for ambient state.
type App struct {
	store       *store.Store
	queries     *query.Engine
	transitions *transition.Engine
	repo        sqlite.Repository
	config      *config.Config

	taskValidator        *validation.TaskValidator
	categoryValidator    *validation.CategoryValidator
	credentialsValidator *validation.CredentialsValidator

	// startRevision marks the store state at startup; a differing
	// revision after a command means there is something to persist.
	startRevision uint64
}

// NewApp creates the CLI application over an initialized store.
func NewApp(s *store.Store, repo sqlite.Repository, cfg *config.Config) *App {
	base := validation.NewValidatorWithConfig(cfg)
	return &App{
		store:                s,
		queries:              query.NewEngine(s),
		transitions:          transition.NewEngine(s),
		repo:                 repo,
		config:               cfg,
		taskValidator:        validation.NewTaskValidatorWith(base),
		categoryValidator:    validation.NewCategoryValidatorWith(base),
		credentialsValidator: validation.NewCredentialsValidatorWith(base),
		startRevision:        s.Revision(),
	}
}

// Run executes the command tree with the given arguments and persists
// any entity mutations afterwards.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)

	runErr := root.ExecuteContext(ctx)

	if a.store.Revision() != a.startRevision {
		if err := a.store.SaveSnapshot(ctx, a.repo); err != nil {
			if runErr != nil {
				return runErr
			}
			return err
		}
		a.startRevision = a.store.Revision()
	}

	return runErr
}

// requireSession gates task-management commands on an authenticated
// session, mirroring the redirect-to-login behavior of a routed UI.
func (a *App) requireSession() error {
	if a.store.User() == nil {
		return errors.NewUnauthenticatedError("this command")
	}
	return nil
}

// resolveTaskID resolves user input to a task id, accepting either a
// full id or an unambiguous prefix.
func (a *App) resolveTaskID(input string) (string, error) {
	var matches []string
	for _, task := range a.store.Tasks() {
		if task.ID == input {
			return task.ID, nil
		}
		if strings.HasPrefix(task.ID, input) {
			matches = append(matches, task.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", errors.NewNotFoundError("task", input)
	default:
		return "", errors.NewInvalidInputError("task", fmt.Sprintf("%q matches %d tasks; use a longer id prefix", input, len(matches)))
	}
}

// resolveCategory resolves user input to a category by id, id prefix,
// or exact name (case-insensitive).
func (a *App) resolveCategory(input string) (domain.Category, error) {
	var prefixMatches []domain.Category
	for _, category := range a.store.Categories() {
		if category.ID == input || strings.EqualFold(category.Name, input) {
			return category, nil
		}
		if strings.HasPrefix(category.ID, input) {
			prefixMatches = append(prefixMatches, category)
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	return domain.Category{}, errors.NewNotFoundError("category", input)
}

// categoryName renders a task's category, tolerating dangling
// references left behind by category deletion.
func (a *App) categoryName(categoryID string) string {
	if categoryID == "" {
		return "uncategorized"
	}
	if category, ok := a.store.Category(categoryID); ok {
		return category.Name
	}
	return "uncategorized"
}

// shortID trims an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// parseDueDate parses a due date argument. Accepts "today", "tomorrow",
// or a calendar date in YYYY-MM-DD form.
func parseDueDate(input string) (time.Time, error) {
	now := timeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(input) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	due, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("due", fmt.Sprintf("%q is not a date; use YYYY-MM-DD, today, or tomorrow", input))
	}
	return due, nil
}
