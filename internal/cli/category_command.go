package cli

import (
	"context"
	"fmt"

	"taskflow/internal/domain"
	"taskflow/internal/store"
	"taskflow/internal/validation"
)

// CategoryCommand handles the category subcommands
type CategoryCommand struct {
	app          *App
	store        *store.Store
	validator    *validation.CategoryValidator
	errorHandler *ErrorHandler
}

// NewCategoryCommand creates a new category command handler
func NewCategoryCommand(app *App) *CategoryCommand {
	return &CategoryCommand{
		app:          app,
		store:        app.store,
		validator:    app.categoryValidator,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteAdd runs the category add command
func (c *CategoryCommand) ExecuteAdd(ctx context.Context, name, color string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	validName, err := c.validator.GetValidName(name)
	if err != nil {
		return c.errorHandler.Handle("add category", err)
	}

	category := c.store.AddCategory(validName, color)
	fmt.Printf("Added category %s: %s\n", shortID(category.ID), category.Name)
	return nil
}

// ExecuteList runs the category list command
func (c *CategoryCommand) ExecuteList(ctx context.Context) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	categories := c.store.Categories()
	if len(categories) == 0 {
		fmt.Println("No categories")
		return nil
	}

	counts := map[string]int{}
	for _, task := range c.store.Tasks() {
		counts[task.CategoryID]++
	}

	for _, category := range categories {
		marker := ""
		if category.IsDefault {
			marker = "  (default)"
		}
		fmt.Printf("%-8s  %-20s  %-14s  %d tasks%s\n", shortID(category.ID), category.Name, category.Color, counts[category.ID], marker)
	}
	return nil
}

// ExecuteRename runs the category rename command
func (c *CategoryCommand) ExecuteRename(ctx context.Context, categoryRef, newName string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	category, err := c.app.resolveCategory(categoryRef)
	if err != nil {
		return c.errorHandler.Handle("rename category", err)
	}

	validName, err := c.validator.GetValidName(newName)
	if err != nil {
		return c.errorHandler.Handle("rename category", err)
	}

	c.store.UpdateCategory(category.ID, domain.CategoryUpdate{Name: &validName})
	fmt.Printf("Renamed category %s to %s\n", category.Name, validName)
	return nil
}

// ExecuteDelete runs the category rm command
func (c *CategoryCommand) ExecuteDelete(ctx context.Context, categoryRef string) error {
	if err := c.app.requireSession(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	category, err := c.app.resolveCategory(categoryRef)
	if err != nil {
		return c.errorHandler.Handle("delete category", err)
	}

	if err := c.validator.ValidateDeletable(category); err != nil {
		return c.errorHandler.Handle("delete category", err)
	}

	c.store.DeleteCategory(category.ID)
	fmt.Printf("Deleted category %s\n", category.Name)
	return nil
}
