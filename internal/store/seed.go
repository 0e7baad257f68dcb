package store

import (
	"time"

	"taskflow/internal/domain"
)

// Default category ids are fixed so seeded tasks can reference them
// across runs.
const (
	CategoryWorkID     = "cat_1"
	CategoryPersonalID = "cat_2"
	CategoryShoppingID = "cat_3"
	CategoryHealthID   = "cat_4"
)

// defaultCategories returns the seed categories installed on first
// run. They are marked default so the UI refuses to delete them.
func defaultCategories() []*domain.Category {
	return []*domain.Category{
		{ID: CategoryWorkID, Name: "Work", Color: "blue", IsDefault: true},
		{ID: CategoryPersonalID, Name: "Personal", Color: "green", IsDefault: true},
		{ID: CategoryShoppingID, Name: "Shopping", Color: "purple", IsDefault: true},
		{ID: CategoryHealthID, Name: "Health", Color: "red", IsDefault: true},
	}
}

// Seed installs the default categories and a couple of sample tasks
// into an empty store. Seeding a non-empty store is a no-op so a
// restored snapshot is never clobbered.
func (s *Store) Seed() {
	if len(s.tasks) > 0 || len(s.categories) > 0 {
		return
	}

	s.categories = defaultCategories()

	now := timeNow()
	tomorrow := now.Add(24 * time.Hour)
	s.tasks = []*domain.Task{
		{
			ID:          newID(),
			Title:       "Review Q3 Financials",
			Description: "Go through the spreadsheets and prepare the summary for the board meeting.",
			Priority:    domain.PriorityHigh,
			CategoryID:  CategoryWorkID,
			CreatedAt:   now,
			DueDate:     &tomorrow,
		},
		{
			ID:         newID(),
			Title:      "Buy Groceries",
			Priority:   domain.PriorityLow,
			CategoryID: CategoryShoppingID,
			CreatedAt:  now,
		},
	}
	s.bump()
}
