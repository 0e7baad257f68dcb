package query

import (
	"taskflow/internal/domain"
)

// SortOption defines how task results should be ordered.
type SortOption string

const (
	SortByPriority     SortOption = "priority"     // High before Medium before Low
	SortByDueDate      SortOption = "dueDate"      // earliest due date first; undated tasks last
	SortByAlphabetical SortOption = "alphabetical" // locale-aware, case-insensitive title order
	SortByCreated      SortOption = "created"      // creation timestamp ascending
)

// SortDirection defines the direction of a sort.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// PriorityFilter selects tasks by priority. The zero value and
// FilterAllPriorities both match every task.
type PriorityFilter string

// FilterAllPriorities matches tasks of any priority.
const FilterAllPriorities PriorityFilter = "All"

// Matches reports whether a task priority passes the filter.
func (f PriorityFilter) Matches(p domain.Priority) bool {
	if f == "" || f == FilterAllPriorities {
		return true
	}
	return domain.Priority(f) == p
}

// Options are the inputs to a derived-view computation. All fields are
// value types so options can be compared for memoization.
type Options struct {
	// Search filters by case-insensitive substring on title or
	// description. Empty matches everything.
	Search string

	// CategoryID filters by exact category reference. Empty means
	// unset.
	CategoryID string

	// Priority filters by task priority.
	Priority PriorityFilter

	// SortBy selects the comparator.
	SortBy SortOption

	// Direction selects ascending or descending order.
	Direction SortDirection
}

// normalized fills in defaults for zero-valued fields.
func (o Options) normalized() Options {
	if o.Priority == "" {
		o.Priority = FilterAllPriorities
	}
	if o.SortBy == "" {
		o.SortBy = SortByPriority
	}
	if o.Direction == "" {
		o.Direction = SortDescending
	}
	return o
}

// Result holds the two ordered partitions of the filtered tasks.
type Result struct {
	Active    []domain.Task
	Completed []domain.Task
}
