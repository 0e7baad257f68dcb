package domain

import "fmt"

// Priority represents the ordinal classification of a task.
// It is used both for sorting and for kanban-lane grouping.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists all valid priorities from highest to lowest.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Weight returns the numeric rank of the priority for comparisons.
// High outranks Medium outranks Low; unknown values rank lowest.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether the priority is one of the known values.
func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// String returns the display name of the priority.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts user input into a Priority.
// Matching is case-insensitive on the full name or its first letter.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "High", "high", "h", "H":
		return PriorityHigh, nil
	case "Medium", "medium", "m", "M":
		return PriorityMedium, nil
	case "Low", "low", "l", "L":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}
