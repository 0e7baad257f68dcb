package domain

import (
	"time"
)

// Task represents a user-created to-do item.
// CategoryID is a weak reference: the referenced category may have been
// deleted, in which case the task renders as uncategorized.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	CategoryID  string     `json:"categoryId"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskInput carries the caller-supplied fields for task creation.
// The store assigns ID and CreatedAt and starts the task active.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	CategoryID  string
	DueDate     *time.Time
}

// TaskUpdate describes a partial update to a task. Nil fields are left
// untouched. ClearDueDate removes an existing due date, which a nil
// DueDate alone cannot express.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Priority     *Priority
	CategoryID   *string
	IsCompleted  *bool
	DueDate      *time.Time
	ClearDueDate bool
}

// IsOverdue reports whether the task's due date falls strictly before
// the start of the current day. Tasks without a due date are never
// overdue. Time-of-day on the due date is ignored.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(midnight)
}

// DueDateKey returns the task's due date formatted as YYYY-MM-DD for
// calendar grouping, or the empty string when no due date is set.
func (t Task) DueDateKey() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format("2006-01-02")
}
