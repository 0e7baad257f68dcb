package query

import (
	"taskflow/internal/domain"
)

// GroupByDueDate groups tasks by their due date, keyed YYYY-MM-DD, for
// calendar rendering. Tasks without a due date are excluded. Within a
// day, tasks keep their input order.
func GroupByDueDate(tasks []domain.Task) map[string][]domain.Task {
	grouped := make(map[string][]domain.Task)
	for _, task := range tasks {
		key := task.DueDateKey()
		if key == "" {
			continue
		}
		grouped[key] = append(grouped[key], task)
	}
	return grouped
}
