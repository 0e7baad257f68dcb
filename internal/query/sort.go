package query

import (
	"sort"

	"taskflow/internal/domain"
)

// sortTasks orders a partition in place. The sort is stable: ties keep
// the tasks' relative input order.
func (e *Engine) sortTasks(tasks []domain.Task, opts Options) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return e.compare(tasks[i], tasks[j], opts) < 0
	})
}

// compare returns a negative value when a sorts before b under the
// given options.
func (e *Engine) compare(a, b domain.Task, opts Options) int {
	var res int
	switch opts.SortBy {
	case SortByDueDate:
		// Tasks without a due date always sort after tasks with one,
		// regardless of direction: ascending treats a missing date as
		// latest possible, descending as earliest possible, and the
		// final negation puts both at the end.
		res = compareInt64(dueDateRank(a, opts.Direction), dueDateRank(b, opts.Direction))
	case SortByAlphabetical:
		res = e.collator.CompareString(a.Title, b.Title)
	case SortByCreated:
		res = a.CreatedAt.Compare(b.CreatedAt)
	default: // SortByPriority
		res = a.Priority.Weight() - b.Priority.Weight()
	}

	if opts.Direction == SortDescending {
		return -res
	}
	return res
}

// dueDateRank converts a task's due date to a sortable rank with the
// direction-aware sentinel for missing dates.
func dueDateRank(t domain.Task, direction SortDirection) int64 {
	if t.DueDate == nil {
		if direction == SortAscending {
			return int64(1<<63 - 1)
		}
		return -(1<<63 - 1)
	}
	return t.DueDate.UnixMilli()
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
