// Package query derives read-only views from the store: filter by
// search text, category, and priority, partition into active and
// completed, and sort each partition. The pipeline is a pure function
// of its inputs; it never mutates store state and its output never
// aliases the store's collections.
package query

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskflow/internal/domain"
)

// TaskSource is the slice of the store the engine reads from. The
// engine re-reads on every run; it never holds task copies of its own
// beyond the memoized result.
type TaskSource interface {
	Tasks() []domain.Task
	Revision() uint64
}

// Engine computes derived task views. A single-entry memo avoids
// recomputing when neither the store revision nor the options have
// changed; any mutation invalidates it via the revision counter, so
// the cache can never serve stale data.
type Engine struct {
	source   TaskSource
	collator *collate.Collator

	memoValid    bool
	memoRevision uint64
	memoOptions  Options
	memoResult   Result
}

// NewEngine creates a query engine over the given task source.
func NewEngine(source TaskSource) *Engine {
	return &Engine{
		source: source,
		// Loose strength ignores case and diacritics, giving the
		// locale-aware case-insensitive title order.
		collator: collate.New(language.English, collate.Loose),
	}
}

// Run computes the derived view for the given options.
func (e *Engine) Run(opts Options) Result {
	opts = opts.normalized()

	revision := e.source.Revision()
	if e.memoValid && e.memoRevision == revision && e.memoOptions == opts {
		return copyResult(e.memoResult)
	}

	matched := e.filter(e.source.Tasks(), opts)

	var active, completed []domain.Task
	for _, task := range matched {
		if task.IsCompleted {
			completed = append(completed, task)
		} else {
			active = append(active, task)
		}
	}

	e.sortTasks(active, opts)
	e.sortTasks(completed, opts)

	result := Result{Active: active, Completed: completed}
	e.memoValid = true
	e.memoRevision = revision
	e.memoOptions = opts
	e.memoResult = result

	return copyResult(result)
}

// filter applies the search, category, and priority predicates.
func (e *Engine) filter(tasks []domain.Task, opts Options) []domain.Task {
	search := strings.ToLower(opts.Search)

	var matched []domain.Task
	for _, task := range tasks {
		if !matchesSearch(task, search) {
			continue
		}
		if opts.CategoryID != "" && task.CategoryID != opts.CategoryID {
			continue
		}
		if !opts.Priority.Matches(task.Priority) {
			continue
		}
		matched = append(matched, task)
	}
	return matched
}

// matchesSearch checks the case-insensitive substring predicate on
// title or description.
func matchesSearch(task domain.Task, loweredSearch string) bool {
	if loweredSearch == "" {
		return true
	}
	if strings.Contains(strings.ToLower(task.Title), loweredSearch) {
		return true
	}
	return strings.Contains(strings.ToLower(task.Description), loweredSearch)
}

// copyResult returns freshly allocated slices so callers can never
// mutate the memoized result (or each other's views) through the
// shared backing arrays.
func copyResult(r Result) Result {
	out := Result{}
	if r.Active != nil {
		out.Active = make([]domain.Task, len(r.Active))
		copy(out.Active, r.Active)
	}
	if r.Completed != nil {
		out.Completed = make([]domain.Task, len(r.Completed))
		copy(out.Completed, r.Completed)
	}
	return out
}
