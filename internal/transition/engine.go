// Package transition interprets drag-and-drop intents as store
// mutations. A drag session carries exactly one task id; drop targets
// are the priority lanes in board view or the active/completed lanes
// in list view.
package transition

import (
	"taskflow/internal/domain"
	"taskflow/internal/logging"
)

// TaskMutator is the slice of the store the engine writes through. The
// engine always re-reads task state from it rather than holding
// copies.
type TaskMutator interface {
	Task(id string) (domain.Task, bool)
	UpdateTask(id string, update domain.TaskUpdate)
}

// Engine translates drop intents into task mutations. Operations are
// fire-and-forget: an id that does not resolve to a task is a silent
// no-op.
type Engine struct {
	store TaskMutator
}

// NewEngine creates a transition engine over the given mutator.
func NewEngine(store TaskMutator) *Engine {
	return &Engine{store: store}
}

// ReassignPriority moves a task to a priority lane. The write is
// unconditional: dropping a task onto the lane it already occupies
// still issues an update. This intentionally differs from
// ReassignCompletion, which suppresses redundant writes.
func (e *Engine) ReassignPriority(taskID string, newPriority domain.Priority) {
	e.store.UpdateTask(taskID, domain.TaskUpdate{Priority: &newPriority})
	logging.Debugf("reassigned %s to %s lane\n", taskID, newPriority)
}

// ReassignCompletion moves a task to the active or completed lane.
// The write is issued only when the completion state actually changes.
func (e *Engine) ReassignCompletion(taskID string, targetCompleted bool) {
	task, ok := e.store.Task(taskID)
	if !ok {
		return
	}
	if task.IsCompleted == targetCompleted {
		return
	}
	e.store.UpdateTask(taskID, domain.TaskUpdate{IsCompleted: &targetCompleted})
	logging.Debugf("moved %s to completed=%v lane\n", taskID, targetCompleted)
}
