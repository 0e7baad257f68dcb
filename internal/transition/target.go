package transition

import (
	"fmt"

	"taskflow/internal/domain"
)

// Target identifies a drop target: either a priority lane (board view)
// or a completion lane (list view).
type Target struct {
	kind      targetKind
	priority  domain.Priority
	completed bool
}

type targetKind int

const (
	targetPriority targetKind = iota
	targetCompletion
)

// PriorityLane returns the drop target for a board-view priority lane.
func PriorityLane(p domain.Priority) Target {
	return Target{kind: targetPriority, priority: p}
}

// ActiveLane returns the drop target for the list-view active lane.
func ActiveLane() Target {
	return Target{kind: targetCompletion, completed: false}
}

// CompletedLane returns the drop target for the list-view completed
// lane.
func CompletedLane() Target {
	return Target{kind: targetCompletion, completed: true}
}

// ParseTarget converts a lane name into a drop target. Lane names are
// the three priorities plus "active" and "completed".
func ParseTarget(lane string) (Target, error) {
	switch lane {
	case "active", "todo":
		return ActiveLane(), nil
	case "completed", "done":
		return CompletedLane(), nil
	}
	priority, err := domain.ParsePriority(lane)
	if err != nil {
		return Target{}, fmt.Errorf("unknown lane: %q", lane)
	}
	return PriorityLane(priority), nil
}

// Drop applies a drop intent: the dragged task lands on the target
// lane.
func (e *Engine) Drop(taskID string, target Target) {
	switch target.kind {
	case targetPriority:
		e.ReassignPriority(taskID, target.priority)
	case targetCompletion:
		e.ReassignCompletion(taskID, target.completed)
	}
}
