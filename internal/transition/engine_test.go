package transition

import (
	"testing"

	"taskflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyMutator implements TaskMutator over a small map and counts every
// write so no-op suppression can be verified.
type spyMutator struct {
	tasks       map[string]domain.Task
	updateCount int
}

func newSpyMutator(tasks ...domain.Task) *spyMutator {
	m := &spyMutator{tasks: make(map[string]domain.Task)}
	for _, task := range tasks {
		m.tasks[task.ID] = task
	}
	return m
}

func (m *spyMutator) Task(id string) (domain.Task, bool) {
	task, ok := m.tasks[id]
	return task, ok
}

func (m *spyMutator) UpdateTask(id string, update domain.TaskUpdate) {
	m.updateCount++
	task, ok := m.tasks[id]
	if !ok {
		return
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.IsCompleted != nil {
		task.IsCompleted = *update.IsCompleted
	}
	m.tasks[id] = task
}

func TestEngine_ReassignPriority(t *testing.T) {
	mutator := newSpyMutator(domain.Task{ID: "t1", Title: "T", Priority: domain.PriorityLow})
	engine := NewEngine(mutator)

	engine.ReassignPriority("t1", domain.PriorityHigh)

	task, _ := mutator.Task("t1")
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, 1, mutator.updateCount)
}

func TestEngine_ReassignPriority_RedundantWritesPermitted(t *testing.T) {
	mutator := newSpyMutator(domain.Task{ID: "t1", Title: "T", Priority: domain.PriorityHigh})
	engine := NewEngine(mutator)

	// Unlike completion reassignment, dropping onto the current lane
	// still writes: one mutation per call.
	engine.ReassignPriority("t1", domain.PriorityHigh)
	engine.ReassignPriority("t1", domain.PriorityHigh)

	assert.Equal(t, 2, mutator.updateCount)
}

func TestEngine_ReassignCompletion(t *testing.T) {
	mutator := newSpyMutator(domain.Task{ID: "t1", Title: "T"})
	engine := NewEngine(mutator)

	engine.ReassignCompletion("t1", true)

	task, _ := mutator.Task("t1")
	assert.True(t, task.IsCompleted)
	assert.Equal(t, 1, mutator.updateCount)
}

func TestEngine_ReassignCompletion_SuppressesNoOpWrites(t *testing.T) {
	mutator := newSpyMutator(domain.Task{ID: "t1", Title: "T"})
	engine := NewEngine(mutator)

	engine.ReassignCompletion("t1", true)
	engine.ReassignCompletion("t1", true)

	// The second call finds the task already completed and issues no
	// mutation.
	assert.Equal(t, 1, mutator.updateCount)

	engine.ReassignCompletion("t1", false)
	assert.Equal(t, 2, mutator.updateCount)
}

func TestEngine_UnknownTaskIsSilentNoOp(t *testing.T) {
	mutator := newSpyMutator()
	engine := NewEngine(mutator)

	assert.NotPanics(t, func() {
		engine.ReassignCompletion("ghost", true)
	})
	assert.Equal(t, 0, mutator.updateCount)
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		lane    string
		wantErr bool
	}{
		{name: "should parse a priority lane", lane: "high"},
		{name: "should parse the active lane", lane: "active"},
		{name: "should parse the completed lane", lane: "done"},
		{name: "should reject an unknown lane", lane: "backlog", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTarget(tt.lane)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEngine_Drop(t *testing.T) {
	mutator := newSpyMutator(domain.Task{ID: "t1", Title: "T", Priority: domain.PriorityLow})
	engine := NewEngine(mutator)

	target, err := ParseTarget("high")
	require.NoError(t, err)
	engine.Drop("t1", target)

	task, _ := mutator.Task("t1")
	assert.Equal(t, domain.PriorityHigh, task.Priority)

	engine.Drop("t1", CompletedLane())
	task, _ = mutator.Task("t1")
	assert.True(t, task.IsCompleted)

	// Dropping onto the completed lane again is suppressed.
	writes := mutator.updateCount
	engine.Drop("t1", CompletedLane())
	assert.Equal(t, writes, mutator.updateCount)
}
