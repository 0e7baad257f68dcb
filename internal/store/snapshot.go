package store

import (
	"context"
	"encoding/json"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/logging"
	"taskflow/internal/repository/sqlite"
)

// SnapshotSlotName is the slot the task and category collections are
// persisted under. It is separate from the session slot, whose
// contract is independent of snapshots.
const SnapshotSlotName = "taskflow_snapshot"

// snapshot is the serialized form of the entity collections.
type snapshot struct {
	Tasks      []domain.Task     `json:"tasks"`
	Categories []domain.Category `json:"categories"`
}

// SaveSnapshot serializes the task and category collections to the
// snapshot slot so a later process can restore them. The current user
// is deliberately excluded: the session slot owns that.
func (s *Store) SaveSnapshot(ctx context.Context, repo sqlite.Repository) error {
	snap := snapshot{
		Tasks:      s.Tasks(),
		Categories: s.Categories(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.NewStorageError("encode snapshot", err)
	}
	if err := repo.PutSlot(ctx, SnapshotSlotName, data); err != nil {
		return err
	}
	logging.Debugf("snapshot saved: %d tasks, %d categories\n", len(snap.Tasks), len(snap.Categories))
	return nil
}

// LoadSnapshot restores the task and category collections from the
// snapshot slot, replacing the current in-memory contents. Returns
// false when no snapshot has been persisted, leaving the store
// unchanged.
func (s *Store) LoadSnapshot(ctx context.Context, repo sqlite.Repository) (bool, error) {
	data, err := repo.GetSlot(ctx, SnapshotSlotName)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return false, errors.NewStorageError("decode snapshot", err)
	}

	s.tasks = make([]*domain.Task, len(snap.Tasks))
	for i := range snap.Tasks {
		t := copyTask(snap.Tasks[i])
		s.tasks[i] = &t
	}
	s.categories = make([]*domain.Category, len(snap.Categories))
	for i := range snap.Categories {
		c := snap.Categories[i]
		s.categories[i] = &c
	}
	s.bump()
	return true, nil
}
