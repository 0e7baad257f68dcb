// Package store holds the canonical in-memory collections of tasks,
// categories, and the current user. It is the single source of truth:
// every other component re-reads from it and never keeps copies that
// could go stale.
//
// The store has exactly one logical writer and no suspension points,
// so mutators need no locking. They are all no-ops, never errors, when
// the target id does not exist; callers rely on idempotent
// "delete already-gone item" semantics. The store performs no input
// validation either - that is the calling edge's responsibility.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/auth"
	"taskflow/internal/domain"
	"taskflow/internal/logging"
	"taskflow/internal/session"
)

// timeNow is a variable that can be replaced in tests.
var timeNow = time.Now

// newID is a variable that can be replaced in tests.
var newID = uuid.NewString

// Store owns all Task and Category records and the current User.
type Store struct {
	tasks       []*domain.Task
	categories  []*domain.Category
	user        *domain.User
	searchQuery string
	revision    uint64

	provider auth.Provider
	sessions *session.Manager
}

// New creates an empty store wired to the given auth provider and
// session manager.
func New(provider auth.Provider, sessions *session.Manager) *Store {
	return &Store{
		provider: provider,
		sessions: sessions,
	}
}

// RestoreSession attempts to restore a previously persisted session.
// Absence of persisted data leaves the store unauthenticated.
func (s *Store) RestoreSession(ctx context.Context) error {
	user, err := s.sessions.Load(ctx)
	if err != nil {
		return err
	}
	s.user = user
	return nil
}

// Revision returns a counter that increases on every entity mutation.
// Consumers use it to detect when derived views must be recomputed.
func (s *Store) Revision() uint64 {
	return s.revision
}

func (s *Store) bump() {
	s.revision++
}

// User returns the current user, or nil when unauthenticated.
func (s *Store) User() *domain.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SearchQuery returns the current search text.
func (s *Store) SearchQuery() string {
	return s.searchQuery
}

// SetSearchQuery updates the current search text.
func (s *Store) SetSearchQuery(query string) {
	s.searchQuery = query
}

// Tasks returns a freshly allocated copy of the task collection in the
// store's native most-recent-first order. Mutating the result does not
// affect the store.
func (s *Store) Tasks() []domain.Task {
	tasks := make([]domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = copyTask(*t)
	}
	return tasks
}

// Task looks up a task by id.
func (s *Store) Task(id string) (domain.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return copyTask(*t), true
		}
	}
	return domain.Task{}, false
}

// AddTask creates a new task from the given input. The store assigns a
// fresh id, sets the creation timestamp, and starts the task active.
// New tasks are inserted at the head of the collection. Values are
// stored as given; callers must not pass empty titles.
func (s *Store) AddTask(input domain.TaskInput) domain.Task {
	task := &domain.Task{
		ID:          newID(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		CategoryID:  input.CategoryID,
		IsCompleted: false,
		DueDate:     copyDatePtr(input.DueDate),
		CreatedAt:   timeNow(),
	}
	s.tasks = append([]*domain.Task{task}, s.tasks...)
	s.bump()
	logging.Debugf("added task %s\n", task.ID)
	return copyTask(*task)
}

// UpdateTask merges the partial update into the existing record.
// Fields absent from the update are untouched. No-op if the id does
// not exist.
func (s *Store) UpdateTask(id string, update domain.TaskUpdate) {
	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if update.Title != nil {
			t.Title = *update.Title
		}
		if update.Description != nil {
			t.Description = *update.Description
		}
		if update.Priority != nil {
			t.Priority = *update.Priority
		}
		if update.CategoryID != nil {
			t.CategoryID = *update.CategoryID
		}
		if update.IsCompleted != nil {
			t.IsCompleted = *update.IsCompleted
		}
		if update.ClearDueDate {
			t.DueDate = nil
		} else if update.DueDate != nil {
			t.DueDate = copyDatePtr(update.DueDate)
		}
		s.bump()
		return
	}
}

// DeleteTask removes the record. No-op if absent.
func (s *Store) DeleteTask(id string) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.bump()
			return
		}
	}
}

// ToggleTaskCompletion flips the completion flag. No-op if absent.
func (s *Store) ToggleTaskCompletion(id string) {
	for _, t := range s.tasks {
		if t.ID == id {
			t.IsCompleted = !t.IsCompleted
			s.bump()
			return
		}
	}
}

// Categories returns a freshly allocated copy of the category
// collection.
func (s *Store) Categories() []domain.Category {
	categories := make([]domain.Category, len(s.categories))
	for i, c := range s.categories {
		categories[i] = *c
	}
	return categories
}

// Category looks up a category by id. Callers must tolerate a missing
// category: tasks may hold dangling references after a deletion.
func (s *Store) Category(id string) (domain.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return *c, true
		}
	}
	return domain.Category{}, false
}

// AddCategory creates a new category with a fresh id. User-created
// categories are never default.
func (s *Store) AddCategory(name, color string) domain.Category {
	category := &domain.Category{
		ID:    newID(),
		Name:  name,
		Color: color,
	}
	s.categories = append(s.categories, category)
	s.bump()
	return *category
}

// UpdateCategory merges the partial update into the existing record.
// No-op if the id does not exist.
func (s *Store) UpdateCategory(id string, update domain.CategoryUpdate) {
	for _, c := range s.categories {
		if c.ID != id {
			continue
		}
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Color != nil {
			c.Color = *update.Color
		}
		s.bump()
		return
	}
}

// DeleteCategory removes the record unconditionally. Tasks referencing
// it keep their dangling CategoryID; there is no cascade and no
// reassignment. Blocking deletion of default categories is the
// calling edge's policy, not the store's.
func (s *Store) DeleteCategory(id string) {
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.bump()
			return
		}
	}
}

// Login authenticates through the provider, replaces the current
// session, and persists it.
func (s *Store) Login(ctx context.Context, email, displayName string) (*domain.User, error) {
	user, err := s.provider.Login(ctx, email, displayName)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, *user); err != nil {
		return nil, err
	}
	s.user = user
	u := *user
	return &u, nil
}

// Signup registers a new account through the provider, then starts a
// session for it exactly as Login does.
func (s *Store) Signup(ctx context.Context, email, displayName string) (*domain.User, error) {
	user, err := s.provider.Signup(ctx, email, displayName)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, *user); err != nil {
		return nil, err
	}
	s.user = user
	u := *user
	return &u, nil
}

// ChangePassword forwards the password change to the provider. No-op
// when unauthenticated.
func (s *Store) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if s.user == nil {
		return nil
	}
	return s.provider.ChangePassword(ctx, currentPassword, newPassword)
}

// Logout clears the current session and removes the persisted slot.
func (s *Store) Logout(ctx context.Context) error {
	s.user = nil
	return s.sessions.Clear(ctx)
}

// UpdateUser merges the partial update into the current user's profile
// and re-persists the session. No-op when unauthenticated.
func (s *Store) UpdateUser(ctx context.Context, update domain.UserUpdate) error {
	if s.user == nil {
		return nil
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.DisplayName != nil {
		s.user.DisplayName = *update.DisplayName
	}
	return s.sessions.Save(ctx, *s.user)
}

// DeleteAccount removes the account through the provider, clears the
// session, and resets the in-memory collections to a pristine state.
func (s *Store) DeleteAccount(ctx context.Context) error {
	if s.user == nil {
		return nil
	}
	if err := s.provider.DeleteAccount(ctx, s.user.ID); err != nil {
		return err
	}
	if err := s.Logout(ctx); err != nil {
		return err
	}
	s.tasks = nil
	s.categories = nil
	s.searchQuery = ""
	s.bump()
	return nil
}

// copyTask returns a deep copy of the task so callers cannot mutate
// store state through the shared due-date pointer.
func copyTask(t domain.Task) domain.Task {
	t.DueDate = copyDatePtr(t.DueDate)
	return t
}

func copyDatePtr(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
