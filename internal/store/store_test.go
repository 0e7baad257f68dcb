package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskflow/internal/auth"
	"taskflow/internal/domain"
	"taskflow/internal/repository/sqlite"
	"taskflow/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, _ := setupStoreWithRepo(t)
	return s
}

func setupStoreWithRepo(t *testing.T) (*Store, sqlite.Repository) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return New(auth.NewMockProvider(), session.NewManager(repo)), repo
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestStore_AddTask(t *testing.T) {
	s := setupStore(t)

	before := time.Now()
	task := s.AddTask(domain.TaskInput{
		Title:      "Buy milk",
		Priority:   domain.PriorityLow,
		CategoryID: "cat_3",
	})
	after := time.Now()

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.False(t, task.IsCompleted, "new tasks start active")
	assert.False(t, task.CreatedAt.Before(before))
	assert.False(t, task.CreatedAt.After(after))
	assert.Nil(t, task.DueDate)
}

func TestStore_AddTask_HeadInsertion(t *testing.T) {
	s := setupStore(t)

	first := s.AddTask(domain.TaskInput{Title: "first"})
	second := s.AddTask(domain.TaskInput{Title: "second"})
	third := s.AddTask(domain.TaskInput{Title: "third"})

	// Native order is most-recent-first.
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, taskIDs(s.Tasks()))
}

func TestStore_AddTask_UniqueIDs(t *testing.T) {
	s := setupStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := s.AddTask(domain.TaskInput{Title: fmt.Sprintf("task %d", i)})
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	for i := 0; i < 20; i++ {
		category := s.AddCategory(fmt.Sprintf("category %d", i), "blue")
		assert.False(t, seen[category.ID], "duplicate id %s", category.ID)
		seen[category.ID] = true
	}
}

func TestStore_UpdateTask_MergeSemantics(t *testing.T) {
	s := setupStore(t)

	task := s.AddTask(domain.TaskInput{
		Title:    "T",
		Priority: domain.PriorityHigh,
	})

	low := domain.PriorityLow
	s.UpdateTask(task.ID, domain.TaskUpdate{Priority: &low})

	updated, ok := s.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "T", updated.Title, "unspecified fields stay untouched")
	assert.Equal(t, domain.PriorityLow, updated.Priority)
	assert.False(t, updated.IsCompleted)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt, "createdAt is immutable")
}

func TestStore_UpdateTask_DueDateHandling(t *testing.T) {
	s := setupStore(t)
	task := s.AddTask(domain.TaskInput{Title: "T"})

	due := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	s.UpdateTask(task.ID, domain.TaskUpdate{DueDate: &due})

	updated, ok := s.Task(task.ID)
	require.True(t, ok)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))

	// A nil DueDate leaves the date alone; ClearDueDate removes it.
	s.UpdateTask(task.ID, domain.TaskUpdate{})
	updated, _ = s.Task(task.ID)
	assert.NotNil(t, updated.DueDate)

	s.UpdateTask(task.ID, domain.TaskUpdate{ClearDueDate: true})
	updated, _ = s.Task(task.ID)
	assert.Nil(t, updated.DueDate)
}

func TestStore_UpdateTask_MissingIDIsNoOp(t *testing.T) {
	s := setupStore(t)
	s.AddTask(domain.TaskInput{Title: "T"})
	revision := s.Revision()

	title := "renamed"
	s.UpdateTask("nonexistent", domain.TaskUpdate{Title: &title})

	assert.Equal(t, revision, s.Revision())
	assert.Equal(t, "T", s.Tasks()[0].Title)
}

func TestStore_DeleteTask(t *testing.T) {
	s := setupStore(t)
	task := s.AddTask(domain.TaskInput{Title: "T"})

	s.DeleteTask(task.ID)

	_, ok := s.Task(task.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Tasks())
}

func TestStore_DeleteTask_MissingIDIsNoOp(t *testing.T) {
	s := setupStore(t)
	s.AddTask(domain.TaskInput{Title: "keep me"})

	assert.NotPanics(t, func() {
		s.DeleteTask("nonexistent")
	})
	assert.Len(t, s.Tasks(), 1)
}

func TestStore_ToggleTaskCompletion(t *testing.T) {
	s := setupStore(t)
	task := s.AddTask(domain.TaskInput{Title: "T"})

	s.ToggleTaskCompletion(task.ID)
	toggled, _ := s.Task(task.ID)
	assert.True(t, toggled.IsCompleted)

	s.ToggleTaskCompletion(task.ID)
	toggled, _ = s.Task(task.ID)
	assert.False(t, toggled.IsCompleted)

	// Unknown id: silent no-op.
	assert.NotPanics(t, func() {
		s.ToggleTaskCompletion("nonexistent")
	})
}

func TestStore_Tasks_FreshlyAllocated(t *testing.T) {
	s := setupStore(t)
	due := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	task := s.AddTask(domain.TaskInput{Title: "original", DueDate: &due})

	view := s.Tasks()
	view[0].Title = "mutated"
	*view[0].DueDate = view[0].DueDate.Add(48 * time.Hour)

	stored, _ := s.Task(task.ID)
	assert.Equal(t, "original", stored.Title, "callers must not mutate store state through query output")
	assert.True(t, stored.DueDate.Equal(due))
}

func TestStore_CategoryCRUD(t *testing.T) {
	s := setupStore(t)

	category := s.AddCategory("Errands", "amber")
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Errands", category.Name)
	assert.False(t, category.IsDefault, "user-created categories are never default")

	name := "Chores"
	s.UpdateCategory(category.ID, domain.CategoryUpdate{Name: &name})
	updated, ok := s.Category(category.ID)
	require.True(t, ok)
	assert.Equal(t, "Chores", updated.Name)
	assert.Equal(t, "amber", updated.Color, "unspecified fields stay untouched")

	s.DeleteCategory(category.ID)
	_, ok = s.Category(category.ID)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		s.DeleteCategory("nonexistent")
		s.UpdateCategory("nonexistent", domain.CategoryUpdate{Name: &name})
	})
}

func TestStore_DeleteCategory_LeavesDanglingReferences(t *testing.T) {
	s := setupStore(t)

	category := s.AddCategory("Errands", "amber")
	task := s.AddTask(domain.TaskInput{Title: "T", CategoryID: category.ID})

	s.DeleteCategory(category.ID)

	// No cascade, no reassignment: the task keeps its dangling
	// reference and renders as uncategorized.
	remaining, ok := s.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, category.ID, remaining.CategoryID)
	_, found := s.Category(remaining.CategoryID)
	assert.False(t, found)
}

func TestStore_SearchQuery(t *testing.T) {
	s := setupStore(t)

	assert.Equal(t, "", s.SearchQuery())
	s.SetSearchQuery("milk")
	assert.Equal(t, "milk", s.SearchQuery())
}

func TestStore_Login(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	user, err := s.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Al", user.DisplayName)
	assert.NotEmpty(t, user.ID)

	current := s.User()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestStore_Signup(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, "new@b.com", "Newbie")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "new@b.com", user.Email)

	current := s.User()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestStore_ChangePassword(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	t.Run("no-op when logged out", func(t *testing.T) {
		assert.NoError(t, s.ChangePassword(ctx, "old", "new"))
	})

	t.Run("forwards to the provider when logged in", func(t *testing.T) {
		_, err := s.Login(ctx, "a@b.com", "Al")
		require.NoError(t, err)
		assert.NoError(t, s.ChangePassword(ctx, "old", "new"))
	})
}

func TestStore_SessionPersistenceRoundTrip(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()
	ctx := context.Background()

	s := New(auth.NewMockProvider(), session.NewManager(repo))
	_, err = s.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)

	// Simulate a restart: a new store over the same repository.
	restarted := New(auth.NewMockProvider(), session.NewManager(repo))
	require.NoError(t, restarted.RestoreSession(ctx))

	restored := restarted.User()
	require.NotNil(t, restored)
	assert.Equal(t, "a@b.com", restored.Email)
	assert.Equal(t, "Al", restored.DisplayName)
}

func TestStore_LogoutThenRestart_NoSession(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()
	ctx := context.Background()

	s := New(auth.NewMockProvider(), session.NewManager(repo))
	_, err = s.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))
	assert.Nil(t, s.User())

	restarted := New(auth.NewMockProvider(), session.NewManager(repo))
	require.NoError(t, restarted.RestoreSession(ctx))
	assert.Nil(t, restarted.User())
}

func TestStore_UpdateUser(t *testing.T) {
	s, repo := setupStoreWithRepo(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)

	name := "Alfred"
	require.NoError(t, s.UpdateUser(ctx, domain.UserUpdate{DisplayName: &name}))

	current := s.User()
	require.NotNil(t, current)
	assert.Equal(t, "Alfred", current.DisplayName)
	assert.Equal(t, "a@b.com", current.Email)

	// The profile change survives a restart.
	restarted := New(auth.NewMockProvider(), session.NewManager(repo))
	require.NoError(t, restarted.RestoreSession(ctx))
	require.NotNil(t, restarted.User())
	assert.Equal(t, "Alfred", restarted.User().DisplayName)
}

func TestStore_UpdateUser_LoggedOutIsNoOp(t *testing.T) {
	s := setupStore(t)

	name := "Nobody"
	assert.NoError(t, s.UpdateUser(context.Background(), domain.UserUpdate{DisplayName: &name}))
	assert.Nil(t, s.User())
}

func TestStore_DeleteAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)
	s.Seed()
	require.NotEmpty(t, s.Tasks())

	require.NoError(t, s.DeleteAccount(ctx))

	assert.Nil(t, s.User())
	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.Categories())
}

func TestStore_Revision_IncreasesOnMutation(t *testing.T) {
	s := setupStore(t)

	r0 := s.Revision()
	task := s.AddTask(domain.TaskInput{Title: "T"})
	r1 := s.Revision()
	assert.Greater(t, r1, r0)

	s.ToggleTaskCompletion(task.ID)
	assert.Greater(t, s.Revision(), r1)

	// Reads never bump the revision.
	r2 := s.Revision()
	s.Tasks()
	s.Categories()
	assert.Equal(t, r2, s.Revision())
}

func TestStore_Seed(t *testing.T) {
	s := setupStore(t)
	s.Seed()

	categories := s.Categories()
	require.Len(t, categories, 4)
	for _, c := range categories {
		assert.True(t, c.IsDefault)
	}
	assert.Len(t, s.Tasks(), 2)

	// Seeding again must not duplicate anything.
	s.Seed()
	assert.Len(t, s.Categories(), 4)
	assert.Len(t, s.Tasks(), 2)
}
