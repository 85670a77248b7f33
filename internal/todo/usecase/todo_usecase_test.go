package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"todo-backend/internal/todo/domain"
	"todo-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTodoRepo is an in-memory TodoRepository for usecase tests.
type memTodoRepo struct {
	mu    sync.Mutex
	todos map[string]*domain.Todo
	seq   int
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{todos: make(map[string]*domain.Todo)}
}

func (r *memTodoRepo) Create(_ context.Context, todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	// Monotonic timestamps so newest-first ordering is deterministic.
	r.seq++
	todo.CreatedAt = time.Unix(int64(r.seq), 0)
	copied := *todo
	r.todos[todo.ID] = &copied
	return nil
}

func (r *memTodoRepo) FindByID(_ context.Context, id string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if todo, ok := r.todos[id]; ok {
		copied := *todo
		return &copied, nil
	}
	return nil, nil
}

func (r *memTodoRepo) sortedByUser(userID string) []*domain.Todo {
	var owned []*domain.Todo
	for _, todo := range r.todos {
		if todo.UserID == userID {
			copied := *todo
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned
}

func (r *memTodoRepo) FindByUserID(_ context.Context, userID string, limit, offset int) ([]*domain.Todo, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := r.sortedByUser(userID)
	total := int64(len(owned))
	if offset >= len(owned) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

func (r *memTodoRepo) FindAllByUserID(_ context.Context, userID string) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedByUser(userID), nil
}

func (r *memTodoRepo) Update(_ context.Context, todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *todo
	r.todos[todo.ID] = &copied
	return nil
}

func (r *memTodoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.todos, id)
	return nil
}

func TestCreateTodo(t *testing.T) {
	uc := NewTodoUsecase(newMemTodoRepo())

	todo, err := uc.CreateTodo(context.Background(), "u1", "Buy milk", "2 liters")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, domain.StatusPending, todo.Status)
	assert.Equal(t, "u1", todo.UserID)
	assert.NotEmpty(t, todo.ID)
}

func TestCreateTodoRequiresTitle(t *testing.T) {
	uc := NewTodoUsecase(newMemTodoRepo())

	_, err := uc.CreateTodo(context.Background(), "u1", "   ", "")
	require.Error(t, err)

	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "title is required", appErr.Message)
}

func TestOwnershipIndistinguishableFromAbsence(t *testing.T) {
	repo := newMemTodoRepo()
	uc := NewTodoUsecase(repo)

	todo, err := uc.CreateTodo(context.Background(), "alice", "Buy milk", "")
	require.NoError(t, err)

	// Bob probing Alice's todo and probing a random id must look the same.
	_, errForeign := uc.GetTodo(context.Background(), "bob", todo.ID)
	_, errMissing := uc.GetTodo(context.Background(), "bob", "no-such-id")

	for _, err := range []error{errForeign, errMissing} {
		require.Error(t, err)
		appErr := apperror.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Todo not found", appErr.Message)
	}

	_, err = uc.UpdateStatus(context.Background(), "bob", todo.ID, "completed")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)

	err = uc.DeleteTodo(context.Background(), "bob", todo.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)

	// The owner still sees it untouched.
	got, err := uc.GetTodo(context.Background(), "alice", todo.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestUpdateStatus(t *testing.T) {
	repo := newMemTodoRepo()
	uc := NewTodoUsecase(repo)

	todo, err := uc.CreateTodo(context.Background(), "u1", "Buy milk", "")
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), "u1", todo.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	back, err := uc.UpdateStatus(context.Background(), "u1", todo.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, back.Status)
}

func TestUpdateStatusInvalidLeavesRecordUnchanged(t *testing.T) {
	repo := newMemTodoRepo()
	uc := NewTodoUsecase(repo)

	todo, err := uc.CreateTodo(context.Background(), "u1", "Buy milk", "")
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "u1", todo.ID, "done")
	require.Error(t, err)

	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Invalid status", appErr.Message)

	stored, err := repo.FindByID(context.Background(), todo.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestListTodosPagination(t *testing.T) {
	repo := newMemTodoRepo()
	uc := NewTodoUsecase(repo)

	for i := 0; i < 25; i++ {
		_, err := uc.CreateTodo(context.Background(), "u1", "task", "")
		require.NoError(t, err)
	}
	_, err := uc.CreateTodo(context.Background(), "u2", "someone else's", "")
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		page, err := uc.ListTodos(context.Background(), "u1", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, int64(3), page.Pages)
		assert.Len(t, page.Data, 10)
	})

	t.Run("limit clamped to 100", func(t *testing.T) {
		page, err := uc.ListTodos(context.Background(), "u1", 1, 1000)
		require.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
		assert.Equal(t, int64(1), page.Pages)
		assert.Len(t, page.Data, 25)
	})

	t.Run("last page is partial", func(t *testing.T) {
		page, err := uc.ListTodos(context.Background(), "u1", 3, 10)
		require.NoError(t, err)
		assert.Len(t, page.Data, 5)
	})

	t.Run("newest first", func(t *testing.T) {
		page, err := uc.ListTodos(context.Background(), "u1", 1, 10)
		require.NoError(t, err)
		for i := 1; i < len(page.Data); i++ {
			assert.True(t, !page.Data[i-1].CreatedAt.Before(page.Data[i].CreatedAt))
		}
	})

	t.Run("empty page beyond the end", func(t *testing.T) {
		page, err := uc.ListTodos(context.Background(), "u1", 99, 10)
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Len(t, page.Data, 0)
	})
}

func TestSearchTodos(t *testing.T) {
	repo := newMemTodoRepo()
	uc := NewTodoUsecase(repo)

	_, err := uc.CreateTodo(context.Background(), "u1", "Buy milk", "from the corner shop")
	require.NoError(t, err)
	_, err = uc.CreateTodo(context.Background(), "u1", "Walk the dog", "")
	require.NoError(t, err)
	_, err = uc.CreateTodo(context.Background(), "u2", "Buy milk too", "")
	require.NoError(t, err)

	t.Run("matches with a typo", func(t *testing.T) {
		todos, err := uc.SearchTodos(context.Background(), "u1", "mikl")
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, "Buy milk", todos[0].Title)
	})

	t.Run("scoped to the caller", func(t *testing.T) {
		todos, err := uc.SearchTodos(context.Background(), "u2", "milk")
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, "Buy milk too", todos[0].Title)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := uc.SearchTodos(context.Background(), "u1", "  ")
		require.Error(t, err)
		assert.Equal(t, "q is required", apperror.From(err).Message)
	})
}
