package usecase

import (
	"context"

	"todo-backend/internal/todo/domain"
)

// Pagination bounds for listing todos.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// TodoUsecase defines the todo business logic. Every operation is scoped to
// the owner: a todo that exists but belongs to someone else behaves exactly
// like one that does not exist.
type TodoUsecase interface {
	// CreateTodo creates a pending todo owned by userID.
	CreateTodo(ctx context.Context, userID, title, description string) (*domain.Todo, error)

	// ListTodos returns one page of the user's todos, newest first. Page and
	// limit fall back to defaults when out of range; limit is capped.
	ListTodos(ctx context.Context, userID string, page, limit int) (*domain.Page, error)

	// GetTodo returns the todo if userID owns it.
	GetTodo(ctx context.Context, userID, todoID string) (*domain.Todo, error)

	// UpdateStatus sets the todo's status if userID owns it.
	UpdateStatus(ctx context.Context, userID, todoID string, status string) (*domain.Todo, error)

	// DeleteTodo deletes the todo if userID owns it.
	DeleteTodo(ctx context.Context, userID, todoID string) error

	// SearchTodos fuzzy-matches the query against the user's todos.
	SearchTodos(ctx context.Context, userID, query string) ([]*domain.Todo, error)
}
