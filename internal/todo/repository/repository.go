package repository

import (
	"context"

	"todo-backend/internal/todo/domain"
)

// TodoRepository defines the interface for todo data access.
type TodoRepository interface {
	// Create creates a new todo.
	Create(ctx context.Context, todo *domain.Todo) error

	// FindByID finds a todo by its id; (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*domain.Todo, error)

	// FindByUserID returns one page of a user's todos ordered newest-first
	// by creation time, plus the user's total count.
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Todo, int64, error)

	// FindAllByUserID returns every todo owned by the user, newest first.
	FindAllByUserID(ctx context.Context, userID string) ([]*domain.Todo, error)

	// Update persists changes to an existing todo.
	Update(ctx context.Context, todo *domain.Todo) error

	// Delete deletes a todo by id.
	Delete(ctx context.Context, id string) error
}
