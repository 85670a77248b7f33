package repository

import (
	"context"
	"errors"

	"todo-backend/internal/auth/domain"
)

// ErrDuplicateEmail indicates the unique index on email rejected a create.
// The existence check in the usecase cannot prevent this: two concurrent
// registrations can both pass the check and race to the insert.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository defines the persistence operations the auth pipeline needs.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
