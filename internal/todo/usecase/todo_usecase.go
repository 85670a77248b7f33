package usecase

import (
	"context"
	"strings"

	"todo-backend/internal/todo/domain"
	"todo-backend/internal/todo/repository"
	"todo-backend/pkg/apperror"
	"todo-backend/pkg/fuzzy"
)

// todoUsecase implements TodoUsecase.
type todoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase.
func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{todoRepo: todoRepo}
}

func (u *todoUsecase) CreateTodo(ctx context.Context, userID, title, description string) (*domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.BadRequest("title is required")
	}

	todo := &domain.Todo{
		Title:       title,
		Description: description,
		Status:      domain.StatusPending,
		UserID:      userID,
	}
	if err := u.todoRepo.Create(ctx, todo); err != nil {
		return nil, apperror.Internal(err)
	}

	return todo, nil
}

func (u *todoUsecase) ListTodos(ctx context.Context, userID string, page, limit int) (*domain.Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	todos, total, err := u.todoRepo.FindByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}

	return &domain.Page{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + int64(limit) - 1) / int64(limit),
		Data:  todos,
	}, nil
}

func (u *todoUsecase) GetTodo(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	return u.findOwned(ctx, userID, todoID)
}

func (u *todoUsecase) UpdateStatus(ctx context.Context, userID, todoID string, status string) (*domain.Todo, error) {
	// Validate before touching the store so an invalid status never writes.
	next := domain.Status(status)
	if !next.Valid() {
		return nil, apperror.BadRequest("Invalid status")
	}

	todo, err := u.findOwned(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Status = next
	if err := u.todoRepo.Update(ctx, todo); err != nil {
		return nil, apperror.Internal(err)
	}

	return todo, nil
}

func (u *todoUsecase) DeleteTodo(ctx context.Context, userID, todoID string) error {
	if _, err := u.findOwned(ctx, userID, todoID); err != nil {
		return err
	}
	if err := u.todoRepo.Delete(ctx, todoID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *todoUsecase) SearchTodos(ctx context.Context, userID, query string) ([]*domain.Todo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.BadRequest("q is required")
	}

	todos, err := u.todoRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	matches := []*domain.Todo{}
	for _, todo := range todos {
		if fuzzy.MatchTodo(query, todo.Title, todo.Description) {
			matches = append(matches, todo)
		}
	}
	return matches, nil
}

// findOwned fetches a todo and enforces ownership. A missing todo and a
// foreign-owned todo are deliberately indistinguishable to the caller.
func (u *todoUsecase) findOwned(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	todo, err := u.todoRepo.FindByID(ctx, todoID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if todo == nil || todo.UserID != userID {
		return nil, apperror.NotFound("Todo not found")
	}
	return todo, nil
}
