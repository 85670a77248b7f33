package repository

import (
	"context"
	"errors"
	"time"

	"todo-backend/internal/todo/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTodoRepository implements TodoRepository using GORM.
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository.
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *gormTodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Todo, int64, error) {
	var todos []*domain.Todo
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Todo{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&todos).Error
	return todos, total, err
}

func (r *gormTodoRepository) FindAllByUserID(ctx context.Context, userID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	return todos, err
}

func (r *gormTodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	todo.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *gormTodoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Todo{}, "id = ?", id).Error
}
