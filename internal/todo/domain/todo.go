package domain

import "time"

// Status represents the completion state of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the accepted status values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Todo is a per-user list item. Only the owner can read or mutate it.
type Todo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status" gorm:"default:pending"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Page is one page of a user's todos, newest first.
type Page struct {
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int64   `json:"total"`
	Pages int64   `json:"pages"`
	Data  []*Todo `json:"data"`
}
