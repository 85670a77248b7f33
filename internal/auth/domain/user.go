package domain

import "time"

// Roles assignable to a user. Registration always pins RoleUser; the role
// column exists so operators can promote accounts out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // never serialized
	Role         string    `json:"role" gorm:"not null;default:user"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the per-request projection of the authenticated caller,
// attached to the request context by the auth middleware. Role comes from
// the store lookup, not from the token claim.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
