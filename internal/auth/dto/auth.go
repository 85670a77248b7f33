package dto

import "strings"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// Normalize trims surrounding whitespace and lowercases the email so
// "User@X.com " and "user@x.com" refer to the same account.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// PublicUser is the projection returned from auth endpoints. Email and the
// password hash are intentionally excluded.
type PublicUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// TokenResponse is the shared response body for register and login.
type TokenResponse struct {
	Message   string     `json:"message"`
	TokenType string     `json:"token_type"`
	ExpiresIn int64      `json:"expires_in"`
	Token     string     `json:"token"`
	User      PublicUser `json:"user"`
}
