package usecase

import (
	"context"

	"todo-backend/internal/auth/domain"
	"todo-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic.
type AuthUsecase interface {
	// Register creates a new account with role pinned to "user" and returns
	// a signed token for it.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)

	// Login verifies credentials and returns a signed token. Unknown email
	// and wrong password produce the same error.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)

	// ValidateToken verifies a token and re-resolves the subject against the
	// store, so the returned user carries the current role rather than the
	// one embedded at issuance.
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}
