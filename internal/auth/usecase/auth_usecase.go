package usecase

import (
	"context"
	"time"

	"todo-backend/internal/auth/domain"
	"todo-backend/internal/auth/dto"
	"todo-backend/internal/auth/repository"
	"todo-backend/pkg/apperror"
	"todo-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("Email already registered")
	}

	passwordHash, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Role is never client-supplied; every registration starts as a plain user.
	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// The existence check above can race with a concurrent registration;
		// the unique index is the authority.
		if err == repository.ErrDuplicateEmail {
			return nil, apperror.BadRequest("Email already registered")
		}
		return nil, apperror.Internal(err)
	}

	return u.tokenResponse(user, "User registered successfully")
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Same status and message whether the account is missing or the password
	// is wrong, so responses cannot be used to enumerate accounts.
	if user == nil || !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return u.tokenResponse(user, "Login successful")
}

func (u *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(u.config.JWTSecret), nil
	})
	// Malformed, tampered, and expired tokens all collapse to one outcome.
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}

	user, err := u.userRepo.FindByID(ctx, subject)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid token (user not found)")
	}

	return user, nil
}

func (u *authUsecase) tokenResponse(user *domain.User, message string) (*dto.TokenResponse, error) {
	token, err := u.signToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.TokenResponse{
		Message:   message,
		TokenType: "Bearer",
		ExpiresIn: int64(u.config.JWTExpiry.Seconds()),
		Token:     token,
		User: dto.PublicUser{
			ID:   user.ID,
			Name: user.Name,
			Role: user.Role,
		},
	}, nil
}

// signToken embeds the role at issuance for offline inspection only; the
// middleware always re-reads the role from the store.
func (u *authUsecase) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(u.config.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
