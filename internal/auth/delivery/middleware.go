package delivery

import (
	"strings"

	"todo-backend/internal/auth/domain"
	"todo-backend/internal/auth/usecase"
	"todo-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key the authenticated identity lives under.
const identityKey = "identity"

// AuthMiddleware requires a Bearer token, verifies it, and re-resolves the
// subject from the store before attaching the identity to the context. The
// role seen by downstream guards is the user's current role, not the token
// claim, so role changes apply without re-login.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			abortWith(c, apperror.Unauthorized("No Token Provided"))
			return
		}

		user, err := authUsecase.ValidateToken(c.Request.Context(), token)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set(identityKey, &domain.Identity{
			ID:    user.ID,
			Role:  user.Role,
			Email: user.Email,
			Name:  user.Name,
		})
		c.Next()
	}
}

// RequireRole gates a route group to callers whose resolved role matches.
// It must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			abortWith(c, apperror.Unauthorized("No user data in request"))
			return
		}
		if identity.Role != role {
			abortWith(c, apperror.Forbidden("Access denied (insufficient role)"))
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity, or nil when the request
// did not pass AuthMiddleware.
func IdentityFrom(c *gin.Context) *domain.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}

func abortWith(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
