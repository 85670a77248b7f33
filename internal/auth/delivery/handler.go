package delivery

import (
	"net/http"

	"todo-backend/internal/auth/dto"
	"todo-backend/internal/auth/usecase"
	"todo-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login, and the profile endpoint.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperror.BadRequest("invalid JSON payload"))
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperror.BadRequest("invalid JSON payload"))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Profile handles GET /api/user/profile. The identity was resolved from the
// store by the middleware on this same request, so it is served directly.
func (h *AuthHandler) Profile(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		abortWith(c, apperror.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, identity)
}
