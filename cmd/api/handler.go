package api

import (
	authUsecase "todo-backend/internal/auth/usecase"
	todoUsecasePkg "todo-backend/internal/todo/usecase"
	"todo-backend/pkg/config"
	"todo-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler owns the wired gin engine.
type Handler struct {
	engine *gin.Engine
}

// NewHandler assembles middleware and routes into a ready engine.
func NewHandler(authUc authUsecase.AuthUsecase, todoUc todoUsecasePkg.TodoUsecase, cfg *config.Config, log *logrus.Logger) *Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// ErrorResponder runs before any route-group middleware, so it renders
	// errors from every layer, including aborts inside the auth middleware.
	r.Use(RequestLogger(log), Recovery(log), ErrorResponder(log))

	limiter := ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMax)
	SetupRoutes(r, authUc, todoUc, limiter)

	return &Handler{engine: r}
}

// Engine exposes the underlying handler, mainly for tests.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}

// Start begins serving HTTP traffic on addr.
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
