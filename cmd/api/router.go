package api

import (
	"net/http"

	authDelivery "todo-backend/internal/auth/delivery"
	"todo-backend/internal/auth/domain"
	authUsecase "todo-backend/internal/auth/usecase"
	todoDelivery "todo-backend/internal/todo/delivery"
	todoUsecasePkg "todo-backend/internal/todo/usecase"
	"todo-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the full HTTP surface. The rate limiter guards only the
// auth routes; everything under /api/todos additionally requires the caller's
// resolved role to be "user".
func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, todoUc todoUsecasePkg.TodoUsecase, limiter *ratelimit.Limiter) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	todoHandler := todoDelivery.NewTodoHandler(todoUc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(limiter.Middleware())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		user := api.Group("/user")
		user.Use(authDelivery.AuthMiddleware(authUc))
		{
			user.GET("/profile", authHandler.Profile)
		}

		todos := api.Group("/todos")
		todos.Use(authDelivery.AuthMiddleware(authUc), authDelivery.RequireRole(domain.RoleUser))
		{
			todos.POST("", todoHandler.Create)
			todos.GET("", todoHandler.List)
			todos.GET("/search", todoHandler.Search)
			todos.GET("/:id", todoHandler.Get)
			todos.PATCH("/:id", todoHandler.UpdateStatus)
			todos.DELETE("/:id", todoHandler.Delete)
		}
	}
}
