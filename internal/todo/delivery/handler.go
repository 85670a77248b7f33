package delivery

import (
	"net/http"
	"strconv"

	authDelivery "todo-backend/internal/auth/delivery"
	"todo-backend/internal/todo/usecase"
	"todo-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo HTTP requests. Every route runs behind the auth
// middleware, so an identity is always present.
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{todoUsecase: todoUsecase}
}

// CreateTodoRequest is the body for POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateStatusRequest is the body for PATCH /api/todos/:id.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperror.BadRequest("invalid JSON payload"))
		return
	}

	todo, err := h.todoUsecase.CreateTodo(c.Request.Context(), callerID(c), req.Title, req.Description)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// List handles GET /api/todos?page=&limit=.
func (h *TodoHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.todoUsecase.ListTodos(c.Request.Context(), callerID(c), page, limit)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/todos/:id.
func (h *TodoHandler) Get(c *gin.Context) {
	todo, err := h.todoUsecase.GetTodo(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateStatus handles PATCH /api/todos/:id.
func (h *TodoHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperror.BadRequest("invalid JSON payload"))
		return
	}

	todo, err := h.todoUsecase.UpdateStatus(c.Request.Context(), callerID(c), c.Param("id"), req.Status)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.todoUsecase.DeleteTodo(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// Search handles GET /api/todos/search?q=.
func (h *TodoHandler) Search(c *gin.Context) {
	todos, err := h.todoUsecase.SearchTodos(c.Request.Context(), callerID(c), c.Query("q"))
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(todos), "data": todos})
}

func callerID(c *gin.Context) string {
	if identity := authDelivery.IdentityFrom(c); identity != nil {
		return identity.ID
	}
	return ""
}

func abortWith(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
