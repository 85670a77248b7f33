package delivery_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-backend/cmd/api"
	"todo-backend/internal/auth/delivery"
	"todo-backend/internal/auth/domain"
	"todo-backend/internal/auth/dto"
	"todo-backend/pkg/apperror"
	"todo-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase resolves a fixed set of tokens.
type stubAuthUsecase struct {
	users map[string]*domain.User
}

func (s *stubAuthUsecase) Register(context.Context, *dto.RegisterRequest) (*dto.TokenResponse, error) {
	panic("not used")
}

func (s *stubAuthUsecase) Login(context.Context, *dto.LoginRequest) (*dto.TokenResponse, error) {
	panic("not used")
}

func (s *stubAuthUsecase) ValidateToken(_ context.Context, token string) (*domain.User, error) {
	switch token {
	case "deleted-user":
		return nil, apperror.Unauthorized("Invalid token (user not found)")
	default:
		if user, ok := s.users[token]; ok {
			return user, nil
		}
		return nil, apperror.Unauthorized("Invalid or expired token")
	}
}

func newTestRouter(requiredRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	stub := &stubAuthUsecase{users: map[string]*domain.User{
		"good-token": {ID: "u1", Name: "Ann", Email: "ann@x.com", Role: domain.RoleUser},
	}}

	r := gin.New()
	r.Use(api.ErrorResponder(logger.New("error")))

	group := r.Group("/protected")
	group.Use(delivery.AuthMiddleware(stub))
	if requiredRole != "" {
		group.Use(delivery.RequireRole(requiredRole))
	}
	group.GET("", func(c *gin.Context) {
		identity := delivery.IdentityFrom(c)
		c.JSON(http.StatusOK, identity)
	})

	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter("")

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "", http.StatusUnauthorized, `{"error":"No Token Provided"}`},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, `{"error":"No Token Provided"}`},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, `{"error":"No Token Provided"}`},
		{"invalid token", "Bearer garbage", http.StatusUnauthorized, `{"error":"Invalid or expired token"}`},
		{"deleted user", "Bearer deleted-user", http.StatusUnauthorized, `{"error":"Invalid token (user not found)"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	r := newTestRouter("")

	w := doRequest(t, r, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u1","role":"user","email":"ann@x.com","name":"Ann"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		r := newTestRouter(domain.RoleUser)
		w := doRequest(t, r, "Bearer good-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mismatched role is forbidden", func(t *testing.T) {
		r := newTestRouter(domain.RoleAdmin)
		w := doRequest(t, r, "Bearer good-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Access denied (insufficient role)"}`, w.Body.String())
	})

	t.Run("guard without identity rejects", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(api.ErrorResponder(logger.New("error")))
		// RequireRole mounted without AuthMiddleware in front.
		r.GET("/misconfigured", delivery.RequireRole(domain.RoleUser), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/misconfigured", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
