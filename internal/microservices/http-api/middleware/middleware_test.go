package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockRoleLookup struct {
	mock.Mock
}

func (m *MockRoleLookup) GetRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func adminRouter(v TokenValidator, lookup RoleLookup) *gin.Engine {
	r := gin.New()
	admin := r.Group("/api/admin", AuthMiddleware(v), RoleGate(lookup, "admin"))
	admin.GET("/stats", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoleGate(t *testing.T) {
	v := new(MockValidator)
	lookup := new(MockRoleLookup)
	r := adminRouter(v, lookup)

	v.On("ValidateToken", "admin-token").Return(&service.Claims{UserID: "a1", Role: "admin"}, nil)
	v.On("ValidateToken", "user-token").Return(&service.Claims{UserID: "u1", Role: "user"}, nil)
	v.On("ValidateToken", "legacy-token").Return(&service.Claims{UserID: "l1"}, nil)
	v.On("ValidateToken", "broken-lookup").Return(&service.Claims{UserID: "b1"}, nil)
	v.On("ValidateToken", "bad").Return(nil, service.ErrInvalidToken)
	lookup.On("GetRole", mock.Anything, "l1").Return("admin", nil)
	lookup.On("GetRole", mock.Anything, "b1").Return("", errors.New("db down"))

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"no session", "", http.StatusUnauthorized},
		{"invalid token", "bad", http.StatusUnauthorized},
		{"non-admin", "user-token", http.StatusForbidden},
		{"admin", "admin-token", http.StatusOK},
		{"role from users table", "legacy-token", http.StatusOK},
		{"lookup error denies", "broken-lookup", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/api/admin/stats", tt.token)
			assert.Equal(t, tt.want, w.Code)
		})
	}
	lookup.AssertNotCalled(t, "GetRole", mock.Anything, "u1")
}

func TestRoleGate_WithoutAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/x", RoleGate(nil, "admin"), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "").Code)
}

func TestAuthMiddleware_HeaderFormat(t *testing.T) {
	r := gin.New()
	r.GET("/me", AuthMiddleware(new(MockValidator)), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization header format")
}

func TestOptionalAuth(t *testing.T) {
	v := new(MockValidator)
	v.On("ValidateToken", "good").Return(&service.Claims{UserID: "u1"}, nil)
	v.On("ValidateToken", "bad").Return(nil, service.ErrInvalidToken)

	r := gin.New()
	r.GET("/who", OptionalAuth(v, nil), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})

	assert.Equal(t, "u1", get(r, "/who", "good").Body.String())
	w := get(r, "/who", "bad")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, get(r, "/who", "").Body.String())
}

func TestOptionalAuth_RoleFromUsersTable(t *testing.T) {
	v := new(MockValidator)
	lookup := new(MockRoleLookup)
	v.On("ValidateToken", "legacy-token").Return(&service.Claims{UserID: "l1"}, nil)
	v.On("ValidateToken", "user-token").Return(&service.Claims{UserID: "u1", Role: "user"}, nil)
	v.On("ValidateToken", "broken-lookup").Return(&service.Claims{UserID: "b1"}, nil)
	lookup.On("GetRole", mock.Anything, "l1").Return("admin", nil)
	lookup.On("GetRole", mock.Anything, "b1").Return("", errors.New("db down"))

	r := gin.New()
	r.GET("/role", OptionalAuth(v, lookup), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RoleKey))
	})

	assert.Equal(t, "admin", get(r, "/role", "legacy-token").Body.String())
	assert.Equal(t, "user", get(r, "/role", "user-token").Body.String())
	w := get(r, "/role", "broken-lookup")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, get(r, "/role", "").Body.String())
	lookup.AssertNotCalled(t, "GetRole", mock.Anything, "u1")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://awards.example.com/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://awards.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://awards.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://awards.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/vote", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/vote", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, post())

	now = now.Add(time.Hour)
	assert.Equal(t, 1, rl.Sweep())
}
