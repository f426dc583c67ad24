package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
	"github.com/emre/campusvoice/internal/pkg/auth"
)

type fakeResolver struct {
	users map[int64]*models.User
}

func (f *fakeResolver) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// failingResolver simulates a user store whose backend is unreachable.
type failingResolver struct {
	err error
}

func (f *failingResolver) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return nil, f.err
}

func newTestRouter(jwtService *auth.JWTService, resolver UserResolver, requiredRole models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService, resolver)

	router := gin.New()
	handlers := []gin.HandlerFunc{m.Authenticate()}
	if requiredRole != "" {
		handlers = append(handlers, m.RoleRequired(requiredRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	router.GET("/protected", handlers...)
	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusvoice.test",
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWTService()
	student := &models.User{ID: 1, Name: "Ada", Role: models.RoleStudent}
	resolver := &fakeResolver{users: map[int64]*models.User{1: student}}
	router := newTestRouter(jwtService, resolver, "")

	validToken, err := jwtService.Generate(1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	deletedUserToken, err := jwtService.Generate(2)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	expiredService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute})
	expiredToken, err := expiredService.Generate(1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"deleted account", "Bearer " + deletedUserToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthenticate_StoreFailureIsServerError(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService, &failingResolver{err: errors.New("connection refused")}, "")

	token, err := jwtService.Generate(1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A failing store is not an authentication verdict, so the request must
	// not be rejected as unauthenticated.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService()
	resolver := &fakeResolver{users: map[int64]*models.User{
		1: {ID: 1, Role: models.RoleStudent},
		2: {ID: 2, Role: models.RoleFaculty},
		3: {ID: 3, Role: models.RoleAdmin},
	}}
	router := newTestRouter(jwtService, resolver, models.RoleAdmin)

	tests := []struct {
		name       string
		userID     int64
		wantStatus int
	}{
		{"admin allowed", 3, http.StatusOK},
		{"student forbidden", 1, http.StatusForbidden},
		{"faculty forbidden", 2, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.Generate(tt.userID)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRoleRequired_FacultyRoute(t *testing.T) {
	jwtService := newTestJWTService()
	resolver := &fakeResolver{users: map[int64]*models.User{
		1: {ID: 1, Role: models.RoleStudent},
		2: {ID: 2, Role: models.RoleFaculty},
	}}
	router := newTestRouter(jwtService, resolver, models.RoleFaculty)

	tests := []struct {
		name       string
		userID     int64
		wantStatus int
	}{
		{"faculty allowed", 2, http.StatusOK},
		{"student forbidden", 1, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.Generate(tt.userID)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
