package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
	"github.com/emre/campusvoice/internal/pkg/auth"
)

// ContextUserKey is the gin context key holding the resolved current user.
const ContextUserKey = "currentUser"

// UserResolver resolves a token's embedded user id to the current user record.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware implements the access-control gate: authenticate, then
// authorize by role.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

func abortUnauthenticated(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// Authenticate validates the bearer token and re-resolves the embedded user id
// against the user store. A token whose id no longer resolves is rejected, so
// a deleted account cannot keep acting on a still-valid token. On success the
// current user record is attached to the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthenticated(c, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication required")
				errorDetail = errorDetail.WithDetails("Token has expired")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
				return
			}
			abortUnauthenticated(c, "Invalid token")
			return
		}

		// Never trust profile data embedded at issue time; fetch the current
		// record. Only a definitive not-found is an authentication failure;
		// a store error must not masquerade as one.
		user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				abortUnauthenticated(c, "Account no longer exists")
				return
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RoleRequired checks the resolved user's role against the operation's
// declared requirement. The response never reveals which role was required.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthenticated(c, "User not resolved")
			return
		}

		if user.Role != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user record attached by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
