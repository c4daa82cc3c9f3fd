package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

// TokenVerifier validates a bearer token and returns the user it was issued to.
type TokenVerifier interface {
	Verify(token string) (uint64, error)
}

type contextKey string

const userIDKey contextKey = constants.ContextKeyUserID

// RequireAuth checks the bearer token. A missing header is 401, anything
// present but unusable is 403.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			_ = c.Error(apierrors.Unauthorized("Token not provided"))
			c.Abort()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			_ = c.Error(apierrors.Forbidden("Invalid token"))
			c.Abort()
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			_ = c.Error(apierrors.Forbidden("Invalid token").WithCause(err))
			c.Abort()
			return
		}

		// Store user ID in both the gin context and the request context
		c.Set(constants.ContextKeyUserID, userID)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user ID from ctx.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	userID, ok := ctx.Value(userIDKey).(uint64)
	return userID, ok
}
