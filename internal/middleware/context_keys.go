package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// contextKey is a private key type to prevent collisions in request contexts.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	currentUserKey = contextKey("currentUser")
)

// GetCurrentUser retrieves the authenticated user placed in the request
// context by RequireAuth. It returns the user and a boolean indicating if it
// was found.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(currentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// withCurrentUser stores the authenticated user in the given context.
func withCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}
