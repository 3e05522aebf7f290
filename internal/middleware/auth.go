package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
)

// RequireAuth creates a Gin middleware handler that resolves the bearer token
// to a local user through the auth service. Every verification failure maps
// uniformly to 401; inactive accounts are rejected the same way regardless of
// role.
func RequireAuth(authService portssvc.AzureAuthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := authService.VerifyAzureToken(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Token verification failed")
			} else {
				logger.Error("User lookup failed during token verification", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}

		if !user.IsActive {
			logger.Warn("Inactive account rejected", slog.String("user_id", user.UserID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User account is inactive"})
			return
		}

		// Store the user and a user-enriched logger in the request context
		ctxWithUser := withCurrentUser(c.Request.Context(), user)
		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}

// checkRoles resolves whether the user may pass a role gate. A user without
// any of the wanted roles gets an error wrapping apperrors.ErrForbidden.
func checkRoles(user *domain.User, roles ...string) error {
	if !user.HasAnyRole(roles...) {
		return fmt.Errorf("%w: missing required roles: %s", apperrors.ErrForbidden, strings.Join(roles, ", "))
	}
	return nil
}

// RequireRoles creates a middleware that rejects authenticated users lacking
// every one of the given roles. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, ok := GetCurrentUser(c)
		if !ok {
			logger.Error("RequireRoles used without an authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := checkRoles(user, roles...); err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("Missing required roles", slog.Any("required_roles", roles))
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		c.Next()
	}
}

// RequireAdmin creates a middleware that only lets admins through.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin)
}
