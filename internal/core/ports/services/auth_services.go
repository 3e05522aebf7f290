package services

import (
	"context"
	"time"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// TokenSvc handles the application's own session tokens.
type TokenSvc interface {
	// GenerateToken creates a signed session token for the user and returns
	// it together with its expiry time.
	GenerateToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateToken verifies a session token's signature and expiry and
	// resolves the subject to a user. Any verification failure yields
	// apperrors.ErrUnauthorized; store errors propagate unchanged.
	ValidateToken(ctx context.Context, tokenString string) (*domain.User, error)
}

// AzureAuthSvc bridges Azure AD identity tokens to local users.
type AzureAuthSvc interface {
	// VerifyAzureToken decodes an Azure AD issued token and resolves or
	// auto-provisions the corresponding local user. The token's claims
	// payload is decoded without signature verification; see the service
	// implementation for the trust boundary this preserves.
	VerifyAzureToken(ctx context.Context, tokenString string) (*domain.User, error)

	// GetLoginURL builds the Azure AD authorization endpoint URL for the
	// configured client.
	GetLoginURL(ctx context.Context) (string, error)
}

// AuthSvcFacade combines session token and Azure AD identity handling.
type AuthSvcFacade interface {
	TokenSvc
	AzureAuthSvc
}
