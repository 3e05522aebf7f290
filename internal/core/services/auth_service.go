package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/platform/config"
	"github.com/lesnaszkolka/ino-backend/internal/utils"
)

// azureAuthService bridges Azure AD identity tokens to local users and
// handles the application's own session tokens. It requires access to
// application configuration (for secrets and expiry times) and the user
// repository for subject lookups and auto-provisioning.
type azureAuthService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

// NewAzureAuthService creates a new instance of azureAuthService.
func NewAzureAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &azureAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.AzureClientID,
			ClientSecret: cfg.AzureClientSecret,
			RedirectURL:  cfg.AzureRedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     microsoft.AzureADEndpoint(cfg.AzureTenantID),
		},
	}
}

// GenerateToken creates a new session token for the given user.
func (s *azureAuthService) GenerateToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	token, err := utils.GenerateJWT(user.UserID, user.Email, user.Name, user.Roles,
		s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, expiryTime, nil
}

// ValidateToken verifies a session token and resolves its subject to a user.
// Malformed, forged and expired tokens are indistinguishable to the caller:
// they all come back as apperrors.ErrUnauthorized. Store errors propagate.
func (s *azureAuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// azureClaims is the subset of the Azure AD token payload the service reads.
type azureClaims struct {
	UPN   string `json:"upn"`
	Email string `json:"email"`
	Name  string `json:"name"`
	OID   string `json:"oid"`
	Sub   string `json:"sub"`
}

// VerifyAzureToken decodes the claims payload of an Azure AD issued token and
// resolves or auto-provisions the corresponding local user.
//
// The payload is decoded WITHOUT verifying the token's signature against the
// tenant's published keys, and newly seen identities are provisioned with the
// admin role. Both behaviors are kept for compatibility with the existing
// frontend deployment; see DESIGN.md for the open hardening question.
func (s *azureAuthService) VerifyAzureToken(ctx context.Context, tokenString string) (*domain.User, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, apperrors.ErrUnauthorized
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	var claims azureClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	email := claims.UPN
	if email == "" {
		email = claims.Email
	}
	if email == "" {
		return nil, apperrors.ErrUnauthorized
	}

	userID := claims.OID
	if userID == "" {
		userID = claims.Sub
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if userID == "" {
		// some app registrations issue tokens without oid or sub
		userID = uuid.NewString()
	}

	newUser := domain.User{
		UserID:   userID,
		Email:    email,
		Name:     claims.Name,
		Roles:    []string{domain.RoleAdmin},
		IsActive: true,
	}
	created, err := s.userRepo.SaveUser(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to provision user for %s: %w", email, err)
	}
	return created, nil
}

// GetLoginURL builds the Azure AD authorization endpoint URL for the
// configured client. Pure string construction, no network round trip.
func (s *azureAuthService) GetLoginURL(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for login URL: %w", err)
	}
	return s.oauth2Config.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "query")), nil
}
