package services

import (
	"context"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

// UserReaderSvc defines read operations for users.
type UserReaderSvc interface {
	// GetUserByID retrieves an active user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves an active user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for users.
type UserWriterSvc interface {
	// CreateUser creates a new user. Fails with apperrors.ErrDuplicate when a
	// user with the same email already exists.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUserRoles replaces a user's role set wholesale.
	UpdateUserRoles(ctx context.Context, userID string, roles []string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
