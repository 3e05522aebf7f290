package repositories

import (
	"context"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// UserReader defines read operations for user data. Lookups only see active
// accounts; deactivated users are invisible here.
type UserReader interface {
	// FindUserByID retrieves an active user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves an active user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email is already taken.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser updates an existing user's details, replacing the role set
	// wholesale.
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
