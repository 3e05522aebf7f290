package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user directory service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with email %s", apperrors.ErrDuplicate, req.Email)
	}

	userID := req.ID
	if userID == "" {
		userID = uuid.NewString()
	}

	user := domain.User{
		UserID:   userID,
		Email:    req.Email,
		Name:     req.Name,
		Roles:    req.Roles,
		IsActive: true,
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}

	created, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return created, nil
}

// UpdateUserRoles replaces the role set wholesale; roles are never merged.
func (s *userService) UpdateUserRoles(ctx context.Context, userID string, roles []string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Roles = roles
	updated, err := s.userRepo.UpdateUser(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user roles in service: %w", err)
	}
	return updated, nil
}
