package dto

import (
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// CreateUserRequest defines the payload for creating a user directly (admin
// action). ID is optional; when absent the service assigns one.
type CreateUserRequest struct {
	ID    string   `json:"id"`
	Email string   `json:"email" binding:"required,email"`
	Name  string   `json:"name" binding:"required"`
	Roles []string `json:"roles"`
}

// UpdateUserRolesRequest replaces a user's role set wholesale.
type UpdateUserRolesRequest struct {
	Roles []string `json:"roles" binding:"required"`
}

// UserResponse is the wire representation of a user.
type UserResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Roles     []string `json:"roles"`
	IsActive  bool     `json:"is_active"`
	CreatedAt *string  `json:"created_at,omitempty"`
	UpdatedAt *string  `json:"updated_at,omitempty"`
}

// ToUserResponse converts a domain user to its wire representation.
func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:       user.UserID,
		Email:    user.Email,
		Name:     user.Name,
		Roles:    user.Roles,
		IsActive: user.IsActive,
	}
	if !user.CreatedAt.IsZero() {
		createdAt := user.CreatedAt.Format(TimestampLayout)
		resp.CreatedAt = &createdAt
	}
	if !user.UpdatedAt.IsZero() {
		updatedAt := user.UpdatedAt.Format(TimestampLayout)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
