package domain

import (
	"slices"
	"time"
)

// RoleAdmin grants access to destructive operations (event/result deletion,
// user administration).
const RoleAdmin = "admin"

// User represents an application user in the domain. The UserID is the
// identity provider's subject identifier (Azure AD object ID), not a locally
// generated key.
type User struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasRole reports whether the user carries the given role. Matching is
// case-sensitive exact string membership.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// HasAnyRole reports whether the user carries at least one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}
