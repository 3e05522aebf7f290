package models

// User is the database row model for the users table. The primary key is the
// identity provider's subject ID. Roles holds a JSON-encoded string array,
// decoded only at the repository edge.
type User struct {
	UserID   string `db:"id"`
	Email    string `db:"email"`
	Name     string `db:"name"`
	Roles    string `db:"roles"` // JSON text
	IsActive bool   `db:"is_active"`
	AuditTimestamps
}
