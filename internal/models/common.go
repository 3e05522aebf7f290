package models

import "time"

// AuditTimestamps holds the store-assigned timestamps shared by all tables.
type AuditTimestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
