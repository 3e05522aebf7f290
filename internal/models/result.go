package models

// Result is the database row model for the results table. EventID references
// events.id by value only; there is no store-level cascade.
type Result struct {
	ResultID      int64  `db:"id"`
	EventID       int64  `db:"event_id"`
	Category      string `db:"category"`
	Team          string `db:"team"`
	PenaltyPoints int    `db:"penalty_points"`
	Deleted       bool   `db:"deleted"`
	AuditTimestamps
}
