package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is the database row model for the events table. Categories holds a
// JSON-encoded string array; the pgsql repository is the only place that
// encodes or decodes it.
type Event struct {
	EventID                int64            `db:"id"`
	Name                   string           `db:"name"`
	Date                   time.Time        `db:"date"`
	Categories             string           `db:"categories"` // JSON text
	Location               string           `db:"location"`
	StartPointURL          string           `db:"start_point_url"`
	StartTime              string           `db:"start_time"`
	Fee                    *decimal.Decimal `db:"fee"`
	RegistrationDeadline   *time.Time       `db:"registration_deadline"`
	RegisteredParticipants int              `db:"registered_participants"`
	GoogleMapsURL          *string          `db:"google_maps_url"`
	GoogleDriveURL         *string          `db:"google_drive_url"`
	Deleted                bool             `db:"deleted"`
	AuditTimestamps
}
