package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents an orienteering event in the domain.
// This is a pure business entity with no framework dependencies.
type Event struct {
	EventID                int64            `json:"eventID"` // Store-assigned, 0 until persisted
	Name                   string           `json:"name"`
	Date                   time.Time        `json:"date"`
	Categories             []string         `json:"categories"` // Ordered
	Location               string           `json:"location"`
	StartPointURL          string           `json:"startPointURL"`
	StartTime              string           `json:"startTime"` // Free-form "HH:MM"
	Fee                    *decimal.Decimal `json:"fee,omitempty"`
	RegistrationDeadline   *time.Time       `json:"registrationDeadline,omitempty"`
	RegisteredParticipants int              `json:"registeredParticipants"`
	GoogleMapsURL          *string          `json:"googleMapsURL,omitempty"`
	GoogleDriveURL         *string          `json:"googleDriveURL,omitempty"`
	Deleted                bool             `json:"deleted"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

// IsRegistrationOpen reports whether teams can still register for the event.
// Registration stays open indefinitely when no deadline is set.
func (e *Event) IsRegistrationOpen() bool {
	if e.RegistrationDeadline == nil {
		return true
	}
	return time.Now().Before(*e.RegistrationDeadline)
}

// IsDeleted reports whether the event has been soft-deleted.
func (e *Event) IsDeleted() bool {
	return e.Deleted
}
