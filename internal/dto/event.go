package dto

import (
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// fee travels as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the wire format for event dates and deadlines.
const DateLayout = "2006-01-02"

// TimestampLayout is the wire format for audit timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// CreateEventRequest defines the payload for creating or replacing an event.
// Dates travel as "YYYY-MM-DD" strings and are parsed by the event service.
type CreateEventRequest struct {
	Name                   string           `json:"name" binding:"required"`
	Date                   string           `json:"date" binding:"required"`
	Categories             []string         `json:"categories" binding:"required"`
	Location               string           `json:"location" binding:"required"`
	StartPointURL          string           `json:"start_point_url" binding:"required"`
	StartTime              string           `json:"start_time" binding:"required,hhmm"`
	Fee                    *decimal.Decimal `json:"fee"`
	RegistrationDeadline   *string          `json:"registration_deadline"`
	RegisteredParticipants *int             `json:"registered_participants"`
	GoogleMapsURL          *string          `json:"google_maps_url"`
	GoogleDriveURL         *string          `json:"google_drive_url"`
}

// EventResponse is the wire representation of an event.
type EventResponse struct {
	ID                     int64            `json:"id"`
	Name                   string           `json:"name"`
	Date                   string           `json:"date"`
	Categories             []string         `json:"categories"`
	Location               string           `json:"location"`
	StartPointURL          string           `json:"start_point_url"`
	StartTime              string           `json:"start_time"`
	Fee                    *decimal.Decimal `json:"fee,omitempty"`
	RegistrationDeadline   *string          `json:"registration_deadline,omitempty"`
	RegisteredParticipants int              `json:"registered_participants"`
	GoogleMapsURL          *string          `json:"google_maps_url,omitempty"`
	GoogleDriveURL         *string          `json:"google_drive_url,omitempty"`
	Deleted                bool             `json:"deleted"`
	CreatedAt              string           `json:"created_at"`
	UpdatedAt              string           `json:"updated_at"`
}

// ToEventResponse converts a domain event to its wire representation.
func ToEventResponse(event *domain.Event) EventResponse {
	resp := EventResponse{
		ID:                     event.EventID,
		Name:                   event.Name,
		Date:                   event.Date.Format(DateLayout),
		Categories:             event.Categories,
		Location:               event.Location,
		StartPointURL:          event.StartPointURL,
		StartTime:              event.StartTime,
		Fee:                    event.Fee,
		RegisteredParticipants: event.RegisteredParticipants,
		GoogleMapsURL:          event.GoogleMapsURL,
		GoogleDriveURL:         event.GoogleDriveURL,
		Deleted:                event.Deleted,
		CreatedAt:              event.CreatedAt.Format(TimestampLayout),
		UpdatedAt:              event.UpdatedAt.Format(TimestampLayout),
	}
	if event.RegistrationDeadline != nil {
		deadline := event.RegistrationDeadline.Format(DateLayout)
		resp.RegistrationDeadline = &deadline
	}
	return resp
}

// ToEventResponseList converts a slice of domain events.
func ToEventResponseList(events []domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses
}
