package services

import (
	"context"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

// EventReaderSvc defines read operations for events.
type EventReaderSvc interface {
	// GetEventByID retrieves an active event by ID.
	GetEventByID(ctx context.Context, eventID int64) (*domain.Event, error)

	// ListEvents retrieves all active events sorted by date ascending.
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// ListLatestEvents retrieves the newest active events by date descending.
	// A non-positive limit falls back to the default of 3.
	ListLatestEvents(ctx context.Context, limit int) ([]domain.Event, error)
}

// EventWriterSvc defines write operations for events.
type EventWriterSvc interface {
	// CreateEvent validates and persists a new event.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)

	// UpdateEvent replaces an existing event's mutable fields, preserving its ID.
	UpdateEvent(ctx context.Context, eventID int64, req dto.CreateEventRequest) (*domain.Event, error)
}

// EventLifecycleSvc defines operations for managing event lifecycle.
type EventLifecycleSvc interface {
	// DeleteEvent soft-deletes an event by identity.
	DeleteEvent(ctx context.Context, eventID int64) error
}

// EventSvcFacade combines all event-related service interfaces.
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
	EventLifecycleSvc
}
