package repositories

import (
	"context"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// EventReader defines read operations for event data. All reads exclude
// soft-deleted rows.
type EventReader interface {
	// FindEventByID retrieves a specific active event by its ID.
	FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error)

	// FindActiveEvents retrieves all active events sorted by date ascending.
	FindActiveEvents(ctx context.Context) ([]domain.Event, error)

	// FindLatestEvents retrieves the newest active events by date descending,
	// truncated to limit.
	FindLatestEvents(ctx context.Context, limit int) ([]domain.Event, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	// SaveEvent persists a new event and fills in the store-assigned ID and
	// timestamps on the returned entity.
	SaveEvent(ctx context.Context, event domain.Event) (*domain.Event, error)

	// UpdateEvent updates an existing event's mutable fields.
	UpdateEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
}

// EventLifecycleManager defines operations for managing event lifecycle.
type EventLifecycleManager interface {
	// MarkEventDeleted soft-deletes an event. Deletion is on identity: it
	// succeeds whenever the row exists, regardless of its current deleted
	// state, and returns apperrors.ErrNotFound otherwise.
	MarkEventDeleted(ctx context.Context, eventID int64) error
}

// EventRepositoryFacade combines all event-related repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
	EventLifecycleManager
}
