package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	"github.com/lesnaszkolka/ino-backend/internal/models"
)

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(db *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

// toModelEvent encodes the domain event into its row form. The categories
// list becomes JSON text here and nowhere else.
func toModelEvent(d domain.Event) (models.Event, error) {
	categories, err := json.Marshal(d.Categories)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to encode event categories: %w", err)
	}
	return models.Event{
		EventID:                d.EventID,
		Name:                   d.Name,
		Date:                   d.Date,
		Categories:             string(categories),
		Location:               d.Location,
		StartPointURL:          d.StartPointURL,
		StartTime:              d.StartTime,
		Fee:                    d.Fee,
		RegistrationDeadline:   d.RegistrationDeadline,
		RegisteredParticipants: d.RegisteredParticipants,
		GoogleMapsURL:          d.GoogleMapsURL,
		GoogleDriveURL:         d.GoogleDriveURL,
		Deleted:                d.Deleted,
	}, nil
}

func toDomainEvent(m models.Event) (domain.Event, error) {
	var categories []string
	if err := json.Unmarshal([]byte(m.Categories), &categories); err != nil {
		return domain.Event{}, fmt.Errorf("failed to decode categories for event %d: %w", m.EventID, err)
	}
	return domain.Event{
		EventID:                m.EventID,
		Name:                   m.Name,
		Date:                   m.Date,
		Categories:             categories,
		Location:               m.Location,
		StartPointURL:          m.StartPointURL,
		StartTime:              m.StartTime,
		Fee:                    m.Fee,
		RegistrationDeadline:   m.RegistrationDeadline,
		RegisteredParticipants: m.RegisteredParticipants,
		GoogleMapsURL:          m.GoogleMapsURL,
		GoogleDriveURL:         m.GoogleDriveURL,
		Deleted:                m.Deleted,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}, nil
}

const eventColumns = `id, name, date, categories, location, start_point_url, start_time, fee,
		registration_deadline, registered_participants, google_maps_url, google_drive_url,
		deleted, created_at, updated_at`

func scanEventRow(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Name,
		&m.Date,
		&m.Categories,
		&m.Location,
		&m.StartPointURL,
		&m.StartTime,
		&m.Fee,
		&m.RegistrationDeadline,
		&m.RegisteredParticipants,
		&m.GoogleMapsURL,
		&m.GoogleDriveURL,
		&m.Deleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	modelEvent, err := toModelEvent(event)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO events (name, date, categories, location, start_point_url, start_time, fee,
            registration_deadline, registered_participants, google_maps_url, google_drive_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + eventColumns + `;
    `
	saved, err := scanEventRow(r.Pool.QueryRow(ctx, query,
		modelEvent.Name,
		modelEvent.Date,
		modelEvent.Categories,
		modelEvent.Location,
		modelEvent.StartPointURL,
		modelEvent.StartTime,
		modelEvent.Fee,
		modelEvent.RegistrationDeadline,
		modelEvent.RegisteredParticipants,
		modelEvent.GoogleMapsURL,
		modelEvent.GoogleDriveURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	domainEvent, err := toDomainEvent(saved)
	if err != nil {
		return nil, err
	}
	return &domainEvent, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	modelEvent, err := toModelEvent(event)
	if err != nil {
		return nil, err
	}
	query := `
        UPDATE events
        SET name = $1, date = $2, categories = $3, location = $4, start_point_url = $5,
            start_time = $6, fee = $7, registration_deadline = $8, registered_participants = $9,
            google_maps_url = $10, google_drive_url = $11, updated_at = now()
        WHERE id = $12 AND deleted = FALSE
        RETURNING ` + eventColumns + `;
    `
	updated, err := scanEventRow(r.Pool.QueryRow(ctx, query,
		modelEvent.Name,
		modelEvent.Date,
		modelEvent.Categories,
		modelEvent.Location,
		modelEvent.StartPointURL,
		modelEvent.StartTime,
		modelEvent.Fee,
		modelEvent.RegistrationDeadline,
		modelEvent.RegisteredParticipants,
		modelEvent.GoogleMapsURL,
		modelEvent.GoogleDriveURL,
		modelEvent.EventID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event %d: %w", event.EventID, err)
	}

	domainEvent, err := toDomainEvent(updated)
	if err != nil {
		return nil, err
	}
	return &domainEvent, nil
}

// MarkEventDeleted soft-deletes on identity: the row may already be marked
// deleted and the update still succeeds.
func (r *PgxEventRepository) MarkEventDeleted(ctx context.Context, eventID int64) error {
	query := `
        UPDATE events
        SET deleted = TRUE, updated_at = now()
        WHERE id = $1;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to mark event %d as deleted: %w", eventID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE id = $1 AND deleted = FALSE;
    `
	modelEvent, err := scanEventRow(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %d: %w", eventID, err)
	}

	domainEvent, err := toDomainEvent(modelEvent)
	if err != nil {
		return nil, err
	}
	return &domainEvent, nil
}

func (r *PgxEventRepository) FindActiveEvents(ctx context.Context) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE deleted = FALSE
        ORDER BY date ASC;
    `
	return r.queryEvents(ctx, query)
}

func (r *PgxEventRepository) FindLatestEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE deleted = FALSE
        ORDER BY date DESC
        LIMIT $1;
    `
	return r.queryEvents(ctx, query, limit)
}

func (r *PgxEventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		modelEvent, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		domainEvent, err := toDomainEvent(modelEvent)
		if err != nil {
			return nil, err
		}
		events = append(events, domainEvent)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}

	return events, nil
}
