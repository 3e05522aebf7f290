package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	"github.com/lesnaszkolka/ino-backend/internal/models"
)

type PgxResultRepository struct {
	BaseRepository
}

func newPgxResultRepository(db *pgxpool.Pool) portsrepo.ResultRepositoryFacade {
	return &PgxResultRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxResultRepository implements portsrepo.ResultRepositoryFacade
var _ portsrepo.ResultRepositoryFacade = (*PgxResultRepository)(nil)

func toDomainResult(m models.Result) domain.Result {
	return domain.Result{
		ResultID:      m.ResultID,
		EventID:       m.EventID,
		Category:      m.Category,
		Team:          m.Team,
		PenaltyPoints: m.PenaltyPoints,
		Deleted:       m.Deleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

const resultColumns = `id, event_id, category, team, penalty_points, deleted, created_at, updated_at`

func scanResultRow(row pgx.Row) (models.Result, error) {
	var m models.Result
	err := row.Scan(
		&m.ResultID,
		&m.EventID,
		&m.Category,
		&m.Team,
		&m.PenaltyPoints,
		&m.Deleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxResultRepository) SaveResult(ctx context.Context, result domain.Result) (*domain.Result, error) {
	query := `
        INSERT INTO results (event_id, category, team, penalty_points)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + resultColumns + `;
    `
	saved, err := scanResultRow(r.Pool.QueryRow(ctx, query,
		result.EventID,
		result.Category,
		result.Team,
		result.PenaltyPoints,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	domainResult := toDomainResult(saved)
	return &domainResult, nil
}

// MarkResultDeleted soft-deletes on identity, matching the event semantics.
func (r *PgxResultRepository) MarkResultDeleted(ctx context.Context, resultID int64) error {
	query := `
        UPDATE results
        SET deleted = TRUE, updated_at = now()
        WHERE id = $1;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, resultID)
	if err != nil {
		return fmt.Errorf("failed to mark result %d as deleted: %w", resultID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllResultsDeletedForEvent runs as a single statement so a replace-all
// never leaves a partially deleted group behind. Zero affected rows is fine;
// a bulk delete has no not-found concept.
func (r *PgxResultRepository) MarkAllResultsDeletedForEvent(ctx context.Context, eventID int64) error {
	query := `
        UPDATE results
        SET deleted = TRUE, updated_at = now()
        WHERE event_id = $1 AND deleted = FALSE;
    `
	if _, err := r.Pool.Exec(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to mark results deleted for event %d: %w", eventID, err)
	}
	return nil
}

// ReplaceResultsForEvent swaps out the event's active results inside a single
// transaction so a failed insert never leaves a half replaced sheet behind.
func (r *PgxResultRepository) ReplaceResultsForEvent(ctx context.Context, eventID int64, results []domain.Result) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	deleteQuery := `
        UPDATE results
        SET deleted = TRUE, updated_at = now()
        WHERE event_id = $1 AND deleted = FALSE;
    `
	if _, err := tx.Exec(ctx, deleteQuery, eventID); err != nil {
		return fmt.Errorf("failed to clear results for event %d: %w", eventID, err)
	}

	insertQuery := `
        INSERT INTO results (event_id, category, team, penalty_points)
        VALUES ($1, $2, $3, $4);
    `
	batch := &pgx.Batch{}
	for _, result := range results {
		batch.Queue(insertQuery, eventID, result.Category, result.Team, result.PenaltyPoints)
	}
	br := tx.SendBatch(ctx, batch)
	for range results {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert replacement result for event %d: %w", eventID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close replacement batch for event %d: %w", eventID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxResultRepository) FindResultByID(ctx context.Context, resultID int64) (*domain.Result, error) {
	query := `
        SELECT ` + resultColumns + `
        FROM results
        WHERE id = $1 AND deleted = FALSE;
    `
	modelResult, err := scanResultRow(r.Pool.QueryRow(ctx, query, resultID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find result by ID %d: %w", resultID, err)
	}

	domainResult := toDomainResult(modelResult)
	return &domainResult, nil
}

// FindResultsByEventGrouped fetches the event's active results newest first
// and partitions them by category. Group order is the first occurrence of
// each category in the fetch; within a group the fetch order is kept.
func (r *PgxResultRepository) FindResultsByEventGrouped(ctx context.Context, eventID int64) ([]domain.CategoryResults, error) {
	query := `
        SELECT ` + resultColumns + `
        FROM results
        WHERE event_id = $1 AND deleted = FALSE
        ORDER BY created_at DESC, id DESC;
    `
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for event %d: %w", eventID, err)
	}
	defer rows.Close()

	groups := []domain.CategoryResults{}
	indexByCategory := map[string]int{}
	for rows.Next() {
		modelResult, err := scanResultRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		domainResult := toDomainResult(modelResult)

		idx, seen := indexByCategory[domainResult.Category]
		if !seen {
			idx = len(groups)
			indexByCategory[domainResult.Category] = idx
			groups = append(groups, domain.CategoryResults{Category: domainResult.Category})
		}
		groups[idx].Results = append(groups[idx].Results, domainResult)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", rows.Err())
	}

	return groups, nil
}
