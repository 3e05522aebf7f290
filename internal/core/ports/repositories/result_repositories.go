package repositories

import (
	"context"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
)

// ResultReader defines read operations for result data.
type ResultReader interface {
	// FindResultByID retrieves a specific active result by its ID.
	FindResultByID(ctx context.Context, resultID int64) (*domain.Result, error)

	// FindResultsByEventGrouped retrieves the active results for an event,
	// newest-created first, partitioned by category. Group order follows the
	// first occurrence of each category in the fetch.
	FindResultsByEventGrouped(ctx context.Context, eventID int64) ([]domain.CategoryResults, error)
}

// ResultWriter defines write operations for result data.
type ResultWriter interface {
	// SaveResult persists a new result and fills in the store-assigned ID and
	// timestamps on the returned entity.
	SaveResult(ctx context.Context, result domain.Result) (*domain.Result, error)

	// ReplaceResultsForEvent soft-deletes the event's active results and
	// inserts the replacement set in order, all within one transaction.
	ReplaceResultsForEvent(ctx context.Context, eventID int64, results []domain.Result) error
}

// ResultLifecycleManager defines operations for managing result lifecycle.
type ResultLifecycleManager interface {
	// MarkResultDeleted soft-deletes a result. Same identity semantics as
	// EventLifecycleManager.MarkEventDeleted.
	MarkResultDeleted(ctx context.Context, resultID int64) error

	// MarkAllResultsDeletedForEvent soft-deletes every active result tied to
	// the event in a single statement. Matching zero rows is not an error.
	MarkAllResultsDeletedForEvent(ctx context.Context, eventID int64) error
}

// ResultRepositoryFacade combines all result-related repository interfaces.
type ResultRepositoryFacade interface {
	ResultReader
	ResultWriter
	ResultLifecycleManager
}
