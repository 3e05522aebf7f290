package services

import (
	"context"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

// ResultReaderSvc defines read operations for results.
type ResultReaderSvc interface {
	// GetResultByID retrieves an active result by ID.
	GetResultByID(ctx context.Context, resultID int64) (*domain.Result, error)

	// ListResultsByEvent retrieves the active results for an event grouped by
	// category, newest-created first within each group.
	ListResultsByEvent(ctx context.Context, eventID int64) ([]domain.CategoryResults, error)
}

// ResultWriterSvc defines write operations for results.
type ResultWriterSvc interface {
	// AddResult validates and persists a new result.
	AddResult(ctx context.Context, req dto.CreateResultRequest) (*domain.Result, error)

	// ReplaceResultsForEvent soft-deletes every result for the event and
	// persists the given replacement set, skipping entries with blank team
	// names.
	ReplaceResultsForEvent(ctx context.Context, eventID int64, req dto.ReplaceResultsRequest) error
}

// ResultLifecycleSvc defines operations for managing result lifecycle.
type ResultLifecycleSvc interface {
	// DeleteResult soft-deletes a result by identity.
	DeleteResult(ctx context.Context, resultID int64) error

	// DeleteAllResultsForEvent soft-deletes every active result for the event.
	// Zero matching rows is still a success.
	DeleteAllResultsForEvent(ctx context.Context, eventID int64) error
}

// ResultSvcFacade combines all result-related service interfaces.
type ResultSvcFacade interface {
	ResultReaderSvc
	ResultWriterSvc
	ResultLifecycleSvc
}
