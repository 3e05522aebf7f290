package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

type resultService struct {
	resultRepo portsrepo.ResultRepositoryFacade
}

// NewResultService creates the result use-case service.
func NewResultService(resultRepo portsrepo.ResultRepositoryFacade) portssvc.ResultSvcFacade {
	return &resultService{resultRepo: resultRepo}
}

func (s *resultService) AddResult(ctx context.Context, req dto.CreateResultRequest) (*domain.Result, error) {
	if req.PenaltyPoints < 0 {
		return nil, fmt.Errorf("%w: penalty points cannot be negative", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Team) == "" {
		return nil, fmt.Errorf("%w: team name is required", apperrors.ErrValidation)
	}

	result := domain.Result{
		EventID:       req.EventID,
		Category:      req.Category,
		Team:          req.Team,
		PenaltyPoints: req.PenaltyPoints,
	}
	created, err := s.resultRepo.SaveResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to add result in service: %w", err)
	}
	return created, nil
}

func (s *resultService) DeleteResult(ctx context.Context, resultID int64) error {
	return s.resultRepo.MarkResultDeleted(ctx, resultID)
}

func (s *resultService) GetResultByID(ctx context.Context, resultID int64) (*domain.Result, error) {
	result, err := s.resultRepo.FindResultByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *resultService) ListResultsByEvent(ctx context.Context, eventID int64) ([]domain.CategoryResults, error) {
	groups, err := s.resultRepo.FindResultsByEventGrouped(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results in service: %w", err)
	}
	return groups, nil
}

func (s *resultService) DeleteAllResultsForEvent(ctx context.Context, eventID int64) error {
	return s.resultRepo.MarkAllResultsDeletedForEvent(ctx, eventID)
}

// ReplaceResultsForEvent swaps the event's current results for the posted set
// in payload order. Entries with blank team names are skipped rather than
// rejected so sparse result sheets can be posted as-is. The swap runs in a
// single transaction so a rejected entry never leaves the sheet half replaced.
func (s *resultService) ReplaceResultsForEvent(ctx context.Context, eventID int64, req dto.ReplaceResultsRequest) error {
	replacements := make([]domain.Result, 0)
	for _, group := range req.Groups {
		for _, entry := range group.Entries {
			if strings.TrimSpace(entry.Team) == "" {
				continue
			}
			if entry.PenaltyPoints < 0 {
				return fmt.Errorf("%w: penalty points cannot be negative", apperrors.ErrValidation)
			}
			replacements = append(replacements, domain.Result{
				EventID:       eventID,
				Category:      group.Category,
				Team:          entry.Team,
				PenaltyPoints: entry.PenaltyPoints,
			})
		}
	}

	if err := s.resultRepo.ReplaceResultsForEvent(ctx, eventID, replacements); err != nil {
		return fmt.Errorf("failed to replace results in service: %w", err)
	}
	return nil
}
