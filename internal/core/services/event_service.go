package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

// defaultLatestEventsLimit caps the landing-page event list.
const defaultLatestEventsLimit = 3

type eventService struct {
	eventRepo portsrepo.EventRepositoryFacade
}

// NewEventService creates the event use-case service.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo}
}

// eventFromRequest parses the wire payload into a domain event. Date strings
// are the only place the service owns format validation; everything else is
// covered by binding tags.
func eventFromRequest(req dto.CreateEventRequest) (domain.Event, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}

	event := domain.Event{
		Name:           req.Name,
		Date:           date,
		Categories:     req.Categories,
		Location:       req.Location,
		StartPointURL:  req.StartPointURL,
		StartTime:      req.StartTime,
		Fee:            req.Fee,
		GoogleMapsURL:  req.GoogleMapsURL,
		GoogleDriveURL: req.GoogleDriveURL,
	}
	if req.RegistrationDeadline != nil {
		deadline, err := time.Parse(dto.DateLayout, *req.RegistrationDeadline)
		if err != nil {
			return domain.Event{}, fmt.Errorf("%w: invalid registration deadline %q, expected YYYY-MM-DD", apperrors.ErrValidation, *req.RegistrationDeadline)
		}
		event.RegistrationDeadline = &deadline
	}
	if req.RegisteredParticipants != nil {
		event.RegisteredParticipants = *req.RegisteredParticipants
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: event name is required", apperrors.ErrValidation)
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.eventRepo.SaveEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event in service: %w", err)
	}
	return created, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID int64, req dto.CreateEventRequest) (*domain.Event, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: event name is required", apperrors.ErrValidation)
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.EventID = eventID

	updated, err := s.eventRepo.UpdateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID int64) error {
	return s.eventRepo.MarkEventDeleted(ctx, eventID)
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.FindActiveEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events in service: %w", err)
	}
	return events, nil
}

func (s *eventService) ListLatestEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultLatestEventsLimit
	}
	events, err := s.eventRepo.FindLatestEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest events in service: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return event, nil
}
