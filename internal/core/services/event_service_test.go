package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/core/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) FindActiveEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) FindLatestEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	args := m.Called(ctx, limit)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	args := m.Called(ctx, event)
	var saved *domain.Event
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Event)
	}
	return saved, args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	args := m.Called(ctx, event)
	var updated *domain.Event
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Event)
	}
	return updated, args.Error(1)
}

func (m *MockEventRepository) MarkEventDeleted(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Test Suite ---
type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo *MockEventRepository
	service       portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.service = services.NewEventService(suite.mockEventRepo)
}

func validCreateEventRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Name:          "Nocna Wiosenna",
		Date:          "2025-05-17",
		Categories:    []string{"TP", "TU", "TT"},
		Location:      "Puszcza Kampinoska",
		StartPointURL: "https://maps.example.com/start",
		StartTime:     "21:30",
	}
}

// --- CreateEvent Tests ---
func (suite *EventServiceTestSuite) TestCreateEvent_Success() {
	ctx := context.Background()
	req := validCreateEventRequest()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.Name == req.Name &&
			event.Date.Format(dto.DateLayout) == req.Date &&
			len(event.Categories) == 3 &&
			event.StartTime == req.StartTime
	})).Return(&domain.Event{EventID: 1, Name: req.Name}, nil).Once()

	created, err := suite.service.CreateEvent(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(1), created.EventID)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_BlankName() {
	ctx := context.Background()
	req := validCreateEventRequest()
	req.Name = "   "

	created, err := suite.service.CreateEvent(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_BadDateFormat() {
	ctx := context.Background()
	req := validCreateEventRequest()
	req.Date = "17/05/2025"

	created, err := suite.service.CreateEvent(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EventServiceTestSuite) TestCreateEvent_BadDeadlineFormat() {
	ctx := context.Background()
	req := validCreateEventRequest()
	badDeadline := "soon"
	req.RegistrationDeadline = &badDeadline

	created, err := suite.service.CreateEvent(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EventServiceTestSuite) TestCreateEvent_SaveError() {
	ctx := context.Background()
	req := validCreateEventRequest()
	expectedErr := assert.AnError

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil, expectedErr).Once()

	created, err := suite.service.CreateEvent(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- UpdateEvent Tests ---
func (suite *EventServiceTestSuite) TestUpdateEvent_Success() {
	ctx := context.Background()
	eventID := int64(42)
	req := validCreateEventRequest()

	suite.mockEventRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.EventID == eventID && event.Name == req.Name
	})).Return(&domain.Event{EventID: eventID, Name: req.Name}, nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(eventID, updated.EventID)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEvent_NotFound() {
	ctx := context.Background()
	eventID := int64(999)
	req := validCreateEventRequest()

	suite.mockEventRepo.On("UpdateEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- DeleteEvent Tests ---
func (suite *EventServiceTestSuite) TestDeleteEvent_Success() {
	ctx := context.Background()
	eventID := int64(7)

	suite.mockEventRepo.On("MarkEventDeleted", ctx, eventID).Return(nil).Once()

	err := suite.service.DeleteEvent(ctx, eventID)

	suite.Require().NoError(err)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestDeleteEvent_NotFound() {
	ctx := context.Background()
	eventID := int64(7)

	suite.mockEventRepo.On("MarkEventDeleted", ctx, eventID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEvent(ctx, eventID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- ListEvents Tests ---
func (suite *EventServiceTestSuite) TestListEvents_Success() {
	ctx := context.Background()
	expectedEvents := []domain.Event{{EventID: 1}, {EventID: 2}}

	suite.mockEventRepo.On("FindActiveEvents", ctx).Return(expectedEvents, nil).Once()

	events, err := suite.service.ListEvents(ctx)

	suite.Require().NoError(err)
	suite.Len(events, 2)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockEventRepo.On("FindActiveEvents", ctx).Return(nil, expectedErr).Once()

	events, err := suite.service.ListEvents(ctx)

	suite.Require().Error(err)
	suite.Nil(events)
	suite.ErrorIs(err, expectedErr)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- ListLatestEvents Tests ---
func (suite *EventServiceTestSuite) TestListLatestEvents_DefaultLimit() {
	ctx := context.Background()
	expectedEvents := []domain.Event{{EventID: 3}, {EventID: 2}, {EventID: 1}}

	// Non-positive limit falls back to 3.
	suite.mockEventRepo.On("FindLatestEvents", ctx, 3).Return(expectedEvents, nil).Once()

	events, err := suite.service.ListLatestEvents(ctx, 0)

	suite.Require().NoError(err)
	suite.Len(events, 3)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListLatestEvents_ExplicitLimit() {
	ctx := context.Background()

	suite.mockEventRepo.On("FindLatestEvents", ctx, 10).Return([]domain.Event{}, nil).Once()

	events, err := suite.service.ListLatestEvents(ctx, 10)

	suite.Require().NoError(err)
	suite.Empty(events)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- GetEventByID Tests ---
func (suite *EventServiceTestSuite) TestGetEventByID_Success() {
	ctx := context.Background()
	expectedEvent := &domain.Event{EventID: 5, Name: "Rajd Jesienny", Date: time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)}

	suite.mockEventRepo.On("FindEventByID", ctx, int64(5)).Return(expectedEvent, nil).Once()

	event, err := suite.service.GetEventByID(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(expectedEvent, event)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestGetEventByID_NotFound() {
	ctx := context.Background()

	suite.mockEventRepo.On("FindEventByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	event, err := suite.service.GetEventByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
