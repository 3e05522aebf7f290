package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
	"github.com/lesnaszkolka/ino-backend/internal/middleware"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers all event-related routes. Listings are
// public; writes need an authenticated user and deletion needs admin.
func registerEventRoutes(r *gin.Engine, eventService portssvc.EventSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newEventHandler(eventService)
	authRequired := middleware.RequireAuth(authService)

	events := r.Group("/events")
	{
		events.GET("", h.listLatestEvents)
		events.GET("/all", h.listAllEvents)
		events.POST("", authRequired, h.createEvent)
		events.PUT("/:id", authRequired, h.updateEvent)
		events.DELETE("/:id", authRequired, middleware.RequireAdmin(), h.deleteEvent)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// createEvent godoc
// @Summary Create a new event
// @Description Creates a new orienteering event.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Event validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		}
		return
	}

	logger.Info("Event created", slog.Int64("event_id", created.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(created))
}

// updateEvent godoc
// @Summary Update an event
// @Description Replaces an event's mutable fields.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Event not found for update", slog.Int64("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Event validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	logger.Info("Event updated", slog.Int64("event_id", eventID))
	c.JSON(http.StatusOK, dto.ToEventResponse(updated))
}

// listLatestEvents godoc
// @Summary Latest events
// @Description Lists the 3 newest active events by date descending.
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 500 {object} map[string]string
// @Router /events [get]
func (h *eventHandler) listLatestEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.eventService.ListLatestEvents(c.Request.Context(), 0)
	if err != nil {
		logger.Error("Failed to list latest events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponseList(events))
}

// listAllEvents godoc
// @Summary All active events
// @Description Lists all active events sorted by date ascending.
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 500 {object} map[string]string
// @Router /events/all [get]
func (h *eventHandler) listAllEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponseList(events))
}

// deleteEvent godoc
// @Summary Delete an event
// @Description Soft-deletes an event. Admin only.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for deletion", slog.Int64("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to delete event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	logger.Info("Event deleted", slog.Int64("event_id", eventID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Event %d has been deleted", eventID)})
}
