package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
	"github.com/lesnaszkolka/ino-backend/internal/middleware"
)

// resultHandler handles HTTP requests related to results.
type resultHandler struct {
	resultService portssvc.ResultSvcFacade
}

func newResultHandler(rs portssvc.ResultSvcFacade) *resultHandler {
	return &resultHandler{resultService: rs}
}

// registerResultRoutes registers all result-related routes. Reading grouped
// results is public; writes need an authenticated user and deletion needs
// admin.
func registerResultRoutes(r *gin.Engine, resultService portssvc.ResultSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newResultHandler(resultService)
	authRequired := middleware.RequireAuth(authService)

	results := r.Group("/results")
	{
		results.POST("", authRequired, h.createResult)
		results.GET("/:eventID", h.listResultsByEvent)
		results.PUT("/:eventID", authRequired, h.replaceResultsForEvent)
		results.DELETE("/:id", authRequired, middleware.RequireAdmin(), h.deleteResult)
	}
}

// createResult godoc
// @Summary Add a result
// @Description Adds a single team result to an event category.
// @Tags results
// @Accept json
// @Produce json
// @Param result body dto.CreateResultRequest true "Result details"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /results [post]
func (h *resultHandler) createResult(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create result", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.resultService.AddResult(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Result validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add result", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add result"})
		}
		return
	}

	logger.Info("Result added", slog.Int64("result_id", created.ResultID), slog.Int64("event_id", created.EventID))
	c.JSON(http.StatusCreated, dto.ToResultResponse(created))
}

// listResultsByEvent godoc
// @Summary Results for an event
// @Description Lists the event's active results grouped by category, newest first within each group.
// @Tags results
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} map[string][]dto.ResultResponse
// @Failure 400 {object} map[string]string
// @Router /results/{eventID} [get]
func (h *resultHandler) listResultsByEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	eventID, err := parseIDParam(c, "eventID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	groups, err := h.resultService.ListResultsByEvent(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("Failed to list results", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list results"})
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupedResultsResponse(groups))
}

// replaceResultsForEvent godoc
// @Summary Replace an event's results
// @Description Soft-deletes all current results of the event and stores the posted set. Entries with blank team names are skipped.
// @Tags results
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param results body map[string][]dto.ReplaceResultEntry true "Results grouped by category"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /results/{eventID} [put]
func (h *resultHandler) replaceResultsForEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	eventID, err := parseIDParam(c, "eventID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req dto.ReplaceResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for replace results", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.resultService.ReplaceResultsForEvent(c.Request.Context(), eventID, req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Replace results validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to replace results", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace results"})
		}
		return
	}

	logger.Info("Results replaced", slog.Int64("event_id", eventID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Results for event %d have been updated", eventID)})
}

// deleteResult godoc
// @Summary Delete a result
// @Description Soft-deletes a result. Admin only.
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Result not found"
// @Security BearerAuth
// @Router /results/{id} [delete]
func (h *resultHandler) deleteResult(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resultID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	if err := h.resultService.DeleteResult(c.Request.Context(), resultID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Result not found for deletion", slog.Int64("result_id", resultID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		} else {
			logger.Error("Failed to delete result", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete result"})
		}
		return
	}

	logger.Info("Result deleted", slog.Int64("result_id", resultID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Result %d has been deleted", resultID)})
}
