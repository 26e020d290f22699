package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/service"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
	"github.com/michel-adelino/schedule/pkg/response"
)

type scheduleService interface {
	List(ctx context.Context, filter models.SessionFilter) ([]models.ScheduledRoutine, error)
	Place(ctx context.Context, req service.PlaceSessionRequest) (*service.PlacementResult, error)
	Move(ctx context.Context, id string, req service.MoveSessionRequest) (*service.PlacementResult, error)
	Remove(ctx context.Context, id string) error
	Check(ctx context.Context, req service.CheckPlacementRequest) (*service.PlacementResult, error)
	BoardConflicts(ctx context.Context) ([]models.Conflict, error)
}

// ScheduleHandler exposes the weekly board endpoints.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// List godoc
// @Summary List scheduled sessions
// @Tags Sessions
// @Produce json
// @Param day query int false "Day index (0=Sunday)"
// @Param roomId query string false "Room ID filter"
// @Param dancerId query string false "Dancer ID filter"
// @Success 200 {object} response.Envelope
// @Router /sessions [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	filter := models.SessionFilter{
		RoomID:   c.Query("roomId"),
		DancerID: c.Query("dancerId"),
	}
	if raw := c.Query("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 0 || day > 6 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "day must be an integer between 0 and 6"))
			return
		}
		filter.Day = &day
	}
	sessions, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Place godoc
// @Summary Place a routine on the board
// @Description The session is created even when conflicts are detected; the
// @Description conflict list in the response is advisory.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.PlaceSessionRequest true "Placement payload"
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *ScheduleHandler) Place(c *gin.Context) {
	var req service.PlaceSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid placement payload"))
		return
	}
	result, err := h.service.Place(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Move godoc
// @Summary Move a session to another room or slot
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body service.MoveSessionRequest true "Move payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [put]
func (h *ScheduleHandler) Move(c *gin.Context) {
	var req service.MoveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid move payload"))
		return
	}
	result, err := h.service.Move(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Remove godoc
// @Summary Remove a session from the board
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *ScheduleHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Check godoc
// @Summary Evaluate a hypothetical placement
// @Description Returns the conflicts the placement would cause without
// @Description touching the board. Used for drag-over highlighting.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.CheckPlacementRequest true "Placement probe"
// @Success 200 {object} response.Envelope
// @Router /sessions/check [post]
func (h *ScheduleHandler) Check(c *gin.Context) {
	var req service.CheckPlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid placement payload"))
		return
	}
	result, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Conflicts godoc
// @Summary List all conflicts on the board
// @Tags Sessions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /conflicts [get]
func (h *ScheduleHandler) Conflicts(c *gin.Context) {
	conflicts, err := h.service.BoardConflicts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if conflicts == nil {
		conflicts = []models.Conflict{}
	}
	response.JSON(c, http.StatusOK, conflicts, nil)
}
