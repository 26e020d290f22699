package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/service"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
	"github.com/michel-adelino/schedule/pkg/response"
)

type roomService interface {
	List(ctx context.Context) ([]models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	SetVisible(ctx context.Context, req service.SetVisibleRoomsRequest) ([]models.Room, error)
	Grid(ctx context.Context) (*service.GridInfo, error)
}

// RoomHandler exposes studio room and board geometry endpoints.
type RoomHandler struct {
	service roomService
}

// NewRoomHandler builds a new handler.
func NewRoomHandler(service roomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List godoc
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// Get godoc
// @Summary Get a room
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Envelope
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// SetVisible godoc
// @Summary Set how many rooms are visible on the board
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body service.SetVisibleRoomsRequest true "Visibility payload"
// @Success 200 {object} response.Envelope
// @Router /rooms/visible [put]
func (h *RoomHandler) SetVisible(c *gin.Context) {
	var req service.SetVisibleRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid room config payload"))
		return
	}
	rooms, err := h.service.SetVisible(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// Grid godoc
// @Summary Get board geometry
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /grid [get]
func (h *RoomHandler) Grid(c *gin.Context) {
	grid, err := h.service.Grid(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, nil)
}
