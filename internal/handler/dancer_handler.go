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

type dancerService interface {
	List(ctx context.Context, query, level string) ([]models.Dancer, error)
	Get(ctx context.Context, id string) (*models.Dancer, error)
	Create(ctx context.Context, req service.CreateDancerRequest) (*models.Dancer, error)
	Schedule(ctx context.Context, dancerID string) (*models.DancerSchedule, error)
}

// DancerHandler exposes the roster endpoints.
type DancerHandler struct {
	service dancerService
}

// NewDancerHandler builds a new handler.
func NewDancerHandler(service dancerService) *DancerHandler {
	return &DancerHandler{service: service}
}

// List godoc
// @Summary List dancers
// @Tags Dancers
// @Produce json
// @Param q query string false "Name substring filter"
// @Param level query string false "Level filter"
// @Success 200 {object} response.Envelope
// @Router /dancers [get]
func (h *DancerHandler) List(c *gin.Context) {
	dancers, err := h.service.List(c.Request.Context(), c.Query("q"), c.Query("level"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dancers, nil)
}

// Get godoc
// @Summary Get a dancer
// @Tags Dancers
// @Produce json
// @Param id path string true "Dancer ID"
// @Success 200 {object} response.Envelope
// @Router /dancers/{id} [get]
func (h *DancerHandler) Get(c *gin.Context) {
	dancer, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dancer, nil)
}

// Create godoc
// @Summary Add a dancer to the roster
// @Tags Dancers
// @Accept json
// @Produce json
// @Param payload body service.CreateDancerRequest true "Dancer payload"
// @Success 201 {object} response.Envelope
// @Router /dancers [post]
func (h *DancerHandler) Create(c *gin.Context) {
	var req service.CreateDancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid dancer payload"))
		return
	}
	dancer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dancer)
}

// Schedule godoc
// @Summary Get a dancer's weekly schedule
// @Tags Dancers
// @Produce json
// @Param id path string true "Dancer ID"
// @Success 200 {object} response.Envelope
// @Router /dancers/{id}/schedule [get]
func (h *DancerHandler) Schedule(c *gin.Context) {
	schedule, err := h.service.Schedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}
