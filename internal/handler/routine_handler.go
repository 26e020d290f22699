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

type routineService interface {
	List(ctx context.Context, filter models.RoutineFilter) ([]models.Routine, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Routine, error)
	Create(ctx context.Context, req service.CreateRoutineRequest) (*models.Routine, error)
	Update(ctx context.Context, id string, req service.UpdateRoutineRequest) (*models.Routine, error)
	Delete(ctx context.Context, id string) error
	Teachers(ctx context.Context) ([]models.Teacher, error)
	Genres(ctx context.Context) ([]models.Genre, error)
}

// RoutineHandler exposes the routine catalog endpoints.
type RoutineHandler struct {
	service routineService
}

// NewRoutineHandler builds a new handler.
func NewRoutineHandler(service routineService) *RoutineHandler {
	return &RoutineHandler{service: service}
}

// List godoc
// @Summary List routines
// @Tags Routines
// @Produce json
// @Param q query string false "Search by song title, teacher or dancer name"
// @Param teacherId query string false "Teacher ID filter"
// @Param genreId query string false "Genre ID filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /routines [get]
func (h *RoutineHandler) List(c *gin.Context) {
	filter := models.RoutineFilter{
		Query:     c.Query("q"),
		TeacherID: c.Query("teacherId"),
		GenreID:   c.Query("genreId"),
		Page:      queryInt(c, "page"),
		PageSize:  queryInt(c, "pageSize"),
	}
	routines, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routines, pagination)
}

// Get godoc
// @Summary Get a routine
// @Tags Routines
// @Produce json
// @Param id path string true "Routine ID"
// @Success 200 {object} response.Envelope
// @Router /routines/{id} [get]
func (h *RoutineHandler) Get(c *gin.Context) {
	routine, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routine, nil)
}

// Create godoc
// @Summary Create a routine
// @Tags Routines
// @Accept json
// @Produce json
// @Param payload body service.CreateRoutineRequest true "Routine payload"
// @Success 201 {object} response.Envelope
// @Router /routines [post]
func (h *RoutineHandler) Create(c *gin.Context) {
	var req service.CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid routine payload"))
		return
	}
	routine, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, routine)
}

// Update godoc
// @Summary Update a routine
// @Tags Routines
// @Accept json
// @Produce json
// @Param id path string true "Routine ID"
// @Param payload body service.UpdateRoutineRequest true "Routine payload"
// @Success 200 {object} response.Envelope
// @Router /routines/{id} [put]
func (h *RoutineHandler) Update(c *gin.Context) {
	var req service.UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid routine payload"))
		return
	}
	routine, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, routine, nil)
}

// Delete godoc
// @Summary Delete a routine and its placed sessions
// @Tags Routines
// @Param id path string true "Routine ID"
// @Success 204
// @Router /routines/{id} [delete]
func (h *RoutineHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Teachers godoc
// @Summary List teachers
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *RoutineHandler) Teachers(c *gin.Context) {
	teachers, err := h.service.Teachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers, nil)
}

// Genres godoc
// @Summary List genres
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /genres [get]
func (h *RoutineHandler) Genres(c *gin.Context) {
	genres, err := h.service.Genres(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, genres, nil)
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
