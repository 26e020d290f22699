package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/service"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

type routineServiceMock struct {
	listResp   []models.Routine
	listPage   *models.Pagination
	listErr    error
	getResp    *models.Routine
	getErr     error
	createResp *models.Routine
	createErr  error
	updateResp *models.Routine
	updateErr  error
	deleteErr  error
	teachers   []models.Teacher
	genres     []models.Genre

	lastFilter   models.RoutineFilter
	createCalled bool
}

func (m *routineServiceMock) List(ctx context.Context, filter models.RoutineFilter) ([]models.Routine, *models.Pagination, error) {
	m.lastFilter = filter
	return m.listResp, m.listPage, m.listErr
}

func (m *routineServiceMock) Get(ctx context.Context, id string) (*models.Routine, error) {
	return m.getResp, m.getErr
}

func (m *routineServiceMock) Create(ctx context.Context, req service.CreateRoutineRequest) (*models.Routine, error) {
	m.createCalled = true
	return m.createResp, m.createErr
}

func (m *routineServiceMock) Update(ctx context.Context, id string, req service.UpdateRoutineRequest) (*models.Routine, error) {
	return m.updateResp, m.updateErr
}

func (m *routineServiceMock) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *routineServiceMock) Teachers(ctx context.Context) ([]models.Teacher, error) {
	return m.teachers, nil
}

func (m *routineServiceMock) Genres(ctx context.Context) ([]models.Genre, error) {
	return m.genres, nil
}

func TestRoutineHandlerListFilterParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &routineServiceMock{
		listResp: []models.Routine{{ID: "routine-1", SongTitle: "Thunder"}},
		listPage: &models.Pagination{Page: 2, PageSize: 10, TotalCount: 11},
	}
	handler := NewRoutineHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/routines?q=thun&teacherId=teacher-1&page=2&pageSize=10", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "thun", mockSvc.lastFilter.Query)
	assert.Equal(t, "teacher-1", mockSvc.lastFilter.TeacherID)
	assert.Equal(t, 2, mockSvc.lastFilter.Page)
	assert.Equal(t, 10, mockSvc.lastFilter.PageSize)
	assert.Contains(t, w.Body.String(), `"total_count":11`)
}

func TestRoutineHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &routineServiceMock{
		createResp: &models.Routine{ID: "routine-1", SongTitle: "Thunder"},
	}
	handler := NewRoutineHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateRoutineRequest{
		SongTitle: "Thunder", TeacherID: "teacher-1", GenreID: "genre-1", Duration: 60,
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/routines", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.createCalled)
}

func TestRoutineHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &routineServiceMock{}
	handler := NewRoutineHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/routines", bytes.NewBufferString(`{"song_title":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.createCalled)
}

func TestRoutineHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &routineServiceMock{
		getErr: appErrors.Clone(appErrors.ErrNotFound, "routine not found"),
	}
	handler := NewRoutineHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/routines/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "routine not found")
}

func TestRoutineHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRoutineHandler(&routineServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/routines/routine-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "routine-1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
}
