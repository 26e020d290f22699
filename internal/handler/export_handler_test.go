package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michel-adelino/schedule/internal/service"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

type exportServiceMock struct {
	scheduleResp *service.ExportResult
	scheduleErr  error
	dancerResp   *service.ExportResult
	dancerErr    error
	lastFormat   string
	lastDancerID string
}

func (m *exportServiceMock) RenderSchedule(ctx context.Context, format string) (*service.ExportResult, error) {
	m.lastFormat = format
	return m.scheduleResp, m.scheduleErr
}

func (m *exportServiceMock) RenderDancerSchedule(ctx context.Context, dancerID, format string) (*service.ExportResult, error) {
	m.lastDancerID = dancerID
	m.lastFormat = format
	return m.dancerResp, m.dancerErr
}

func TestExportHandlerSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		scheduleResp: &service.ExportResult{
			ContentType: "text/csv",
			Filename:    "schedule.csv",
			Data:        []byte("Day,Start\n"),
		},
	}
	handler := NewExportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/export/schedule?format=csv", nil)
	c.Request = req

	handler.Schedule(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.lastFormat)
	assert.Equal(t, `attachment; filename="schedule.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "Day,Start\n", w.Body.String())
}

func TestExportHandlerDancerSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		dancerResp: &service.ExportResult{
			ContentType: "text/plain; charset=utf-8",
			Filename:    "dancer-schedule.txt",
			Data:        []byte("Alice - Schedule\n"),
		},
	}
	handler := NewExportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/export/dancers/dancer-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "dancer-1"}}

	handler.DancerSchedule(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dancer-1", mockSvc.lastDancerID)
	assert.Equal(t, "", mockSvc.lastFormat)
}

func TestExportHandlerUnsupportedFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		scheduleErr: appErrors.Clone(appErrors.ErrValidation, "unsupported export format"),
	}
	handler := NewExportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/export/schedule?format=xlsx", nil)
	c.Request = req

	handler.Schedule(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
