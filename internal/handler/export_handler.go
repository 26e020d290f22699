package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michel-adelino/schedule/internal/service"
	"github.com/michel-adelino/schedule/pkg/response"
)

type exportService interface {
	RenderSchedule(ctx context.Context, format string) (*service.ExportResult, error)
	RenderDancerSchedule(ctx context.Context, dancerID, format string) (*service.ExportResult, error)
}

// ExportHandler serves schedule documents as downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Schedule godoc
// @Summary Export the full weekly schedule
// @Tags Export
// @Produce octet-stream
// @Param format query string false "csv, pdf or text (default text)"
// @Success 200 {file} binary
// @Router /export/schedule [get]
func (h *ExportHandler) Schedule(c *gin.Context) {
	result, err := h.service.RenderSchedule(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, result)
}

// DancerSchedule godoc
// @Summary Export one dancer's weekly schedule
// @Tags Export
// @Produce octet-stream
// @Param id path string true "Dancer ID"
// @Param format query string false "csv, pdf or text (default text)"
// @Success 200 {file} binary
// @Router /export/dancers/{id} [get]
func (h *ExportHandler) DancerSchedule(c *gin.Context) {
	result, err := h.service.RenderDancerSchedule(c.Request.Context(), c.Param("id"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, result)
}

func serveDownload(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
