package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/devimpact/impactboard/internal/services"
	"github.com/devimpact/impactboard/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// Export handles GET /api/export and streams the ranking as an xlsx file
func (h *ExportHandler) Export(c *gin.Context) {
	file, err := h.exportService.ExportRanking()
	if err != nil {
		logger.WithError(err).Error("Failed to build ranking export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("impact-ranking-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to stream ranking export")
	}
}
