package handlers

import (
	"net/http"

	"github.com/devimpact/impactboard/internal/repositories"
	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	snapshotRepo *repositories.SnapshotRepository
}

func NewHomeHandler(snapshotRepo *repositories.SnapshotRepository) *HomeHandler {
	return &HomeHandler{
		snapshotRepo: snapshotRepo,
	}
}

// Index handles GET / and lists the available endpoints
func (h *HomeHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Engineering Impact Dashboard API",
		"repo":       h.snapshotRepo.Repo(),
		"fetched_at": h.snapshotRepo.FetchedAt(),
		"endpoints": []string{
			"/api/top-engineers",
			"/api/all-engineers",
			"/api/trends",
			"/api/methodology",
			"/api/export",
			"/health",
		},
	})
}
