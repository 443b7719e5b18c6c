package handlers

import (
	"net/http"
	"strconv"

	"github.com/devimpact/impactboard/internal/services"
	"github.com/gin-gonic/gin"
)

// maxTopEngineers caps the limit query parameter; the ranking engine
// itself does not enforce an upper bound
const maxTopEngineers = 20

type EngineersHandler struct {
	rankingService *services.RankingService
}

func NewEngineersHandler(rankingService *services.RankingService) *EngineersHandler {
	return &EngineersHandler{
		rankingService: rankingService,
	}
}

// TopEngineers handles GET /api/top-engineers?limit=N
func (h *EngineersHandler) TopEngineers(c *gin.Context) {
	limit := 5
	if value := c.Query("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxTopEngineers {
		limit = maxTopEngineers
	}

	c.JSON(http.StatusOK, h.rankingService.GetTopEngineers(limit))
}

// AllEngineers handles GET /api/all-engineers
func (h *EngineersHandler) AllEngineers(c *gin.Context) {
	c.JSON(http.StatusOK, h.rankingService.GetAllEngineers())
}
