package handlers

import (
	"net/http"
	"strconv"

	"github.com/devimpact/impactboard/internal/services"
	"github.com/gin-gonic/gin"
)

// maxTrendEngineers caps the number of columns in the trend chart
const maxTrendEngineers = 10

type TrendsHandler struct {
	rankingService *services.RankingService
	trendService   *services.TrendService
}

func NewTrendsHandler(rankingService *services.RankingService, trendService *services.TrendService) *TrendsHandler {
	return &TrendsHandler{
		rankingService: rankingService,
		trendService:   trendService,
	}
}

// Trends handles GET /api/trends?top=N
func (h *TrendsHandler) Trends(c *gin.Context) {
	top := 5
	if value := c.Query("top"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			top = parsed
		}
	}
	if top > maxTrendEngineers {
		top = maxTrendEngineers
	}

	topEngineers := h.rankingService.GetTopEngineers(top)
	c.JSON(http.StatusOK, h.trendService.GetWeeklyTrends(topEngineers))
}
