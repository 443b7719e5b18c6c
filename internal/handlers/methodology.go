package handlers

import (
	"net/http"

	"github.com/devimpact/impactboard/internal/services"
	"github.com/gin-gonic/gin"
)

type MethodologyHandler struct {
	methodologyService *services.MethodologyService
}

func NewMethodologyHandler(methodologyService *services.MethodologyService) *MethodologyHandler {
	return &MethodologyHandler{
		methodologyService: methodologyService,
	}
}

// Methodology handles GET /api/methodology
func (h *MethodologyHandler) Methodology(c *gin.Context) {
	c.JSON(http.StatusOK, h.methodologyService.GetMethodology())
}
