package handler

import (
	"net/http"

	"hotel-rooms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService *service.HealthService
}

func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Health reports the last store checks, running one if none has happened
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.healthService.Report()
	if report.CheckedAt.IsZero() {
		report = h.healthService.Check(c.Request.Context())
	}

	code := http.StatusOK
	status := "healthy"
	if !report.Healthy {
		code = http.StatusServiceUnavailable
		status = "degraded"
	}
	c.JSON(code, gin.H{
		"status":  status,
		"service": "hotel-rooms-backend",
		"report":  report,
	})
}
