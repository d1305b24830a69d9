package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the health and info endpoints.
const APIVersion = "1.0.0"

// HealthHandler answers liveness and API info requests.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports service liveness.
// @Summary     Health check
// @Description Report API liveness with a timestamp
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "Health status"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   APIVersion,
	})
}

// Info reports the API name and version at the API root.
// @Summary     API info
// @Description Report API name, version and status
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "API info"
// @Router      / [get]
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "PrivFin API",
		"version": APIVersion,
		"status":  "running",
	})
}
