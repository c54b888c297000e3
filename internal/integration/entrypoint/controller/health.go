// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness of the API and its storage backend.
type HealthController struct {
	dbHealthy func() bool
	started   time.Time
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// NewHealthController creates a health controller backed by the given
// database liveness probe.
func NewHealthController(dbHealthy func() bool) *HealthController {
	return &HealthController{
		dbHealthy: dbHealthy,
		started:   time.Now().UTC(),
	}
}

// Check handles GET /health.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthy != nil && h.dbHealthy() {
		dbStatus = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Database: dbStatus,
		Uptime:   time.Since(h.started).Round(time.Second).String(),
	})
}
