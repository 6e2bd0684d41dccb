// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	advisorChecker  func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Advisor   string `json:"advisor"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// Either checker may be nil.
func NewHealthController(dbHealthChecker, advisorChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		advisorChecker:  advisorChecker,
	}
}

// Check handles GET /health requests.
// Status stays "ok" when the advisor is unavailable.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	advisorStatus := "fallback"
	if h.advisorChecker != nil && h.advisorChecker() {
		advisorStatus = "available"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Advisor:   advisorStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
