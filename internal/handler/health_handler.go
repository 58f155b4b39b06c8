// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/service/quota"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	quota *quota.Manager
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(quotaManager *quota.Manager) *HealthHandler {
	return &HealthHandler{
		quota: quotaManager,
	}
}

// LivenessProbe checks if the application is running.
func (h *HealthHandler) LivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"time":   time.Now(),
	})
}

// ReadinessProbe checks if the application can serve analysis traffic.
// Exhausted quota means every analysis would fail with 429, so the
// instance reports itself unready until the UTC reset.
func (h *HealthHandler) ReadinessProbe(c *gin.Context) {
	if h.quota.Exhausted() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"quota":  "exhausted",
			"time":   time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"quota":  h.quota.Snapshot(),
		"time":   time.Now(),
	})
}

// QuotaStatus reports today's Data API quota consumption.
func (h *HealthHandler) QuotaStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.quota.Snapshot())
}
