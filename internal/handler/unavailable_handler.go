package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

// NotConfigured returns a handler that rejects every request with 503.
// It stands in for the analysis endpoints when the server starts without
// a YouTube API key, keeping health and metrics routes serviceable.
func NotConfigured(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Status:    http.StatusServiceUnavailable,
			Error:     "Service Unavailable",
			Message:   message,
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}
