package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

func TestNotConfigured(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/analysis", nil)

	NotConfigured("YouTube API key is not configured")(c)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, http.StatusServiceUnavailable, body.Status)
	assert.Equal(t, "YouTube API key is not configured", body.Message)
	assert.Equal(t, "/api/v1/analysis", body.Path)
}
