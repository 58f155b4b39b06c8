package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/analyzer"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/service"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/service/quota"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/validation"
	"github.com/trendscope/youtube-viral-analyzer-go/pkg/logger"
)

// AnalysisHandler handles analysis-related HTTP requests.
type AnalysisHandler struct {
	service   service.AnalysisService
	validator *validation.Validator
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(analysisService service.AnalysisService, validator *validation.Validator) *AnalysisHandler {
	return &AnalysisHandler{
		service:   analysisService,
		validator: validator,
	}
}

// Analyze runs a search-and-score analysis.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalysisRequestDTO

	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	search, err := h.validator.ValidateSearch(req.Query, req.MaxResults, req.Order,
		req.PublishedAfter, req.PublishedBefore, req.VideoDuration, req.RegionCode)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	logger.Log.Info("Received analysis request",
		zap.String("query", search.Query),
		zap.Int("maxResults", search.MaxResults),
		zap.String("order", search.Order),
	)

	report, err := h.service.AnalyzeSearch(c.Request.Context(), search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// PredictPotential runs an early-growth prediction for one video.
func (h *AnalysisHandler) PredictPotential(c *gin.Context) {
	var req models.PotentialRequestDTO

	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.validator.ValidatePotential(req.VideoID, req.HoursSinceUpload); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	logger.Log.Info("Received potential prediction request",
		zap.String("videoId", req.VideoID),
		zap.Float64("hoursSinceUpload", req.HoursSinceUpload),
	)

	prediction, err := h.service.PredictPotential(c.Request.Context(), req.VideoID, req.HoursSinceUpload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// Keywords runs a keyword-only analysis from query parameters.
func (h *AnalysisHandler) Keywords(c *gin.Context) {
	query := c.Query("q")

	maxResults := 0
	if raw := c.Query("maxResults"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(c, "maxResults must be an integer")
			return
		}
		maxResults = parsed
	}

	search, err := h.validator.ValidateSearch(query, maxResults, c.Query("order"),
		c.Query("publishedAfter"), c.Query("publishedBefore"), c.Query("videoDuration"), c.Query("regionCode"))
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	result, err := h.service.AnalyzeKeywords(c.Request.Context(), search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalysisHandler) badRequest(c *gin.Context, message string) {
	logger.Log.Warn("Invalid request",
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

func (h *AnalysisHandler) handleError(c *gin.Context, err error) {
	var (
		exhausted *quota.ErrExhausted
		upstream  *service.UpstreamError
	)

	switch {
	case errors.As(err, &exhausted):
		logger.Log.Warn("Quota exhausted",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Status:    http.StatusTooManyRequests,
			Error:     "Too Many Requests",
			Message:   err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	case errors.Is(err, service.ErrVideoNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:    http.StatusNotFound,
			Error:     "Not Found",
			Message:   err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	case errors.Is(err, analyzer.ErrInsufficientData), errors.Is(err, analyzer.ErrInvalidTimestamp):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Status:    http.StatusUnprocessableEntity,
			Error:     "Unprocessable Entity",
			Message:   err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	case errors.As(err, &upstream):
		logger.Log.Error("Upstream API error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Status:    http.StatusBadGateway,
			Error:     "Bad Gateway",
			Message:   "YouTube Data API request failed",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	default:
		logger.Log.Error("Unexpected error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:    http.StatusInternalServerError,
			Error:     "Internal Server Error",
			Message:   "An unexpected error occurred",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}
