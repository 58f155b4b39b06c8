package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/analyzer"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/config"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/handler"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/keywords"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/metrics"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/middleware"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/service"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/service/quota"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/service/youtube"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/validation"
	"github.com/trendscope/youtube-viral-analyzer-go/pkg/logger"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	quotaManager := quota.NewManager(cfg.YouTube.QuotaDailyLimit, cfg.YouTube.QuotaThresholdPct)
	healthHandler := handler.NewHealthHandler(quotaManager)

	// Without an API key the server still starts so health and metrics
	// stay reachable; analysis endpoints answer 503 until a key is set.
	var analysisHandler *handler.AnalysisHandler
	if cfg.YouTube.APIKey == "" {
		logger.Log.Warn("YouTube API key not configured, analysis endpoints return 503 (APP_YOUTUBE_APIKEY)")
	} else {
		youtubeClient, err := youtube.NewClient(context.Background(), cfg.YouTube.APIKey)
		if err != nil {
			logger.Log.Fatal("Failed to initialize YouTube API client", zap.Error(err))
		}

		scorer := analyzer.NewScorer(cfg.Viral)
		extractor := keywords.NewExtractor(cfg.Keywords)
		aggregator := keywords.NewAggregator(extractor, cfg.Keywords)

		analysisService := service.NewAnalysisService(youtubeClient, scorer, aggregator, quotaManager)
		analysisService.SetChannelSource(youtubeClient)
		analysisService.SetMetrics(metrics.New(prometheus.DefaultRegisterer))

		validator := validation.New(cfg.YouTube.MaxResults, cfg.YouTube.RegionCode)
		analysisHandler = handler.NewAnalysisHandler(analysisService, validator)
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health/live", healthHandler.LivenessProbe)
	router.GET("/health/ready", healthHandler.ReadinessProbe)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	if len(cfg.Server.APIKeys) > 0 {
		api.Use(middleware.NewAPIKeyAuth(cfg.Server.APIKeys).Middleware())
	} else {
		logger.Log.Warn("No API keys configured, analysis endpoints are open (APP_SERVER_APIKEYS)")
	}

	if analysisHandler != nil {
		api.POST("/analysis", analysisHandler.Analyze)
		api.POST("/analysis/potential", analysisHandler.PredictPotential)
		api.GET("/keywords", analysisHandler.Keywords)
	} else {
		unavailable := handler.NotConfigured("YouTube API key is not configured")
		api.POST("/analysis", unavailable)
		api.POST("/analysis/potential", unavailable)
		api.GET("/keywords", unavailable)
	}
	api.GET("/quota", healthHandler.QuotaStatus)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // analysis runs fan out several API calls
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("region", cfg.YouTube.RegionCode),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Log.Fatal("Server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Log.Error("Failed to close server", zap.Error(err))
			}
			os.Exit(1)
		}

		logger.Log.Info("Server stopped gracefully")
	}
}
