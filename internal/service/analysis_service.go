package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/analyzer"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/keywords"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/metrics"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/service/quota"
	ytclient "github.com/trendscope/youtube-viral-analyzer-go/internal/service/youtube"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/validation"
	"github.com/trendscope/youtube-viral-analyzer-go/pkg/logger"
)

// ErrVideoNotFound is returned when the Data API has no record of a
// requested video ID.
var ErrVideoNotFound = errors.New("video not found")

// UpstreamError wraps a Data API failure so handlers can map it separately
// from local errors.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("upstream error: %v", e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

// VideoSource provides search and hydration against the Data API.
type VideoSource interface {
	SearchVideoIDs(ctx context.Context, req *validation.SearchRequest) ([]string, int, error)
	VideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoRecord, int, error)
}

// ChannelSource provides channel statistics for the performance bonus.
type ChannelSource interface {
	ChannelInfo(ctx context.Context, channelID string) (*models.ChannelRecord, int, error)
}

// AnalysisService runs the full search, score and aggregate pipeline.
type AnalysisService interface {
	// AnalyzeSearch runs a search and scores every returned video.
	// Individual videos that cannot be scored are skipped, not fatal.
	AnalyzeSearch(ctx context.Context, req *validation.SearchRequest) (*models.AnalysisReport, error)

	// AnalyzeKeywords runs a search and aggregates keyword signals only.
	AnalyzeKeywords(ctx context.Context, req *validation.SearchRequest) (*models.KeywordAnalysisResult, error)

	// PredictPotential extrapolates early growth for one video. A zero
	// hoursSinceUpload is derived from the publish timestamp.
	PredictPotential(ctx context.Context, videoID string, hoursSinceUpload float64) (*models.PotentialPrediction, error)

	// SetChannelSource sets the channel source for performance bonuses (optional)
	SetChannelSource(channels ChannelSource)

	// SetMetrics sets the Prometheus collectors (optional)
	SetMetrics(m *metrics.Metrics)
}

type analysisService struct {
	videos     VideoSource
	channels   ChannelSource // Optional - enables the channel bonus
	scorer     *analyzer.Scorer
	aggregator *keywords.Aggregator
	quota      *quota.Manager
	metrics    *metrics.Metrics // Optional
	now        func() time.Time
}

// NewAnalysisService creates an AnalysisService with the given collaborators.
func NewAnalysisService(videos VideoSource, scorer *analyzer.Scorer, aggregator *keywords.Aggregator, quotaManager *quota.Manager) AnalysisService {
	return &analysisService{
		videos:     videos,
		channels:   nil, // Will be set via SetChannelSource if available
		scorer:     scorer,
		aggregator: aggregator,
		quota:      quotaManager,
		now:        time.Now,
	}
}

// SetChannelSource sets the channel source for performance bonuses (optional)
func (s *analysisService) SetChannelSource(channels ChannelSource) {
	s.channels = channels
}

// SetMetrics sets the Prometheus collectors (optional)
func (s *analysisService) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *analysisService) AnalyzeSearch(ctx context.Context, req *validation.SearchRequest) (*models.AnalysisReport, error) {
	started := s.now()

	records, err := s.fetchVideos(ctx, req)
	if err != nil {
		s.countAnalysis("error")
		return nil, err
	}

	report := &models.AnalysisReport{
		ReportID:    uuid.New(),
		Query:       req.Query,
		Videos:      make([]models.ScoredVideo, 0, len(records)),
		GeneratedAt: s.now().UTC(),
	}

	// Channel stats are fetched at most once per channel per run.
	channelCache := make(map[string]*models.ChannelRecord)

	for i := range records {
		video := &records[i]

		analysis, err := s.scorer.Score(video, s.channelFor(ctx, video.ChannelID, channelCache))
		if err != nil {
			// One bad record never fails the batch.
			report.Skipped++
			if logger.Log != nil {
				logger.Log.Warn("Skipping video",
					zap.String("video_id", video.VideoID),
					zap.Error(err))
			}
			continue
		}

		report.Videos = append(report.Videos, models.ScoredVideo{Video: video, Analysis: analysis})
		if s.metrics != nil {
			s.metrics.VideosAnalyzed.Inc()
		}
	}

	report.Keywords = s.aggregator.AnalyzeBatch(records)
	report.Trends = analyzer.SummarizeTrends(records)

	s.countAnalysis("success")
	if s.metrics != nil {
		s.metrics.AnalysisDuration.Observe(s.now().Sub(started).Seconds())
	}

	return report, nil
}

func (s *analysisService) AnalyzeKeywords(ctx context.Context, req *validation.SearchRequest) (*models.KeywordAnalysisResult, error) {
	records, err := s.fetchVideos(ctx, req)
	if err != nil {
		s.countAnalysis("error")
		return nil, err
	}

	s.countAnalysis("success")
	return s.aggregator.AnalyzeBatch(records), nil
}

func (s *analysisService) PredictPotential(ctx context.Context, videoID string, hoursSinceUpload float64) (*models.PotentialPrediction, error) {
	if err := s.quota.Reserve(ytclient.ListQuotaCost); err != nil {
		return nil, err
	}

	records, cost, err := s.videos.VideoDetails(ctx, []string{videoID})
	s.recordQuota(cost-ytclient.ListQuotaCost, "videos.list")
	if err != nil {
		s.quota.Release(ytclient.ListQuotaCost)
		return nil, &UpstreamError{Err: err}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	video := &records[0]
	if hoursSinceUpload == 0 {
		if video.PublishedAt.IsZero() {
			return nil, fmt.Errorf("video %s: %w", videoID, analyzer.ErrInvalidTimestamp)
		}
		hoursSinceUpload = s.now().UTC().Sub(video.PublishedAt).Hours()
	}

	return s.scorer.PredictPotential(video, hoursSinceUpload)
}

// fetchVideos runs the search and hydrates the results, charging quota as
// it goes. The search reservation is an admission check; actual costs are
// recorded from what the client reports.
func (s *analysisService) fetchVideos(ctx context.Context, req *validation.SearchRequest) ([]models.VideoRecord, error) {
	if err := s.quota.Reserve(ytclient.SearchQuotaCost); err != nil {
		return nil, err
	}

	ids, searchCost, err := s.videos.SearchVideoIDs(ctx, req)
	s.recordQuota(searchCost-ytclient.SearchQuotaCost, "search.list")
	if err != nil {
		s.quota.Release(ytclient.SearchQuotaCost)
		return nil, &UpstreamError{Err: err}
	}

	records, listCost, err := s.videos.VideoDetails(ctx, ids)
	s.recordQuota(listCost, "videos.list")
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	return records, nil
}

// channelFor returns cached channel stats, fetching them on first sight.
// Any lookup failure degrades to scoring without the channel bonus.
func (s *analysisService) channelFor(ctx context.Context, channelID string, cache map[string]*models.ChannelRecord) *models.ChannelRecord {
	if s.channels == nil || channelID == "" {
		return nil
	}
	if record, ok := cache[channelID]; ok {
		return record
	}

	record, cost, err := s.channels.ChannelInfo(ctx, channelID)
	s.recordQuota(cost, "channels.list")
	if err != nil {
		if logger.Log != nil {
			logger.Log.Warn("Channel lookup failed, scoring without channel context",
				zap.String("channel_id", channelID),
				zap.Error(err))
		}
		record = nil
	}

	cache[channelID] = record
	return record
}

func (s *analysisService) countAnalysis(status string) {
	if s.metrics != nil {
		s.metrics.Analyses.WithLabelValues(status).Inc()
	}
}

func (s *analysisService) recordQuota(cost int, operation string) {
	if cost <= 0 {
		return
	}
	s.quota.Record(cost, operation)
	if s.metrics != nil {
		s.metrics.QuotaUsed.Add(float64(cost))
	}
}
