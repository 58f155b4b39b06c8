// Package analyzer implements the viral scoring formulas and batch trend
// aggregation for video metadata.
package analyzer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/config"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

// Sentinel errors returned by the scorer.
var (
	// ErrInvalidTimestamp indicates a publish date that could not be
	// normalized to UTC. It is propagated, never defaulted.
	ErrInvalidTimestamp = errors.New("invalid published timestamp")

	// ErrInsufficientData indicates a prediction requested with less than
	// one hour of upload history.
	ErrInsufficientData = errors.New("insufficient data for prediction")
)

// maxSubScore is the point allocation each of the four sub-scores ramps to.
const maxSubScore = 25.0

// Early-growth prediction bands.
const (
	predictedEngagementHigh = 1000.0
	predictedEngagementMid  = 500.0
	earlyGrowthWindowHours  = 6.0
	earlyGrowthViewsPerHour = 1000.0
)

// Scorer converts raw per-video metrics into a bounded 0-100 viral score.
// It is a pure function of its inputs plus the injected clock, so calls are
// safe to run in parallel across videos.
type Scorer struct {
	cfg config.ViralConfig
	now func() time.Time
}

// NewScorer creates a Scorer with the given thresholds. Zero thresholds are
// replaced with the operational defaults.
func NewScorer(cfg config.ViralConfig) *Scorer {
	if cfg.ViewsPerDayThreshold <= 0 {
		cfg.ViewsPerDayThreshold = 10000
	}
	if cfg.LikeRatioThreshold <= 0 {
		cfg.LikeRatioThreshold = 0.02
	}
	if cfg.CommentRatioThreshold <= 0 {
		cfg.CommentRatioThreshold = 0.001
	}
	if cfg.EngagementThreshold <= 0 {
		cfg.EngagementThreshold = 50
	}
	if cfg.ExpectedViewShare <= 0 {
		cfg.ExpectedViewShare = 0.1
	}
	if cfg.BonusSlope <= 0 {
		cfg.BonusSlope = 5
	}
	if cfg.BonusCap <= 0 {
		cfg.BonusCap = 20
	}
	if cfg.ViralCutoff <= 0 {
		cfg.ViralCutoff = 70
	}

	return &Scorer{
		cfg: cfg,
		now: time.Now,
	}
}

// SetClock injects a deterministic clock (used by tests).
func (s *Scorer) SetClock(now func() time.Time) {
	s.now = now
}

// Score computes the composite viral score for one video. The channel record
// is optional; without it the channel performance ratio defaults to 1.0 and
// no bonus applies.
func (s *Scorer) Score(video *models.VideoRecord, channel *models.ChannelRecord) (*models.ViralAnalysis, error) {
	if video.PublishedAt.IsZero() {
		return nil, fmt.Errorf("video %s: %w", video.VideoID, ErrInvalidTimestamp)
	}

	// A video published today counts as one day old, never zero: this
	// guards the division and avoids overstating early velocity.
	days := int(s.now().UTC().Sub(video.PublishedAt.UTC()).Hours() / 24)
	if days < 1 {
		days = 1
	}

	viewsPerDay := float64(video.ViewCount) / float64(days)

	viewDenom := math.Max(float64(video.ViewCount), 1)
	likeRatio := float64(video.LikeCount) / viewDenom
	commentRatio := float64(video.CommentCount) / viewDenom

	// Comments are weighted five times a like: commenting signals much
	// stronger intent. Normalized per 10,000 views.
	engagement := (float64(video.LikeCount) + float64(video.CommentCount)*5) / viewDenom * 10000

	components := models.ScoreComponents{
		ViewsPerDayScore:  subScore(viewsPerDay, s.cfg.ViewsPerDayThreshold),
		LikeRatioScore:    subScore(likeRatio, s.cfg.LikeRatioThreshold),
		CommentRatioScore: subScore(commentRatio, s.cfg.CommentRatioThreshold),
		EngagementScore:   subScore(engagement, s.cfg.EngagementThreshold),
	}

	viralScore := components.ViewsPerDayScore + components.LikeRatioScore +
		components.CommentRatioScore + components.EngagementScore

	channelRatio := 1.0
	if channel != nil && channel.SubscriberCount > 0 {
		expectedViews := float64(channel.SubscriberCount) * s.cfg.ExpectedViewShare
		channelRatio = float64(video.ViewCount) / math.Max(expectedViews, 1)
	}

	// Bonus only when the video clearly outperforms its channel baseline.
	if channelRatio > 2 {
		viralScore += math.Min(s.cfg.BonusCap, (channelRatio-1)*s.cfg.BonusSlope)
	}

	viralScore = math.Min(100, viralScore)

	return &models.ViralAnalysis{
		ViralScore:              round2(viralScore),
		Components:              components,
		ViewsPerDay:             round2(viewsPerDay),
		LikeRatio:               round4(likeRatio * 100),
		CommentRatio:            round4(commentRatio * 100),
		EngagementScore:         round2(engagement),
		ChannelPerformanceRatio: round2(channelRatio),
		DaysSincePublished:      days,
		IsViral:                 viralScore >= s.cfg.ViralCutoff,
	}, nil
}

// subScore ramps linearly to the threshold and caps at the full allocation.
// Overshooting the threshold is never penalized.
func subScore(raw, threshold float64) float64 {
	return math.Min(raw/threshold*maxSubScore, maxSubScore)
}

// Insights derives human-readable observations from a scoring result.
func (s *Scorer) Insights(analysis *models.ViralAnalysis) []string {
	var insights []string

	if analysis.IsViral {
		insights = append(insights, "This video qualifies as viral.")
	} else {
		insights = append(insights, "This video is performing at a typical level.")
	}

	switch {
	case analysis.ViewsPerDay > s.cfg.ViewsPerDayThreshold:
		insights = append(insights, fmt.Sprintf("Daily views are very high at %.0f per day.", analysis.ViewsPerDay))
	case analysis.ViewsPerDay > s.cfg.ViewsPerDayThreshold*0.5:
		insights = append(insights, fmt.Sprintf("Daily views are solid at %.0f per day.", analysis.ViewsPerDay))
	default:
		insights = append(insights, fmt.Sprintf("Daily views are low at %.0f per day; reach needs improvement.", analysis.ViewsPerDay))
	}

	if analysis.LikeRatio > s.cfg.LikeRatioThreshold*100 {
		insights = append(insights, fmt.Sprintf("Like ratio of %.2f%% shows strong audience approval.", analysis.LikeRatio))
	}
	if analysis.CommentRatio > s.cfg.CommentRatioThreshold*100 {
		insights = append(insights, fmt.Sprintf("Comment ratio of %.2f%% shows active discussion.", analysis.CommentRatio))
	}

	switch {
	case analysis.ChannelPerformanceRatio > 2:
		insights = append(insights, fmt.Sprintf("Performing %.1fx above the channel baseline.", analysis.ChannelPerformanceRatio))
	case analysis.ChannelPerformanceRatio < 0.5:
		insights = append(insights, "Performing below the channel baseline; a stronger title or thumbnail may help.")
	}

	return insights
}

// PredictPotential extrapolates per-hour growth to a projected 24-hour total
// and maps it to a 0-100 potential score with a recommendation.
func (s *Scorer) PredictPotential(video *models.VideoRecord, hoursSinceUpload float64) (*models.PotentialPrediction, error) {
	if hoursSinceUpload < 1 {
		return nil, fmt.Errorf("%.1f hours since upload: %w", hoursSinceUpload, ErrInsufficientData)
	}

	viewsPerHour := float64(video.ViewCount) / hoursSinceUpload
	likesPerHour := float64(video.LikeCount) / hoursSinceUpload
	commentsPerHour := float64(video.CommentCount) / hoursSinceUpload

	predictedViews := viewsPerHour * 24
	predictedEngagement := (likesPerHour + commentsPerHour*5) * 24

	score := 0

	switch {
	case predictedViews > s.cfg.ViewsPerDayThreshold:
		score += 40
	case predictedViews > s.cfg.ViewsPerDayThreshold*0.5:
		score += 20
	}

	switch {
	case predictedEngagement > predictedEngagementHigh:
		score += 30
	case predictedEngagement > predictedEngagementMid:
		score += 15
	}

	// Early-growth bonus for videos that take off within hours of upload.
	if hoursSinceUpload <= earlyGrowthWindowHours && viewsPerHour > earlyGrowthViewsPerHour {
		score += 30
	}

	if score > 100 {
		score = 100
	}

	return &models.PotentialPrediction{
		PotentialScore:         score,
		Predicted24hViews:      int64(math.Round(predictedViews)),
		Predicted24hEngagement: int64(math.Round(predictedEngagement)),
		CurrentGrowthRate:      round2(viewsPerHour),
		Recommendation:         recommendation(score),
	}, nil
}

// recommendation maps a potential score band to a fixed advisory string.
func recommendation(score int) string {
	switch {
	case score >= 80:
		return "Very high viral potential. Consider additional promotion."
	case score >= 60:
		return "Strong growth. Increase social sharing to keep momentum."
	case score >= 40:
		return "Average trajectory. Consider optimizing the title or thumbnail."
	default:
		return "Slow growth. The content strategy may need a review."
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
