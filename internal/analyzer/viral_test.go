package analyzer

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/config"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func defaultScorer(now time.Time) *Scorer {
	s := NewScorer(config.ViralConfig{})
	s.SetClock(fixedClock(now))
	return s
}

func TestScoreMaxedOutVideo(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := defaultScorer(now)

	video := &models.VideoRecord{
		VideoID:      "dQw4w9WgXcQ",
		ViewCount:    1_000_000,
		LikeCount:    50_000,
		CommentCount: 10_000,
		PublishedAt:  now.Add(-24 * time.Hour),
	}

	analysis, err := s.Score(video, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if analysis.ViralScore != 100 {
		t.Errorf("ViralScore = %v, want 100", analysis.ViralScore)
	}
	if !analysis.IsViral {
		t.Error("IsViral = false, want true")
	}
	if analysis.DaysSincePublished != 1 {
		t.Errorf("DaysSincePublished = %d, want 1", analysis.DaysSincePublished)
	}
	if analysis.ViewsPerDay != 1_000_000 {
		t.Errorf("ViewsPerDay = %v, want 1000000", analysis.ViewsPerDay)
	}

	// Every sub-score rides its cap.
	want := models.ScoreComponents{
		ViewsPerDayScore:  25,
		LikeRatioScore:    25,
		CommentRatioScore: 25,
		EngagementScore:   25,
	}
	if analysis.Components != want {
		t.Errorf("Components = %+v, want %+v", analysis.Components, want)
	}

	// Ratios are reported as percentages.
	if analysis.LikeRatio != 5.0 {
		t.Errorf("LikeRatio = %v, want 5.0", analysis.LikeRatio)
	}
	if analysis.CommentRatio != 1.0 {
		t.Errorf("CommentRatio = %v, want 1.0", analysis.CommentRatio)
	}
	if analysis.EngagementScore != 1000 {
		t.Errorf("EngagementScore = %v, want 1000", analysis.EngagementScore)
	}
	if analysis.ChannelPerformanceRatio != 1.0 {
		t.Errorf("ChannelPerformanceRatio = %v, want 1.0 without channel context", analysis.ChannelPerformanceRatio)
	}
}

func TestScoreModestVideo(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := defaultScorer(now)

	video := &models.VideoRecord{
		VideoID:      "abc123DEF45",
		ViewCount:    1000,
		LikeCount:    1,
		CommentCount: 0,
		PublishedAt:  now.Add(-10 * 24 * time.Hour),
	}

	analysis, err := s.Score(video, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	// vpd=100 -> 0.25, like 0.1% -> 1.25, comment 0, engagement 10 -> 5.
	if analysis.ViralScore != 6.5 {
		t.Errorf("ViralScore = %v, want 6.5", analysis.ViralScore)
	}
	if analysis.IsViral {
		t.Error("IsViral = true, want false")
	}
	if analysis.DaysSincePublished != 10 {
		t.Errorf("DaysSincePublished = %d, want 10", analysis.DaysSincePublished)
	}
}

func TestScoreChannelBonus(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		views     int64
		subs      int64
		wantRatio float64
		wantScore float64
	}{
		{
			// expected views = 1000, ratio 5 -> bonus capped at 20.
			name:      "ratio above two earns capped bonus",
			views:     5000,
			subs:      10_000,
			wantRatio: 5.0,
			wantScore: 32.5,
		},
		{
			// ratio exactly 2 is not "clearly outperforming".
			name:      "ratio of exactly two earns no bonus",
			views:     2000,
			subs:      10_000,
			wantRatio: 2.0,
			wantScore: 5.0,
		},
		{
			// ratio 2.2 -> bonus (2.2-1)*5 = 6.
			name:      "ratio between two and cap earns sloped bonus",
			views:     2200,
			subs:      10_000,
			wantRatio: 2.2,
			wantScore: 11.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultScorer(now)
			video := &models.VideoRecord{
				VideoID:     "abc123DEF45",
				ViewCount:   tt.views,
				PublishedAt: now.Add(-24 * time.Hour),
			}
			channel := &models.ChannelRecord{
				ChannelID:       "UCuAXFkgsw1L7xaCfnd5JJOw",
				SubscriberCount: tt.subs,
			}

			analysis, err := s.Score(video, channel)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if analysis.ChannelPerformanceRatio != tt.wantRatio {
				t.Errorf("ChannelPerformanceRatio = %v, want %v", analysis.ChannelPerformanceRatio, tt.wantRatio)
			}
			if analysis.ViralScore != tt.wantScore {
				t.Errorf("ViralScore = %v, want %v", analysis.ViralScore, tt.wantScore)
			}
		})
	}
}

func TestScoreZeroViews(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := defaultScorer(now)

	video := &models.VideoRecord{
		VideoID:     "abc123DEF45",
		PublishedAt: now.Add(-48 * time.Hour),
	}

	analysis, err := s.Score(video, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if analysis.ViralScore != 0 {
		t.Errorf("ViralScore = %v, want 0", analysis.ViralScore)
	}
	if math.IsNaN(analysis.LikeRatio) || math.IsNaN(analysis.EngagementScore) {
		t.Error("ratios must not be NaN for zero-view videos")
	}
}

func TestScoreInvalidTimestamp(t *testing.T) {
	s := defaultScorer(time.Now())

	_, err := s.Score(&models.VideoRecord{VideoID: "abc123DEF45"}, nil)
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("Score() error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestScoreFutureTimestampClampsToOneDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := defaultScorer(now)

	video := &models.VideoRecord{
		VideoID:     "abc123DEF45",
		ViewCount:   500,
		PublishedAt: now.Add(time.Hour),
	}

	analysis, err := s.Score(video, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if analysis.DaysSincePublished != 1 {
		t.Errorf("DaysSincePublished = %d, want 1", analysis.DaysSincePublished)
	}
	if analysis.ViewsPerDay != 500 {
		t.Errorf("ViewsPerDay = %v, want 500", analysis.ViewsPerDay)
	}
}

func TestInsights(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := defaultScorer(now)

	viralVideo := &models.VideoRecord{
		VideoID:      "dQw4w9WgXcQ",
		ViewCount:    1_000_000,
		LikeCount:    50_000,
		CommentCount: 10_000,
		PublishedAt:  now.Add(-24 * time.Hour),
	}
	analysis, err := s.Score(viralVideo, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	insights := s.Insights(analysis)
	assertContains(t, insights, "This video qualifies as viral.")
	assertContains(t, insights, "Daily views are very high at 1000000 per day.")
	assertContains(t, insights, "Like ratio of 5.00% shows strong audience approval.")
	assertContains(t, insights, "Comment ratio of 1.00% shows active discussion.")

	slowVideo := &models.VideoRecord{
		VideoID:     "abc123DEF45",
		ViewCount:   100,
		PublishedAt: now.Add(-30 * 24 * time.Hour),
	}
	analysis, err = s.Score(slowVideo, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	insights = s.Insights(analysis)
	assertContains(t, insights, "This video is performing at a typical level.")
	assertContains(t, insights, "Daily views are low at 3 per day; reach needs improvement.")
}

func assertContains(t *testing.T, list []string, want string) {
	t.Helper()
	for _, item := range list {
		if item == want {
			return
		}
	}
	t.Errorf("insights %q missing %q", list, want)
}

func TestPredictPotential(t *testing.T) {
	s := NewScorer(config.ViralConfig{})

	tests := []struct {
		name           string
		video          models.VideoRecord
		hours          float64
		wantScore      int
		wantViews      int64
		wantEngagement int64
		wantRec        string
	}{
		{
			// vph=6000 -> 144k predicted views, engagement 12000, early bonus.
			name:           "breakout video maxes the score",
			video:          models.VideoRecord{ViewCount: 12_000, LikeCount: 500, CommentCount: 100},
			hours:          2,
			wantScore:      100,
			wantViews:      144_000,
			wantEngagement: 12_000,
			wantRec:        "Very high viral potential. Consider additional promotion.",
		},
		{
			// predicted views 20k (+40), engagement 1700 (+30), no early bonus.
			name:           "day-old strong performer",
			video:          models.VideoRecord{ViewCount: 20_000, LikeCount: 1200, CommentCount: 100},
			hours:          24,
			wantScore:      70,
			wantViews:      20_000,
			wantEngagement: 1700,
			wantRec:        "Strong growth. Increase social sharing to keep momentum.",
		},
		{
			// predicted views 6000 (+20), engagement 600 (+15).
			name:           "half-threshold pace",
			video:          models.VideoRecord{ViewCount: 3000, LikeCount: 150, CommentCount: 30},
			hours:          12,
			wantScore:      35,
			wantViews:      6000,
			wantEngagement: 600,
			wantRec:        "Slow growth. The content strategy may need a review.",
		},
		{
			name:      "exactly one hour is enough data",
			video:     models.VideoRecord{ViewCount: 100},
			hours:     1,
			wantScore: 0,
			wantViews: 2400,
			wantRec:   "Slow growth. The content strategy may need a review.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction, err := s.PredictPotential(&tt.video, tt.hours)
			if err != nil {
				t.Fatalf("PredictPotential() error = %v", err)
			}
			if prediction.PotentialScore != tt.wantScore {
				t.Errorf("PotentialScore = %d, want %d", prediction.PotentialScore, tt.wantScore)
			}
			if prediction.Predicted24hViews != tt.wantViews {
				t.Errorf("Predicted24hViews = %d, want %d", prediction.Predicted24hViews, tt.wantViews)
			}
			if prediction.Predicted24hEngagement != tt.wantEngagement {
				t.Errorf("Predicted24hEngagement = %d, want %d", prediction.Predicted24hEngagement, tt.wantEngagement)
			}
			if prediction.Recommendation != tt.wantRec {
				t.Errorf("Recommendation = %q, want %q", prediction.Recommendation, tt.wantRec)
			}
		})
	}
}

func TestPredictPotentialInsufficientData(t *testing.T) {
	s := NewScorer(config.ViralConfig{})

	_, err := s.PredictPotential(&models.VideoRecord{ViewCount: 100}, 0.5)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("PredictPotential() error = %v, want ErrInsufficientData", err)
	}
}
