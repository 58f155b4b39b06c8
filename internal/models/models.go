// Package models contains the data models and DTOs for the viral analysis service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Language identifies the language family of a piece of text.
type Language string

// Language constants cover the two families the keyword pipeline distinguishes.
const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
	LanguageAuto    Language = "auto"
)

// VideoRecord holds the raw metadata for one video as returned by the Data API.
// Records are immutable once fetched; analysis results never mutate them.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoRecord struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelID    string    `json:"channel_id"`
	ChannelTitle string    `json:"channel_title"`
	CategoryID   string    `json:"category_id"`
	Tags         []string  `json:"tags"`
	PublishedAt  time.Time `json:"published_at"`
	Duration     string    `json:"duration"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// ChannelRecord holds channel-level statistics used for the channel
// performance bonus. Absence of a record is valid and means "no channel
// context".
type ChannelRecord struct {
	ChannelID       string `json:"channel_id"`
	ChannelTitle    string `json:"channel_title"`
	SubscriberCount int64  `json:"subscriber_count"`
	VideoCount      int64  `json:"video_count"`
	ViewCount       int64  `json:"view_count"`
}

// CommentRecord is a single top-level comment on a video.
type CommentRecord struct {
	CommentID   string    `json:"comment_id"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	LikeCount   int64     `json:"like_count"`
	PublishedAt time.Time `json:"published_at"`
}

// ScoreComponents breaks the composite viral score down into its four
// sub-scores. Each component is clamped to [0, 25].
type ScoreComponents struct {
	ViewsPerDayScore  float64 `json:"views_per_day_score"`
	LikeRatioScore    float64 `json:"like_ratio_score"`
	CommentRatioScore float64 `json:"comment_ratio_score"`
	EngagementScore   float64 `json:"engagement_score"`
}

// ViralAnalysis is the derived scoring result for one video. Computed fresh
// each run and never mutated afterwards.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ViralAnalysis struct {
	ViralScore              float64         `json:"viral_score"`
	Components              ScoreComponents `json:"score_components"`
	ViewsPerDay             float64         `json:"views_per_day"`
	LikeRatio               float64         `json:"like_ratio"`    // percent
	CommentRatio            float64         `json:"comment_ratio"` // percent
	EngagementScore         float64         `json:"engagement_score"`
	ChannelPerformanceRatio float64         `json:"channel_performance_ratio"`
	DaysSincePublished      int             `json:"days_since_published"`
	IsViral                 bool            `json:"is_viral"`
}

// PotentialPrediction is the early-growth extrapolation for a freshly
// uploaded video.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type PotentialPrediction struct {
	PotentialScore         int     `json:"viral_potential_score"`
	Predicted24hViews      int64   `json:"predicted_24h_views"`
	Predicted24hEngagement int64   `json:"predicted_24h_engagement"`
	CurrentGrowthRate      float64 `json:"current_growth_rate"` // views per hour
	Recommendation         string  `json:"recommendation"`
}

// ScoredVideo pairs a video record with its analysis.
type ScoredVideo struct {
	Video    *VideoRecord   `json:"video"`
	Analysis *ViralAnalysis `json:"analysis"`
}

// KeywordEntry is one (term, frequency) pair. Collections are ordered by
// descending frequency with first-encountered order breaking ties.
type KeywordEntry struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
}

// WeightedKeyword is a cross-source keyword with its summed weighted score.
type WeightedKeyword struct {
	Term   string `json:"term"`
	Weight int    `json:"weight"`
}

// KeywordAnalysisResult aggregates keyword signals across a video batch.
// Built once per batch and read-only afterwards.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type KeywordAnalysisResult struct {
	TitleKeywords       []KeywordEntry    `json:"title_keywords"`
	DescriptionKeywords []KeywordEntry    `json:"description_keywords"`
	TopTags             []KeywordEntry    `json:"top_tags"`
	CombinedKeywords    []WeightedKeyword `json:"combined_keywords"`
	TotalVideosAnalyzed int               `json:"total_videos_analyzed"`
}

// DayTrend is the mean view count for videos published on one weekday.
type DayTrend struct {
	Day      string  `json:"day"`
	AvgViews float64 `json:"avg_views"`
}

// HourTrend is the mean view count for videos published in one UTC hour.
type HourTrend struct {
	Hour     int     `json:"hour"`
	AvgViews float64 `json:"avg_views"`
}

// CategoryStats holds per-category descriptive statistics.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type CategoryStats struct {
	CategoryID  string  `json:"category_id"`
	VideoCount  int     `json:"video_count"`
	AvgViews    float64 `json:"avg_views"`
	AvgLikes    float64 `json:"avg_likes"`
	AvgComments float64 `json:"avg_comments"`
}

// TrendSummary is the batch-level aggregation of scored videos. An empty
// input batch yields a zero-valued summary, never an error.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type TrendSummary struct {
	DailyTrends       []DayTrend      `json:"daily_trends"`
	HourlyTrends      []HourTrend     `json:"hourly_trends"`
	CategoryStats     []CategoryStats `json:"category_stats"`
	TotalVideos       int             `json:"total_videos"`
	AvgViews          float64         `json:"avg_views"`
	TopPerformingDay  string          `json:"top_performing_day,omitempty"`
	OptimalUploadHour *int            `json:"optimal_upload_hour,omitempty"`
}

// AnalysisReport is the full result of one analysis run.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type AnalysisReport struct {
	ReportID    uuid.UUID              `json:"report_id"`
	Query       string                 `json:"query"`
	Videos      []ScoredVideo          `json:"videos"`
	Keywords    *KeywordAnalysisResult `json:"keywords"`
	Trends      *TrendSummary          `json:"trends"`
	Skipped     int                    `json:"skipped"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// AnalysisRequestDTO is the request body for a search-and-analyze run.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type AnalysisRequestDTO struct {
	Query           string `json:"query" binding:"required,max=200"`
	MaxResults      int    `json:"maxResults"`
	Order           string `json:"order"`
	PublishedAfter  string `json:"publishedAfter"`  // YYYY-MM-DD
	PublishedBefore string `json:"publishedBefore"` // YYYY-MM-DD
	VideoDuration   string `json:"videoDuration"`   // any, short, medium, long
	RegionCode      string `json:"regionCode"`
}

// PotentialRequestDTO is the request body for an early-growth prediction.
type PotentialRequestDTO struct {
	VideoID          string  `json:"videoId" binding:"required,max=50"`
	HoursSinceUpload float64 `json:"hoursSinceUpload"`
}

// ErrorResponse represents an error response.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
