package analyzer

import (
	"testing"
	"time"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

func TestSummarizeTrendsEmpty(t *testing.T) {
	summary := SummarizeTrends(nil)

	if summary.TotalVideos != 0 {
		t.Errorf("TotalVideos = %d, want 0", summary.TotalVideos)
	}
	if summary.AvgViews != 0 {
		t.Errorf("AvgViews = %v, want 0", summary.AvgViews)
	}
	if len(summary.DailyTrends) != 0 || len(summary.HourlyTrends) != 0 || len(summary.CategoryStats) != 0 {
		t.Errorf("empty batch must yield empty trend slices, got %+v", summary)
	}
	if summary.TopPerformingDay != "" {
		t.Errorf("TopPerformingDay = %q, want empty", summary.TopPerformingDay)
	}
	if summary.OptimalUploadHour != nil {
		t.Errorf("OptimalUploadHour = %v, want nil", *summary.OptimalUploadHour)
	}
}

func TestSummarizeTrends(t *testing.T) {
	monday := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 1, 6, 18, 30, 0, 0, time.UTC)

	videos := []models.VideoRecord{
		{VideoID: "a", CategoryID: "20", ViewCount: 1000, LikeCount: 50, CommentCount: 5, PublishedAt: monday},
		{VideoID: "b", CategoryID: "20", ViewCount: 3000, LikeCount: 150, CommentCount: 15, PublishedAt: monday},
		{VideoID: "c", CategoryID: "10", ViewCount: 10_000, LikeCount: 800, CommentCount: 90, PublishedAt: tuesday},
	}

	summary := SummarizeTrends(videos)

	if summary.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d, want 3", summary.TotalVideos)
	}
	if summary.AvgViews != 4666.67 {
		t.Errorf("AvgViews = %v, want 4666.67", summary.AvgViews)
	}

	if summary.TopPerformingDay != "Tuesday" {
		t.Errorf("TopPerformingDay = %q, want Tuesday", summary.TopPerformingDay)
	}
	wantDaily := []models.DayTrend{
		{Day: "Tuesday", AvgViews: 10_000},
		{Day: "Monday", AvgViews: 2000},
	}
	if len(summary.DailyTrends) != len(wantDaily) {
		t.Fatalf("DailyTrends = %+v, want %+v", summary.DailyTrends, wantDaily)
	}
	for i, want := range wantDaily {
		if summary.DailyTrends[i] != want {
			t.Errorf("DailyTrends[%d] = %+v, want %+v", i, summary.DailyTrends[i], want)
		}
	}

	if summary.OptimalUploadHour == nil || *summary.OptimalUploadHour != 18 {
		t.Errorf("OptimalUploadHour = %v, want 18", summary.OptimalUploadHour)
	}
	if summary.HourlyTrends[0].Hour != 18 || summary.HourlyTrends[0].AvgViews != 10_000 {
		t.Errorf("HourlyTrends[0] = %+v, want hour 18 with avg 10000", summary.HourlyTrends[0])
	}
	if summary.HourlyTrends[1].Hour != 9 || summary.HourlyTrends[1].AvgViews != 2000 {
		t.Errorf("HourlyTrends[1] = %+v, want hour 9 with avg 2000", summary.HourlyTrends[1])
	}

	// Highest-average category leads.
	if len(summary.CategoryStats) != 2 {
		t.Fatalf("CategoryStats = %+v, want 2 entries", summary.CategoryStats)
	}
	music := summary.CategoryStats[0]
	if music.CategoryID != "10" || music.VideoCount != 1 || music.AvgViews != 10_000 {
		t.Errorf("CategoryStats[0] = %+v, want category 10 with 1 video and 10000 avg views", music)
	}
	gaming := summary.CategoryStats[1]
	if gaming.CategoryID != "20" || gaming.VideoCount != 2 || gaming.AvgViews != 2000 {
		t.Errorf("CategoryStats[1] = %+v, want category 20 with 2 videos and 2000 avg views", gaming)
	}
	if gaming.AvgLikes != 100 || gaming.AvgComments != 10 {
		t.Errorf("category 20 averages = likes %v comments %v, want 100 and 10", gaming.AvgLikes, gaming.AvgComments)
	}
}

func TestSummarizeTrendsSkipsZeroTimestamps(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	videos := []models.VideoRecord{
		{VideoID: "a", ViewCount: 100, PublishedAt: now},
		{VideoID: "b", ViewCount: 300}, // no publish time
	}

	summary := SummarizeTrends(videos)

	if summary.TotalVideos != 2 {
		t.Errorf("TotalVideos = %d, want 2", summary.TotalVideos)
	}
	if summary.AvgViews != 200 {
		t.Errorf("AvgViews = %v, want 200", summary.AvgViews)
	}
	// The undated video still counts toward totals but not trend buckets.
	if len(summary.DailyTrends) != 1 || summary.DailyTrends[0].Day != "Wednesday" {
		t.Errorf("DailyTrends = %+v, want a single Wednesday bucket", summary.DailyTrends)
	}
	if len(summary.HourlyTrends) != 1 || summary.HourlyTrends[0].Hour != 12 {
		t.Errorf("HourlyTrends = %+v, want a single hour-12 bucket", summary.HourlyTrends)
	}
}
