package keywords

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

func newTestAggregator() *Aggregator {
	cfg := testKeywordConfig()
	return NewAggregator(NewExtractor(cfg), cfg)
}

func TestAggregator_AnalyzeBatch(t *testing.T) {
	a := newTestAggregator()

	videos := []models.VideoRecord{
		{
			Title:       "keyboard review keyboard",
			Description: "mechanical keyboard review for beginners",
			Tags:        []string{"keyboard", "mechanical", "keyboard"},
		},
		{
			Title:       "mechanical switches explained",
			Description: "switches switches switches",
			Tags:        []string{"switches"},
		},
	}

	result := a.AnalyzeBatch(videos)

	if result.TotalVideosAnalyzed != 2 {
		t.Errorf("TotalVideosAnalyzed = %d, want 2", result.TotalVideosAnalyzed)
	}

	// Titles blob: "keyboard review keyboard mechanical switches explained"
	wantTitles := []models.KeywordEntry{
		{Term: "keyboard", Frequency: 2},
		{Term: "review", Frequency: 1},
		{Term: "mechanical", Frequency: 1},
		{Term: "switches", Frequency: 1},
		{Term: "explained", Frequency: 1},
	}
	if !reflect.DeepEqual(result.TitleKeywords, wantTitles) {
		t.Errorf("TitleKeywords = %v, want %v", result.TitleKeywords, wantTitles)
	}

	// Tags are counted raw, no filtering.
	wantTags := []models.KeywordEntry{
		{Term: "keyboard", Frequency: 2},
		{Term: "mechanical", Frequency: 1},
		{Term: "switches", Frequency: 1},
	}
	if !reflect.DeepEqual(result.TopTags, wantTags) {
		t.Errorf("TopTags = %v, want %v", result.TopTags, wantTags)
	}

	if len(result.CombinedKeywords) == 0 {
		t.Fatal("CombinedKeywords is empty")
	}
	if result.CombinedKeywords[0].Term != "keyboard" {
		t.Errorf("top combined keyword = %s, want keyboard", result.CombinedKeywords[0].Term)
	}
}

func TestAggregator_CombinedWeighting(t *testing.T) {
	a := newTestAggregator()

	// "galaxy" appears once in the title, once in the description and once
	// as a tag: weight must be 3 + 1 + 2 = 6.
	videos := []models.VideoRecord{
		{
			Title:       "galaxy unboxing",
			Description: "first look at the galaxy lineup",
			Tags:        []string{"galaxy"},
		},
	}

	result := a.AnalyzeBatch(videos)

	var got *models.WeightedKeyword
	for i := range result.CombinedKeywords {
		if result.CombinedKeywords[i].Term == "galaxy" {
			got = &result.CombinedKeywords[i]
			break
		}
	}
	if got == nil {
		t.Fatal("galaxy missing from combined keywords")
	}
	if got.Weight != 6 {
		t.Errorf("galaxy weight = %d, want 6", got.Weight)
	}
}

func TestAggregator_AnalyzeBatch_Empty(t *testing.T) {
	a := newTestAggregator()

	result := a.AnalyzeBatch(nil)

	if result.TotalVideosAnalyzed != 0 {
		t.Errorf("TotalVideosAnalyzed = %d, want 0", result.TotalVideosAnalyzed)
	}
	if len(result.CombinedKeywords) != 0 {
		t.Errorf("CombinedKeywords = %v, want empty", result.CombinedKeywords)
	}
}

func TestAggregator_Insights(t *testing.T) {
	a := newTestAggregator()

	t.Run("empty result", func(t *testing.T) {
		insights := a.Insights(&models.KeywordAnalysisResult{})
		if len(insights) != 1 {
			t.Fatalf("Insights() returned %d entries, want 1", len(insights))
		}
		if !strings.Contains(insights[0], "No keywords") {
			t.Errorf("Insights()[0] = %q, want no-keywords message", insights[0])
		}
	})

	t.Run("populated result", func(t *testing.T) {
		result := &models.KeywordAnalysisResult{
			TitleKeywords: []models.KeywordEntry{
				{Term: "keyboard", Frequency: 4},
				{Term: "review", Frequency: 2},
			},
			DescriptionKeywords: []models.KeywordEntry{
				{Term: "keyboard", Frequency: 3},
				{Term: "unboxing", Frequency: 1},
			},
			TopTags: []models.KeywordEntry{
				{Term: "keyboard", Frequency: 3},
				{Term: "tech", Frequency: 1},
			},
			CombinedKeywords: []models.WeightedKeyword{
				{Term: "keyboard", Weight: 21},
				{Term: "review", Weight: 6},
			},
			TotalVideosAnalyzed: 5,
		}

		insights := a.Insights(result)
		if len(insights) != 3 {
			t.Fatalf("Insights() returned %d entries, want 3: %v", len(insights), insights)
		}
		if !strings.Contains(insights[0], "keyboard, review") {
			t.Errorf("popular keywords insight = %q", insights[0])
		}
		if !strings.Contains(insights[1], "keyboard") {
			t.Errorf("core terms insight = %q", insights[1])
		}
		if !strings.Contains(insights[2], "2.0") {
			t.Errorf("tag frequency insight = %q, want average 2.0", insights[2])
		}
	})
}

func TestAggregator_TrendByPeriod(t *testing.T) {
	a := newTestAggregator()

	day1 := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	videos := []models.VideoRecord{
		{Title: "monday gaming stream", PublishedAt: day1},
		{Title: "tuesday cooking special", PublishedAt: day2},
	}

	t.Run("daily buckets", func(t *testing.T) {
		trends := a.TrendByPeriod(videos, TrendPeriodDaily)
		if len(trends) != 2 {
			t.Fatalf("TrendByPeriod() returned %d buckets, want 2", len(trends))
		}
		if _, ok := trends["2024-03-04"]; !ok {
			t.Error("missing bucket 2024-03-04")
		}
		if _, ok := trends["2024-03-05"]; !ok {
			t.Error("missing bucket 2024-03-05")
		}
	})

	t.Run("monthly buckets collapse", func(t *testing.T) {
		trends := a.TrendByPeriod(videos, TrendPeriodMonthly)
		if len(trends) != 1 {
			t.Fatalf("TrendByPeriod() returned %d buckets, want 1", len(trends))
		}
		if _, ok := trends["2024-03"]; !ok {
			t.Error("missing bucket 2024-03")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		trends := a.TrendByPeriod(nil, TrendPeriodDaily)
		if len(trends) != 0 {
			t.Errorf("TrendByPeriod(nil) = %v, want empty", trends)
		}
	})
}
