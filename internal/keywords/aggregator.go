package keywords

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/config"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

// TrendPeriod selects the bucketing granularity for keyword trends.
type TrendPeriod string

// Supported trend bucketing periods.
const (
	TrendPeriodDaily   TrendPeriod = "daily"
	TrendPeriodWeekly  TrendPeriod = "weekly"
	TrendPeriodMonthly TrendPeriod = "monthly"
)

// Aggregator merges per-field keyword extractions across a video batch into
// one weighted ranking. Titles carry the strongest topical signal, tags are
// curated and more reliable than free description text.
type Aggregator struct {
	extractor *Extractor
	cfg       config.KeywordConfig
}

// NewAggregator creates an Aggregator using the given extractor and caps.
func NewAggregator(extractor *Extractor, cfg config.KeywordConfig) *Aggregator {
	if cfg.TitleKeywords <= 0 {
		cfg.TitleKeywords = 30
	}
	if cfg.DescriptionKeywords <= 0 {
		cfg.DescriptionKeywords = 30
	}
	if cfg.TopTags <= 0 {
		cfg.TopTags = 20
	}
	if cfg.CombinedKeywords <= 0 {
		cfg.CombinedKeywords = 50
	}
	if cfg.TitleWeight <= 0 {
		cfg.TitleWeight = 3
	}
	if cfg.DescriptionWeight <= 0 {
		cfg.DescriptionWeight = 1
	}
	if cfg.TagWeight <= 0 {
		cfg.TagWeight = 2
	}

	return &Aggregator{extractor: extractor, cfg: cfg}
}

// AnalyzeBatch extracts and merges keyword signals for a batch of videos.
// Deterministic for identical input order: the combined ranking breaks ties
// by first-insertion order from the title, description, tag merge sequence.
func (a *Aggregator) AnalyzeBatch(videos []models.VideoRecord) *models.KeywordAnalysisResult {
	titles := make([]string, 0, len(videos))
	descriptions := make([]string, 0, len(videos))
	var tags []string

	for i := range videos {
		titles = append(titles, videos[i].Title)
		descriptions = append(descriptions, videos[i].Description)
		tags = append(tags, videos[i].Tags...)
	}

	titleKeywords := a.extractor.Extract(strings.Join(titles, " "), models.LanguageAuto, a.cfg.TitleKeywords)
	descriptionKeywords := a.extractor.Extract(strings.Join(descriptions, " "), models.LanguageAuto, a.cfg.DescriptionKeywords)

	// Tags are pre-curated by uploaders, so they are counted raw with no
	// text filtering.
	topTags := rankByFrequency(tags, a.cfg.TopTags)

	combined := a.combine(titleKeywords, descriptionKeywords, topTags)

	return &models.KeywordAnalysisResult{
		TitleKeywords:       titleKeywords,
		DescriptionKeywords: descriptionKeywords,
		TopTags:             topTags,
		CombinedKeywords:    combined,
		TotalVideosAnalyzed: len(videos),
	}
}

// combine builds the weighted cross-source map and returns the capped ranking.
func (a *Aggregator) combine(titles, descriptions, tags []models.KeywordEntry) []models.WeightedKeyword {
	weights := make(map[string]int)
	var order []string

	add := func(entries []models.KeywordEntry, weight int) {
		for _, entry := range entries {
			if _, seen := weights[entry.Term]; !seen {
				order = append(order, entry.Term)
			}
			weights[entry.Term] += entry.Frequency * weight
		}
	}

	add(titles, a.cfg.TitleWeight)
	add(descriptions, a.cfg.DescriptionWeight)
	add(tags, a.cfg.TagWeight)

	combined := make([]models.WeightedKeyword, 0, len(order))
	for _, term := range order {
		combined = append(combined, models.WeightedKeyword{Term: term, Weight: weights[term]})
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Weight > combined[j].Weight
	})

	if len(combined) > a.cfg.CombinedKeywords {
		combined = combined[:a.cfg.CombinedKeywords]
	}
	return combined
}

// Insights derives human-readable observations from a batch analysis.
func (a *Aggregator) Insights(result *models.KeywordAnalysisResult) []string {
	if result == nil || len(result.CombinedKeywords) == 0 {
		return []string{"No keywords available for analysis."}
	}

	var insights []string

	top := result.CombinedKeywords
	if len(top) > 5 {
		top = top[:5]
	}
	terms := make([]string, 0, len(top))
	for _, kw := range top {
		terms = append(terms, kw.Term)
	}
	insights = append(insights, fmt.Sprintf("Most popular keywords: %s", strings.Join(terms, ", ")))

	if common := commonTerms(result.TitleKeywords, result.DescriptionKeywords, 10, 3); len(common) > 0 {
		insights = append(insights, fmt.Sprintf("Core terms shared by titles and descriptions: %s", strings.Join(common, ", ")))
	}

	if len(result.TopTags) > 0 {
		var total int
		for _, tag := range result.TopTags {
			total += tag.Frequency
		}
		avg := float64(total) / float64(len(result.TopTags))
		insights = append(insights, fmt.Sprintf("Average tag frequency: %.1f", avg))
	}

	return insights
}

// commonTerms intersects the top-n terms of two rankings, preserving the
// first ranking's order, capped at limit results.
func commonTerms(first, second []models.KeywordEntry, n, limit int) []string {
	if len(first) > n {
		first = first[:n]
	}
	if len(second) > n {
		second = second[:n]
	}

	inSecond := make(map[string]struct{}, len(second))
	for _, entry := range second {
		inSecond[entry.Term] = struct{}{}
	}

	var common []string
	for _, entry := range first {
		if _, ok := inSecond[entry.Term]; ok {
			common = append(common, entry.Term)
			if len(common) == limit {
				break
			}
		}
	}
	return common
}

// TrendByPeriod buckets videos by publish date and reports each bucket's
// top-10 combined keywords. Bucket keys sort lexicographically in
// chronological order.
func (a *Aggregator) TrendByPeriod(videos []models.VideoRecord, period TrendPeriod) map[string][]models.WeightedKeyword {
	if len(videos) == 0 {
		return map[string][]models.WeightedKeyword{}
	}

	buckets := make(map[string][]models.VideoRecord)
	for i := range videos {
		key := periodKey(videos[i].PublishedAt.UTC(), period)
		buckets[key] = append(buckets[key], videos[i])
	}

	trends := make(map[string][]models.WeightedKeyword, len(buckets))
	for key, group := range buckets {
		combined := a.AnalyzeBatch(group).CombinedKeywords
		if len(combined) > 10 {
			combined = combined[:10]
		}
		trends[key] = combined
	}
	return trends
}

func periodKey(t time.Time, period TrendPeriod) string {
	switch period {
	case TrendPeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case TrendPeriodMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
