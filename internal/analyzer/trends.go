package analyzer

import (
	"sort"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

const hoursPerDay = 24

// SummarizeTrends aggregates publish-time and category statistics across a
// batch of videos. An empty batch yields a zero-valued summary.
func SummarizeTrends(videos []models.VideoRecord) *models.TrendSummary {
	summary := &models.TrendSummary{TotalVideos: len(videos)}
	if len(videos) == 0 {
		return summary
	}

	dayViews := make(map[string][]int64)
	hourViews := make(map[int][]int64)
	categories := make(map[string]*models.CategoryStats)
	categoryOrder := make([]string, 0)

	var totalViews int64
	for i := range videos {
		v := &videos[i]
		totalViews += v.ViewCount

		if !v.PublishedAt.IsZero() {
			published := v.PublishedAt.UTC()
			day := published.Weekday().String()
			dayViews[day] = append(dayViews[day], v.ViewCount)
			hourViews[published.Hour()] = append(hourViews[published.Hour()], v.ViewCount)
		}

		if v.CategoryID == "" {
			continue
		}
		stats, ok := categories[v.CategoryID]
		if !ok {
			stats = &models.CategoryStats{CategoryID: v.CategoryID}
			categories[v.CategoryID] = stats
			categoryOrder = append(categoryOrder, v.CategoryID)
		}
		stats.VideoCount++
		stats.AvgViews += float64(v.ViewCount)
		stats.AvgLikes += float64(v.LikeCount)
		stats.AvgComments += float64(v.CommentCount)
	}

	summary.AvgViews = round2(float64(totalViews) / float64(len(videos)))
	summary.DailyTrends = dailyTrends(dayViews)
	summary.HourlyTrends = hourlyTrends(hourViews)

	for _, id := range categoryOrder {
		stats := categories[id]
		n := float64(stats.VideoCount)
		stats.AvgViews = round2(stats.AvgViews / n)
		stats.AvgLikes = round2(stats.AvgLikes / n)
		stats.AvgComments = round2(stats.AvgComments / n)
		summary.CategoryStats = append(summary.CategoryStats, *stats)
	}
	sort.SliceStable(summary.CategoryStats, func(i, j int) bool {
		return summary.CategoryStats[i].AvgViews > summary.CategoryStats[j].AvgViews
	})

	if len(summary.DailyTrends) > 0 {
		summary.TopPerformingDay = summary.DailyTrends[0].Day
	}
	if len(summary.HourlyTrends) > 0 {
		hour := summary.HourlyTrends[0].Hour
		summary.OptimalUploadHour = &hour
	}

	return summary
}

// dailyTrends ranks weekdays by mean views. Buckets are seeded in calendar
// order so equal means resolve deterministically.
func dailyTrends(dayViews map[string][]int64) []models.DayTrend {
	weekdays := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	trends := make([]models.DayTrend, 0, len(dayViews))
	for _, day := range weekdays {
		views, ok := dayViews[day]
		if !ok {
			continue
		}
		trends = append(trends, models.DayTrend{Day: day, AvgViews: mean(views)})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].AvgViews > trends[j].AvgViews
	})
	return trends
}

// hourlyTrends ranks UTC publish hours by mean views.
func hourlyTrends(hourViews map[int][]int64) []models.HourTrend {
	trends := make([]models.HourTrend, 0, len(hourViews))
	for hour := 0; hour < hoursPerDay; hour++ {
		views, ok := hourViews[hour]
		if !ok {
			continue
		}
		trends = append(trends, models.HourTrend{Hour: hour, AvgViews: mean(views)})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].AvgViews > trends[j].AvgViews
	})
	return trends
}

func mean(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int64
	for _, v := range values {
		sum += v
	}
	return round2(float64(sum) / float64(len(values)))
}
