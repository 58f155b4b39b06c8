// Package youtube wraps the YouTube Data API v3 endpoints the analyzer uses.
package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/validation"
)

// Quota costs per Data API call. search.list is two orders of magnitude
// more expensive than everything else, which is why searches are paginated
// only as far as the caller asked for.
const (
	SearchQuotaCost = 100
	ListQuotaCost   = 1
)

// maxPageSize is the per-call item ceiling the Data API enforces.
const maxPageSize = 50

// Client wraps the YouTube Data API v3 client.
type Client struct {
	service *youtube.Service
}

// NewClient creates a new YouTube API client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// SearchVideoIDs runs paginated search.list calls until the requested number
// of results or the last page is reached. Returns the IDs in ranking order
// and the quota cost spent.
func (c *Client) SearchVideoIDs(ctx context.Context, req *validation.SearchRequest) ([]string, int, error) {
	var (
		ids       []string
		pageToken string
		quotaCost int
	)

	for len(ids) < req.MaxResults {
		pageSize := req.MaxResults - len(ids)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		call := c.service.Search.List([]string{"id"}).
			Q(req.Query).
			Type("video").
			Order(req.Order).
			MaxResults(int64(pageSize)).
			Context(ctx)

		if req.RegionCode != "" {
			call = call.RegionCode(req.RegionCode)
		}
		if req.VideoDuration != "" && req.VideoDuration != "any" {
			call = call.VideoDuration(req.VideoDuration)
		}
		if !req.PublishedAfter.IsZero() {
			call = call.PublishedAfter(req.PublishedAfter.UTC().Format(time.RFC3339))
		}
		if !req.PublishedBefore.IsZero() {
			call = call.PublishedBefore(req.PublishedBefore.UTC().Format(time.RFC3339))
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, quotaCost, fmt.Errorf("search request failed: %w", err)
		}
		quotaCost += SearchQuotaCost

		for _, item := range response.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				ids = append(ids, item.Id.VideoId)
			}
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, quotaCost, nil
}

// VideoDetails hydrates full metadata for the given video IDs, batching
// videos.list calls at the API's 50-ID limit. IDs the API does not return
// (deleted or private videos) are silently absent from the result.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoRecord, int, error) {
	if len(videoIDs) == 0 {
		return nil, 0, nil
	}

	parts := []string{"snippet", "contentDetails", "statistics"}

	records := make([]models.VideoRecord, 0, len(videoIDs))
	quotaCost := 0

	for _, batch := range batchIDs(videoIDs, maxPageSize) {
		call := c.service.Videos.List(parts).Id(batch...).Context(ctx)

		response, err := call.Do()
		if err != nil {
			return nil, quotaCost, fmt.Errorf("failed to fetch videos: %w", err)
		}
		quotaCost += ListQuotaCost

		for _, item := range response.Items {
			records = append(records, mapVideo(item))
		}
	}

	return records, quotaCost, nil
}

// ChannelInfo fetches subscriber and upload statistics for one channel.
func (c *Client) ChannelInfo(ctx context.Context, channelID string) (*models.ChannelRecord, int, error) {
	call := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}

	// An unknown channel is not an error; callers score without the
	// channel performance bonus.
	if len(response.Items) == 0 {
		return nil, ListQuotaCost, nil
	}

	item := response.Items[0]
	record := &models.ChannelRecord{ChannelID: item.Id}

	if item.Snippet != nil {
		record.ChannelTitle = item.Snippet.Title
	}
	if item.Statistics != nil {
		// Hidden subscriber counts read as zero, which disables the
		// channel performance bonus downstream.
		if !item.Statistics.HiddenSubscriberCount {
			record.SubscriberCount = int64(item.Statistics.SubscriberCount)
		}
		record.VideoCount = int64(item.Statistics.VideoCount)
		record.ViewCount = int64(item.Statistics.ViewCount)
	}

	return record, ListQuotaCost, nil
}

// VideoComments fetches up to maxResults top-level comments ordered by
// relevance. Videos with comments disabled return an error the caller may
// treat as non-fatal.
func (c *Client) VideoComments(ctx context.Context, videoID string, maxResults int) ([]models.CommentRecord, int, error) {
	if maxResults <= 0 || maxResults > 100 {
		maxResults = 100
	}

	call := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		Order("relevance").
		MaxResults(int64(maxResults)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch comments for %s: %w", videoID, err)
	}

	comments := make([]models.CommentRecord, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		snippet := item.Snippet.TopLevelComment.Snippet
		comments = append(comments, models.CommentRecord{
			CommentID:   item.Snippet.TopLevelComment.Id,
			Text:        snippet.TextDisplay,
			Author:      snippet.AuthorDisplayName,
			LikeCount:   snippet.LikeCount,
			PublishedAt: parseTimestamp(snippet.PublishedAt),
		})
	}

	return comments, ListQuotaCost, nil
}

// mapVideo converts an API video item into the internal record. A publish
// timestamp that fails to parse stays zero and is rejected by the scorer.
func mapVideo(video *youtube.Video) models.VideoRecord {
	record := models.VideoRecord{VideoID: video.Id}

	if video.Snippet != nil {
		record.Title = video.Snippet.Title
		record.Description = video.Snippet.Description
		record.ChannelID = video.Snippet.ChannelId
		record.ChannelTitle = video.Snippet.ChannelTitle
		record.CategoryID = video.Snippet.CategoryId
		record.Tags = video.Snippet.Tags
		record.PublishedAt = parseTimestamp(video.Snippet.PublishedAt)

		if video.Snippet.Thumbnails != nil && video.Snippet.Thumbnails.High != nil {
			record.ThumbnailURL = video.Snippet.Thumbnails.High.Url
		}
	}

	if video.ContentDetails != nil {
		record.Duration = video.ContentDetails.Duration
	}

	if video.Statistics != nil {
		record.ViewCount = int64(video.Statistics.ViewCount)
		record.LikeCount = int64(video.Statistics.LikeCount)
		record.CommentCount = int64(video.Statistics.CommentCount)
	}

	return record
}

// parseTimestamp parses the RFC3339 timestamps the Data API returns.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// batchIDs splits IDs into batches of at most batchSize.
func batchIDs(ids []string, batchSize int) [][]string {
	if batchSize <= 0 || batchSize > maxPageSize {
		batchSize = maxPageSize
	}

	var batches [][]string
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[i:end])
	}

	return batches
}

// ParseDuration converts an ISO 8601 video duration to seconds.
// Example: "PT4M13S" -> 253.
func ParseDuration(duration string) (int, error) {
	if !strings.HasPrefix(duration, "PT") {
		return 0, fmt.Errorf("invalid duration format: %s", duration)
	}

	duration = strings.TrimPrefix(duration, "PT")

	var hours, minutes, seconds int

	if hIdx := strings.Index(duration, "H"); hIdx != -1 {
		h, err := strconv.Atoi(duration[:hIdx])
		if err != nil {
			return 0, err
		}
		hours = h
		duration = duration[hIdx+1:]
	}

	if mIdx := strings.Index(duration, "M"); mIdx != -1 {
		m, err := strconv.Atoi(duration[:mIdx])
		if err != nil {
			return 0, err
		}
		minutes = m
		duration = duration[mIdx+1:]
	}

	if sIdx := strings.Index(duration, "S"); sIdx != -1 {
		s, err := strconv.Atoi(duration[:sIdx])
		if err != nil {
			return 0, err
		}
		seconds = s
	}

	return hours*3600 + minutes*60 + seconds, nil
}
