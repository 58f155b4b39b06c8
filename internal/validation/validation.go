// Package validation checks inbound analysis requests before they reach the
// Data API client.
package validation

import (
	"fmt"
	"regexp"
	"time"
)

var (
	videoIDRegex   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	channelIDRegex = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
	regionRegex    = regexp.MustCompile(`^[A-Z]{2}$`)
)

// validOrders mirrors the order values search.list accepts.
var validOrders = map[string]bool{
	"relevance": true,
	"date":      true,
	"rating":    true,
	"viewCount": true,
	"title":     true,
}

// validDurations mirrors the videoDuration classes search.list accepts.
var validDurations = map[string]bool{
	"any":    true,
	"short":  true,
	"medium": true,
	"long":   true,
}

// dateLayout is the wire format for request date windows.
const dateLayout = "2006-01-02"

// maxSearchResults is the hard ceiling on one analysis run; the Data API
// pages 50 results at a time, so 200 keeps a run to at most 4 search pages.
const maxSearchResults = 200

// SearchRequest is the validated, normalized form of an analysis request.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type SearchRequest struct {
	Query           string
	MaxResults      int
	Order           string
	PublishedAfter  time.Time
	PublishedBefore time.Time
	VideoDuration   string
	RegionCode      string
}

type Validator struct {
	defaultMaxResults int
	defaultRegion     string
}

func New(defaultMaxResults int, defaultRegion string) *Validator {
	if defaultMaxResults <= 0 || defaultMaxResults > maxSearchResults {
		defaultMaxResults = 50
	}
	return &Validator{
		defaultMaxResults: defaultMaxResults,
		defaultRegion:     defaultRegion,
	}
}

// ValidateSearch checks a raw request and returns its normalized form.
// Omitted fields inherit the configured defaults.
func (v *Validator) ValidateSearch(query string, maxResults int, order, publishedAfter, publishedBefore, duration, region string) (*SearchRequest, error) {
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	if maxResults == 0 {
		maxResults = v.defaultMaxResults
	}
	if maxResults < 1 || maxResults > maxSearchResults {
		return nil, fmt.Errorf("maxResults %d out of range [1, %d]", maxResults, maxSearchResults)
	}

	if order == "" {
		order = "viewCount"
	}
	if !validOrders[order] {
		return nil, fmt.Errorf("unsupported order: %s", order)
	}

	if duration == "" {
		duration = "any"
	}
	if !validDurations[duration] {
		return nil, fmt.Errorf("unsupported videoDuration: %s", duration)
	}

	if region == "" {
		region = v.defaultRegion
	}
	if region != "" && !regionRegex.MatchString(region) {
		return nil, fmt.Errorf("invalid region code: %s", region)
	}

	req := &SearchRequest{
		Query:         query,
		MaxResults:    maxResults,
		Order:         order,
		VideoDuration: duration,
		RegionCode:    region,
	}

	var err error
	if publishedAfter != "" {
		req.PublishedAfter, err = time.Parse(dateLayout, publishedAfter)
		if err != nil {
			return nil, fmt.Errorf("invalid publishedAfter date: %s", publishedAfter)
		}
	}
	if publishedBefore != "" {
		req.PublishedBefore, err = time.Parse(dateLayout, publishedBefore)
		if err != nil {
			return nil, fmt.Errorf("invalid publishedBefore date: %s", publishedBefore)
		}
	}
	if !req.PublishedAfter.IsZero() && !req.PublishedBefore.IsZero() && req.PublishedAfter.After(req.PublishedBefore) {
		return nil, fmt.Errorf("publishedAfter %s is after publishedBefore %s", publishedAfter, publishedBefore)
	}

	return req, nil
}

// ValidatePotential checks an early-growth prediction request. The hours
// value may be zero; the caller then derives it from the publish timestamp.
func (v *Validator) ValidatePotential(videoID string, hoursSinceUpload float64) error {
	if !videoIDRegex.MatchString(videoID) {
		return fmt.Errorf("invalid video ID format: %s", videoID)
	}
	if hoursSinceUpload < 0 {
		return fmt.Errorf("hoursSinceUpload must not be negative")
	}
	return nil
}

func (v *Validator) IsValidVideoID(videoID string) bool {
	return videoIDRegex.MatchString(videoID)
}

func (v *Validator) IsValidChannelID(channelID string) bool {
	return channelIDRegex.MatchString(channelID)
}
