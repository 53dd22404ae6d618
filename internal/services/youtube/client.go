// Package youtube fetches video metadata and comment threads from the
// YouTube Data API v3.
//
// Go Pattern: The client wraps the generated API service and exposes only
// the two operations the pipeline needs. The API key is injected at
// construction — its presence was already validated at startup.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/viewlens/viewlens-api/internal/models"
)

const (
	// commentsPerPage is the Data API's maximum page size for commentThreads.
	commentsPerPage = 100

	// MaxAnalyzedComments caps how many comments a single analysis may
	// consume, however many the video actually has.
	MaxAnalyzedComments = 1000
)

// ErrVideoNotFound is returned when the catalog has no item for a video ID.
// Callers map this to a 404 response.
var ErrVideoNotFound = errors.New("video not found")

// Client talks to the YouTube Data API.
type Client struct {
	svc *youtubeapi.Service
}

// NewClient creates an API-key-authenticated Data API client.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtubeapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// VideoMetadata fetches the snippet and statistics facets for one video.
// Returns ErrVideoNotFound when the catalog has no matching item; any
// network failure propagates unretried.
func (c *Client) VideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list failed for %s: %w", videoID, err)
	}

	// The API reports an unknown ID as an empty item list, not an error.
	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	meta := &models.VideoMetadata{VideoID: videoID}
	if item.Snippet != nil {
		meta.Title = item.Snippet.Title
		meta.Description = item.Snippet.Description
		meta.PublishedAt = item.Snippet.PublishedAt
		meta.ChannelName = item.Snippet.ChannelTitle
	}
	if item.Statistics != nil {
		meta.Views = item.Statistics.ViewCount
		meta.Likes = item.Statistics.LikeCount
		meta.CommentCount = item.Statistics.CommentCount
	}

	return meta, nil
}

// Comments fetches up to max top-level comments for a video, in the
// platform's relevance order, paging through commentThreads until the cap
// is reached or the source runs out of pages.
//
// Pages are sequential — each request needs the previous response's
// continuation token. There is no retry: an error on any page aborts the
// whole run. The returned slice never exceeds max; it is shorter only when
// the source was exhausted first.
func (c *Client) Comments(ctx context.Context, videoID string, max int64) ([]models.RawComment, error) {
	// A zero cap means zero page requests, not one empty request.
	if max <= 0 {
		return []models.RawComment{}, nil
	}

	comments := make([]models.RawComment, 0, min(max, commentsPerPage))
	pageToken := ""
	state := stateFetching
	pages := 0

	for state == stateFetching {
		call := c.svc.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			MaxResults(commentsPerPage).
			Order("relevance").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("commentThreads.list failed for %s (page %d): %w", videoID, pages+1, err)
		}
		pages++

		state = stateAccumulating
		for _, thread := range resp.Items {
			if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil || thread.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			cs := thread.Snippet.TopLevelComment.Snippet
			comments = append(comments, models.RawComment{
				TextDisplay:       cs.TextDisplay,
				AuthorDisplayName: cs.AuthorDisplayName,
			})
		}

		pageToken = resp.NextPageToken
		state = nextPageState(pageToken != "", len(comments), max)
	}

	// Trim to exactly the cap: the last page may have overshot.
	if int64(len(comments)) > max {
		comments = comments[:max]
	}

	log.Printf("💬 Fetched %d comments for %s across %d pages (cap %d)", len(comments), videoID, pages, max)
	return comments, nil
}
