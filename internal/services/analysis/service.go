// Package analysis runs the comment-ingestion and AI-analysis pipeline:
// extract ID → fetch metadata → fetch comments → build prompt → one Gemini
// completion → strict decode → whitelist projection.
//
// One logical flow per request, each step depending on the previous step's
// output — no intra-request parallelism, no caching, no retries. Concurrent
// requests share no mutable state, so the service itself needs no locking.
package analysis

import (
	"context"
	"fmt"
	"log"

	"github.com/viewlens/viewlens-api/internal/models"
	"github.com/viewlens/viewlens-api/internal/services/youtube"
)

// Go Pattern: Define interfaces where they're USED, not where they're
// implemented. The youtube.Client and gemini.Client satisfy these
// implicitly, and tests swap in fakes.

// MetadataFetcher retrieves the snippet + statistics facets for one video.
type MetadataFetcher interface {
	VideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)
}

// CommentFetcher retrieves up to max comments for one video, in platform
// order.
type CommentFetcher interface {
	Comments(ctx context.Context, videoID string, max int64) ([]models.RawComment, error)
}

// Completer sends one prompt to the generative backend and returns the
// completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service orchestrates the pipeline.
type Service struct {
	metadata  MetadataFetcher
	comments  CommentFetcher
	completer Completer
}

// New creates the analysis service.
func New(metadata MetadataFetcher, comments CommentFetcher, completer Completer) *Service {
	return &Service{
		metadata:  metadata,
		comments:  comments,
		completer: completer,
	}
}

// Analyze runs the full pipeline for one video URL.
//
// Error contract (the handler maps these to HTTP statuses):
//   - youtube.ErrNoVideoID      — unparseable URL
//   - youtube.ErrVideoNotFound  — catalog has no item for the ID
//   - *MalformedOutputError     — completion failed the strict decode
//   - anything else             — provider/network failure
//
// Either a full, schema-conformant report is returned, or none is.
func (s *Service) Analyze(ctx context.Context, videoURL string) (*models.AnalysisReport, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.metadata.VideoMetadata(ctx, videoID)
	if err != nil {
		return nil, err
	}

	// The declared comment count caps retrieval; the real number of pages
	// is whatever the source actually yields.
	limit := int64(meta.CommentCount)
	if limit > youtube.MaxAnalyzedComments {
		limit = youtube.MaxAnalyzedComments
	}

	comments, err := s.comments.Comments(ctx, videoID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	prompt := BuildPrompt(meta, comments)

	log.Printf("🤖 Analyzing %s: %d comments in prompt (declared %d)", videoID, len(comments), meta.CommentCount)

	completion, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analysis completion failed: %w", err)
	}

	out, err := decodeCompletion(completion)
	if err != nil {
		return nil, err
	}

	return projectReport(out, comments), nil
}
