// report.go projects the validated model output into the outward-facing
// report.
package analysis

import (
	"github.com/viewlens/viewlens-api/internal/models"
	"github.com/viewlens/viewlens-api/internal/services/youtube"
)

// projectReport copies exactly the whitelisted field set from the decoded
// model output into the report. Nothing else the model may have emitted can
// reach the dashboard — defensive against prompt-injection-style field
// stuffing.
//
// Two fields are ground truth owned by the pipeline, not the model:
//   - AnalyzedCommentsCount is the number of comments actually placed into
//     the prompt, regardless of what the model echoes back.
//   - CommentsAnalyzed attaches the full raw batch, but only when the
//     analyzed set is small enough to keep the payload bounded.
func projectReport(out *modelOutput, comments []models.RawComment) *models.AnalysisReport {
	report := &models.AnalysisReport{
		VideoURL:           out.VideoURL,
		VideoID:            out.VideoID,
		ChannelName:        out.ChannelName,
		Title:              out.Title,
		PublishedAt:        out.PublishedAt,
		Views:              out.Views,
		Likes:              out.Likes,
		TotalComments:      out.TotalComments,
		LikeToViewRatio:    out.LikeToViewRatio,
		CommentToViewRatio: out.CommentToViewRatio,
		SentimentBreakdown: out.SentimentBreakdown,

		TopPositiveComments: out.TopPositiveComments,
		TopNegativeComments: out.TopNegativeComments,

		KeyThemes:                 out.KeyThemes,
		SuggestionsAndPraise:      out.SuggestionsAndPraise,
		UserQuestions:             out.UserQuestions,
		VideoSuggestionsByViewers: out.VideoSuggestionsByViewers,
		AIRecommendation:          out.AIRecommendation,

		Summary: out.Summary,

		AnalyzedCommentsCount: len(comments),
	}

	if len(comments) < youtube.MaxAnalyzedComments {
		// Below the cap the field is always present, even for a video with
		// no comments at all — the dashboard renders an empty list, not a
		// missing section. Force a non-nil slice so it serializes as [].
		if comments == nil {
			comments = []models.RawComment{}
		}
		report.CommentsAnalyzed = comments
	}

	return report
}
