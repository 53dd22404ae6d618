// sanitize.go is the strict decode boundary between the model's free-form
// completion and the typed report.
//
// Models routinely wrap JSON in a fenced code block even when told not to.
// We strip a single leading/trailing fence (language-tagged or bare), trim,
// and decode. Anything that still doesn't parse is rejected loudly with the
// raw text attached — malformed model output must never partially succeed.
package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viewlens/viewlens-api/internal/models"
)

// MalformedOutputError reports a completion that could not be decoded.
// It carries the raw, unparsed text for operator diagnosis — the call to
// the model succeeded, its payload is just unusable, which is a different
// failure from a provider error.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("model completion is not valid JSON: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// modelOutput is the decoded shape of the completion. Fields the model adds
// beyond these are dropped by the decoder — this struct IS the whitelist.
type modelOutput struct {
	VideoID            string                    `json:"videoId"`
	VideoURL           string                    `json:"videoUrl"`
	Title              string                    `json:"title"`
	ChannelName        string                    `json:"channelName"`
	PublishedAt        string                    `json:"publishedAt"`
	Views              int64                     `json:"views"`
	Likes              int64                     `json:"likes"`
	TotalComments      int64                     `json:"totalComments"`
	LikeToViewRatio    string                    `json:"likeToViewRatio"`
	CommentToViewRatio string                    `json:"commentToViewRatio"`
	SentimentBreakdown models.SentimentBreakdown `json:"sentimentBreakdown"`

	TopPositiveComments []models.CommentExcerpt `json:"topPositiveComments"`
	TopNegativeComments []models.CommentExcerpt `json:"topNegativeComments"`

	KeyThemes                 []string `json:"keyThemes"`
	SuggestionsAndPraise      []string `json:"suggestionsAndPraise"`
	UserQuestions             []string `json:"userQuestions"`
	VideoSuggestionsByViewers []string `json:"videoSuggestionsByViewers"`
	AIRecommendation          []string `json:"aiRecommendation"`

	Summary string `json:"summary"`
}

// decodeCompletion strips an optional code fence and decodes the remainder.
// On any decode or validation failure it returns a *MalformedOutputError
// carrying the original, unstripped completion text.
func decodeCompletion(completion string) (*modelOutput, error) {
	cleaned := stripCodeFence(completion)

	var out modelOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &MalformedOutputError{Raw: completion, Err: err}
	}

	// Schema sanity: the tri-count is required to be non-negative.
	sb := out.SentimentBreakdown
	if sb.Positive < 0 || sb.Neutral < 0 || sb.Negative < 0 {
		return nil, &MalformedOutputError{
			Raw: completion,
			Err: fmt.Errorf("sentimentBreakdown contains negative counts (%d/%d/%d)", sb.Positive, sb.Neutral, sb.Negative),
		}
	}

	return &out, nil
}

// stripCodeFence removes one leading/trailing markdown code fence, if
// present. Both the language-tagged form (```json) and the bare form (```)
// are recognized. Text without a fence is returned trimmed and otherwise
// untouched.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	default:
		return s
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
