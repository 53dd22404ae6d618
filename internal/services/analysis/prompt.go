// prompt.go renders metadata, engagement ratios and the comment batch into
// one bounded instruction document with an explicit output-schema contract.
package analysis

import (
	"fmt"
	"strings"

	"github.com/viewlens/viewlens-api/internal/models"
	"github.com/viewlens/viewlens-api/internal/services/youtube"
)

// BuildPrompt is a pure function from (metadata, ordered comments) to the
// analysis instruction document.
//
// Invariant: the count declared in the document always equals the number of
// comments actually enumerated — both come from len(comments), so there is
// no way for them to drift apart.
func BuildPrompt(meta *models.VideoMetadata, comments []models.RawComment) string {
	var b strings.Builder

	n := len(comments)

	fmt.Fprintf(&b, `You are an expert YouTube content analyst AI. Analyze the following video using metadata and top viewer comments. Your analysis will power a frontend dashboard, so keep output clean and structured for direct display.

Video Details:
- Video URL: %s
- Video ID: %s
- Title: %s
- Description: %s
- Published At: %s
- Channel Name: %s

Engagement Stats:
- Views: %d
- Likes: %d
- Total Comments: %d
- Like-to-View Ratio: %s
- Comment-to-View Ratio: %s

Top Viewer Comments (exactly %d comments listed below; base ALL comment-related analysis only on these %d comments):
`,
		youtube.WatchURL(meta.VideoID),
		meta.VideoID,
		meta.Title,
		meta.Description,
		meta.PublishedAt,
		meta.ChannelName,
		meta.Views,
		meta.Likes,
		meta.CommentCount,
		engagementRatio(meta.Likes, meta.Views),
		engagementRatio(meta.CommentCount, meta.Views),
		n, n,
	)

	// 1-based enumeration, platform order preserved.
	for i, c := range comments {
		fmt.Fprintf(&b, "%d. %s (by %s)\n", i+1, c.TextDisplay, c.AuthorDisplayName)
	}

	b.WriteString(`
Return a JSON response with these keys, structured exactly as shown:

{
  "videoId": "string",
  "videoUrl": "string",
  "title": "string",
  "channelName": "string",
  "publishedAt": "string",
  "views": number,
  "likes": number,
  "totalComments": number,
  "likeToViewRatio": "string (in %)",
  "commentToViewRatio": "string (in %)",

  "sentimentBreakdown": {
    "positive": number,
    "neutral": number,
    "negative": number
  },

  "topPositiveComments": [
    { "user": "string", "comment": "string" }
  ],

  "topNegativeComments": [
    { "user": "string", "comment": "string" }
  ],

  "keyThemes": [
    "string"
  ],

  "suggestionsAndPraise": [
    "string"
  ],

  "userQuestions": [
    "string"
  ],

  "videoSuggestionsByViewers": [
    "string"
  ],

  "aiRecommendation": [
    "string"
  ],

  "summary": "string"
}`)

	return b.String()
}

// engagementRatio formats numerator/denominator as a percentage with two
// decimal places. A zero denominator yields "0.00%" — an unrated video has
// no meaningful ratio, and a non-finite literal would only confuse the
// model downstream.
func engagementRatio(numerator, denominator uint64) string {
	if denominator == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(numerator)/float64(denominator)*100)
}
