// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization —
// no ORM magic. The database package handles persistence for the few durable
// entities (users); everything the analysis pipeline produces is
// request-scoped and never touches the database.
//
// JSON tags control how struct fields are serialized. The `db` tags work
// with sqlx for database column mapping.
package models

import "time"

// User represents an account that can request analyses.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // "-" means never serialize to JSON
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// --- Request/Response DTOs ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps the API contract independent of the database schema.

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register/login/refresh.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AnalyzeRequest is the JSON body for POST /api/v1/analysis.
type AnalyzeRequest struct {
	VideoURL string `json:"videoUrl" binding:"required"`
}

// ErrorResponse is a standard error format for auth/validation errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MalformedOutputResponse is returned when the model's completion could not
// be decoded as JSON. The raw completion text is attached verbatim so an
// operator can see exactly what the model said.
type MalformedOutputResponse struct {
	Message string `json:"message"`
	Raw     string `json:"raw"`
}

// AnalysisFailureResponse is returned for any other pipeline failure
// (provider network errors, Gemini errors).
type AnalysisFailureResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// --- Pipeline data model ---
// All of these are request-scoped values owned by the request that created
// them. None is ever persisted.

// VideoMetadata holds the snippet + statistics facets for one video.
// The Data API returns the counters as numeric strings on the wire; the
// client library coerces them to uint64 before they reach us, so ratio
// arithmetic is safe here.
type VideoMetadata struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt"` // RFC 3339, as the API returns it
	ChannelName  string `json:"channelName"`
	Views        uint64 `json:"views"`
	Likes        uint64 `json:"likes"`
	CommentCount uint64 `json:"commentCount"`
}

// RawComment is one top-level comment as fetched, in platform order.
// The pipeline never re-sorts comments: page order, then in-page order.
type RawComment struct {
	TextDisplay       string `json:"textDisplay"`
	AuthorDisplayName string `json:"authorDisplayName"`
}

// CommentExcerpt is a {user, comment} pair the model picked out.
type CommentExcerpt struct {
	User    string `json:"user"`
	Comment string `json:"comment"`
}

// SentimentBreakdown is the tri-count over the analyzed comment batch.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// AnalysisReport is the outward-facing report consumed by the dashboard.
// Field names are the dashboard's contract — do not rename.
//
// Everything except AnalyzedCommentsCount and CommentsAnalyzed is projected
// from the validated model output; those two are ground truth set by the
// pipeline itself.
type AnalysisReport struct {
	VideoURL           string             `json:"videoUrl"`
	VideoID            string             `json:"videoId"`
	ChannelName        string             `json:"channelName"`
	Title              string             `json:"title"`
	PublishedAt        string             `json:"publishedAt"`
	Views              int64              `json:"views"`
	Likes              int64              `json:"likes"`
	TotalComments      int64              `json:"totalComments"`
	LikeToViewRatio    string             `json:"likeToViewRatio"`
	CommentToViewRatio string             `json:"commentToViewRatio"`
	SentimentBreakdown SentimentBreakdown `json:"sentimentBreakdown"`

	TopPositiveComments []CommentExcerpt `json:"topPositiveComments"`
	TopNegativeComments []CommentExcerpt `json:"topNegativeComments"`

	KeyThemes                 []string `json:"keyThemes"`
	SuggestionsAndPraise      []string `json:"suggestionsAndPraise"`
	UserQuestions             []string `json:"userQuestions"`
	VideoSuggestionsByViewers []string `json:"videoSuggestionsByViewers"`
	AIRecommendation          []string `json:"aiRecommendation"`

	Summary string `json:"summary"`

	// AnalyzedCommentsCount is the number of comments actually placed into
	// the prompt — never the model's own claim.
	AnalyzedCommentsCount int `json:"analyzedCommentsCount"`

	// CommentsAnalyzed carries the full raw comment batch, attached only
	// when AnalyzedCommentsCount < 1000 so the payload stays bounded.
	// omitzero (not omitempty): a zero-comment video still gets the field,
	// as an empty array — only a nil slice (batch at the cap) omits it.
	CommentsAnalyzed []RawComment `json:"commentsAnalyzed,omitzero"`
}
