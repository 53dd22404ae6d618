// analysis.go handles the video analysis HTTP endpoint.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viewlens/viewlens-api/internal/middleware"
	"github.com/viewlens/viewlens-api/internal/models"
	"github.com/viewlens/viewlens-api/internal/services/analysis"
	"github.com/viewlens/viewlens-api/internal/services/youtube"
)

// AnalyzeVideo runs the full analysis pipeline for one video URL and returns
// the report. Synchronous: the client waits for the whole pipeline, there is
// no job queue and nothing is stored.
// POST /api/v1/analysis
//
// Error mapping:
//   - unparseable URL            → 400
//   - video not found            → 404
//   - undecodable model output   → 500 {message, raw}
//   - anything else              → 500 {message, error}
func (h *Handler) AnalyzeVideo(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "videoUrl is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if user := middleware.GetUser(c); user != nil {
		log.Printf("📊 Analysis requested by %s: %s", user.Email, req.VideoURL)
	}

	report, err := h.Analyzer.Analyze(c.Request.Context(), req.VideoURL)
	if err != nil {
		h.renderAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// renderAnalysisError maps pipeline errors onto the response contract.
func (h *Handler) renderAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, youtube.ErrNoVideoID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_video_url",
			Message: "Could not extract a video ID from the provided URL",
			Code:    http.StatusBadRequest,
		})

	case errors.Is(err, youtube.ErrVideoNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "video_not_found",
			Message: "No video exists for the provided URL",
			Code:    http.StatusNotFound,
		})

	default:
		var malformed *analysis.MalformedOutputError
		if errors.As(err, &malformed) {
			// The model answered, but not with usable JSON. Return the raw
			// completion so an operator can see what it actually said.
			log.Printf("❌ Malformed model output: %v", malformed.Err)
			c.JSON(http.StatusInternalServerError, models.MalformedOutputResponse{
				Message: "AI response was not valid JSON",
				Raw:     malformed.Raw,
			})
			return
		}

		log.Printf("❌ Analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.AnalysisFailureResponse{
			Message: "Failed to analyze video",
			Error:   err.Error(),
		})
	}
}
