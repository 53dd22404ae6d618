package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/viewlens/viewlens-api/internal/models"
	"github.com/viewlens/viewlens-api/internal/services/analysis"
	"github.com/viewlens/viewlens-api/internal/services/youtube"
)

type fakeAnalyzer struct {
	report *models.AnalysisReport
	err    error

	gotURL string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, videoURL string) (*models.AnalysisReport, error) {
	f.gotURL = videoURL
	return f.report, f.err
}

func postAnalysis(t *testing.T, analyzer Analyzer, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &Handler{Analyzer: analyzer}

	r := gin.New()
	r.POST("/api/v1/analysis", h.AnalyzeVideo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeVideo_Success(t *testing.T) {
	analyzer := &fakeAnalyzer{report: &models.AnalysisReport{
		VideoID:               "dQw4w9WgXcQ",
		Title:                 "Test Video",
		Summary:               "Viewers liked it.",
		AnalyzedCommentsCount: 3,
	}}

	w := postAnalysis(t, analyzer, `{"videoUrl": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if analyzer.gotURL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("analyzer received %q", analyzer.gotURL)
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if report.VideoID != "dQw4w9WgXcQ" || report.AnalyzedCommentsCount != 3 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestAnalyzeVideo_MissingBody(t *testing.T) {
	analyzer := &fakeAnalyzer{}

	w := postAnalysis(t, analyzer, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if analyzer.gotURL != "" {
		t.Error("analyzer should not run without a videoUrl")
	}
}

func TestAnalyzeVideo_BadURL(t *testing.T) {
	analyzer := &fakeAnalyzer{err: youtube.ErrNoVideoID}

	w := postAnalysis(t, analyzer, `{"videoUrl": "https://example.com/nope"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Error != "invalid_video_url" {
		t.Errorf("error = %q, want invalid_video_url", resp.Error)
	}
}

func TestAnalyzeVideo_VideoNotFound(t *testing.T) {
	analyzer := &fakeAnalyzer{err: youtube.ErrVideoNotFound}

	w := postAnalysis(t, analyzer, `{"videoUrl": "https://www.youtube.com/watch?v=AAAAAAAAAAA"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAnalyzeVideo_MalformedModelOutput(t *testing.T) {
	analyzer := &fakeAnalyzer{err: &analysis.MalformedOutputError{
		Raw: "Sorry, I can't process this video.",
		Err: errors.New("invalid character 'S'"),
	}}

	w := postAnalysis(t, analyzer, `{"videoUrl": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp models.MalformedOutputResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	// The raw completion travels to the client verbatim for diagnosis.
	if resp.Raw != "Sorry, I can't process this video." {
		t.Errorf("raw = %q, want the original completion text", resp.Raw)
	}
}

func TestAnalyzeVideo_ProviderFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("gemini request failed: 503")}

	w := postAnalysis(t, analyzer, `{"videoUrl": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp models.AnalysisFailureResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Message != "Failed to analyze video" {
		t.Errorf("message = %q", resp.Message)
	}
	if !strings.Contains(resp.Error, "gemini request failed") {
		t.Errorf("error detail missing, got %q", resp.Error)
	}
}
