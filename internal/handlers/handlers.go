// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, String, Status)
// - Middleware data (c.Get/c.Set)
//
// We group related handlers into a struct (Handler) that holds shared
// dependencies, injected explicitly at construction.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viewlens/viewlens-api/internal/database"
	"github.com/viewlens/viewlens-api/internal/models"
)

// Analyzer runs the analysis pipeline for one video URL.
// The analysis.Service satisfies this; tests swap in a fake.
type Analyzer interface {
	Analyze(ctx context.Context, videoURL string) (*models.AnalysisReport, error)
}

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy — just create a Handler with mock dependencies.
type Handler struct {
	DB        *database.DB
	Analyzer  Analyzer
	JWTSecret string
	Version   string
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db *database.DB, analyzer Analyzer, jwtSecret, version string) *Handler {
	return &Handler{
		DB:        db,
		Analyzer:  analyzer,
		JWTSecret: jwtSecret,
		Version:   version,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	// Check database connectivity
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  h.Version,
		Database: dbStatus,
	})
}
