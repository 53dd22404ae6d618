// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/viewlens/viewlens-api/internal/database"
	"github.com/viewlens/viewlens-api/internal/handlers"
	"github.com/viewlens/viewlens-api/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(db *database.DB, analyzer handlers.Analyzer, jwtSecret string, analysisRateLimit int, allowedOrigins []string, version string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(allowedOrigins))

	h := handlers.NewHandler(db, analyzer, jwtSecret, version)
	rateLimiter := middleware.NewRateLimiter()

	// --- Public Routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)

	// --- Auth Routes — public ---
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)

	// --- JWT-protected routes ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(db, jwtSecret))
	{
		protected.GET("/auth/me", h.GetMe)
		protected.POST("/auth/refresh", h.RefreshToken)

		// Each analysis is a full pipeline run against two paid APIs, so
		// this route alone is rate limited per user.
		protected.POST("/analysis", rateLimiter.RateLimit(analysisRateLimit), h.AnalyzeVideo)
	}

	return r
}
