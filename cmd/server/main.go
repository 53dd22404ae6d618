// Package main is the entry point for the ViewLens API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viewlens/viewlens-api/internal/config"
	"github.com/viewlens/viewlens-api/internal/database"
	"github.com/viewlens/viewlens-api/internal/router"
	"github.com/viewlens/viewlens-api/internal/services/analysis"
	"github.com/viewlens/viewlens-api/internal/services/gemini"
	"github.com/viewlens/viewlens-api/internal/services/youtube"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 ViewLens API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, model=%s", cfg.Port, cfg.GinMode, cfg.GeminiModel)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Run migrations
	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Create Services
	ctx := context.Background()

	ytClient, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("❌ Failed to create YouTube client: %v", err)
	}
	log.Println("✅ YouTube Data API client created")

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}
	log.Printf("✅ Gemini client created (model %s)", geminiClient.Model())

	analyzer := analysis.New(ytClient, ytClient, geminiClient)

	// Step 4: Setup HTTP Router
	r := router.Setup(db, analyzer, cfg.JWTSecret, cfg.AnalysisRateLimit, cfg.AllowedOrigins, Version)

	// Step 5: Start the HTTP Server
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// A full pipeline run (comment pagination + one Gemini completion)
		// can take a while; the write timeout has to cover it.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
