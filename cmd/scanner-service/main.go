package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/extractor"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/handler"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/service"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/storage"
	"github.com/rajpal07/self-exclusion-app/pkg/config"
	"github.com/rajpal07/self-exclusion-app/pkg/httputil"
	"github.com/rajpal07/self-exclusion-app/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("scanner-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("scanner-service", cfg.Server.Environment)
	log.Info().Msg("starting Scanner Service")

	// Initialize the extraction engine
	opts := []extractor.Option{
		extractor.WithAgeBounds(cfg.Extraction.MinimumAge, cfg.Extraction.MaxAgeYears),
	}
	if len(cfg.Extraction.Exclusions) > 0 {
		opts = append(opts, extractor.WithExclusions(extractor.ExclusionList(cfg.Extraction.Exclusions)))
	}
	ex := extractor.New(opts...)

	// Initialize storage and service
	store := storage.NewScanStore(cfg.Extraction.ScanTTL)
	scanService := service.NewService(ex, store, log)
	scanHandler := handler.NewHandler(scanService, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "scanner-service",
		})
	})

	// API routes
	r.Route("/api/v1/scans", func(r chi.Router) {
		r.Post("/", scanHandler.Scan)
		r.Get("/{scanId}", scanHandler.GetScan)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
