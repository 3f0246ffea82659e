// Package main is the entry point for the CoverPress API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coverpress/internal/articles"
	"coverpress/internal/cache"
	"coverpress/internal/config"
	"coverpress/internal/database"
	"coverpress/internal/feed"
	"coverpress/internal/handlers"
	"coverpress/internal/imaging"
	"coverpress/internal/media"
	"coverpress/internal/router"
	"coverpress/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. The API works without it — responses just stop
	// being cached — so a connection failure downgrades, not aborts.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, response caching disabled", "error", err)
		valkeyClient = nil
	} else {
		defer valkeyClient.Close()
	}
	responseCache := cache.NewResponseCache(valkeyClient, cfg.CacheTTL)

	// Connect to S3-compatible object storage (optional — media references
	// pass through unresolved without it).
	var mediaClient *media.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		mediaClient, err = media.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.MediaBaseURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured — media URLs served as stored")
	}
	mediaResolver := media.NewResolver(mediaClient)

	// libvips backs the admin upload pipeline's WebP variant generation.
	if mediaClient != nil {
		imaging.Startup(0)
		defer imaging.Shutdown()
	}

	// Initialize data stores.
	mainPageStore := store.NewMainPageStore(db)
	categoryStore := store.NewCategoryStore(db)
	articleStore := store.NewArticleStore(db)
	pageStore := store.NewPageStore(db)
	sectionStore := store.NewSectionStore(db)
	companyStore := store.NewCompanyStore(db)
	siteStore := store.NewSiteStore(db)
	contactStore := store.NewContactStore(db)

	// Domain services.
	feedService := feed.NewService(articleStore, categoryStore, mediaResolver)
	articleService := articles.NewService(articleStore, categoryStore)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(
		mainPageStore, categoryStore, articleStore, pageStore, sectionStore,
		companyStore, siteStore, contactStore, feedService, mediaResolver,
	)
	adminHandlers := handlers.NewAdmin(
		articleService, articleStore, mainPageStore, categoryStore, pageStore,
		sectionStore, companyStore, siteStore, contactStore, mediaClient, responseCache,
	)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, adminHandlers, responseCache, cfg.FrontendOrigin)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
