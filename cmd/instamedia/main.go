// Package main is the entry point for the InstaMedia workstation server.
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

	"instamedia/internal/cache"
	"instamedia/internal/config"
	"instamedia/internal/engine"
	"instamedia/internal/handlers"
	"instamedia/internal/pipeline"
	"instamedia/internal/router"
	"instamedia/internal/session"
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
		"engine", cfg.EngineURL,
		"brand", cfg.BrandID,
	)

	// Connect to Valkey (session store + post cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	sessionStore := session.NewStore(valkeyClient)

	// Short-TTL cache for engine post reads.
	postCache := cache.NewPostCache(valkeyClient, cache.DefaultPostTTL)

	// HTTP client for the remote AI engine.
	eng := engine.NewClient(cfg.EngineURL)

	// Per-session studio pipeline controllers.
	pipelines := pipeline.NewManager(eng, cfg.BrandID)

	// Handlers and routing.
	h := handlers.New(eng, sessionStore, postCache, pipelines, cfg.BrandID)
	r := router.New(h)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate the endpoints that wait on LLM responses
	// (typically 10-30s, up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
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
