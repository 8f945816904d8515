package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pr-notes/config"
	_ "pr-notes/docs" // Swagger docs
	"pr-notes/internal/httpserver"
	"pr-notes/internal/note/repository/notestore"
	"pr-notes/internal/note/usecase"
	"pr-notes/pkg/log"
)

// @title       PR Notes API
// @description Session-scoped client for a note store whose notes can link to GitHub pull requests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting PR Notes API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Note store URL: %s", cfg.NoteStore.URL)
	if cfg.NoteStore.AccessToken == "" {
		logger.Warn(ctx, "No default note store token: sessions must send their own bearer token")
	}

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		NoteStore: notestore.Config{
			BaseURL:         cfg.NoteStore.URL,
			AccessToken:     cfg.NoteStore.AccessToken,
			Timeout:         cfg.NoteStore.Timeout,
			RateLimitPerSec: cfg.NoteStore.RateLimitPerSec,
			RateBurst:       cfg.NoteStore.RateBurst,
		},
		Session: usecase.Config{
			MaxSessions:     cfg.Session.MaxSessions,
			SessionTTL:      cfg.Session.TTL,
			DefaultPageSize: cfg.Collection.DefaultPageSize,
		},
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
