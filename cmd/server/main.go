// ABOUTME: Main entry point for the chef pipeline HTTP server
// ABOUTME: Wires config, pipeline, and chi transport with graceful shutdown
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/harper/chef-pipeline/internal/config"
	"github.com/harper/chef-pipeline/internal/core"
	"github.com/harper/chef-pipeline/internal/httpapi"
	"github.com/harper/chef-pipeline/internal/llm"
	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
	"github.com/harper/chef-pipeline/internal/session"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	generator, err := llm.NewClient(cfg.OpenAIKey, cfg.ChatModel)
	if err != nil {
		logger.Fatal("failed to create generation client", zap.Error(err))
	}

	var store session.Store
	switch cfg.SessionBackend {
	case "sqlite":
		store, err = session.NewSQLiteStore(cfg.SQLitePath, cfg.SessionTTL)
		if err != nil {
			logger.Fatal("failed to open session database", zap.Error(err))
		}
	default:
		store = session.NewMemoryStore(cfg.SessionTTL)
	}
	defer func() { _ = store.Close() }()

	profile := persona.Default()
	orchestrator := core.NewOrchestrator(
		store,
		core.NewClassifier(),
		core.NewEnricher(profile, cfg.HistoryWindow),
		core.NewRouter(cfg.ConfidenceFloor),
		core.NewSynthesizer(generator, profile, cfg.BaseTemp, cfg.TempStep, cfg.GenTimeout),
		core.NewValidator(profile, cfg.ConsistencyThreshold, cfg.ThemeThresholdBase, cfg.StyleThresholdBase),
		core.NewFormatter(profile),
		profile,
		cfg.MaxAttempts,
		cfg.RetryDelay,
		logger,
	)

	if overrides, err := persona.LoadOverrides(); err != nil {
		logger.Warn("ignoring unreadable persona overrides", zap.Error(err))
	} else if overrides != nil {
		params := models.DefaultPersonaParameters()
		overrides.Apply(&params)
		orchestrator.SetDefaultPersona(params)
	}

	server := httpapi.NewServer(orchestrator, logger, cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", zap.Error(err))
	}
}
