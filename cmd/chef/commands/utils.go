// ABOUTME: Shared wiring helpers for CLI commands
// ABOUTME: Builds the pipeline stack from configuration
package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/harper/chef-pipeline/internal/config"
	"github.com/harper/chef-pipeline/internal/core"
	"github.com/harper/chef-pipeline/internal/llm"
	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
	"github.com/harper/chef-pipeline/internal/session"
)

// newLogger picks a logger matching the global verbosity flags
func newLogger() (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildOrchestrator assembles the full pipeline from configuration.
// The returned cleanup closes the session store.
func buildOrchestrator(cfg *config.Config, logger *zap.Logger) (*core.Orchestrator, func(), error) {
	if cfg.OpenAIKey == "" {
		return nil, nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	generator, err := llm.NewClient(cfg.OpenAIKey, cfg.ChatModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	var store session.Store
	switch cfg.SessionBackend {
	case "sqlite":
		store, err = session.NewSQLiteStore(cfg.SQLitePath, cfg.SessionTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open session database: %w", err)
		}
	default:
		store = session.NewMemoryStore(cfg.SessionTTL)
	}

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

	// Saved persona overrides shape the dials new sessions start with
	overrides, err := persona.LoadOverrides()
	if err != nil {
		logger.Warn("ignoring unreadable persona overrides", zap.Error(err))
	} else if overrides != nil {
		params := models.DefaultPersonaParameters()
		overrides.Apply(&params)
		orchestrator.SetDefaultPersona(params)
	}

	cleanup := func() { _ = store.Close() }
	return orchestrator, cleanup, nil
}
