// ABOUTME: Serve command runs the HTTP API
// ABOUTME: Starts the chi server with graceful shutdown on SIGINT/SIGTERM
package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/chef-pipeline/internal/config"
	"github.com/harper/chef-pipeline/internal/httpapi"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Endpoints:
  POST /api/chat            - send a message, receive the response envelope
  GET  /api/chat/stream     - same, streamed as server-sent events
  GET  /api/health          - liveness probe
  GET  /api/persona/status  - persona dials and mood for a session`,
		RunE: runServe,
		Example: `  chef serve
  chef serve --addr :9000
  CHEF_SESSION_BACKEND=sqlite chef serve`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides CHEF_LISTEN_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	orchestrator, cleanup, err := buildOrchestrator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	server := httpapi.NewServer(orchestrator, logger, cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
