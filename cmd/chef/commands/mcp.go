// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to chat with the chef pipeline via stdio
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/chef-pipeline/internal/config"
	"github.com/harper/chef-pipeline/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs the chef pipeline as an MCP (Model Context Protocol) server over
stdio, exposing chef_chat and persona_status tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by an agent host)
  chef mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "chef": {
  #       "command": "chef",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Stdio carries the protocol; logs must stay off stdout
	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	orchestrator, cleanup, err := buildOrchestrator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	server := mcpserver.NewMCPServer(
		"Chef Pipeline",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, orchestrator)

	if !quiet {
		log.Println("Chef MCP server starting on stdio...")
	}
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}
