// ABOUTME: Chat command for one-shot and interactive conversations
// ABOUTME: Runs messages through the pipeline and prints the reply
package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/chef-pipeline/internal/config"
	"github.com/harper/chef-pipeline/internal/core"
	"github.com/harper/chef-pipeline/internal/models"
)

var chatSessionID string

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to Chef Jeff",
		Long: `Talk to Chef Jeff.

With a message argument, sends one message and prints the reply.
Without arguments, starts an interactive conversation; type "exit"
or "quit" to leave.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChat,
		Example: `  chef chat "recipe for tomato soup"
  chef chat --session dinner-plans "what temperature for roast chicken"
  chef chat`,
	}

	cmd.Flags().StringVar(&chatSessionID, "session", "", "Session ID (random per run when omitted)")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Chat output is the conversation; logs only appear with --verbose
	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer func() { _ = logger.Sync() }()

	orchestrator, cleanup, err := buildOrchestrator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sessionID := chatSessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("cli_%s", uuid.New().String()[:8])
	}

	if len(args) > 0 {
		return chatOnce(cmd, orchestrator, sessionID, args[0])
	}
	return chatInteractive(cmd, orchestrator, sessionID)
}

func chatOnce(cmd *cobra.Command, orchestrator *core.Orchestrator, sessionID, message string) error {
	envelope := orchestrator.Process(cmd.Context(), sessionID, message)
	printEnvelope(cmd, envelope)
	return nil
}

func chatInteractive(cmd *cobra.Command, orchestrator *core.Orchestrator, sessionID string) error {
	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintf(out, "Chatting with Chef Jeff (session %s). Type 'exit' to leave.\n\n", sessionID)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}

		envelope := orchestrator.Process(context.Background(), sessionID, line)
		printEnvelope(cmd, envelope)
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

func printEnvelope(cmd *cobra.Command, envelope *models.ResponseEnvelope) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, envelope.Text)

	if verbose {
		fmt.Fprintf(out, "\n[status=%s path=%s mood=%s attempts=%d elapsed=%s]\n",
			envelope.Status, envelope.Routing.Path, envelope.Mood,
			envelope.Attempts, envelope.Elapsed.Round(time.Millisecond))
		if envelope.Diagnostic != "" {
			fmt.Fprintf(out, "[diagnostic: %s]\n", envelope.Diagnostic)
		}
	}
}
