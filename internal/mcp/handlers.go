// ABOUTME: MCP tool handler implementations for the chef pipeline
// ABOUTME: Maps tool calls onto the orchestrator and session snapshots
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/chef-pipeline/internal/core"
	"github.com/harper/chef-pipeline/internal/models"
)

// Handlers contains the handler functions for the MCP tools
type Handlers struct {
	orchestrator *core.Orchestrator
}

// ChefChat handles the chef_chat tool
func (h *Handlers) ChefChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id argument is required and must be a string"), nil
	}
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	envelope := h.orchestrator.Process(ctx, sessionID, message)

	response := map[string]interface{}{
		"request_id": envelope.RequestID,
		"session_id": envelope.SessionID,
		"reply":      envelope.Text,
		"status":     string(envelope.Status),
		"path":       string(envelope.Routing.Path),
		"mood":       string(envelope.Mood),
		"attempts":   envelope.Attempts,
		"elapsed_ms": envelope.Elapsed.Milliseconds(),
	}
	if envelope.Quality != nil {
		response["quality_passed"] = envelope.Quality.Passed
	}
	if envelope.Diagnostic != "" {
		response["diagnostic"] = envelope.Diagnostic
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// PersonaStatus handles the persona_status tool
func (h *Handlers) PersonaStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id argument is required and must be a string"), nil
	}

	sess, err := h.orchestrator.SessionSnapshot(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load session: %v", err)), nil
	}
	if sess == nil {
		// Report the defaults a fresh session would start with
		sess = models.NewSession(sessionID)
	}

	response := map[string]interface{}{
		"session_id": sessionID,
		"mood":       string(sess.Persona.CurrentMood),
		"turn_count": len(sess.Turns),
		"persona": map[string]interface{}{
			"motif_obsession":         sess.Persona.MotifObsession,
			"romantic_intensity":      sess.Persona.RomanticIntensity,
			"energy_level":            sess.Persona.EnergyLevel,
			"creativity_multiplier":   sess.Persona.CreativityMultiplier,
			"professional_adaptation": sess.Persona.ProfessionalAdaptation,
			"last_updated":            sess.Persona.LastUpdated.Format(time.RFC3339),
		},
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
