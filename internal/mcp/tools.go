// ABOUTME: MCP tool definitions and registration for the chef pipeline server
// ABOUTME: Exposes chef_chat and persona_status over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/chef-pipeline/internal/core"
)

// RegisterTools registers the pipeline tools with the MCP server
func RegisterTools(server *mcpserver.MCPServer, orchestrator *core.Orchestrator) *Handlers {
	handlers := &Handlers{
		orchestrator: orchestrator,
	}

	// chef_chat - run one user message through the full pipeline
	server.AddTool(mcp.Tool{
		Name:        "chef_chat",
		Description: "Send a message to Chef Jeff and receive a persona-styled reply. Maintains per-session conversation history and mood.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier; a new session is created on first use",
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message to process",
				},
			},
			Required: []string{"session_id", "message"},
		},
	}, handlers.ChefChat)

	// persona_status - inspect persona dials and mood for a session
	server.AddTool(mcp.Tool{
		Name:        "persona_status",
		Description: "Get the current persona parameters and mood for a session, plus turn count.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier",
				},
			},
			Required: []string{"session_id"},
		},
	}, handlers.PersonaStatus)

	return handlers
}
