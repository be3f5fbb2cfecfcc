// ABOUTME: Turn represents a single message within a session's conversation
// ABOUTME: Role is either "user" or "chef"; turns are append-only history
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Turn roles
const (
	RoleUser = "user"
	RoleChef = "chef"
)

// Turn represents a single conversation message
type Turn struct {
	TurnID    string    `json:"turn_id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTurn creates a new Turn with validation
func NewTurn(role, text string) (*Turn, error) {
	if role != RoleUser && role != RoleChef {
		return nil, fmt.Errorf("invalid turn role %q", role)
	}
	if strings.TrimSpace(text) == "" && role == RoleUser {
		return nil, errors.New("user turn text cannot be empty")
	}
	return &Turn{
		TurnID:    generateTurnID(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}, nil
}

// generateTurnID generates a unique turn identifier
func generateTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
