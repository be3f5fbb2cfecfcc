// ABOUTME: Session holds one conversation's history and persona parameters
// ABOUTME: Owned by the session store; mutated only by the orchestrator at turn boundaries
package models

import "time"

// Session is the per-conversation aggregate. No state is shared across
// sessions; the orchestrator commits updates atomically at the end of a
// pipeline run.
type Session struct {
	SessionID    string            `json:"session_id"`
	Turns        []Turn            `json:"turns,omitempty"`
	Persona      PersonaParameters `json:"persona"`
	CreatedAt    time.Time         `json:"created_at"`
	LastAccessed time.Time         `json:"last_accessed"`
}

// NewSession creates a session with default persona parameters
func NewSession(sessionID string) *Session {
	now := time.Now().UTC()
	return &Session{
		SessionID:    sessionID,
		Persona:      DefaultPersonaParameters(),
		CreatedAt:    now,
		LastAccessed: now,
	}
}

// AppendTurn adds a turn to the session history and touches the access time
func (s *Session) AppendTurn(turn Turn) {
	s.Turns = append(s.Turns, turn)
	s.LastAccessed = time.Now().UTC()
}

// RecentTurns returns up to n of the most recent turns, oldest first
func (s *Session) RecentTurns(n int) []Turn {
	if n <= 0 || len(s.Turns) == 0 {
		return nil
	}
	if len(s.Turns) <= n {
		return s.Turns
	}
	return s.Turns[len(s.Turns)-n:]
}

// Clone returns a deep copy so a pipeline run can work on a snapshot
// without touching the stored session
func (s *Session) Clone() *Session {
	cp := *s
	cp.Turns = make([]Turn, len(s.Turns))
	copy(cp.Turns, s.Turns)
	return &cp
}
