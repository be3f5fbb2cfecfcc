// ABOUTME: Tests for Session aggregate and Turn creation
// ABOUTME: Verifies history handling, cloning, and turn validation

package models

import (
	"strings"
	"testing"
)

func TestNewSession(t *testing.T) {
	s := NewSession("sess-1")

	if s.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want %q", s.SessionID, "sess-1")
	}
	if len(s.Turns) != 0 {
		t.Errorf("new session has %d turns, want 0", len(s.Turns))
	}
	if s.Persona.CurrentMood != MoodEnthusiastic {
		t.Errorf("default mood = %q, want %q", s.Persona.CurrentMood, MoodEnthusiastic)
	}
	if s.CreatedAt.IsZero() || s.LastAccessed.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestSessionRecentTurns(t *testing.T) {
	s := NewSession("sess-1")
	for i := 0; i < 5; i++ {
		turn, err := NewTurn(RoleUser, "message")
		if err != nil {
			t.Fatalf("NewTurn() error = %v", err)
		}
		s.AppendTurn(*turn)
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"fewer than available", 3, 3},
		{"more than available", 10, 5},
		{"exactly available", 5, 5},
		{"zero", 0, 0},
		{"negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.RecentTurns(tt.n)
			if len(got) != tt.want {
				t.Errorf("RecentTurns(%d) returned %d turns, want %d", tt.n, len(got), tt.want)
			}
		})
	}
}

func TestSessionClone(t *testing.T) {
	s := NewSession("sess-1")
	turn, _ := NewTurn(RoleUser, "hello")
	s.AppendTurn(*turn)

	clone := s.Clone()
	clone.Persona.MotifObsession = 1
	chefTurn, _ := NewTurn(RoleChef, "reply")
	clone.AppendTurn(*chefTurn)

	if s.Persona.MotifObsession == 1 {
		t.Error("mutating clone persona changed the original")
	}
	if len(s.Turns) != 1 {
		t.Errorf("original has %d turns after clone mutation, want 1", len(s.Turns))
	}
}

func TestNewTurn(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		text    string
		wantErr bool
	}{
		{"valid user turn", RoleUser, "how do I roast garlic?", false},
		{"valid chef turn", RoleChef, "with love and olive oil", false},
		{"empty chef text allowed", RoleChef, "", false},
		{"empty user text rejected", RoleUser, "   ", true},
		{"unknown role rejected", "system", "hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn, err := NewTurn(tt.role, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTurn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !strings.HasPrefix(turn.TurnID, "turn_") {
				t.Errorf("TurnID = %q, want turn_ prefix", turn.TurnID)
			}
			if turn.Role != tt.role {
				t.Errorf("Role = %q, want %q", turn.Role, tt.role)
			}
		})
	}
}
