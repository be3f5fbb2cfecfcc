// ABOUTME: Enricher merges classification with persona state into a ProcessingContext
// ABOUTME: Pure transform; proposes a deterministic mood transition, no external calls
package core

import (
	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
)

// Enrichment is the enricher's output: the per-request context plus the
// proposed mood for the session once this request commits
type Enrichment struct {
	Context      models.ProcessingContext
	ProposedMood models.Mood
}

// Enricher builds the per-request processing context
type Enricher struct {
	profile       *persona.Profile
	historyWindow int
}

// NewEnricher creates an enricher bound to a persona profile
func NewEnricher(profile *persona.Profile, historyWindow int) *Enricher {
	return &Enricher{
		profile:       profile,
		historyWindow: historyWindow,
	}
}

// Enrich combines the classifier output with the session's persona
// parameters. The persona snapshot is copied; the session itself is
// never touched here.
func (e *Enricher) Enrich(session *models.Session, userText string, cls models.Classification) Enrichment {
	snapshot := session.Persona
	snapshot.Clamp()

	return Enrichment{
		Context: models.ProcessingContext{
			SessionID:      session.SessionID,
			UserText:       userText,
			Classification: cls,
			Persona:        snapshot,
			History:        session.RecentTurns(e.historyWindow),
		},
		ProposedMood: e.profile.NextMood(snapshot.CurrentMood, cls.Intent),
	}
}
