// ABOUTME: Formatter assembles the final ResponseEnvelope for every outcome
// ABOUTME: Pure assembly; the only branch is which fields an error envelope carries
package core

import (
	"time"

	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
)

// Formatter builds the immutable response envelope
type Formatter struct {
	profile *persona.Profile
}

// NewFormatter creates a formatter bound to the persona profile
func NewFormatter(profile *persona.Profile) *Formatter {
	return &Formatter{profile: profile}
}

// FormatInput carries everything the formatter needs from the run
type FormatInput struct {
	RequestID  string
	SessionID  string
	Text       string
	Status     models.Status
	Routing    models.RoutingDecision
	Quality    *models.QualityReport
	Mood       models.Mood
	Attempts   int
	Elapsed    time.Duration
	Diagnostic string
}

// Format assembles the envelope. Successful and degraded responses get
// the chef signature; error envelopes carry the text as-is and may lack
// a quality report.
func (f *Formatter) Format(in FormatInput) *models.ResponseEnvelope {
	text := in.Text
	if in.Status != models.StatusError {
		text += f.profile.Signature
	}

	return &models.ResponseEnvelope{
		RequestID:  in.RequestID,
		SessionID:  in.SessionID,
		Text:       text,
		Status:     in.Status,
		Routing:    in.Routing,
		Quality:    in.Quality,
		Mood:       in.Mood,
		Attempts:   in.Attempts,
		Elapsed:    in.Elapsed,
		Diagnostic: in.Diagnostic,
		Timestamp:  time.Now().UTC(),
	}
}
