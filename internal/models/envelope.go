// ABOUTME: ResponseEnvelope is the pipeline's final output for every request
// ABOUTME: Exactly one envelope per request, immutable once returned
package models

import "time"

// Status is the envelope's overall outcome flag
type Status string

const (
	// StatusOK - a synthesis attempt passed the quality quorum
	StatusOK Status = "ok"

	// StatusDegraded - all attempts consumed without passing; last text returned anyway
	StatusDegraded Status = "degraded"

	// StatusError - a stage failed or routing chose the error path; fallback text returned
	StatusError Status = "error"
)

// ResponseEnvelope is the final response: text plus run metadata. The
// pipeline guarantees one envelope per request regardless of outcome.
type ResponseEnvelope struct {
	RequestID  string          `json:"request_id"`
	SessionID  string          `json:"session_id"`
	Text       string          `json:"text"`
	Status     Status          `json:"status"`
	Routing    RoutingDecision `json:"routing"`
	Quality    *QualityReport  `json:"quality,omitempty"`
	Mood       Mood            `json:"mood"`
	Attempts   int             `json:"attempts"`
	Elapsed    time.Duration   `json:"elapsed"`
	Diagnostic string          `json:"diagnostic,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}
