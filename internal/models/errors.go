// ABOUTME: Pipeline error taxonomy recovered by the orchestrator into envelope status
// ABOUTME: None of these ever propagate to the caller as unhandled failures
package models

import "errors"

var (
	// ErrClassificationDegraded - input could not be classified; non-fatal,
	// the router sends it down the error path
	ErrClassificationDegraded = errors.New("classification degraded")

	// ErrSynthesisTimeout - the generation collaborator timed out
	ErrSynthesisTimeout = errors.New("synthesis timed out")

	// ErrSynthesisFailure - the generation collaborator returned an error
	ErrSynthesisFailure = errors.New("synthesis failed")

	// ErrQualityGateExhausted - all regeneration attempts consumed, still failing
	ErrQualityGateExhausted = errors.New("quality gate exhausted")

	// ErrSessionUnavailable - the session store is unreachable; request-fatal
	ErrSessionUnavailable = errors.New("session store unavailable")
)
