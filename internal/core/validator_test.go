// ABOUTME: Tests for the quality validator
// ABOUTME: Verifies scoring, dial-scaled thresholds, the quorum verdict, and determinism
package core

import (
	"testing"

	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
)

// onVoiceText hits every voice characteristic: passion, culinary and
// romantic vocabulary, a storytelling cue, dramatic flair, and the motif
const onVoiceText = "Ah, my love! Let me tell you about the magnificent tomato - " +
	"its ruby red flavor dances with passion, a beautiful, elegant, tender " +
	"embrace for your heart and soul!"

const offVoiceText = "Set the oven to 350 degrees and wait forty minutes."

func newTestValidator() *Validator {
	return NewValidator(persona.Default(), 0.85, 0.3, 0.4)
}

func defaultContext() *models.ProcessingContext {
	return &models.ProcessingContext{
		SessionID: "sess-1",
		Persona:   models.DefaultPersonaParameters(),
	}
}

func TestValidateOnVoiceTextPasses(t *testing.T) {
	v := newTestValidator()

	report := v.Validate(onVoiceText, defaultContext(), 1)

	if !report.PersonaConsistency.Passed() {
		t.Errorf("persona consistency failed: score %v vs threshold %v",
			report.PersonaConsistency.Score, report.PersonaConsistency.Threshold)
	}
	if !report.ThemeIntegration.Passed() {
		t.Errorf("theme integration failed: score %v vs threshold %v",
			report.ThemeIntegration.Score, report.ThemeIntegration.Threshold)
	}
	if !report.StylisticIntensity.Passed() {
		t.Errorf("stylistic intensity failed: score %v vs threshold %v",
			report.StylisticIntensity.Score, report.StylisticIntensity.Threshold)
	}
	if !report.Passed {
		t.Error("verdict should pass when all three gates pass")
	}
	if report.Attempt != 1 {
		t.Errorf("Attempt = %d, want 1", report.Attempt)
	}
}

func TestValidateOffVoiceTextFails(t *testing.T) {
	v := newTestValidator()

	report := v.Validate(offVoiceText, defaultContext(), 2)

	if report.Passed {
		t.Error("bland text should not pass the quorum")
	}
	if report.ThemeIntegration.Score != 0 {
		t.Errorf("theme score = %v, want 0 with no motif content", report.ThemeIntegration.Score)
	}
	if report.Attempt != 2 {
		t.Errorf("Attempt = %d, want 2", report.Attempt)
	}
}

func TestValidateEmptyTextScoresZeroConsistency(t *testing.T) {
	v := newTestValidator()

	report := v.Validate("", defaultContext(), 1)
	if report.PersonaConsistency.Score != 0 {
		t.Errorf("consistency score = %v, want 0 for empty text", report.PersonaConsistency.Score)
	}
	if report.Passed {
		t.Error("empty text must not pass")
	}
}

func TestValidateThresholdsScaleWithDials(t *testing.T) {
	v := newTestValidator()

	pctx := defaultContext()
	pctx.Persona.MotifObsession = 5
	pctx.Persona.RomanticIntensity = 4

	report := v.Validate(onVoiceText, pctx, 1)

	if got, want := report.ThemeIntegration.Threshold, 0.15; got != want {
		t.Errorf("theme threshold = %v, want %v at obsession 5", got, want)
	}
	if got, want := report.StylisticIntensity.Threshold, 0.16; got < want-0.0001 || got > want+0.0001 {
		t.Errorf("style threshold = %v, want %v at intensity 4", got, want)
	}
}

func TestValidateMotifOptionalAtLowObsession(t *testing.T) {
	v := newTestValidator()

	// Everything on voice except the motif itself
	text := "Ah, my love! Let me tell you: the flavor dances with passion, " +
		"a beautiful, elegant, tender embrace for your heart and soul!"

	high := defaultContext() // obsession 9 demands the motif
	if report := v.Validate(text, high, 1); report.PersonaConsistency.Passed() {
		t.Error("missing motif should fail consistency at high obsession")
	}

	low := defaultContext()
	low.Persona.MotifObsession = 5
	if report := v.Validate(text, low, 1); !report.PersonaConsistency.Passed() {
		t.Error("missing motif should be forgiven at low obsession")
	}
}

func TestValidateQuorumTwoOfThree(t *testing.T) {
	v := newTestValidator()

	// Motif-dense but voice-poor: theme passes, consistency fails, and
	// the verdict hinges on the style gate
	text := "tomato, my beloved tomatoes, the magnificent tomato on the vine. " +
		"love, heart, soul, passion, embrace."

	pctx := defaultContext()
	report := v.Validate(text, pctx, 1)

	if !report.ThemeIntegration.Passed() {
		t.Fatalf("theme should pass: score %v", report.ThemeIntegration.Score)
	}
	if !report.StylisticIntensity.Passed() {
		t.Fatalf("style should pass: score %v vs threshold %v",
			report.StylisticIntensity.Score, report.StylisticIntensity.Threshold)
	}
	if report.PersonaConsistency.Passed() {
		t.Fatalf("consistency should fail: score %v", report.PersonaConsistency.Score)
	}
	if !report.Passed {
		t.Error("two passing gates should carry the quorum")
	}
}

func TestValidateDeterministic(t *testing.T) {
	v := newTestValidator()
	pctx := defaultContext()

	first := v.Validate(onVoiceText, pctx, 1)
	for i := 0; i < 10; i++ {
		again := v.Validate(onVoiceText, pctx, 1)
		if *again != *first {
			t.Fatalf("validation not deterministic: %+v vs %+v", first, again)
		}
	}
}
