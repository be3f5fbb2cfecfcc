// ABOUTME: Validator scores candidate text against the three persona quality gates
// ABOUTME: Deterministic given identical text and context; verdict is a 2-of-3 quorum
package core

import (
	"strings"

	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
)

// Validator renders a QualityReport for one synthesis attempt
type Validator struct {
	profile              *persona.Profile
	consistencyThreshold float64
	themeThresholdBase   float64
	styleThresholdBase   float64
}

// NewValidator creates a validator with the configured gate thresholds
func NewValidator(profile *persona.Profile, consistencyThreshold, themeThresholdBase, styleThresholdBase float64) *Validator {
	return &Validator{
		profile:              profile,
		consistencyThreshold: consistencyThreshold,
		themeThresholdBase:   themeThresholdBase,
		styleThresholdBase:   styleThresholdBase,
	}
}

// Validate scores the candidate text and applies the quorum rule.
// A new report is produced per attempt; reports are never mutated.
func (v *Validator) Validate(text string, pctx *models.ProcessingContext, attempt int) *models.QualityReport {
	p := pctx.Persona

	report := &models.QualityReport{
		Attempt: attempt,
		PersonaConsistency: models.QualityScore{
			Criterion: models.CriterionPersonaConsistency,
			Score:     v.consistencyScore(text, &p),
			Threshold: v.consistencyThreshold,
		},
		ThemeIntegration: models.QualityScore{
			Criterion: models.CriterionThemeIntegration,
			Score:     v.themeScore(text),
			// Scaled by the motif dial: a mild obsession demands less
			Threshold: v.themeThresholdBase * float64(p.MotifObsession) / 10.0,
		},
		StylisticIntensity: models.QualityScore{
			Criterion: models.CriterionStylisticIntensity,
			Score:     v.styleScore(text),
			Threshold: v.styleThresholdBase * float64(p.RomanticIntensity) / 10.0,
		},
	}
	report.Passed = report.Verdict()
	return report
}

// consistencyScore checks six voice characteristics and returns the
// fraction present
func (v *Validator) consistencyScore(text string, p *models.PersonaParameters) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}
	lower := strings.ToLower(text)

	present := 0
	const total = 6

	if containsAny(lower, v.profile.PassionWords) {
		present++
	}
	if containsAny(lower, v.profile.CulinaryWords) {
		present++
	}
	if containsAny(lower, v.profile.RomanticWords) {
		present++
	}
	if containsAny(lower, v.profile.StorytellingCues) {
		present++
	}
	// Dramatic flair is case-sensitive: exclamation marks and emphatics
	if containsAny(text, v.profile.DramaticMarks) {
		present++
	}
	// The motif is only required at high obsession
	if p.MotifObsession >= 8 {
		if strings.Contains(lower, v.profile.MotifWord) {
			present++
		}
	} else {
		present++
	}

	return float64(present) / float64(total)
}

// themeScore measures signature motif density: direct mentions, variety
// references, related vocabulary, and obsession phrases
func (v *Validator) themeScore(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0

	// Direct motif mention carries half the score
	if strings.Contains(lower, v.profile.MotifWord) {
		score += 0.5
	}

	varieties := 0.0
	for _, variety := range v.profile.MotifVarieties {
		if strings.Contains(lower, variety) {
			varieties += 0.05
		}
	}
	if varieties > 0.2 {
		varieties = 0.2
	}
	score += varieties

	related := 0.0
	for _, term := range v.profile.MotifRelated {
		if strings.Contains(lower, term) {
			related += 0.05
		}
	}
	if related > 0.25 {
		related = 0.25
	}
	score += related

	obsession := 0.0
	for _, line := range v.profile.ObsessionLines {
		if strings.Contains(lower, line) {
			obsession += 0.125
		}
	}
	if obsession > 0.25 {
		obsession = 0.25
	}
	score += obsession

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// styleScore counts distinct romantic terms, normalized against ten
func (v *Validator) styleScore(text string) float64 {
	lower := strings.ToLower(text)

	found := 0
	for _, term := range v.profile.RomanticWords {
		if strings.Contains(lower, term) {
			found++
		}
	}
	score := float64(found) / 10.0
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
