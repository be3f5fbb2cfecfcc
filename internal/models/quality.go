// ABOUTME: QualityReport holds the three quality-gate scores for one synthesis attempt
// ABOUTME: Verdict passes on a 2-of-3 quorum of per-criterion thresholds
package models

// Quality criteria names
const (
	CriterionPersonaConsistency = "persona_consistency"
	CriterionThemeIntegration   = "theme_integration"
	CriterionStylisticIntensity = "stylistic_intensity"
)

// QualityScore is one criterion's score against its threshold
type QualityScore struct {
	Criterion string  `json:"criterion"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
}

// Passed reports whether the score meets its threshold
func (q QualityScore) Passed() bool {
	return q.Score >= q.Threshold
}

// QualityReport is created once per synthesis attempt and never mutated;
// a regenerated attempt produces a new report
type QualityReport struct {
	Attempt            int          `json:"attempt"`
	PersonaConsistency QualityScore `json:"persona_consistency"`
	ThemeIntegration   QualityScore `json:"theme_integration"`
	StylisticIntensity QualityScore `json:"stylistic_intensity"`
	Passed             bool         `json:"passed"`
}

// QuorumSize is how many of the three gates must pass for the verdict to pass.
// Deliberately not unanimous so one noisy metric cannot force regeneration.
const QuorumSize = 2

// Verdict applies the quorum rule over the three scores
func (r *QualityReport) Verdict() bool {
	passed := 0
	for _, s := range []QualityScore{r.PersonaConsistency, r.ThemeIntegration, r.StylisticIntensity} {
		if s.Passed() {
			passed++
		}
	}
	return passed >= QuorumSize
}
