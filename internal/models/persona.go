// ABOUTME: PersonaParameters defines the chef persona's intensity dials and mood
// ABOUTME: Dial values are clamped to their declared ranges at all times
package models

import "time"

// Mood represents the persona's current discrete mood tag
type Mood string

const (
	MoodEcstatic      Mood = "ecstatic"
	MoodEnthusiastic  Mood = "enthusiastic"
	MoodRomantic      Mood = "romantic"
	MoodContemplative Mood = "contemplative"
	MoodPlayful       Mood = "playful"
	MoodPassionate    Mood = "passionate"
	MoodSerene        Mood = "serene"
	MoodMischievous   Mood = "mischievous"
	MoodNostalgic     Mood = "nostalgic"
	MoodInspired      Mood = "inspired"
)

// AllMoods lists every valid mood tag
var AllMoods = []Mood{
	MoodEcstatic, MoodEnthusiastic, MoodRomantic, MoodContemplative,
	MoodPlayful, MoodPassionate, MoodSerene, MoodMischievous,
	MoodNostalgic, MoodInspired,
}

// IsValid reports whether m is one of the enumerated moods
func (m Mood) IsValid() bool {
	for _, known := range AllMoods {
		if m == known {
			return true
		}
	}
	return false
}

// PersonaParameters holds the persona's intensity dials plus its current mood.
// Dial ranges:
//   - MotifObsession: 1-10 (signature ingredient obsession)
//   - RomanticIntensity: 1-10 (romantic language in cooking descriptions)
//   - EnergyLevel: 1-10 (enthusiasm)
//   - CreativityMultiplier: 0.1-3.0 (unusual combinations)
//   - ProfessionalAdaptation: 0.0-1.0 (toning down for professional contexts)
type PersonaParameters struct {
	MotifObsession         int       `json:"motif_obsession"`
	RomanticIntensity      int       `json:"romantic_intensity"`
	EnergyLevel            int       `json:"energy_level"`
	CreativityMultiplier   float64   `json:"creativity_multiplier"`
	ProfessionalAdaptation float64   `json:"professional_adaptation"`
	CurrentMood            Mood      `json:"current_mood"`
	LastUpdated            time.Time `json:"last_updated"`
}

// DefaultPersonaParameters returns the persona's factory settings
func DefaultPersonaParameters() PersonaParameters {
	return PersonaParameters{
		MotifObsession:         9,
		RomanticIntensity:      8,
		EnergyLevel:            7,
		CreativityMultiplier:   1.5,
		ProfessionalAdaptation: 0.5,
		CurrentMood:            MoodEnthusiastic,
		LastUpdated:            time.Now().UTC(),
	}
}

// Clamp forces every dial back into its declared range and repairs an
// invalid or empty mood tag
func (p *PersonaParameters) Clamp() {
	p.MotifObsession = clampInt(p.MotifObsession, 1, 10)
	p.RomanticIntensity = clampInt(p.RomanticIntensity, 1, 10)
	p.EnergyLevel = clampInt(p.EnergyLevel, 1, 10)
	p.CreativityMultiplier = clampFloat(p.CreativityMultiplier, 0.1, 3.0)
	p.ProfessionalAdaptation = clampFloat(p.ProfessionalAdaptation, 0.0, 1.0)
	if !p.CurrentMood.IsValid() {
		p.CurrentMood = MoodEnthusiastic
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
