// ABOUTME: Optional on-disk persona overrides loaded from the XDG data directory
// ABOUTME: Lets operators re-tune dials without rebuilding; absent file means defaults
package persona

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/harper/chef-pipeline/internal/models"
)

// Overrides are the tunable persona dials an operator may pin on disk.
// Nil pointer fields mean "keep the default".
type Overrides struct {
	MotifObsession         *int     `json:"motif_obsession,omitempty"`
	RomanticIntensity      *int     `json:"romantic_intensity,omitempty"`
	EnergyLevel            *int     `json:"energy_level,omitempty"`
	CreativityMultiplier   *float64 `json:"creativity_multiplier,omitempty"`
	ProfessionalAdaptation *float64 `json:"professional_adaptation,omitempty"`
	InitialMood            *string  `json:"initial_mood,omitempty"`
}

func overridesPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "chef-pipeline", "persona.json")
}

// LoadOverrides reads persona overrides from the XDG data directory.
// A missing file returns nil without error.
func LoadOverrides() (*Overrides, error) {
	data, err := os.ReadFile(overridesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var ov Overrides
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, err
	}
	return &ov, nil
}

// Save writes the overrides to the XDG data directory
func (ov *Overrides) Save() error {
	path := overridesPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(ov, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply merges the overrides into a set of persona parameters, clamping
// the result back into range
func (ov *Overrides) Apply(p *models.PersonaParameters) {
	if ov == nil {
		return
	}
	if ov.MotifObsession != nil {
		p.MotifObsession = *ov.MotifObsession
	}
	if ov.RomanticIntensity != nil {
		p.RomanticIntensity = *ov.RomanticIntensity
	}
	if ov.EnergyLevel != nil {
		p.EnergyLevel = *ov.EnergyLevel
	}
	if ov.CreativityMultiplier != nil {
		p.CreativityMultiplier = *ov.CreativityMultiplier
	}
	if ov.ProfessionalAdaptation != nil {
		p.ProfessionalAdaptation = *ov.ProfessionalAdaptation
	}
	if ov.InitialMood != nil {
		p.CurrentMood = models.Mood(*ov.InitialMood)
	}
	p.Clamp()
}
