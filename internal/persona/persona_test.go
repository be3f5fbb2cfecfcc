// ABOUTME: Tests for persona profile mood transitions and disk overrides
// ABOUTME: Verifies deterministic lookup with no-change default

package persona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/chef-pipeline/internal/models"
)

func TestNextMood(t *testing.T) {
	p := Default()

	tests := []struct {
		name    string
		current models.Mood
		intent  models.Intent
		want    models.Mood
	}{
		{"enthusiastic + recipe goes ecstatic", models.MoodEnthusiastic, models.IntentRecipeRequest, models.MoodEcstatic},
		{"enthusiastic + technique goes contemplative", models.MoodEnthusiastic, models.IntentTechniqueQuestion, models.MoodContemplative},
		{"unknown combination keeps mood", models.MoodEnthusiastic, models.IntentGeneralChat, models.MoodEnthusiastic},
		{"unclassifiable never shifts mood", models.MoodEcstatic, models.IntentUnclassifiable, models.MoodEcstatic},
		{"nostalgic + recipe goes romantic", models.MoodNostalgic, models.IntentRecipeRequest, models.MoodRomantic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.NextMood(tt.current, tt.intent)
			if got != tt.want {
				t.Errorf("NextMood(%q, %q) = %q, want %q", tt.current, tt.intent, got, tt.want)
			}
		})
	}
}

func TestNextMoodDeterministic(t *testing.T) {
	p := Default()
	first := p.NextMood(models.MoodPlayful, models.IntentTechniqueQuestion)
	for i := 0; i < 10; i++ {
		if got := p.NextMood(models.MoodPlayful, models.IntentTechniqueQuestion); got != first {
			t.Fatalf("NextMood not deterministic: got %q then %q", first, got)
		}
	}
}

func TestMoodTransitionsTargetsAreValid(t *testing.T) {
	p := Default()
	for mood, byIntent := range p.MoodTransitions {
		if !mood.IsValid() {
			t.Errorf("transition table keys invalid mood %q", mood)
		}
		for intent, next := range byIntent {
			if !next.IsValid() {
				t.Errorf("transition (%q, %q) targets invalid mood %q", mood, intent, next)
			}
		}
	}
}

func TestOverridesRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	obsession := 4
	mood := string(models.MoodSerene)
	ov := &Overrides{
		MotifObsession: &obsession,
		InitialMood:    &mood,
	}
	if err := ov.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadOverrides()
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadOverrides() returned nil after Save")
	}

	params := models.DefaultPersonaParameters()
	loaded.Apply(&params)

	if params.MotifObsession != 4 {
		t.Errorf("MotifObsession = %d, want 4", params.MotifObsession)
	}
	if params.CurrentMood != models.MoodSerene {
		t.Errorf("CurrentMood = %q, want serene", params.CurrentMood)
	}
	// Untouched dial keeps default
	if params.RomanticIntensity != 8 {
		t.Errorf("RomanticIntensity = %d, want 8", params.RomanticIntensity)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	ov, err := LoadOverrides()
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if ov != nil {
		t.Errorf("LoadOverrides() = %+v, want nil for missing file", ov)
	}
}

func TestOverridesApplyClampsOutOfRange(t *testing.T) {
	obsession := 99
	ov := &Overrides{MotifObsession: &obsession}

	params := models.DefaultPersonaParameters()
	ov.Apply(&params)

	if params.MotifObsession != 10 {
		t.Errorf("MotifObsession = %d, want clamped to 10", params.MotifObsession)
	}
}

func TestOverridesSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	ov := &Overrides{}
	if err := ov.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "chef-pipeline", "persona.json")); err != nil {
		t.Errorf("expected persona.json to exist: %v", err)
	}
}
