// ABOUTME: Static persona configuration: mood transitions, voice markers, prompts
// ABOUTME: Read-only at runtime; compiled defaults with optional JSON overrides
package persona

import (
	"github.com/harper/chef-pipeline/internal/models"
)

// Profile is the persona's static knowledge: how moods shift per intent,
// which words mark its voice, and the prompt templates per routing path.
// The pipeline reads it, never writes it.
type Profile struct {
	// MoodTransitions maps (current mood, intent) to the next mood.
	// Combinations absent from the table mean "no change".
	MoodTransitions map[models.Mood]map[models.Intent]models.Mood

	// Voice marker vocabularies used by the quality validator
	PassionWords     []string
	CulinaryWords    []string
	RomanticWords    []string
	StorytellingCues []string
	DramaticMarks    []string

	// Signature motif vocabulary
	MotifWord      string
	MotifVarieties []string
	MotifRelated   []string
	ObsessionLines []string

	// Fixed persona-neutral apology used when a stage fails outright
	FallbackText string

	// Signature appended by the output formatter
	Signature string
}

// Default returns the chef persona's built-in profile
func Default() *Profile {
	return &Profile{
		MoodTransitions: map[models.Mood]map[models.Intent]models.Mood{
			models.MoodEnthusiastic: {
				models.IntentRecipeRequest:     models.MoodEcstatic,
				models.IntentTechniqueQuestion: models.MoodContemplative,
			},
			models.MoodEcstatic: {
				models.IntentTechniqueQuestion: models.MoodInspired,
				models.IntentGeneralChat:       models.MoodPlayful,
			},
			models.MoodContemplative: {
				models.IntentRecipeRequest: models.MoodInspired,
				models.IntentGeneralChat:   models.MoodSerene,
			},
			models.MoodRomantic: {
				models.IntentRecipeRequest: models.MoodPassionate,
			},
			models.MoodPlayful: {
				models.IntentRecipeRequest:     models.MoodEnthusiastic,
				models.IntentTechniqueQuestion: models.MoodMischievous,
			},
			models.MoodSerene: {
				models.IntentRecipeRequest: models.MoodEnthusiastic,
			},
			models.MoodPassionate: {
				models.IntentGeneralChat: models.MoodRomantic,
			},
			models.MoodInspired: {
				models.IntentGeneralChat: models.MoodEnthusiastic,
			},
			models.MoodMischievous: {
				models.IntentRecipeRequest: models.MoodPlayful,
			},
			models.MoodNostalgic: {
				models.IntentRecipeRequest: models.MoodRomantic,
			},
		},

		PassionWords:     []string{"love", "passion", "beautiful", "magnificent", "wonderful"},
		CulinaryWords:    []string{"flavor", "ingredient", "recipe", "cooking", "technique"},
		RomanticWords: []string{
			"love", "heart", "soul", "passion", "embrace", "dance", "whisper",
			"beautiful", "elegant", "tender", "gentle", "caress", "romance",
		},
		StorytellingCues: []string{"*", "imagine", "picture", "let me tell you"},
		DramaticMarks:    []string{"!", "absolutely", "utterly", "breathtaking"},

		MotifWord:      "tomato",
		MotifVarieties: []string{"roma", "cherry", "heirloom", "san marzano", "beefsteak", "brandywine"},
		MotifRelated:   []string{"ruby", "red", "vine", "garden", "sun-kissed", "juicy"},
		ObsessionLines: []string{
			"my beloved tomatoes",
			"the magnificent tomato",
			"nothing compares to a ripe tomato",
		},

		FallbackText: "My apologies - something went wrong in the kitchen while preparing " +
			"your answer. Please try asking again in a moment.",

		Signature: "\n\n*With culinary love,*\n*Chef Jeff*",
	}
}

// NextMood looks up the deterministic mood transition for an intent.
// Unknown combinations leave the mood unchanged.
func (p *Profile) NextMood(current models.Mood, intent models.Intent) models.Mood {
	if byIntent, ok := p.MoodTransitions[current]; ok {
		if next, ok := byIntent[intent]; ok {
			return next
		}
	}
	return current
}
