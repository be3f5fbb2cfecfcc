// ABOUTME: Classifier maps raw user text to an intent, entities, and confidence
// ABOUTME: Pattern-based; never fails - degraded input yields unclassifiable with confidence 0
package core

import (
	"regexp"
	"strings"

	"github.com/harper/chef-pipeline/internal/models"
)

// Classifier performs pattern-based intent classification and entity
// extraction. No side effects; safe for concurrent use after construction.
type Classifier struct {
	patterns map[models.Intent][]*regexp.Regexp
}

// NewClassifier compiles the intent patterns
func NewClassifier() *Classifier {
	compile := func(exprs ...string) []*regexp.Regexp {
		compiled := make([]*regexp.Regexp, len(exprs))
		for i, expr := range exprs {
			compiled[i] = regexp.MustCompile(expr)
		}
		return compiled
	}

	return &Classifier{
		patterns: map[models.Intent][]*regexp.Regexp{
			models.IntentRecipeRequest: compile(
				`recipe for`,
				`how to make`,
				`how do i cook`,
				`show me.*recipe`,
				`i want to make`,
				`cooking.*recipe`,
			),
			models.IntentTechniqueQuestion: compile(
				`how to.*cook`,
				`what.*temperature`,
				`how long.*cook`,
				`cooking time`,
				`cooking method`,
				`cooking technique`,
				`what.*method`,
			),
		},
	}
}

// Common culinary entities recognized by the classifier
var (
	knownIngredients = []string{
		"tomato", "tomatoes", "onion", "garlic", "chicken", "beef", "pork",
		"pasta", "rice", "potato", "carrot", "celery", "mushroom", "pepper",
		"salt", "oil", "butter", "cheese", "herbs", "spices",
	}
	knownTechniques = []string{
		"roast", "bake", "fry", "saute", "grill", "steam", "boil",
		"simmer", "braise", "poach", "blanch", "marinate",
	}
	knownCuisines = []string{
		"italian", "french", "chinese", "mexican", "indian", "thai",
		"japanese", "mediterranean", "american", "spanish",
	}
	knownDietary = []string{
		"vegetarian", "vegan", "gluten-free", "dairy-free", "keto",
		"paleo", "low-carb", "low-fat", "sugar-free",
	}
)

// Classify maps raw text to an intent with confidence and extracted
// entities. Empty or malformed input degrades to unclassifiable with
// confidence 0 rather than returning an error.
func (c *Classifier) Classify(text string) models.Classification {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Classification{
			Intent:     models.IntentUnclassifiable,
			Confidence: 0,
		}
	}

	lower := strings.ToLower(trimmed)

	bestIntent := models.IntentGeneralChat
	bestScore := 0.0
	for intent, patterns := range c.patterns {
		matched := 0
		for _, re := range patterns {
			if re.MatchString(lower) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := float64(matched) / float64(len(patterns))
		// Recipe requests win ties so routing stays reproducible
		if score > bestScore || (score == bestScore && intent == models.IntentRecipeRequest) {
			bestIntent = intent
			bestScore = score
		}
	}

	// A matched intent starts at 0.5 and grows with pattern coverage;
	// unmatched text is plain conversation at modest confidence
	confidence := 0.3
	if bestScore > 0 {
		confidence = 0.5 + 0.5*bestScore
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return models.Classification{
		Intent:     bestIntent,
		Entities:   extractEntities(lower),
		Confidence: confidence,
	}
}

// extractEntities scans for known culinary terms. Order follows the
// vocabulary lists so identical input always yields identical output.
func extractEntities(lower string) []string {
	var entities []string
	seen := make(map[string]bool)

	for _, vocab := range [][]string{knownIngredients, knownTechniques, knownCuisines, knownDietary} {
		for _, term := range vocab {
			if strings.Contains(lower, term) && !seen[term] {
				entities = append(entities, term)
				seen[term] = true
			}
		}
	}
	return entities
}
