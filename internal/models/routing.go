// ABOUTME: Routing decision types for the content router
// ABOUTME: Defines the 4 generation paths and the decision record
package models

// RoutePath represents one of the fixed generation paths
type RoutePath string

const (
	// PathStructuredRecipe - recipe requests get the structured recipe prompt
	PathStructuredRecipe RoutePath = "structured_recipe"

	// PathKnowledgeLookup - technique questions get the knowledge prompt
	PathKnowledgeLookup RoutePath = "knowledge_lookup"

	// PathFreeformChat - everything else gets the free-form chat prompt
	PathFreeformChat RoutePath = "freeform_chat"

	// PathError - unclassifiable or low-confidence input; no generation call
	PathError RoutePath = "error"
)

// RoutingDecision records which path a request took and why
type RoutingDecision struct {
	Path       RoutePath `json:"path"`
	Rule       string    `json:"rule"`
	Intent     Intent    `json:"intent"`
	Confidence float64   `json:"confidence"`
}

// Intent is the closed set of classified user intents
type Intent string

const (
	IntentRecipeRequest     Intent = "recipe_request"
	IntentTechniqueQuestion Intent = "technique_question"
	IntentGeneralChat       Intent = "general_chat"
	IntentUnclassifiable    Intent = "unclassifiable"
)

// Classification is the intent classifier's output
type Classification struct {
	Intent     Intent   `json:"intent"`
	Entities   []string `json:"entities,omitempty"`
	Confidence float64  `json:"confidence"`
}

// ProcessingContext is the transient per-request aggregate threaded through
// the pipeline stages. Created at the start of a request, never persisted.
type ProcessingContext struct {
	SessionID      string            `json:"session_id"`
	UserText       string            `json:"user_text"`
	Classification Classification    `json:"classification"`
	Persona        PersonaParameters `json:"persona"`
	History        []Turn            `json:"history,omitempty"`
}
