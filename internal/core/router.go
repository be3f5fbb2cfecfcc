// ABOUTME: Router maps a ProcessingContext to one of the 4 generation paths
// ABOUTME: Ordered decision table; priority is data, not buried control flow
package core

import (
	"github.com/harper/chef-pipeline/internal/models"
)

// routeRule is one row of the routing decision table
type routeRule struct {
	name  string
	match func(ctx *models.ProcessingContext, confidenceFloor float64) bool
	path  models.RoutePath
}

// routeTable is evaluated top to bottom; the first matching rule wins.
// The order is load-bearing: identical inputs must always produce the
// identical decision.
var routeTable = []routeRule{
	{
		name: "unclassifiable_or_low_confidence",
		match: func(ctx *models.ProcessingContext, floor float64) bool {
			return ctx.Classification.Intent == models.IntentUnclassifiable ||
				ctx.Classification.Confidence < floor
		},
		path: models.PathError,
	},
	{
		name: "recipe_request",
		match: func(ctx *models.ProcessingContext, _ float64) bool {
			return ctx.Classification.Intent == models.IntentRecipeRequest
		},
		path: models.PathStructuredRecipe,
	},
	{
		name: "technique_question",
		match: func(ctx *models.ProcessingContext, _ float64) bool {
			return ctx.Classification.Intent == models.IntentTechniqueQuestion
		},
		path: models.PathKnowledgeLookup,
	},
	{
		name: "default_chat",
		match: func(*models.ProcessingContext, float64) bool {
			return true
		},
		path: models.PathFreeformChat,
	},
}

// Router selects the generation path for a request
type Router struct {
	confidenceFloor float64
}

// NewRouter creates a router with the configured confidence floor
func NewRouter(confidenceFloor float64) *Router {
	return &Router{confidenceFloor: confidenceFloor}
}

// Route walks the decision table and returns exactly one decision.
// Pure function of the processing context.
func (r *Router) Route(ctx *models.ProcessingContext) models.RoutingDecision {
	for _, rule := range routeTable {
		if rule.match(ctx, r.confidenceFloor) {
			return models.RoutingDecision{
				Path:       rule.path,
				Rule:       rule.name,
				Intent:     ctx.Classification.Intent,
				Confidence: ctx.Classification.Confidence,
			}
		}
	}
	// Unreachable: the last rule always matches
	return models.RoutingDecision{
		Path:   models.PathFreeformChat,
		Rule:   "default_chat",
		Intent: ctx.Classification.Intent,
	}
}
