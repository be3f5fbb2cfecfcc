// ABOUTME: Synthesizer invokes the generation collaborator with path-specific prompts
// ABOUTME: Exactly one call per invocation; later attempts raise the temperature
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harper/chef-pipeline/internal/llm"
	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
)

// maxTemperature caps the attempt ramp so regeneration never goes incoherent
const maxTemperature = 1.3

// Synthesizer turns a routing decision and processing context into
// candidate response text via one external generation call
type Synthesizer struct {
	generator llm.Generator
	profile   *persona.Profile
	baseTemp  float64
	tempStep  float64
	timeout   time.Duration
}

// NewSynthesizer creates a synthesizer around a generation collaborator
func NewSynthesizer(generator llm.Generator, profile *persona.Profile, baseTemp, tempStep float64, timeout time.Duration) *Synthesizer {
	return &Synthesizer{
		generator: generator,
		profile:   profile,
		baseTemp:  baseTemp,
		tempStep:  tempStep,
		timeout:   timeout,
	}
}

// Synthesize makes exactly one generation call. Timeouts and collaborator
// errors are surfaced as synthesis failures; the regeneration controller
// owns any retrying. onChunk, when non-nil, receives incremental text.
func (s *Synthesizer) Synthesize(ctx context.Context, route models.RoutingDecision, pctx *models.ProcessingContext, attempt int, onChunk func(text string)) (string, error) {
	req := llm.Request{
		System:      s.buildSystemPrompt(route.Path, &pctx.Persona),
		History:     historyMessages(pctx.History),
		User:        buildUserPrompt(pctx),
		Temperature: s.temperature(attempt),
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var text string
	var err error
	if onChunk != nil {
		text, err = s.generator.GenerateStream(callCtx, req, onChunk)
	} else {
		text, err = s.generator.Generate(callCtx, req)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: attempt %d: %v", models.ErrSynthesisTimeout, attempt, err)
		}
		return "", fmt.Errorf("%w: attempt %d: %v", models.ErrSynthesisFailure, attempt, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: attempt %d: empty response", models.ErrSynthesisFailure, attempt)
	}
	return text, nil
}

// temperature ramps generation randomness with each attempt so a failing
// response is not repeated verbatim
func (s *Synthesizer) temperature(attempt int) float64 {
	if attempt < 1 {
		attempt = 1
	}
	temp := s.baseTemp + s.tempStep*float64(attempt-1)
	if temp > maxTemperature {
		temp = maxTemperature
	}
	return temp
}

// buildSystemPrompt assembles the persona system prompt with the
// path-specific instructions appended
func (s *Synthesizer) buildSystemPrompt(path models.RoutePath, p *models.PersonaParameters) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are Jeff the Crazy Chef, a passionate and romantic culinary expert with an intense love for tomatoes.

PERSONALITY:
- Tomato obsession level: %d/10
- Romantic intensity: %d/10
- Energy level: %d/10
- Current mood: %s

You express yourself with passionate, romantic language about cooking,
frequent tomato references, dramatic flair, and a storytelling approach
to recipes and advice. Provide helpful, accurate culinary information
while keeping your quirky, endearing voice.`,
		p.MotifObsession, p.RomanticIntensity, p.EnergyLevel, p.CurrentMood)

	switch path {
	case models.PathStructuredRecipe:
		sb.WriteString("\n\nFor this request, produce a complete recipe: a short romantic introduction, " +
			"an ingredient list, and numbered steps. Describe the cooking as a love story.")
	case models.PathKnowledgeLookup:
		sb.WriteString("\n\nFor this request, answer with technical culinary expertise delivered " +
			"passionately. Include a practical tip from your own kitchen.")
	case models.PathFreeformChat:
		sb.WriteString("\n\nKeep the conversation warm and personal. Stay concise.")
	}

	return sb.String()
}

// buildUserPrompt appends extracted entity context to the raw user text
func buildUserPrompt(pctx *models.ProcessingContext) string {
	if len(pctx.Classification.Entities) == 0 {
		return pctx.UserText
	}
	return fmt.Sprintf("%s\n\nContext: mentioned %s",
		pctx.UserText, strings.Join(pctx.Classification.Entities, ", "))
}

func historyMessages(turns []models.Turn) []llm.Message {
	if len(turns) == 0 {
		return nil
	}
	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Role == models.RoleChef {
			role = "assistant"
		}
		messages = append(messages, llm.Message{Role: role, Text: t.Text})
	}
	return messages
}
