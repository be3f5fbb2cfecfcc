// ABOUTME: OpenAI-backed generation collaborator for the chef pipeline
// ABOUTME: One API call per invocation; retries belong to the regeneration controller
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

// Message is one prior conversation message for the generation request
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Request carries everything the generation collaborator needs for one call
type Request struct {
	System      string
	History     []Message
	User        string
	Temperature float64
	MaxTokens   int
}

// Generator is the external text-generation collaborator. Implementations
// make exactly one underlying call per invocation and must honor ctx
// cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	GenerateStream(ctx context.Context, req Request, onChunk func(text string)) (string, error)
}

// Client wraps the OpenAI API client
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenAI-backed generator
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultChatModel
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Generate performs a single chat completion call
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(req),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateStream performs a single streaming chat completion call,
// invoking onChunk for each delta and returning the assembled text
func (c *Client) GenerateStream(ctx context.Context, req Request, onChunk func(text string)) (string, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(req),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Stream:      true,
	})
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		sb.WriteString(delta)
		if onChunk != nil {
			onChunk(delta)
		}
	}
	return sb.String(), nil
}

func buildMessages(req Request) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.History {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" || m.Role == "chef" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Text,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})
	return messages
}
