// Package llm wraps the OpenAI chat completion API for the chat relay.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"portfolio-backend/internal/domain"
)

// The relay keeps generation settings fixed: low temperature for a
// grounded assistant voice, short answers suited to a chat widget.
const (
	defaultModel   = "gpt-4o-mini"
	temperature    = 0.3
	maxTokens      = 500
	requestTimeout = 60 * time.Second
)

// Client forwards a conversation to the completion API. Implementations
// carry no per-conversation state; callers resend history each turn.
type Client interface {
	// Complete returns the first completion's text, or "" when the
	// upstream reply carries none.
	Complete(ctx context.Context, systemPrompt string, messages []domain.ChatMessage) (string, error)
	IsConfigured() bool
	Model() string
}

type Config struct {
	APIKey string
	Model  string
}

type client struct {
	openai     openai.Client
	model      string
	configured bool
}

// New builds a client even without a credential so the caller can start up
// and report the relay as unconfigured instead of failing at boot.
func New(cfg Config) Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &client{
		openai: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithRequestTimeout(requestTimeout),
		),
		model:      model,
		configured: cfg.APIKey != "",
	}
}

func (c *client) IsConfigured() bool {
	return c.configured
}

func (c *client) Model() string {
	return c.model
}

func (c *client) Complete(ctx context.Context, systemPrompt string, messages []domain.ChatMessage) (string, error) {
	if !c.configured {
		return "", fmt.Errorf("completion API key not configured")
	}

	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    convertMessages(systemPrompt, messages),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	}

	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}

	// A reply without choices is treated as an empty answer, not an error
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// convertMessages prepends the optional system prompt and forwards the
// caller-supplied history verbatim, preserving order.
func convertMessages(systemPrompt string, messages []domain.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)

	if systemPrompt != "" {
		result = append(result, openai.SystemMessage(systemPrompt))
	}
	for _, msg := range messages {
		switch msg.Role {
		case "assistant":
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}
