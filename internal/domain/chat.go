package domain

import "context"

// ChatMessage is the provider-agnostic chat message shape exchanged with
// the frontend and forwarded upstream in order.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest carries the caller-supplied history plus the new turn. The
// server keeps no conversation state; the client resends history each turn.
type ChatRequest struct {
	Messages     []ChatMessage `json:"messages" validate:"dive"`
	SystemPrompt string        `json:"systemPrompt"`
}

// ChatUsecase defines the interface for the chat relay
type ChatUsecase interface {
	// Relay forwards the conversation to the completion API and returns
	// the generated reply text
	Relay(ctx context.Context, req *ChatRequest) (string, error)
}
