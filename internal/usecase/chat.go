package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/openai/openai-go"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/llm"
	"portfolio-backend/pkg/logger"
)

type chatUsecase struct {
	client   llm.Client
	validate *validator.Validate
}

// NewChatUsecase creates a new chat relay usecase
func NewChatUsecase(client llm.Client, validate *validator.Validate) domain.ChatUsecase {
	return &chatUsecase{
		client:   client,
		validate: validate,
	}
}

// Relay forwards the conversation to the completion API. There is exactly
// one upstream and no fallback: an upstream failure is surfaced, never
// retried.
func (uc *chatUsecase) Relay(ctx context.Context, req *domain.ChatRequest) (string, error) {
	if req.Messages == nil {
		return "", apperror.BadRequest("messages array required")
	}
	if err := uc.validate.Struct(req); err != nil {
		return "", apperror.BadRequest("invalid chat message: " + err.Error())
	}

	if !uc.client.IsConfigured() {
		return "", apperror.Unconfigured("OPENAI_API_KEY not configured")
	}

	content, err := uc.client.Complete(ctx, req.SystemPrompt, req.Messages)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			logger.Log.Error("completion API error",
				"status", apiErr.StatusCode, "body", apiErr.RawJSON())
		} else {
			logger.Log.Error("completion call failed", "error", err)
		}
		return "", apperror.Upstream("completion request failed", err)
	}

	return content, nil
}
