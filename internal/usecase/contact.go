package usecase

import (
	"context"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type contactUsecase struct {
	dispatcher domain.ContactDispatcher
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(dispatcher domain.ContactDispatcher) domain.ContactUsecase {
	return &contactUsecase{
		dispatcher: dispatcher,
	}
}

// SendContactMessage validates the submission and hands it to the transport
// chain. Validation runs once, before any transport is attempted; a
// submission missing any field never reaches the dispatcher.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.DispatchResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.BadRequest("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperror.BadRequest("email is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, apperror.BadRequest("subject is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperror.BadRequest("message is required")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	return uc.dispatcher.Dispatch(ctx, req), nil
}
