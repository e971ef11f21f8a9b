package domain

import "context"

// ContactRequest represents a contact form submission. It lives for the
// duration of one request and is never persisted.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// DispatchResult is what the caller learns about a dispatch. Delivered
// means some transport accepted the message; the HTTP layer acknowledges
// the submission either way, so a visitor is never shown a mail
// configuration problem. PreviewURL is set only by the dev preview mailbox.
type DispatchResult struct {
	Delivered  bool
	PreviewURL string
}

// ContactDispatcher tries an ordered chain of mail transports until one
// accepts the message.
type ContactDispatcher interface {
	Dispatch(ctx context.Context, req *ContactRequest) *DispatchResult
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and dispatches a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) (*DispatchResult, error)
}
