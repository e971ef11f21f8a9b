// Package mail delivers contact form submissions through an ordered chain
// of SMTP-based transports.
package mail

import (
	"context"

	"portfolio-backend/internal/domain"
)

// Receipt describes one accepted delivery.
type Receipt struct {
	// MessageID is the provider-assigned identifier, when one is known.
	MessageID string
	// PreviewURL points at a rendered copy of the message. Only the
	// disposable preview mailbox sets it.
	PreviewURL string
}

// Transport is one concrete mechanism for delivering the contact message.
// Available reports whether the transport's credentials are present;
// unavailable transports are skipped without counting as a failure.
type Transport interface {
	Name() string
	Available() bool
	Send(ctx context.Context, req *domain.ContactRequest) (*Receipt, error)
}
