package mail

import (
	"context"
	"log/slog"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
)

// Dispatcher walks an ordered transport chain and stops at the first
// transport that accepts the message. Unavailable transports are skipped;
// failed ones are logged and the next stage runs. Each transport gets
// exactly one attempt per dispatch.
type Dispatcher struct {
	transports []Transport
	log        *slog.Logger
}

// NewDispatcher builds the standard chain: configured SMTP relay, then
// Gmail, then the non-production preview mailbox.
func NewDispatcher(cfg *config.Config, log *slog.Logger) *Dispatcher {
	return newDispatcher(log,
		NewSMTPTransport(cfg),
		NewGmailTransport(cfg),
		NewEtherealTransport(cfg),
	)
}

func newDispatcher(log *slog.Logger, transports ...Transport) *Dispatcher {
	return &Dispatcher{transports: transports, log: log}
}

// Dispatch never fails: when the whole chain is unavailable or exhausted
// the submission is written to the log and the result still reads as
// handled. A visitor is never blocked by the operator's mail setup.
func (d *Dispatcher) Dispatch(ctx context.Context, req *domain.ContactRequest) *domain.DispatchResult {
	for _, t := range d.transports {
		if !t.Available() {
			continue
		}

		receipt, err := t.Send(ctx, req)
		if err != nil {
			d.log.Warn("contact delivery failed, trying next transport",
				"transport", t.Name(), "error", err)
			continue
		}

		d.log.Info("contact message delivered",
			"transport", t.Name(), "message_id", receipt.MessageID)
		return &domain.DispatchResult{Delivered: true, PreviewURL: receipt.PreviewURL}
	}

	// Terminal fallback: the message is still recorded where the operator
	// can recover it.
	d.log.Info("contact message (email not configured)",
		"name", req.Name, "email", req.Email,
		"subject", req.Subject, "message", req.Message)
	return &domain.DispatchResult{Delivered: false}
}
