package mail

import (
	"context"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
)

// Gmail is reachable only over implicit TLS on 465 when authenticating
// with an app password.
const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 465
)

// gmailTransport is the managed-provider fallback: a Gmail account with an
// app password. It needs no relay configuration beyond the two credentials.
type gmailTransport struct {
	user string
	pass string
	to   string
}

func NewGmailTransport(cfg *config.Config) Transport {
	to := cfg.ContactToEmail
	if to == "" {
		// The account can always mail itself
		to = cfg.GmailUser
	}
	return &gmailTransport{
		user: cfg.GmailUser,
		pass: cfg.GmailAppPassword,
		to:   to,
	}
}

func (t *gmailTransport) Name() string {
	return "gmail"
}

func (t *gmailTransport) Available() bool {
	return t.user != "" && t.pass != ""
}

func (t *gmailTransport) Send(ctx context.Context, req *domain.ContactRequest) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	reply, err := smtpSendHook(ctx, smtpOptions{
		Host:    gmailHost,
		Port:    gmailPort,
		User:    t.user,
		Pass:    t.pass,
		From:    t.user,
		To:      t.to,
		Message: buildMessage(t.user, t.to, req),
	})
	if err != nil {
		return nil, err
	}
	return &Receipt{MessageID: reply}, nil
}
