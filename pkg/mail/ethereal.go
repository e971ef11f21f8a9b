package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
)

// Ethereal (ethereal.email) hands out disposable SMTP accounts on demand.
// Messages sent through one are never delivered anywhere; they are kept in
// a temporary web inbox so a developer without real credentials can inspect
// the rendered output.
const (
	etherealAccountURL = "https://api.nodemailer.com/user"
	etherealMessageURL = "https://ethereal.email/message/"
	previewRecipient   = "preview@example.com"
)

const accountTimeout = 10 * time.Second

// etherealAccount is the relevant subset of the account-creation response.
type etherealAccount struct {
	User string `json:"user"`
	Pass string `json:"pass"`
	SMTP struct {
		Host   string `json:"host"`
		Port   int    `json:"port"`
		Secure bool   `json:"secure"`
	} `json:"smtp"`
}

// createAccountHook allows tests to stub account provisioning.
var createAccountHook = createEtherealAccount

func createEtherealAccount(ctx context.Context) (*etherealAccount, error) {
	payload, _ := json.Marshal(map[string]string{
		"requestor": "portfolio-backend",
		"version":   "1.0.0",
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, etherealAccountURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: accountTimeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create preview account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("create preview account: status %d", resp.StatusCode)
	}

	var account etherealAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("decode preview account: %w", err)
	}
	if account.User == "" || account.SMTP.Host == "" {
		return nil, fmt.Errorf("preview account response incomplete")
	}
	return &account, nil
}

// msgidPattern extracts the stored message id from Ethereal's DATA reply,
// e.g. "Accepted [STATUS=new MSGID=abc.123]".
var msgidPattern = regexp.MustCompile(`MSGID=([^\s\]]+)`)

// etherealTransport creates a disposable mailbox per send and reports the
// preview link instead of a delivery confirmation. It must never activate
// in production, even when nothing else is configured.
type etherealTransport struct {
	production bool
}

func NewEtherealTransport(cfg *config.Config) Transport {
	return &etherealTransport{production: cfg.IsProduction()}
}

func (t *etherealTransport) Name() string {
	return "ethereal"
}

func (t *etherealTransport) Available() bool {
	return !t.production
}

func (t *etherealTransport) Send(ctx context.Context, req *domain.ContactRequest) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, accountTimeout+sendTimeout)
	defer cancel()

	account, err := createAccountHook(ctx)
	if err != nil {
		return nil, err
	}

	reply, err := smtpSendHook(ctx, smtpOptions{
		Host:    account.SMTP.Host,
		Port:    account.SMTP.Port,
		User:    account.User,
		Pass:    account.Pass,
		From:    account.User,
		To:      previewRecipient,
		Message: buildMessage(account.User, previewRecipient, req),
	})
	if err != nil {
		return nil, err
	}

	match := msgidPattern.FindStringSubmatch(reply)
	if match == nil {
		return nil, fmt.Errorf("no message id in reply %q", reply)
	}
	return &Receipt{
		MessageID:  match[1],
		PreviewURL: etherealMessageURL + match[1],
	}, nil
}
