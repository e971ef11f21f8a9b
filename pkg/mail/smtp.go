package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
)

// sendTimeout bounds one SMTP conversation, dial included. A transport
// that times out is treated like any other failed transport.
const sendTimeout = 15 * time.Second

// smtpOptions describes one SMTP delivery.
type smtpOptions struct {
	Host    string
	Port    int
	User    string
	Pass    string
	From    string
	To      string
	Message []byte
}

// smtpSendHook allows tests to override SMTP sending behavior.
var smtpSendHook = smtpSend

// smtpSend runs a full SMTP session and returns the server's final DATA
// reply. Port 465 means implicit TLS by convention; anything else dials
// plaintext and upgrades via STARTTLS when the server offers it.
func smtpSend(ctx context.Context, o smtpOptions) (string, error) {
	addr := net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
	dialer := &net.Dialer{}

	var conn net.Conn
	var err error
	if o.Port == 465 {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: o.Host, MinVersion: tls.VersionTLS12},
		}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, o.Host)
	if err != nil {
		_ = conn.Close()
		return "", fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if o.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsCfg := &tls.Config{ServerName: o.Host, MinVersion: tls.VersionTLS12}
			if err := client.StartTLS(tlsCfg); err != nil {
				return "", fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if o.User != "" {
		auth := smtp.PlainAuth("", o.User, o.Pass, o.Host)
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(o.From); err != nil {
		return "", fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(o.To); err != nil {
		return "", fmt.Errorf("rcpt to: %w", err)
	}

	reply, err := sendData(client, o.Message)
	if err != nil {
		return "", fmt.Errorf("data: %w", err)
	}

	_ = client.Quit()
	return reply, nil
}

// sendData submits the message body and captures the server's 250 reply,
// which smtp.Client's own Data method discards. The preview mailbox needs
// that reply text to build its message URL.
func sendData(client *smtp.Client, msg []byte) (string, error) {
	id, err := client.Text.Cmd("DATA")
	if err != nil {
		return "", err
	}
	client.Text.StartResponse(id)
	_, _, err = client.Text.ReadResponse(354)
	client.Text.EndResponse(id)
	if err != nil {
		return "", err
	}

	w := client.Text.DotWriter()
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	_, reply, err := client.Text.ReadResponse(250)
	return reply, err
}

// smtpTransport is the primary transport: whatever SMTP relay the operator
// configured (Brevo, Mailgun SMTP, a self-hosted postfix, ...).
type smtpTransport struct {
	host string
	port int
	user string
	pass string
	to   string
}

func NewSMTPTransport(cfg *config.Config) Transport {
	return &smtpTransport{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
		to:   cfg.ContactTo(),
	}
}

func (t *smtpTransport) Name() string {
	return "smtp"
}

func (t *smtpTransport) Available() bool {
	return t.host != "" && t.port != 0 && t.user != "" && t.pass != "" && t.to != ""
}

func (t *smtpTransport) Send(ctx context.Context, req *domain.ContactRequest) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	reply, err := smtpSendHook(ctx, smtpOptions{
		Host:    t.host,
		Port:    t.port,
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
