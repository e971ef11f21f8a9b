package mail

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/config"
)

func stubAccount() *etherealAccount {
	account := &etherealAccount{
		User: "ephemeral@ethereal.email",
		Pass: "generated",
	}
	account.SMTP.Host = "smtp.ethereal.email"
	account.SMTP.Port = 587
	return account
}

func TestEtherealAvailability(t *testing.T) {
	t.Run("available outside production", func(t *testing.T) {
		tr := NewEtherealTransport(&config.Config{Environment: "development"})
		assert.True(t, tr.Available())
	})

	t.Run("never available in production", func(t *testing.T) {
		tr := NewEtherealTransport(&config.Config{Environment: "production"})
		assert.False(t, tr.Available())
	})

	t.Run("production flag is case-insensitive", func(t *testing.T) {
		tr := NewEtherealTransport(&config.Config{Environment: "Production"})
		assert.False(t, tr.Available())
	})
}

func TestEtherealSend(t *testing.T) {
	origCreate, origSend := createAccountHook, smtpSendHook
	defer func() { createAccountHook, smtpSendHook = origCreate, origSend }()

	createAccountHook = func(ctx context.Context) (*etherealAccount, error) {
		return stubAccount(), nil
	}

	var captured smtpOptions
	smtpSendHook = func(ctx context.Context, o smtpOptions) (string, error) {
		captured = o
		return "Accepted [STATUS=new MSGID=abc.def-123]", nil
	}

	tr := NewEtherealTransport(&config.Config{Environment: "development"})
	receipt, err := tr.Send(context.Background(), submission())
	assert.NoError(t, err)
	assert.Equal(t, "abc.def-123", receipt.MessageID)
	assert.Equal(t, "https://ethereal.email/message/abc.def-123", receipt.PreviewURL)

	assert.Equal(t, "smtp.ethereal.email", captured.Host)
	assert.Equal(t, "ephemeral@ethereal.email", captured.From)
	assert.Equal(t, previewRecipient, captured.To)
}

func TestEtherealSendErrors(t *testing.T) {
	origCreate, origSend := createAccountHook, smtpSendHook
	defer func() { createAccountHook, smtpSendHook = origCreate, origSend }()

	t.Run("account creation failure", func(t *testing.T) {
		createAccountHook = func(ctx context.Context) (*etherealAccount, error) {
			return nil, fmt.Errorf("create preview account: status 502")
		}

		tr := NewEtherealTransport(&config.Config{})
		_, err := tr.Send(context.Background(), submission())
		assert.Error(t, err)
	})

	t.Run("reply without message id", func(t *testing.T) {
		createAccountHook = func(ctx context.Context) (*etherealAccount, error) {
			return stubAccount(), nil
		}
		smtpSendHook = func(ctx context.Context, o smtpOptions) (string, error) {
			return "250 queued", nil
		}

		tr := NewEtherealTransport(&config.Config{})
		_, err := tr.Send(context.Background(), submission())
		assert.Error(t, err)
	})
}
