package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/domain"
)

func submission() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "Line one\nLine two",
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("login@relay.example", "owner@example.com", submission()))

	t.Run("headers", func(t *testing.T) {
		assert.Contains(t, msg, "From: Portfolio Contact <login@relay.example>\r\n")
		assert.Contains(t, msg, "To: owner@example.com\r\n")
		// The visitor address goes into Reply-To, never From
		assert.Contains(t, msg, "Reply-To: jane@example.com\r\n")
		assert.Contains(t, msg, "Subject: [Portfolio] Project inquiry\r\n")
		assert.Contains(t, msg, "Content-Type: multipart/alternative")
	})

	t.Run("plain text part", func(t *testing.T) {
		assert.Contains(t, msg, "From: Jane Visitor <jane@example.com>")
		assert.Contains(t, msg, "Line one\r\nLine two")
	})

	t.Run("html part", func(t *testing.T) {
		assert.Contains(t, msg, "<p><strong>From:</strong> Jane Visitor &lt;jane@example.com&gt;</p>")
		assert.Contains(t, msg, "<p>Line one<br/>Line two</p>")
	})
}

func TestHTMLBodyEscaping(t *testing.T) {
	req := submission()
	req.Name = `<script>alert("x")</script>`
	req.Message = "a < b & c > d"

	body := htmlBody(req)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "a &lt; b &amp; c &gt; d")
}

func TestBuildMessageCRLFOnly(t *testing.T) {
	msg := string(buildMessage("login@relay.example", "owner@example.com", submission()))
	// SMTP requires CRLF line endings throughout
	assert.NotContains(t, strings.ReplaceAll(msg, "\r\n", ""), "\n")
}
