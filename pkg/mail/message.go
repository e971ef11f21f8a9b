package mail

import (
	"fmt"
	"html"
	"strings"

	"portfolio-backend/internal/domain"
)

// senderLabel is the fixed display name on outgoing contact mail. The
// visitor's address goes into Reply-To, never From, so the sending domain
// always matches the authenticated account.
const senderLabel = "Portfolio Contact"

const subjectPrefix = "[Portfolio] "

const mimeBoundary = "portfolio-contact-alt"

// textBody renders the plain text part.
func textBody(req *domain.ContactRequest) string {
	return fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
}

// htmlBody renders a lightly escaped HTML part. This is not a sanitizer:
// the output is read in a mail client, so escaping the interpolated fields
// and converting newlines to <br/> is all that is needed.
func htmlBody(req *domain.ContactRequest) string {
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br/>")
	return fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(req.Name), html.EscapeString(req.Email), message)
}

// buildMessage constructs the full RFC 5322 message as multipart/alternative
// with a plain text part and an HTML part.
func buildMessage(from, to string, req *domain.ContactRequest) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", senderLabel, from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", req.Email)
	fmt.Fprintf(&b, "Subject: %s%s\r\n", subjectPrefix, req.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", mimeBoundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(textBody(req), "\n", "\r\n"))
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(htmlBody(req))
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)

	return []byte(b.String())
}
