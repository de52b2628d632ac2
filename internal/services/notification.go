package services

import (
	"fmt"
	"strings"

	"contactrelay/internal/domain"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var lineBreaker = strings.NewReplacer(
	"\r\n", "<br>",
	"\n", "<br>",
)

// EscapeHTML escapes the five HTML metacharacters
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// sanitizedSubmission holds field values that are safe to embed in HTML.
type sanitizedSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// sanitize trims and escapes every field. Line breaks in the message are
// substituted only after escaping so no unescaped markup is reintroduced.
func sanitize(c domain.ContactSubmission) sanitizedSubmission {
	t := c.Trimmed()
	escapedMessage := EscapeHTML(t.Message)
	return sanitizedSubmission{
		Name:    EscapeHTML(t.Name),
		Email:   EscapeHTML(t.Email),
		Subject: EscapeHTML(t.Subject),
		Message: lineBreaker.Replace(escapedMessage),
	}
}

// notificationSubject builds the subject line for the site owner
func notificationSubject(prefix string, s sanitizedSubmission) string {
	return prefix + s.Subject
}

// notificationHTML renders the owner notification body
func notificationHTML(s sanitizedSubmission) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #8B5CF6;">New Contact Form Submission</h2>
    <p><strong>From:</strong> %s (%s)</p>
    <p><strong>Subject:</strong> %s</p>
    <div style="background: #f5f5f5; padding: 15px; border-radius: 8px; margin-top: 15px;">
      <p><strong>Message:</strong></p>
      <p>%s</p>
    </div>
  </body>
</html>`, s.Name, s.Email, s.Subject, s.Message)
}
