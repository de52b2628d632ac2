package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names as they appear in the JSON body and in FieldErrors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Length bounds, counted in characters after trimming.
const (
	NameMaxLength    = 100
	EmailMaxLength   = 255
	SubjectMaxLength = 200
	MessageMinLength = 10
	MessageMaxLength = 2000
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ContactSubmission represents one contact form payload.
// It lives for a single request and is never stored.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

// HasErrors reports whether any field failed validation
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (c ContactSubmission) Trimmed() ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Subject: strings.TrimSpace(c.Subject),
		Message: strings.TrimSpace(c.Message),
	}
}

// MissingFields lists the fields that are empty after trimming, in form order.
func (c ContactSubmission) MissingFields() []string {
	t := c.Trimmed()
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{FieldName, t.Name},
		{FieldEmail, t.Email},
		{FieldSubject, t.Subject},
		{FieldMessage, t.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Validate checks every field of the trimmed submission against its
// length and format rules. The returned map is empty when c is valid.
func (c ContactSubmission) Validate() FieldErrors {
	t := c.Trimmed()
	errs := FieldErrors{}

	switch n := utf8.RuneCountInString(t.Name); {
	case n == 0:
		errs[FieldName] = "Name is required"
	case n > NameMaxLength:
		errs[FieldName] = "Name must be less than 100 characters"
	}

	switch {
	case !IsValidEmail(t.Email):
		errs[FieldEmail] = "Please enter a valid email"
	case utf8.RuneCountInString(t.Email) > EmailMaxLength:
		errs[FieldEmail] = "Email must be less than 255 characters"
	}

	switch n := utf8.RuneCountInString(t.Subject); {
	case n == 0:
		errs[FieldSubject] = "Subject is required"
	case n > SubjectMaxLength:
		errs[FieldSubject] = "Subject must be less than 200 characters"
	}

	switch n := utf8.RuneCountInString(t.Message); {
	case n < MessageMinLength:
		errs[FieldMessage] = "Message must be at least 10 characters"
	case n > MessageMaxLength:
		errs[FieldMessage] = "Message must be less than 2000 characters"
	}

	return errs
}

// IsValidEmail reports whether s has standard email address syntax
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}
