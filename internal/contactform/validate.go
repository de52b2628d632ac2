// Package contactform is the client side of the contact form: it validates
// user input, submits it to the relay and tracks the form's display state.
package contactform

import (
	"contactrelay/internal/domain"
)

// Fields is the raw user input, as typed into the form.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate trims every field and checks it against the submission rules.
// The returned submission is only meaningful when the error map is empty.
func Validate(f Fields) (domain.ContactSubmission, domain.FieldErrors) {
	submission := domain.ContactSubmission{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	}.Trimmed()
	return submission, submission.Validate()
}
