package contactform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"contactrelay/internal/domain"
)

func validFields() Fields {
	return Fields{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "Would you like to work on an engine together?",
	}
}

func TestValidate_TrimsFields(t *testing.T) {
	f := validFields()
	f.Name = "  Ada  "
	f.Message = "\n  Ten chars at least \t"

	got, errs := Validate(f)
	assert.Empty(t, errs)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "Ten chars at least", got.Message)
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
		field  string
		want   string
	}{
		{"empty name", func(f *Fields) { f.Name = "   " }, domain.FieldName, "Name is required"},
		{"long name", func(f *Fields) { f.Name = strings.Repeat("n", 101) }, domain.FieldName, "Name must be less than 100 characters"},
		{"bad email", func(f *Fields) { f.Email = "ada.example.com" }, domain.FieldEmail, "Please enter a valid email"},
		{"long email", func(f *Fields) { f.Email = strings.Repeat("a", 250) + "@example.com" }, domain.FieldEmail, "Email must be less than 255 characters"},
		{"empty subject", func(f *Fields) { f.Subject = "" }, domain.FieldSubject, "Subject is required"},
		{"long subject", func(f *Fields) { f.Subject = strings.Repeat("s", 201) }, domain.FieldSubject, "Subject must be less than 200 characters"},
		{"short message", func(f *Fields) { f.Message = "   short   " }, domain.FieldMessage, "Message must be at least 10 characters"},
		{"long message", func(f *Fields) { f.Message = strings.Repeat("m", 2001) }, domain.FieldMessage, "Message must be less than 2000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			_, errs := Validate(f)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[tt.field])
		})
	}
}

func TestValidate_BoundariesAreInclusive(t *testing.T) {
	f := Fields{
		Name:    strings.Repeat("n", 100),
		Email:   "a@example.com",
		Subject: strings.Repeat("s", 200),
		Message: strings.Repeat("m", 10),
	}
	_, errs := Validate(f)
	assert.Empty(t, errs)

	f.Message = strings.Repeat("é", 2000)
	_, errs = Validate(f)
	assert.Empty(t, errs)
}
