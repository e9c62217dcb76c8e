package domain

import (
	"fmt"
	"strings"
)

// Submission is the normalized record derived from one inbound form POST.
// It is constructed, validated, and consumed within a single request
// lifecycle — never stored and never shared across requests.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// Normalize builds a Submission from an untrusted parsed-body mapping. Every
// field is coerced to a string and trimmed; an absent field degrades to the
// empty string. When no name field is present, the name is synthesized from
// firstName and lastName.
func Normalize(payload map[string]any) Submission {
	name := field(payload, "name")
	if name == "" {
		first := field(payload, "firstName")
		last := field(payload, "lastName")
		name = strings.TrimSpace(first + " " + last)
	}

	return Submission{
		Name:    name,
		Email:   field(payload, "email"),
		Phone:   field(payload, "phone"),
		Service: field(payload, "service"),
		Message: field(payload, "message"),
	}
}

// WithContactDefaults fills the contact form's fallback values for fields
// that cannot fail validation on that form.
func (s Submission) WithContactDefaults() Submission {
	if s.Name == "" {
		s.Name = "Unknown"
	}
	if s.Service == "" {
		s.Service = "Not specified"
	}
	return s
}

// ValidateContact checks the contact form's required fields. Only the email
// is required; every other field has a default.
func (s Submission) ValidateContact() error {
	if s.Email == "" {
		return Invalid("submission.validate", "Email is required")
	}
	return nil
}

// ValidateBookCall checks the book-call form's required fields. No format
// validation is performed; any non-empty string passes.
func (s Submission) ValidateBookCall() error {
	if s.Name == "" || s.Email == "" || s.Phone == "" || s.Service == "" {
		return Invalid("submission.validate", "Please fill all required fields.")
	}
	return nil
}

// field coerces a payload value to a trimmed string. Non-string values
// degrade to their printed form, never an error.
func field(payload map[string]any, key string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return strings.TrimSpace(s)
}
