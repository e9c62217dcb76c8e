package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_NameResolution(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{
			name:    "explicit name wins",
			payload: map[string]any{"name": "Grace Hopper", "firstName": "Ada", "lastName": "Lovelace"},
			want:    "Grace Hopper",
		},
		{
			name:    "synthesized from first and last",
			payload: map[string]any{"firstName": "Ada", "lastName": "Lovelace"},
			want:    "Ada Lovelace",
		},
		{
			name:    "first name only",
			payload: map[string]any{"firstName": "Ada"},
			want:    "Ada",
		},
		{
			name:    "last name only",
			payload: map[string]any{"lastName": "Lovelace"},
			want:    "Lovelace",
		},
		{
			name:    "explicit name is trimmed",
			payload: map[string]any{"name": "  Bob  "},
			want:    "Bob",
		},
		{
			name:    "no name fields",
			payload: map[string]any{"email": "a@b.example"},
			want:    "",
		},
		{
			name:    "whitespace-only name falls back to parts",
			payload: map[string]any{"name": "   ", "firstName": "Ada", "lastName": "Lovelace"},
			want:    "Ada Lovelace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.payload)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestNormalize_TrimsAndCoerces(t *testing.T) {
	got := Normalize(map[string]any{
		"email":   "  user@example.com  ",
		"phone":   42.0, // JSON numbers arrive as float64
		"service": " Cloud Migration ",
		"message": nil,
	})

	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, "42", got.Phone)
	assert.Equal(t, "Cloud Migration", got.Service)
	assert.Equal(t, "", got.Message)
}

func TestNormalize_EmptyPayload(t *testing.T) {
	got := Normalize(map[string]any{})
	assert.Equal(t, Submission{}, got)
}

func TestWithContactDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Submission
		want Submission
	}{
		{
			name: "empty fields get fallbacks",
			in:   Submission{Email: "a@b.example"},
			want: Submission{Name: "Unknown", Email: "a@b.example", Service: "Not specified"},
		},
		{
			name: "populated fields untouched",
			in:   Submission{Name: "Ada", Email: "a@b.example", Service: "Audit"},
			want: Submission{Name: "Ada", Email: "a@b.example", Service: "Audit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithContactDefaults())
		})
	}
}

func TestValidateContact(t *testing.T) {
	assert.NoError(t, Submission{Email: "a@b.example"}.ValidateContact())

	err := Submission{Name: "Ada"}.ValidateContact()
	assert.Error(t, err)
	assert.Equal(t, EINVALID, ErrorCode(err))
	assert.Equal(t, "Email is required", ErrorMessage(err))

	// No format validation: any non-empty string passes.
	assert.NoError(t, Submission{Email: "not-an-email"}.ValidateContact())
}

func TestValidateBookCall(t *testing.T) {
	valid := Submission{Name: "Ada", Email: "a@b.example", Phone: "123", Service: "Audit"}
	assert.NoError(t, valid.ValidateBookCall())

	tests := []struct {
		name string
		mod  func(Submission) Submission
	}{
		{"missing name", func(s Submission) Submission { s.Name = ""; return s }},
		{"missing email", func(s Submission) Submission { s.Email = ""; return s }},
		{"missing phone", func(s Submission) Submission { s.Phone = ""; return s }},
		{"missing service", func(s Submission) Submission { s.Service = ""; return s }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mod(valid).ValidateBookCall()
			assert.Error(t, err)
			assert.Equal(t, EINVALID, ErrorCode(err))
			assert.Equal(t, "Please fill all required fields.", ErrorMessage(err))
		})
	}

	// Message is optional.
	valid.Message = ""
	assert.NoError(t, valid.ValidateBookCall())
}
