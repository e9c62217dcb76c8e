package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesoft/enquiry/internal/domain"
	"github.com/spacesoft/enquiry/internal/mail/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSubmission() domain.Submission {
	return domain.Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+44 20 7946 0000",
		Service: "Cloud Migration",
		Message: "Please call in the afternoon.",
	}
}

func newTestService(sender *mock.Sender) *EnquiryService {
	return NewEnquiryService(sender, EnquiryConfig{
		User:      "sender@business.example",
		Password:  "app-password",
		LeadInbox: "leads@business.example",
	}, discardLogger())
}

func TestSubmit_SendsLeadThenAck(t *testing.T) {
	sender := mock.New(discardLogger())
	svc := newTestService(sender)

	err := svc.Submit(context.Background(), FormContact, testSubmission())
	require.NoError(t, err)

	sent := sender.Sent()
	require.Len(t, sent, 2)

	lead := sent[0]
	assert.Equal(t, "leads@business.example", lead.To)
	assert.Equal(t, "ada@example.com", lead.ReplyTo)
	assert.Equal(t, "New website enquiry: Cloud Migration", lead.Subject)
	assert.Contains(t, lead.Body, "Name: Ada Lovelace")
	assert.Contains(t, lead.Body, "Email: ada@example.com")
	assert.Contains(t, lead.Body, "Phone: +44 20 7946 0000")
	assert.Contains(t, lead.Body, "Service: Cloud Migration")
	assert.Contains(t, lead.Body, "Please call in the afternoon.")

	ack := sent[1]
	assert.Equal(t, "ada@example.com", ack.To)
	assert.Empty(t, ack.ReplyTo)
	assert.Equal(t, "We received your request", ack.Subject)
	assert.Contains(t, ack.Body, "Hi Ada Lovelace,")
}

func TestSubmit_BookCallSubjects(t *testing.T) {
	sender := mock.New(discardLogger())
	svc := newTestService(sender)

	err := svc.Submit(context.Background(), FormBookCall, testSubmission())
	require.NoError(t, err)

	sent := sender.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "New Book a Call Request", sent[0].Subject)
	assert.Equal(t, "Your call request has been received", sent[1].Subject)
}

func TestSubmit_LeadInboxFallsBackToSender(t *testing.T) {
	sender := mock.New(discardLogger())
	svc := NewEnquiryService(sender, EnquiryConfig{
		User:     "sender@business.example",
		Password: "app-password",
	}, discardLogger())

	err := svc.Submit(context.Background(), FormContact, testSubmission())
	require.NoError(t, err)

	sent := sender.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "sender@business.example", sent[0].To)
}

func TestSubmit_PlaceholdersForOptionalFields(t *testing.T) {
	sender := mock.New(discardLogger())
	svc := newTestService(sender)

	sub := domain.Submission{Name: "Unknown", Email: "a@b.example", Service: "Not specified"}
	err := svc.Submit(context.Background(), FormContact, sub)
	require.NoError(t, err)

	lead := sender.Sent()[0]
	assert.Contains(t, lead.Body, "Phone: Not provided")
	assert.Contains(t, lead.Body, "(empty)")
}

func TestSubmit_RefusesWithoutCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  EnquiryConfig
	}{
		{"no user", EnquiryConfig{Password: "app-password"}},
		{"no password", EnquiryConfig{User: "sender@business.example"}},
		{"neither", EnquiryConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := mock.New(discardLogger())
			svc := NewEnquiryService(sender, tt.cfg, discardLogger())

			err := svc.Submit(context.Background(), FormContact, testSubmission())
			require.Error(t, err)
			assert.Equal(t, domain.EUNCONFIGURED, domain.ErrorCode(err))
			assert.Equal(t, "Mail service is not configured.", domain.ErrorMessage(err))

			// Refusal happens before any transport call.
			assert.Empty(t, sender.Sent())
		})
	}
}

func TestSubmit_LeadFailureStopsPipeline(t *testing.T) {
	sender := mock.New(discardLogger())
	sender.FailSubject = "New website enquiry: Cloud Migration"
	svc := newTestService(sender)

	err := svc.Submit(context.Background(), FormContact, testSubmission())
	require.Error(t, err)
	assert.Equal(t, domain.EUNAVAILABLE, domain.ErrorCode(err))
	assert.Equal(t, "Failed to send email.", domain.ErrorMessage(err))

	// The acknowledgment is never attempted.
	assert.Len(t, sender.Sent(), 1)
}

func TestSubmit_AckFailureFailsWholeOperation(t *testing.T) {
	sender := mock.New(discardLogger())
	sender.FailSubject = "We received your request"
	svc := newTestService(sender)

	err := svc.Submit(context.Background(), FormContact, testSubmission())
	require.Error(t, err)
	assert.Equal(t, domain.EUNAVAILABLE, domain.ErrorCode(err))

	// Both sends were attempted; the lead notification is already out.
	assert.Len(t, sender.Sent(), 2)
}

func TestSubmit_TransportDetailNotEchoed(t *testing.T) {
	sender := mock.New(discardLogger())
	sender.SendError = errors.New("535 5.7.8 authentication credentials invalid")
	svc := newTestService(sender)

	err := svc.Submit(context.Background(), FormContact, testSubmission())
	require.Error(t, err)
	assert.Equal(t, "Failed to send email.", domain.ErrorMessage(err))
	assert.NotContains(t, domain.ErrorMessage(err), "535")
}

func TestSubmit_NoDeduplication(t *testing.T) {
	sender := mock.New(discardLogger())
	svc := newTestService(sender)

	sub := testSubmission()
	require.NoError(t, svc.Submit(context.Background(), FormContact, sub))
	require.NoError(t, svc.Submit(context.Background(), FormContact, sub))

	assert.Len(t, sender.Sent(), 4)
}
