package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spacesoft/enquiry/internal/domain"
	"github.com/spacesoft/enquiry/internal/mail"
	"github.com/spacesoft/enquiry/internal/metrics"
)

// Form identifies which public form produced a submission.
type Form string

const (
	FormContact  Form = "contact"
	FormBookCall Form = "book-call"
)

// EnquiryService relays a validated submission as two outbound emails: a
// lead notification to the business inbox, then an acknowledgment to the
// submitter. Both must be accepted by the transport for the submission to
// count as delivered.
type EnquiryService struct {
	sender    mail.Sender
	user      string
	password  string
	leadInbox string
	logger    *slog.Logger
}

// EnquiryConfig carries the mail account identity used by the service.
// Injected explicitly so tests can run with fake credentials.
type EnquiryConfig struct {
	User      string // Sender account identity
	Password  string // Transport credential (app password)
	LeadInbox string // Optional override recipient for lead notifications
}

// NewEnquiryService creates a new enquiry service. The lead inbox falls back
// to the sender identity when no distinct recipient is configured.
func NewEnquiryService(sender mail.Sender, cfg EnquiryConfig, logger *slog.Logger) *EnquiryService {
	leadInbox := cfg.LeadInbox
	if leadInbox == "" {
		leadInbox = cfg.User
	}
	return &EnquiryService{
		sender:    sender,
		user:      cfg.User,
		password:  cfg.Password,
		leadInbox: leadInbox,
		logger:    logger,
	}
}

// Submit dispatches the two notification emails for one submission, strictly
// in order: lead notification first, acknowledgment second. It refuses before
// any network call when the mail credentials are absent.
//
// A failure of either send fails the whole submission. The lead notification
// may already be out by then; rollback is not meaningful for sent mail and
// none is attempted.
func (s *EnquiryService) Submit(ctx context.Context, form Form, sub domain.Submission) error {
	if s.user == "" || s.password == "" {
		return domain.Unconfigured("enquiry.submit", "Mail service is not configured.")
	}

	if err := s.sender.Send(ctx, composeLead(form, sub, s.leadInbox)); err != nil {
		metrics.EmailSendFailuresTotal.WithLabelValues("lead").Inc()
		return domain.Unavailable(err, "enquiry.submit", "Failed to send email.")
	}
	metrics.EmailsSentTotal.WithLabelValues("lead").Inc()

	if err := s.sender.Send(ctx, composeAck(form, sub)); err != nil {
		metrics.EmailSendFailuresTotal.WithLabelValues("ack").Inc()
		return domain.Unavailable(err, "enquiry.submit", "Failed to send email.")
	}
	metrics.EmailsSentTotal.WithLabelValues("ack").Inc()

	s.logger.Info("submission relayed",
		"form", string(form),
		"service", sub.Service,
	)

	return nil
}

// composeLead builds the notification sent to the business inbox. The body
// lists every submission field in a fixed order, with placeholders for the
// optional ones. Reply-to is set to the submitter so the business can answer
// directly.
func composeLead(form Form, sub domain.Submission, to string) mail.Message {
	subject := "New Book a Call Request"
	if form == FormContact {
		subject = "New website enquiry: " + sub.Service
	}

	phone := sub.Phone
	if phone == "" {
		phone = "Not provided"
	}
	message := sub.Message
	if message == "" {
		message = "(empty)"
	}

	body := strings.Join([]string{
		"Name: " + sub.Name,
		"Email: " + sub.Email,
		"Phone: " + phone,
		"Service: " + sub.Service,
		"",
		"Message:",
		message,
	}, "\n")

	return mail.Message{
		FromName: "SpaceSoft Website",
		To:       to,
		ReplyTo:  sub.Email,
		Subject:  subject,
		Body:     body,
	}
}

// composeAck builds the confirmation sent back to the submitter. It carries
// no reply-to override.
func composeAck(form Form, sub domain.Submission) mail.Message {
	if form == FormBookCall {
		return mail.Message{
			FromName: "SpaceSoft Consultancy",
			To:       sub.Email,
			Subject:  "Your call request has been received",
			Body: "Hi " + sub.Name + ",\n\n" +
				"Thanks for booking a call with SpaceSoft Consultancy. We received your request and will contact you shortly.\n\n" +
				"Regards,\nSpaceSoft Consultancy",
		}
	}

	return mail.Message{
		FromName: "SpaceSoft Consultancy",
		To:       sub.Email,
		Subject:  "We received your request",
		Body: "Hi " + sub.Name + ",\n\n" +
			"Thanks for reaching out. We received your request and will get back to you soon.\n\n" +
			"- SpaceSoft Consultancy",
	}
}
