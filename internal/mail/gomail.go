package mail

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// GmailSender sends email through an SMTP submission port using gomail.
// It works with Gmail app passwords and any standard authenticated SMTP
// server.
type GmailSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewGmailSender creates a new SMTP-based sender from the given account
// configuration.
func NewGmailSender(cfg Config, logger *slog.Logger) *GmailSender {
	return &GmailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		logger: logger,
	}
}

// Send dials the SMTP server and delivers one message. gomail carries no
// context support; a hung dial hangs the request, matching the rest of the
// pipeline (no timeout is implemented anywhere in this system).
func (s *GmailSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("failed to send email",
			"to", msg.To,
			"subject", msg.Subject,
			"error", err,
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent",
		"to", msg.To,
		"subject", msg.Subject,
	)

	return nil
}

// Compile-time interface check
var _ Sender = (*GmailSender)(nil)
