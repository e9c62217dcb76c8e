package mock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spacesoft/enquiry/internal/mail"
)

// Sender is a mock mail sender for testing and development. It records every
// attempted message and can be configured to fail sends.
type Sender struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []mail.Message

	// Configurable failures for testing
	SendError   error  // returned from every Send when set
	FailSubject string // fail only messages with this subject
}

// New creates a new mock sender.
func New(logger *slog.Logger) *Sender {
	return &Sender{
		logger: logger,
	}
}

// Send records the message and returns the configured failure, if any.
func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()

	if s.SendError != nil {
		return s.SendError
	}
	if s.FailSubject != "" && s.FailSubject == msg.Subject {
		return errFailSubject
	}

	s.logger.Info("mock email sent",
		"to", msg.To,
		"subject", msg.Subject,
	)

	return nil
}

// Sent returns a copy of every message passed to Send, in order, including
// messages whose send was made to fail.
func (s *Sender) Sent() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mail.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

// Reset clears recorded messages and configured failures.
func (s *Sender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.SendError = nil
	s.FailSubject = ""
}

var errFailSubject = errSentinel("mock: send failed")

type errSentinel string

func (e errSentinel) Error() string { return string(e) }

// Compile-time interface check
var _ mail.Sender = (*Sender)(nil)
