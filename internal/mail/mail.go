// Package mail provides outbound email delivery for the enquiry backend.
//
// This package defines a Sender interface with implementations for:
// - Gmail SMTP submission (production)
// - A recording mock for tests and development (internal/mail/mock)
package mail

import (
	"context"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Sender delivers a single outbound email message.
//
// Implementations must treat a rejected or failed delivery as an error; the
// caller decides how the failure surfaces. There is no retry and no partial
// acceptance.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// =============================================================================
// Message and Configuration Types
// =============================================================================

// Message represents one outbound email. The sender address itself comes
// from the transport configuration; FromName only sets the display name.
type Message struct {
	FromName string // Display name for the sender identity
	To       string // Recipient email address
	ReplyTo  string // Optional reply-to override
	Subject  string // Email subject line
	Body     string // Plain text content of the email
}

// Config holds the SMTP account used for all outbound mail.
type Config struct {
	Host     string // SMTP server hostname (e.g., "smtp.gmail.com")
	Port     int    // SMTP submission port (e.g., 587)
	User     string // Sender account identity
	Password string // Transport credential (Gmail app password)
}
