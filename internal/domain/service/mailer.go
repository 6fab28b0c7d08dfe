package service

import "context"

// Mailer defines the interface for sending notification mail.
// Implementations must be safe to call from goroutines; delivery failures are
// logged, never surfaced to the caller's request.
type Mailer interface {
	// Send delivers a plain-text message to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}
