package model

import "context"

// Mailer delivers outbound notification email. Send is awaited by callers so
// a delivery failure can roll back state created before the send.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
