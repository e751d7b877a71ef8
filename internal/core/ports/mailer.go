package ports

import "context"

// Mailer delivers a single outbound message through the configured relay.
// Implementations are constructed once at process start and injected.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
