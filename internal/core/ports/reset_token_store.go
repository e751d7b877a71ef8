package ports

import (
	"context"
	"time"
)

// ResetTokenStore keeps password-reset tokens until they expire or are
// consumed. Tokens are stored by hash; the raw token only travels by email.
type ResetTokenStore interface {
	Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	// Consume atomically fetches and deletes the token, returning the user ID
	// it was issued for. Unknown or expired tokens fail with
	// domain.ErrResetTokenInvalid.
	Consume(ctx context.Context, tokenHash string) (string, error)
}
