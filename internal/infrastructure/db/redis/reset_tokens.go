package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/procurex/committee-service/internal/core/domain"
)

// TokenStore persists password-reset tokens in Redis, keyed by the SHA-256
// hash of the raw token. Expiry is handled entirely by the key TTL.
// Key format: pwreset:<token_hash>
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save records a reset token for userID. The token becomes unusable once the
// TTL elapses.
func (s *TokenStore) Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenHash), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Consume atomically fetches and deletes the token, so it can be used at
// most once.
func (s *TokenStore) Consume(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func (s *TokenStore) key(tokenHash string) string {
	return "pwreset:" + tokenHash
}
