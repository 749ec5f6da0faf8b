package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist stores revoked token IDs in Redis until their natural
// expiry, so logged-out tokens stop working immediately.
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

func blacklistKey(jti string) string {
	return "token:blacklist:" + jti
}

func (b *TokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	const op = "repo.token.Add"

	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}

	if err := b.rdb.Set(ctx, blacklistKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (b *TokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	const op = "repo.token.Contains"

	n, err := b.rdb.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}
