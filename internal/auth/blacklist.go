package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const blacklistPrefix = "jwt-blacklist:"

// Blacklist stores revoked tokens in redis until they expire on their own.
type Blacklist struct {
	client *redis.Client
}

func NewBlacklist(addr, password string, db int) *Blacklist {
	return &Blacklist{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Add revokes a token. The entry expires together with the token, there is
// no reason to remember it longer.
func (b *Blacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	return b.client.Set(ctx, blacklistPrefix+token, true, ttl).Err()
}

// Contains reports whether a token has been revoked.
func (b *Blacklist) Contains(ctx context.Context, token string) (bool, error) {
	err := b.client.Get(ctx, blacklistPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("checking token revocation failed: %w", err)
	}

	return true, nil
}

// Close closes the underlying redis connection.
func (b *Blacklist) Close() error {
	return b.client.Close()
}
