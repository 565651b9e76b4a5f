package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "volunteer-hub:revoked:"

// tokenDenylist stores revoked token ids in Redis. Each key expires together
// with the token it revokes, so the set never outgrows the live tokens.
type tokenDenylist struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewTokenDenylist constructs a [TokenDenylist] on top of client.
func NewTokenDenylist(client *redis.Client, logger *logger.Logger) TokenDenylist {
	logger.Debug().Msg("creating token denylist")
	return &tokenDenylist{
		client: client,
		logger: logger,
	}
}

// Revoke marks tokenID as revoked for ttl. A non-positive ttl means the
// token has already expired and nothing is stored.
func (d *tokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, denylistKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tokenDenylist.Revoke").
			Str("token_id", tokenID).
			Msg("failed to revoke token")
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

// IsRevoked reports whether tokenID was revoked and has not expired yet.
func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	err := d.client.Get(ctx, denylistKeyPrefix+tokenID).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "tokenDenylist.IsRevoked").
			Str("token_id", tokenID).
			Msg("failed to check token")
		return false, fmt.Errorf("check revoked token: %w", err)
	}
}

// noopDenylist is used when Redis is not configured. Tokens then stay valid
// until they expire.
type noopDenylist struct{}

// NewNoopDenylist returns a [TokenDenylist] that never revokes anything.
func NewNoopDenylist() TokenDenylist {
	return noopDenylist{}
}

func (noopDenylist) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
