package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every persistence backend used by the services.
type Storages struct {
	UserRepository  UserRepository
	EventRepository EventRepository
	TokenDenylist   TokenDenylist
	ImageStorage    ImageStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and connects the
// optional Redis denylist and MinIO image storage. Backends without a
// configured address fall back to no-op implementations.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:  NewUserRepository(db, log),
		EventRepository: NewEventRepository(db, log),
		TokenDenylist:   NewNoopDenylist(),
		ImageStorage:    NewNoopImageStorage(),
		db:              db,
	}

	if cfg.Redis.Address != "" {
		rdb, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
		storages.redis = rdb
		storages.TokenDenylist = NewTokenDenylist(rdb, log)
		log.Info().Str("func", "NewStorages").Str("address", cfg.Redis.Address).Msg("token revocation enabled")
	} else {
		log.Warn().Str("func", "NewStorages").Msg("redis is not configured: logout will not revoke tokens")
	}

	if cfg.Images.Endpoint != "" {
		images, err := NewImageStorage(ctx, cfg.Images, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("image storage: %w", err)
		}
		storages.ImageStorage = images
	} else {
		log.Warn().Str("func", "NewStorages").Msg("object storage is not configured: event images are disabled")
	}

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = errors.Join(err, s.redis.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
