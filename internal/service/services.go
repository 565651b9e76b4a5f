package service

import (
	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/store"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	EventService   EventService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	tokenService := NewTokenService(storages.TokenDenylist, ids, cfg.App, logger)

	return &Services{
		TokenService: tokenService,
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.EventRepository,
			tokenService,
			ids,
			cfg.App,
			logger,
		),
		EventService:   NewEventService(storages.EventRepository, storages.UserRepository, storages.ImageStorage, ids, logger),
		AppInfoService: appInfoService,
	}, nil
}
