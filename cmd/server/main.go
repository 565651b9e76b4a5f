package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/handler"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/server"
	"github.com/MKhiriev/go-volunteer-hub/internal/service"
	"github.com/MKhiriev/go-volunteer-hub/internal/store"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("volunteer-hub-server")
	logBuildInfo(log, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("env", cfg.App.Environment).
		Bool("redis", cfg.Storage.Redis.Address != "").
		Bool("images", cfg.Storage.Images.Endpoint != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func logBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	info = info.OrDefault("N/A")

	log.Info().
		Str("build_version", info.BuildVersion()).
		Str("build_date", info.BuildDate()).
		Str("build_commit", info.BuildCommit()).
		Msg("starting volunteer hub")
}
