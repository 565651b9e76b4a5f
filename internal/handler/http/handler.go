package http

import (
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies marks the session cookie Secure outside development.
	secureCookies bool

	// requestTimeout bounds every request through chi's Timeout middleware.
	requestTimeout time.Duration

	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		secureCookies:  cfg.App.SecureCookies(),
		requestTimeout: cfg.Server.RequestTimeout,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
