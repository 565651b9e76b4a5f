package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level and rejected requests at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), accessLogKey{}, lw)))

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		var entry *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			entry = log.Error()
		case status >= http.StatusBadRequest:
			entry = log.Warn()
		default:
			entry = log.Info()
		}

		// set by the route guard on protected routes
		if lw.userID != "" {
			entry = entry.Str("user_id", lw.userID)
		}

		entry.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
