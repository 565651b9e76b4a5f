package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/signup", h.signup)
		r.Post("/api/users/login", h.login)
		r.Post("/api/users/logout", h.logout)
		r.Get("/api/events/{id}/image", h.getEventImage)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.authorize)

		r.Get("/api/users/", h.listUsers)
		r.Post("/api/users/curr", h.currentUser)
		r.Put("/api/users/update", h.updateProfile)

		r.Get("/api/events", h.listEvents)
		r.Post("/api/events", h.createEvent)
		r.Get("/api/events/organized", h.listOrganizedEvents)
		r.Get("/api/events/volunteered", h.listVolunteeredEvents)
		r.Get("/api/events/{id}", h.getEvent)
		r.Put("/api/events/{id}/status", h.updateEventStatus)
		r.Post("/api/events/{id}/register", h.registerForEvent)
		r.Delete("/api/events/{id}/register", h.withdrawFromEvent)
		r.Get("/api/events/{id}/volunteer", h.listApplications)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
