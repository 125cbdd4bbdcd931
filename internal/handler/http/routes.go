package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/verify", h.verify)
		r.Get("/api/health", h.health)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/validate", h.validateToken)
		r.Get("/api/verifications", h.listVerifications)
		r.Get("/api/verifications/{id}", h.getVerification)

		r.With(h.adminOnly).Get("/api/stats", h.stats)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
