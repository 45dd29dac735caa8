package http

import (
	"net/http"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const apiPrefix = "/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRecover,
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		cors.Handler(corsOptions()),
		withGZip,
		h.withTimeout,
	)

	// must be set before the subrouters are mounted so they inherit it
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route(apiPrefix, func(r chi.Router) {
		// routes without authorization
		r.Get("/health", h.health)
		r.Get("/version", h.version)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Route("/person", func(r chi.Router) {
				r.With(h.require(models.PermissionCreatePerson)).Post("/", h.createPerson)
				r.With(h.require(models.PermissionGetPerson)).Get("/", h.listPersons)
				r.With(h.require(models.PermissionGetPerson)).Get("/{uid}", h.getPerson)
				r.With(h.require(models.PermissionUpdatePerson)).Put("/{uid}", h.updatePerson)
				r.With(h.require(models.PermissionDeletePerson)).Delete("/{uid}", h.deletePerson)
			})

			r.Route("/speech", func(r chi.Router) {
				r.With(h.require(models.PermissionCreateSpeech)).Post("/", h.createSpeech)
				r.With(h.require(models.PermissionGetSpeech)).Get("/", h.listSpeeches)
				r.With(h.require(models.PermissionGetSpeech)).Get("/{uid}", h.getSpeech)
				r.With(h.require(models.PermissionGetSpeech)).Get("/{uid}/media", h.speechMedia)
				r.With(h.require(models.PermissionUpdateSpeech)).Put("/{uid}/status", h.updateSpeechStatus)
				r.With(h.require(models.PermissionDeleteSpeech)).Delete("/{uid}", h.deleteSpeech)
			})
		})
	})

	return router
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
