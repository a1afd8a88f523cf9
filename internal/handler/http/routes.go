package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.uploadHashing).Post("/api/datasets", h.uploadDataset)
		r.Post("/api/datasets/batch", h.uploadBatch)
		r.Get("/api/datasets", h.listDatasets)
		r.Get("/api/datasets/{key}/display", h.display)
		r.Put("/api/datasets/{key}/display/privacy", h.toggleDisplayPrivacy)
		r.Get("/api/datasets/{key}/pseudonymized", h.pseudonymized)

		r.Delete("/api/sessions/{identifier}", h.cleanupSession)

		r.Post("/api/merge", h.merge)

		r.Get("/api/status", h.status)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
