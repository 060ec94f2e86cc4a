package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)

		r.Get("/api/password/state", h.passwordState)
		r.Post("/api/password", h.setPassword)
		r.Post("/api/password/validate", h.validatePassword)

		r.Post("/api/session/login", h.login)
		r.Get("/api/session/lockout", h.lockout)
	})

	// routes bound to a live session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/session/invalidate", h.invalidate)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Post("/api/notes/{id}/open", h.openNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
