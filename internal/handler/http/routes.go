package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/drivenpass/drivenpass/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
		r.Get("/users", h.listUsers)
	})

	// vault routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/credentials", func(r chi.Router) {
			newVaultRoutes[models.Credential](h.services.CredentialService).mount(r)
			r.Get("/{id}/decrypt", h.decryptCredential)
		})
		r.Route("/cards", func(r chi.Router) {
			newVaultRoutes(h.services.CardService).mount(r)
		})
		r.Route("/notes", func(r chi.Router) {
			newVaultRoutes(h.services.NoteService).mount(r)
		})
	})

	return router
}
