package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/warranties", func(r chi.Router) {
			r.Get("/", h.listChanges)
			r.Post("/", h.createWarranty)
			r.Put("/{id}", h.replaceWarranty)
			r.Delete("/{id}", h.deleteWarranty)
		})

		r.Post("/api/chat", h.chat)
		r.Post("/api/process-receipt", h.processReceipt)
		r.Post("/api/find-product-image", h.findProductImage)
	})

	return router
}
