package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/barrister/internal/auth"
	"github.com/MrJamesThe3rd/barrister/internal/http/entry"
	"github.com/MrJamesThe3rd/barrister/internal/http/invoice"
	"github.com/MrJamesThe3rd/barrister/internal/http/matter"
)

func New(
	authSecret string,
	mattersV1 *matter.Handler,
	entriesV1 *entry.Handler,
	invoicesV1 *invoice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/matters", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			mattersV1.Routes(r)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			entriesV1.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.Routes(r)
		})
	})

	return router
}
