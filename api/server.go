/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:     Unique ID per request for tracing
  2. RequestLogger: zerolog structured request logging
  3. Recoverer:     Panic recovery (500 instead of crash)
  4. CORS:          Cross-origin requests for the frontend

SECURITY NOTE:
  No authentication middleware here; auth lives in the surrounding app.

SEE ALSO:
  - handlers.go: handler implementations
  - logging.go:  the request logger
  - cmd/server/main.go: server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(h.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/stores/{id}", func(r chi.Router) {
			r.Get("/hours", h.GetStoreHours)
			r.Put("/hours", h.SaveStoreHours)

			r.Get("/staff", h.ListStaff)
			r.Post("/staff", h.SaveStaff)

			r.Get("/settings", h.GetSettings)
			r.Put("/settings", h.SaveSettings)

			r.Get("/shifts", h.ListShifts)
			r.Post("/shifts", h.CreateShift)

			r.Post("/schedule/generate", h.GenerateSchedule)
			r.Post("/payroll", h.PayrollReport)
		})

		r.Delete("/staff/{id}", h.DeleteStaff)
		r.Delete("/shifts/{id}", h.DeleteShift)

		r.Route("/tiers/{scope}", func(r chi.Router) {
			r.Get("/", h.GetTiers)
			r.Put("/", h.SaveTiers)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
