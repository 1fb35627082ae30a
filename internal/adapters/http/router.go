// Package http is the inbound HTTP adapter: the chi router and the server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/handlers"
)

// Handlers are the endpoints NewRouter mounts.
type Handlers struct {
	Roster *handlers.RosterHandler
	Form   *handlers.FormHandler
	Health *handlers.HealthHandler
}

// NewRouter mounts every route on a chi mux. middlewares wrap all of them,
// outermost first.
//
//	GET    /health/live, /health/ready
//	GET    /                          employee page
//	POST   /                          employee form submit
//	GET    /api/v1/departments
//	GET    /api/v1/employees
//	POST   /api/v1/employees
//	DELETE /api/v1/employees/{id}
//	POST   /api/v1/admin/reseed
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", h.Health.Liveness)
		r.Get("/ready", h.Health.Readiness)
	})

	r.Get("/", h.Form.Show)
	r.Post("/", h.Form.Submit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/departments", h.Roster.ListDepartments)
		r.Get("/employees", h.Roster.ListEmployees)
		r.Post("/employees", h.Roster.CreateEmployee)
		r.Delete("/employees/{id}", h.Roster.DeleteEmployee)
		r.Post("/admin/reseed", h.Roster.Reseed)
	})

	return r
}
