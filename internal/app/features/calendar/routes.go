// internal/app/features/calendar/routes.go
package calendar

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the calendar endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeMonth)
	r.Get("/day", h.ServeDay)
	return r
}
