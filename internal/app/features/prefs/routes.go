// internal/app/features/prefs/routes.go
package prefs

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the preferences endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Put("/", h.HandleSet)
	return r
}
