// internal/app/features/campuses/routes.go
package campuses

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the campus endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
