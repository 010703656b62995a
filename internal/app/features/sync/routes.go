// internal/app/features/sync/routes.go
package sync

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter that serves the sync endpoints. requireAdmin
// guards the refresh trigger; status is public.
func Routes(h *Handler, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/status", h.ServeStatus)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAdmin)
		pr.Post("/refresh", h.HandleRefresh)
	})

	return r
}
