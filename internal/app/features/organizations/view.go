// internal/app/features/organizations/view.go
package organizations

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nontawat/clubhub/internal/app/system/httpjson"
	"github.com/nontawat/clubhub/internal/app/system/timeouts"
)

// HandleView handles POST /organizations/{id}/view. It bumps the persistent
// view counter for the organization and returns the new total. Unknown IDs
// are rejected so stray requests cannot mint counters for organizations that
// do not exist in the directory.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap := h.Holder.Current()
	if findOrg(snap.Organizations, id) == nil {
		httpjson.NotFound(w, "organization not found")
		return
	}
	if h.Views == nil {
		httpjson.Error(w, http.StatusServiceUnavailable, "view counters unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Views.Increment(ctx, id)
	if err != nil {
		httpjson.ServerError(w, h.Log, "organizations: increment view count", err,
			"could not record view")
		return
	}

	httpjson.OK(w, viewResponse{ID: id, Views: n})
}
