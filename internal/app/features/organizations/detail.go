// internal/app/features/organizations/detail.go
package organizations

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
	"github.com/nontawat/clubhub/internal/app/system/timeouts"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// ServeDetail handles GET /organizations/{id}. The response embeds the
// organization's projects bucketed into upcoming/ongoing/past against the
// request time.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap := h.Holder.Current()
	org := findOrg(snap.Organizations, id)
	if org == nil {
		httpjson.NotFound(w, "organization not found")
		return
	}

	var own []*models.Project
	for _, p := range snap.Projects {
		if p.OrganizationID == id {
			own = append(own, p)
		}
	}

	out := *org
	out.Views = h.viewCount(r.Context(), id)

	httpjson.OK(w, detailResponse{
		Organization: out,
		Projects:     directory.Categorize(own, time.Now()),
	})
}

func findOrg(orgs []*models.Organization, id string) *models.Organization {
	for _, o := range orgs {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (h *Handler) viewCount(ctx context.Context, id string) int64 {
	if h.Views == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	n, err := h.Views.Get(ctx, id)
	if err != nil {
		h.Log.Warn("organizations: view count unavailable",
			zap.String("org_id", id), zap.Error(err))
		return 0
	}
	return n
}
