// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
	"github.com/nontawat/clubhub/internal/app/system/paging"
	"github.com/nontawat/clubhub/internal/app/system/timeouts"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// ServeList handles GET /organizations with optional ?q=, ?campus= and
// ?category= filters plus start/limit paging.
//
// The campus value is matched exactly, byte for byte; "Bangkhen " with a
// trailing space matches nothing. q is a case-insensitive substring search
// over names, nickname, description, type and campus.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	crit := directory.OrgCriteria{
		Query:    query.Search(r, "q"),
		Campus:   r.URL.Query().Get("campus"),
		Category: query.Get(r, "category"),
	}
	start := paging.ParseStart(r)
	limit := paging.ParseLimit(r)

	snap := h.Holder.Current()
	matched := directory.FilterOrganizations(snap.Organizations, crit)
	window, page := paging.Window(matched, start, limit)

	orgs := h.withViewCounts(r.Context(), window)

	httpjson.OK(w, listResponse{
		Organizations: orgs,
		Page:          page,
		Total:         len(matched),
	})
}

// withViewCounts copies the windowed organizations and fills in their view
// counters. Snapshot pointers are shared and immutable, so counts go on
// copies. A counter-store failure degrades to zero counts rather than
// failing the listing.
func (h *Handler) withViewCounts(ctx context.Context, window []*models.Organization) []models.Organization {
	orgs := make([]models.Organization, 0, len(window))
	ids := make([]string, 0, len(window))
	for _, o := range window {
		orgs = append(orgs, *o)
		ids = append(ids, o.ID)
	}

	if h.Views == nil || len(ids) == 0 {
		return orgs
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	counts, err := h.Views.GetMany(ctx, ids)
	if err != nil {
		h.Log.Warn("organizations: view counts unavailable", zap.Error(err))
		return orgs
	}
	for i := range orgs {
		orgs[i].Views = counts[orgs[i].ID]
	}
	return orgs
}
