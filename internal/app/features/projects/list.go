// internal/app/features/projects/list.go
package projects

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
	"github.com/nontawat/clubhub/internal/app/system/paging"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// ServeList handles GET /projects.
//
// Query parameters:
//
//	q         case-insensitive substring search over names, description,
//	          location and campus
//	campus    exact-match campus filter (no trimming, no case folding)
//	activity  repeatable; selects projects tagged with any of the given
//	          activity types, "all" anywhere bypasses the filter
//	bucket    which temporal bucket to page through: upcoming, ongoing,
//	          past or all (default all)
//	start, limit  paging over the chosen bucket
//
// Counts always describe the whole filtered set, so a client paging through
// one bucket still sees the sizes of the other tabs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	crit := directory.ProjectCriteria{
		Query:      query.Search(r, "q"),
		Campus:     r.URL.Query().Get("campus"),
		Activities: r.URL.Query()["activity"],
	}
	bucket := query.Get(r, "bucket")
	if bucket == "" {
		bucket = "all"
	}
	start := paging.ParseStart(r)
	limit := paging.ParseLimit(r)

	now := time.Now()
	snap := h.Holder.Current()
	matched := directory.FilterProjects(snap.Projects, crit, h.Tags.Tags)
	cats := directory.Categorize(matched, now)

	var chosen []*models.Project
	switch bucket {
	case "all":
		chosen = cats.All
	case directory.BucketUpcoming:
		chosen = cats.Upcoming
	case directory.BucketOngoing:
		chosen = cats.Ongoing
	case directory.BucketPast:
		chosen = cats.Past
	default:
		httpjson.BadRequest(w, "unknown bucket "+bucket)
		return
	}

	window, page := paging.Window(chosen, start, limit)

	views := make([]projectView, 0, len(window))
	for _, p := range window {
		views = append(views, projectView{
			Project: p,
			Tags:    h.Tags.Tags(p),
			Bucket:  directory.BucketOf(p, now),
		})
	}

	httpjson.OK(w, listResponse{
		Projects: views,
		Bucket:   bucket,
		Counts:   cats.Counts,
		Page:     page,
		Total:    len(chosen),
	})
}
