// internal/app/features/projects/detail.go
package projects

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
)

// ServeDetail handles GET /projects/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap := h.Holder.Current()
	for _, p := range snap.Projects {
		if p.ID == id {
			httpjson.OK(w, detailResponse{Project: projectView{
				Project: p,
				Tags:    h.Tags.Tags(p),
				Bucket:  directory.BucketOf(p, time.Now()),
			}})
			return
		}
	}

	httpjson.NotFound(w, "project not found")
}
