// internal/app/features/campuses/handler.go
package campuses

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// Handler serves the campus list used to populate filter controls.
type Handler struct {
	Holder *snapshot.Holder
	Log    *zap.Logger
}

// NewHandler constructs a Campuses handler bound to the snapshot holder.
func NewHandler(holder *snapshot.Holder, logger *zap.Logger) *Handler {
	return &Handler{Holder: holder, Log: logger}
}

type listResponse struct {
	Campuses []*models.Campus `json:"campuses"`
}

// ServeList handles GET /campuses. The list is served in upstream order; an
// empty directory yields an empty list, not an error.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	snap := h.Holder.Current()
	campuses := snap.Campuses
	if campuses == nil {
		campuses = []*models.Campus{}
	}
	httpjson.OK(w, listResponse{Campuses: campuses})
}
