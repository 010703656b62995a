// internal/app/features/sync/handler.go
package sync

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
)

// Triggerer schedules a refresh of the directory snapshot. Satisfied by
// *snapshot.Refresher.
type Triggerer interface {
	Trigger()
}

// Handler exposes sync status and a manual refresh trigger.
type Handler struct {
	Refresher Triggerer
	Holder    *snapshot.Holder
	Log       *zap.Logger
}

// NewHandler constructs a Sync handler bound to the refresher and holder.
func NewHandler(refresher Triggerer, holder *snapshot.Holder, logger *zap.Logger) *Handler {
	return &Handler{
		Refresher: refresher,
		Holder:    holder,
		Log:       logger,
	}
}

// ServeStatus handles GET /sync/status with the per-source fetch state of
// the current snapshot.
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	httpjson.OK(w, h.Holder.Status())
}

// refreshResponse is the JSON body for POST /sync/refresh.
type refreshResponse struct {
	Status string `json:"status"`
}

// HandleRefresh handles POST /sync/refresh. The refresh is scheduled, not
// awaited: rapid repeated requests coalesce into a single sync cycle, and
// the response returns before the upstream fetches run.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.Log.Info("sync: manual refresh requested")
	h.Refresher.Trigger()
	httpjson.Write(w, http.StatusAccepted, refreshResponse{Status: "scheduled"})
}
