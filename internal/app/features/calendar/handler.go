// internal/app/features/calendar/handler.go
package calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
	"github.com/nontawat/clubhub/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Handler serves calendar views over the current snapshot. The day index is
// rebuilt from the snapshot per request; it is a single pass over the
// project list and snapshots are immutable, so there is nothing to
// invalidate.
type Handler struct {
	Holder *snapshot.Holder
	Log    *zap.Logger
}

// NewHandler constructs a Calendar handler bound to the snapshot holder.
func NewHandler(holder *snapshot.Holder, logger *zap.Logger) *Handler {
	return &Handler{Holder: holder, Log: logger}
}

// dayEntry is one calendar day that has at least one project on it.
type dayEntry struct {
	Date     string            `json:"date"`
	Projects []*models.Project `json:"projects"`
}

// monthResponse is the JSON body for GET /calendar. Days is sparse: only
// days with projects appear, in ascending date order.
type monthResponse struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Days  []dayEntry `json:"days"`
}

// dayResponse is the JSON body for GET /calendar/day.
type dayResponse struct {
	Date     string            `json:"date"`
	Projects []*models.Project `json:"projects"`
}

// ServeMonth handles GET /calendar?year=YYYY&month=M (month 1-12). Both
// parameters default to the current month. A multi-day project appears on
// every day it spans, clipped to the requested month.
func (h *Handler) ServeMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, err := intParam(r, "year", now.Year())
	if err != nil {
		httpjson.BadRequest(w, "year must be an integer")
		return
	}
	month, err := intParam(r, "month", int(now.Month()))
	if err != nil || month < 1 || month > 12 {
		httpjson.BadRequest(w, "month must be an integer between 1 and 12")
		return
	}

	snap := h.Holder.Current()
	idx := directory.BuildDayIndex(snap.Projects)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := make([]dayEntry, 0)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if projects := directory.ProjectsOnDay(idx, d); len(projects) > 0 {
			days = append(days, dayEntry{
				Date:     d.Format(dateLayout),
				Projects: projects,
			})
		}
	}

	httpjson.OK(w, monthResponse{Year: year, Month: month, Days: days})
}

// ServeDay handles GET /calendar/day?date=YYYY-MM-DD.
func (h *Handler) ServeDay(w http.ResponseWriter, r *http.Request) {
	raw := query.Get(r, "date")
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		httpjson.BadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	snap := h.Holder.Current()
	idx := directory.BuildDayIndex(snap.Projects)

	projects := directory.ProjectsOnDay(idx, day)
	if projects == nil {
		projects = []*models.Project{}
	}

	httpjson.OK(w, dayResponse{Date: day.Format(dateLayout), Projects: projects})
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := query.Get(r, key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
