package calendar_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/features/calendar"
	"github.com/nontawat/clubhub/internal/domain/models"
	"github.com/nontawat/clubhub/internal/testutil"
)

func seededHandler(t *testing.T) *calendar.Handler {
	t.Helper()
	ps := []*models.Project{
		testutil.Project(t, "span", "2024-01-30", "2024-02-02"),
		testutil.Project(t, "single", "2024-01-15", "2024-01-15"),
		testutil.Project(t, "dateless", "", ""),
	}
	return calendar.NewHandler(testutil.SeedHolder(nil, ps, nil), zap.NewNop())
}

type monthResp struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Days  []struct {
		Date     string `json:"date"`
		Projects []struct {
			ID string `json:"id"`
		} `json:"projects"`
	} `json:"days"`
}

func TestServeMonth(t *testing.T) {
	h := seededHandler(t)

	req := httptest.NewRequest("GET", "/calendar?year=2024&month=1", nil)
	rec := httptest.NewRecorder()
	h.ServeMonth(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp monthResp
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Year != 2024 || resp.Month != 1 {
		t.Fatalf("year/month: got %d/%d", resp.Year, resp.Month)
	}
	// Jan 15 plus the January half of the span: 30th and 31st.
	wantDays := []string{"2024-01-15", "2024-01-30", "2024-01-31"}
	if len(resp.Days) != len(wantDays) {
		t.Fatalf("got %d days %+v, want %v", len(resp.Days), resp.Days, wantDays)
	}
	for i, d := range resp.Days {
		if d.Date != wantDays[i] {
			t.Errorf("day %d: got %s, want %s", i, d.Date, wantDays[i])
		}
	}
}

func TestServeMonth_SpanClipsToNextMonth(t *testing.T) {
	h := seededHandler(t)

	req := httptest.NewRequest("GET", "/calendar?year=2024&month=2", nil)
	rec := httptest.NewRecorder()
	h.ServeMonth(rec, req)

	var resp monthResp
	testutil.DecodeJSON(t, rec, &resp)
	wantDays := []string{"2024-02-01", "2024-02-02"}
	if len(resp.Days) != len(wantDays) {
		t.Fatalf("got %d days, want %d", len(resp.Days), len(wantDays))
	}
	for _, d := range resp.Days {
		if len(d.Projects) != 1 || d.Projects[0].ID != "span" {
			t.Errorf("day %s: got %+v", d.Date, d.Projects)
		}
	}
}

func TestServeMonth_BadMonthRejected(t *testing.T) {
	h := seededHandler(t)

	for _, target := range []string{"/calendar?month=13", "/calendar?month=abc", "/calendar?year=twenty"} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		h.ServeMonth(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", target, rec.Code)
		}
	}
}

func TestServeDay(t *testing.T) {
	h := seededHandler(t)

	req := httptest.NewRequest("GET", "/calendar/day?date=2024-01-31", nil)
	rec := httptest.NewRecorder()
	h.ServeDay(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Date     string `json:"date"`
		Projects []struct {
			ID string `json:"id"`
		} `json:"projects"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Projects) != 1 || resp.Projects[0].ID != "span" {
		t.Errorf("got %+v", resp.Projects)
	}
}

func TestServeDay_EmptyDayIsEmptyList(t *testing.T) {
	h := seededHandler(t)

	req := httptest.NewRequest("GET", "/calendar/day?date=2024-07-01", nil)
	rec := httptest.NewRecorder()
	h.ServeDay(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	var resp struct {
		Projects []struct{} `json:"projects"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Projects == nil {
		t.Error("projects must be an empty list, not null")
	}
}

func TestServeDay_BadDateRejected(t *testing.T) {
	h := seededHandler(t)

	req := httptest.NewRequest("GET", "/calendar/day?date=31-01-2024", nil)
	rec := httptest.NewRecorder()
	h.ServeDay(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}
