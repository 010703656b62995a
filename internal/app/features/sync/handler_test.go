package sync_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	syncfeat "github.com/nontawat/clubhub/internal/app/features/sync"
	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/app/system/adminauth"
	"github.com/nontawat/clubhub/internal/testutil"
)

type countingTrigger struct{ n int }

func (c *countingTrigger) Trigger() { c.n++ }

func TestServeStatus(t *testing.T) {
	holder := snapshot.NewHolder()
	h := syncfeat.NewHandler(&countingTrigger{}, holder, zap.NewNop())

	req := httptest.NewRequest("GET", "/sync/status", nil)
	rec := httptest.NewRecorder()
	h.ServeStatus(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Organizations struct {
			Err string `json:"error"`
		} `json:"organizations"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Organizations.Err != "" {
		t.Errorf("fresh holder must report no fetch error, got %q", resp.Organizations.Err)
	}
}

func TestHandleRefresh_SchedulesTrigger(t *testing.T) {
	trig := &countingTrigger{}
	h := syncfeat.NewHandler(trig, snapshot.NewHolder(), zap.NewNop())

	req := httptest.NewRequest("POST", "/sync/refresh", nil)
	rec := httptest.NewRecorder()
	h.HandleRefresh(rec, req)

	testutil.AssertStatus(t, rec, http.StatusAccepted)
	if trig.n != 1 {
		t.Errorf("trigger count: got %d, want 1", trig.n)
	}
}

func TestRoutes_RefreshRequiresAdminKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	trig := &countingTrigger{}
	h := syncfeat.NewHandler(trig, snapshot.NewHolder(), zap.NewNop())
	router := syncfeat.Routes(h, adminauth.Middleware(string(hash), zap.NewNop()))

	// No key: rejected, no trigger.
	req := httptest.NewRequest("POST", "/refresh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key: got %d, want 401", rec.Code)
	}
	if trig.n != 0 {
		t.Errorf("trigger must not fire without a key")
	}

	// Correct key: accepted.
	req = httptest.NewRequest("POST", "/refresh", nil)
	req.Header.Set(adminauth.HeaderName, "letmein")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Errorf("valid key: got %d, want 202", rec.Code)
	}
	if trig.n != 1 {
		t.Errorf("trigger count: got %d, want 1", trig.n)
	}

	// Status stays public.
	req = httptest.NewRequest("GET", "/status", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}
