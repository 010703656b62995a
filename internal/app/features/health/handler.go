package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Holder *snapshot.Holder
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client, the snapshot
// holder and logger.
func NewHandler(client *mongo.Client, holder *snapshot.Holder, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Holder: holder,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string           `json:"status"`
	Database string           `json:"database"`
	Message  string           `json:"message,omitempty"`
	Error    string           `json:"error,omitempty"`
	Sync     *snapshot.Status `json:"sync,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "sync":{…per-source status…} }
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
//
// A failing upstream sync does not fail the health check; the sync block is
// informational so operators can see per-source fetch state.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	// Check database
	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// Sync status (non-blocking, informational only)
	if h.Holder != nil {
		st := h.Holder.Status()
		resp.Sync = &st
	}

	_ = json.NewEncoder(w).Encode(resp)
}
