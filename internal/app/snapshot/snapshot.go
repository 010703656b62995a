// internal/app/snapshot/snapshot.go

// Package snapshot holds the in-memory directory state. Every sync cycle
// publishes a complete new Snapshot; consumers read an immutable view and
// never observe a half-updated directory. Derived values (categories, day
// indexes, filter results) are recomputed from the snapshot per request, not
// incrementally maintained.
package snapshot

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// SourceStatus records the outcome of the most recent fetch of one upstream
// source. Err is empty on success. A failed fetch leaves the previously
// published data in place; only the status changes.
type SourceStatus struct {
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	Err       string    `json:"error,omitempty"`
}

// Snapshot is one immutable view of the directory. Slices must not be
// mutated after publication.
type Snapshot struct {
	CycleID       uuid.UUID
	Organizations []*models.Organization
	Projects      []*models.Project
	Campuses      []*models.Campus
	PublishedAt   time.Time
}

// Status reports per-source fetch state alongside the current cycle.
type Status struct {
	CycleID       uuid.UUID    `json:"cycle_id"`
	PublishedAt   time.Time    `json:"published_at,omitempty"`
	Organizations SourceStatus `json:"organizations"`
	Projects      SourceStatus `json:"projects"`
	Campuses      SourceStatus `json:"campuses"`
}

// Holder is the shared, concurrency-safe access point for the current
// snapshot. Reads are cheap; writes happen once per sync cycle.
type Holder struct {
	mu     sync.RWMutex
	cur    *Snapshot
	status Status
}

// NewHolder starts with an empty snapshot so handlers always have something
// to serve, even before the first sync completes.
func NewHolder() *Holder {
	return &Holder{cur: &Snapshot{}}
}

// Current returns the latest published snapshot. Callers must treat it as
// read-only.
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

// Status returns the per-source fetch status.
func (h *Holder) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Publish swaps in a new snapshot together with its per-source status.
// Sources that failed this cycle carry forward the previous snapshot's data;
// the refresher passes those slices through unchanged.
func (h *Holder) Publish(s *Snapshot, status Status) {
	h.mu.Lock()
	h.cur = s
	h.status = status
	h.mu.Unlock()
}
