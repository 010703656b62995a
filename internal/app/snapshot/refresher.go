// internal/app/snapshot/refresher.go
package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/debounce"
	"github.com/nontawat/clubhub/internal/app/upstream"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// Fetcher is the upstream surface the refresher consumes. Satisfied by
// *upstream.Client; tests substitute fakes.
type Fetcher interface {
	FetchOrganizations(ctx context.Context) ([]models.RawOrganization, error)
	FetchProjects(ctx context.Context) ([]models.RawProject, error)
	FetchCampuses(ctx context.Context) ([]models.Campus, error)
}

// PayloadCache persists the last good raw payload per source so a restart
// can serve stale-but-present data before the first live fetch completes.
// Satisfied by the snapshots store; may be nil to disable caching.
type PayloadCache interface {
	SaveOrganizations(ctx context.Context, orgs []models.RawOrganization) error
	SaveProjects(ctx context.Context, projects []models.RawProject) error
	SaveCampuses(ctx context.Context, campuses []models.Campus) error
	LoadOrganizations(ctx context.Context) ([]models.RawOrganization, error)
	LoadProjects(ctx context.Context) ([]models.RawProject, error)
	LoadCampuses(ctx context.Context) ([]models.Campus, error)
}

// Refresher drives sync cycles: periodic fetches of the three upstream
// sources, normalization, and snapshot publication. Each source fails
// independently; a failed source keeps its previously published data.
type Refresher struct {
	fetch    Fetcher
	cache    PayloadCache
	holder   *Holder
	tags     *directory.TagCache
	sanitize func(string) string
	log      *zap.Logger
	interval time.Duration
	deb      *debounce.Debouncer

	// mu serializes cycles. The ticker loop and debounced triggers run on
	// different goroutines; a cycle must not capture the previous snapshot
	// while another cycle is between its own capture and publish, or a slow
	// cycle would republish stale data over a fresher snapshot.
	mu sync.Mutex
}

// RefresherOptions bundles the refresher's collaborators.
type RefresherOptions struct {
	Fetcher  Fetcher
	Cache    PayloadCache
	Holder   *Holder
	Tags     *directory.TagCache
	Sanitize func(string) string
	Interval time.Duration
	Debounce time.Duration
	Logger   *zap.Logger
}

// NewRefresher builds a Refresher. Manual triggers are debounced with the
// configured quiescence period so bursts collapse into one cycle.
func NewRefresher(opts RefresherOptions) *Refresher {
	r := &Refresher{
		fetch:    opts.Fetcher,
		cache:    opts.Cache,
		holder:   opts.Holder,
		tags:     opts.Tags,
		sanitize: opts.Sanitize,
		log:      opts.Logger,
		interval: opts.Interval,
	}
	if r.tags == nil {
		r.tags = directory.NewTagCache()
	}
	delay := opts.Debounce
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}
	r.deb = debounce.New(delay, func() {
		r.Refresh(context.Background())
	})
	return r
}

// Seed publishes an initial snapshot from the payload cache, if one exists.
// Errors are logged and swallowed: an empty directory is a valid starting
// state and the first live fetch will fill it.
func (r *Refresher) Seed(ctx context.Context) {
	if r.cache == nil {
		return
	}

	s := &Snapshot{CycleID: uuid.New(), PublishedAt: time.Now().UTC()}
	var status Status
	status.CycleID = s.CycleID
	status.PublishedAt = s.PublishedAt

	if raws, err := r.cache.LoadOrganizations(ctx); err != nil {
		r.log.Warn("seed: cached organizations unavailable", zap.Error(err))
	} else {
		s.Organizations = r.normalizeOrgs(raws)
	}
	if raws, err := r.cache.LoadProjects(ctx); err != nil {
		r.log.Warn("seed: cached projects unavailable", zap.Error(err))
	} else {
		s.Projects = directory.NormalizeAll(raws, r.sanitize)
	}
	if campuses, err := r.cache.LoadCampuses(ctx); err != nil {
		r.log.Warn("seed: cached campuses unavailable", zap.Error(err))
	} else {
		s.Campuses = campusPtrs(campuses)
	}

	if len(s.Organizations) == 0 && len(s.Projects) == 0 && len(s.Campuses) == 0 {
		return
	}

	r.tags.Reset(s.CycleID)
	r.holder.Publish(s, status)
	r.log.Info("seeded directory from cached payloads",
		zap.Int("organizations", len(s.Organizations)),
		zap.Int("projects", len(s.Projects)),
		zap.Int("campuses", len(s.Campuses)))
}

// Run refreshes immediately and then on every interval tick until ctx is
// canceled. Intended to run in its own goroutine.
func (r *Refresher) Run(ctx context.Context) {
	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}

// Trigger schedules a debounced refresh. Bursts of triggers collapse into a
// single cycle after the quiescence period.
func (r *Refresher) Trigger() {
	r.deb.Trigger()
}

// Stop cancels any pending debounced refresh.
func (r *Refresher) Stop() {
	r.deb.Stop()
}

// Refresh runs one sync cycle synchronously. Cycles are mutually exclusive:
// a late caller waits for the in-flight cycle to publish before capturing
// the previous snapshot. Each source is fetched independently: failure of
// one preserves that source's previous data and records its error while the
// others still update. A superseded fetch carries the previous data and
// status forward untouched.
func (r *Refresher) Refresh(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.holder.Current()
	prevStatus := r.holder.Status()
	now := time.Now().UTC()

	next := &Snapshot{CycleID: uuid.New(), PublishedAt: now}
	status := Status{CycleID: next.CycleID, PublishedAt: now}

	if raws, err := r.fetch.FetchOrganizations(ctx); err != nil {
		next.Organizations = prev.Organizations
		status.Organizations = failedStatus(prevStatus.Organizations, err)
		r.logFetchErr("organizations", err)
	} else {
		next.Organizations = r.normalizeOrgs(raws)
		status.Organizations = SourceStatus{FetchedAt: now}
		r.saveCache(ctx, "organizations", func(ctx context.Context) error {
			return r.cache.SaveOrganizations(ctx, raws)
		})
	}

	if raws, err := r.fetch.FetchProjects(ctx); err != nil {
		next.Projects = prev.Projects
		status.Projects = failedStatus(prevStatus.Projects, err)
		r.logFetchErr("projects", err)
	} else {
		next.Projects = directory.NormalizeAll(raws, r.sanitize)
		status.Projects = SourceStatus{FetchedAt: now}
		r.saveCache(ctx, "projects", func(ctx context.Context) error {
			return r.cache.SaveProjects(ctx, raws)
		})
	}

	if campuses, err := r.fetch.FetchCampuses(ctx); err != nil {
		next.Campuses = prev.Campuses
		status.Campuses = failedStatus(prevStatus.Campuses, err)
		r.logFetchErr("campuses", err)
	} else {
		next.Campuses = campusPtrs(campuses)
		status.Campuses = SourceStatus{FetchedAt: now}
		r.saveCache(ctx, "campuses", func(ctx context.Context) error {
			return r.cache.SaveCampuses(ctx, campuses)
		})
	}

	r.tags.Reset(next.CycleID)
	r.holder.Publish(next, status)
	r.log.Info("directory refreshed",
		zap.String("cycle", next.CycleID.String()),
		zap.Int("organizations", len(next.Organizations)),
		zap.Int("projects", len(next.Projects)),
		zap.Int("campuses", len(next.Campuses)))
}

// failedStatus keeps the previous fetch time and records the failure. A
// superseded fetch is not a failure: the newer cycle owns the result.
func failedStatus(prev SourceStatus, err error) SourceStatus {
	if errors.Is(err, upstream.ErrSuperseded) {
		return prev
	}
	return SourceStatus{FetchedAt: prev.FetchedAt, Err: err.Error()}
}

func (r *Refresher) logFetchErr(source string, err error) {
	if errors.Is(err, upstream.ErrSuperseded) {
		r.log.Debug("fetch superseded", zap.String("source", source))
		return
	}
	r.log.Warn("upstream fetch failed, keeping previous data",
		zap.String("source", source), zap.Error(err))
}

func (r *Refresher) saveCache(ctx context.Context, source string, save func(context.Context) error) {
	if r.cache == nil {
		return
	}
	if err := save(ctx); err != nil {
		r.log.Warn("payload cache write failed", zap.String("source", source), zap.Error(err))
	}
}

// normalizeOrgs converts raw club records to canonical form, sanitizing
// descriptions on the way through.
func (r *Refresher) normalizeOrgs(raws []models.RawOrganization) []*models.Organization {
	out := make([]*models.Organization, 0, len(raws))
	for _, raw := range raws {
		desc := raw.Description
		if r.sanitize != nil {
			desc = r.sanitize(desc)
		}
		out = append(out, &models.Organization{
			ID:          raw.ID,
			DisplayName: raw.ResolveDisplayName(),
			NameTH:      raw.NameTH,
			NameEN:      raw.NameEN,
			Nickname:    raw.Nickname,
			TypeName:    raw.TypeName,
			CampusName:  raw.CampusName,
			Description: desc,
			Social:      raw.Social,
		})
	}
	return out
}

func campusPtrs(campuses []models.Campus) []*models.Campus {
	out := make([]*models.Campus, 0, len(campuses))
	for i := range campuses {
		c := campuses[i]
		out = append(out, &c)
	}
	return out
}
