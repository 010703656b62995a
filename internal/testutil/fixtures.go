package testutil

import (
	"testing"
	"time"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// Day parses a YYYY-MM-DD string; the test fails on malformed input.
func Day(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return ts
}

// DayPtr is Day returning a pointer, for optional date fields.
func DayPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := Day(t, s)
	return &d
}

// Project builds a canonical project with the given id and date range.
// Either date string may be empty for an absent value.
func Project(t *testing.T, id, start, end string) *models.Project {
	t.Helper()
	p := &models.Project{
		ID:          id,
		DisplayName: id,
		Location:    models.ProjectLocationFallback,
	}
	if start != "" {
		p.Start = DayPtr(t, start)
	}
	if end != "" {
		p.End = DayPtr(t, end)
	}
	return p
}

// Organization builds a canonical organization record.
func Organization(id, name, typeName, campus string) *models.Organization {
	return &models.Organization{
		ID:          id,
		DisplayName: name,
		NameEN:      name,
		TypeName:    typeName,
		CampusName:  campus,
	}
}

// SeedHolder publishes a snapshot containing the given records and returns
// the holder, ready to hand to feature handlers.
func SeedHolder(orgs []*models.Organization, projects []*models.Project, campuses []*models.Campus) *snapshot.Holder {
	h := snapshot.NewHolder()
	h.Publish(&snapshot.Snapshot{
		Organizations: orgs,
		Projects:      projects,
		Campuses:      campuses,
		PublishedAt:   time.Now().UTC(),
	}, snapshot.Status{})
	return h
}

// NewTagCache returns a fresh tag cache for handler tests.
func NewTagCache() *directory.TagCache {
	return directory.NewTagCache()
}
