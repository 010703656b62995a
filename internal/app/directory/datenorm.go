// internal/app/directory/datenorm.go

// Package directory implements the normalization, categorization, filtering,
// and calendar-aggregation pipeline for club projects. Every function here is
// pure: no I/O, no ambient clock (the reference time is always an explicit
// parameter), and no mutation of inputs. Malformed upstream data degrades
// gracefully rather than producing errors.
package directory

import (
	"strings"
	"time"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// dateLayouts are the formats the upstream API has been observed to emit,
// tried in order. Values that match none of them are treated as absent.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a single raw date value. Returns nil for empty or
// unparseable input; never an error. No timezone conversion is performed;
// values without an offset are kept in their parsed local representation.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// resolveFirst walks an ordered list of accessor candidates and parses the
// first non-empty one. A present-but-unparseable value does not fall through
// to later candidates: presence is decided before parsing, matching the
// first-variant-wins contract.
func resolveFirst(candidates ...string) *time.Time {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return ParseDate(c)
		}
	}
	return nil
}

// ResolveDates resolves a raw project's date variants into canonical start
// and end values. The "the_project" spelling takes precedence over the
// generic one for both fields. Either result may be nil.
func ResolveDates(raw models.RawProject) (start, end *time.Time) {
	start = resolveFirst(raw.DateStartProject, raw.DateStart)
	end = resolveFirst(raw.DateEndProject, raw.DateEnd)
	return start, end
}

// Normalize converts a raw upstream project into its canonical form:
// resolved display name, location, and dates. The sanitize func, when
// non-nil, is applied to the description (handlers pass the shared
// bluemonday policy; tests pass nil).
func Normalize(raw models.RawProject, sanitize func(string) string) *models.Project {
	start, end := ResolveDates(raw)
	desc := raw.Description
	if sanitize != nil {
		desc = sanitize(desc)
	}
	return &models.Project{
		ID:             raw.ID,
		DisplayName:    raw.ResolveDisplayName(),
		NameTH:         raw.NameTH,
		NameEN:         raw.NameEN,
		OrganizationID: raw.OrganizationID,
		Start:          start,
		End:            end,
		Location:       raw.ResolveLocation(),
		Description:    desc,
		CampusName:     raw.CampusName,
		ActivityHours:  raw.ActivityHours,
	}
}

// NormalizeAll normalizes a full upstream payload, preserving input order.
func NormalizeAll(raws []models.RawProject, sanitize func(string) string) []*models.Project {
	out := make([]*models.Project, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw, sanitize))
	}
	return out
}
