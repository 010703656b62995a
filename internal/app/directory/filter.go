// internal/app/directory/filter.go
package directory

import (
	"strings"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// ActivityFilterAll is the special activity-filter value that bypasses the
// activity predicate entirely, regardless of what else is selected.
const ActivityFilterAll = "all"

// ProjectCriteria is the set of optional predicates applied to a project
// list. Every supplied predicate must hold; an absent criterion is skipped.
type ProjectCriteria struct {
	// Query is matched case-insensitively as a substring against the
	// project's Thai and English names, description, location, and campus
	// name. Empty or whitespace-only means no text filtering.
	Query string

	// Campus is compared with exact string equality against CampusName.
	// Deliberately strict: no trimming, no case folding. "Bangkhen " with a
	// trailing space does not match "Bangkhen".
	Campus string

	// Activities selects projects whose derived tag set intersects it. The
	// value "all" anywhere in the selection bypasses this predicate.
	Activities []string
}

// OrgCriteria is the set of optional predicates applied to an organization
// list.
type OrgCriteria struct {
	// Query is matched case-insensitively as a substring against the Thai
	// and English names, nickname, description, type name, and campus name.
	Query string

	// Campus uses the same exact-equality semantics as ProjectCriteria.
	Campus string

	// Category is an exact match on TypeName; empty means no filter.
	Category string
}

// FilterProjects applies the criteria in fixed order: text, campus,
// activity. tags supplies each project's derived activity tags (normally
// TagCache.Tags); it is only consulted when an activity filter is active.
func FilterProjects(projects []*models.Project, crit ProjectCriteria, tags func(*models.Project) []models.ActivityTag) []*models.Project {
	q := strings.ToLower(strings.TrimSpace(crit.Query))
	activityAll := hasActivityAll(crit.Activities)

	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if q != "" && !matchesAny(q, p.NameTH, p.NameEN, p.Description, p.Location, p.CampusName) {
			continue
		}
		if crit.Campus != "" && p.CampusName != crit.Campus {
			continue
		}
		if len(crit.Activities) > 0 && !activityAll {
			if tags == nil || !tagsIntersect(tags(p), crit.Activities) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// FilterOrganizations applies the criteria in fixed order: text, campus,
// category.
func FilterOrganizations(orgs []*models.Organization, crit OrgCriteria) []*models.Organization {
	q := strings.ToLower(strings.TrimSpace(crit.Query))

	out := make([]*models.Organization, 0, len(orgs))
	for _, o := range orgs {
		if q != "" && !matchesAny(q, o.NameTH, o.NameEN, o.Nickname, o.Description, o.TypeName, o.CampusName) {
			continue
		}
		if crit.Campus != "" && o.CampusName != crit.Campus {
			continue
		}
		if crit.Category != "" && o.TypeName != crit.Category {
			continue
		}
		out = append(out, o)
	}
	return out
}

// matchesAny reports whether the lowercased query is a substring of any of
// the candidate fields.
func matchesAny(q string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func hasActivityAll(selected []string) bool {
	for _, s := range selected {
		if s == ActivityFilterAll {
			return true
		}
	}
	return false
}

func tagsIntersect(tags []models.ActivityTag, selected []string) bool {
	for _, t := range tags {
		for _, s := range selected {
			if t.Type == s {
				return true
			}
		}
	}
	return false
}
