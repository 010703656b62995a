// internal/domain/models/project.go
package models

import (
	"strings"
	"time"
)

// RawSchedule is the optional schedule block on an upstream project record.
type RawSchedule struct {
	Location string `json:"location,omitempty" bson:"location,omitempty"`
}

// RawProject is a project/event record exactly as the upstream directory API
// delivers it. The API is inconsistent about field names: start/end dates and
// location each have two possible spellings, and either, both, or neither may
// be present on a given record. Date values are strings in more than one
// format. RawProject preserves all variants; resolution into canonical fields
// happens in the directory package (first present variant wins).
type RawProject struct {
	ID             string `json:"id" bson:"id"`
	NameTH         string `json:"name_th,omitempty" bson:"name_th,omitempty"`
	NameEN         string `json:"name_en,omitempty" bson:"name_en,omitempty"`
	OrganizationID string `json:"organization_id,omitempty" bson:"organization_id,omitempty"`

	// Date field variants. The "the_project" spelling wins when both are set.
	DateStartProject string `json:"date_start_the_project,omitempty" bson:"date_start_the_project,omitempty"`
	DateStart        string `json:"date_start,omitempty" bson:"date_start,omitempty"`
	DateEndProject   string `json:"date_end_the_project,omitempty" bson:"date_end_the_project,omitempty"`
	DateEnd          string `json:"date_end,omitempty" bson:"date_end,omitempty"`

	// Location variants, resolved schedule.location > project_location > location.
	Schedule        *RawSchedule `json:"schedule,omitempty" bson:"schedule,omitempty"`
	ProjectLocation string       `json:"project_location,omitempty" bson:"project_location,omitempty"`
	Location        string       `json:"location,omitempty" bson:"location,omitempty"`

	Description string `json:"description,omitempty" bson:"description,omitempty"`
	CampusName  string `json:"campus_name,omitempty" bson:"campus_name,omitempty"`

	// ActivityHours may hold numbers or, for the competency bucket, a nested
	// mapping of sub-category to number. Decoded as-is; classification in the
	// directory package tolerates any shape.
	ActivityHours map[string]any `json:"activity_hours,omitempty" bson:"activity_hours,omitempty"`
}

// Project is the canonical, normalized form of a project record. Everything
// downstream of the normalizer (categorizer, filters, calendar, handlers)
// sees only this shape.
type Project struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	NameTH         string `json:"name_th,omitempty"`
	NameEN         string `json:"name_en,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`

	// Start and End are nil when the source value was absent or unparseable.
	// A project with no Start is classified as past by definition.
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`

	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	CampusName  string `json:"campus_name,omitempty"`

	ActivityHours map[string]any `json:"activity_hours,omitempty"`
}

// ProjectNameFallback is the display name used when a record carries neither
// a Thai nor an English name.
const ProjectNameFallback = "Untitled project"

// ProjectLocationFallback is the location text used when no location variant
// is present.
const ProjectLocationFallback = "Location not specified"

// ResolveDisplayName applies the name precedence name_th > name_en > fallback.
func (p RawProject) ResolveDisplayName() string {
	if s := strings.TrimSpace(p.NameTH); s != "" {
		return s
	}
	if s := strings.TrimSpace(p.NameEN); s != "" {
		return s
	}
	return ProjectNameFallback
}

// ResolveLocation applies the location precedence
// schedule.location > project_location > location > fallback.
func (p RawProject) ResolveLocation() string {
	if p.Schedule != nil {
		if s := strings.TrimSpace(p.Schedule.Location); s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(p.ProjectLocation); s != "" {
		return s
	}
	if s := strings.TrimSpace(p.Location); s != "" {
		return s
	}
	return ProjectLocationFallback
}

// EffectiveEnd returns the end date used for range purposes: End when
// present, otherwise Start. Nil when the project has no dates at all.
func (p *Project) EffectiveEnd() *time.Time {
	if p.End != nil {
		return p.End
	}
	return p.Start
}
