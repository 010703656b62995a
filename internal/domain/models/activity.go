// internal/domain/models/activity.go
package models

// Canonical activity-hour type identifiers.
//
// These values match the bucket names used by the upstream directory API in
// each project's activity_hours structure and are used throughout the
// application as stable keys. Display labels and colors are static
// configuration, not computed.
const (
	ActivityTypeUniversity = "university_activities"
	ActivityTypeSocial     = "social_activities"
	ActivityTypeCompetency = "competency_development_activities"
)

// ActivityTypes is the closed set of recognized activity-hour buckets, in the
// fixed order tags are emitted when more than one is present.
var ActivityTypes = []string{
	ActivityTypeUniversity,
	ActivityTypeSocial,
	ActivityTypeCompetency,
}

// ActivityTag is one credited activity bucket on a project: the bucket name
// and the total hours credited to it. Competency sub-categories are summed
// into a single tag; sub-category names are not exposed at this level.
type ActivityTag struct {
	Type  string  `json:"type"`
	Hours float64 `json:"hours"`
}

// ActivityTypeMeta carries the display label and marker color for an
// activity type. Treated as static configuration.
type ActivityTypeMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ActivityTypeConfig maps each recognized activity type to its display
// metadata. Presentation layers read this as-is.
var ActivityTypeConfig = map[string]ActivityTypeMeta{
	ActivityTypeUniversity: {Label: "University Activities", Color: "#2563eb"},
	ActivityTypeSocial:     {Label: "Social Activities", Color: "#16a34a"},
	ActivityTypeCompetency: {Label: "Competency Development", Color: "#d97706"},
}

// IsActivityType reports whether s is one of the recognized bucket names.
func IsActivityType(s string) bool {
	for _, t := range ActivityTypes {
		if s == t {
			return true
		}
	}
	return false
}
