// internal/app/directory/calendar.go
package directory

import (
	"time"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// DayKey identifies one calendar day with no timezone component. Month is
// zero-based (January is 0), matching the key shape presentation layers
// consume directly.
type DayKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// DayKeyOf truncates t to its calendar day.
func DayKeyOf(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// Time returns midnight of the key's day in local time.
func (k DayKey) Time() time.Time {
	return time.Date(k.Year, time.Month(k.Month+1), k.Day, 0, 0, 0, 0, time.Local)
}

// DayIndex maps each calendar day to the projects active on it.
type DayIndex map[DayKey][]*models.Project

// BuildDayIndex expands each project's [start, end] range into per-day
// entries, inclusive on both ends. A multi-day project appears under every
// day it spans, always as the same pointer. Projects whose start or end is
// unresolvable contribute nothing. Rebuilt from scratch whenever the
// underlying project list changes; never persisted.
func BuildDayIndex(projects []*models.Project) DayIndex {
	idx := make(DayIndex)
	for _, p := range projects {
		start, end := p.Start, p.End
		if start == nil || end == nil {
			continue
		}
		from := DayKeyOf(*start).Time()
		to := DayKeyOf(*end).Time()
		if to.Before(from) {
			continue
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			k := DayKeyOf(d)
			idx[k] = append(idx[k], p)
		}
	}
	return idx
}

// ProjectsOnDay returns the projects active on the queried day, using
// inclusive range semantics with time-of-day ignored: start <= day <= end
// after all three are normalized to date-only.
func ProjectsOnDay(idx DayIndex, day time.Time) []*models.Project {
	return idx[DayKeyOf(day)]
}
