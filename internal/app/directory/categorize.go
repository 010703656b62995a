// internal/app/directory/categorize.go
package directory

import (
	"sort"
	"time"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// Bucket names for the temporal classification of a project.
const (
	BucketUpcoming = "upcoming"
	BucketOngoing  = "ongoing"
	BucketPast     = "past"
)

// Counts reports the size of each bucket plus the unfiltered total.
type Counts struct {
	All      int `json:"all"`
	Upcoming int `json:"upcoming"`
	Ongoing  int `json:"ongoing"`
	Past     int `json:"past"`
}

// Categories is the result of bucketing a project list against a reference
// time. All is the original input, unsorted; the three buckets partition it.
type Categories struct {
	All      []*models.Project `json:"all"`
	Upcoming []*models.Project `json:"upcoming"`
	Ongoing  []*models.Project `json:"ongoing"`
	Past     []*models.Project `json:"past"`
	Counts   Counts            `json:"counts"`
}

// BucketOf classifies a single project against now:
//
//	no start date        -> past (by definition)
//	start > now          -> upcoming (strict)
//	end present, end < now -> past (strict)
//	otherwise            -> ongoing
//
// A project starting or ending exactly at now is ongoing.
func BucketOf(p *models.Project, now time.Time) string {
	if p.Start == nil {
		return BucketPast
	}
	if p.Start.After(now) {
		return BucketUpcoming
	}
	if p.End != nil && p.End.Before(now) {
		return BucketPast
	}
	return BucketOngoing
}

// Categorize buckets projects into upcoming/ongoing/past in a single pass,
// then sorts each bucket with its own comparator:
//
//	upcoming: ascending by start (soonest first)
//	ongoing:  descending by start (most recently started first)
//	past:     descending by effective end (most recently concluded first,
//	          where effective end is end when present, else start)
//
// Sorts are stable: projects with tied dates keep their input order. Projects
// with no dates at all sort after dated ones within past.
func Categorize(projects []*models.Project, now time.Time) Categories {
	cats := Categories{All: projects}

	for _, p := range projects {
		switch BucketOf(p, now) {
		case BucketUpcoming:
			cats.Upcoming = append(cats.Upcoming, p)
		case BucketOngoing:
			cats.Ongoing = append(cats.Ongoing, p)
		default:
			cats.Past = append(cats.Past, p)
		}
	}

	sort.SliceStable(cats.Upcoming, func(i, j int) bool {
		return cats.Upcoming[i].Start.Before(*cats.Upcoming[j].Start)
	})
	sort.SliceStable(cats.Ongoing, func(i, j int) bool {
		return cats.Ongoing[j].Start.Before(*cats.Ongoing[i].Start)
	})
	sort.SliceStable(cats.Past, func(i, j int) bool {
		a, b := cats.Past[i].EffectiveEnd(), cats.Past[j].EffectiveEnd()
		if a == nil || b == nil {
			// undated projects stay behind dated ones
			return b == nil && a != nil
		}
		return b.Before(*a)
	})

	cats.Counts = Counts{
		All:      len(cats.All),
		Upcoming: len(cats.Upcoming),
		Ongoing:  len(cats.Ongoing),
		Past:     len(cats.Past),
	}
	return cats
}
