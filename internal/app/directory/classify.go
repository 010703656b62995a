// internal/app/directory/classify.go
package directory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// Classify derives activity tags from a project's activity_hours structure.
// It never fails: absent or malformed input yields an empty list.
//
// Rules:
//   - university_activities and social_activities emit a tag iff the value
//     is a positive number.
//   - competency_development_activities may be a plain number or a nested
//     mapping of sub-category to number; nested entries are summed into one
//     tag, emitted only if the total is positive.
//   - zero and negative values are excluded, not zero-displayed.
//   - tag order is university, social, competency, then any unrecognized
//     keys (defensive; sorted by name, since Go maps carry no encounter
//     order).
func Classify(hours map[string]any) []models.ActivityTag {
	if len(hours) == 0 {
		return nil
	}

	var tags []models.ActivityTag
	for _, typ := range models.ActivityTypes {
		v, ok := hours[typ]
		if !ok {
			continue
		}
		total := sumHours(v)
		if total > 0 {
			tags = append(tags, models.ActivityTag{Type: typ, Hours: total})
		}
	}

	// Defensive path for keys outside the closed set.
	var extra []string
	for k := range hours {
		if !models.IsActivityType(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		if total := sumHours(hours[k]); total > 0 {
			tags = append(tags, models.ActivityTag{Type: k, Hours: total})
		}
	}

	return tags
}

// sumHours totals a bucket value that may be a plain number or a nested
// mapping of sub-category to number. Non-numeric entries contribute nothing;
// only positive numbers count toward the total.
func sumHours(v any) float64 {
	switch x := v.(type) {
	case float64:
		if x > 0 {
			return x
		}
	case int:
		if x > 0 {
			return float64(x)
		}
	case map[string]any:
		var total float64
		for _, sub := range x {
			if n, ok := asNumber(sub); ok && n > 0 {
				total += n
			}
		}
		return total
	}
	return 0
}

func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

// TagCache memoizes Classify results per project ID for one sync cycle.
// Snapshots are immutable, so a project's tags cannot change within a cycle;
// the cache is reset whenever a new cycle publishes, which bounds its
// lifetime without any eviction policy.
type TagCache struct {
	mu    sync.RWMutex
	cycle uuid.UUID
	tags  map[string][]models.ActivityTag
}

// NewTagCache returns an empty cache bound to no cycle.
func NewTagCache() *TagCache {
	return &TagCache{tags: make(map[string][]models.ActivityTag)}
}

// Tags returns the cached tags for p, classifying on first access.
func (c *TagCache) Tags(p *models.Project) []models.ActivityTag {
	if p == nil {
		return nil
	}

	c.mu.RLock()
	cached, ok := c.tags[p.ID]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	tags := Classify(p.ActivityHours)
	c.mu.Lock()
	c.tags[p.ID] = tags
	c.mu.Unlock()
	return tags
}

// Reset clears the cache and binds it to a new sync cycle. Called by the
// refresher each time a new snapshot is published.
func (c *TagCache) Reset(cycle uuid.UUID) {
	c.mu.Lock()
	c.cycle = cycle
	c.tags = make(map[string][]models.ActivityTag)
	c.mu.Unlock()
}

// Cycle returns the sync cycle the cache is currently bound to.
func (c *TagCache) Cycle() uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cycle
}
