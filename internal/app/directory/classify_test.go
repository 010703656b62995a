package directory_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/domain/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		hours map[string]any
		want  []models.ActivityTag
	}{
		{"nil input", nil, nil},
		{"empty input", map[string]any{}, nil},
		{
			"single university bucket",
			map[string]any{"university_activities": 3.0},
			[]models.ActivityTag{{Type: models.ActivityTypeUniversity, Hours: 3}},
		},
		{
			"zero excluded",
			map[string]any{"university_activities": 0.0, "social_activities": 2.0},
			[]models.ActivityTag{{Type: models.ActivityTypeSocial, Hours: 2}},
		},
		{
			"negative excluded",
			map[string]any{"social_activities": -4.0},
			nil,
		},
		{
			"competency flat number",
			map[string]any{"competency_development_activities": 6.0},
			[]models.ActivityTag{{Type: models.ActivityTypeCompetency, Hours: 6}},
		},
		{
			// Spec example: {health: 2, virtue: 3} sums to a single tag of 5.
			"competency nested sums to one tag",
			map[string]any{
				"competency_development_activities": map[string]any{
					"health": 2.0,
					"virtue": 3.0,
				},
			},
			[]models.ActivityTag{{Type: models.ActivityTypeCompetency, Hours: 5}},
		},
		{
			"competency nested skips non-positive and non-numeric",
			map[string]any{
				"competency_development_activities": map[string]any{
					"health": 2.0,
					"virtue": -1.0,
					"note":   "n/a",
				},
			},
			[]models.ActivityTag{{Type: models.ActivityTypeCompetency, Hours: 2}},
		},
		{
			"fixed order with all three present",
			map[string]any{
				"competency_development_activities": 1.0,
				"social_activities":                 2.0,
				"university_activities":             3.0,
			},
			[]models.ActivityTag{
				{Type: models.ActivityTypeUniversity, Hours: 3},
				{Type: models.ActivityTypeSocial, Hours: 2},
				{Type: models.ActivityTypeCompetency, Hours: 1},
			},
		},
		{
			"unrecognized keys trail the known ones",
			map[string]any{
				"mystery_hours":     4.0,
				"social_activities": 2.0,
			},
			[]models.ActivityTag{
				{Type: models.ActivityTypeSocial, Hours: 2},
				{Type: "mystery_hours", Hours: 4},
			},
		},
		{
			"malformed values yield nothing",
			map[string]any{
				"university_activities": "three",
				"social_activities":     []any{1.0, 2.0},
			},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directory.Classify(tt.hours)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagCache_MemoizesPerProject(t *testing.T) {
	cache := directory.NewTagCache()
	p := &models.Project{
		ID:            "p1",
		ActivityHours: map[string]any{"university_activities": 5.0},
	}

	first := cache.Tags(p)
	require.Len(t, first, 1)

	// Mutating the hours after first access must not change the cached
	// result within the same cycle.
	p.ActivityHours["university_activities"] = 99.0
	second := cache.Tags(p)
	assert.Equal(t, first, second)
}

func TestTagCache_ResetClearsForNewCycle(t *testing.T) {
	cache := directory.NewTagCache()
	p := &models.Project{
		ID:            "p1",
		ActivityHours: map[string]any{"university_activities": 5.0},
	}
	_ = cache.Tags(p)

	cycle := uuid.New()
	cache.Reset(cycle)
	assert.Equal(t, cycle, cache.Cycle())

	p.ActivityHours["university_activities"] = 7.0
	tags := cache.Tags(p)
	require.Len(t, tags, 1)
	assert.Equal(t, 7.0, tags[0].Hours)
}

func TestTagCache_NilProject(t *testing.T) {
	cache := directory.NewTagCache()
	assert.Nil(t, cache.Tags(nil))
}
