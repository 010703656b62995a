package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/domain/models"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"garbage", "not-a-date", nil},
		{"partial", "2024-13-45", nil},
		{"date only", "2024-01-10", ptrTime(t, "2024-01-10T00:00:00Z")},
		{"rfc3339", "2024-01-10T09:30:00Z", ptrTime(t, "2024-01-10T09:30:00Z")},
		{"no zone", "2024-01-10T09:30:00", ptrTime(t, "2024-01-10T09:30:00Z")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directory.ParseDate(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveDates_VariantPrecedence(t *testing.T) {
	raw := models.RawProject{
		DateStartProject: "2024-01-05",
		DateStart:        "2024-02-01",
		DateEnd:          "2024-02-10",
	}
	start, end := directory.ResolveDates(raw)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 5, start.Day(), "date_start_the_project wins over date_start")
	assert.Equal(t, 10, end.Day(), "generic variant used when project variant absent")
}

func TestResolveDates_InvalidVariantDoesNotFallThrough(t *testing.T) {
	// The first present variant wins even when it fails to parse; a bad
	// value is absent, not an excuse to read the other spelling.
	raw := models.RawProject{
		DateStartProject: "invalid",
		DateStart:        "2024-02-01",
	}
	start, _ := directory.ResolveDates(raw)
	assert.Nil(t, start)
}

func TestResolveDates_AllAbsent(t *testing.T) {
	start, end := directory.ResolveDates(models.RawProject{})
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestNormalize_NameAndLocationPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		raw          models.RawProject
		wantName     string
		wantLocation string
	}{
		{
			name: "thai name and schedule location win",
			raw: models.RawProject{
				NameTH:          "ค่ายอาสา",
				NameEN:          "Volunteer Camp",
				Schedule:        &models.RawSchedule{Location: "Hall A"},
				ProjectLocation: "Hall B",
				Location:        "Hall C",
			},
			wantName:     "ค่ายอาสา",
			wantLocation: "Hall A",
		},
		{
			name: "english name and project_location next",
			raw: models.RawProject{
				NameEN:          "Volunteer Camp",
				ProjectLocation: "Hall B",
				Location:        "Hall C",
			},
			wantName:     "Volunteer Camp",
			wantLocation: "Hall B",
		},
		{
			name:         "fallbacks",
			raw:          models.RawProject{},
			wantName:     models.ProjectNameFallback,
			wantLocation: models.ProjectLocationFallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := directory.Normalize(tt.raw, nil)
			assert.Equal(t, tt.wantName, p.DisplayName)
			assert.Equal(t, tt.wantLocation, p.Location)
		})
	}
}

func TestNormalize_AppliesSanitizer(t *testing.T) {
	raw := models.RawProject{ID: "p1", Description: "<b>hi</b>"}
	p := directory.Normalize(raw, func(s string) string { return "clean" })
	assert.Equal(t, "clean", p.Description)
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	raws := []models.RawProject{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out := directory.NormalizeAll(raws, nil)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func ptrTime(t *testing.T, s string) *time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &ts
}
