package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/list", 1},
		{"/list?start=1", 1},
		{"/list?start=51", 51},
		{"/list?start=0", 1},
		{"/list?start=-5", 1},
		{"/list?start=abc", 1},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		if got := ParseStart(r); got != tt.want {
			t.Errorf("ParseStart(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/list", PageSize},
		{"/list?limit=10", 10},
		{"/list?limit=0", PageSize},
		{"/list?limit=9999", MaxPageSize},
		{"/list?limit=nope", PageSize},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		if got := ParseLimit(r); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("first page", func(t *testing.T) {
		got, page := Window(items, 1, 3)
		if len(got) != 3 || got[0] != 1 || got[2] != 3 {
			t.Errorf("window = %v", got)
		}
		if page.Start != 1 || page.End != 3 || page.Total != 7 {
			t.Errorf("page = %+v", page)
		}
		if page.HasPrev || !page.HasNext {
			t.Errorf("prev/next = %v/%v", page.HasPrev, page.HasNext)
		}
	})

	t.Run("middle page", func(t *testing.T) {
		got, page := Window(items, 4, 3)
		if len(got) != 3 || got[0] != 4 {
			t.Errorf("window = %v", got)
		}
		if !page.HasPrev || !page.HasNext {
			t.Errorf("prev/next = %v/%v", page.HasPrev, page.HasNext)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		got, page := Window(items, 7, 3)
		if len(got) != 1 || got[0] != 7 {
			t.Errorf("window = %v", got)
		}
		if !page.HasPrev || page.HasNext {
			t.Errorf("prev/next = %v/%v", page.HasPrev, page.HasNext)
		}
		if page.End != 7 {
			t.Errorf("end = %d, want 7", page.End)
		}
	})

	t.Run("start past the end", func(t *testing.T) {
		got, page := Window(items, 100, 3)
		if len(got) != 0 {
			t.Errorf("window = %v, want empty", got)
		}
		if page.Start != 0 || page.End != 0 || page.Total != 7 {
			t.Errorf("page = %+v", page)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, page := Window([]int{}, 1, 3)
		if len(got) != 0 || page.Total != 0 || page.HasPrev || page.HasNext {
			t.Errorf("got %v, page %+v", got, page)
		}
	})
}
