// internal/app/system/paging/paging.go

// Package paging windows in-memory result slices for list endpoints. The
// directory is served from an immutable snapshot, so paging is a simple
// offset window over an already-filtered slice rather than a database
// cursor.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows returned by paged list endpoints.
const PageSize = 50

// MaxPageSize caps the client-requested page size.
const MaxPageSize = 200

// Page describes the window applied to a list response.
type Page struct {
	Start   int  `json:"start"` // 1-based index of the first returned row (0 if none)
	End     int  `json:"end"`   // 1-based index of the last returned row (0 if none)
	Total   int  `json:"total"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// ParseStart extracts the 1-based "start" query parameter. Returns 1 when
// absent or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseLimit extracts the "limit" query parameter, clamped to
// [1, MaxPageSize]. Returns PageSize when absent or invalid.
func ParseLimit(r *http.Request) int {
	s := query.Get(r, "limit")
	if s == "" {
		return PageSize
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return PageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// Window slices items to the window beginning at the 1-based start index
// with the given size, returning the windowed slice and its page info. A
// start beyond the end of the list yields an empty window.
func Window[T any](items []T, start, size int) ([]T, Page) {
	total := len(items)
	if start < 1 {
		start = 1
	}
	if size < 1 {
		size = PageSize
	}

	lo := start - 1
	if lo >= total {
		return []T{}, Page{Total: total, HasPrev: total > 0}
	}
	hi := lo + size
	if hi > total {
		hi = total
	}

	return items[lo:hi], Page{
		Start:   lo + 1,
		End:     hi,
		Total:   total,
		HasPrev: lo > 0,
		HasNext: hi < total,
	}
}
