// internal/app/features/organizations/handler.go
package organizations

import (
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/snapshot"
	viewstore "github.com/nontawat/clubhub/internal/app/store/views"
)

// Handler is the feature-level entry point for Organizations. Listing and
// detail read the current snapshot; only view counters touch the database.
type Handler struct {
	Holder *snapshot.Holder
	// Views may be nil: reads then report zero counts and recording a
	// view answers 503.
	Views *viewstore.Store
	Tags  *directory.TagCache
	Log   *zap.Logger
}

// NewHandler constructs an Organizations handler bound to the snapshot
// holder, view-counter store and tag cache.
func NewHandler(holder *snapshot.Holder, views *viewstore.Store, tags *directory.TagCache, logger *zap.Logger) *Handler {
	return &Handler{
		Holder: holder,
		Views:  views,
		Tags:   tags,
		Log:    logger,
	}
}
