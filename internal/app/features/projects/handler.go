// internal/app/features/projects/handler.go
package projects

import (
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/snapshot"
)

// Handler is the feature-level entry point for Projects. All reads come from
// the current snapshot; nothing here touches the database.
type Handler struct {
	Holder *snapshot.Holder
	Tags   *directory.TagCache
	Log    *zap.Logger
}

// NewHandler constructs a Projects handler bound to the snapshot holder and
// tag cache.
func NewHandler(holder *snapshot.Holder, tags *directory.TagCache, logger *zap.Logger) *Handler {
	return &Handler{
		Holder: holder,
		Tags:   tags,
		Log:    logger,
	}
}
