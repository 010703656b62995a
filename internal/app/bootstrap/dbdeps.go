// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/snapshot"
	snapshotstore "github.com/nontawat/clubhub/internal/app/store/snapshots"
	viewstore "github.com/nontawat/clubhub/internal/app/store/views"
	"github.com/nontawat/clubhub/internal/app/upstream"
)

// DBDeps holds database and back-end dependencies for the app. Everything
// is constructed in ConnectDB and handed through the lifecycle hooks.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Views    *viewstore.Store
	Payloads *snapshotstore.Store

	Holder    *snapshot.Holder
	Tags      *directory.TagCache
	Upstream  *upstream.Client
	Refresher *snapshot.Refresher

	// syncCtx governs the background refresh loop; Shutdown cancels it.
	syncCtx    context.Context
	syncCancel context.CancelFunc
}
