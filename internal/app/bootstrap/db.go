// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/snapshot"
	snapshotstore "github.com/nontawat/clubhub/internal/app/store/snapshots"
	viewstore "github.com/nontawat/clubhub/internal/app/store/views"
	"github.com/nontawat/clubhub/internal/app/system/htmlclean"
	"github.com/nontawat/clubhub/internal/app/system/timeouts"
	"github.com/nontawat/clubhub/internal/app/upstream"
)

// ConnectDB connects to MongoDB and builds the app's shared back-end
// dependencies: the stores, the upstream client, the snapshot holder and
// the refresher that drives sync cycles.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	holder := snapshot.NewHolder()
	tags := directory.NewTagCache()
	payloads := snapshotstore.New(db)

	up := upstream.New(upstream.Config{
		BaseURL:      appCfg.UpstreamBaseURL,
		TokenURL:     appCfg.UpstreamTokenURL,
		ClientID:     appCfg.UpstreamClientID,
		ClientSecret: appCfg.UpstreamClientSecret,
		Timeout:      appCfg.UpstreamTimeout,
	}, logger)

	refresher := snapshot.NewRefresher(snapshot.RefresherOptions{
		Fetcher:  up,
		Cache:    payloads,
		Holder:   holder,
		Tags:     tags,
		Sanitize: htmlclean.Sanitize,
		Interval: appCfg.SyncInterval,
		Debounce: appCfg.SyncDebounce,
		Logger:   logger,
	})

	syncCtx, syncCancel := context.WithCancel(context.Background())

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Views:         viewstore.New(db),
		Payloads:      payloads,
		Holder:        holder,
		Tags:          tags,
		Upstream:      up,
		Refresher:     refresher,
		syncCtx:       syncCtx,
		syncCancel:    syncCancel,
	}, nil
}

// EnsureSchema creates the indexes the stores rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	if err := deps.Views.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure view counter indexes: %w", err)
	}
	if err := deps.Payloads.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure payload cache indexes: %w", err)
	}

	logger.Info("MongoDB indexes ensured")
	return nil
}
