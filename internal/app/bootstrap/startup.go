// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// ClubHub seeds the directory from the cached upstream payloads so the API
// serves data immediately, then starts the background refresh loop. The
// first live fetch runs as soon as the loop starts; until it completes,
// requests see the cached (possibly stale) directory rather than an empty
// one.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	deps.Refresher.Seed(ctx)
	go deps.Refresher.Run(deps.syncCtx)

	logger.Info("directory sync started",
		zap.Duration("interval", appCfg.SyncInterval),
		zap.Duration("debounce", appCfg.SyncDebounce))
	return nil
}
