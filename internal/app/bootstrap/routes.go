// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	calendarfeature "github.com/nontawat/clubhub/internal/app/features/calendar"
	campusesfeature "github.com/nontawat/clubhub/internal/app/features/campuses"
	healthfeature "github.com/nontawat/clubhub/internal/app/features/health"
	organizationsfeature "github.com/nontawat/clubhub/internal/app/features/organizations"
	prefsfeature "github.com/nontawat/clubhub/internal/app/features/prefs"
	projectsfeature "github.com/nontawat/clubhub/internal/app/features/projects"
	syncfeature "github.com/nontawat/clubhub/internal/app/features/sync"
	"github.com/nontawat/clubhub/internal/app/system/adminauth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. ClubHub mounts the directory API:
// organizations, projects, campuses, calendar, per-visitor preferences,
// sync control, and the health check.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	sessionStore := newSessionStore(coreCfg, appCfg, logger)
	requireAdmin := adminauth.Middleware(appCfg.AdminKeyHash, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Holder, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Directory
	orgHandler := organizationsfeature.NewHandler(deps.Holder, deps.Views, deps.Tags, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler))

	projectsHandler := projectsfeature.NewHandler(deps.Holder, deps.Tags, logger)
	r.Mount("/projects", projectsfeature.Routes(projectsHandler))

	campusesHandler := campusesfeature.NewHandler(deps.Holder, logger)
	r.Mount("/campuses", campusesfeature.Routes(campusesHandler))

	calendarHandler := calendarfeature.NewHandler(deps.Holder, logger)
	r.Mount("/calendar", calendarfeature.Routes(calendarHandler))

	// Per-visitor preferences
	prefsHandler := prefsfeature.NewHandler(sessionStore, deps.Holder, logger)
	r.Mount("/prefs", prefsfeature.Routes(prefsHandler))

	// Sync status and manual refresh
	syncHandler := syncfeature.NewHandler(deps.Refresher, deps.Holder, logger)
	r.Mount("/sync", syncfeature.Routes(syncHandler, requireAdmin))

	return r, nil
}

// newSessionStore builds the cookie store for preference sessions. With no
// configured key, a random per-process key is generated: preferences then
// reset on every restart, which is acceptable in development but logged
// loudly.
func newSessionStore(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) *sessions.CookieStore {
	key := []byte(appCfg.SessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("no session_key configured; preference cookies will not survive restarts")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	secure := coreCfg.Env == "prod"
	opts := &sessions.Options{
		Domain:   appCfg.SessionDomain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	return store
}
