// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ClubHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, upstream_base_url, etc.
//   - Environment variables: CLUBHUB_MONGO_URI, CLUBHUB_UPSTREAM_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --upstream_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "clubhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Upstream university directory API
	{Name: "upstream_base_url", Default: "", Desc: "Base URL of the university directory API (required)"},
	{Name: "upstream_token_url", Default: "", Desc: "OAuth2 token endpoint (blank disables client-credentials auth)"},
	{Name: "upstream_client_id", Default: "", Desc: "OAuth2 client ID for the directory API"},
	{Name: "upstream_client_secret", Default: "", Desc: "OAuth2 client secret for the directory API"},
	{Name: "upstream_timeout", Default: "10s", Desc: "Per-request timeout for upstream fetches"},

	// Sync cycle
	{Name: "sync_interval", Default: "5m", Desc: "Time between periodic directory refreshes"},
	{Name: "sync_debounce", Default: "300ms", Desc: "Quiescence window for coalescing manual refresh triggers"},

	// Operational endpoints
	{Name: "admin_key_hash", Default: "", Desc: "bcrypt hash of the admin key (blank disables admin endpoints)"},

	// Preference cookies
	{Name: "session_key", Default: "", Desc: "Session signing key (blank generates a per-process random key)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, CLUBHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLUBHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		UpstreamBaseURL:      appValues.String("upstream_base_url"),
		UpstreamTokenURL:     appValues.String("upstream_token_url"),
		UpstreamClientID:     appValues.String("upstream_client_id"),
		UpstreamClientSecret: appValues.String("upstream_client_secret"),
		UpstreamTimeout:      appValues.Duration("upstream_timeout", 10*time.Second),

		SyncInterval: appValues.Duration("sync_interval", 5*time.Minute),
		SyncDebounce: appValues.Duration("sync_debounce", 300*time.Millisecond),

		AdminKeyHash: appValues.String("admin_key_hash"),

		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// ClubHub validates the MongoDB URI and the upstream API configuration to
// catch errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if err := validateUpstream(appCfg); err != nil {
		logger.Error("invalid upstream configuration", zap.Error(err))
		return err
	}

	if appCfg.SyncInterval <= 0 {
		return fmt.Errorf("sync_interval must be positive, got %s", appCfg.SyncInterval)
	}

	return nil
}

func validateUpstream(appCfg AppConfig) error {
	if appCfg.UpstreamBaseURL == "" {
		return fmt.Errorf("upstream_base_url is required")
	}
	u, err := url.Parse(appCfg.UpstreamBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("upstream_base_url must be an absolute http(s) URL, got %q", appCfg.UpstreamBaseURL)
	}

	// Client-credentials auth is all-or-nothing.
	if appCfg.UpstreamTokenURL != "" {
		if appCfg.UpstreamClientID == "" || appCfg.UpstreamClientSecret == "" {
			return fmt.Errorf("upstream_token_url requires upstream_client_id and upstream_client_secret")
		}
	}

	return nil
}
