// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request limits.
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Upstream university directory API
	UpstreamBaseURL      string        // Base URL of the directory API
	UpstreamTokenURL     string        // OAuth2 token endpoint (blank disables client-credentials auth)
	UpstreamClientID     string        // OAuth2 client ID
	UpstreamClientSecret string        // OAuth2 client secret
	UpstreamTimeout      time.Duration // Per-request timeout for upstream fetches

	// Sync cycle configuration
	SyncInterval time.Duration // Time between periodic refreshes
	SyncDebounce time.Duration // Quiescence window for coalescing manual refresh triggers

	// Admin key for operational endpoints. Only the bcrypt hash is
	// configured; blank disables the guarded endpoints.
	AdminKeyHash string

	// Session management configuration for preference cookies
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)
}
