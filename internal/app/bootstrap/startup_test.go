package bootstrap

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	snapshotstore "github.com/nontawat/clubhub/internal/app/store/snapshots"
	viewstore "github.com/nontawat/clubhub/internal/app/store/views"
	"github.com/nontawat/clubhub/internal/testutil"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "clubhub_test",
		UpstreamBaseURL: "https://activity.example.ac.th/api",
		UpstreamTimeout: 10 * time.Second,
		SyncInterval:    5 * time.Minute,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(&config.CoreConfig{}, validAppConfig(), testLogger()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(&config.CoreConfig{}, cfg, testLogger()); err == nil {
		t.Error("bad mongo URI accepted")
	}
}

func TestValidateConfig_Upstream(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"missing base url", func(c *AppConfig) { c.UpstreamBaseURL = "" }, true},
		{"relative base url", func(c *AppConfig) { c.UpstreamBaseURL = "/api" }, true},
		{"ftp base url", func(c *AppConfig) { c.UpstreamBaseURL = "ftp://host/api" }, true},
		{"token url without credentials", func(c *AppConfig) { c.UpstreamTokenURL = "https://id.example/token" }, true},
		{"token url with credentials", func(c *AppConfig) {
			c.UpstreamTokenURL = "https://id.example/token"
			c.UpstreamClientID = "club"
			c.UpstreamClientSecret = "hub"
		}, false},
		{"zero sync interval", func(c *AppConfig) { c.SyncInterval = 0 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validAppConfig()
			tc.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{}, cfg, testLogger())
			if (err != nil) != tc.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestEnsureSchema_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{
		Views:    viewstore.New(db),
		Payloads: snapshotstore.New(db),
	}

	if err := EnsureSchema(ctx, &config.CoreConfig{}, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	// Idempotent on a second run.
	if err := EnsureSchema(ctx, &config.CoreConfig{}, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}
}

func TestNewSessionStore(t *testing.T) {
	store := newSessionStore(&config.CoreConfig{Env: "prod"}, AppConfig{SessionKey: "0123456789abcdef0123456789abcdef"}, testLogger())
	if !store.Options.Secure || store.Options.SameSite != http.SameSiteNoneMode {
		t.Errorf("prod store options: %+v", store.Options)
	}

	store = newSessionStore(&config.CoreConfig{Env: "dev"}, AppConfig{}, testLogger())
	if store.Options.Secure || store.Options.SameSite != http.SameSiteLaxMode {
		t.Errorf("dev store options: %+v", store.Options)
	}
}
