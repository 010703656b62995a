// internal/app/upstream/client.go

// Package upstream fetches organizations, projects, and campuses from the
// remote university directory API. All directory data originates there; this
// package owns the transport concerns (bearer token, timeout, in-flight
// cancellation) and returns raw records for the directory pipeline to
// normalize.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/nontawat/clubhub/internal/domain/models"
)

// Resource names for the three upstream collections. Cancellation is scoped
// per resource: a new fetch for a resource aborts the previous in-flight
// fetch for the same resource only.
const (
	ResourceOrganizations = "organizations"
	ResourceProjects      = "projects"
	ResourceCampuses      = "campuses"
)

// ErrSuperseded is returned when a fetch was aborted because a newer fetch
// for the same resource started. Callers must discard the result and must
// not surface this as a failure.
var ErrSuperseded = errors.New("upstream: fetch superseded by a newer request")

// Config holds the upstream connection settings.
type Config struct {
	BaseURL string

	// Token endpoint for the client-credentials grant. Leave empty to call
	// the upstream API unauthenticated (local development).
	TokenURL     string
	ClientID     string
	ClientSecret string

	// Timeout bounds each individual request. Zero means the caller's
	// context is the only bound.
	Timeout time.Duration
}

// Client is a directory API client. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	log     *zap.Logger

	mu       sync.Mutex
	attempts map[string]*attempt
}

// attempt tracks the newest in-flight fetch per resource.
type attempt struct {
	seq    uint64
	cancel context.CancelFunc
}

// New builds a Client. With a token URL configured, requests carry a bearer
// token obtained via the OAuth2 client-credentials grant; the oauth2
// transport caches and renews it as needed.
func New(cfg Config, logger *zap.Logger) *Client {
	httpc := &http.Client{}
	if cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		httpc = cc.Client(context.Background())
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		httpc:    httpc,
		timeout:  cfg.Timeout,
		log:      logger,
		attempts: make(map[string]*attempt),
	}
}

// FetchOrganizations retrieves all club records.
func (c *Client) FetchOrganizations(ctx context.Context) ([]models.RawOrganization, error) {
	var out []models.RawOrganization
	if err := c.getJSON(ctx, ResourceOrganizations, "/organizations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchProjects retrieves all project/event records.
func (c *Client) FetchProjects(ctx context.Context) ([]models.RawProject, error) {
	var out []models.RawProject
	if err := c.getJSON(ctx, ResourceProjects, "/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCampuses retrieves the campus list.
func (c *Client) FetchCampuses(ctx context.Context) ([]models.Campus, error) {
	var out []models.Campus
	if err := c.getJSON(ctx, ResourceCampuses, "/campuses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// begin registers a new fetch attempt for the resource, canceling any
// previous in-flight attempt. It returns the attempt's context along with a
// cleanup func and a stale check: a fetch whose sequence number is no longer
// current must discard its result.
func (c *Client) begin(ctx context.Context, resource string) (context.Context, context.CancelFunc, func() bool) {
	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	c.mu.Lock()
	prev := c.attempts[resource]
	if prev != nil {
		prev.cancel()
	}
	var seq uint64 = 1
	if prev != nil {
		seq = prev.seq + 1
	}
	cur := &attempt{seq: seq, cancel: cancel}
	c.attempts[resource] = cur
	c.mu.Unlock()

	stale := func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		a := c.attempts[resource]
		return a == nil || a.seq != seq
	}
	return ctx, cancel, stale
}

// getJSON performs one GET against the upstream API and decodes the response
// body into out. A superseded fetch returns ErrSuperseded even if the HTTP
// exchange completed, so a late result is never applied.
func (c *Client) getJSON(ctx context.Context, resource, path string, out any) error {
	ctx, cancel, stale := c.begin(ctx, resource)
	defer cancel()

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("upstream: build request for %s: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		if stale() {
			return ErrSuperseded
		}
		return fmt.Errorf("upstream: fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		if stale() {
			return ErrSuperseded
		}
		return fmt.Errorf("upstream: fetch %s: unexpected status %d", resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if stale() {
			return ErrSuperseded
		}
		return fmt.Errorf("upstream: decode %s: %w", resource, err)
	}

	// A newer fetch may have started while we were reading the body; its
	// result wins and ours must be discarded.
	if stale() {
		return ErrSuperseded
	}

	c.log.Debug("upstream fetch complete",
		zap.String("resource", resource),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
