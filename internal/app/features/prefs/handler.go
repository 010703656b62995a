// internal/app/features/prefs/handler.go
package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/nontawat/clubhub/internal/app/snapshot"
	"github.com/nontawat/clubhub/internal/app/system/httpjson"
)

// SessionName is the cookie that carries a visitor's display preferences.
const SessionName = "clubhub_prefs"

const (
	keyTheme  = "theme"
	keyCampus = "default_campus"
)

// DefaultTheme is what a visitor without a preference cookie gets.
const DefaultTheme = "system"

var validThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

// Handler stores per-visitor display preferences in a signed cookie session.
// Preferences are cosmetic; there is no account behind them, so the cookie
// is the whole record.
type Handler struct {
	Store  sessions.Store
	Holder *snapshot.Holder
	Log    *zap.Logger
}

// NewHandler constructs a Prefs handler bound to the session store and the
// snapshot holder (used to validate campus names).
func NewHandler(store sessions.Store, holder *snapshot.Holder, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Holder: holder,
		Log:    logger,
	}
}

// prefsBody is both the response body of GET / and the request body of PUT /.
type prefsBody struct {
	Theme         string `json:"theme"`
	DefaultCampus string `json:"default_campus"`
}

// ServeGet handles GET /prefs. A missing or undecodable cookie yields the
// defaults; a stale signing key must not lock a visitor out of the site.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	httpjson.OK(w, prefsBody{
		Theme:         getStringOr(sess, keyTheme, DefaultTheme),
		DefaultCampus: getStringOr(sess, keyCampus, ""),
	})
}

// HandleSet handles PUT /prefs. Theme must be light, dark or system. A
// non-empty default campus must name a campus in the current directory; the
// comparison is exact, matching the campus filter semantics.
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var body prefsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.BadRequest(w, "malformed preferences body")
		return
	}

	if !validThemes[body.Theme] {
		httpjson.BadRequest(w, "theme must be light, dark or system")
		return
	}
	if body.DefaultCampus != "" && !h.knownCampus(body.DefaultCampus) {
		httpjson.BadRequest(w, "unknown campus "+body.DefaultCampus)
		return
	}

	sess := h.session(r)
	sess.Values[keyTheme] = body.Theme
	sess.Values[keyCampus] = body.DefaultCampus
	if err := sess.Save(r, w); err != nil {
		httpjson.ServerError(w, h.Log, "prefs: save session", err,
			"could not save preferences")
		return
	}

	httpjson.OK(w, body)
}

// session loads the prefs session, treating an undecodable cookie (rotated
// key, tampering) as absent.
func (h *Handler) session(r *http.Request) *sessions.Session {
	sess, err := h.Store.Get(r, SessionName)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			h.Log.Debug("prefs: discarding undecodable cookie")
		} else {
			h.Log.Warn("prefs: session load failed", zap.Error(err))
		}
	}
	// Store.Get always returns a usable (possibly new) session.
	return sess
}

func (h *Handler) knownCampus(name string) bool {
	for _, c := range h.Holder.Current().Campuses {
		if c.Name == name {
			return true
		}
	}
	return false
}

func getStringOr(s *sessions.Session, key, def string) string {
	if v, ok := s.Values[key].(string); ok && v != "" {
		return v
	}
	return def
}
