// internal/app/system/adminauth/adminauth.go

// Package adminauth guards operational endpoints (manual sync) with a shared
// admin key. The configuration carries only a bcrypt hash of the key; the
// plaintext never touches disk or config files.
package adminauth

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HeaderName is the request header carrying the admin key.
const HeaderName = "X-Admin-Key"

// Middleware returns a chi-compatible middleware that rejects requests whose
// admin key does not match the configured bcrypt hash. An empty hash disables
// the guarded endpoints entirely (503), so a misconfigured deployment fails
// closed rather than open.
func Middleware(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				writeJSONError(w, http.StatusServiceUnavailable, "admin endpoints are not configured")
				return
			}

			key := strings.TrimSpace(r.Header.Get(HeaderName))
			if key == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing admin key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.Warn("admin key rejected", zap.String("path", r.URL.Path))
				writeJSONError(w, http.StatusForbidden, "invalid admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
