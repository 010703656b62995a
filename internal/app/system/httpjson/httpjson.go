// internal/app/system/httpjson/httpjson.go

// Package httpjson provides the JSON response helpers shared by all feature
// handlers. Error responses distinguish the states the presentation layer
// cares about: a failed request carries an error body, an empty result is a
// 200 with an empty list, and partial upstream staleness is flagged on the
// envelope rather than treated as an error.
package httpjson

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK encodes v as JSON with 200.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

// Error writes a JSON error body with the given status and user-facing
// message.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// ServerError logs the underlying error and writes a 500 with a user-facing
// message that does not leak internals.
func ServerError(w http.ResponseWriter, logger *zap.Logger, logMsg string, err error, userMsg string) {
	logger.Error(logMsg, zap.Error(err))
	Error(w, http.StatusInternalServerError, userMsg)
}

// NotFound writes a 404 error body.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// BadRequest writes a 400 error body.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}
