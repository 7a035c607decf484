package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the JSON shape of every failure response. Details carries
// per-field validation messages on 400s and is omitted otherwise.
type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone at this point; all we can do is log.
		slog.Error("Response encoding failed", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondFieldErrors reports a validation failure with structured field
// errors, always as a 400.
func respondFieldErrors(w http.ResponseWriter, message string, details map[string]string) {
	respondJSON(w, http.StatusBadRequest, errorBody{Error: message, Details: details})
}
