package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details map[string]any) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}
