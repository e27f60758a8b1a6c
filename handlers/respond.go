// handlers/respond.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error         string    `json:"error"`
	Timestamp     time.Time `json:"timestamp"`
	Documentation string    `json:"documentation,omitempty"`
	Supported     []string  `json:"supported,omitempty"`
}

// respondWithJSON writes payload as JSON with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorBody{Error: message, Timestamp: time.Now()})
}
