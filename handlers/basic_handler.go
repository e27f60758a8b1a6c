// handlers/basic_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gewnthar/skysql/services"
)

// Root identifies the API.
func (api *API) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, api.svc.Info())
}

// Health answers 503 when the database probe fails.
func (api *API) Health(w http.ResponseWriter, r *http.Request) {
	status, err := api.svc.Health(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrDatabaseDown) && status != nil {
			api.log.Error("health check failed", "error", err)
			respondWithJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		api.log.Error("health check failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Health check failed")
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}

func (api *API) DebugTables(w http.ResponseWriter, r *http.Request) {
	report, err := api.svc.Tables(r.Context())
	if err != nil {
		api.log.Error("failed to describe tables", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to describe database tables")
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (api *API) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusNotFound, errorBody{
		Error:         "Endpoint not found",
		Timestamp:     time.Now(),
		Documentation: "See / for available endpoints",
	})
}

func (api *API) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusMethodNotAllowed, errorBody{
		Error:         "Method not allowed",
		Timestamp:     time.Now(),
		Documentation: "See / for available endpoints",
	})
}
