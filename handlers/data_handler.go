// handlers/data_handler.go
package handlers

import (
	"context"
	"net/http"
)

// listHandler adapts a plain listing to an endpoint that answers 500 with
// failMessage when the store fails.
func listHandler[T any](api *API, name, failMessage string, fetch func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := fetch(r.Context())
		if err != nil {
			api.log.Error("listing failed", "resource", name, "error", err)
			respondWithError(w, http.StatusInternalServerError, failMessage)
			return
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func (api *API) Airlines(w http.ResponseWriter, r *http.Request) {
	listHandler(api, "airlines", "Failed to fetch airlines data", api.svc.Airlines)(w, r)
}

func (api *API) Airports(w http.ResponseWriter, r *http.Request) {
	listHandler(api, "airports", "Failed to fetch airports data", api.svc.Airports)(w, r)
}

func (api *API) Routes(w http.ResponseWriter, r *http.Request) {
	listHandler(api, "routes", "Failed to fetch routes data", api.svc.Routes)(w, r)
}

func (api *API) Flights(w http.ResponseWriter, r *http.Request) {
	listHandler(api, "flights", "Failed to fetch flights data", api.svc.Flights)(w, r)
}

// AircraftConfigs falls back to the built-in fleet on an empty table.
func (api *API) AircraftConfigs(w http.ResponseWriter, r *http.Request) {
	listHandler(api, "aircraft_config", "Aircraft configuration service temporarily unavailable", api.svc.AircraftConfigs)(w, r)
}
