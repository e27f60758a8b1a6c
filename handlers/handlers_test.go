package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/skysql/models"
	"github.com/gewnthar/skysql/services"
	"github.com/gewnthar/skysql/services/storetest"
)

func newTestRouter(store *storetest.Store) http.Handler {
	svc := services.NewService(store,
		services.WithRand(rand.New(rand.NewPCG(3, 5))),
		services.WithClock(func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }),
	)
	return NewRouter(svc, RouterOptions{RequestTimeout: 5 * time.Second})
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func sampleRoutes() []models.Route {
	name := "Qantas Airways"
	return []models.Route{
		{ID: 1, AirlineCode: "QF", SourceAirport: "SYD", DestAirport: "LAX", DistanceKm: 12051, BaseFuelKg: 144000, AirlineName: &name},
		{ID: 7, AirlineCode: "LH", SourceAirport: "FRA", DestAirport: "JFK", DistanceKm: 6200, BaseFuelKg: 74500},
	}
}

func TestRoot(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{}), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "SkySQL Intelligence", body["api"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "MariaDB", body["database"])
	assert.Equal(t, "operational", body["status"])
}

func TestHealth_Unavailable(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{PingErr: errors.New("connection refused")}), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "disconnected", body["database"])
}

func TestHealth_OK(t *testing.T) {
	store := &storetest.Store{RouteList: sampleRoutes(), Stats: models.TableStats{RouteCount: 2}}
	rec := serve(t, newTestRouter(store), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "ready", body["operational_metrics"])
	assert.Equal(t, "2026-10-19 08:00:00", body["server_time"])
	stats := body["statistics"].(map[string]any)
	assert.Equal(t, 2.0, stats["route_count"])
}

func TestListings(t *testing.T) {
	store := &storetest.Store{
		Airlines:  []models.Airline{{ID: 1, Name: "Qantas Airways", IATACode: "QF", Country: "Australia"}},
		RouteList: sampleRoutes(),
	}
	h := newTestRouter(store)

	rec := serve(t, h, http.MethodGet, "/api/airlines", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, 1.0, body["count"])
	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "QF", first["iata_code"])

	rec = serve(t, h, http.MethodGet, "/api/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, 2.0, body["count"])
	route := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, 1.0, route["route_id"])
	assert.Equal(t, "LAX", route["destination_airport"])

	rec = serve(t, h, http.MethodGet, "/api/airports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decode(t, rec)["data"])
}

func TestListings_StoreFailure(t *testing.T) {
	h := newTestRouter(&storetest.Store{Err: errors.New("server has gone away")})

	for path, msg := range map[string]string{
		"/api/airlines":        "Failed to fetch airlines data",
		"/api/airports":        "Failed to fetch airports data",
		"/api/routes":          "Failed to fetch routes data",
		"/api/flights":         "Failed to fetch flights data",
		"/api/config/aircraft": "Aircraft configuration service temporarily unavailable",
	} {
		rec := serve(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Equal(t, msg, decode(t, rec)["error"], path)
	}
}

func TestAircraftConfigFallback(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{}), http.MethodGet, "/api/config/aircraft", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ListResponse[models.AircraftConfig]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 5, resp.Count)
	assert.Equal(t, "Airbus A320neo", resp.Data[2].AircraftModel)
	assert.Equal(t, 0.00152, resp.Data[0].FuelEfficiency)
	assert.Equal(t, 13650, resp.Data[4].MaxRangeKm)
}

func TestAnalyzeRoute_NotFound(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{RouteList: sampleRoutes()}), http.MethodGet, "/api/analyze/route/424242", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode(t, rec)["error"])
}

func TestAnalyzeRoute_BadID(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{}), http.MethodGet, "/api/analyze/route/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")
}

func TestAnalyzeRoute_ZeroDistance(t *testing.T) {
	store := &storetest.Store{RouteList: []models.Route{{ID: 9, AirlineCode: "NZ", SourceAirport: "AKL", DestAirport: "SYD", BaseFuelKg: 28500}}}
	rec := serve(t, newTestRouter(store), http.MethodGet, "/api/analyze/route/9", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Route analysis service temporarily unavailable", decode(t, rec)["error"])
}

func TestAnalyzeRoute_Fallback(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{RouteList: sampleRoutes()}), http.MethodGet, "/api/analyze/route/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var analysis models.RouteAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, 92.1, analysis.CurrentEfficiency)
	assert.Zero(t, analysis.TotalFlightsAnalyzed)
	assert.Equal(t, "Qantas Airways", analysis.Airline)
	assert.Len(t, analysis.Recommendations, 4)
}

func TestDashboardStats(t *testing.T) {
	store := &storetest.Store{
		RouteCount:  sql.NullInt64{Int64: 18, Valid: true},
		FlightCount: sql.NullInt64{Int64: 245, Valid: true},
		BaseFuel:    sql.NullFloat64{Float64: 2850000, Valid: true},
		FuelSaved:   sql.NullFloat64{Float64: 125000, Valid: true},
	}
	rec := serve(t, newTestRouter(store), http.MethodGet, "/api/dashboard-stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	impact := decode(t, rec)["efficiency_impact"].(map[string]any)
	assert.Equal(t, 395.0, impact["potential_co2_reduction_tons"])
	assert.Equal(t, 106250.0, impact["estimated_cost_savings_usd"])
}

func TestDashboardStats_Failure(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{Err: errors.New("lock wait timeout")}), http.MethodGet, "/api/dashboard-stats", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Dashboard service temporarily unavailable", decode(t, rec)["error"])
}

func TestEfficiencyAnalytics_Fallback(t *testing.T) {
	rec := serve(t, newTestRouter(&storetest.Store{RouteList: sampleRoutes()}), http.MethodGet, "/api/analytics/efficiency", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Route Efficiency Analytics", body["analysis_type"])
	assert.Equal(t, 2.0, body["total_routes_analyzed"])
	assert.Equal(t, "fallback_data", body["status"])
}

func TestOperationalMetrics(t *testing.T) {
	store := &storetest.Store{RouteList: sampleRoutes()}
	rec := serve(t, newTestRouter(store), http.MethodGet, "/api/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "last_7_days", body["period"])
	assert.Len(t, body["daily_metrics"], 7)
	assert.Len(t, store.Metrics, 14)
}

func TestGenerateReport(t *testing.T) {
	store := &storetest.Store{ReportRows: []models.ReportRow{
		{RouteID: 1, Route: "SYD to LAX", AvgEfficiency: 0.9, FlightsAnalyzed: 5, AvgFuelUsed: 140000, AvgPassengers: 280},
	}}
	h := newTestRouter(store)

	rec := serve(t, h, http.MethodPost, "/api/generate-report", `{"report_type":"efficiency"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "efficiency", body["report_type"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, 1.0, summary["total_routes"])
	assert.Equal(t, 5.0, summary["total_flights"])

	rec = serve(t, h, http.MethodPost, "/api/generate-report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "efficiency", decode(t, rec)["report_type"])
}

func TestGenerateReport_CSV(t *testing.T) {
	store := &storetest.Store{ReportRows: []models.ReportRow{
		{RouteID: 1, Route: "SYD to LAX", AvgEfficiency: 0.9, FlightsAnalyzed: 5, AvgFuelUsed: 140000, AvgPassengers: 280},
	}}
	rec := serve(t, newTestRouter(store), http.MethodPost, "/api/generate-report", `{"report_type":"efficiency","format":"csv"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "route_id,route,avg_efficiency,flights_analyzed,avg_fuel_used,avg_passengers", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,SYD to LAX,"))
}

func TestGenerateReport_BadRequests(t *testing.T) {
	h := newTestRouter(&storetest.Store{})

	rec := serve(t, h, http.MethodPost, "/api/generate-report", `{"report_type":"emissions"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Unsupported report type: emissions", body["error"])
	assert.Equal(t, []any{"efficiency"}, body["supported"])

	rec = serve(t, h, http.MethodPost, "/api/generate-report", `{"report_type":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/generate-report", `{"format":"xml"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDebugTables(t *testing.T) {
	store := &storetest.Store{
		DBName:  "skysql_intelligence",
		Columns: []models.TableColumn{{TableName: "routes", ColumnName: "route_id", DataType: "int", IsNullable: "NO"}},
	}
	rec := serve(t, newTestRouter(store), http.MethodGet, "/api/debug/tables", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "skysql_intelligence", body["database"])
	assert.Len(t, body["tables"], 1)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestRouter(&storetest.Store{})

	rec := serve(t, h, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Equal(t, "See / for available endpoints", body["documentation"])

	rec = serve(t, h, http.MethodDelete, "/api/airlines", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecoverer(t *testing.T) {
	api := NewAPI(nil)
	h := recoverer(api.log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := serve(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["error"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(&storetest.Store{})
	req := httptest.NewRequest(http.MethodOptions, "/api/airlines", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req.WithContext(context.Background()))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
