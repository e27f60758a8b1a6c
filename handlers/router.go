// handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gewnthar/skysql/logger"
	"github.com/gewnthar/skysql/services"
)

type RouterOptions struct {
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration
	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string
}

// API serves the SkySQL Intelligence HTTP endpoints.
type API struct {
	svc *services.Service
	log *slog.Logger
}

func NewAPI(svc *services.Service) *API {
	return &API{svc: svc, log: logger.WithComponent("http")}
}

// NewRouter mounts every endpoint and the shared middleware stack.
func NewRouter(svc *services.Service, opts RouterOptions) http.Handler {
	api := NewAPI(svc)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(api.log))
	r.Use(recoverer(api.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	api.RegisterRoutes(r)
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)
	return r
}

func (api *API) RegisterRoutes(r chi.Router) {
	r.Get("/", api.Root)
	r.Get("/api/health", api.Health)
	r.Get("/api/debug/tables", api.DebugTables)

	r.Get("/api/airlines", api.Airlines)
	r.Get("/api/airports", api.Airports)
	r.Get("/api/routes", api.Routes)
	r.Get("/api/flights", api.Flights)
	r.Get("/api/config/aircraft", api.AircraftConfigs)

	r.Get("/api/dashboard-stats", api.DashboardStats)
	r.Get("/api/analytics/efficiency", api.EfficiencyAnalytics)
	r.Get("/api/metrics", api.OperationalMetrics)
	r.Get("/api/analyze/route/{routeID}", api.AnalyzeRoute)
	r.Post("/api/generate-report", api.GenerateReport)
}
