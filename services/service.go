// services/service.go
package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gewnthar/skysql/database"
	"github.com/gewnthar/skysql/logger"
	"github.com/gewnthar/skysql/models"
)

var (
	// ErrRouteNotFound is returned by AnalyzeRoute for an unknown route id.
	ErrRouteNotFound = errors.New("route not found")
	// ErrUnknownReportType is returned by GenerateReport for report types
	// other than those in SupportedReportTypes.
	ErrUnknownReportType = errors.New("unsupported report type")
)

// Store is the data access the services need. *database.Store implements it.
type Store interface {
	Name() string
	Ping(ctx context.Context) error
	TableStats(ctx context.Context) (*models.TableStats, error)
	TableColumns(ctx context.Context) ([]models.TableColumn, error)

	ListAirlines(ctx context.Context) ([]models.Airline, error)
	ListAirports(ctx context.Context) ([]models.Airport, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
	ListFlights(ctx context.Context) ([]models.FlightRecord, error)
	ListAircraftConfigs(ctx context.Context) ([]models.AircraftConfig, error)
	ListRouteRefs(ctx context.Context, limit int) ([]models.RouteRef, error)
	GetRoute(ctx context.Context, routeID int) (*models.Route, error)
	RecentPerformance(ctx context.Context, routeID, limit int) ([]models.FlightPerformance, error)

	CountRoutes(ctx context.Context) (sql.NullInt64, error)
	CountFlights(ctx context.Context) (sql.NullInt64, error)
	SumBaseFuel(ctx context.Context) (sql.NullFloat64, error)
	SumFuelSaved(ctx context.Context, days int) (sql.NullFloat64, error)
	RouteEfficiency(ctx context.Context, days int) ([]models.RouteEfficiency, error)
	EfficiencyReport(ctx context.Context) ([]models.ReportRow, error)
	DailyMetrics(ctx context.Context, days, limit int) ([]models.DailyMetric, error)
	SummarizeMetrics(ctx context.Context, days int) (*database.MetricsSummary, error)
	EnsureRecentMetrics(ctx context.Context, days, routeLimit int, generate database.MetricsGenerator) (int, error)
}

const (
	StatusOperational = "operational"
	StatusFallback    = "fallback_data"
)

// Service implements the SkySQL read API on top of a Store, substituting
// synthesized data whenever a query succeeds with no rows.
type Service struct {
	store Store
	synth *Synthesizer
	now   func() time.Time
	log   *slog.Logger
}

type Option func(*Service)

// WithRand makes synthesized data reproducible.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.synth = NewSynthesizer(r) }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		log:   logger.WithComponent("services"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.synth == nil {
		s.synth = NewSynthesizer(nil)
	}
	return s
}
