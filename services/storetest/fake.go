// Package storetest provides an in-memory services.Store for tests.
package storetest

import (
	"context"
	"database/sql"
	"sync"

	"github.com/gewnthar/skysql/database"
	"github.com/gewnthar/skysql/models"
)

// Store serves canned values. Setting Err makes every query method fail
// except Name. Metrics holds the operational metrics considered recent.
type Store struct {
	mu sync.Mutex

	DBName  string
	PingErr error
	Err     error

	Stats           models.TableStats
	Columns         []models.TableColumn
	Airlines        []models.Airline
	Airports        []models.Airport
	RouteList       []models.Route
	Flights         []models.FlightRecord
	Aircraft        []models.AircraftConfig
	Performance     map[int][]models.FlightPerformance
	RouteCount      sql.NullInt64
	FlightCount     sql.NullInt64
	BaseFuel        sql.NullFloat64
	FuelSaved       sql.NullFloat64
	Efficiency      []models.RouteEfficiency
	ReportRows      []models.ReportRow
	Daily           []models.DailyMetric
	Summary         *database.MetricsSummary
	Metrics         []models.OperationalMetric
	EnsureCalls     int
	InsertedBatches int
}

func (f *Store) Name() string { return f.DBName }

func (f *Store) Ping(context.Context) error { return f.PingErr }

func (f *Store) TableStats(context.Context) (*models.TableStats, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	stats := f.Stats
	return &stats, nil
}

func (f *Store) TableColumns(context.Context) ([]models.TableColumn, error) {
	return f.Columns, f.Err
}

func (f *Store) ListAirlines(context.Context) ([]models.Airline, error) { return f.Airlines, f.Err }

func (f *Store) ListAirports(context.Context) ([]models.Airport, error) { return f.Airports, f.Err }

func (f *Store) ListRoutes(context.Context) ([]models.Route, error) { return f.RouteList, f.Err }

func (f *Store) ListFlights(context.Context) ([]models.FlightRecord, error) { return f.Flights, f.Err }

func (f *Store) ListAircraftConfigs(context.Context) ([]models.AircraftConfig, error) {
	return f.Aircraft, f.Err
}

func (f *Store) ListRouteRefs(_ context.Context, limit int) ([]models.RouteRef, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	var refs []models.RouteRef
	for _, r := range f.RouteList {
		if len(refs) == limit {
			break
		}
		refs = append(refs, models.RouteRef{
			ID:            r.ID,
			AirlineCode:   r.AirlineCode,
			SourceAirport: r.SourceAirport,
			DestAirport:   r.DestAirport,
		})
	}
	return refs, nil
}

func (f *Store) GetRoute(_ context.Context, routeID int) (*models.Route, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, r := range f.RouteList {
		if r.ID == routeID {
			route := r
			return &route, nil
		}
	}
	return nil, nil
}

func (f *Store) RecentPerformance(_ context.Context, routeID, limit int) ([]models.FlightPerformance, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	perf := f.Performance[routeID]
	if len(perf) > limit {
		perf = perf[:limit]
	}
	return perf, nil
}

func (f *Store) CountRoutes(context.Context) (sql.NullInt64, error)   { return f.RouteCount, f.Err }
func (f *Store) CountFlights(context.Context) (sql.NullInt64, error)  { return f.FlightCount, f.Err }
func (f *Store) SumBaseFuel(context.Context) (sql.NullFloat64, error) { return f.BaseFuel, f.Err }

func (f *Store) SumFuelSaved(context.Context, int) (sql.NullFloat64, error) {
	return f.FuelSaved, f.Err
}

func (f *Store) RouteEfficiency(context.Context, int) ([]models.RouteEfficiency, error) {
	return f.Efficiency, f.Err
}

func (f *Store) EfficiencyReport(context.Context) ([]models.ReportRow, error) {
	return f.ReportRows, f.Err
}

func (f *Store) DailyMetrics(_ context.Context, _ int, limit int) ([]models.DailyMetric, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	daily := f.Daily
	if len(daily) > limit {
		daily = daily[:limit]
	}
	return daily, nil
}

func (f *Store) SummarizeMetrics(context.Context, int) (*database.MetricsSummary, error) {
	return f.Summary, f.Err
}

// EnsureRecentMetrics mirrors database.Store: a no-op when Metrics is
// non-empty, otherwise generate from up to routeLimit routes and append.
func (f *Store) EnsureRecentMetrics(ctx context.Context, _ int, routeLimit int, generate database.MetricsGenerator) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.EnsureCalls++
	if f.Err != nil {
		return 0, f.Err
	}
	if len(f.Metrics) > 0 {
		return 0, nil
	}
	refs, err := f.ListRouteRefs(ctx, routeLimit)
	if err != nil {
		return 0, err
	}
	if len(refs) == 0 {
		return 0, database.ErrNoRoutes
	}
	rows := generate(refs)
	f.Metrics = append(f.Metrics, rows...)
	f.InsertedBatches++
	return len(rows), nil
}
