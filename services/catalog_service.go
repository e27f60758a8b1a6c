// services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gewnthar/skysql/models"
)

// ErrDatabaseDown is returned by Health when the connectivity probe fails.
// The accompanying HealthStatus is still populated for the response body.
var ErrDatabaseDown = errors.New("database connection test failed")

const serverTimeLayout = "2006-01-02 15:04:05"

// API identity served at the root endpoint.
const (
	APIName        = "SkySQL Intelligence"
	APIVersion     = "1.0.0"
	APIDescription = "Professional Airline Operational Efficiency Analytics Platform"
	APIDatabase    = "MariaDB"
)

// Served by /api/config/aircraft when aircraft_config is empty.
var fallbackAircraft = []models.AircraftConfig{
	{ID: 1, AircraftModel: "Boeing 737-800", SeatCapacity: 189, FuelEfficiency: 0.00152, MaxRangeKm: 5765},
	{ID: 2, AircraftModel: "Boeing 787-9", SeatCapacity: 290, FuelEfficiency: 0.0015, MaxRangeKm: 14140},
	{ID: 3, AircraftModel: "Airbus A320neo", SeatCapacity: 194, FuelEfficiency: 0.0010, MaxRangeKm: 6300},
	{ID: 4, AircraftModel: "Airbus A350-900", SeatCapacity: 315, FuelEfficiency: 0.0012, MaxRangeKm: 15000},
	{ID: 5, AircraftModel: "Boeing 777-300ER", SeatCapacity: 396, FuelEfficiency: 0.0018, MaxRangeKm: 13650},
}

func (s *Service) Info() models.APIInfo {
	return models.APIInfo{
		API:         APIName,
		Version:     APIVersion,
		Description: APIDescription,
		Database:    APIDatabase,
		Timestamp:   s.now(),
		Status:      StatusOperational,
	}
}

// Health probes the database, makes sure recent operational metrics exist
// and reports table row counts. When the probe fails the returned status
// describes the outage and the error wraps ErrDatabaseDown.
func (s *Service) Health(ctx context.Context) (*models.HealthStatus, error) {
	now := s.now()
	if err := s.store.Ping(ctx); err != nil {
		return &models.HealthStatus{
			Status:    "unhealthy",
			Database:  "disconnected",
			Timestamp: now,
			Error:     "Database connection test failed",
		}, fmt.Errorf("%w: %v", ErrDatabaseDown, err)
	}

	metrics := "generating"
	if ok, _ := s.EnsureMetrics(ctx); ok {
		metrics = "ready"
	}

	stats, err := s.store.TableStats(ctx)
	if err != nil {
		return nil, err
	}

	return &models.HealthStatus{
		Status:             "healthy",
		Database:           "connected",
		OperationalMetrics: metrics,
		Timestamp:          now,
		Statistics:         stats,
		ServerTime:         now.Format(serverTimeLayout),
	}, nil
}

func (s *Service) Airlines(ctx context.Context) (*models.ListResponse[models.Airline], error) {
	return list(ctx, s, s.store.ListAirlines)
}

func (s *Service) Airports(ctx context.Context) (*models.ListResponse[models.Airport], error) {
	return list(ctx, s, s.store.ListAirports)
}

func (s *Service) Routes(ctx context.Context) (*models.ListResponse[models.Route], error) {
	return list(ctx, s, s.store.ListRoutes)
}

func (s *Service) Flights(ctx context.Context) (*models.ListResponse[models.FlightRecord], error) {
	return list(ctx, s, s.store.ListFlights)
}

// AircraftConfigs lists configured aircraft, or the built-in fleet when the
// table is empty.
func (s *Service) AircraftConfigs(ctx context.Context) (*models.ListResponse[models.AircraftConfig], error) {
	resp, err := list(ctx, s, s.store.ListAircraftConfigs)
	if err != nil {
		return nil, err
	}
	if resp.Count == 0 {
		resp.Data = append([]models.AircraftConfig(nil), fallbackAircraft...)
		resp.Count = len(resp.Data)
	}
	return resp, nil
}

// Tables describes the columns of every table in the configured schema.
func (s *Service) Tables(ctx context.Context) (*models.TablesReport, error) {
	cols, err := s.store.TableColumns(ctx)
	if err != nil {
		return nil, err
	}
	if cols == nil {
		cols = []models.TableColumn{}
	}
	return &models.TablesReport{Database: s.store.Name(), Tables: cols, Timestamp: s.now()}, nil
}

func list[T any](ctx context.Context, s *Service, fetch func(context.Context) ([]T, error)) (*models.ListResponse[T], error) {
	rows, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return &models.ListResponse[T]{Timestamp: s.now(), Count: len(rows), Data: rows}, nil
}
