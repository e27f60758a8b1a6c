// database/seed_store.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gewnthar/skysql/models"
)

// SeedAirlines inserts airlines keyed by their explicit ids, leaving existing
// rows untouched. It returns the number of rows actually inserted.
func (s *Store) SeedAirlines(ctx context.Context, airlines []models.Airline) (int64, error) {
	rows := make([][]any, 0, len(airlines))
	for _, a := range airlines {
		rows = append(rows, []any{a.ID, a.Name, a.IATACode, a.Country})
	}
	return s.execBatch(ctx, "airlines",
		"INSERT IGNORE INTO airlines (airline_id, name, iata_code, country) VALUES (?, ?, ?, ?)", rows)
}

// SeedAirports inserts airports keyed by their explicit ids, leaving existing
// rows untouched.
func (s *Store) SeedAirports(ctx context.Context, airports []models.Airport) (int64, error) {
	rows := make([][]any, 0, len(airports))
	for _, a := range airports {
		rows = append(rows, []any{a.ID, a.Name, a.City, a.Country, a.IATACode})
	}
	return s.execBatch(ctx, "airports",
		"INSERT IGNORE INTO airports (airport_id, name, city, country, iata_code) VALUES (?, ?, ?, ?, ?)", rows)
}

// SeedRoutes inserts routes only when the routes table is empty. Route ids
// are auto-assigned, so re-running against a populated table would duplicate
// every city-pair.
func (s *Store) SeedRoutes(ctx context.Context, routes []models.Route) (int64, error) {
	empty, err := s.tableEmpty(ctx, "routes")
	if err != nil || !empty {
		return 0, err
	}
	rows := make([][]any, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []any{r.AirlineCode, r.SourceAirport, r.DestAirport, r.DistanceKm, r.BaseFuelKg})
	}
	return s.execBatch(ctx, "routes",
		"INSERT INTO routes (airline_code, source_airport, dest_airport, distance_km, base_fuel_kg) VALUES (?, ?, ?, ?, ?)", rows)
}

// SeedAircraftConfigs inserts aircraft configurations when the table is empty.
func (s *Store) SeedAircraftConfigs(ctx context.Context, configs []models.AircraftConfig) (int64, error) {
	empty, err := s.tableEmpty(ctx, "aircraft_config")
	if err != nil || !empty {
		return 0, err
	}
	rows := make([][]any, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []any{c.AircraftModel, c.FuelEfficiency, c.SeatCapacity, c.MaxRangeKm})
	}
	return s.execBatch(ctx, "aircraft_config",
		"INSERT INTO aircraft_config (aircraft_model, fuel_efficiency, seat_capacity, max_range_km) VALUES (?, ?, ?, ?)", rows)
}

// ListSeedRoutes returns id and base fuel for every route, for generating
// flight history.
func (s *Store) ListSeedRoutes(ctx context.Context) ([]models.Route, error) {
	return queryRecords(ctx, s.db, "seed route",
		[]string{"route_id", "base_fuel_kg"},
		func(rows *sql.Rows) (models.Route, error) {
			var r models.Route
			err := rows.Scan(&r.ID, &r.BaseFuelKg)
			return r, err
		}, "SELECT route_id, base_fuel_kg FROM routes")
}

// SeedFlightPerformance inserts flight history when the table is empty.
func (s *Store) SeedFlightPerformance(ctx context.Context, flights []models.FlightPerformance) (int64, error) {
	empty, err := s.tableEmpty(ctx, "flight_performance")
	if err != nil || !empty {
		return 0, err
	}
	rows := make([][]any, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []any{
			f.RouteID, f.FlightDate, f.ActualFuelKg, f.PlannedFuelKg,
			f.PassengersCount, f.EfficiencyScore, f.FuelSavingsKg,
		})
	}
	return s.execBatch(ctx, "flight_performance", `
		INSERT INTO flight_performance
			(route_id, flight_date, actual_fuel_kg, planned_fuel_kg, passengers_count, efficiency_score, fuel_savings_kg)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rows)
}

// tableEmpty only accepts the fixed SkySQL table names.
func (s *Store) tableEmpty(ctx context.Context, table string) (bool, error) {
	switch table {
	case "routes", "aircraft_config", "flight_performance":
	default:
		return false, fmt.Errorf("unexpected table %q", table)
	}
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n == 0, nil
}

// execBatch runs one prepared statement per row inside a transaction.
func (s *Store) execBatch(ctx context.Context, table, query string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		s.log.Info("no rows provided to seed", "table", table)
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare %s insert statement: %w", table, err)
	}
	defer stmt.Close()

	var inserted int64
	for _, args := range rows {
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			s.log.Error("failed to seed row", "table", table, "row", args, "error", err)
			return 0, fmt.Errorf("failed to execute %s insert: %w", table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction for %s: %w", table, err)
	}
	s.log.Info("seeded table", "table", table, "rows", inserted)
	return inserted, nil
}
