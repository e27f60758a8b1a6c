// database/reference_store.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gewnthar/skysql/models"
)

// ListAirlines returns every airline ordered by name.
func (s *Store) ListAirlines(ctx context.Context) ([]models.Airline, error) {
	return queryRecords(ctx, s.db, "airline",
		[]string{"airline_id", "name", "iata_code", "country"},
		func(rows *sql.Rows) (models.Airline, error) {
			var a models.Airline
			var code, country sql.NullString
			err := rows.Scan(&a.ID, &a.Name, &code, &country)
			a.IATACode, a.Country = nullString(code), nullString(country)
			return a, err
		}, `
		SELECT airline_id, name, iata_code, country
		FROM airlines
		ORDER BY name
	`)
}

// ListAirports returns every airport ordered by country, then city.
func (s *Store) ListAirports(ctx context.Context) ([]models.Airport, error) {
	return queryRecords(ctx, s.db, "airport",
		[]string{"airport_id", "name", "city", "country", "iata_code"},
		func(rows *sql.Rows) (models.Airport, error) {
			var a models.Airport
			var city, country, code sql.NullString
			err := rows.Scan(&a.ID, &a.Name, &city, &country, &code)
			a.City, a.Country, a.IATACode = nullString(city), nullString(country), nullString(code)
			return a, err
		}, `
		SELECT airport_id, name, city, country, iata_code
		FROM airports
		ORDER BY country, city
	`)
}

var routeColumns = []string{
	"route_id", "airline_code", "source_airport", "destination_airport",
	"distance_km", "base_fuel_kg", "airline_name",
}

func scanRoute(rows *sql.Rows) (models.Route, error) {
	var r models.Route
	var airlineName sql.NullString
	err := rows.Scan(&r.ID, &r.AirlineCode, &r.SourceAirport, &r.DestAirport,
		&r.DistanceKm, &r.BaseFuelKg, &airlineName)
	if airlineName.Valid {
		r.AirlineName = &airlineName.String
	}
	return r, err
}

// ListRoutes returns every route joined with its airline name, longest first.
func (s *Store) ListRoutes(ctx context.Context) ([]models.Route, error) {
	return queryRecords(ctx, s.db, "route", routeColumns, scanRoute, `
		SELECT
			r.route_id,
			r.airline_code,
			r.source_airport,
			r.dest_airport AS destination_airport,
			r.distance_km,
			r.base_fuel_kg,
			a.name AS airline_name
		FROM routes r
		LEFT JOIN airlines a ON r.airline_code = a.iata_code
		ORDER BY r.distance_km DESC
	`)
}

// GetRoute returns the route with the given id, or nil when it does not exist.
func (s *Store) GetRoute(ctx context.Context, routeID int) (*models.Route, error) {
	routes, err := queryRecords(ctx, s.db, "route", routeColumns, scanRoute, `
		SELECT
			r.route_id,
			r.airline_code,
			r.source_airport,
			r.dest_airport AS destination_airport,
			r.distance_km,
			r.base_fuel_kg,
			a.name AS airline_name
		FROM routes r
		LEFT JOIN airlines a ON r.airline_code = a.iata_code
		WHERE r.route_id = ?
	`, routeID)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, nil
	}
	return &routes[0], nil
}

// ListRouteRefs returns up to limit routes in table order. Synthesized
// fallback data is always attached to these real routes.
func (s *Store) ListRouteRefs(ctx context.Context, limit int) ([]models.RouteRef, error) {
	return listRouteRefs(ctx, s.db, limit)
}

func listRouteRefs(ctx context.Context, q queryer, limit int) ([]models.RouteRef, error) {
	return queryRecords(ctx, q, "route reference",
		[]string{"route_id", "source_airport", "dest_airport", "airline_code"},
		func(rows *sql.Rows) (models.RouteRef, error) {
			var r models.RouteRef
			err := rows.Scan(&r.ID, &r.SourceAirport, &r.DestAirport, &r.AirlineCode)
			return r, err
		}, `
		SELECT route_id, source_airport, dest_airport, airline_code
		FROM routes
		LIMIT ?
	`, limit)
}

// ListFlights returns the 50 most recent flight performance records.
func (s *Store) ListFlights(ctx context.Context) ([]models.FlightRecord, error) {
	return queryRecords(ctx, s.db, "flight",
		[]string{
			"performance_id", "route_id", "flight_date", "actual_fuel_kg",
			"planned_fuel_kg", "efficiency_score", "source_airport", "destination_airport",
		},
		func(rows *sql.Rows) (models.FlightRecord, error) {
			var f models.FlightRecord
			var actual, planned, score sql.NullFloat64
			err := rows.Scan(&f.PerformanceID, &f.RouteID, &f.FlightDate, &actual,
				&planned, &score, &f.SourceAirport, &f.DestinationAirport)
			f.ActualFuelKg, f.PlannedFuelKg, f.EfficiencyScore = nullFloat(actual), nullFloat(planned), nullFloat(score)
			return f, err
		}, `
		SELECT
			fp.performance_id,
			fp.route_id,
			fp.flight_date,
			fp.actual_fuel_kg,
			fp.planned_fuel_kg,
			fp.efficiency_score,
			r.source_airport,
			r.dest_airport AS destination_airport
		FROM flight_performance fp
		JOIN routes r ON fp.route_id = r.route_id
		ORDER BY fp.flight_date DESC
		LIMIT 50
	`)
}

// RecentPerformance returns up to limit of the most recent flights on a route.
func (s *Store) RecentPerformance(ctx context.Context, routeID, limit int) ([]models.FlightPerformance, error) {
	return queryRecords(ctx, s.db, "flight performance",
		[]string{"efficiency_score", "actual_fuel_kg", "planned_fuel_kg", "flight_date", "passengers_count"},
		func(rows *sql.Rows) (models.FlightPerformance, error) {
			p := models.FlightPerformance{RouteID: routeID}
			var score, actual, planned sql.NullFloat64
			var passengers sql.NullInt64
			err := rows.Scan(&score, &actual, &planned, &p.FlightDate, &passengers)
			p.EfficiencyScore, p.ActualFuelKg, p.PlannedFuelKg = nullFloat(score), nullFloat(actual), nullFloat(planned)
			p.PassengersCount = nullInt(passengers)
			return p, err
		}, `
		SELECT
			efficiency_score,
			actual_fuel_kg,
			planned_fuel_kg,
			flight_date,
			passengers_count
		FROM flight_performance
		WHERE route_id = ?
		ORDER BY flight_date DESC
		LIMIT ?
	`, routeID, limit)
}

// ListAircraftConfigs returns every aircraft configuration ordered by model.
func (s *Store) ListAircraftConfigs(ctx context.Context) ([]models.AircraftConfig, error) {
	return queryRecords(ctx, s.db, "aircraft config",
		[]string{"config_id", "aircraft_model", "seat_capacity", "fuel_efficiency", "max_range_km"},
		func(rows *sql.Rows) (models.AircraftConfig, error) {
			var c models.AircraftConfig
			var seats, maxRange sql.NullInt64
			var eff sql.NullFloat64
			err := rows.Scan(&c.ID, &c.AircraftModel, &seats, &eff, &maxRange)
			c.SeatCapacity, c.FuelEfficiency, c.MaxRangeKm = nullInt(seats), nullFloat(eff), nullInt(maxRange)
			return c, err
		}, `
		SELECT
			config_id,
			aircraft_model,
			seat_capacity,
			fuel_efficiency,
			max_range_km
		FROM aircraft_config
		ORDER BY aircraft_model
	`)
}

// TableColumns lists the columns of every table in the configured schema.
func (s *Store) TableColumns(ctx context.Context) ([]models.TableColumn, error) {
	return queryRecords(ctx, s.db, "table column",
		[]string{"TABLE_NAME", "COLUMN_NAME", "DATA_TYPE", "IS_NULLABLE"},
		func(rows *sql.Rows) (models.TableColumn, error) {
			var c models.TableColumn
			err := rows.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable)
			return c, err
		}, `
		SELECT TABLE_NAME, COLUMN_NAME, DATA_TYPE, IS_NULLABLE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ?
		ORDER BY TABLE_NAME, ORDINAL_POSITION
	`, s.dbName)
}

// TableStats counts the rows of every SkySQL table in one round trip.
func (s *Store) TableStats(ctx context.Context) (*models.TableStats, error) {
	var st models.TableStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM airlines) AS airline_count,
			(SELECT COUNT(*) FROM airports) AS airport_count,
			(SELECT COUNT(*) FROM routes) AS route_count,
			(SELECT COUNT(*) FROM flight_performance) AS flight_count,
			(SELECT COUNT(*) FROM operational_metrics) AS metrics_count
	`).Scan(&st.AirlineCount, &st.AirportCount, &st.RouteCount, &st.FlightCount, &st.MetricsCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &st, nil
		}
		return nil, fmt.Errorf("failed to query table statistics: %w", err)
	}
	return &st, nil
}
