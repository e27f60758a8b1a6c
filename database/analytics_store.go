// database/analytics_store.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gewnthar/skysql/models"
)

// CountRoutes returns COUNT(*) over routes.
func (s *Store) CountRoutes(ctx context.Context) (sql.NullInt64, error) {
	var n sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) AS count FROM routes").Scan(&n); err != nil {
		return n, fmt.Errorf("failed to count routes: %w", err)
	}
	return n, nil
}

// CountFlights returns COUNT(*) over flight_performance.
func (s *Store) CountFlights(ctx context.Context) (sql.NullInt64, error) {
	var n sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) AS count FROM flight_performance").Scan(&n); err != nil {
		return n, fmt.Errorf("failed to count flights: %w", err)
	}
	return n, nil
}

// SumBaseFuel returns SUM(base_fuel_kg) over routes; NULL when there are none.
func (s *Store) SumBaseFuel(ctx context.Context) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, "SELECT SUM(base_fuel_kg) AS total FROM routes").Scan(&total); err != nil {
		return total, fmt.Errorf("failed to sum route base fuel: %w", err)
	}
	return total, nil
}

// SumFuelSaved returns the fuel saved across operational metrics of the
// last days days, zero when there are none.
func (s *Store) SumFuelSaved(ctx context.Context, days int) (sql.NullFloat64, error) {
	var savings sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_fuel_saved_kg), 0) AS savings
		FROM operational_metrics
		WHERE metric_date >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
	`, days).Scan(&savings)
	if err != nil {
		return savings, fmt.Errorf("failed to sum fuel savings: %w", err)
	}
	return savings, nil
}

// RouteEfficiency aggregates flight performance per route over the last
// days days, best average efficiency first.
func (s *Store) RouteEfficiency(ctx context.Context, days int) ([]models.RouteEfficiency, error) {
	return queryRecords(ctx, s.db, "route efficiency",
		[]string{
			"route_id", "route_name", "airline_code", "total_flights", "avg_efficiency",
			"fuel_per_km", "avg_passengers", "total_fuel_saved",
		},
		func(rows *sql.Rows) (models.RouteEfficiency, error) {
			var r models.RouteEfficiency
			var avgEff, fuelPerKm, avgPax, saved sql.NullFloat64
			err := rows.Scan(&r.RouteID, &r.RouteName, &r.AirlineCode, &r.TotalFlights,
				&avgEff, &fuelPerKm, &avgPax, &saved)
			r.AvgEfficiency, r.FuelPerKm = nullFloat(avgEff), nullFloat(fuelPerKm)
			r.AvgPassengers, r.TotalFuelSaved = nullFloat(avgPax), nullFloat(saved)
			return r, err
		}, `
		SELECT
			r.route_id,
			CONCAT(r.source_airport, ' - ', r.dest_airport) AS route_name,
			r.airline_code,
			COUNT(fp.performance_id) AS total_flights,
			AVG(fp.efficiency_score) AS avg_efficiency,
			AVG(fp.actual_fuel_kg / r.distance_km) AS fuel_per_km,
			AVG(fp.passengers_count) AS avg_passengers,
			COALESCE(SUM(fp.fuel_savings_kg), 0) AS total_fuel_saved
		FROM flight_performance fp
		JOIN routes r ON fp.route_id = r.route_id
		WHERE fp.flight_date >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		GROUP BY r.route_id, r.source_airport, r.dest_airport, r.airline_code
		HAVING total_flights >= 1
		ORDER BY avg_efficiency DESC
	`, days)
}

// EfficiencyReport aggregates every route that has at least one analyzed
// flight, best average efficiency first.
func (s *Store) EfficiencyReport(ctx context.Context) ([]models.ReportRow, error) {
	return queryRecords(ctx, s.db, "report row",
		[]string{"route_id", "route", "avg_efficiency", "flights_analyzed", "avg_fuel_used", "avg_passengers"},
		func(rows *sql.Rows) (models.ReportRow, error) {
			var r models.ReportRow
			var avgEff, avgFuel, avgPax sql.NullFloat64
			err := rows.Scan(&r.RouteID, &r.Route, &avgEff, &r.FlightsAnalyzed, &avgFuel, &avgPax)
			r.AvgEfficiency, r.AvgFuelUsed, r.AvgPassengers = nullFloat(avgEff), nullFloat(avgFuel), nullFloat(avgPax)
			return r, err
		}, `
		SELECT
			r.route_id,
			CONCAT(r.source_airport, ' to ', r.dest_airport) AS route,
			AVG(fp.efficiency_score) AS avg_efficiency,
			COUNT(fp.performance_id) AS flights_analyzed,
			AVG(fp.actual_fuel_kg) AS avg_fuel_used,
			AVG(fp.passengers_count) AS avg_passengers
		FROM routes r
		LEFT JOIN flight_performance fp ON r.route_id = fp.route_id
		GROUP BY r.route_id, r.source_airport, r.dest_airport
		HAVING flights_analyzed > 0
		ORDER BY avg_efficiency DESC
	`)
}

// DailyMetrics returns up to limit operational metric rows from the last
// days days, newest first.
func (s *Store) DailyMetrics(ctx context.Context, days, limit int) ([]models.DailyMetric, error) {
	return queryRecords(ctx, s.db, "daily metric",
		[]string{
			"metric_date", "total_flights", "avg_efficiency", "total_fuel_used_kg",
			"total_fuel_saved_kg", "avg_passenger_load", "on_time_performance",
		},
		func(rows *sql.Rows) (models.DailyMetric, error) {
			var m models.DailyMetric
			var flights sql.NullInt64
			var eff, used, saved, load, onTime sql.NullFloat64
			err := rows.Scan(&m.MetricDate, &flights, &eff, &used, &saved, &load, &onTime)
			m.TotalFlights = nullInt(flights)
			m.AvgEfficiency, m.TotalFuelUsedKg, m.TotalFuelSavedKg = nullFloat(eff), nullFloat(used), nullFloat(saved)
			m.AvgPassengerLoad, m.OnTimePerformance = nullFloat(load), nullFloat(onTime)
			return m, err
		}, `
		SELECT
			metric_date,
			total_flights,
			avg_efficiency,
			total_fuel_used_kg,
			total_fuel_saved_kg,
			avg_passenger_load,
			on_time_performance
		FROM operational_metrics
		WHERE metric_date >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		ORDER BY metric_date DESC
		LIMIT ?
	`, days, limit)
}

// MetricsSummary is the raw 30-day rollup; any field may be NULL.
type MetricsSummary struct {
	ActiveRoutes      sql.NullInt64
	ActiveAirlines    sql.NullInt64
	OverallEfficiency sql.NullFloat64
	TotalFuelSavings  sql.NullFloat64
	TotalFlights      sql.NullInt64
}

// SummarizeMetrics rolls up operational metrics over the last days days.
func (s *Store) SummarizeMetrics(ctx context.Context, days int) (*MetricsSummary, error) {
	var m MetricsSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(DISTINCT route_id) AS active_routes,
			COUNT(DISTINCT airline_code) AS active_airlines,
			AVG(avg_efficiency) AS overall_efficiency,
			COALESCE(SUM(total_fuel_saved_kg), 0) AS total_fuel_savings,
			COALESCE(SUM(total_flights), 0) AS total_flights
		FROM operational_metrics
		WHERE metric_date >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
	`, days).Scan(&m.ActiveRoutes, &m.ActiveAirlines, &m.OverallEfficiency, &m.TotalFuelSavings, &m.TotalFlights)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize operational metrics: %w", err)
	}
	return &m, nil
}
