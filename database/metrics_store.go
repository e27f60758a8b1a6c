// database/metrics_store.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gewnthar/skysql/models"
)

// ErrNoRoutes is returned when metrics cannot be synthesized because the
// routes table is empty.
var ErrNoRoutes = errors.New("no routes found for generating operational metrics")

// MetricsGenerator builds the rows to insert for the given routes.
type MetricsGenerator func(routes []models.RouteRef) []models.OperationalMetric

// CountRecentMetrics counts operational metric rows of the last days days.
func (s *Store) CountRecentMetrics(ctx context.Context, days int) (int, error) {
	return countRecentMetrics(ctx, s.db, days)
}

func countRecentMetrics(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, days int) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*) AS count FROM operational_metrics
		WHERE metric_date >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
	`, days).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent operational metrics: %w", err)
	}
	return count, nil
}

// EnsureRecentMetrics checks for operational metrics within the last days
// days and, when there are none, inserts the rows generate builds for up to
// routeLimit routes. The check and the insert share one transaction. It
// returns the number of rows inserted, zero when data was already present.
//
// Two concurrent callers can both see an empty window and both insert; the
// schema has no uniqueness on (metric_date, route_id) and the duplicates are
// harmless.
func (s *Store) EnsureRecentMetrics(ctx context.Context, days, routeLimit int, generate MetricsGenerator) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for operational metrics: %w", err)
	}
	defer tx.Rollback()

	count, err := countRecentMetrics(ctx, tx, days)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Debug("operational metrics data verified", "recent_rows", count)
		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("failed to commit transaction for operational metrics: %w", err)
		}
		return 0, nil
	}

	routes, err := listRouteRefs(ctx, tx, routeLimit)
	if err != nil {
		return 0, err
	}
	if len(routes) == 0 {
		return 0, ErrNoRoutes
	}

	metrics := generate(routes)
	if err := insertMetrics(ctx, tx, metrics); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction for operational metrics: %w", err)
	}
	s.log.Info("generated operational metrics records", "rows", len(metrics), "routes", len(routes))
	return len(metrics), nil
}

// insertMetrics writes all rows with a single multi-row INSERT.
func insertMetrics(ctx context.Context, tx *sql.Tx, metrics []models.OperationalMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	const cols = 9
	var sb strings.Builder
	sb.WriteString(`INSERT INTO operational_metrics
		(metric_date, total_flights, avg_efficiency, total_fuel_used_kg, total_fuel_saved_kg,
		 avg_passenger_load, on_time_performance, route_id, airline_code)
		VALUES `)
	args := make([]any, 0, len(metrics)*cols)
	for i, m := range metrics {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			m.MetricDate, m.TotalFlights, m.AvgEfficiency, m.TotalFuelUsedKg, m.TotalFuelSavedKg,
			m.AvgPassengerLoad, m.OnTimePerformance, m.RouteID, m.AirlineCode,
		)
	}

	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to insert %d operational metrics: %w", len(metrics), err)
	}
	return nil
}
