// services/metrics_service.go
package services

import (
	"context"
	"errors"

	"github.com/gewnthar/skysql/database"
	"github.com/gewnthar/skysql/models"
)

const (
	metricsWindowDays  = 7
	metricsRouteLimit  = 10
	summaryWindowDays  = 30
	dailyMetricsPeriod = "last_7_days"
)

// Summary values served when the 30-day rollup has nothing to report.
var fallbackSummary = models.MetricsSummary{
	ActiveRoutes:      12,
	ActiveAirlines:    8,
	OverallEfficiency: 0.874,
	TotalFuelSavings:  125000,
	TotalFlights:      156,
}

// EnsureMetrics guarantees the last 7 days of operational metrics exist,
// synthesizing them from up to 10 real routes when the window is empty.
// It reports true when data is present afterwards. Failures are logged and
// reported as false; the error is returned for callers that want detail.
func (s *Service) EnsureMetrics(ctx context.Context) (bool, error) {
	inserted, err := s.store.EnsureRecentMetrics(ctx, metricsWindowDays, metricsRouteLimit,
		func(routes []models.RouteRef) []models.OperationalMetric {
			return s.synth.OperationalMetrics(s.now(), metricsWindowDays, routes)
		})
	if err != nil {
		if errors.Is(err, database.ErrNoRoutes) {
			s.log.Warn("no routes found for generating operational metrics")
		} else {
			s.log.Error("error ensuring operational metrics", "error", err)
		}
		return false, err
	}
	if inserted > 0 {
		s.log.Info("generated operational metrics sample data", "rows", inserted)
	}
	return true, nil
}

// OperationalMetrics returns the last 7 days of metrics and a 30-day summary.
func (s *Service) OperationalMetrics(ctx context.Context) (*models.OperationalMetricsReport, error) {
	if ok, _ := s.EnsureMetrics(ctx); !ok {
		s.log.Warn("operational metrics not ensured, fallback data may be served")
	}

	daily, err := s.store.DailyMetrics(ctx, metricsWindowDays, metricsWindowDays)
	if err != nil {
		return nil, err
	}
	raw, err := s.store.SummarizeMetrics(ctx, summaryWindowDays)
	if err != nil {
		return nil, err
	}

	status := StatusOperational
	if len(daily) == 0 {
		s.log.Info("creating fallback operational metrics")
		daily = s.synth.DailyMetrics(s.now(), metricsWindowDays)
		status = StatusFallback
	}

	summary, filled := fillSummary(raw)
	if filled {
		status = StatusFallback
	}

	return &models.OperationalMetricsReport{
		Timestamp:    s.now(),
		Summary:      summary,
		DailyMetrics: daily,
		Period:       dailyMetricsPeriod,
		Status:       status,
	}, nil
}

// fillSummary converts the raw rollup, replacing NULL or zero fields with
// their fallback constants. It reports whether any field was replaced.
func fillSummary(raw *database.MetricsSummary) (models.MetricsSummary, bool) {
	out := fallbackSummary
	if raw == nil {
		return out, true
	}

	filled := false
	if raw.ActiveRoutes.Valid && raw.ActiveRoutes.Int64 > 0 {
		out.ActiveRoutes = int(raw.ActiveRoutes.Int64)
	} else {
		filled = true
	}
	if raw.ActiveAirlines.Valid && raw.ActiveAirlines.Int64 > 0 {
		out.ActiveAirlines = int(raw.ActiveAirlines.Int64)
	} else {
		filled = true
	}
	if raw.OverallEfficiency.Valid && raw.OverallEfficiency.Float64 > 0 {
		out.OverallEfficiency = round(raw.OverallEfficiency.Float64, 3)
	} else {
		filled = true
	}
	if raw.TotalFuelSavings.Valid && raw.TotalFuelSavings.Float64 > 0 {
		out.TotalFuelSavings = raw.TotalFuelSavings.Float64
	} else {
		filled = true
	}
	if raw.TotalFlights.Valid && raw.TotalFlights.Int64 > 0 {
		out.TotalFlights = int(raw.TotalFlights.Int64)
	} else {
		filled = true
	}
	return out, filled
}
