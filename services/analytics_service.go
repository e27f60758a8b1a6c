// services/analytics_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gewnthar/skysql/models"
)

// Dashboard fallbacks, applied independently per NULL aggregate.
const (
	fallbackRouteCount  = 18
	fallbackFlightCount = 245
	fallbackTotalFuelKg = 2850000
	fallbackSavingsKg   = 125000

	co2PerKgFuel      = 3.16 // kg CO2 emitted per kg of jet fuel
	fuelCostUSDPerKg  = 0.85
	efficiencyUplift  = "4-8%"
	savingsWindowDays = 30
)

const (
	analyticsWindowDays   = 90
	analyticsPeriod       = "last_90_days"
	analyticsType         = "Route Efficiency Analytics"
	analyticsFallbackSize = 5
	reportFallbackSize    = 8
)

const ReportTypeEfficiency = "efficiency"

// SupportedReportTypes lists the values GenerateReport accepts.
var SupportedReportTypes = []string{ReportTypeEfficiency}

// DashboardStats summarizes the platform and the estimated impact of the
// fuel saved over the last 30 days.
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		routes, flights   int64
		totalFuel, saving float64
		fellBack          bool
	)

	g, gctx := errgroup.WithContext(ctx)
	fallbacks := make([]bool, 4)

	g.Go(func() error {
		n, err := s.store.CountRoutes(gctx)
		if err != nil {
			return err
		}
		routes, fallbacks[0] = n.Int64, !n.Valid
		if !n.Valid {
			routes = fallbackRouteCount
		}
		return nil
	})
	g.Go(func() error {
		n, err := s.store.CountFlights(gctx)
		if err != nil {
			return err
		}
		flights, fallbacks[1] = n.Int64, !n.Valid
		if !n.Valid {
			flights = fallbackFlightCount
		}
		return nil
	})
	g.Go(func() error {
		v, err := s.store.SumBaseFuel(gctx)
		if err != nil {
			return err
		}
		totalFuel, fallbacks[2] = v.Float64, !v.Valid
		if !v.Valid {
			totalFuel = fallbackTotalFuelKg
		}
		return nil
	})
	g.Go(func() error {
		v, err := s.store.SumFuelSaved(gctx, savingsWindowDays)
		if err != nil {
			return err
		}
		saving, fallbacks[3] = v.Float64, !v.Valid
		if !v.Valid {
			saving = fallbackSavingsKg
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard summary: %w", err)
	}

	for _, f := range fallbacks {
		fellBack = fellBack || f
	}

	stats := &models.DashboardStats{
		PlatformOverview: models.PlatformOverview{
			TotalRoutesMonitored:      routes,
			HistoricalFlightsAnalyzed: flights,
			TotalFuelAnalyzedKg:       totalFuel,
		},
		EfficiencyImpact: models.EfficiencyImpact{
			EstimatedFuelSavingsKg:       math.Round(saving),
			PotentialCO2ReductionTons:    round(saving*co2PerKgFuel/1000, 1),
			EstimatedCostSavingsUSD:      math.Round(saving * fuelCostUSDPerKg),
			AverageEfficiencyImprovement: efficiencyUplift,
		},
		LastUpdated: s.now(),
	}
	if fellBack {
		stats.Status = StatusFallback
	}
	return stats, nil
}

// EfficiencyAnalytics ranks routes by average efficiency over the last 90
// days. With no flights in the window, up to 5 real routes are returned
// with synthesized figures.
func (s *Service) EfficiencyAnalytics(ctx context.Context) (*models.EfficiencyAnalytics, error) {
	rows, err := s.store.RouteEfficiency(ctx, analyticsWindowDays)
	if err != nil {
		return nil, err
	}

	status := ""
	if len(rows) == 0 {
		s.log.Info("no analytics data found, providing fallback data")
		refs, err := s.store.ListRouteRefs(ctx, analyticsFallbackSize)
		if err != nil {
			return nil, err
		}
		rows = s.synth.RouteEfficiency(refs)
		status = StatusFallback
	} else {
		for i := range rows {
			rows[i].AvgEfficiency = round(rows[i].AvgEfficiency, 3)
			rows[i].FuelPerKm = round(rows[i].FuelPerKm, 2)
			rows[i].AvgPassengers = round(rows[i].AvgPassengers, 1)
		}
	}
	if rows == nil {
		rows = []models.RouteEfficiency{}
	}

	return &models.EfficiencyAnalytics{
		AnalysisType:        analyticsType,
		Period:              analyticsPeriod,
		TotalRoutesAnalyzed: len(rows),
		Timestamp:           s.now(),
		Data:                rows,
		Status:              status,
	}, nil
}

// GenerateReport builds the named report. An empty reportType means
// "efficiency"; anything else unsupported yields ErrUnknownReportType.
func (s *Service) GenerateReport(ctx context.Context, reportType string) (*models.Report, error) {
	reportType = strings.TrimSpace(reportType)
	if reportType == "" {
		reportType = ReportTypeEfficiency
	}
	if reportType != ReportTypeEfficiency {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReportType, reportType)
	}

	rows, err := s.store.EfficiencyReport(ctx)
	if err != nil {
		return nil, err
	}

	status := ""
	if len(rows) == 0 {
		refs, err := s.store.ListRouteRefs(ctx, reportFallbackSize)
		if err != nil {
			return nil, err
		}
		rows = s.synth.ReportRows(refs)
		status = StatusFallback
	}
	if rows == nil {
		rows = []models.ReportRow{}
	}

	return &models.Report{
		ReportType:  reportType,
		GeneratedAt: s.now(),
		Data:        rows,
		Summary:     summarizeReport(rows),
		Status:      status,
	}, nil
}

func summarizeReport(rows []models.ReportRow) models.ReportSummary {
	summary := models.ReportSummary{TotalRoutes: len(rows)}
	if len(rows) == 0 {
		return summary
	}
	var effSum float64
	for _, r := range rows {
		effSum += r.AvgEfficiency
		summary.TotalFlights += r.FlightsAnalyzed
	}
	summary.AvgEfficiency = round(effSum/float64(len(rows)), 3)
	return summary
}
