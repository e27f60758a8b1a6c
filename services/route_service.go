// services/route_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gewnthar/skysql/models"
)

const (
	recentFlightsLimit = 10

	baseEfficiency       = 0.75
	distanceEfficiency   = 0.2 // added per 20000 km
	efficientCarrierLift = 0.05
	maxFallbackEff       = 0.95
)

// ErrInvalidRouteData is returned by AnalyzeRoute for a stored route whose
// distance is not positive.
var ErrInvalidRouteData = errors.New("invalid route data")

// Carriers credited with a better-than-average fleet when no history exists.
var efficientCarriers = map[string]bool{"QF": true, "SQ": true, "EK": true}

// AnalyzeRoute reports the route's current efficiency over its 10 most
// recent flights, estimating it from distance and carrier when the route
// has no history. Unknown ids yield ErrRouteNotFound.
func (s *Service) AnalyzeRoute(ctx context.Context, routeID int) (*models.RouteAnalysis, error) {
	route, err := s.store.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("%w: %d", ErrRouteNotFound, routeID)
	}
	if route.DistanceKm <= 0 {
		return nil, fmt.Errorf("%w: route %d has distance_km %d", ErrInvalidRouteData, routeID, route.DistanceKm)
	}

	perf, err := s.store.RecentPerformance(ctx, routeID, recentFlightsLimit)
	if err != nil {
		return nil, err
	}

	var avg float64
	if len(perf) > 0 {
		var sum float64
		for _, p := range perf {
			sum += p.EfficiencyScore
		}
		avg = sum / float64(len(perf))
	} else {
		avg = estimateEfficiency(route.DistanceKm, route.AirlineCode)
	}

	airline := route.AirlineCode
	if route.AirlineName != nil && *route.AirlineName != "" {
		airline = *route.AirlineName
	}

	return &models.RouteAnalysis{
		RouteID:              route.ID,
		RouteName:            fmt.Sprintf("%s to %s", route.SourceAirport, route.DestAirport),
		Airline:              airline,
		DistanceKm:           route.DistanceKm,
		BaseFuelKg:           route.BaseFuelKg,
		CurrentEfficiency:    round(avg*100, 1),
		FuelPerKm:            round(float64(route.BaseFuelKg)/float64(route.DistanceKm), 2),
		TotalFlightsAnalyzed: len(perf),
		AnalysisTimestamp:    s.now(),
		Recommendations:      Recommendations(avg, route.DistanceKm),
	}, nil
}

func estimateEfficiency(distanceKm int, airlineCode string) float64 {
	eff := baseEfficiency + float64(distanceKm)/20000*distanceEfficiency
	if efficientCarriers[airlineCode] {
		eff += efficientCarrierLift
	}
	return min(eff, maxFallbackEff)
}
