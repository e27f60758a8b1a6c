// seed/seeder.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gewnthar/skysql/logger"
	"github.com/gewnthar/skysql/models"
	"github.com/gewnthar/skysql/utils"
)

// Store is the write access the seeder needs. *database.Store implements it.
type Store interface {
	SeedAirlines(ctx context.Context, airlines []models.Airline) (int64, error)
	SeedAirports(ctx context.Context, airports []models.Airport) (int64, error)
	SeedRoutes(ctx context.Context, routes []models.Route) (int64, error)
	SeedAircraftConfigs(ctx context.Context, configs []models.AircraftConfig) (int64, error)
	ListSeedRoutes(ctx context.Context) ([]models.Route, error)
	SeedFlightPerformance(ctx context.Context, flights []models.FlightPerformance) (int64, error)
}

// History generation parameters.
const (
	historyDays   = 90
	minFlights    = 2
	maxFlights    = 6
	minFuelFactor = 0.82
	maxFuelFactor = 1.08
	minEfficiency = 0.75
	maxEfficiency = 0.98
	minPassengers = 180
	maxPassengers = 350
)

// Result counts the rows each table gained.
type Result struct {
	Airlines int64
	Airports int64
	Routes   int64
	Aircraft int64
	Flights  int64
}

type Seeder struct {
	store Store
	rng   *rand.Rand
	now   func() time.Time
	log   *slog.Logger
}

func NewSeeder(store Store, rng *rand.Rand, now func() time.Time) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Seeder{store: store, rng: rng, now: now, log: logger.WithComponent("seed")}
}

// Run validates ds and writes it, then generates flight history for every
// stored route when flight_performance is empty.
func (s *Seeder) Run(ctx context.Context, ds *Dataset) (*Result, error) {
	if err := Validate(ds); err != nil {
		return nil, err
	}

	var (
		res Result
		err error
	)
	if res.Airlines, err = s.store.SeedAirlines(ctx, ds.Airlines); err != nil {
		return nil, err
	}
	if res.Airports, err = s.store.SeedAirports(ctx, ds.Airports); err != nil {
		return nil, err
	}
	if res.Routes, err = s.store.SeedRoutes(ctx, ds.Routes); err != nil {
		return nil, err
	}
	if res.Aircraft, err = s.store.SeedAircraftConfigs(ctx, ds.Aircraft); err != nil {
		return nil, err
	}

	routes, err := s.store.ListSeedRoutes(ctx)
	if err != nil {
		return nil, err
	}
	if res.Flights, err = s.store.SeedFlightPerformance(ctx, s.GenerateFlights(routes)); err != nil {
		return nil, err
	}

	s.log.Info("seed complete",
		"airlines", res.Airlines,
		"airports", res.Airports,
		"routes", res.Routes,
		"aircraft", res.Aircraft,
		"flights", res.Flights,
	)
	return &res, nil
}

// GenerateFlights produces 2 to 6 historical flights per route spread over
// the last 90 days. Savings are clamped at zero when a flight burned more
// than planned.
func (s *Seeder) GenerateFlights(routes []models.Route) []models.FlightPerformance {
	start := s.now().AddDate(0, 0, -historyDays)
	var out []models.FlightPerformance
	for _, r := range routes {
		n := minFlights + s.rng.IntN(maxFlights-minFlights+1)
		base := float64(r.BaseFuelKg)
		for range n {
			actual := base * uniform(s.rng, minFuelFactor, maxFuelFactor)
			out = append(out, models.FlightPerformance{
				RouteID:         r.ID,
				FlightDate:      models.NewDate(start.AddDate(0, 0, s.rng.IntN(historyDays))),
				ActualFuelKg:    round2(actual),
				PlannedFuelKg:   base,
				PassengersCount: minPassengers + s.rng.IntN(maxPassengers-minPassengers+1),
				EfficiencyScore: math.Round(uniform(s.rng, minEfficiency, maxEfficiency)*1000) / 1000,
				FuelSavingsKg:   round2(max(base-actual, 0)),
			})
		}
	}
	return out
}

// Validate normalizes codes in place and rejects rows the schema would
// accept but the API cannot serve meaningfully.
func Validate(ds *Dataset) error {
	var errs []error
	for i := range ds.Airlines {
		a := &ds.Airlines[i]
		a.IATACode = utils.NormalizeAirlineCode(a.IATACode)
		if !utils.IsIATACode(a.IATACode) {
			errs = append(errs, fmt.Errorf("airline %d: invalid IATA code %q", a.ID, a.IATACode))
		}
	}
	for i := range ds.Airports {
		a := &ds.Airports[i]
		a.IATACode = utils.NormalizeAirportCode(a.IATACode)
		if !utils.IsIATACode(a.IATACode) {
			errs = append(errs, fmt.Errorf("airport %d: invalid IATA code %q", a.ID, a.IATACode))
		}
	}
	for i := range ds.Routes {
		r := &ds.Routes[i]
		r.AirlineCode = utils.NormalizeAirlineCode(r.AirlineCode)
		r.SourceAirport = utils.NormalizeAirportCode(r.SourceAirport)
		r.DestAirport = utils.NormalizeAirportCode(r.DestAirport)
		switch {
		case !utils.IsIATACode(r.AirlineCode), !utils.IsIATACode(r.SourceAirport), !utils.IsIATACode(r.DestAirport):
			errs = append(errs, fmt.Errorf("route %d (%s %s-%s): invalid code", i+1, r.AirlineCode, r.SourceAirport, r.DestAirport))
		case r.DistanceKm <= 0:
			errs = append(errs, fmt.Errorf("route %d (%s %s-%s): distance_km must be positive", i+1, r.AirlineCode, r.SourceAirport, r.DestAirport))
		case r.BaseFuelKg <= 0:
			errs = append(errs, fmt.Errorf("route %d (%s %s-%s): base_fuel_kg must be positive", i+1, r.AirlineCode, r.SourceAirport, r.DestAirport))
		}
	}
	for _, c := range ds.Aircraft {
		if c.AircraftModel == "" || c.SeatCapacity <= 0 || c.MaxRangeKm <= 0 {
			errs = append(errs, fmt.Errorf("aircraft config %q: model, seat_capacity and max_range_km are required", c.AircraftModel))
		}
	}
	return errors.Join(errs...)
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
