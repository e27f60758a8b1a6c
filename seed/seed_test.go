package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/skysql/models"
)

type recordingStore struct {
	airlines []models.Airline
	airports []models.Airport
	routes   []models.Route
	aircraft []models.AircraftConfig
	flights  []models.FlightPerformance
	failOn   string
}

func (s *recordingStore) SeedAirlines(_ context.Context, a []models.Airline) (int64, error) {
	s.airlines = a
	return int64(len(a)), nil
}

func (s *recordingStore) SeedAirports(_ context.Context, a []models.Airport) (int64, error) {
	s.airports = a
	return int64(len(a)), nil
}

func (s *recordingStore) SeedRoutes(_ context.Context, r []models.Route) (int64, error) {
	if s.failOn == "routes" {
		return 0, errors.New("duplicate entry")
	}
	for i := range r {
		r[i].ID = i + 1
	}
	s.routes = r
	return int64(len(r)), nil
}

func (s *recordingStore) SeedAircraftConfigs(_ context.Context, c []models.AircraftConfig) (int64, error) {
	s.aircraft = c
	return int64(len(c)), nil
}

func (s *recordingStore) ListSeedRoutes(context.Context) ([]models.Route, error) {
	return s.routes, nil
}

func (s *recordingStore) SeedFlightPerformance(_ context.Context, f []models.FlightPerformance) (int64, error) {
	s.flights = f
	return int64(len(f)), nil
}

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset()
	require.NoError(t, err)

	assert.Len(t, ds.Airlines, 12)
	assert.Len(t, ds.Airports, 10)
	assert.Len(t, ds.Routes, 19)
	assert.Len(t, ds.Aircraft, 5)

	assert.Equal(t, models.Airline{ID: 1, Name: "Qantas Airways", IATACode: "QF", Country: "Australia"}, ds.Airlines[0])
	assert.Equal(t, models.Route{AirlineCode: "QF", SourceAirport: "SYD", DestAirport: "LAX", DistanceKm: 12051, BaseFuelKg: 144000}, ds.Routes[0])
	assert.Equal(t, "Airbus A380", ds.Aircraft[3].AircraftModel)
	assert.Equal(t, 853, ds.Aircraft[3].SeatCapacity)
	assert.NoError(t, Validate(ds))
}

func TestParseAirports_FromReader(t *testing.T) {
	airports, err := ParseAirports(strings.NewReader(
		"airport_id,name,city,country,iata_code\n" +
			"7,John F Kennedy International Airport,New York,United States,JFK\n" +
			"4,\"Heathrow Airport, London\",London,United Kingdom,LHR\n"))
	require.NoError(t, err)

	require.Len(t, airports, 2)
	assert.Equal(t, models.Airport{ID: 7, Name: "John F Kennedy International Airport", City: "New York", Country: "United States", IATACode: "JFK"}, airports[0])
	assert.Equal(t, "Heathrow Airport, London", airports[1].Name)
}

func TestParseRoutes_BadNumber(t *testing.T) {
	_, err := ParseRoutes(strings.NewReader("airline_code,source_airport,dest_airport,distance_km,base_fuel_kg\nQF,SYD,LAX,far,144000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode routes CSV data")
}

func TestParseAirlines_Empty(t *testing.T) {
	airlines, err := ParseAirlines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, airlines)
}

func TestValidate(t *testing.T) {
	ds := &Dataset{
		Airports: []models.Airport{{ID: 7, IATACode: " kjfk"}},
		Routes: []models.Route{
			{AirlineCode: "ua", SourceAirport: "KORD", DestAirport: "lax", DistanceKm: 2806, BaseFuelKg: 34500},
			{AirlineCode: "QF", SourceAirport: "SYD", DestAirport: "LAX", DistanceKm: 0, BaseFuelKg: 144000},
			{AirlineCode: "QF", SourceAirport: "SYD", DestAirport: "LAX", DistanceKm: 12051, BaseFuelKg: -1},
		},
	}

	err := Validate(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance_km must be positive")
	assert.Contains(t, err.Error(), "base_fuel_kg must be positive")
	assert.Equal(t, "JFK", ds.Airports[0].IATACode)
	assert.Equal(t, models.Route{AirlineCode: "UA", SourceAirport: "ORD", DestAirport: "LAX", DistanceKm: 2806, BaseFuelKg: 34500}, ds.Routes[0])
}

func TestGenerateFlights(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	s := NewSeeder(&recordingStore{}, rand.New(rand.NewPCG(42, 42)), func() time.Time { return now })
	routes := []models.Route{{ID: 1, BaseFuelKg: 144000}, {ID: 2, BaseFuelKg: 28500}}

	flights := s.GenerateFlights(routes)

	perRoute := map[int]int{}
	for _, f := range flights {
		perRoute[f.RouteID]++
		assert.GreaterOrEqual(t, f.ActualFuelKg, f.PlannedFuelKg*0.82-0.01)
		assert.LessOrEqual(t, f.ActualFuelKg, f.PlannedFuelKg*1.08+0.01)
		assert.GreaterOrEqual(t, f.FuelSavingsKg, 0.0)
		if f.ActualFuelKg >= f.PlannedFuelKg {
			assert.Zero(t, f.FuelSavingsKg)
		} else {
			assert.InDelta(t, f.PlannedFuelKg-f.ActualFuelKg, f.FuelSavingsKg, 0.02)
		}
		assert.GreaterOrEqual(t, f.EfficiencyScore, 0.75)
		assert.LessOrEqual(t, f.EfficiencyScore, 0.98)
		assert.GreaterOrEqual(t, f.PassengersCount, 180)
		assert.LessOrEqual(t, f.PassengersCount, 350)
		assert.False(t, f.FlightDate.Before(now.AddDate(0, 0, -90)))
		assert.True(t, f.FlightDate.Before(now))
	}
	for id, n := range perRoute {
		assert.GreaterOrEqual(t, n, 2, "route %d", id)
		assert.LessOrEqual(t, n, 6, "route %d", id)
	}
	assert.Len(t, perRoute, 2)
}

func TestRun(t *testing.T) {
	ds, err := LoadDataset()
	require.NoError(t, err)
	store := &recordingStore{}

	res, err := NewSeeder(store, rand.New(rand.NewPCG(1, 1)), nil).Run(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.Airlines)
	assert.Equal(t, int64(19), res.Routes)
	assert.Equal(t, int64(len(store.flights)), res.Flights)
	assert.GreaterOrEqual(t, len(store.flights), 2*19)
	assert.LessOrEqual(t, len(store.flights), 6*19)
}

func TestRun_StoreFailure(t *testing.T) {
	ds, err := LoadDataset()
	require.NoError(t, err)

	_, err = NewSeeder(&recordingStore{failOn: "routes"}, nil, nil).Run(context.Background(), ds)
	assert.EqualError(t, err, "duplicate entry")
}
