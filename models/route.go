// models/route.go
package models

// Airline is a carrier keyed by its IATA code in the routes table.
type Airline struct {
	ID       int    `csv:"airline_id" json:"airline_id"`
	Name     string `csv:"name" json:"name"`
	IATACode string `csv:"iata_code" json:"iata_code"`
	Country  string `csv:"country" json:"country"`
}

type Airport struct {
	ID       int    `csv:"airport_id" json:"airport_id"`
	Name     string `csv:"name" json:"name"`
	City     string `csv:"city" json:"city"`
	Country  string `csv:"country" json:"country"`
	IATACode string `csv:"iata_code" json:"iata_code"`
}

// Route is a scheduled airline city-pair. Airline is referenced by code,
// not by id. DistanceKm and BaseFuelKg are always positive.
type Route struct {
	ID            int     `csv:"-" json:"route_id"`
	AirlineCode   string  `csv:"airline_code" json:"airline_code"`
	SourceAirport string  `csv:"source_airport" json:"source_airport"`
	DestAirport   string  `csv:"dest_airport" json:"destination_airport"`
	DistanceKm    int     `csv:"distance_km" json:"distance_km"`
	BaseFuelKg    int     `csv:"base_fuel_kg" json:"base_fuel_kg"`
	AirlineName   *string `csv:"-" json:"airline_name"` // LEFT JOIN, nil when the airline is unknown
}

// RouteRef is the slice of a route used to attach synthesized data to a
// real route.
type RouteRef struct {
	ID            int
	AirlineCode   string
	SourceAirport string
	DestAirport   string
}

// FlightPerformance is one historical flight on a route.
type FlightPerformance struct {
	ID              int64   `json:"performance_id"`
	RouteID         int     `json:"route_id"`
	FlightDate      Date    `json:"flight_date"`
	ActualFuelKg    float64 `json:"actual_fuel_kg"`
	PlannedFuelKg   float64 `json:"planned_fuel_kg"`
	PassengersCount int     `json:"passengers_count"`
	EfficiencyScore float64 `json:"efficiency_score"`
	FuelSavingsKg   float64 `json:"fuel_savings_kg"`
}

// FlightRecord is a FlightPerformance row joined with its route airports,
// as listed by /api/flights.
type FlightRecord struct {
	PerformanceID      int64   `json:"performance_id"`
	RouteID            int     `json:"route_id"`
	FlightDate         Date    `json:"flight_date"`
	ActualFuelKg       float64 `json:"actual_fuel_kg"`
	PlannedFuelKg      float64 `json:"planned_fuel_kg"`
	EfficiencyScore    float64 `json:"efficiency_score"`
	SourceAirport      string  `json:"source_airport"`
	DestinationAirport string  `json:"destination_airport"`
}

type AircraftConfig struct {
	ID             int     `csv:"config_id" json:"config_id"`
	AircraftModel  string  `csv:"aircraft_model" json:"aircraft_model"`
	SeatCapacity   int     `csv:"seat_capacity" json:"seat_capacity"`
	FuelEfficiency float64 `csv:"fuel_efficiency" json:"fuel_efficiency"`
	MaxRangeKm     int     `csv:"max_range_km" json:"max_range_km"`
}
