// models/metrics.go
package models

// DailyMetric is the per-day view of an operational metric row served by
// /api/metrics.
type DailyMetric struct {
	MetricDate        Date    `json:"metric_date"`
	TotalFlights      int     `json:"total_flights"`
	AvgEfficiency     float64 `json:"avg_efficiency"`
	TotalFuelUsedKg   float64 `json:"total_fuel_used_kg"`
	TotalFuelSavedKg  float64 `json:"total_fuel_saved_kg"`
	AvgPassengerLoad  float64 `json:"avg_passenger_load"`
	OnTimePerformance float64 `json:"on_time_performance"`
}

// OperationalMetric is one (date, route) rollup. The schema does not enforce
// uniqueness on that pair.
type OperationalMetric struct {
	ID int64 `json:"metric_id"`
	DailyMetric
	RouteID     int    `json:"route_id"`
	AirlineCode string `json:"airline_code"`
}

// MetricsSummary is the 30-day rollup across all operational metrics.
type MetricsSummary struct {
	ActiveRoutes      int     `json:"active_routes"`
	ActiveAirlines    int     `json:"active_airlines"`
	OverallEfficiency float64 `json:"overall_efficiency"`
	TotalFuelSavings  float64 `json:"total_fuel_savings"`
	TotalFlights      int     `json:"total_flights"`
}

// RouteEfficiency is one row of the 90-day efficiency analytics.
type RouteEfficiency struct {
	RouteID        int     `json:"route_id"`
	RouteName      string  `json:"route_name"`
	AirlineCode    string  `json:"airline_code"`
	TotalFlights   int     `json:"total_flights"`
	AvgEfficiency  float64 `json:"avg_efficiency"`
	FuelPerKm      float64 `json:"fuel_per_km"`
	AvgPassengers  float64 `json:"avg_passengers"`
	TotalFuelSaved float64 `json:"total_fuel_saved"`
}

// ReportRow is one route line of an efficiency report.
type ReportRow struct {
	RouteID         int     `csv:"route_id" json:"route_id"`
	Route           string  `csv:"route" json:"route"`
	AvgEfficiency   float64 `csv:"avg_efficiency" json:"avg_efficiency"`
	FlightsAnalyzed int     `csv:"flights_analyzed" json:"flights_analyzed"`
	AvgFuelUsed     float64 `csv:"avg_fuel_used" json:"avg_fuel_used"`
	AvgPassengers   float64 `csv:"avg_passengers" json:"avg_passengers"`
}

// TableStats are the row counts reported by the health check.
type TableStats struct {
	AirlineCount int64 `json:"airline_count"`
	AirportCount int64 `json:"airport_count"`
	RouteCount   int64 `json:"route_count"`
	FlightCount  int64 `json:"flight_count"`
	MetricsCount int64 `json:"metrics_count"`
}

// TableColumn is one INFORMATION_SCHEMA.COLUMNS entry.
type TableColumn struct {
	TableName  string `json:"TABLE_NAME"`
	ColumnName string `json:"COLUMN_NAME"`
	DataType   string `json:"DATA_TYPE"`
	IsNullable string `json:"IS_NULLABLE"`
}
