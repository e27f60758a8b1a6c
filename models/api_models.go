// models/api_models.go
package models

import "time"

// ReportRequest is the JSON body for POST /api/generate-report.
type ReportRequest struct {
	ReportType string `json:"report_type"` // only "efficiency" is supported
	Format     string `json:"format"`      // "json" (default) or "csv"
}

type APIInfo struct {
	API         string    `json:"api"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Database    string    `json:"database"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

type HealthStatus struct {
	Status             string      `json:"status"`
	Database           string      `json:"database"`
	OperationalMetrics string      `json:"operational_metrics,omitempty"`
	Timestamp          time.Time   `json:"timestamp"`
	Statistics         *TableStats `json:"statistics,omitempty"`
	ServerTime         string      `json:"server_time,omitempty"`
	Error              string      `json:"error,omitempty"`
}

// ListResponse wraps a plain table listing.
type ListResponse[T any] struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
	Data      []T       `json:"data"`
}

type PlatformOverview struct {
	TotalRoutesMonitored      int64   `json:"total_routes_monitored"`
	HistoricalFlightsAnalyzed int64   `json:"historical_flights_analyzed"`
	TotalFuelAnalyzedKg       float64 `json:"total_fuel_analyzed_kg"`
}

type EfficiencyImpact struct {
	EstimatedFuelSavingsKg       float64 `json:"estimated_fuel_savings_kg"`
	PotentialCO2ReductionTons    float64 `json:"potential_co2_reduction_tons"`
	EstimatedCostSavingsUSD      float64 `json:"estimated_cost_savings_usd"`
	AverageEfficiencyImprovement string  `json:"average_efficiency_improvement"`
}

type DashboardStats struct {
	PlatformOverview PlatformOverview `json:"platform_overview"`
	EfficiencyImpact EfficiencyImpact `json:"efficiency_impact"`
	LastUpdated      time.Time        `json:"last_updated"`
	Status           string           `json:"status,omitempty"`
}

type EfficiencyAnalytics struct {
	AnalysisType        string            `json:"analysis_type"`
	Period              string            `json:"period"`
	TotalRoutesAnalyzed int               `json:"total_routes_analyzed"`
	Timestamp           time.Time         `json:"timestamp"`
	Data                []RouteEfficiency `json:"data"`
	Status              string            `json:"status,omitempty"`
}

type OperationalMetricsReport struct {
	Timestamp    time.Time      `json:"timestamp"`
	Summary      MetricsSummary `json:"summary"`
	DailyMetrics []DailyMetric  `json:"daily_metrics"`
	Period       string         `json:"period"`
	Status       string         `json:"status"`
}

type RouteAnalysis struct {
	RouteID              int       `json:"route_id"`
	RouteName            string    `json:"route_name"`
	Airline              string    `json:"airline"`
	DistanceKm           int       `json:"distance_km"`
	BaseFuelKg           int       `json:"base_fuel_kg"`
	CurrentEfficiency    float64   `json:"current_efficiency"`
	FuelPerKm            float64   `json:"fuel_per_km"`
	TotalFlightsAnalyzed int       `json:"total_flights_analyzed"`
	AnalysisTimestamp    time.Time `json:"analysis_timestamp"`
	Recommendations      []string  `json:"recommendations"`
}

type ReportSummary struct {
	TotalRoutes   int     `json:"total_routes"`
	AvgEfficiency float64 `json:"avg_efficiency"`
	TotalFlights  int     `json:"total_flights"`
}

type Report struct {
	ReportType  string        `json:"report_type"`
	GeneratedAt time.Time     `json:"generated_at"`
	Data        []ReportRow   `json:"data"`
	Summary     ReportSummary `json:"summary"`
	Status      string        `json:"status,omitempty"`
}

type TablesReport struct {
	Database  string        `json:"database"`
	Tables    []TableColumn `json:"tables"`
	Timestamp time.Time     `json:"timestamp"`
}
