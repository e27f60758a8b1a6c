package services

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/skysql/models"
)

func testSynth() *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewPCG(1, 2)))
}

var testRefs = []models.RouteRef{
	{ID: 1, AirlineCode: "QF", SourceAirport: "SYD", DestAirport: "LAX"},
	{ID: 4, AirlineCode: "CX", SourceAirport: "HKG", DestAirport: "LHR"},
	{ID: 6, AirlineCode: "SQ", SourceAirport: "SIN", DestAirport: "SYD"},
}

func TestSynthesizer_OperationalMetrics(t *testing.T) {
	now := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

	rows := testSynth().OperationalMetrics(now, 7, testRefs)

	require.Len(t, rows, 21)
	assert.Equal(t, "2026-10-13", rows[0].MetricDate.String())
	assert.Equal(t, "2026-10-19", rows[len(rows)-1].MetricDate.String())
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.TotalFlights, 3)
		assert.LessOrEqual(t, r.TotalFlights, 8)
		assert.GreaterOrEqual(t, r.AvgEfficiency, 0.82)
		assert.LessOrEqual(t, r.AvgEfficiency, 0.94)
		assert.GreaterOrEqual(t, r.TotalFuelUsedKg, 350000.0)
		assert.LessOrEqual(t, r.TotalFuelUsedKg, 450000.0)
		assert.Greater(t, r.TotalFuelSavedKg, 0.0)
		assert.GreaterOrEqual(t, r.AvgPassengerLoad, 0.78)
		assert.LessOrEqual(t, r.OnTimePerformance, 0.96)
		assert.NotEmpty(t, r.AirlineCode)
	}
}

func TestSynthesizer_DailyMetricsOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	days := testSynth().DailyMetrics(now, 7)

	require.Len(t, days, 7)
	assert.Equal(t, "2026-02-24", days[0].MetricDate.String())
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].MetricDate.After(days[i-1].MetricDate.Time))
	}
}

func TestSynthesizer_RouteEfficiency(t *testing.T) {
	rows := testSynth().RouteEfficiency(testRefs)

	require.Len(t, rows, 3)
	assert.Equal(t, "SYD - LAX", rows[0].RouteName)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.TotalFlights, 3)
		assert.LessOrEqual(t, r.TotalFlights, 12)
		assert.GreaterOrEqual(t, r.AvgEfficiency, 0.75)
		assert.LessOrEqual(t, r.AvgEfficiency, 0.95)
		assert.GreaterOrEqual(t, r.FuelPerKm, 8.0)
		assert.LessOrEqual(t, r.FuelPerKm, 15.0)
		assert.Equal(t, float64(int(r.AvgPassengers)), r.AvgPassengers)
		assert.GreaterOrEqual(t, r.TotalFuelSaved, 5000.0)
		assert.LessOrEqual(t, r.TotalFuelSaved, 25000.0)
	}
}

func TestSynthesizer_ReportRows(t *testing.T) {
	rows := testSynth().ReportRows(testRefs)

	require.Len(t, rows, 3)
	assert.Equal(t, "HKG to LHR", rows[1].Route)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.FlightsAnalyzed, 3)
		assert.LessOrEqual(t, r.FlightsAnalyzed, 15)
		assert.GreaterOrEqual(t, r.AvgFuelUsed, 50000.0)
		assert.LessOrEqual(t, r.AvgFuelUsed, 150000.0)
		assert.GreaterOrEqual(t, r.AvgPassengers, 180.0)
		assert.LessOrEqual(t, r.AvgPassengers, 350.0)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 92.1, round(92.051, 1))
	assert.Equal(t, 0.874, round(0.87449, 3))
	assert.Equal(t, 11.95, round(11.949, 2))
}
