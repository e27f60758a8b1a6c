// services/recommendations.go
package services

const (
	maxRecommendations = 4
	longHaulKm         = 8000
)

var (
	urgentAdvice = []string{
		"Immediate attention needed: Consider operational review",
		"Optimize flight altitude and speed for better fuel efficiency",
		"Review aircraft weight and balance configuration",
	}
	optimizeAdvice = []string{
		"Consider optimizing flight altitude for better fuel efficiency",
		"Evaluate alternative routing to avoid headwinds",
		"Review loading procedures to reduce aircraft weight",
	}
	minorAdvice = []string{
		"Good performance - consider minor optimizations",
		"Monitor weather patterns for optimal routing",
	}
	maintainAdvice = []string{
		"Excellent efficiency maintained - continue current operations",
		"Consider sharing best practices with other routes",
	}
	longHaulAdvice = []string{
		"Long-haul route: Optimize cruise altitude and speed profile",
		"Consider step-climb altitude adjustments for fuel savings",
	}
	monitorAdvice = "Monitor fuel consumption and maintain current operations"
)

// Recommendations maps an efficiency score in [0,1] and a route distance to
// at most four advisory strings, tier advice first.
func Recommendations(efficiency float64, distanceKm int) []string {
	var tier []string
	switch {
	case efficiency < 0.75:
		tier = urgentAdvice
	case efficiency < 0.80:
		tier = optimizeAdvice
	case efficiency < 0.85:
		tier = minorAdvice
	default:
		tier = maintainAdvice
	}

	out := make([]string, 0, len(tier)+len(longHaulAdvice))
	out = append(out, tier...)
	if distanceKm > longHaulKm {
		out = append(out, longHaulAdvice...)
	}

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	if len(out) == 0 {
		out = append(out, monitorAdvice)
	}
	return out
}
