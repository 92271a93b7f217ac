package services

import (
	"errors"
	"fmt"
	"math"

	"meeting-host-service/internal/domain"

	"gonum.org/v1/gonum/floats"
)

func validatePreference(pref domain.RoutePreference) error {
	d, e := pref.DurationWeight, pref.EmissionWeight
	if math.IsNaN(d) || math.IsNaN(e) || math.IsInf(d, 0) || math.IsInf(e, 0) {
		return fmt.Errorf("route preference: weights must be finite: %w", domain.ErrInvalidWeights)
	}
	if d < 0 || e < 0 {
		return fmt.Errorf("route preference: weights must be non-negative (duration=%v emission=%v): %w", d, e, domain.ErrInvalidWeights)
	}
	if d+e == 0 {
		return fmt.Errorf("route preference: at least one weight must be positive: %w", domain.ErrInvalidWeights)
	}
	return nil
}

// minMaxNormalize maps values onto [0,1]. When all values are equal every
// normalized value is 0.
func minMaxNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return out
	}
	span := hi - lo
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out
}

// SelectRoute picks one route by weighted sum of min-max normalized duration
// and emissions. The weights are normalized to sum to 1 first.
// Ties go to the route that appears first in routes.
func SelectRoute(routes []domain.Route, pref domain.RoutePreference) (domain.Route, error) {
	if err := validatePreference(pref); err != nil {
		return domain.Route{}, fmt.Errorf("select route: %w", err)
	}
	if len(routes) == 0 {
		return domain.Route{}, fmt.Errorf("select route: no candidate routes: %w", domain.ErrNoFeasibleRoute)
	}

	total := pref.DurationWeight + pref.EmissionWeight
	dw := pref.DurationWeight / total
	ew := pref.EmissionWeight / total

	durations := make([]float64, len(routes))
	emissions := make([]float64, len(routes))
	for i, r := range routes {
		durations[i] = r.TotalDuration
		emissions[i] = r.TotalCO2
	}
	nd := minMaxNormalize(durations)
	ne := minMaxNormalize(emissions)

	best := -1
	bestScore := math.Inf(1)
	for i := range routes {
		score := dw*nd[i] + ew*ne[i]
		// Strict comparison keeps the earliest route on ties.
		if score < bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return domain.Route{}, errors.New("select route: failed to score candidate routes")
	}

	return routes[best], nil
}
