package services

import (
	"slices"

	"meeting-host-service/internal/domain"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Gini returns the Gini coefficient of values.
// Negative values are ignored; an empty or all-zero input yields 0.
func Gini(values []float64) float64 {
	series := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= 0 {
			series = append(series, v)
		}
	}
	if len(series) == 0 {
		return 0
	}
	slices.Sort(series)

	total := floats.Sum(series)
	if total == 0 {
		return 0
	}

	n := float64(len(series))
	weighted := 0.0
	for i, v := range series {
		weighted += float64(i+1) * v
	}
	return (2*weighted)/(n*total) - (n+1)/n
}

// median of an ascending slice; the two middle values are averaged for even lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// ComputeTravelStats aggregates per-office round-trip figures into host statistics.
//
// Each office's hours are repeated once per attendee before computing the
// central tendency, spread and Gini index, so larger offices weigh more.
// Offices without a headcount contribute nothing.
func ComputeTravelStats(
	officeHours map[string]float64,
	headcount map[string]int,
	officeCO2 map[string]float64,
) domain.TravelStatistics {
	offices := make([]string, 0, len(officeHours))
	for office := range officeHours {
		offices = append(offices, office)
	}
	slices.Sort(offices)

	expanded := make([]float64, 0)
	for _, office := range offices {
		for n := max(headcount[office], 0); n > 0; n-- {
			expanded = append(expanded, officeHours[office])
		}
	}

	var stats domain.TravelStatistics
	if len(expanded) > 0 {
		sorted := slices.Clone(expanded)
		slices.Sort(sorted)

		stats.AverageTravelHours = stat.Mean(expanded, nil)
		stats.MedianTravelHours = median(sorted)
		stats.MaxTravelHours = sorted[len(sorted)-1]
		stats.MinTravelHours = sorted[0]
		stats.GiniTravelHours = Gini(expanded)
	}

	co2Offices := make([]string, 0, len(officeCO2))
	for office := range officeCO2 {
		co2Offices = append(co2Offices, office)
	}
	slices.Sort(co2Offices)
	for _, office := range co2Offices {
		stats.TotalCO2 += officeCO2[office] * float64(max(headcount[office], 0))
	}

	return stats
}
