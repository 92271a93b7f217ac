package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Metric names a host-level statistic that can take part in scoring.
type Metric string

const (
	MetricTotalCO2           Metric = "total_co2"
	MetricAverageTravelHours Metric = "average_travel_hours"
	MetricMedianTravelHours  Metric = "median_travel_hours"
	MetricMaxTravelHours     Metric = "max_travel_hours"
	MetricMinTravelHours     Metric = "min_travel_hours"
	MetricGiniTravelHours    Metric = "gini_travel_hours"
)

// Metrics lists every scorable metric in the order used for breakdowns.
var Metrics = []Metric{
	MetricTotalCO2,
	MetricAverageTravelHours,
	MetricMedianTravelHours,
	MetricMaxTravelHours,
	MetricMinTravelHours,
	MetricGiniTravelHours,
}

// HostWeights assigns a non-negative weight to each scorable metric.
// Metrics with weight 0 do not contribute to the composite score.
type HostWeights struct {
	TotalCO2           float64 `yaml:"total_co2"`
	AverageTravelHours float64 `yaml:"average_travel_hours"`
	MedianTravelHours  float64 `yaml:"median_travel_hours"`
	MaxTravelHours     float64 `yaml:"max_travel_hours"`
	MinTravelHours     float64 `yaml:"min_travel_hours"`
	GiniTravelHours    float64 `yaml:"gini_travel_hours"`
}

func DefaultHostWeights() HostWeights {
	return HostWeights{
		TotalCO2:           0.4,
		AverageTravelHours: 0.3,
		GiniTravelHours:    0.2,
		MaxTravelHours:     0.1,
	}
}

func (w *HostWeights) field(m Metric) (*float64, error) {
	switch m {
	case MetricTotalCO2:
		return &w.TotalCO2, nil
	case MetricAverageTravelHours:
		return &w.AverageTravelHours, nil
	case MetricMedianTravelHours:
		return &w.MedianTravelHours, nil
	case MetricMaxTravelHours:
		return &w.MaxTravelHours, nil
	case MetricMinTravelHours:
		return &w.MinTravelHours, nil
	case MetricGiniTravelHours:
		return &w.GiniTravelHours, nil
	}
	return nil, fmt.Errorf("host weights: unknown metric %q: %w", m, ErrInvalidWeights)
}

// Return the weight for m, or 0 for an unknown metric.
func (w HostWeights) Weight(m Metric) float64 {
	p, err := w.field(m)
	if err != nil {
		return 0
	}
	return *p
}

// Set overrides the weight of a single metric.
func (w *HostWeights) Set(m Metric, value float64) error {
	p, err := w.field(m)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Apply overrides keyed by metric name on top of w.
func (w *HostWeights) Apply(overrides map[string]float64) error {
	for key, value := range overrides {
		if err := w.Set(Metric(strings.TrimSpace(key)), value); err != nil {
			return err
		}
	}
	return nil
}

// ParseOverride applies a single "metric=value" override.
func (w *HostWeights) ParseOverride(s string) error {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("host weights: override %q must look like metric=value: %w", s, ErrInvalidWeights)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("host weights: override %q: %v: %w", s, err, ErrInvalidWeights)
	}
	return w.Set(Metric(strings.TrimSpace(key)), value)
}

// Validate requires every weight to be finite and >= 0, with at least one > 0.
func (w HostWeights) Validate() error {
	positive := false
	for _, m := range Metrics {
		v := w.Weight(m)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("host weights: %s=%v must be a non-negative number: %w", m, v, ErrInvalidWeights)
		}
		if v > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("host weights: at least one host metric weight must be positive: %w", ErrInvalidWeights)
	}
	return nil
}

// Return the metrics with a positive weight, in Metrics order.
func (w HostWeights) Active() []Metric {
	out := make([]Metric, 0, len(Metrics))
	for _, m := range Metrics {
		if w.Weight(m) > 0 {
			out = append(out, m)
		}
	}
	return out
}
