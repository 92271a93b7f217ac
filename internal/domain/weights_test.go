package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHostWeights(t *testing.T) {
	w := DefaultHostWeights()
	require.NoError(t, w.Validate())
	assert.Equal(t, []Metric{
		MetricTotalCO2,
		MetricAverageTravelHours,
		MetricMaxTravelHours,
		MetricGiniTravelHours,
	}, w.Active())
	assert.Equal(t, 0.4, w.Weight(MetricTotalCO2))
	assert.Equal(t, 0.3, w.Weight(MetricAverageTravelHours))
	assert.Equal(t, 0.2, w.Weight(MetricGiniTravelHours))
	assert.Equal(t, 0.1, w.Weight(MetricMaxTravelHours))
}

func TestHostWeightsOverrides(t *testing.T) {
	w := DefaultHostWeights()
	require.NoError(t, w.Apply(map[string]float64{"total_co2": 0.5, "median_travel_hours": 0.25}))
	require.NoError(t, w.ParseOverride("gini_travel_hours = 0"))

	assert.Equal(t, 0.5, w.TotalCO2)
	assert.Equal(t, 0.25, w.MedianTravelHours)
	assert.Equal(t, 0.3, w.AverageTravelHours)
	assert.Zero(t, w.GiniTravelHours)
	assert.NotContains(t, w.Active(), MetricGiniTravelHours)

	assert.ErrorIs(t, w.ParseOverride("bogus=1"), ErrInvalidWeights)
	assert.ErrorIs(t, w.ParseOverride("total_co2"), ErrInvalidWeights)
	assert.ErrorIs(t, w.ParseOverride("total_co2=abc"), ErrInvalidWeights)
}

func TestHostWeightsValidate(t *testing.T) {
	assert.ErrorIs(t, HostWeights{}.Validate(), ErrInvalidWeights)
	assert.ErrorIs(t, HostWeights{TotalCO2: 1, MaxTravelHours: -0.1}.Validate(), ErrInvalidWeights)
	assert.ErrorIs(t, HostWeights{TotalCO2: math.NaN()}.Validate(), ErrInvalidWeights)
	assert.NoError(t, HostWeights{MinTravelHours: 1}.Validate())
}
