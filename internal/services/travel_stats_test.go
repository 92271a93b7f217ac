package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGini(t *testing.T) {
	assert.Zero(t, Gini(nil))
	assert.Zero(t, Gini([]float64{0, 0, 0}))
	assert.InDelta(t, 0, Gini([]float64{5, 5, 5, 5}), 1e-12)
	assert.InDelta(t, 0.75, Gini([]float64{0, 0, 0, 1}), 1e-12)
	assert.InDelta(t, 0.5, Gini([]float64{10, 0}), 1e-12)

	t.Run("negative values are ignored", func(t *testing.T) {
		assert.InDelta(t, 0, Gini([]float64{-5, 1, 1}), 1e-12)
	})

	t.Run("scale invariant", func(t *testing.T) {
		assert.InDelta(t, Gini([]float64{1, 2, 7}), Gini([]float64{10, 20, 70}), 1e-12)
	})

	t.Run("order independent and bounded", func(t *testing.T) {
		a := Gini([]float64{3, 1, 8, 2})
		b := Gini([]float64{8, 2, 3, 1})
		assert.InDelta(t, a, b, 1e-12)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 1.0)
	})
}

func TestMedian(t *testing.T) {
	assert.Zero(t, median(nil))
	assert.Equal(t, 3.0, median([]float64{1, 3, 9}))
	assert.Equal(t, 5.0, median([]float64{1, 4, 6, 9}))
}

func TestComputeTravelStats(t *testing.T) {
	hours := map[string]float64{"A": 4, "B": 8, "C": 100}
	co2 := map[string]float64{"A": 100, "B": 200, "C": 1000}
	headcount := map[string]int{"A": 1, "B": 3, "C": 0}

	s := ComputeTravelStats(hours, headcount, co2)

	assert.InDelta(t, 700, s.TotalCO2, 1e-9)
	assert.InDelta(t, 7, s.AverageTravelHours, 1e-9)
	assert.InDelta(t, 8, s.MedianTravelHours, 1e-9)
	assert.InDelta(t, 8, s.MaxTravelHours, 1e-9)
	assert.InDelta(t, 4, s.MinTravelHours, 1e-9)
	assert.InDelta(t, 0.75/7, s.GiniTravelHours, 1e-9)
}

func TestComputeTravelStatsEmpty(t *testing.T) {
	s := ComputeTravelStats(map[string]float64{}, map[string]int{}, map[string]float64{})
	assert.Zero(t, s.TotalCO2)
	assert.Zero(t, s.AverageTravelHours)
	assert.Zero(t, s.GiniTravelHours)
}
