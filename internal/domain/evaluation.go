package domain

// TravelStatistics aggregates attendee travel for one candidate host.
// Hour figures are per attendee and round trip.
type TravelStatistics struct {
	TotalCO2           float64
	AverageTravelHours float64
	MedianTravelHours  float64
	MaxTravelHours     float64
	MinTravelHours     float64
	GiniTravelHours    float64
}

// Return the value of metric m.
func (s TravelStatistics) Value(m Metric) float64 {
	switch m {
	case MetricTotalCO2:
		return s.TotalCO2
	case MetricAverageTravelHours:
		return s.AverageTravelHours
	case MetricMedianTravelHours:
		return s.MedianTravelHours
	case MetricMaxTravelHours:
		return s.MaxTravelHours
	case MetricMinTravelHours:
		return s.MinTravelHours
	case MetricGiniTravelHours:
		return s.GiniTravelHours
	}
	return 0
}

// CandidateEvaluation is the scored outcome for one host in one solve call.
type CandidateEvaluation struct {
	Host           string
	Stats          TravelStatistics
	Routes         map[string]Route
	OfficeHours    map[string]float64
	OfficeCO2      map[string]float64
	CompositeScore float64
	Breakdown      map[Metric]float64
}
