package services

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"meeting-host-service/internal/domain"
)

// timestampLayout renders UTC instants with a literal "Z" and at most
// microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.999999Z07:00"

// FormatTimestamp renders t as an ISO-8601 UTC string ending in "Z".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// BuildResult renders the best-ranked host with its itineraries and up to
// alternatives runner-up summaries.
//
// The event starts at the opening of the availability window. The event span
// widens the event on both sides by the winner's longest round trip so that the
// slowest attendee's travel is covered.
func BuildResult(sc domain.Scenario, ranked []domain.CandidateEvaluation, alternatives int) (*domain.Result, error) {
	if len(ranked) == 0 {
		return nil, fmt.Errorf("build result: %w", domain.ErrNoFeasibleHost)
	}
	if alternatives < 0 {
		return nil, errors.New("build result: alternatives must be >= 0")
	}

	start, end, err := sc.EventDates()
	if err != nil {
		return nil, fmt.Errorf("build result: %w", err)
	}

	best := ranked[0]
	buffer := domain.HoursToDuration(best.Stats.MaxTravelHours)

	res := &domain.Result{
		EventLocation: best.Host,
		EventDates: domain.Period{
			Start: FormatTimestamp(start),
			End:   FormatTimestamp(end),
		},
		EventSpan: domain.Period{
			Start: FormatTimestamp(start.Add(-buffer)),
			End:   FormatTimestamp(end.Add(buffer)),
		},
		TotalCO2:            best.Stats.TotalCO2,
		AverageTravelHours:  best.Stats.AverageTravelHours,
		MedianTravelHours:   best.Stats.MedianTravelHours,
		MaxTravelHours:      best.Stats.MaxTravelHours,
		MinTravelHours:      best.Stats.MinTravelHours,
		GiniTravelHours:     best.Stats.GiniTravelHours,
		AttendeeTravelHours: maps.Clone(best.OfficeHours),
		AttendeeTravelCO2:   maps.Clone(best.OfficeCO2),
		Itineraries:         make(map[string]domain.Itinerary, len(best.Routes)),
		SelectedScore:       best.CompositeScore,
		ScoreBreakdown:      maps.Clone(best.Breakdown),
	}

	for office, route := range best.Routes {
		stops := route.Stops()
		if len(route.Legs) == 0 {
			stops = []string{office}
		}
		legs := make([]domain.Leg, len(route.Legs))
		copy(legs, route.Legs)

		res.Itineraries[office] = domain.Itinerary{
			Stops:              stops,
			TotalDurationHours: route.TotalDuration,
			TotalCO2:           route.TotalCO2,
			Legs:               legs,
		}
	}

	if alternatives > 0 && len(ranked) > 1 {
		last := min(len(ranked), alternatives+1)
		res.Alternatives = make([]domain.Alternative, 0, last-1)
		for _, alt := range ranked[1:last] {
			res.Alternatives = append(res.Alternatives, domain.Alternative{
				EventLocation: alt.Host,
				Score:         alt.CompositeScore,
				Metrics: map[domain.Metric]float64{
					domain.MetricTotalCO2:           alt.Stats.TotalCO2,
					domain.MetricAverageTravelHours: alt.Stats.AverageTravelHours,
					domain.MetricGiniTravelHours:    alt.Stats.GiniTravelHours,
					domain.MetricMaxTravelHours:     alt.Stats.MaxTravelHours,
				},
			})
		}
	}

	return res, nil
}
