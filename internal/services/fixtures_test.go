package services

import (
	"time"

	"meeting-host-service/internal/domain"
)

var windowStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// hubGraph has two offices, A and B, that are far apart but both close to H.
func hubGraph() *domain.Graph {
	return domain.NewGraph([]domain.Leg{
		leg("A", "H", 2, 50),
		leg("A", "H", 3, 20),
		leg("B", "H", 2, 40),
		leg("A", "B", 6, 200),
		leg("B", "A", 6, 200),
	})
}

func hubScenario(attendees map[string]int) domain.Scenario {
	return domain.Scenario{
		Attendees:          attendees,
		AvailabilityWindow: domain.TimeWindow{Start: windowStart, End: windowStart.Add(72 * time.Hour)},
		EventDuration:      domain.EventDuration{Days: 1},
	}
}

func defaultScoreOptions() ScoreOptions {
	return ScoreOptions{
		Preference: domain.DefaultRoutePreference(),
		Weights:    domain.DefaultHostWeights(),
		Limits:     domain.DefaultSearchLimits(),
		Workers:    4,
	}
}

func hostNames(ranked []domain.CandidateEvaluation) []string {
	out := make([]string, len(ranked))
	for i, ev := range ranked {
		out[i] = ev.Host
	}
	return out
}
