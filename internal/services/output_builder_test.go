package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"meeting-host-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankHub(t *testing.T, sc domain.Scenario) []domain.CandidateEvaluation {
	t.Helper()
	ranked, err := ScoreHosts(context.Background(), hubGraph(), sc, defaultScoreOptions())
	require.NoError(t, err)
	return ranked
}

func TestFormatTimestamp(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	assert.Equal(t, "2026-03-02T08:00:00Z", FormatTimestamp(time.Date(2026, 3, 2, 9, 0, 0, 0, paris)))
	assert.Equal(t, "2026-03-02T09:00:00.123456Z", FormatTimestamp(time.Date(2026, 3, 2, 9, 0, 0, 123456789, time.UTC)))
}

func TestBuildResult(t *testing.T) {
	sc := hubScenario(map[string]int{"A": 1, "B": 1})
	res, err := BuildResult(sc, rankHub(t, sc), 0)
	require.NoError(t, err)

	assert.Equal(t, "H", res.EventLocation)
	assert.Equal(t, domain.Period{Start: "2026-03-02T09:00:00Z", End: "2026-03-03T09:00:00Z"}, res.EventDates)
	// Widened by the slowest round trip (4h) on both sides.
	assert.Equal(t, domain.Period{Start: "2026-03-02T05:00:00Z", End: "2026-03-03T13:00:00Z"}, res.EventSpan)

	assert.InDelta(t, 180, res.TotalCO2, 1e-9)
	assert.Equal(t, map[string]float64{"A": 4, "B": 4}, res.AttendeeTravelHours)
	assert.Equal(t, map[string]float64{"A": 100, "B": 80}, res.AttendeeTravelCO2)
	assert.Zero(t, res.SelectedScore)
	assert.Nil(t, res.Alternatives)

	require.Contains(t, res.Itineraries, "A")
	it := res.Itineraries["A"]
	assert.Equal(t, []string{"A", "H"}, it.Stops)
	assert.Equal(t, 2.0, it.TotalDurationHours)
	assert.Equal(t, 50.0, it.TotalCO2)
	require.Len(t, it.Legs, 1)
	assert.Equal(t, domain.DefaultMode, it.Legs[0].Mode)
}

func TestBuildResultCoLocatedOffice(t *testing.T) {
	sc := hubScenario(map[string]int{"A": 1, "H": 1})
	res, err := BuildResult(sc, rankHub(t, sc), 3)
	require.NoError(t, err)

	assert.Equal(t, "H", res.EventLocation)
	home := res.Itineraries["H"]
	assert.Equal(t, []string{"H"}, home.Stops)
	assert.Empty(t, home.Legs)
	assert.Zero(t, home.TotalDurationHours)
	// Only H is reachable from both offices, so there is nothing to compare against.
	assert.Nil(t, res.Alternatives)
}

func TestBuildResultAlternatives(t *testing.T) {
	sc := hubScenario(map[string]int{"A": 1, "B": 1})
	ranked := rankHub(t, sc)

	res, err := BuildResult(sc, ranked, 1)
	require.NoError(t, err)
	require.Len(t, res.Alternatives, 1)
	alt := res.Alternatives[0]
	assert.Equal(t, "A", alt.EventLocation)
	assert.InDelta(t, 1.0, alt.Score, 1e-9)
	assert.Equal(t, 400.0, alt.Metrics[domain.MetricTotalCO2])
	assert.Equal(t, 12.0, alt.Metrics[domain.MetricMaxTravelHours])
	assert.Len(t, alt.Metrics, 4)

	res, err = BuildResult(sc, ranked, 10)
	require.NoError(t, err)
	assert.Len(t, res.Alternatives, 2)
}

func TestBuildResultErrors(t *testing.T) {
	sc := hubScenario(map[string]int{"A": 1, "B": 1})
	ranked := rankHub(t, sc)

	_, err := BuildResult(sc, nil, 0)
	assert.ErrorIs(t, err, domain.ErrNoFeasibleHost)

	_, err = BuildResult(sc, ranked, -1)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "alternatives"))

	long := sc
	long.EventDuration = domain.EventDuration{Days: 3, Hours: 1}
	_, err = BuildResult(long, ranked, 0)
	assert.ErrorIs(t, err, domain.ErrWindowTooShort)
}

func TestBuildResultDoesNotAliasEvaluation(t *testing.T) {
	sc := hubScenario(map[string]int{"A": 1, "B": 1})
	ranked := rankHub(t, sc)

	res, err := BuildResult(sc, ranked, 0)
	require.NoError(t, err)

	res.AttendeeTravelHours["A"] = 99
	res.Itineraries["A"].Legs[0].Origin = "mutated"
	assert.Equal(t, 4.0, ranked[0].OfficeHours["A"])
	assert.Equal(t, "A", ranked[0].Routes["A"].Legs[0].Origin)
}

func TestBuildResultSpanWithHugeTravelTimes(t *testing.T) {
	g := domain.NewGraph([]domain.Leg{
		leg("A", "H", 2e6, 1),
		leg("B", "H", 2e6, 1),
	})
	sc := hubScenario(map[string]int{"A": 1, "B": 1})
	ranked, err := ScoreHosts(context.Background(), g, sc, defaultScoreOptions())
	require.NoError(t, err)
	require.Equal(t, 4e6, ranked[0].Stats.MaxTravelHours)

	res, err := BuildResult(sc, ranked, 0)
	require.NoError(t, err)

	parse := func(s string) time.Time {
		ts, err := time.Parse(time.RFC3339Nano, s)
		require.NoError(t, err)
		return ts
	}
	assert.Equal(t, "2026-03-02T09:00:00Z", res.EventDates.Start)
	assert.True(t, parse(res.EventSpan.Start).Before(parse(res.EventDates.Start)), "span start %s", res.EventSpan.Start)
	assert.True(t, parse(res.EventSpan.End).After(parse(res.EventDates.End)), "span end %s", res.EventSpan.End)
}
