package dto

import (
	"testing"
	"time"

	"meeting-host-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioPayloadToDomain(t *testing.T) {
	p := ScenarioPayload{
		Attendees:          map[string]int{"Paris": 3},
		AvailabilityWindow: WindowPayload{Start: "2026-03-02T10:00:00+01:00", End: "2026-03-04T09:00:00Z"},
		EventDuration:      DurationPayload{Days: 1, Hours: 6},
	}

	sc, err := p.ToDomain()
	require.NoError(t, err)
	assert.True(t, sc.AvailabilityWindow.Start.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30*time.Hour, sc.EventDuration.ToDuration())

	p.AvailabilityWindow.End = "2026-03-01T00:00:00Z"
	_, err = p.ToDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)

	p.AvailabilityWindow.End = "03/04/2026"
	_, err = p.ToDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
}
