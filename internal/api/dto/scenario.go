package dto

import (
	"fmt"
	"meeting-host-service/internal/domain"
	"time"
)

type WindowPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DurationPayload struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

type ScenarioPayload struct {
	Attendees          map[string]int  `json:"attendees"`
	AvailabilityWindow WindowPayload   `json:"availability_window"`
	EventDuration      DurationPayload `json:"event_duration"`
}

// ParseTimestamp accepts RFC 3339 timestamps with either "Z" or an explicit offset.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// ToDomain converts and validates the payload.
// Every failure wraps domain.ErrInvalidScenario.
func (p ScenarioPayload) ToDomain() (domain.Scenario, error) {
	start, err := ParseTimestamp(p.AvailabilityWindow.Start)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("scenario: availability_window.start: %v: %w", err, domain.ErrInvalidScenario)
	}
	end, err := ParseTimestamp(p.AvailabilityWindow.End)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("scenario: availability_window.end: %v: %w", err, domain.ErrInvalidScenario)
	}

	sc := domain.Scenario{
		Attendees:          p.Attendees,
		AvailabilityWindow: domain.TimeWindow{Start: start, End: end},
		EventDuration:      domain.EventDuration{Days: p.EventDuration.Days, Hours: p.EventDuration.Hours},
	}
	if err := sc.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	return sc, nil
}
