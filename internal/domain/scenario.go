package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// Period during which every attendee is available.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Length of the event expressed in whole days and hours.
type EventDuration struct {
	Days  int
	Hours int
}

// ToDuration converts d to a time.Duration, saturating at the largest
// representable duration instead of wrapping.
func (d EventDuration) ToDuration() time.Duration {
	return HoursToDuration(float64(d.Days)*24 + float64(d.Hours))
}

// HoursToDuration converts fractional hours to a time.Duration. Values beyond
// the int64 nanosecond range saturate; non-positive and NaN values yield 0.
func HoursToDuration(h float64) time.Duration {
	if !(h > 0) {
		return 0
	}
	if h >= float64(math.MaxInt64)/float64(time.Hour) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(h * float64(time.Hour))
}

// Scenario describes who is travelling and when the event may take place.
type Scenario struct {
	Attendees          map[string]int
	AvailabilityWindow TimeWindow
	EventDuration      EventDuration
}

// Return office names with at least one attendee, sorted by name.
func (s Scenario) AttendingOffices() []string {
	offices := make([]string, 0, len(s.Attendees))
	for office, count := range s.Attendees {
		if count > 0 {
			offices = append(offices, office)
		}
	}
	slices.Sort(offices)
	return offices
}

// Validate checks the structural invariants of a scenario.
// It is called by loaders and handlers before the scenario reaches the solver.
func (s Scenario) Validate() error {
	if len(s.Attendees) == 0 {
		return fmt.Errorf("validate scenario: attendees must not be empty: %w", ErrInvalidScenario)
	}
	for office, count := range s.Attendees {
		if strings.TrimSpace(office) == "" {
			return fmt.Errorf("validate scenario: office name must not be empty: %w", ErrInvalidScenario)
		}
		if count < 0 {
			return fmt.Errorf("validate scenario: office %q has negative attendee count %d: %w", office, count, ErrInvalidScenario)
		}
	}

	w := s.AvailabilityWindow
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("validate scenario: availability window start and end are required: %w", ErrInvalidScenario)
	}
	if !w.End.After(w.Start) {
		return fmt.Errorf("validate scenario: availability window end %s must be after start %s: %w",
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339), ErrInvalidScenario)
	}

	d := s.EventDuration
	if d.Days < 0 || d.Hours < 0 {
		return fmt.Errorf("validate scenario: event duration must be non-negative (days=%d hours=%d): %w", d.Days, d.Hours, ErrInvalidScenario)
	}
	return nil
}

// Return the event's start and end if the duration fits the window.
// The event always starts at the beginning of the window.
func (s Scenario) EventDates() (time.Time, time.Time, error) {
	start := s.AvailabilityWindow.Start
	dur := s.EventDuration.ToDuration()
	// A saturated duration never fits, even in a window that is itself saturated.
	if dur == math.MaxInt64 || s.AvailabilityWindow.End.Sub(start) < dur {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"event dates: duration %s exceeds window %s: %w",
			dur, s.AvailabilityWindow.End.Sub(start), ErrWindowTooShort,
		)
	}
	return start, start.Add(dur), nil
}
