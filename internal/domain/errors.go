package domain

import "errors"

var (
	// Malformed attendees, availability window or event duration.
	ErrInvalidScenario = errors.New("invalid scenario")
	// Negative weights, or no positive weight, at route or host level.
	ErrInvalidWeights = errors.New("invalid weights")
	// An office cannot reach a host within the search limits.
	ErrNoFeasibleRoute = errors.New("no feasible route")
	// No candidate host can be reached by every attending office.
	ErrNoFeasibleHost = errors.New("no feasible meeting location")
	// The event does not fit inside the availability window.
	ErrWindowTooShort = errors.New("event duration does not fit within availability window")
)
