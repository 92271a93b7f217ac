package domain

// DefaultMode is assumed for legs whose travel mode is not recorded.
const DefaultMode = "flight"

// Immutable directed travel edge between two named locations.
// Duration and emissions are one-way, per passenger.
type Leg struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DurationHours float64 `json:"duration_hours"`
	CO2Kg         float64 `json:"co2_kg"`
	Mode          string  `json:"mode"`
}
