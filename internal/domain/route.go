package domain

// Route is an ordered simple path of legs with cached totals.
// A zero-leg Route represents an office co-located with the host.
type Route struct {
	Legs          []Leg   `json:"legs"`
	TotalDuration float64 `json:"total_duration"`
	TotalCO2      float64 `json:"total_co2"`
}

// NewRoute sums leg costs into a Route. The legs slice is retained.
func NewRoute(legs []Leg) Route {
	r := Route{Legs: legs}
	for _, l := range legs {
		r.TotalDuration += l.DurationHours
		r.TotalCO2 += l.CO2Kg
	}
	return r
}

func (r Route) Hops() int { return len(r.Legs) }

// Return the visited node sequence, origin first. Empty for a zero-leg route.
func (r Route) Stops() []string {
	if len(r.Legs) == 0 {
		return []string{}
	}
	stops := make([]string, 0, len(r.Legs)+1)
	for _, l := range r.Legs {
		stops = append(stops, l.Origin)
	}
	return append(stops, r.Legs[len(r.Legs)-1].Destination)
}

// Dominates reports whether r is no worse than other in both duration and
// emissions and strictly better in at least one.
func (r Route) Dominates(other Route) bool {
	if r.TotalDuration > other.TotalDuration || r.TotalCO2 > other.TotalCO2 {
		return false
	}
	return r.TotalDuration < other.TotalDuration || r.TotalCO2 < other.TotalCO2
}

// Preference weights used to scalarize a route's duration and emissions.
type RoutePreference struct {
	DurationWeight float64
	EmissionWeight float64
}

// DefaultRoutePreference favours travel time slightly over emissions.
func DefaultRoutePreference() RoutePreference {
	return RoutePreference{DurationWeight: 0.6, EmissionWeight: 0.4}
}

// Bounds on a single route search.
type SearchLimits struct {
	MaxHops   int
	MaxRoutes int
}

func DefaultSearchLimits() SearchLimits {
	return SearchLimits{MaxHops: 4, MaxRoutes: 20}
}
