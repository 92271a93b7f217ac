package dto

type SolveRequest struct {
	Scenario       ScenarioPayload    `json:"scenario"`
	DurationWeight *float64           `json:"duration_weight"`
	EmissionWeight *float64           `json:"emission_weight"`
	HostWeights    map[string]float64 `json:"host_weights"`
	Alternatives   int                `json:"alternatives"`
	MaxHops        int                `json:"max_hops"`
	MaxRoutes      int                `json:"max_routes"`
}

type HostsResponse struct {
	Hosts    []string `json:"hosts"`
	LegCount int      `json:"leg_count"`
}
