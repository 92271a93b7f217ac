package domain

// Result is the ranked answer for one solve call.
type Result struct {
	EventLocation       string               `json:"event_location"`
	EventDates          Period               `json:"event_dates"`
	EventSpan           Period               `json:"event_span"`
	TotalCO2            float64              `json:"total_co2"`
	AverageTravelHours  float64              `json:"average_travel_hours"`
	MedianTravelHours   float64              `json:"median_travel_hours"`
	MaxTravelHours      float64              `json:"max_travel_hours"`
	MinTravelHours      float64              `json:"min_travel_hours"`
	GiniTravelHours     float64              `json:"gini_travel_hours"`
	AttendeeTravelHours map[string]float64   `json:"attendee_travel_hours"`
	AttendeeTravelCO2   map[string]float64   `json:"attendee_travel_co2"`
	Itineraries         map[string]Itinerary `json:"itineraries"`
	SelectedScore       float64              `json:"selected_score"`
	ScoreBreakdown      map[Metric]float64   `json:"score_breakdown"`
	Alternatives        []Alternative        `json:"alternatives,omitempty"`
}

// Period is a UTC interval rendered as ISO-8601 strings ending in "Z".
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Itinerary is the one-way route an office takes to the host.
type Itinerary struct {
	Stops              []string `json:"stops"`
	TotalDurationHours float64  `json:"total_duration_hours"`
	TotalCO2           float64  `json:"total_co2"`
	Legs               []Leg    `json:"legs"`
}

// Alternative summarizes a runner-up host without itineraries.
type Alternative struct {
	EventLocation string             `json:"event_location"`
	Score         float64            `json:"score"`
	Metrics       map[Metric]float64 `json:"metrics"`
}
