// README: Typed requests and responses for the advisory flows.
package advisor

// TripPreferences is the renter-supplied input for recommendation and
// listing generation.
type TripPreferences struct {
	NumPassengers int    `json:"num_passengers"`
	LuggageCount  int    `json:"luggage_count"`
	TripKind      string `json:"trip_kind"` // city, highway, hills, cargo
	DurationDays  int    `json:"duration_days"`
	Budget        string `json:"budget,omitempty"` // low, mid, high
}

// Recommendation names one vehicle category and why.
type Recommendation struct {
	Type      string `json:"type"`
	Reasoning string `json:"reasoning"`
}

// VehicleListing is a fully synthetic listing the UI can render as a
// suggestion card; it never enters the real catalog.
type VehicleListing struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Seats       int      `json:"seats"`
	RatePerDay  int64    `json:"rate_per_day"`
	Highlights  []string `json:"highlights"`
	Description string   `json:"description"`
}

// MechanicCandidate is one entry of the caller-provided shortlist. The
// model chooses among these and only these.
type MechanicCandidate struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Phone     string  `json:"phone"`
	Rating    float64 `json:"rating"`
	Specialty string  `json:"specialty"`
}

// MechanicMatch is the validated selection.
type MechanicMatch struct {
	SelectedID string            `json:"selected_id"`
	Reason     string            `json:"reason"`
	Candidate  MechanicCandidate `json:"candidate"`
}

// RouteLeg is one suggested route option.
type RouteLeg struct {
	Summary       string  `json:"summary"`
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
}

// RoutePlan is the briefing for a pickup-to-dropoff trip.
type RoutePlan struct {
	Pickup         string     `json:"pickup"`
	Dropoff        string     `json:"dropoff"`
	Routes         []RouteLeg `json:"routes"`
	FuelStops      []string   `json:"fuel_stops"`
	FoodStops      []string   `json:"food_stops"`
	RoadConditions string     `json:"road_conditions"`
}
