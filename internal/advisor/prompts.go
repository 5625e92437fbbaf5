// README: Prompt templates for the advisory flows. Templating stays here;
// the ai package only owns the schema contract.
package advisor

import (
	"encoding/json"
	"fmt"
)

func buildRecommendPrompt(prefs TripPreferences) string {
	return fmt.Sprintf(`Role: You are the rental advisor for "RentGo", a multi-category
vehicle rental marketplace in India (cars, bikes, scooters, buses, trucks,
accessibility-focused vehicles).

Trip details:
- Passengers: %d
- Luggage pieces: %d
- Trip kind: %s
- Duration: %d days
- Budget: %s

Pick the single best vehicle category for this trip.

Output JSON Schema:
{
  "type": "car" | "bike" | "scooter" | "bus" | "truck" | "specialized",
  "reasoning": "string (one or two sentences, user facing)"
}
`, prefs.NumPassengers, prefs.LuggageCount, prefs.TripKind, prefs.DurationDays, orAny(prefs.Budget))
}

func buildListingPrompt(prefs TripPreferences) string {
	return fmt.Sprintf(`Role: You are the rental advisor for "RentGo". Invent one realistic
vehicle listing well suited to the trip below. It is a suggestion card,
not a real vehicle: plausible Indian-market model name, sensible seat
count, believable per-day rate in INR.

Trip details:
- Passengers: %d
- Luggage pieces: %d
- Trip kind: %s
- Duration: %d days
- Budget: %s

Output JSON Schema:
{
  "name": "string",
  "category": "car" | "bike" | "scooter" | "bus" | "truck" | "specialized",
  "seats": integer,
  "rate_per_day": integer (INR),
  "highlights": ["string"],
  "description": "string (one short paragraph)"
}
`, prefs.NumPassengers, prefs.LuggageCount, prefs.TripKind, prefs.DurationDays, orAny(prefs.Budget))
}

func buildMechanicPrompt(location, problem string, candidates []MechanicCandidate) string {
	// The full candidate list goes into the prompt; the model may only
	// echo back one of these ids.
	list, _ := json.MarshalIndent(candidates, "", "  ")
	return fmt.Sprintf(`Role: You are the roadside-assistance dispatcher for "RentGo".

A renter is stranded near: %s
Reported problem: %s

Candidate mechanics (choose EXACTLY ONE from this list, echo its "id"):
%s

RULES:
- "selected_id" MUST be the id of one candidate above. Never invent an id.
- Prefer matching specialty, then proximity, then rating.

Output JSON Schema:
{
  "selected_id": "string (an id from the candidate list)",
  "reason": "string (one sentence, user facing)"
}
`, location, problem, list)
}

func buildRoutePrompt(pickup, dropoff string) string {
	return fmt.Sprintf(`Role: You are the trip-briefing assistant for "RentGo".

Prepare a driving briefing from %q to %q in India. Suggest up to three
route options with rough distance and duration, recommended fuel stops,
good food stops, and a one-paragraph road-condition summary. Estimates
may be approximate; do not claim live traffic knowledge.

Output JSON Schema:
{
  "routes": [{"summary": "string", "distance_km": number, "duration_hours": number}],
  "fuel_stops": ["string"],
  "food_stops": ["string"],
  "road_conditions": "string"
}
`, pickup, dropoff)
}

func buildAvatarPrompt(description string) string {
	return fmt.Sprintf("A clean, friendly profile avatar illustration for a vehicle rental app user: %s. Flat style, centered, plain background.", description)
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}
