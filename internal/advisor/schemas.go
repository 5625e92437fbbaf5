// README: Input/output schemas binding each advisory flow to the AI client.
package advisor

import "rentgo/internal/ai"

var vehicleTypes = []string{"car", "bike", "scooter", "bus", "truck", "specialized"}

var prefsInputSchema = ai.Schema{Fields: []ai.Field{
	{Name: "num_passengers", Type: ai.TypeInteger, Required: true, Min: ai.Float(1), Max: ai.Float(100)},
	{Name: "luggage_count", Type: ai.TypeInteger, Min: ai.Float(0)},
	{Name: "trip_kind", Type: ai.TypeString, Required: true, Enum: []string{"city", "highway", "hills", "cargo"}},
	{Name: "duration_days", Type: ai.TypeInteger, Required: true, Min: ai.Float(1)},
	{Name: "budget", Type: ai.TypeString, Enum: []string{"low", "mid", "high"}},
}}

var recommendationSchema = ai.Schema{Fields: []ai.Field{
	{Name: "type", Type: ai.TypeString, Required: true, Enum: vehicleTypes},
	{Name: "reasoning", Type: ai.TypeString, Required: true},
}}

var listingSchema = ai.Schema{Fields: []ai.Field{
	{Name: "name", Type: ai.TypeString, Required: true},
	{Name: "category", Type: ai.TypeString, Required: true, Enum: vehicleTypes},
	{Name: "seats", Type: ai.TypeInteger, Required: true, Min: ai.Float(1)},
	{Name: "rate_per_day", Type: ai.TypeInteger, Required: true, Min: ai.Float(0)},
	{Name: "highlights", Type: ai.TypeArray, Required: true, Items: &ai.Field{Type: ai.TypeString}},
	{Name: "description", Type: ai.TypeString, Required: true},
}}

var mechanicInputSchema = ai.Schema{Fields: []ai.Field{
	{Name: "location", Type: ai.TypeString, Required: true},
	{Name: "problem", Type: ai.TypeString, Required: true},
}}

var mechanicMatchSchema = ai.Schema{Fields: []ai.Field{
	{Name: "selected_id", Type: ai.TypeString, Required: true},
	{Name: "reason", Type: ai.TypeString, Required: true},
}}

var routeInputSchema = ai.Schema{Fields: []ai.Field{
	{Name: "pickup", Type: ai.TypeString, Required: true},
	{Name: "dropoff", Type: ai.TypeString, Required: true},
}}

var routePlanSchema = ai.Schema{Fields: []ai.Field{
	{Name: "routes", Type: ai.TypeArray, Required: true, Items: &ai.Field{
		Type: ai.TypeObject,
		Fields: []ai.Field{
			{Name: "summary", Type: ai.TypeString, Required: true},
			{Name: "distance_km", Type: ai.TypeNumber, Required: true, Min: ai.Float(0)},
			{Name: "duration_hours", Type: ai.TypeNumber, Required: true, Min: ai.Float(0)},
		},
	}},
	{Name: "fuel_stops", Type: ai.TypeArray, Required: true, Items: &ai.Field{Type: ai.TypeString}},
	{Name: "food_stops", Type: ai.TypeArray, Required: true, Items: &ai.Field{Type: ai.TypeString}},
	{Name: "road_conditions", Type: ai.TypeString, Required: true},
}}
