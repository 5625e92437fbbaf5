// README: Advisory service: orchestrates schema-constrained generation for
// recommendation, listing synthesis, mechanic dispatch, and route briefing.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rentgo/internal/ai"
	"rentgo/internal/logger"
)

// ErrInvalidSelection: the model named a mechanic id that is not in the
// caller's candidate list. The model is not trusted to invent identifiers.
var ErrInvalidSelection = errors.New("model selected unknown candidate")

// ErrNoCandidates: mechanic matching needs a non-empty shortlist.
var ErrNoCandidates = errors.New("empty candidate list")

type Service struct {
	client   *ai.Client
	cache    *redis.Client
	cacheTTL time.Duration
	log      logger.ILogger
}

// NewService builds the advisor. cache may be nil; route briefings are then
// generated fresh on every call.
func NewService(client *ai.Client, cache *redis.Client, cacheTTL time.Duration, log logger.ILogger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}
	return &Service{client: client, cache: cache, cacheTTL: cacheTTL, log: log}
}

// RecommendVehicle suggests one vehicle category for the trip.
func (s *Service) RecommendVehicle(ctx context.Context, prefs TripPreferences) (*Recommendation, error) {
	input := prefsInput(prefs)
	out, err := s.client.Generate(ctx, buildRecommendPrompt(prefs), input, prefsInputSchema, recommendationSchema)
	if err != nil {
		return nil, err
	}
	var rec Recommendation
	if err := ai.Decode(out, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrSchemaViolation, err)
	}
	return &rec, nil
}

// GenerateListing synthesizes one suggestion-card listing for the trip.
func (s *Service) GenerateListing(ctx context.Context, prefs TripPreferences) (*VehicleListing, error) {
	input := prefsInput(prefs)
	out, err := s.client.Generate(ctx, buildListingPrompt(prefs), input, prefsInputSchema, listingSchema)
	if err != nil {
		return nil, err
	}
	var listing VehicleListing
	if err := ai.Decode(out, &listing); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrSchemaViolation, err)
	}
	return &listing, nil
}

// MatchMechanic picks one mechanic from the caller's shortlist. The model's
// choice is verified against the original candidate set before it is
// returned: an id outside the list is ErrInvalidSelection, not a match.
func (s *Service) MatchMechanic(ctx context.Context, location, problem string, candidates []MechanicCandidate) (*MechanicMatch, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	input := map[string]any{"location": location, "problem": problem}
	out, err := s.client.Generate(ctx, buildMechanicPrompt(location, problem, candidates), input, mechanicInputSchema, mechanicMatchSchema)
	if err != nil {
		return nil, err
	}
	var match MechanicMatch
	if err := ai.Decode(out, &match); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrSchemaViolation, err)
	}
	for _, c := range candidates {
		if c.ID == match.SelectedID {
			match.Candidate = c
			return &match, nil
		}
	}
	s.log.Warning("mechanic selection outside candidate list",
		logger.String("selected_id", match.SelectedID))
	return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, match.SelectedID)
}

// PlanRoute returns a briefing for the pickup-to-dropoff trip. Briefings are
// cached by endpoint pair; the cache is best effort and never fails a call.
func (s *Service) PlanRoute(ctx context.Context, pickup, dropoff string) (*RoutePlan, error) {
	if cached := s.cachedRoute(ctx, pickup, dropoff); cached != nil {
		return cached, nil
	}

	input := map[string]any{"pickup": pickup, "dropoff": dropoff}
	out, err := s.client.Generate(ctx, buildRoutePrompt(pickup, dropoff), input, routeInputSchema, routePlanSchema)
	if err != nil {
		return nil, err
	}
	var plan RoutePlan
	if err := ai.Decode(out, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrSchemaViolation, err)
	}
	plan.Pickup = pickup
	plan.Dropoff = dropoff

	s.storeRoute(ctx, pickup, dropoff, &plan)
	return &plan, nil
}

// GenerateAvatar produces a profile image as a data URI.
func (s *Service) GenerateAvatar(ctx context.Context, description string) (string, error) {
	if description == "" {
		return "", fmt.Errorf("%w: empty description", ai.ErrInvalidInput)
	}
	return s.client.GenerateImage(ctx, buildAvatarPrompt(description))
}

func prefsInput(prefs TripPreferences) map[string]any {
	input := map[string]any{
		"num_passengers": float64(prefs.NumPassengers),
		"luggage_count":  float64(prefs.LuggageCount),
		"trip_kind":      prefs.TripKind,
		"duration_days":  float64(prefs.DurationDays),
	}
	if prefs.Budget != "" {
		input["budget"] = prefs.Budget
	}
	return input
}

func routeCacheKey(pickup, dropoff string) string {
	return "advisor:route:" + pickup + "|" + dropoff
}

func (s *Service) cachedRoute(ctx context.Context, pickup, dropoff string) *RoutePlan {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, routeCacheKey(pickup, dropoff)).Bytes()
	if err != nil {
		return nil
	}
	var plan RoutePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil
	}
	return &plan
}

func (s *Service) storeRoute(ctx context.Context, pickup, dropoff string, plan *RoutePlan) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, routeCacheKey(pickup, dropoff), raw, s.cacheTTL).Err(); err != nil {
		s.log.Warning("route cache write failed", logger.Error(err))
	}
}
