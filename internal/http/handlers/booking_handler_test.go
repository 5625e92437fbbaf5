// README: Handler tests over in-memory stores (admission, quoting, advisor quota).
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rentgo/internal/advisor"
	"rentgo/internal/ai"
	rhttp "rentgo/internal/http"
	"rentgo/internal/modules/aiusage"
	"rentgo/internal/modules/booking"
	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

// cannedModel is a test double for ai.Provider with a fixed reply.
type cannedModel struct{ reply string }

func (m *cannedModel) Complete(_ context.Context, _ string) (string, error) {
	return m.reply, nil
}

func (m *cannedModel) GenerateImage(_ context.Context, _ string) (string, []byte, error) {
	return "image/png", []byte{1}, nil
}

type testEnv struct {
	router   http.Handler
	vehicles *fleet.MemStore
	fleet    *fleet.Service
}

func buildTestEnv(t *testing.T, modelReply string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	vehicles := fleet.NewMemStore()
	fleetSvc := fleet.NewService(vehicles, nil)
	bookingSvc := booking.NewService(vehicles, booking.NewMemStore(), pricing.NewService(nil), nil)
	advisorSvc := advisor.NewService(ai.NewClient(&cannedModel{reply: modelReply}, time.Second, nil), nil, 0, nil)
	quota := aiusage.NewService(aiusage.NewMemStore())

	router := rhttp.NewRouter(rhttp.RouterDeps{
		Fleet:   fleetSvc,
		Booking: bookingSvc,
		Advisor: advisorSvc,
		Quota:   quota,
	})
	return &testEnv{router: router, vehicles: vehicles, fleet: fleetSvc}
}

func (e *testEnv) seedCar(t *testing.T, ratePerDay int64) int64 {
	t.Helper()
	id, err := e.fleet.AddVehicle(context.Background(), &fleet.Vehicle{
		PartnerID: 1,
		Name:      "Hyundai i20",
		Category:  fleet.CategoryCar,
		Details:   fleet.Details{Car: &fleet.CarDetails{Seats: 5, Transmission: "manual", FuelType: "petrol"}},
		Pricing:   pricing.PerDayModel(types.Money{Amount: ratePerDay, Currency: "INR"}),
	})
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return id
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func reservationBody(vehicleID int64, start, end string) map[string]any {
	return map[string]any{
		"vehicle_id":   vehicleID,
		"renter_id":    9,
		"renter_name":  "Asha",
		"renter_phone": "9999999999",
		"start_date":   start,
		"end_date":     end,
	}
}

func TestCreateReservation(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	w := doRequest(env.router, http.MethodPost, "/api/reservations",
		reservationBody(id, "2030-06-01", "2030-06-04"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res booking.Reservation
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.TotalCost.Amount != 7500 {
		t.Errorf("total = %d, want 7500", res.TotalCost.Amount)
	}
	if res.Status != booking.ReservationActive {
		t.Errorf("status = %q", res.Status)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	if w := doRequest(env.router, http.MethodPost, "/api/reservations",
		reservationBody(id, "2030-06-01", "2030-06-04")); w.Code != http.StatusCreated {
		t.Fatalf("first booking: %d", w.Code)
	}
	w := doRequest(env.router, http.MethodPost, "/api/reservations",
		reservationBody(id, "2030-06-03", "2030-06-06"))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestCreateReservationBadDates(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	tests := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2030-06-04", "2030-06-01"},
		{"start equals end", "2030-06-01", "2030-06-01"},
		{"garbage date", "june first", "2030-06-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(env.router, http.MethodPost, "/api/reservations",
				reservationBody(id, tt.start, tt.end))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCreateReservationUnknownVehicle(t *testing.T) {
	env := buildTestEnv(t, "")
	w := doRequest(env.router, http.MethodPost, "/api/reservations",
		reservationBody(777, "2030-06-01", "2030-06-04"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCancelReservation(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	w := doRequest(env.router, http.MethodPost, "/api/reservations",
		reservationBody(id, "2030-06-01", "2030-06-04"))
	var res booking.Reservation
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	path := fmt.Sprintf("/api/reservations/%d/cancel", res.ID)
	if w := doRequest(env.router, http.MethodPost, path, nil); w.Code != http.StatusOK {
		t.Fatalf("cancel: %d, body = %s", w.Code, w.Body.String())
	}
	// Window is free again.
	if w := doRequest(env.router, http.MethodPost, "/api/reservations",
		reservationBody(id, "2030-06-01", "2030-06-04")); w.Code != http.StatusCreated {
		t.Fatalf("rebook after cancel: %d", w.Code)
	}
	// Double cancel conflicts.
	if w := doRequest(env.router, http.MethodPost, path, nil); w.Code != http.StatusConflict {
		t.Fatalf("double cancel: %d, want 409", w.Code)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	path := fmt.Sprintf("/api/vehicles/%d/quote?start=2030-06-01&end=2030-06-04&addons=gps,insurance", id)
	w := doRequest(env.router, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		TotalCost types.Money `json:"total_cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	// 3 days * (2500 + 150 + 300)
	if resp.TotalCost.Amount != 8850 {
		t.Errorf("total = %d, want 8850", resp.TotalCost.Amount)
	}
}

func TestQuoteUnknownAddon(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	path := fmt.Sprintf("/api/vehicles/%d/quote?start=2030-06-01&end=2030-06-04&addons=jacuzzi", id)
	if w := doRequest(env.router, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	env := buildTestEnv(t, "")
	id := env.seedCar(t, 2500)

	path := fmt.Sprintf("/api/vehicles/%d/availability?start=2030-06-01&end=2030-06-04", id)
	w := doRequest(env.router, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Available {
		t.Error("expected vehicle to be available")
	}

	doRequest(env.router, http.MethodPost, "/api/reservations", reservationBody(id, "2030-06-01", "2030-06-04"))
	w = doRequest(env.router, http.MethodGet, path, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Available {
		t.Error("expected vehicle to be busy")
	}
}

func TestAdvisorRecommendEndpoint(t *testing.T) {
	env := buildTestEnv(t, `{"type": "bus", "reasoning": "large group"}`)

	w := doRequest(env.router, http.MethodPost, "/api/advisor/recommend", map[string]any{
		"renter_id": 9,
		"preferences": map[string]any{
			"num_passengers": 20, "trip_kind": "highway", "duration_days": 2,
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var rec advisor.Recommendation
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Type != "bus" {
		t.Errorf("type = %q", rec.Type)
	}
}

func TestAdvisorRejectsBadPreferences(t *testing.T) {
	env := buildTestEnv(t, `{"type": "car", "reasoning": "x"}`)

	w := doRequest(env.router, http.MethodPost, "/api/advisor/recommend", map[string]any{
		"renter_id": 9,
		"preferences": map[string]any{
			"num_passengers": 0, "trip_kind": "city", "duration_days": 1,
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAdvisorQuotaExhausted(t *testing.T) {
	env := buildTestEnv(t, `{"type": "car", "reasoning": "fits"}`)

	body := map[string]any{
		"renter_id": 9,
		"preferences": map[string]any{
			"num_passengers": 2, "trip_kind": "city", "duration_days": 1,
		},
	}
	for i := 0; i < aiusage.DefaultTokens; i++ {
		if w := doRequest(env.router, http.MethodPost, "/api/advisor/recommend", body); w.Code != http.StatusOK {
			t.Fatalf("call %d: %d", i, w.Code)
		}
	}
	if w := doRequest(env.router, http.MethodPost, "/api/advisor/recommend", body); w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
}

func TestAdvisorMechanicInvalidSelection(t *testing.T) {
	env := buildTestEnv(t, `{"selected_id": "m-999", "reason": "trust me"}`)

	w := doRequest(env.router, http.MethodPost, "/api/advisor/mechanic", map[string]any{
		"renter_id": 9,
		"location":  "Pune",
		"problem":   "flat tyre",
		"candidates": []map[string]any{
			{"id": "m-1", "name": "A", "location": "Pune", "rating": 4.0, "specialty": "car"},
			{"id": "m-2", "name": "B", "location": "Pune", "rating": 4.5, "specialty": "bike"},
		},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", w.Code, w.Body.String())
	}
}

func TestVehicleCRUDEndpoints(t *testing.T) {
	env := buildTestEnv(t, "")

	w := doRequest(env.router, http.MethodPost, "/api/partners/3/vehicles", map[string]any{
		"name":     "Tata Ace",
		"category": "truck",
		"details":  map[string]any{"truck": map[string]any{"payload_tonnes": 0.75, "axles": 2}},
		"pricing": map[string]any{
			"kind": "fixed_km",
			"fixed_km": map[string]any{
				"rate":          map[string]any{"amount": 6000, "currency": "INR"},
				"included_km":   300,
				"per_km_charge": map[string]any{"amount": 12, "currency": "INR"},
			},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		VehicleID int64 `json:"vehicle_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	w = doRequest(env.router, http.MethodGet, fmt.Sprintf("/api/vehicles/%d", created.VehicleID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d", w.Code)
	}
	var v fleet.Vehicle
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if v.Category != fleet.CategoryTruck || v.Pricing.Kind != pricing.KindFixedKm {
		t.Errorf("vehicle = %+v", v)
	}

	w = doRequest(env.router, http.MethodGet, "/api/vehicles?category=truck", nil)
	var listResp struct {
		Vehicles []*fleet.Vehicle `json:"vehicles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatal(err)
	}
	if len(listResp.Vehicles) != 1 {
		t.Errorf("trucks = %d, want 1", len(listResp.Vehicles))
	}

	w = doRequest(env.router, http.MethodPut, fmt.Sprintf("/api/vehicles/%d/status", created.VehicleID),
		map[string]any{"status": "maintenance"})
	if w.Code != http.StatusOK {
		t.Fatalf("set status: %d, body = %s", w.Code, w.Body.String())
	}
}
