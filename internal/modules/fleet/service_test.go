package fleet

import (
	"context"
	"errors"
	"testing"

	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

func carVehicle(partnerID int64) *Vehicle {
	return &Vehicle{
		PartnerID: partnerID,
		Name:      "Swift Dzire",
		Category:  CategoryCar,
		Details: Details{
			Car: &CarDetails{Seats: 5, LuggageCount: 2, Transmission: "manual", FuelType: "petrol"},
		},
		Pricing: pricing.PerDayModel(types.Money{Amount: 2500, Currency: "INR"}),
	}
}

func TestAddVehicleAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemStore(), nil)

	id, err := svc.AddVehicle(ctx, carVehicle(7))
	if err != nil {
		t.Fatalf("AddVehicle: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusAvailable {
		t.Errorf("new vehicle status = %s, want available", got.Status)
	}
	if got.Category != CategoryCar || got.Details.Car == nil {
		t.Errorf("category payload not preserved: %+v", got)
	}
}

func TestAddVehicleValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemStore(), nil)

	tests := []struct {
		name   string
		mutate func(v *Vehicle)
	}{
		{"missing partner", func(v *Vehicle) { v.PartnerID = 0 }},
		{"missing name", func(v *Vehicle) { v.Name = "" }},
		{"bad category", func(v *Vehicle) { v.Category = "hovercraft" }},
		{"payload mismatch", func(v *Vehicle) { v.Details = Details{Bus: &BusDetails{Seats: 40}} }},
		{"no pricing payload", func(v *Vehicle) { v.Pricing = pricing.Model{Kind: pricing.KindPerDay} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := carVehicle(7)
			tt.mutate(v)
			if _, err := svc.AddVehicle(ctx, v); !errors.Is(err, ErrBadVehicle) {
				t.Errorf("AddVehicle() error = %v, want ErrBadVehicle", err)
			}
		})
	}
}

func TestListByPartnerAndCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemStore(), nil)

	if _, err := svc.AddVehicle(ctx, carVehicle(1)); err != nil {
		t.Fatal(err)
	}
	bus := &Vehicle{
		PartnerID: 2,
		Name:      "Volvo 9400",
		Category:  CategoryBus,
		Details:   Details{Bus: &BusDetails{Seats: 45, LuggageCount: 45, Sleeper: true}},
		Pricing:   pricing.FixedKmModel(types.Money{Amount: 6000, Currency: "INR"}, 300, types.Money{Amount: 12, Currency: "INR"}),
	}
	if _, err := svc.AddVehicle(ctx, bus); err != nil {
		t.Fatal(err)
	}

	buses, err := svc.ListByCategory(ctx, CategoryBus)
	if err != nil {
		t.Fatal(err)
	}
	if len(buses) != 1 || buses[0].Name != "Volvo 9400" {
		t.Errorf("ListByCategory(bus) = %+v", buses)
	}

	mine, err := svc.ListByPartner(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Category != CategoryCar {
		t.Errorf("ListByPartner(1) = %+v", mine)
	}
}

func TestSetStatusClearsOccupant(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	svc := NewService(store, nil)

	v := carVehicle(3)
	v.Status = StatusRented
	v.Occupant = &Occupant{RenterID: 9, Name: "Asha", Phone: "999"}
	id, err := svc.AddVehicle(ctx, v)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SetStatus(ctx, id, StatusMaintenance); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusMaintenance || got.Occupant != nil {
		t.Errorf("after SetStatus: status=%s occupant=%+v", got.Status, got.Occupant)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemStore(), nil)
	id, err := svc.AddVehicle(ctx, carVehicle(3))
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.SetStatus(ctx, id, "scrapped"); !errors.Is(err, ErrBadVehicle) {
		t.Errorf("SetStatus() error = %v, want ErrBadVehicle", err)
	}
}

func TestListByCategoryRejectsUnknownCategory(t *testing.T) {
	svc := NewService(NewMemStore(), nil)
	if _, err := svc.ListByCategory(context.Background(), "hovercraft"); !errors.Is(err, ErrBadVehicle) {
		t.Errorf("ListByCategory() error = %v, want ErrBadVehicle", err)
	}
}

func TestGetMissingVehicle(t *testing.T) {
	svc := NewService(NewMemStore(), nil)
	if _, err := svc.Get(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}
