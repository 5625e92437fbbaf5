// README: Dev seeding tool; applies the schema and loads a demo fleet.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"rentgo/internal/config"
	"rentgo/internal/infra"
	"rentgo/internal/logger"
	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

func main() {
	migration := flag.String("migration", "migrations/0001_init.sql", "schema file to apply, empty to skip")
	truncate := flag.Bool("truncate", false, "truncate existing data first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	appLog := logger.New(cfg.Logger.Namespace + "-seed")

	db, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if *migration != "" {
		sql, err := os.ReadFile(*migration)
		if err != nil {
			log.Fatal(err)
		}
		for _, stmt := range splitSQL(string(sql)) {
			if _, err := db.Exec(ctx, stmt); err != nil {
				log.Fatalf("apply migration: %v", err)
			}
		}
		appLog.Info("migration applied", logger.String("path", *migration))
	}

	if *truncate {
		if _, err := db.Exec(ctx, "TRUNCATE TABLE reservations, vehicles, ai_usage CASCADE"); err != nil {
			log.Fatalf("truncate: %v", err)
		}
		appLog.Info("tables truncated")
	}

	svc := fleet.NewService(fleet.NewPGStore(db), appLog)
	for _, v := range demoFleet() {
		id, err := svc.AddVehicle(ctx, v)
		if err != nil {
			log.Fatalf("seed %q: %v", v.Name, err)
		}
		appLog.Info("seeded vehicle", logger.Int64("id", id), logger.String("name", v.Name))
	}
}

func inr(amount int64) types.Money {
	return types.Money{Amount: amount, Currency: "INR"}
}

func demoFleet() []*fleet.Vehicle {
	return []*fleet.Vehicle{
		{
			PartnerID: 1, Name: "Maruti Swift VXI", Category: fleet.CategoryCar,
			Details: fleet.Details{Car: &fleet.CarDetails{Seats: 5, LuggageCount: 2, Transmission: "manual", FuelType: "petrol"}},
			Pricing: pricing.PerDayModel(inr(2200)),
		},
		{
			PartnerID: 1, Name: "Toyota Innova Crysta", Category: fleet.CategoryCar,
			Details: fleet.Details{Car: &fleet.CarDetails{Seats: 7, LuggageCount: 4, Transmission: "automatic", FuelType: "diesel"}},
			Pricing: pricing.PerDayModel(inr(4500)),
		},
		{
			PartnerID: 2, Name: "Royal Enfield Classic 350", Category: fleet.CategoryBike,
			Details: fleet.Details{Bike: &fleet.BikeDetails{EngineCC: 349, HelmetIncluded: true}},
			Pricing: pricing.PerDayModel(inr(1100)),
		},
		{
			PartnerID: 2, Name: "Honda Activa 6G", Category: fleet.CategoryScooter,
			Details: fleet.Details{Scooter: &fleet.ScooterDetails{EngineCC: 109, MaxRangeKm: 220}},
			Pricing: pricing.PerDayModel(inr(500)),
		},
		{
			PartnerID: 3, Name: "Volvo 9600 Sleeper Coach", Category: fleet.CategoryBus,
			Details: fleet.Details{Bus: &fleet.BusDetails{Seats: 40, LuggageCount: 40, Sleeper: true}},
			Pricing: pricing.FixedKmModel(inr(28000), 500, inr(45)),
		},
		{
			PartnerID: 3, Name: "Tata 407 Pickup", Category: fleet.CategoryTruck,
			Details: fleet.Details{Truck: &fleet.TruckDetails{PayloadTonnes: 2.5, Axles: 2}},
			Pricing: pricing.FixedKmModel(inr(6000), 300, inr(12)),
		},
		{
			PartnerID: 4, Name: "Wheelchair Access Eeco", Category: fleet.CategorySpecialized,
			Details: fleet.Details{Specialized: &fleet.SpecializedDetails{Seats: 4, WheelchairAccess: true, CaretakerTrained: true}},
			Pricing: pricing.PerDayModel(inr(3200)),
		},
	}
}

func splitSQL(input string) []string {
	var kept []string
	for _, line := range strings.Split(input, "\n") {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "--") {
			continue
		}
		kept = append(kept, line)
	}
	var stmts []string
	for _, p := range strings.Split(strings.Join(kept, "\n"), ";") {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
