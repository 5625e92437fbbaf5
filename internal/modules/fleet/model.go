// README: Vehicle aggregate, category tags, and per-category detail payloads.
package fleet

import (
	"time"

	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

type Category string

const (
	CategoryCar         Category = "car"
	CategoryBike        Category = "bike"
	CategoryScooter     Category = "scooter"
	CategoryBus         Category = "bus"
	CategoryTruck       Category = "truck"
	CategorySpecialized Category = "specialized"
)

// Categories lists every valid category tag.
var Categories = []Category{
	CategoryCar, CategoryBike, CategoryScooter,
	CategoryBus, CategoryTruck, CategorySpecialized,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusRented      Status = "rented"
	StatusMaintenance Status = "maintenance"
)

type CarDetails struct {
	Seats        int    `json:"seats"`
	LuggageCount int    `json:"luggage_count"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuel_type"`
}

type BikeDetails struct {
	EngineCC       int  `json:"engine_cc"`
	HelmetIncluded bool `json:"helmet_included"`
}

type ScooterDetails struct {
	EngineCC   int `json:"engine_cc"`
	MaxRangeKm int `json:"max_range_km"`
}

type BusDetails struct {
	Seats        int  `json:"seats"`
	LuggageCount int  `json:"luggage_count"`
	Sleeper      bool `json:"sleeper"`
}

type TruckDetails struct {
	PayloadTonnes float64 `json:"payload_tonnes"`
	Axles         int     `json:"axles"`
}

type SpecializedDetails struct {
	Seats            int  `json:"seats"`
	WheelchairAccess bool `json:"wheelchair_access"`
	CaretakerTrained bool `json:"caretaker_trained"`
}

// Details is a tagged payload: exactly one pointer is set, matching the
// vehicle's Category. Consumers switch on Category, not on nil checks.
type Details struct {
	Car         *CarDetails         `json:"car,omitempty"`
	Bike        *BikeDetails        `json:"bike,omitempty"`
	Scooter     *ScooterDetails     `json:"scooter,omitempty"`
	Bus         *BusDetails         `json:"bus,omitempty"`
	Truck       *TruckDetails       `json:"truck,omitempty"`
	Specialized *SpecializedDetails `json:"specialized,omitempty"`
}

// Matches reports whether the populated payload agrees with the category tag.
func (d Details) Matches(c Category) bool {
	switch c {
	case CategoryCar:
		return d.Car != nil
	case CategoryBike:
		return d.Bike != nil
	case CategoryScooter:
		return d.Scooter != nil
	case CategoryBus:
		return d.Bus != nil
	case CategoryTruck:
		return d.Truck != nil
	case CategorySpecialized:
		return d.Specialized != nil
	}
	return false
}

// Occupant is set while a vehicle is rented: who holds it and for which window.
type Occupant struct {
	RenterID int64           `json:"renter_id"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Window   types.DateRange `json:"window"`
}

// Vehicle is owned by a partner and carries one pricing model.
// Vehicles are never hard-deleted; retired units go to maintenance.
type Vehicle struct {
	ID        int64         `json:"id"`
	PartnerID int64         `json:"partner_id"`
	Name      string        `json:"name"`
	Category  Category      `json:"category"`
	Details   Details       `json:"details"`
	Pricing   pricing.Model `json:"pricing"`
	Status    Status        `json:"status"`
	Occupant  *Occupant     `json:"occupant,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
