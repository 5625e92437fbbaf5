// README: Pricing model variants and the add-on catalog.
package pricing

import "rentgo/internal/types"

// Kind tags the pricing model variant attached to a vehicle.
type Kind string

const (
	// KindPerDay charges a flat rate for every started rental day.
	KindPerDay Kind = "per_day"
	// KindFixedKm charges one package price with a bundled distance
	// allowance. The per-km overage rate is shown to the renter but never
	// billed here: there is no odometer feed to bill against.
	KindFixedKm Kind = "fixed_km"
)

type PerDay struct {
	Rate types.Money `json:"rate"`
}

type FixedKmPackage struct {
	Rate        types.Money `json:"rate"`
	IncludedKm  int64       `json:"included_km"`
	PerKmCharge types.Money `json:"per_km_charge"`
}

// Model is a tagged variant: exactly one payload pointer matches Kind.
type Model struct {
	Kind    Kind            `json:"kind"`
	PerDay  *PerDay         `json:"per_day,omitempty"`
	FixedKm *FixedKmPackage `json:"fixed_km,omitempty"`
}

// PerDayModel is a convenience constructor.
func PerDayModel(rate types.Money) Model {
	return Model{Kind: KindPerDay, PerDay: &PerDay{Rate: rate}}
}

// FixedKmModel is a convenience constructor.
func FixedKmModel(rate types.Money, includedKm int64, perKm types.Money) Model {
	return Model{Kind: KindFixedKm, FixedKm: &FixedKmPackage{Rate: rate, IncludedKm: includedKm, PerKmCharge: perKm}}
}

// Valid reports whether the payload matches the kind tag.
func (m Model) Valid() bool {
	switch m.Kind {
	case KindPerDay:
		return m.PerDay != nil
	case KindFixedKm:
		return m.FixedKm != nil
	}
	return false
}

// AddOn is an optional priced extra attached to a booking.
type AddOn string

const (
	AddOnInsurance AddOn = "insurance"
	AddOnGPS       AddOn = "gps"
	AddOnChildSeat AddOn = "child_seat"
	AddOnCaretaker AddOn = "caretaker"
	AddOnHelmet    AddOn = "helmet"
)

// Catalog maps add-on tags to their per-day rate.
type Catalog map[AddOn]types.Money

// DefaultCatalog is the marketplace-wide add-on price list.
func DefaultCatalog() Catalog {
	return Catalog{
		AddOnInsurance: types.Money{Amount: 300, Currency: "INR"},
		AddOnGPS:       types.Money{Amount: 150, Currency: "INR"},
		AddOnChildSeat: types.Money{Amount: 100, Currency: "INR"},
		AddOnCaretaker: types.Money{Amount: 800, Currency: "INR"},
		AddOnHelmet:    types.Money{Amount: 50, Currency: "INR"},
	}
}
