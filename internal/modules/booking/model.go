// README: Reservation aggregate and admission error set.
package booking

import (
	"errors"
	"time"

	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrSlotConflict    = errors.New("vehicle already booked for this window")
	ErrNotFound        = errors.New("reservation not found")
	ErrAlreadyClosed   = errors.New("reservation already cancelled")
	ErrBadRequest      = errors.New("bad request")
	// ErrPersistence wraps store I/O failures; callers treat it as transient.
	ErrPersistence = errors.New("persistence unavailable")
)

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Extras carries the category-specific booking fields: pickup/dropoff
// points for cars, a group name for bus charters, a caretaker flag for
// accessibility vehicles. Unused fields stay zero.
type Extras struct {
	PickupPoint     string `json:"pickup_point,omitempty"`
	DropoffPoint    string `json:"dropoff_point,omitempty"`
	GroupName       string `json:"group_name,omitempty"`
	CaretakerNeeded bool   `json:"caretaker_needed,omitempty"`
}

// Reservation is created only by the admission controller and is immutable
// afterwards, except for cancellation.
type Reservation struct {
	ID          int64             `json:"id"`
	VehicleID   int64             `json:"vehicle_id"`
	RenterID    int64             `json:"renter_id"`
	Range       types.DateRange   `json:"range"`
	AddOns      []pricing.AddOn   `json:"addons,omitempty"`
	TotalCost   types.Money       `json:"total_cost"`
	Extras      Extras            `json:"extras"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
}

// Active reports whether the reservation still blocks its window.
func (r *Reservation) Active() bool {
	return r.Status == ReservationActive
}
