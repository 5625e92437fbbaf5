// README: Availability index: pure reads over the reservation set.
package booking

import (
	"context"
	"errors"
	"fmt"

	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

// VehicleStore is the slice of the persistence boundary the booking module
// reads vehicles through.
type VehicleStore interface {
	GetVehicle(ctx context.Context, id int64) (*fleet.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *fleet.Vehicle) error
}

// ReservationStore is the persistence boundary for reservations.
type ReservationStore interface {
	InsertReservation(ctx context.Context, r *Reservation) error
	ListReservations(ctx context.Context, vehicleID int64) ([]*Reservation, error)
	GetReservation(ctx context.Context, id int64) (*Reservation, error)
	UpdateReservation(ctx context.Context, r *Reservation) error
	DeleteReservation(ctx context.Context, id int64) error
}

// AvailabilityIndex answers "is vehicle V free for [s, e)?". It never
// mutates anything; only the admission controller writes.
type AvailabilityIndex struct {
	vehicles     VehicleStore
	reservations ReservationStore
}

func NewAvailabilityIndex(vehicles VehicleStore, reservations ReservationStore) *AvailabilityIndex {
	return &AvailabilityIndex{vehicles: vehicles, reservations: reservations}
}

// IsAvailable reports whether no active reservation for the vehicle
// overlaps the requested range. An unknown vehicle is reported as
// unavailable: the safe answer is the one that rejects a booking.
func (ix *AvailabilityIndex) IsAvailable(ctx context.Context, vehicleID int64, r types.DateRange) (bool, error) {
	if !r.Valid() {
		return false, fmt.Errorf("%w: start must precede end", pricing.ErrInvalidDateRange)
	}
	if _, err := ix.vehicles.GetVehicle(ctx, vehicleID); err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	existing, err := ix.reservations.ListReservations(ctx, vehicleID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	for _, res := range existing {
		if res.Active() && res.Range.Overlaps(r) {
			return false, nil
		}
	}
	return true, nil
}
