// README: Reservation admission controller; the only writer of booking state.
package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rentgo/internal/logger"
	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

type Service struct {
	vehicles     VehicleStore
	reservations ReservationStore
	pricing      *pricing.Service
	avail        *AvailabilityIndex
	locks        *vehicleLocks
	log          logger.ILogger

	// now is swappable so tests can pin "today".
	now func() time.Time
}

func NewService(vehicles VehicleStore, reservations ReservationStore, pricingSvc *pricing.Service, log logger.ILogger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		vehicles:     vehicles,
		reservations: reservations,
		pricing:      pricingSvc,
		avail:        NewAvailabilityIndex(vehicles, reservations),
		locks:        newVehicleLocks(),
		log:          log,
		now:          time.Now,
	}
}

type AdmitCommand struct {
	VehicleID   int64
	RenterID    int64
	RenterName  string
	RenterPhone string
	Range       types.DateRange
	AddOns      []pricing.AddOn
	Extras      Extras
}

// Admit atomically validates, prices, and records a reservation.
//
// Admission is serialized per vehicle id, and availability is re-checked
// inside the critical section right before the insert: a check shown to
// the user during form-fill says nothing about the state at commit time.
// Two concurrent overlapping attempts yield one success and one
// ErrSlotConflict.
func (s *Service) Admit(ctx context.Context, cmd AdmitCommand) (*Reservation, error) {
	if cmd.VehicleID == 0 || cmd.RenterID == 0 {
		return nil, ErrBadRequest
	}

	mu := s.locks.forVehicle(cmd.VehicleID)
	mu.Lock()
	defer mu.Unlock()

	vehicle, err := s.vehicles.GetVehicle(ctx, cmd.VehicleID)
	if err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	free, err := s.avail.IsAvailable(ctx, cmd.VehicleID, cmd.Range)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotConflict
	}

	cost, err := s.pricing.Quote(vehicle.Pricing, cmd.Range, cmd.AddOns)
	if err != nil {
		return nil, err
	}

	res := &Reservation{
		VehicleID: cmd.VehicleID,
		RenterID:  cmd.RenterID,
		Range:     cmd.Range,
		AddOns:    cmd.AddOns,
		TotalCost: cost,
		Extras:    cmd.Extras,
		Status:    ReservationActive,
		CreatedAt: s.now().UTC(),
	}
	if err := s.reservations.InsertReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// A vehicle is Rented exactly while today falls inside an active
	// reservation window; future bookings leave it Available for now.
	if cmd.Range.Contains(s.now()) {
		vehicle.Status = fleet.StatusRented
		vehicle.Occupant = &fleet.Occupant{
			RenterID: cmd.RenterID,
			Name:     cmd.RenterName,
			Phone:    cmd.RenterPhone,
			Window:   cmd.Range,
		}
		if err := s.vehicles.UpdateVehicle(ctx, vehicle); err != nil {
			// All-or-nothing: roll the reservation back rather than leave
			// a booked slot on a vehicle that was never marked.
			if delErr := s.reservations.DeleteReservation(ctx, res.ID); delErr != nil {
				s.log.Error("compensation delete failed",
					logger.Int64("reservation_id", res.ID), logger.Error(delErr))
			}
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	s.log.Info("reservation admitted",
		logger.Int64("reservation_id", res.ID),
		logger.Int64("vehicle_id", res.VehicleID),
		logger.Int64("renter_id", res.RenterID),
		logger.Int64("total_cost", res.TotalCost.Amount),
	)
	return res, nil
}

// Cancel releases a reservation's window. The UI has always shown the
// button; this is its backing operation.
func (s *Service) Cancel(ctx context.Context, reservationID int64) error {
	res, err := s.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	mu := s.locks.forVehicle(res.VehicleID)
	mu.Lock()
	defer mu.Unlock()

	// Re-read under the lock; a concurrent cancel may have won.
	res, err = s.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !res.Active() {
		return ErrAlreadyClosed
	}

	now := s.now().UTC()
	res.Status = ReservationCancelled
	res.CancelledAt = &now
	if err := s.reservations.UpdateReservation(ctx, res); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if res.Range.Contains(now) {
		vehicle, err := s.vehicles.GetVehicle(ctx, res.VehicleID)
		if err == nil && vehicle.Status == fleet.StatusRented {
			vehicle.Status = fleet.StatusAvailable
			vehicle.Occupant = nil
			if err := s.vehicles.UpdateVehicle(ctx, vehicle); err != nil {
				return fmt.Errorf("%w: %v", ErrPersistence, err)
			}
		}
	}

	s.log.Info("reservation cancelled", logger.Int64("reservation_id", reservationID))
	return nil
}

// CheckAvailability is the read-only pre-check surfaced during form-fill.
// A true answer here is advisory; Admit re-checks at commit time.
func (s *Service) CheckAvailability(ctx context.Context, vehicleID int64, r types.DateRange) (bool, error) {
	return s.avail.IsAvailable(ctx, vehicleID, r)
}

// PreviewCost re-quotes without reserving anything.
func (s *Service) PreviewCost(ctx context.Context, vehicleID int64, r types.DateRange, addons []pricing.AddOn) (types.Money, error) {
	vehicle, err := s.vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			return types.Money{}, ErrVehicleNotFound
		}
		return types.Money{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return s.pricing.Quote(vehicle.Pricing, r, addons)
}

func (s *Service) Get(ctx context.Context, id int64) (*Reservation, error) {
	return s.reservations.GetReservation(ctx, id)
}

func (s *Service) ListForVehicle(ctx context.Context, vehicleID int64) ([]*Reservation, error) {
	return s.reservations.ListReservations(ctx, vehicleID)
}

// vehicleLocks hands out one mutex per vehicle id.
type vehicleLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func newVehicleLocks() *vehicleLocks {
	return &vehicleLocks{m: make(map[int64]*sync.Mutex)}
}

func (l *vehicleLocks) forVehicle(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.m[id]; ok {
		return m
	}
	m := &sync.Mutex{}
	l.m[id] = m
	return m
}
