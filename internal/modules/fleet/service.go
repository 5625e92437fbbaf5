// README: Fleet service: partner-facing catalog mutations and reads.
package fleet

import (
	"context"
	"errors"

	"rentgo/internal/logger"
)

var (
	ErrNotFound   = errors.New("vehicle not found")
	ErrBadVehicle = errors.New("invalid vehicle")
)

// Store is the persistence boundary for the vehicle catalog.
type Store interface {
	GetVehicle(ctx context.Context, id int64) (*Vehicle, error)
	ListVehicles(ctx context.Context) ([]*Vehicle, error)
	InsertVehicle(ctx context.Context, v *Vehicle) error
	UpdateVehicle(ctx context.Context, v *Vehicle) error
}

type Service struct {
	store Store
	log   logger.ILogger
}

func NewService(store Store, log logger.ILogger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, log: log}
}

// AddVehicle registers a new unit in a partner's fleet.
func (s *Service) AddVehicle(ctx context.Context, v *Vehicle) (int64, error) {
	if v.PartnerID == 0 || v.Name == "" {
		return 0, ErrBadVehicle
	}
	if !v.Category.Valid() || !v.Details.Matches(v.Category) {
		return 0, ErrBadVehicle
	}
	if !v.Pricing.Valid() {
		return 0, ErrBadVehicle
	}
	if v.Status == "" {
		v.Status = StatusAvailable
	}
	if err := s.store.InsertVehicle(ctx, v); err != nil {
		return 0, err
	}
	s.log.Info("vehicle added",
		logger.Int64("vehicle_id", v.ID),
		logger.Int64("partner_id", v.PartnerID),
		logger.String("category", string(v.Category)),
	)
	return v.ID, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Vehicle, error) {
	return s.store.GetVehicle(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Vehicle, error) {
	return s.store.ListVehicles(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, c Category) ([]*Vehicle, error) {
	if !c.Valid() {
		return nil, ErrBadVehicle
	}
	all, err := s.store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Vehicle, 0, len(all))
	for _, v := range all {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Service) ListByPartner(ctx context.Context, partnerID int64) ([]*Vehicle, error) {
	all, err := s.store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Vehicle, 0, len(all))
	for _, v := range all {
		if v.PartnerID == partnerID {
			out = append(out, v)
		}
	}
	return out, nil
}

// SetStatus is the fleet-edit path for status changes (e.g. into and out of
// maintenance). Rental status flips are owned by the booking admission
// controller, not by partners.
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) error {
	switch status {
	case StatusAvailable, StatusRented, StatusMaintenance:
	default:
		return ErrBadVehicle
	}
	v, err := s.store.GetVehicle(ctx, id)
	if err != nil {
		return err
	}
	v.Status = status
	if status != StatusRented {
		v.Occupant = nil
	}
	return s.store.UpdateVehicle(ctx, v)
}
