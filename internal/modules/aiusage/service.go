package aiusage

import "context"

// Store is the persistence contract for the allowance counters.
type Store interface {
	// UseToken atomically checks the monthly quota for renterID and deducts
	// one call. Returns ErrInsufficientTokens when the quota is exhausted
	// or the renter has no row yet.
	UseToken(ctx context.Context, renterID int64) error
	// EnsureRenter creates the allowance row if it does not exist.
	EnsureRenter(ctx context.Context, renterID int64) error
}

// Service orchestrates advisory-quota accounting.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// UseToken deducts one advisory call from the renter's monthly allowance.
// A renter absent from the table is initialised and the call is immediately
// consumed. Returns ErrInsufficientTokens when the month's quota is spent.
func (s *Service) UseToken(ctx context.Context, renterID int64) error {
	err := s.store.UseToken(ctx, renterID)
	if err != ErrInsufficientTokens {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureRenter(ctx, renterID); initErr != nil {
		return initErr
	}
	return s.store.UseToken(ctx, renterID)
}
