// README: Pricing service computes booking cost quotes.
package pricing

import (
	"errors"
	"fmt"

	"rentgo/internal/types"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidAddon     = errors.New("unknown add-on")
	ErrInvalidModel     = errors.New("invalid pricing model")
)

type Service struct {
	catalog Catalog
}

// NewService builds a pricing service. A nil catalog falls back to the
// marketplace default price list.
func NewService(catalog Catalog) *Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Service{catalog: catalog}
}

// Catalog exposes the add-on price list (read-only use).
func (s *Service) Catalog() Catalog {
	return s.catalog
}

// Quote computes the total booking cost for a pricing model, a half-open
// date range, and a set of add-on tags. It is pure: the same inputs always
// produce the same amount, so a confirmation screen can re-quote and match.
//
// PerDay charges rate * days. FixedKm charges the package rate regardless
// of day count. Add-ons always charge per day. Unknown add-on tags are an
// error, never silently skipped.
func (s *Service) Quote(model Model, r types.DateRange, addons []AddOn) (types.Money, error) {
	if !r.Valid() {
		return types.Money{}, fmt.Errorf("%w: start %s, end %s", ErrInvalidDateRange,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
	if !model.Valid() {
		return types.Money{}, ErrInvalidModel
	}

	days := r.Days()

	var total types.Money
	switch model.Kind {
	case KindPerDay:
		total = model.PerDay.Rate.Mul(days)
	case KindFixedKm:
		total = model.FixedKm.Rate
	}

	for _, a := range addons {
		rate, ok := s.catalog[a]
		if !ok {
			return types.Money{}, fmt.Errorf("%w: %q", ErrInvalidAddon, a)
		}
		total = total.Add(rate.Mul(days))
	}
	return total, nil
}
