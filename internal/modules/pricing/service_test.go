package pricing

import (
	"errors"
	"testing"
	"time"

	"rentgo/internal/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inr(amount int64) types.Money {
	return types.Money{Amount: amount, Currency: "INR"}
}

func TestQuotePerDay(t *testing.T) {
	perDay := PerDayModel(inr(2500))

	tests := []struct {
		name    string
		r       types.DateRange
		addons  []AddOn
		want    int64
		wantErr error
	}{
		{
			name: "three days no addons",
			r:    types.NewDateRange(date(2024, 1, 1), date(2024, 1, 4)),
			want: 7500,
		},
		{
			name: "exactly one day",
			r:    types.NewDateRange(date(2024, 1, 1), date(2024, 1, 2)),
			want: 2500,
		},
		{
			name:    "start equals end",
			r:       types.NewDateRange(date(2024, 1, 1), date(2024, 1, 1)),
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "end before start",
			r:       types.NewDateRange(date(2024, 1, 4), date(2024, 1, 1)),
			wantErr: ErrInvalidDateRange,
		},
		{
			name:   "insurance and gps for two days",
			r:      types.NewDateRange(date(2024, 1, 1), date(2024, 1, 3)),
			addons: []AddOn{AddOnInsurance, AddOnGPS},
			// 2*2500 + 2*300 + 2*150
			want: 5900,
		},
		{
			name:    "unknown addon rejected",
			r:       types.NewDateRange(date(2024, 1, 1), date(2024, 1, 3)),
			addons:  []AddOn{AddOn("jetpack")},
			wantErr: ErrInvalidAddon,
		},
	}

	s := NewService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Quote(perDay, tt.r, tt.addons)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Quote() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}
			if got.Amount != tt.want {
				t.Errorf("Quote() = %d, want %d", got.Amount, tt.want)
			}
			if got.Currency != "INR" {
				t.Errorf("Quote() currency = %q, want INR", got.Currency)
			}
		})
	}
}

func TestQuoteFixedKmIsFlat(t *testing.T) {
	pkg := FixedKmModel(inr(6000), 300, inr(12))
	s := NewService(nil)

	ranges := []types.DateRange{
		types.NewDateRange(date(2024, 1, 1), date(2024, 1, 2)),
		types.NewDateRange(date(2024, 1, 1), date(2024, 1, 4)),
		types.NewDateRange(date(2024, 1, 1), date(2024, 1, 31)),
	}
	for _, r := range ranges {
		got, err := s.Quote(pkg, r, nil)
		if err != nil {
			t.Fatalf("Quote() error = %v", err)
		}
		if got.Amount != 6000 {
			t.Errorf("Quote() for %d days = %d, want flat 6000", r.Days(), got.Amount)
		}
	}
}

func TestQuoteFixedKmAddonsStillPerDay(t *testing.T) {
	pkg := FixedKmModel(inr(6000), 300, inr(12))
	s := NewService(nil)

	r := types.NewDateRange(date(2024, 1, 1), date(2024, 1, 4))
	got, err := s.Quote(pkg, r, []AddOn{AddOnCaretaker})
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	// 6000 flat + 3 * 800 caretaker.
	if got.Amount != 8400 {
		t.Errorf("Quote() = %d, want 8400", got.Amount)
	}
}

func TestQuoteDeterministic(t *testing.T) {
	s := NewService(nil)
	perDay := PerDayModel(inr(1999))
	r := types.NewDateRange(date(2024, 3, 10), date(2024, 3, 15))
	addons := []AddOn{AddOnGPS, AddOnInsurance}

	first, err := s.Quote(perDay, r, addons)
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := s.Quote(perDay, r, addons)
		if err != nil {
			t.Fatalf("Quote() error = %v", err)
		}
		if again != first {
			t.Fatalf("Quote() not deterministic: %v vs %v", again, first)
		}
	}
}

func TestQuoteInvalidModel(t *testing.T) {
	s := NewService(nil)
	r := types.NewDateRange(date(2024, 1, 1), date(2024, 1, 2))
	if _, err := s.Quote(Model{Kind: KindPerDay}, r, nil); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("Quote() error = %v, want ErrInvalidModel", err)
	}
}
