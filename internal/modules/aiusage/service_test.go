// README: Quota tests (lazy reset and boundary logic) against the memory store.
package aiusage

import (
	"context"
	"testing"
	"time"
)

func TestUseTokenNewRenter(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.UseToken(ctx, 7); err != nil {
		t.Fatalf("UseToken for new renter: %v", err)
	}
	if got := store.rows[7].remaining; got != DefaultTokens-1 {
		t.Fatalf("remaining = %d, want %d", got, DefaultTokens-1)
	}
}

func TestUseTokenExhausted(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := store.EnsureRenter(ctx, 7); err != nil {
		t.Fatal(err)
	}
	store.rows[7].remaining = 0

	if err := svc.UseToken(ctx, 7); err != ErrInsufficientTokens {
		t.Fatalf("error = %v, want ErrInsufficientTokens", err)
	}
}

func TestUseTokenCrossMonthReset(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store)
	ctx := context.Background()

	// Exhausted allowance from a past month.
	store.rows[7] = &memRow{remaining: 0, month: "2000-01"}

	if err := svc.UseToken(ctx, 7); err != nil {
		t.Fatalf("UseToken after cross-month reset: %v", err)
	}
	if got := store.rows[7].remaining; got != DefaultTokens-1 {
		t.Fatalf("remaining = %d, want %d", got, DefaultTokens-1)
	}
}

func TestUseTokenCountsDown(t *testing.T) {
	store := NewMemStore()
	store.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	svc := NewService(store)
	ctx := context.Background()

	for i := 0; i < DefaultTokens; i++ {
		if err := svc.UseToken(ctx, 42); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if err := svc.UseToken(ctx, 42); err != ErrInsufficientTokens {
		t.Fatalf("call past quota: error = %v, want ErrInsufficientTokens", err)
	}
}
