package aiusage

import (
	"context"
	"sync"
	"time"
)

type memRow struct {
	remaining int
	month     string
}

// MemStore is an in-memory Store for tests and local runs without postgres.
type MemStore struct {
	mu   sync.Mutex
	rows map[int64]*memRow
	// now is swappable so tests can cross month boundaries.
	now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[int64]*memRow), now: time.Now}
}

func (s *MemStore) UseToken(_ context.Context, renterID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[renterID]
	if !ok {
		return ErrInsufficientTokens
	}
	month := s.now().UTC().Format(monthKey)
	if row.month < month {
		row.remaining = DefaultTokens
		row.month = month
	}
	if row.remaining <= 0 {
		return ErrInsufficientTokens
	}
	row.remaining--
	return nil
}

func (s *MemStore) EnsureRenter(_ context.Context, renterID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[renterID]; ok {
		return nil
	}
	s.rows[renterID] = &memRow{
		remaining: DefaultTokens,
		month:     s.now().UTC().Format(monthKey),
	}
	return nil
}
