// README: In-memory reservation store for tests and the seed tool.
package booking

import (
	"context"
	"sync"
)

type MemStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Reservation
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, items: make(map[int64]*Reservation)}
}

func (s *MemStore) InsertReservation(_ context.Context, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.nextID
		s.nextID++
	}
	cp := *r
	s.items[r.ID] = &cp
	return nil
}

func (s *MemStore) GetReservation(_ context.Context, id int64) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *MemStore) ListReservations(_ context.Context, vehicleID int64) ([]*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Reservation
	for _, r := range s.items {
		if r.VehicleID == vehicleID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemStore) UpdateReservation(_ context.Context, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[r.ID]; !ok {
		return ErrNotFound
	}
	cp := *r
	s.items[r.ID] = &cp
	return nil
}

func (s *MemStore) DeleteReservation(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}
