// README: In-memory vehicle store for tests and the seed tool.
package fleet

import (
	"context"
	"sync"
	"time"
)

type MemStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Vehicle
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, items: make(map[int64]*Vehicle)}
}

func (s *MemStore) InsertVehicle(_ context.Context, v *Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == 0 {
		v.ID = s.nextID
		s.nextID++
	} else if v.ID >= s.nextID {
		s.nextID = v.ID + 1
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	cp := *v
	s.items[v.ID] = &cp
	return nil
}

func (s *MemStore) GetVehicle(_ context.Context, id int64) (*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *MemStore) ListVehicles(_ context.Context) ([]*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Vehicle, 0, len(s.items))
	for _, v := range s.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemStore) UpdateVehicle(_ context.Context, v *Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[v.ID]; !ok {
		return ErrNotFound
	}
	cp := *v
	s.items[v.ID] = &cp
	return nil
}
