package area

import (
	"context"
	"sync"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"
)

// InMemoryStore keeps restricted areas in memory.
type InMemoryStore struct {
	mu    sync.RWMutex
	areas map[id.AreaID]*RestrictedArea
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{areas: make(map[id.AreaID]*RestrictedArea)}
}

func (s *InMemoryStore) Create(_ context.Context, area *RestrictedArea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.areas[area.ID]; exists {
		return sentinel.ErrConflict
	}
	clone := *area
	s.areas[area.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, areaID id.AreaID) (*RestrictedArea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	area, ok := s.areas[areaID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *area
	return &clone, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*RestrictedArea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*RestrictedArea, 0, len(s.areas))
	for _, area := range s.areas {
		clone := *area
		out = append(out, &clone)
	}
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, areaID id.AreaID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.areas[areaID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.areas, areaID)
	return nil
}
