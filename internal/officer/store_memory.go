package officer

import (
	"context"
	"strings"
	"sync"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"
)

// InMemoryStore keeps the roster in memory.
type InMemoryStore struct {
	mu       sync.RWMutex
	officers map[id.OfficerID]*Officer
	byBuckle map[string]id.OfficerID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		officers: make(map[id.OfficerID]*Officer),
		byBuckle: make(map[string]id.OfficerID),
	}
}

func buckleKey(buckleNumber string) string {
	return strings.ToLower(strings.TrimSpace(buckleNumber))
}

func (s *InMemoryStore) Create(_ context.Context, officer *Officer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := buckleKey(officer.BuckleNumber)
	if _, exists := s.byBuckle[key]; exists {
		return sentinel.ErrConflict
	}

	clone := *officer
	s.officers[officer.ID] = &clone
	s.byBuckle[key] = officer.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, officerID id.OfficerID) (*Officer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	officer, ok := s.officers[officerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *officer
	return &clone, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Officer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Officer, 0, len(s.officers))
	for _, officer := range s.officers {
		clone := *officer
		out = append(out, &clone)
	}
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, officerID id.OfficerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	officer, ok := s.officers[officerID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byBuckle, buckleKey(officer.BuckleNumber))
	delete(s.officers, officerID)
	return nil
}
