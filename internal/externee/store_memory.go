package externee

import (
	"context"
	"strings"
	"sync"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"
)

// InMemoryStore keeps externment records in memory. Suitable for development
// and tests.
type InMemoryStore struct {
	mu         sync.RWMutex
	records    map[id.ExterneeID]*ExternmentRecord
	byIdentity map[string]id.ExterneeID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records:    make(map[id.ExterneeID]*ExternmentRecord),
		byIdentity: make(map[string]id.ExterneeID),
	}
}

func identityKey(identityNumber string) string {
	return strings.ToLower(strings.TrimSpace(identityNumber))
}

func (s *InMemoryStore) Create(_ context.Context, record *ExternmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := identityKey(record.IdentityNumber)
	if _, exists := s.byIdentity[key]; exists {
		return sentinel.ErrConflict
	}
	if _, exists := s.records[record.ID]; exists {
		return sentinel.ErrConflict
	}

	clone := *record
	s.records[record.ID] = &clone
	s.byIdentity[key] = record.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, recordID id.ExterneeID) (*ExternmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[recordID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (s *InMemoryStore) FindByIdentityNumber(_ context.Context, identityNumber string) (*ExternmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recordID, ok := s.byIdentity[identityKey(identityNumber)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *s.records[recordID]
	return &clone, nil
}

func (s *InMemoryStore) ExistsByAreaID(_ context.Context, areaID id.AreaID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.RestrictedAreaID == areaID {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*ExternmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ExternmentRecord, 0, len(s.records))
	for _, record := range s.records {
		clone := *record
		out = append(out, &clone)
	}
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, recordID id.ExterneeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[recordID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byIdentity, identityKey(record.IdentityNumber))
	delete(s.records, recordID)
	return nil
}
