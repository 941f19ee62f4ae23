package auth

import (
	"context"
	"strings"
	"sync"

	"tadipaar/pkg/platform/sentinel"
)

// AccountStore persists login accounts. Stores return sentinel errors; the
// service translates them into domain errors.
type AccountStore interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// InMemoryAccountStore keeps accounts in a map, keyed by lowercased email.
type InMemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{accounts: make(map[string]*Account)}
}

func (s *InMemoryAccountStore) Create(_ context.Context, account *Account) error {
	key := strings.ToLower(account.Email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[key]; exists {
		return sentinel.ErrConflict
	}
	copied := *account
	s.accounts[key] = &copied
	return nil
}

func (s *InMemoryAccountStore) FindByEmail(_ context.Context, email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *account
	return &copied, nil
}
