package checkin

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// InMemoryStore keeps check-in logs in memory, newest first on read.
type InMemoryStore struct {
	mu   sync.RWMutex
	logs []*CheckInLog
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, log *CheckInLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *log
	s.logs = append(s.logs, &clone)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*CheckInLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(*CheckInLog) bool { return true }), nil
}

func (s *InMemoryStore) ListByIdentityNumber(_ context.Context, identityNumber string) ([]*CheckInLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(log *CheckInLog) bool {
		return strings.EqualFold(log.IdentityNumber, identityNumber)
	}), nil
}

func (s *InMemoryStore) snapshot(keep func(*CheckInLog) bool) []*CheckInLog {
	out := make([]*CheckInLog, 0, len(s.logs))
	for _, log := range s.logs {
		if keep(log) {
			clone := *log
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CapturedAt.After(out[j].CapturedAt) })
	return out
}

// InMemoryAlertStore keeps SOS alerts in memory.
type InMemoryAlertStore struct {
	mu     sync.RWMutex
	alerts []*SOSAlert
}

func NewInMemoryAlertStore() *InMemoryAlertStore {
	return &InMemoryAlertStore{}
}

func (s *InMemoryAlertStore) Create(_ context.Context, alert *SOSAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *alert
	s.alerts = append(s.alerts, &clone)
	return nil
}

func (s *InMemoryAlertStore) List(_ context.Context) ([]*SOSAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*SOSAlert, 0, len(s.alerts))
	for _, alert := range s.alerts {
		clone := *alert
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RaisedAt.After(out[j].RaisedAt) })
	return out, nil
}
