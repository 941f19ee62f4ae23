package checkin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tadipaar/pkg/platform/sentinel"

	platformredis "tadipaar/internal/platform/redis"
)

// Throttle limits each subject to one accepted hazari per UTC day.
type Throttle interface {
	// Reserve claims today's slot for the identity number. Returns
	// sentinel.ErrAlreadyUsed when the slot is taken.
	Reserve(ctx context.Context, identityNumber string, now time.Time) error
	// Release frees a slot claimed by Reserve. Callers release when the
	// submission fails after the claim, so the subject can retry today.
	Release(ctx context.Context, identityNumber string, now time.Time) error
}

func throttleKey(identityNumber string, now time.Time) string {
	return "hazari:" + now.UTC().Format("2006-01-02") + ":" + identityNumber
}

// untilNextUTCMidnight is the TTL for a daily slot: the slot frees itself
// when the UTC day rolls over.
func untilNextUTCMidnight(now time.Time) time.Duration {
	u := now.UTC()
	next := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(u)
}

// RedisThrottle claims daily slots with SET NX so concurrent submissions
// from the same subject race safely across instances.
type RedisThrottle struct {
	client *platformredis.Client
}

func NewRedisThrottle(client *platformredis.Client) *RedisThrottle {
	return &RedisThrottle{client: client}
}

func (t *RedisThrottle) Reserve(ctx context.Context, identityNumber string, now time.Time) error {
	ok, err := t.client.SetNX(ctx, throttleKey(identityNumber, now), "1", untilNextUTCMidnight(now)).Result()
	if err != nil {
		return fmt.Errorf("reserve daily slot: %w", err)
	}
	if !ok {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (t *RedisThrottle) Release(ctx context.Context, identityNumber string, now time.Time) error {
	if err := t.client.Del(ctx, throttleKey(identityNumber, now)).Err(); err != nil {
		return fmt.Errorf("release daily slot: %w", err)
	}
	return nil
}

// InMemoryThrottle is the single-instance fallback when Redis is not
// configured.
type InMemoryThrottle struct {
	mu    sync.Mutex
	slots map[string]time.Time
}

func NewInMemoryThrottle() *InMemoryThrottle {
	return &InMemoryThrottle{slots: make(map[string]time.Time)}
}

func (t *InMemoryThrottle) Reserve(_ context.Context, identityNumber string, now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := throttleKey(identityNumber, now)
	if expiry, taken := t.slots[key]; taken && now.Before(expiry) {
		return sentinel.ErrAlreadyUsed
	}
	t.slots[key] = now.Add(untilNextUTCMidnight(now))
	return nil
}

func (t *InMemoryThrottle) Release(_ context.Context, identityNumber string, now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.slots, throttleKey(identityNumber, now))
	return nil
}
