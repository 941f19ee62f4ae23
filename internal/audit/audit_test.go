package audit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestWorkerPersistsEmittedEvents(t *testing.T) {
	store := NewInMemoryStore()
	publisher := NewPublisher(8, discardLogger())
	worker := NewWorker(store, nil, publisher.Inbox(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	event := NewEvent(KindCheckIn, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	event.Subject = "MH-EXT-2025-0042"
	publisher.Emit(ctx, event)

	require.Eventually(t, func() bool {
		recent, err := store.ListRecent(context.Background(), 10)
		return err == nil && len(recent) == 1
	}, time.Second, 10*time.Millisecond)

	recent, err := store.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, KindCheckIn, recent[0].Kind)
	assert.Equal(t, "MH-EXT-2025-0042", recent[0].Subject)
	assert.NotEmpty(t, recent[0].ID)

	cancel()
	<-done
}

func TestEmitStampsTimestampWhenUnset(t *testing.T) {
	publisher := NewPublisher(1, discardLogger())

	publisher.Emit(context.Background(), Event{Kind: KindSOS})

	select {
	case got := <-publisher.Inbox():
		assert.False(t, got.Timestamp.IsZero())
	default:
		t.Fatal("expected an event in the inbox")
	}
}

func TestEmitDropsWhenInboxFull(t *testing.T) {
	publisher := NewPublisher(1, discardLogger())

	publisher.Emit(context.Background(), NewEvent(KindLogin, time.Now()))
	// Inbox capacity is 1; the second emit must not block.
	publisher.Emit(context.Background(), NewEvent(KindLogin, time.Now()))

	assert.Len(t, publisher.Inbox(), 1)
}

func TestListRecentNewestFirst(t *testing.T) {
	store := NewInMemoryStore()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		event := NewEvent(KindLogin, base.Add(time.Duration(i)*time.Minute))
		event.Detail = string(rune('a' + i))
		require.NoError(t, store.Append(context.Background(), event))
	}

	recent, err := store.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Detail)
	assert.Equal(t, "b", recent[1].Detail)
}
