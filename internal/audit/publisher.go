package audit

import (
	"context"
	"log/slog"
	"time"
)

// Publisher hands events to the background worker through a bounded channel.
// Emission never blocks a request: when the inbox is full the event is
// dropped and counted, because an audit backlog must not take down check-in
// submission.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{inbox: make(chan Event, buffer), logger: logger}
}

// Inbox exposes the channel the worker consumes.
func (p *Publisher) Inbox() <-chan Event { return p.inbox }

// Emit enqueues an event, stamping the timestamp if unset.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		droppedEvents.Inc()
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"kind", event.Kind,
			"subject", event.Subject,
		)
	}
}
