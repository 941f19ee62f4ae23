package audit

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	persistedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tadipaar_audit_events_persisted_total",
		Help: "Audit events persisted by the worker",
	})
	droppedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tadipaar_audit_events_dropped_total",
		Help: "Audit events dropped because the inbox was full",
	})
)

// Sink receives each event after it is persisted (e.g. the Kafka producer).
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker drains the publisher inbox into the store and optional sink.
type Worker struct {
	store  Store
	sink   Sink // may be nil
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

// Run consumes events until the context is canceled. Store failures are
// logged, not fatal: audit must degrade before it disrupts enforcement.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit append failed", "error", err, "kind", event.Kind)
				continue
			}
			persistedEvents.Inc()
			if w.sink != nil {
				if err := w.sink.Publish(ctx, event); err != nil {
					w.logger.ErrorContext(ctx, "audit sink publish failed", "error", err, "kind", event.Kind)
				}
			}
		}
	}
}
