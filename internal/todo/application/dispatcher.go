package application

import (
	"context"
	"log/slog"

	sharedApplication "github.com/felixgeelhaar/todolist/internal/shared/application"
	"github.com/felixgeelhaar/todolist/internal/shared/domain"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

// EventDispatcher publishes domain events after a mutation has been stored.
// Publishing is best effort: failures are logged and counted, never returned.
type EventDispatcher struct {
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.Metrics
}

// NewEventDispatcher creates an EventDispatcher. A nil publisher drops events.
func NewEventDispatcher(publisher eventbus.Publisher, logger *slog.Logger, metrics observability.Metrics) *EventDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &EventDispatcher{publisher: publisher, logger: logger, metrics: metrics}
}

// Dispatch stamps events with the request's tracing IDs and publishes them.
func (d *EventDispatcher) Dispatch(ctx context.Context, events ...domain.DomainEvent) {
	if d == nil || d.publisher == nil || len(events) == 0 {
		return
	}

	sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(ctx))

	for _, event := range events {
		tag := observability.T("routing_key", event.RoutingKey())
		if err := eventbus.PublishEvent(ctx, d.publisher, event); err != nil {
			d.metrics.Counter(observability.MetricEventsFailed, 1, tag)
			d.logger.WarnContext(ctx, "failed to publish event",
				"routing_key", event.RoutingKey(),
				"aggregate_id", event.AggregateID(),
				observability.ErrorKey, err,
			)
			continue
		}
		d.metrics.Counter(observability.MetricEventsPublished, 1, tag)
	}
}
