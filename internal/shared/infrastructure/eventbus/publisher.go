package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felixgeelhaar/todolist/internal/shared/domain"
)

// Publisher defines the interface for publishing events to a message broker.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// Envelope is the wire format of a published domain event.
type Envelope struct {
	EventID       string          `json:"event_id"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
	Metadata      EnvelopeMeta    `json:"metadata"`
}

// EnvelopeMeta carries tracing IDs of the request that caused the event.
type EnvelopeMeta struct {
	CorrelationID string `json:"correlation_id,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
	Operation     string `json:"operation,omitempty"`
}

// NewEnvelope wraps a domain event. The event's exported fields become
// the payload.
func NewEnvelope(event domain.DomainEvent) (Envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", event.RoutingKey(), err)
	}
	meta := event.Metadata()
	return Envelope{
		EventID:       event.EventID().String(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		RoutingKey:    event.RoutingKey(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
		Metadata: EnvelopeMeta{
			CorrelationID: meta.CorrelationID,
			RequestID:     meta.RequestID,
			Operation:     meta.Operation,
		},
	}, nil
}

// PublishEvent encodes event as an Envelope and publishes it under its
// routing key.
func PublishEvent(ctx context.Context, p Publisher, event domain.DomainEvent) error {
	env, err := NewEnvelope(event)
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	return p.Publish(ctx, env.RoutingKey, body)
}
