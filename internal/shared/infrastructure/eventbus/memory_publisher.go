package eventbus

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryPublisher records published messages in process.
type MemoryPublisher struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

// Message is one recorded publish call.
type Message struct {
	RoutingKey string
	Payload    []byte
}

// NewMemoryPublisher creates an empty MemoryPublisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// FailWith makes subsequent Publish calls return err. Pass nil to recover.
func (p *MemoryPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Publish records the message.
func (p *MemoryPublisher) Publish(_ context.Context, routingKey string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, Message{RoutingKey: routingKey, Payload: append([]byte(nil), payload...)})
	return nil
}

// Messages returns a copy of the recorded messages.
func (p *MemoryPublisher) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Message(nil), p.messages...)
}

// Envelopes decodes the recorded messages.
func (p *MemoryPublisher) Envelopes() ([]Envelope, error) {
	msgs := p.Messages()
	envs := make([]Envelope, 0, len(msgs))
	for _, m := range msgs {
		var env Envelope
		if err := json.Unmarshal(m.Payload, &env); err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// Close is a no-op.
func (p *MemoryPublisher) Close() error {
	return nil
}
