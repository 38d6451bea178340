package events

import "context"

// Publisher emits domain events to whatever broker is configured.
// Publishing is best-effort: services log failures but never roll back
// the state change that triggered the event.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// NoopPublisher drops every event. Used when Kafka is disabled and in
// tests.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}
