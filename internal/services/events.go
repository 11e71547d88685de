package services

import "context"

const EventMessageCreated = "message.created"

// EventPublisher emits domain events to an external stream.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }
