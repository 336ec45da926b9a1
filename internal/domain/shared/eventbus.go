package shared

import "context"

// EventHandler processes a single domain event
type EventHandler func(ctx context.Context, event DomainEvent) error

// EventBus publishes domain events to subscribed handlers
type EventBus interface {
	Publish(ctx context.Context, events ...DomainEvent) error
	Subscribe(eventType string, handler EventHandler)
	SubscribeAll(handler EventHandler)
}
