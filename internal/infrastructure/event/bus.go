package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/opsportal/backend/internal/domain/shared"
)

// InMemoryEventBus implements shared.EventBus with synchronous in-memory pub/sub
type InMemoryEventBus struct {
	mu        sync.RWMutex
	handlers  map[string][]shared.EventHandler
	catchAll  []shared.EventHandler
	logger    *zap.Logger
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger,
	}
}

// Publish dispatches events to all matching handlers synchronously.
// A failing handler is logged and does not stop the remaining handlers.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, evt := range events {
		b.mu.RLock()
		handlers := make([]shared.EventHandler, 0, len(b.handlers[evt.EventType()])+len(b.catchAll))
		handlers = append(handlers, b.handlers[evt.EventType()]...)
		handlers = append(handlers, b.catchAll...)
		b.mu.RUnlock()

		for _, handler := range handlers {
			if err := b.dispatch(ctx, handler, evt); err != nil {
				b.logger.Error("handler failed to process event",
					zap.String("event_type", evt.EventType()),
					zap.String("event_id", evt.EventID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler for one event type
func (b *InMemoryEventBus) Subscribe(eventType string, handler shared.EventHandler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
	b.logger.Debug("handler subscribed", zap.String("event_type", eventType))
}

// SubscribeAll registers a handler for every event type
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) {
	b.mu.Lock()
	b.catchAll = append(b.catchAll, handler)
	b.mu.Unlock()
	b.logger.Debug("catch-all handler subscribed")
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, evt shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", evt.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler(ctx, evt)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
