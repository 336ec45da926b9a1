package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/shared"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(uuid.New(), "Kitchen refit", "")
	require.NoError(t, err)
	return o
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to matching subscriber", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		o := newTestOrder(t)

		var received []shared.DomainEvent
		bus.Subscribe(order.EventOrderCreated, func(ctx context.Context, evt shared.DomainEvent) error {
			received = append(received, evt)
			return nil
		})

		require.NoError(t, bus.Publish(ctx, o.GetDomainEvents()...))
		require.Len(t, received, 1)
		assert.Equal(t, order.EventOrderCreated, received[0].EventType())
	})

	t.Run("does not dispatch to other event types", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		o := newTestOrder(t)

		called := false
		bus.Subscribe(order.EventOrderLockToggled, func(ctx context.Context, evt shared.DomainEvent) error {
			called = true
			return nil
		})

		require.NoError(t, bus.Publish(ctx, o.GetDomainEvents()...))
		assert.False(t, called)
	})

	t.Run("catch-all handler sees every event", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		o := newTestOrder(t)

		var types []string
		bus.SubscribeAll(func(ctx context.Context, evt shared.DomainEvent) error {
			types = append(types, evt.EventType())
			return nil
		})

		require.NoError(t, bus.Publish(ctx, o.GetDomainEvents()...))
		assert.Equal(t, []string{order.EventOrderCreated}, types)
	})

	t.Run("failing handler does not block the rest", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		o := newTestOrder(t)

		second := false
		bus.Subscribe(order.EventOrderCreated, func(ctx context.Context, evt shared.DomainEvent) error {
			return errors.New("boom")
		})
		bus.Subscribe(order.EventOrderCreated, func(ctx context.Context, evt shared.DomainEvent) error {
			second = true
			return nil
		})

		require.NoError(t, bus.Publish(ctx, o.GetDomainEvents()...))
		assert.True(t, second)
	})

	t.Run("recovers from panicking handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		o := newTestOrder(t)

		bus.Subscribe(order.EventOrderCreated, func(ctx context.Context, evt shared.DomainEvent) error {
			panic("handler bug")
		})

		assert.NotPanics(t, func() {
			_ = bus.Publish(ctx, o.GetDomainEvents()...)
		})
	})
}
