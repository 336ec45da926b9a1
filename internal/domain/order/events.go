package order

import (
	"github.com/opsportal/backend/internal/domain/shared"
)

// Event types for the order aggregate
const (
	EventOrderCreated       = "order.created"
	EventOrderLockToggled   = "order.lock_toggled"
	EventOrderItemsReplaced = "order.items_replaced"
	EventOrderStatusChanged = "order.status_changed"
)

const aggregateType = "Order"

// CreatedEvent is published when a new order is created
type CreatedEvent struct {
	shared.BaseDomainEvent
	Title  string `json:"title"`
	Status Status `json:"status"`
}

// NewCreatedEvent creates an order created event
func NewCreatedEvent(o *Order) *CreatedEvent {
	return &CreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, aggregateType, o.ID),
		Title:           o.Title,
		Status:          o.Status,
	}
}

// LockToggledEvent is published when the lock flag flips
type LockToggledEvent struct {
	shared.BaseDomainEvent
	Locked   bool   `json:"locked"`
	Username string `json:"username"`
}

// NewLockToggledEvent creates a lock toggled event
func NewLockToggledEvent(o *Order, actor shared.Actor) *LockToggledEvent {
	return &LockToggledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderLockToggled, aggregateType, o.ID),
		Locked:          o.IsLocked,
		Username:        actor.Username,
	}
}

// ItemsReplacedEvent is published after a line item replacement
type ItemsReplacedEvent struct {
	shared.BaseDomainEvent
	ItemCount   int    `json:"item_count"`
	TotalAmount string `json:"total_amount"`
}

// NewItemsReplacedEvent creates an items replaced event
func NewItemsReplacedEvent(o *Order) *ItemsReplacedEvent {
	return &ItemsReplacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderItemsReplaced, aggregateType, o.ID),
		ItemCount:       len(o.Items),
		TotalAmount:     o.TotalAmount.Amount().String(),
	}
}

// StatusChangedEvent is published when the order moves between statuses
type StatusChangedEvent struct {
	shared.BaseDomainEvent
	From Status `json:"from"`
	To   Status `json:"to"`
}

// NewStatusChangedEvent creates a status changed event
func NewStatusChangedEvent(o *Order, from, to Status) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderStatusChanged, aggregateType, o.ID),
		From:            from,
		To:              to,
	}
}
