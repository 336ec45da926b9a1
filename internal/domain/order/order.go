package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/domain/shared/valueobject"
)

// Item represents a line item in an order
type Item struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Title     string
	Quantity  decimal.Decimal // decimal(10,2), zero allowed
	UnitPrice decimal.Decimal // decimal(12,2)
	Amount    decimal.Decimal // Quantity * UnitPrice
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem creates a new order line item
func NewItem(orderID uuid.UUID, title string, quantity decimal.Decimal, unitPrice valueobject.Money, comment string) (*Item, error) {
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item title cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity cannot be negative")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unit price cannot be negative")
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		OrderID:   orderID,
		Title:     title,
		Quantity:  quantity,
		UnitPrice: unitPrice.Amount(),
		Amount:    quantity.Mul(unitPrice.Amount()),
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the item's editable fields and recalculates the amount
func (i *Item) Update(title string, quantity, unitPrice decimal.Decimal, comment string) error {
	if title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Item title cannot be empty")
	}
	if quantity.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Quantity cannot be negative")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Unit price cannot be negative")
	}

	i.Title = title
	i.Quantity = quantity
	i.UnitPrice = unitPrice
	i.Amount = quantity.Mul(unitPrice)
	i.Comment = comment
	i.UpdatedAt = time.Now()
	return nil
}

// LineTotal returns Quantity * UnitPrice as money
func (i *Item) LineTotal() valueobject.Money {
	return valueobject.NewMoneyFromDecimal(i.Amount)
}

// Order is the aggregate root for a client order with its line items.
// TotalAmount is always the sum of the item amounts; margin previews from
// the calculator are never persisted here.
type Order struct {
	shared.BaseAggregateRoot
	ClientID    uuid.UUID
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
	TotalAmount valueobject.Money
	IsLocked    bool
	Items       []Item
}

// NewOrder creates a new order for a client
func NewOrder(clientID uuid.UUID, title string, status Status) (*Order, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Client ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order title cannot be empty")
	}
	if status == "" {
		status = DefaultStatus
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		Title:             title,
		Status:            status,
		TotalAmount:       valueobject.Zero(),
		IsLocked:          false,
		Items:             make([]Item, 0),
	}

	o.AddDomainEvent(NewCreatedEvent(o))
	return o, nil
}

// CanEdit reports whether the actor may modify this order.
// Anyone can edit an unlocked order; locked orders need the override capability.
func (o *Order) CanEdit(actor shared.Actor) bool {
	return !o.IsLocked || actor.Can(shared.CapabilityOverrideLock)
}

// ToggleLock flips the lock flag. Only actors holding the override
// capability may do this; everyone else gets a permission error and no
// state change.
func (o *Order) ToggleLock(actor shared.Actor) error {
	if !actor.Can(shared.CapabilityOverrideLock) {
		return shared.ErrForbidden
	}
	o.IsLocked = !o.IsLocked
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewLockToggledEvent(o, actor))
	return nil
}

// UpdateDetails changes the order's descriptive fields
func (o *Order) UpdateDetails(actor shared.Actor, title, description string, dueDate *time.Time) error {
	if !o.CanEdit(actor) {
		return shared.ErrOrderLocked
	}
	if title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Order title cannot be empty")
	}
	o.Title = title
	o.Description = description
	o.DueDate = dueDate
	o.UpdatedAt = time.Now()
	return nil
}

// ChangeStatus moves the order to a new status through the given policy
func (o *Order) ChangeStatus(actor shared.Actor, to Status, policy TransitionPolicy) error {
	if !o.CanEdit(actor) {
		return shared.ErrOrderLocked
	}
	if to == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Status cannot be empty")
	}
	if err := policy.CanTransition(o.Status, to); err != nil {
		return err
	}
	from := o.Status
	o.Status = to
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewStatusChangedEvent(o, from, to))
	return nil
}

// AddItem appends a line item and recalculates the total
func (o *Order) AddItem(actor shared.Actor, title string, quantity decimal.Decimal, unitPrice valueobject.Money, comment string) (*Item, error) {
	if !o.CanEdit(actor) {
		return nil, shared.ErrOrderLocked
	}
	item, err := NewItem(o.ID, title, quantity, unitPrice, comment)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	return item, nil
}

// UpdateItem modifies an existing line item and recalculates the total
func (o *Order) UpdateItem(actor shared.Actor, itemID uuid.UUID, title string, quantity, unitPrice decimal.Decimal, comment string) error {
	if !o.CanEdit(actor) {
		return shared.ErrOrderLocked
	}
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			if err := o.Items[idx].Update(title, quantity, unitPrice, comment); err != nil {
				return err
			}
			o.recalculateTotal()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveItem deletes a line item and recalculates the total
func (o *Order) RemoveItem(actor shared.Actor, itemID uuid.UUID) error {
	if !o.CanEdit(actor) {
		return shared.ErrOrderLocked
	}
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.recalculateTotal()
			return nil
		}
	}
	return shared.ErrNotFound
}

// ItemInput carries the fields of one line in a replacement set.
// A nil ID means a new item; a set ID updates the existing row.
type ItemInput struct {
	ID        *uuid.UUID
	Title     string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Comment   string
}

// ReplaceItems swaps the full item set for the given one. Existing items
// named by ID are updated in place, new entries are appended, and items
// absent from the input are dropped. The total is recalculated once at
// the end. Persistence applies the same diff inside one transaction.
func (o *Order) ReplaceItems(actor shared.Actor, inputs []ItemInput) error {
	if !o.CanEdit(actor) {
		return shared.ErrOrderLocked
	}

	existing := make(map[uuid.UUID]*Item, len(o.Items))
	for idx := range o.Items {
		existing[o.Items[idx].ID] = &o.Items[idx]
	}

	next := make([]Item, 0, len(inputs))
	for _, in := range inputs {
		if in.ID != nil {
			item, ok := existing[*in.ID]
			if !ok {
				return shared.ErrNotFound
			}
			if err := item.Update(in.Title, in.Quantity, in.UnitPrice, in.Comment); err != nil {
				return err
			}
			next = append(next, *item)
			continue
		}
		item, err := NewItem(o.ID, in.Title, in.Quantity, valueobject.NewMoneyFromDecimal(in.UnitPrice), in.Comment)
		if err != nil {
			return err
		}
		next = append(next, *item)
	}

	o.Items = next
	o.recalculateTotal()
	o.AddDomainEvent(NewItemsReplacedEvent(o))
	return nil
}

// recalculateTotal derives TotalAmount from the current item set
func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for idx := range o.Items {
		total = total.Add(o.Items[idx].Amount)
	}
	o.TotalAmount = valueobject.NewMoneyFromDecimal(total)
	o.UpdatedAt = time.Now()
}

// IsDone reports whether the order reached the final catalogue status
func (o *Order) IsDone() bool {
	return o.Status == StatusDone
}
