package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/shared"
)

// MaterialUsage is an append-only record of material consumed for an
// order. Like movements, it does not adjust the stock balance.
type MaterialUsage struct {
	shared.BaseEntity
	ItemID    uuid.UUID
	OrderID   uuid.UUID
	UsageDate time.Time
	Quantity  decimal.Decimal
	Note      string
}

// NewMaterialUsage creates a new material usage record
func NewMaterialUsage(itemID, orderID uuid.UUID, usageDate time.Time, quantity decimal.Decimal, note string) (*MaterialUsage, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item ID cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order ID cannot be empty")
	}
	if usageDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Usage date cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	return &MaterialUsage{
		BaseEntity: shared.NewBaseEntity(),
		ItemID:     itemID,
		OrderID:    orderID,
		UsageDate:  usageDate,
		Quantity:   quantity,
		Note:       note,
	}, nil
}
