package inventory

import (
	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/shared"
)

// Direction of a stock movement
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// IsValid checks if the direction is a valid Direction
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Movement is an append-only log entry describing stock coming in or
// going out. Recording one does not change the item's QuantityOnHand.
type Movement struct {
	shared.BaseEntity
	ItemID    uuid.UUID
	Direction Direction
	Quantity  int
	Reason    string
}

// NewMovement creates a new movement log entry
func NewMovement(itemID uuid.UUID, direction Direction, quantity int, reason string) (*Movement, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item ID cannot be empty")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Direction must be 'in' or 'out'")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	return &Movement{
		BaseEntity: shared.NewBaseEntity(),
		ItemID:     itemID,
		Direction:  direction,
		Quantity:   quantity,
		Reason:     reason,
	}, nil
}
