package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/inventory"
)

// CreateItemRequest represents a request to create an inventory item
type CreateItemRequest struct {
	SKU              string           `json:"sku" binding:"required,min=1,max=100"`
	Name             string           `json:"name" binding:"required,min=1,max=200"`
	Category         string           `json:"category" binding:"max=100"`
	BaseUnit         string           `json:"base_unit" binding:"max=20"`
	PackageSize      *decimal.Decimal `json:"package_size"`
	PackageUnitLabel string           `json:"package_unit_label" binding:"max=50"`
	DefaultUnitPrice decimal.Decimal  `json:"default_unit_price"`
	QuantityOnHand   decimal.Decimal  `json:"quantity_on_hand"`
	Location         string           `json:"location" binding:"max=200"`
	Notes            string           `json:"notes" binding:"max=2000"`
}

// UpdateItemRequest represents a request to update an inventory item
type UpdateItemRequest struct {
	Name             string           `json:"name" binding:"required,min=1,max=200"`
	Category         string           `json:"category" binding:"max=100"`
	BaseUnit         string           `json:"base_unit" binding:"max=20"`
	PackageSize      *decimal.Decimal `json:"package_size"`
	PackageUnitLabel string           `json:"package_unit_label" binding:"max=50"`
	DefaultUnitPrice decimal.Decimal  `json:"default_unit_price"`
	QuantityOnHand   decimal.Decimal  `json:"quantity_on_hand"`
	Location         string           `json:"location" binding:"max=200"`
	Notes            string           `json:"notes" binding:"max=2000"`
}

// ItemListFilter represents filter options for the item list
type ItemListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ItemResponse represents an inventory item in API responses.
// PackageCount is nil when the item carries no package size.
type ItemResponse struct {
	ID               uuid.UUID        `json:"id"`
	SKU              string           `json:"sku"`
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	BaseUnit         string           `json:"base_unit"`
	PackageSize      *decimal.Decimal `json:"package_size"`
	PackageUnitLabel string           `json:"package_unit_label,omitempty"`
	PackageCount     *decimal.Decimal `json:"package_count"`
	DefaultUnitPrice decimal.Decimal  `json:"default_unit_price"`
	QuantityOnHand   decimal.Decimal  `json:"quantity_on_hand"`
	Location         string           `json:"location"`
	Notes            string           `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// RecordMovementRequest appends one entry to the movement log
type RecordMovementRequest struct {
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
	Direction string    `json:"direction" binding:"required,oneof=in out"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Reason    string    `json:"reason" binding:"max=500"`
}

// MovementListFilter represents filter options for the movement log
type MovementListFilter struct {
	ItemID   *uuid.UUID `form:"item_id"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MovementResponse represents a movement log entry in API responses
type MovementResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	Direction string    `json:"direction"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordUsageRequest records material consumed for an order
type RecordUsageRequest struct {
	ItemID    uuid.UUID       `json:"item_id" binding:"required"`
	OrderID   uuid.UUID       `json:"order_id" binding:"required"`
	UsageDate time.Time       `json:"usage_date" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note" binding:"max=500"`
}

// UsageResponse represents a material usage record in API responses
type UsageResponse struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    uuid.UUID       `json:"item_id"`
	OrderID   uuid.UUID       `json:"order_id"`
	UsageDate time.Time       `json:"usage_date"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(item *inventory.Item) ItemResponse {
	resp := ItemResponse{
		ID:               item.GetID(),
		SKU:              item.SKU,
		Name:             item.Name,
		Category:         item.Category,
		BaseUnit:         string(item.BaseUnit),
		PackageSize:      item.PackageSize,
		PackageUnitLabel: item.PackageUnitLabel,
		DefaultUnitPrice: item.DefaultUnitPrice,
		QuantityOnHand:   item.QuantityOnHand,
		Location:         item.Location,
		Notes:            item.Notes,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
	if count, ok := item.PackageCount(); ok {
		resp.PackageCount = &count
	}
	return resp
}

// ToMovementResponse converts a domain movement to a response DTO
func ToMovementResponse(m *inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Direction: string(m.Direction),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

// ToUsageResponse converts a domain usage record to a response DTO
func ToUsageResponse(u *inventory.MaterialUsage) UsageResponse {
	return UsageResponse{
		ID:        u.ID,
		ItemID:    u.ItemID,
		OrderID:   u.OrderID,
		UsageDate: u.UsageDate,
		Quantity:  u.Quantity,
		Note:      u.Note,
		CreatedAt: u.CreatedAt,
	}
}
