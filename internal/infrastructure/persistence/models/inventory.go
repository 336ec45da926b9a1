package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/inventory"
)

// InventoryItemModel is the persistence model for inventory.Item
type InventoryItemModel struct {
	AggregateModel
	SKU              string           `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name             string           `gorm:"type:varchar(255);not null"`
	Category         string           `gorm:"type:varchar(128);index"`
	BaseUnit         string           `gorm:"type:varchar(16);not null"`
	PackageSize      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PackageUnitLabel string           `gorm:"type:varchar(64)"`
	DefaultUnitPrice decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	QuantityOnHand   decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Location         string           `gorm:"type:varchar(255)"`
	Notes            string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the model to a domain inventory item
func (m *InventoryItemModel) ToDomain() *inventory.Item {
	return &inventory.Item{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SKU:               m.SKU,
		Name:              m.Name,
		Category:          m.Category,
		BaseUnit:          inventory.BaseUnit(m.BaseUnit),
		PackageSize:       m.PackageSize,
		PackageUnitLabel:  m.PackageUnitLabel,
		DefaultUnitPrice:  m.DefaultUnitPrice,
		QuantityOnHand:    m.QuantityOnHand,
		Location:          m.Location,
		Notes:             m.Notes,
	}
}

// InventoryItemModelFromDomain builds a persistence model from a domain inventory item
func InventoryItemModelFromDomain(item *inventory.Item) *InventoryItemModel {
	m := &InventoryItemModel{
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
	}
	m.FromDomainAggregateRoot(item.BaseAggregateRoot)
	return m
}

// InventoryMovementModel is the persistence model for inventory.Movement
type InventoryMovementModel struct {
	BaseModel
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Direction string    `gorm:"type:varchar(8);not null"`
	Quantity  int       `gorm:"not null"`
	Reason    string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}

// ToDomain converts the model to a domain movement
func (m *InventoryMovementModel) ToDomain() *inventory.Movement {
	return &inventory.Movement{
		BaseEntity: m.BaseModel.ToDomain(),
		ItemID:     m.ItemID,
		Direction:  inventory.Direction(m.Direction),
		Quantity:   m.Quantity,
		Reason:     m.Reason,
	}
}

// InventoryMovementModelFromDomain builds a persistence model from a domain movement
func InventoryMovementModelFromDomain(mv *inventory.Movement) *InventoryMovementModel {
	m := &InventoryMovementModel{
		ItemID:    mv.ItemID,
		Direction: string(mv.Direction),
		Quantity:  mv.Quantity,
		Reason:    mv.Reason,
	}
	m.FromDomainBaseEntity(mv.BaseEntity)
	return m
}

// MaterialUsageModel is the persistence model for inventory.MaterialUsage
type MaterialUsageModel struct {
	BaseModel
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsageDate time.Time       `gorm:"type:date;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (MaterialUsageModel) TableName() string {
	return "material_usages"
}

// ToDomain converts the model to a domain material usage
func (m *MaterialUsageModel) ToDomain() *inventory.MaterialUsage {
	return &inventory.MaterialUsage{
		BaseEntity: m.BaseModel.ToDomain(),
		ItemID:     m.ItemID,
		OrderID:    m.OrderID,
		UsageDate:  m.UsageDate,
		Quantity:   m.Quantity,
		Note:       m.Note,
	}
}

// MaterialUsageModelFromDomain builds a persistence model from a domain material usage
func MaterialUsageModelFromDomain(u *inventory.MaterialUsage) *MaterialUsageModel {
	m := &MaterialUsageModel{
		ItemID:    u.ItemID,
		OrderID:   u.OrderID,
		UsageDate: u.UsageDate,
		Quantity:  u.Quantity,
		Note:      u.Note,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}
