package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/shared/valueobject"
)

// OrderModel is the persistence model for order.Order
type OrderModel struct {
	AggregateModel
	ClientID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title       string           `gorm:"type:varchar(255);not null"`
	Description string           `gorm:"type:text"`
	Status      string           `gorm:"type:varchar(50);not null;index"`
	DueDate     *time.Time       `gorm:"type:date"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	IsLocked    bool             `gorm:"not null;default:false"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for order.Item
type OrderItemModel struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Comment   string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the model to a domain order
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.Item, len(m.Items))
	for i := range m.Items {
		items[i] = *m.Items[i].ToDomain()
	}
	return &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ClientID:          m.ClientID,
		Title:             m.Title,
		Description:       m.Description,
		Status:            order.Status(m.Status),
		DueDate:           m.DueDate,
		TotalAmount:       valueobject.NewMoneyFromDecimal(m.TotalAmount),
		IsLocked:          m.IsLocked,
		Items:             items,
	}
}

// ToDomain converts the model to a domain order item
func (m *OrderItemModel) ToDomain() *order.Item {
	return &order.Item{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Title:     m.Title,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Amount:    m.Amount,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// OrderModelFromDomain builds a persistence model from a domain order
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{
		ClientID:    o.ClientID,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status.String(),
		DueDate:     o.DueDate,
		TotalAmount: o.TotalAmount.Amount(),
		IsLocked:    o.IsLocked,
		Items:       make([]OrderItemModel, len(o.Items)),
	}
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	for i := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&o.Items[i])
	}
	return m
}

// OrderItemModelFromDomain builds a persistence model from a domain order item
func OrderItemModelFromDomain(item *order.Item) *OrderItemModel {
	return &OrderItemModel{
		BaseModel: BaseModel{
			ID:        item.ID,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		},
		OrderID:   item.OrderID,
		Title:     item.Title,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Amount:    item.Amount,
		Comment:   item.Comment,
	}
}
