package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/finance"
	"github.com/opsportal/backend/internal/domain/shared/valueobject"
)

// ExpenseModel is the persistence model for finance.Expense
type ExpenseModel struct {
	AggregateModel
	SupplierName  string          `gorm:"type:varchar(255);not null"`
	ExpenseDate   time.Time       `gorm:"type:date;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AttachmentKey string          `gorm:"type:varchar(512)"`
	Description   string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the model to a domain expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SupplierName:      m.SupplierName,
		ExpenseDate:       m.ExpenseDate,
		Amount:            valueobject.NewMoneyFromDecimal(m.Amount),
		AttachmentKey:     m.AttachmentKey,
		Description:       m.Description,
	}
}

// ExpenseModelFromDomain builds a persistence model from a domain expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		SupplierName:  e.SupplierName,
		ExpenseDate:   e.ExpenseDate,
		Amount:        e.Amount.Amount(),
		AttachmentKey: e.AttachmentKey,
		Description:   e.Description,
	}
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	return m
}
