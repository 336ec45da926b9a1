package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/domain/shared/valueobject"
)

// Expense is an aggregate root for money paid to a supplier
type Expense struct {
	shared.BaseAggregateRoot
	SupplierName  string
	ExpenseDate   time.Time
	Amount        valueobject.Money
	AttachmentKey string // object storage key of the receipt, empty when none
	Description   string
}

// NewExpense creates a new expense record
func NewExpense(supplierName string, expenseDate time.Time, amount decimal.Decimal, description string) (*Expense, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot be empty")
	}
	if expenseDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense date cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Amount must be positive")
	}
	return &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierName:      supplierName,
		ExpenseDate:       expenseDate,
		Amount:            valueobject.NewMoneyFromDecimal(amount),
		Description:       description,
	}, nil
}

// Update replaces the expense's editable fields
func (e *Expense) Update(supplierName string, expenseDate time.Time, amount decimal.Decimal, description string) error {
	if supplierName == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot be empty")
	}
	if expenseDate.IsZero() {
		return shared.NewDomainError("VALIDATION_ERROR", "Expense date cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_ERROR", "Amount must be positive")
	}
	e.SupplierName = supplierName
	e.ExpenseDate = expenseDate
	e.Amount = valueobject.NewMoneyFromDecimal(amount)
	e.Description = description
	e.UpdatedAt = time.Now()
	return nil
}

// AttachReceipt stores the object key of an uploaded receipt
func (e *Expense) AttachReceipt(key string) {
	e.AttachmentKey = key
	e.UpdatedAt = time.Now()
}
