package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/finance"
)

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	SupplierName string          `json:"supplier_name" binding:"required,min=1,max=200"`
	ExpenseDate  time.Time       `json:"expense_date" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description" binding:"max=2000"`
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	SupplierName string          `json:"supplier_name" binding:"required,min=1,max=200"`
	ExpenseDate  time.Time       `json:"expense_date" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description" binding:"max=2000"`
}

// ExpenseListFilter represents filter options for the expense list.
// Month narrows the listing to expenses dated in one calendar month.
type ExpenseListFilter struct {
	Month    string `form:"month" binding:"omitempty,yearmonth"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	SupplierName string          `json:"supplier_name"`
	ExpenseDate  time.Time       `json:"expense_date"`
	Amount       decimal.Decimal `json:"amount"`
	HasReceipt   bool            `json:"has_receipt"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.GetID(),
		SupplierName: e.SupplierName,
		ExpenseDate:  e.ExpenseDate,
		Amount:       e.Amount.Amount(),
		HasReceipt:   e.AttachmentKey != "",
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
