package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apppartner "github.com/opsportal/backend/internal/application/partner"
	"github.com/opsportal/backend/internal/domain/order"
)

// ItemRequest represents one line item in a create or replace request.
// Carrying the ID of an existing item updates it in place; omitting an
// existing ID removes that item.
type ItemRequest struct {
	ID        *uuid.UUID      `json:"id"`
	Title     string          `json:"title" binding:"required,min=1,max=200"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Comment   string          `json:"comment" binding:"max=500"`
}

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	ClientID    uuid.UUID     `json:"client_id" binding:"required"`
	Title       string        `json:"title" binding:"required,min=1,max=200"`
	Description string        `json:"description" binding:"max=2000"`
	Status      string        `json:"status" binding:"max=50"`
	DueDate     *time.Time    `json:"due_date"`
	Items       []ItemRequest `json:"items" binding:"dive"`
}

// IntakeRequest creates a brand-new client together with their first
// order in one transaction.
type IntakeRequest struct {
	Client apppartner.CreateClientRequest `json:"client" binding:"required"`
	Order  IntakeOrderRequest             `json:"order" binding:"required"`
}

// IntakeOrderRequest is the order half of an intake request
type IntakeOrderRequest struct {
	Title       string        `json:"title" binding:"required,min=1,max=200"`
	Description string        `json:"description" binding:"max=2000"`
	Status      string        `json:"status" binding:"max=50"`
	DueDate     *time.Time    `json:"due_date"`
	Items       []ItemRequest `json:"items" binding:"dive"`
}

// UpdateOrderRequest represents a request to update order details
type UpdateOrderRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"due_date"`
}

// ReplaceItemsRequest swaps the order's line items for the given set
type ReplaceItemsRequest struct {
	Items []ItemRequest `json:"items" binding:"dive"`
}

// ChangeStatusRequest moves the order to a new status
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status"`
	ClientID *uuid.UUID `form:"client_id"`
	Locked   *bool      `form:"is_locked"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ItemResponse represents a line item in API responses
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	Comment   string          `json:"comment"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	ClientID      uuid.UUID       `json:"client_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	StatusDisplay string          `json:"status_display"`
	DueDate       *time.Time      `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	IsLocked      bool            `json:"is_locked"`
	Items         []ItemResponse  `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StatusCountResponse is one dashboard rollup row
type StatusCountResponse struct {
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
	Count         int64  `json:"count"`
}

// SummaryResponse is the dashboard order summary
type SummaryResponse struct {
	Total    int64                 `json:"total"`
	ByStatus []StatusCountResponse `json:"by_status"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ItemResponse{
			ID:        item.ID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount,
			Comment:   item.Comment,
		}
	}
	return OrderResponse{
		ID:            o.GetID(),
		ClientID:      o.ClientID,
		Title:         o.Title,
		Description:   o.Description,
		Status:        o.Status.String(),
		StatusDisplay: o.Status.DisplayName(),
		DueDate:       o.DueDate,
		TotalAmount:   o.TotalAmount.Amount(),
		IsLocked:      o.IsLocked,
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toItemInputs(items []ItemRequest) []order.ItemInput {
	inputs := make([]order.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = order.ItemInput{
			ID:        item.ID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Comment:   item.Comment,
		}
	}
	return inputs
}
