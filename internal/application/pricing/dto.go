package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/pricing"
)

// CalculateRequest represents a transient quote calculation request
type CalculateRequest struct {
	ProjectName   string             `json:"project_name" binding:"max=200"`
	MarginPercent decimal.Decimal    `json:"margin_percent"`
	Entries       []CalculateEntry   `json:"entries" binding:"dive"`
}

// CalculateEntry is one input row of a calculation
type CalculateEntry struct {
	ItemID      *uuid.UUID      `json:"item_id"`
	Description string          `json:"description" binding:"max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Deleted     bool            `json:"deleted"`
}

// CalculateLineResponse is one computed row
type CalculateLineResponse struct {
	ItemID       *uuid.UUID       `json:"item_id"`
	Description  string           `json:"description"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	LineTotal    decimal.Decimal  `json:"line_total"`
	PackageCount *decimal.Decimal `json:"package_count"`
	PackageLabel string           `json:"package_label,omitempty"`
}

// CalculateResponse is the computed quote preview
type CalculateResponse struct {
	ProjectName   string                  `json:"project_name"`
	Lines         []CalculateLineResponse `json:"lines"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	MarginPercent decimal.Decimal         `json:"margin_percent"`
	PercentAmount decimal.Decimal         `json:"percent_amount"`
	GrandTotal    decimal.Decimal         `json:"grand_total"`
}

// ToCalculateResponse converts a domain result to a response DTO
func ToCalculateResponse(r *pricing.Result) CalculateResponse {
	lines := make([]CalculateLineResponse, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = CalculateLineResponse{
			ItemID:       line.ItemID,
			Description:  line.Description,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineTotal:    line.LineTotal,
			PackageCount: line.PackageCount,
			PackageLabel: line.PackageLabel,
		}
	}
	return CalculateResponse{
		ProjectName:   r.ProjectName,
		Lines:         lines,
		Subtotal:      r.Subtotal,
		MarginPercent: r.MarginPercent,
		PercentAmount: r.PercentAmount,
		GrandTotal:    r.GrandTotal,
	}
}
