package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/shared"
)

// LineEntry is one row of calculator input. Entries flagged Deleted are
// skipped. When ItemID is set, a blank description is filled from the
// inventory item's name; the submitted unit price is always used as-is.
type LineEntry struct {
	ItemID      *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Deleted     bool
}

// Input is a full calculator request. Nothing here is persisted.
type Input struct {
	ProjectName   string
	MarginPercent decimal.Decimal
	Entries       []LineEntry
}

// LineResult is one computed row
type LineResult struct {
	ItemID       *uuid.UUID
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	LineTotal    decimal.Decimal
	PackageCount *decimal.Decimal // packages this quantity represents, nil when not applicable
	PackageLabel string
}

// Result is the computed quote preview. GrandTotal includes the margin;
// the margin never reaches a persisted order total.
type Result struct {
	ProjectName   string
	Lines         []LineResult
	Subtotal      decimal.Decimal
	MarginPercent decimal.Decimal
	PercentAmount decimal.Decimal
	GrandTotal    decimal.Decimal
}

// ItemLookup resolves inventory items referenced by calculator entries
type ItemLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
}

// Calculator computes transient quote previews with exact decimal math
type Calculator struct {
	items ItemLookup
}

// NewCalculator creates a calculator backed by the given item lookup.
// A nil lookup is allowed; entries referencing items then fail.
func NewCalculator(items ItemLookup) *Calculator {
	return &Calculator{items: items}
}

// Compute validates the input and produces the quote preview.
// It is side-effect free: no entity is created or modified.
func (c *Calculator) Compute(ctx context.Context, in Input) (*Result, error) {
	if in.MarginPercent.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Margin percent cannot be negative")
	}

	lines := make([]LineResult, 0, len(in.Entries))
	subtotal := decimal.Zero

	for _, entry := range in.Entries {
		if entry.Deleted {
			continue
		}
		line, err := c.computeLine(ctx, entry)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
		subtotal = subtotal.Add(line.LineTotal)
	}

	percentAmount := subtotal.Mul(in.MarginPercent).Div(decimal.NewFromInt(100))

	return &Result{
		ProjectName:   in.ProjectName,
		Lines:         lines,
		Subtotal:      subtotal,
		MarginPercent: in.MarginPercent,
		PercentAmount: percentAmount,
		GrandTotal:    subtotal.Add(percentAmount),
	}, nil
}

func (c *Calculator) computeLine(ctx context.Context, entry LineEntry) (*LineResult, error) {
	if entry.Quantity.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity cannot be negative")
	}
	if entry.UnitPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unit price cannot be negative")
	}

	line := &LineResult{
		ItemID:      entry.ItemID,
		Description: entry.Description,
		Quantity:    entry.Quantity,
		UnitPrice:   entry.UnitPrice,
	}

	if entry.ItemID != nil {
		if c.items == nil {
			return nil, shared.ErrNotFound
		}
		item, err := c.items.FindByID(ctx, *entry.ItemID)
		if err != nil {
			return nil, err
		}
		if line.Description == "" {
			line.Description = item.Name
		}
		if item.PackageSize != nil && item.PackageSize.IsPositive() {
			count := entry.Quantity.Div(*item.PackageSize)
			line.PackageCount = &count
			line.PackageLabel = item.PackageUnitLabel
		}
	}

	if line.Description == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Description cannot be empty")
	}

	line.LineTotal = line.Quantity.Mul(line.UnitPrice)
	return line, nil
}
