package pricing

import (
	"context"

	"github.com/opsportal/backend/internal/domain/pricing"
)

// CalculatorService computes transient quote previews.
// Results are never persisted and never touch order totals.
type CalculatorService struct {
	calculator *pricing.Calculator
}

// NewCalculatorService creates a new CalculatorService
func NewCalculatorService(items pricing.ItemLookup) *CalculatorService {
	return &CalculatorService{calculator: pricing.NewCalculator(items)}
}

// Calculate runs one quote calculation
func (s *CalculatorService) Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error) {
	entries := make([]pricing.LineEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = pricing.LineEntry{
			ItemID:      e.ItemID,
			Description: e.Description,
			Quantity:    e.Quantity,
			UnitPrice:   e.UnitPrice,
			Deleted:     e.Deleted,
		}
	}

	result, err := s.calculator.Compute(ctx, pricing.Input{
		ProjectName:   req.ProjectName,
		MarginPercent: req.MarginPercent,
		Entries:       entries,
	})
	if err != nil {
		return nil, err
	}

	response := ToCalculateResponse(result)
	return &response, nil
}
