package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/order"
)

// UsageService records material consumed for orders
type UsageService struct {
	usageRepo inventory.UsageRepository
	itemRepo  inventory.ItemRepository
	orderRepo order.Repository
}

// NewUsageService creates a new UsageService
func NewUsageService(usageRepo inventory.UsageRepository, itemRepo inventory.ItemRepository, orderRepo order.Repository) *UsageService {
	return &UsageService{
		usageRepo: usageRepo,
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
	}
}

// Record creates a material usage record. Both the item and the order
// must exist; the stock balance is left alone.
func (s *UsageService) Record(ctx context.Context, req RecordUsageRequest) (*UsageResponse, error) {
	if _, err := s.itemRepo.FindByID(ctx, req.ItemID); err != nil {
		return nil, err
	}
	if _, err := s.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	u, err := inventory.NewMaterialUsage(req.ItemID, req.OrderID, req.UsageDate, req.Quantity, req.Note)
	if err != nil {
		return nil, err
	}

	if err := s.usageRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	response := ToUsageResponse(u)
	return &response, nil
}

// GetByID retrieves a material usage record
func (s *UsageService) GetByID(ctx context.Context, id uuid.UUID) (*UsageResponse, error) {
	u, err := s.usageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUsageResponse(u)
	return &response, nil
}

// ListByOrder retrieves the usage records of one order
func (s *UsageService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]UsageResponse, error) {
	usages, err := s.usageRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]UsageResponse, len(usages))
	for i := range usages {
		responses[i] = ToUsageResponse(&usages[i])
	}
	return responses, nil
}

// Delete removes a material usage record
func (s *UsageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.usageRepo.Delete(ctx, id)
}
