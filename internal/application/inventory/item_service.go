package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/shared"
)

// ItemService handles inventory item operations
type ItemService struct {
	itemRepo inventory.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo inventory.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// Create creates a new inventory item. The SKU must be unique.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	existing, err := s.itemRepo.FindBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "An item with this SKU already exists")
	}

	item, err := inventory.NewItem(req.SKU, req.Name, req.Category, inventory.BaseUnit(req.BaseUnit))
	if err != nil {
		return nil, err
	}
	if err := s.applyDetails(item, req.PackageSize, req.PackageUnitLabel, req.DefaultUnitPrice, req.QuantityOnHand); err != nil {
		return nil, err
	}
	item.Location = req.Location
	item.Notes = req.Notes

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an inventory item
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves inventory items with filtering and pagination
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) ([]ItemResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses, total, nil
}

// Update updates an inventory item
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Name, req.Category, inventory.BaseUnit(req.BaseUnit), req.Location, req.Notes); err != nil {
		return nil, err
	}
	if err := s.applyDetails(item, req.PackageSize, req.PackageUnitLabel, req.DefaultUnitPrice, req.QuantityOnHand); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an inventory item
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *ItemService) applyDetails(item *inventory.Item, packageSize *decimal.Decimal, label string,
	unitPrice, quantity decimal.Decimal) error {
	if err := item.SetPackaging(packageSize, label); err != nil {
		return err
	}
	if err := item.SetDefaultUnitPrice(unitPrice); err != nil {
		return err
	}
	return item.SetQuantityOnHand(quantity)
}
