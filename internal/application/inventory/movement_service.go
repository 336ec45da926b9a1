package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/shared"
)

// MovementService maintains the append-only stock movement log.
// Recording a movement never adjusts the item's quantity on hand.
type MovementService struct {
	movementRepo inventory.MovementRepository
	itemRepo     inventory.ItemRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(movementRepo inventory.MovementRepository, itemRepo inventory.ItemRepository) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
	}
}

// Record appends one entry to the movement log
func (s *MovementService) Record(ctx context.Context, req RecordMovementRequest) (*MovementResponse, error) {
	if _, err := s.itemRepo.FindByID(ctx, req.ItemID); err != nil {
		return nil, err
	}

	m, err := inventory.NewMovement(req.ItemID, inventory.Direction(req.Direction), req.Quantity, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.Save(ctx, m); err != nil {
		return nil, err
	}

	response := ToMovementResponse(m)
	return &response, nil
}

// GetByID retrieves a movement log entry
func (s *MovementService) GetByID(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	m, err := s.movementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToMovementResponse(m)
	return &response, nil
}

// List retrieves movement log entries, optionally scoped to one item
func (s *MovementService) List(ctx context.Context, filter MovementListFilter) ([]MovementResponse, error) {
	domainFilter := shared.DefaultFilter()
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

	var movements []inventory.Movement
	var err error
	if filter.ItemID != nil {
		movements, err = s.movementRepo.FindByItem(ctx, *filter.ItemID, domainFilter)
	} else {
		movements, err = s.movementRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses, nil
}
