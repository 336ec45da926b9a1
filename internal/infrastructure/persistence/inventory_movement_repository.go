package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
)

// GormInventoryMovementRepository implements inventory.MovementRepository using GORM.
// The movement log is append-only; rows are never updated or deleted.
type GormInventoryMovementRepository struct {
	db *gorm.DB
}

// NewGormInventoryMovementRepository creates a new GormInventoryMovementRepository
func NewGormInventoryMovementRepository(db *gorm.DB) *GormInventoryMovementRepository {
	return &GormInventoryMovementRepository{db: db}
}

// FindByID finds a movement by its ID
func (r *GormInventoryMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Movement, error) {
	var model models.InventoryMovementModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByItem finds movements for one inventory item
func (r *GormInventoryMovementRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryMovementModel{}).
		Where("item_id = ?", itemID)
	return r.find(query, filter)
}

// FindAll finds movements with filtering
func (r *GormInventoryMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Movement, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryMovementModel{})
	if direction, ok := filter.Filters["direction"]; ok {
		query = query.Where("direction = ?", direction)
	}
	return r.find(query, filter)
}

// Save appends a movement row
func (r *GormInventoryMovementRepository) Save(ctx context.Context, m *inventory.Movement) error {
	model := models.InventoryMovementModelFromDomain(m)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *GormInventoryMovementRepository) find(query *gorm.DB, filter shared.Filter) ([]inventory.Movement, error) {
	sortField := ValidateSortField(filter.OrderBy, InventoryMovementSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var movementModels []models.InventoryMovementModel
	if err := query.Find(&movementModels).Error; err != nil {
		return nil, err
	}
	movements := make([]inventory.Movement, len(movementModels))
	for i, model := range movementModels {
		movements[i] = *model.ToDomain()
	}
	return movements, nil
}
