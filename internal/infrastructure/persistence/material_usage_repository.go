package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
)

// GormMaterialUsageRepository implements inventory.UsageRepository using GORM
type GormMaterialUsageRepository struct {
	db *gorm.DB
}

// NewGormMaterialUsageRepository creates a new GormMaterialUsageRepository
func NewGormMaterialUsageRepository(db *gorm.DB) *GormMaterialUsageRepository {
	return &GormMaterialUsageRepository{db: db}
}

// FindByID finds a material usage record by its ID
func (r *GormMaterialUsageRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.MaterialUsage, error) {
	var model models.MaterialUsageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrder finds usage records for one order
func (r *GormMaterialUsageRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.MaterialUsage, error) {
	var usageModels []models.MaterialUsageModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("usage_date DESC").
		Find(&usageModels).Error; err != nil {
		return nil, err
	}
	return toDomainUsages(usageModels), nil
}

// FindUsedBetween finds usage records dated in [from, to)
func (r *GormMaterialUsageRepository) FindUsedBetween(ctx context.Context, from, to time.Time) ([]inventory.MaterialUsage, error) {
	var usageModels []models.MaterialUsageModel
	if err := r.db.WithContext(ctx).
		Where("usage_date >= ? AND usage_date < ?", from, to).
		Order("usage_date DESC").
		Find(&usageModels).Error; err != nil {
		return nil, err
	}
	return toDomainUsages(usageModels), nil
}

// Save creates or updates a material usage record
func (r *GormMaterialUsageRepository) Save(ctx context.Context, u *inventory.MaterialUsage) error {
	model := models.MaterialUsageModelFromDomain(u)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a material usage record
func (r *GormMaterialUsageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MaterialUsageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainUsages(usageModels []models.MaterialUsageModel) []inventory.MaterialUsage {
	usages := make([]inventory.MaterialUsage, len(usageModels))
	for i, model := range usageModels {
		usages[i] = *model.ToDomain()
	}
	return usages
}
