package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/domain/quality"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
)

// GormDefectRecordRepository implements quality.Repository using GORM
type GormDefectRecordRepository struct {
	db *gorm.DB
}

// NewGormDefectRecordRepository creates a new GormDefectRecordRepository
func NewGormDefectRecordRepository(db *gorm.DB) *GormDefectRecordRepository {
	return &GormDefectRecordRepository{db: db}
}

// FindByID finds a defect record by its ID
func (r *GormDefectRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.DefectRecord, error) {
	var model models.DefectRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds defect records with filtering
func (r *GormDefectRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.DefectRecord, error) {
	var defectModels []models.DefectRecordModel
	query := r.db.WithContext(ctx).Model(&models.DefectRecordModel{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(responsible_name LIKE ? OR description LIKE ?)",
			searchPattern, searchPattern)
	}

	sortField := ValidateSortField(filter.OrderBy, DefectRecordSortFields, "report_date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&defectModels).Error; err != nil {
		return nil, err
	}
	defects := make([]quality.DefectRecord, len(defectModels))
	for i, model := range defectModels {
		defects[i] = *model.ToDomain()
	}
	return defects, nil
}

// FindByOrder finds defect records for one order
func (r *GormDefectRecordRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]quality.DefectRecord, error) {
	var defectModels []models.DefectRecordModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("report_date DESC").
		Find(&defectModels).Error; err != nil {
		return nil, err
	}
	defects := make([]quality.DefectRecord, len(defectModels))
	for i, model := range defectModels {
		defects[i] = *model.ToDomain()
	}
	return defects, nil
}

// Save creates or updates a defect record
func (r *GormDefectRecordRepository) Save(ctx context.Context, d *quality.DefectRecord) error {
	model := models.DefectRecordModelFromDomain(d)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a defect record
func (r *GormDefectRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DefectRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
