package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
)

// GormReportRepository implements report.Repository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// OrderDateBounds returns the earliest and latest order creation dates
func (r *GormReportRepository) OrderDateBounds(ctx context.Context) (*time.Time, *time.Time, error) {
	return r.dateBounds(ctx, &models.OrderModel{}, "created_at")
}

// ExpenseDateBounds returns the earliest and latest expense dates
func (r *GormReportRepository) ExpenseDateBounds(ctx context.Context) (*time.Time, *time.Time, error) {
	return r.dateBounds(ctx, &models.ExpenseModel{}, "expense_date")
}

// IncomeBetween sums the totals of orders created in [from, to)
func (r *GormReportRepository) IncomeBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ExpensesBetween sums the expenses dated in [from, to)
func (r *GormReportRepository) ExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date >= ? AND expense_date < ?", from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *GormReportRepository) dateBounds(ctx context.Context, model interface{}, column string) (*time.Time, *time.Time, error) {
	var bounds struct {
		Min *time.Time
		Max *time.Time
	}
	if err := r.db.WithContext(ctx).Model(model).
		Select("MIN(" + column + ") as min, MAX(" + column + ") as max").
		Scan(&bounds).Error; err != nil {
		return nil, nil, err
	}
	return bounds.Min, bounds.Max, nil
}
