package quality

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/shared"
)

// Repository persists defect records
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DefectRecord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]DefectRecord, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]DefectRecord, error)
	Save(ctx context.Context, d *DefectRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
