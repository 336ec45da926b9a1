package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/shared"
)

// ItemRepository persists inventory items
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindBySKU(ctx context.Context, sku string) (*Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// MovementRepository persists the append-only movement log
type MovementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Movement, error)
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]Movement, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Movement, error)
	Save(ctx context.Context, m *Movement) error
}

// UsageRepository persists material usage records
type UsageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MaterialUsage, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]MaterialUsage, error)
	FindUsedBetween(ctx context.Context, from, to time.Time) ([]MaterialUsage, error)
	Save(ctx context.Context, u *MaterialUsage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
