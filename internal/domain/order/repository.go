package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/partner"
	"github.com/opsportal/backend/internal/domain/shared"
)

// StatusCount is one row of the dashboard status rollup
type StatusCount struct {
	Status Status
	Count  int64
}

// Repository persists order aggregates together with their line items.
// Save applies the item diff (delete missing, upsert the rest) and the
// header update inside one transaction.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]Order, error)
	Save(ctx context.Context, o *Order) error
	SaveWithClient(ctx context.Context, client *partner.Client, o *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
