package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/shared"
)

// Repository persists expenses
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)
	FindDatedBetween(ctx context.Context, from, to time.Time) ([]Expense, error)
	Save(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
