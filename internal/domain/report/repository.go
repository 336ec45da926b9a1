package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository reads the rollup figures the reports are built from.
// Bounds methods return nil pointers when no rows exist.
type Repository interface {
	OrderDateBounds(ctx context.Context) (min, max *time.Time, err error)
	ExpenseDateBounds(ctx context.Context) (min, max *time.Time, err error)
	IncomeBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	ExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
