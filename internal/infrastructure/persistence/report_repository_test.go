package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/domain/finance"
	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
)

func setupReportTestDB(t *testing.T) *gorm.DB {
	db := setupOrderTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.ExpenseModel{}))
	return db
}

func seedExpense(t *testing.T, db *gorm.DB, date time.Time, amount int64) {
	t.Helper()
	e, err := finance.NewExpense("Timber depot", date, decimal.NewFromInt(amount), "")
	require.NoError(t, err)
	require.NoError(t, NewGormExpenseRepository(db).Save(context.Background(), e))
}

func TestGormReportRepository_Totals(t *testing.T) {
	ctx := context.Background()
	db := setupReportTestDB(t)
	repo := NewGormReportRepository(db)
	orderRepo := NewGormOrderRepository(db)

	seedOrder(t, db, orderRepo, "Cabinet", "Worktop") // 2 items x 2 x 10 = 40
	seedExpense(t, db, time.Now(), 15)
	seedExpense(t, db, time.Now(), 10)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)

	income, err := repo.IncomeBetween(ctx, from, to)
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.NewFromInt(40)), "income = %s", income)

	expenses, err := repo.ExpensesBetween(ctx, from, to)
	require.NoError(t, err)
	assert.True(t, expenses.Equal(decimal.NewFromInt(25)), "expenses = %s", expenses)

	empty, err := repo.IncomeBetween(ctx, from.AddDate(-1, 0, 0), from)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestGormReportRepository_DateBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil bounds for empty tables", func(t *testing.T) {
		db := setupReportTestDB(t)
		repo := NewGormReportRepository(db)

		min, max, err := repo.OrderDateBounds(ctx)
		require.NoError(t, err)
		assert.Nil(t, min)
		assert.Nil(t, max)

		min, max, err = repo.ExpenseDateBounds(ctx)
		require.NoError(t, err)
		assert.Nil(t, min)
		assert.Nil(t, max)
	})

	t.Run("returns min and max expense dates", func(t *testing.T) {
		db := setupReportTestDB(t)
		repo := NewGormReportRepository(db)

		older := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
		seedExpense(t, db, older, 5)
		seedExpense(t, db, newer, 7)

		min, max, err := repo.ExpenseDateBounds(ctx)
		require.NoError(t, err)
		require.NotNil(t, min)
		require.NotNil(t, max)
		assert.Equal(t, time.March, min.Month())
		assert.Equal(t, time.June, max.Month())
	})
}
