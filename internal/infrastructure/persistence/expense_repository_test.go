package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/domain/shared"
)

// newMockExpenseRepository creates a GormExpenseRepository with a mocked SQL connection
func newMockExpenseRepository(t *testing.T) (*GormExpenseRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormExpenseRepository(gormDB), mock, mockDB
}

func TestGormExpenseRepository_FindByID(t *testing.T) {
	t.Run("finds existing expense", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		expenseID := uuid.New()
		expenseDate := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "supplier_name", "expense_date", "amount", "attachment_key", "description"}).
			AddRow(expenseID, "Timber depot", expenseDate, decimal.NewFromInt(120), "", "Oak boards")

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(expenseID, 1).
			WillReturnRows(rows)

		expense, err := repo.FindByID(context.Background(), expenseID)

		assert.NoError(t, err)
		assert.NotNil(t, expense)
		assert.Equal(t, expenseID, expense.GetID())
		assert.Equal(t, "Timber depot", expense.SupplierName)
		assert.True(t, expense.Amount.Amount().Equal(decimal.NewFromInt(120)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing expense", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		expenseID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(expenseID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		expense, err := repo.FindByID(context.Background(), expenseID)

		assert.Error(t, err)
		assert.Nil(t, expense)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormExpenseRepository_FindDatedBetween(t *testing.T) {
	t.Run("queries the half-open date range", func(t *testing.T) {
		repo, mock, mockDB := newMockExpenseRepository(t)
		defer mockDB.Close()

		from := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "supplier_name", "expense_date", "amount"}).
			AddRow(uuid.New(), "Hardware store", from.AddDate(0, 0, 14), decimal.NewFromInt(30))

		mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE expense_date >= \$1 AND expense_date < \$2 ORDER BY expense_date DESC`).
			WithArgs(from, to).
			WillReturnRows(rows)

		expenses, err := repo.FindDatedBetween(context.Background(), from, to)

		assert.NoError(t, err)
		assert.Len(t, expenses, 1)
		assert.Equal(t, "Hardware store", expenses[0].SupplierName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
