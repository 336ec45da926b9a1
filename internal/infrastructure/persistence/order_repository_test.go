package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/partner"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/domain/shared/valueobject"
	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ClientModel{}, &models.OrderModel{}, &models.OrderItemModel{})
	require.NoError(t, err)

	return db
}

func testActor() shared.Actor {
	return shared.NewActor(uuid.New(), "worker")
}

func seedOrder(t *testing.T, db *gorm.DB, repo *GormOrderRepository, itemTitles ...string) *order.Order {
	t.Helper()

	client, err := partner.NewClient("Oak & Pine Ltd", "", "", "", "", "")
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Save(context.Background(), client))

	o, err := order.NewOrder(client.GetID(), "Kitchen refit", "")
	require.NoError(t, err)
	for _, title := range itemTitles {
		_, err := o.AddItem(testActor(), title, decimal.NewFromInt(2),
			valueobject.NewMoneyFromDecimal(decimal.NewFromInt(10)), "")
		require.NoError(t, err)
	}
	require.NoError(t, repo.Save(context.Background(), o))
	return o
}

func TestGormOrderRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists order with items", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := seedOrder(t, db, repo, "Cabinet", "Worktop")

		found, err := repo.FindByID(ctx, o.GetID())
		require.NoError(t, err)
		assert.Equal(t, o.GetID(), found.GetID())
		assert.Len(t, found.Items, 2)
		assert.True(t, found.TotalAmount.Amount().Equal(decimal.NewFromInt(40)))
		assert.Equal(t, order.StatusDevelopment, found.Status)
	})

	t.Run("removes item rows dropped from the aggregate", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := seedOrder(t, db, repo, "Cabinet", "Worktop", "Hinges")
		require.NoError(t, o.RemoveItem(testActor(), o.Items[0].ID))
		require.NoError(t, repo.Save(ctx, o))

		var rows int64
		require.NoError(t, db.Model(&models.OrderItemModel{}).
			Where("order_id = ?", o.GetID()).Count(&rows).Error)
		assert.Equal(t, int64(2), rows)

		found, err := repo.FindByID(ctx, o.GetID())
		require.NoError(t, err)
		assert.Len(t, found.Items, 2)
	})

	t.Run("clears all item rows when aggregate has none", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := seedOrder(t, db, repo, "Cabinet")
		require.NoError(t, o.ReplaceItems(testActor(), nil))
		require.NoError(t, repo.Save(ctx, o))

		var rows int64
		require.NoError(t, db.Model(&models.OrderItemModel{}).
			Where("order_id = ?", o.GetID()).Count(&rows).Error)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("updates existing items in place", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := seedOrder(t, db, repo, "Cabinet")
		itemID := o.Items[0].ID
		require.NoError(t, o.UpdateItem(testActor(), itemID, "Corner cabinet",
			decimal.NewFromInt(3), decimal.NewFromInt(25), ""))
		require.NoError(t, repo.Save(ctx, o))

		found, err := repo.FindByID(ctx, o.GetID())
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, itemID, found.Items[0].ID)
		assert.Equal(t, "Corner cabinet", found.Items[0].Title)
		assert.True(t, found.Items[0].Amount.Equal(decimal.NewFromInt(75)))
	})
}

func TestGormOrderRepository_SaveWithClient(t *testing.T) {
	ctx := context.Background()
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)

	client, err := partner.NewClient("Walk-in customer", "", "", "+3670", "", "")
	require.NoError(t, err)
	o, err := order.NewOrder(client.GetID(), "Wardrobe", "")
	require.NoError(t, err)
	_, err = o.AddItem(testActor(), "Sliding door", decimal.NewFromInt(2),
		valueobject.NewMoneyFromDecimal(decimal.NewFromInt(120)), "")
	require.NoError(t, err)

	require.NoError(t, repo.SaveWithClient(ctx, client, o))

	foundClient, err := NewGormClientRepository(db).FindByID(ctx, client.GetID())
	require.NoError(t, err)
	assert.Equal(t, "Walk-in customer", foundClient.Name)

	foundOrder, err := repo.FindByID(ctx, o.GetID())
	require.NoError(t, err)
	assert.Equal(t, client.GetID(), foundOrder.ClientID)
	assert.Len(t, foundOrder.Items, 1)
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("returns not found for missing order", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		found, err := repo.FindByID(context.Background(), uuid.New())
		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository_FindCreatedBetween(t *testing.T) {
	ctx := context.Background()
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)

	o := seedOrder(t, db, repo, "Cabinet")

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)
	orders, err := repo.FindCreatedBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.GetID(), orders[0].GetID())

	orders, err = repo.FindCreatedBetween(ctx, from.AddDate(-1, 0, 0), from)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGormOrderRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)

	first := seedOrder(t, db, repo, "Cabinet")
	seedOrder(t, db, repo, "Shelf")

	require.NoError(t, first.ChangeStatus(testActor(), order.StatusWorkshop, order.PermissivePolicy{}))
	require.NoError(t, repo.Save(ctx, first))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)

	byStatus := make(map[order.Status]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, int64(1), byStatus[order.StatusDevelopment])
	assert.Equal(t, int64(1), byStatus[order.StatusWorkshop])
}

func TestGormOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes order and its items", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		o := seedOrder(t, db, repo, "Cabinet", "Worktop")
		require.NoError(t, repo.Delete(ctx, o.GetID()))

		_, err := repo.FindByID(ctx, o.GetID())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var rows int64
		require.NoError(t, db.Model(&models.OrderItemModel{}).
			Where("order_id = ?", o.GetID()).Count(&rows).Error)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("returns not found for missing order", func(t *testing.T) {
		db := setupOrderTestDB(t)
		repo := NewGormOrderRepository(db)

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
