package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/partner"
	"github.com/opsportal/backend/internal/domain/shared"
)

// MockItemRepository is a mock implementation of inventory.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) FindBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Item, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMovementRepository is a mock implementation of inventory.MovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	args := m.Called(ctx, itemID, filter)
	return args.Get(0).([]inventory.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Movement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Movement), args.Error(1)
}

func (m *MockMovementRepository) Save(ctx context.Context, mv *inventory.Movement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

// MockUsageRepository is a mock implementation of inventory.UsageRepository
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.MaterialUsage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.MaterialUsage), args.Error(1)
}

func (m *MockUsageRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.MaterialUsage, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]inventory.MaterialUsage), args.Error(1)
}

func (m *MockUsageRepository) FindUsedBetween(ctx context.Context, from, to time.Time) ([]inventory.MaterialUsage, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]inventory.MaterialUsage), args.Error(1)
}

func (m *MockUsageRepository) Save(ctx context.Context, u *inventory.MaterialUsage) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUsageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]order.Order, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithClient(ctx context.Context, client *partner.Client, o *order.Order) error {
	args := m.Called(ctx, client, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) ([]order.StatusCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.StatusCount), args.Error(1)
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item with packaging", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		svc := NewItemService(itemRepo)
		size := decimal.NewFromInt(50)

		itemRepo.On("FindBySKU", ctx, "SCR-4X40").Return(nil, shared.ErrNotFound)
		itemRepo.On("Save", ctx, mock.AnythingOfType("*inventory.Item")).Return(nil)

		resp, err := svc.Create(ctx, CreateItemRequest{
			SKU:              "SCR-4X40",
			Name:             "Wood screw 4x40",
			Category:         "fasteners",
			BaseUnit:         "pcs",
			PackageSize:      &size,
			PackageUnitLabel: "box",
			DefaultUnitPrice: decimal.RequireFromString("0.10"),
			QuantityOnHand:   decimal.NewFromInt(200),
		})

		require.NoError(t, err)
		assert.Equal(t, "SCR-4X40", resp.SKU)
		require.NotNil(t, resp.PackageCount)
		assert.True(t, resp.PackageCount.Equal(decimal.NewFromInt(4)))
		itemRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		svc := NewItemService(itemRepo)

		existing, err := inventory.NewItem("SCR-4X40", "Wood screw 4x40", "", inventory.UnitPiece)
		require.NoError(t, err)
		itemRepo.On("FindBySKU", ctx, "SCR-4X40").Return(existing, nil)

		resp, err := svc.Create(ctx, CreateItemRequest{SKU: "SCR-4X40", Name: "Another screw"})

		assert.Nil(t, resp)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unpackaged item has no package count", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		svc := NewItemService(itemRepo)

		itemRepo.On("FindBySKU", ctx, "GLU-01").Return(nil, shared.ErrNotFound)
		itemRepo.On("Save", ctx, mock.AnythingOfType("*inventory.Item")).Return(nil)

		resp, err := svc.Create(ctx, CreateItemRequest{
			SKU:            "GLU-01",
			Name:           "Wood glue",
			QuantityOnHand: decimal.NewFromInt(12),
		})

		require.NoError(t, err)
		assert.Nil(t, resp.PackageCount)
	})
}

func TestMovementService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a movement for an existing item", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		movementRepo := new(MockMovementRepository)
		svc := NewMovementService(movementRepo, itemRepo)

		item, err := inventory.NewItem("PLY-18", "Plywood 18mm", "", inventory.UnitSheet)
		require.NoError(t, err)
		before := item.QuantityOnHand

		itemRepo.On("FindByID", ctx, item.GetID()).Return(item, nil)
		movementRepo.On("Save", ctx, mock.AnythingOfType("*inventory.Movement")).Return(nil)

		resp, err := svc.Record(ctx, RecordMovementRequest{
			ItemID:    item.GetID(),
			Direction: "in",
			Quantity:  10,
			Reason:    "delivery",
		})

		require.NoError(t, err)
		assert.Equal(t, "in", resp.Direction)
		assert.Equal(t, 10, resp.Quantity)
		assert.True(t, item.QuantityOnHand.Equal(before), "recording a movement must not touch the stock balance")
		movementRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown item", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		movementRepo := new(MockMovementRepository)
		svc := NewMovementService(movementRepo, itemRepo)

		itemID := uuid.New()
		itemRepo.On("FindByID", ctx, itemID).Return(nil, shared.ErrNotFound)

		resp, err := svc.Record(ctx, RecordMovementRequest{ItemID: itemID, Direction: "out", Quantity: 1})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		movementRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid direction", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		movementRepo := new(MockMovementRepository)
		svc := NewMovementService(movementRepo, itemRepo)

		item, err := inventory.NewItem("PLY-18", "Plywood 18mm", "", inventory.UnitSheet)
		require.NoError(t, err)
		itemRepo.On("FindByID", ctx, item.GetID()).Return(item, nil)

		resp, err := svc.Record(ctx, RecordMovementRequest{ItemID: item.GetID(), Direction: "sideways", Quantity: 1})

		assert.Nil(t, resp)
		require.Error(t, err)
		movementRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUsageService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("records usage for existing item and order", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		orderRepo := new(MockOrderRepository)
		usageRepo := new(MockUsageRepository)
		svc := NewUsageService(usageRepo, itemRepo, orderRepo)

		item, err := inventory.NewItem("PLY-18", "Plywood 18mm", "", inventory.UnitSheet)
		require.NoError(t, err)
		o, err := order.NewOrder(uuid.New(), "Wardrobe", "")
		require.NoError(t, err)

		itemRepo.On("FindByID", ctx, item.GetID()).Return(item, nil)
		orderRepo.On("FindByID", ctx, o.GetID()).Return(o, nil)
		usageRepo.On("Save", ctx, mock.AnythingOfType("*inventory.MaterialUsage")).Return(nil)

		resp, err := svc.Record(ctx, RecordUsageRequest{
			ItemID:    item.GetID(),
			OrderID:   o.GetID(),
			UsageDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			Quantity:  decimal.RequireFromString("2.5"),
			Note:      "side panels",
		})

		require.NoError(t, err)
		assert.Equal(t, o.GetID(), resp.OrderID)
		assert.True(t, resp.Quantity.Equal(decimal.RequireFromString("2.5")))
		usageRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown order", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		orderRepo := new(MockOrderRepository)
		usageRepo := new(MockUsageRepository)
		svc := NewUsageService(usageRepo, itemRepo, orderRepo)

		item, err := inventory.NewItem("PLY-18", "Plywood 18mm", "", inventory.UnitSheet)
		require.NoError(t, err)
		orderID := uuid.New()

		itemRepo.On("FindByID", ctx, item.GetID()).Return(item, nil)
		orderRepo.On("FindByID", ctx, orderID).Return(nil, shared.ErrNotFound)

		resp, err := svc.Record(ctx, RecordUsageRequest{
			ItemID:    item.GetID(),
			OrderID:   orderID,
			UsageDate: time.Now(),
			Quantity:  decimal.NewFromInt(1),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		usageRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
