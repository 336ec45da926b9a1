package quality

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/partner"
	"github.com/opsportal/backend/internal/domain/quality"
	"github.com/opsportal/backend/internal/domain/shared"
)

// MockDefectRepository is a mock implementation of quality.Repository
type MockDefectRepository struct {
	mock.Mock
}

func (m *MockDefectRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.DefectRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quality.DefectRecord), args.Error(1)
}

func (m *MockDefectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.DefectRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]quality.DefectRecord), args.Error(1)
}

func (m *MockDefectRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]quality.DefectRecord, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]quality.DefectRecord), args.Error(1)
}

func (m *MockDefectRepository) Save(ctx context.Context, d *quality.DefectRecord) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDefectRepository) Delete(ctx context.Context, id uuid.UUID) error {
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

func TestDefectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("records a defect against an existing order", func(t *testing.T) {
		defectRepo := new(MockDefectRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewDefectService(defectRepo, orderRepo)

		o, err := order.NewOrder(uuid.New(), "Wardrobe", "")
		require.NoError(t, err)
		reportDate := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

		orderRepo.On("FindByID", ctx, o.GetID()).Return(o, nil)
		defectRepo.On("Save", ctx, mock.AnythingOfType("*quality.DefectRecord")).Return(nil)

		resp, err := svc.Create(ctx, CreateDefectRequest{
			OrderID:         o.GetID(),
			ResponsibleName: "J. Smith",
			ReportDate:      &reportDate,
			Description:     "scratched door panel",
		})

		require.NoError(t, err)
		assert.Equal(t, o.GetID(), resp.OrderID)
		assert.Equal(t, reportDate, resp.ReportDate)
		defectRepo.AssertExpectations(t)
	})

	t.Run("defaults the report date to now", func(t *testing.T) {
		defectRepo := new(MockDefectRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewDefectService(defectRepo, orderRepo)

		o, err := order.NewOrder(uuid.New(), "Wardrobe", "")
		require.NoError(t, err)

		orderRepo.On("FindByID", ctx, o.GetID()).Return(o, nil)
		defectRepo.On("Save", ctx, mock.AnythingOfType("*quality.DefectRecord")).Return(nil)

		resp, err := svc.Create(ctx, CreateDefectRequest{
			OrderID:     o.GetID(),
			Description: "misaligned hinge",
		})

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), resp.ReportDate, time.Minute)
	})

	t.Run("rejects unknown order", func(t *testing.T) {
		defectRepo := new(MockDefectRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewDefectService(defectRepo, orderRepo)

		orderID := uuid.New()
		orderRepo.On("FindByID", ctx, orderID).Return(nil, shared.ErrNotFound)

		resp, err := svc.Create(ctx, CreateDefectRequest{OrderID: orderID, Description: "broken"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		defectRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		defectRepo := new(MockDefectRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewDefectService(defectRepo, orderRepo)

		o, err := order.NewOrder(uuid.New(), "Wardrobe", "")
		require.NoError(t, err)
		orderRepo.On("FindByID", ctx, o.GetID()).Return(o, nil)

		resp, err := svc.Create(ctx, CreateDefectRequest{OrderID: o.GetID()})

		assert.Nil(t, resp)
		require.Error(t, err)
		defectRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDefectService_ListByOrder(t *testing.T) {
	ctx := context.Background()
	defectRepo := new(MockDefectRepository)
	svc := NewDefectService(defectRepo, new(MockOrderRepository))

	orderID := uuid.New()
	first, err := quality.NewDefectRecord(orderID, "J. Smith", time.Now(), "scratched panel")
	require.NoError(t, err)
	second, err := quality.NewDefectRecord(orderID, "", time.Now(), "loose handle")
	require.NoError(t, err)

	defectRepo.On("FindByOrder", ctx, orderID).Return([]quality.DefectRecord{*first, *second}, nil)

	defects, err := svc.ListByOrder(ctx, orderID)

	require.NoError(t, err)
	require.Len(t, defects, 2)
	assert.Equal(t, "scratched panel", defects[0].Description)
}
