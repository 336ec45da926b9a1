package quality

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/quality"
	"github.com/opsportal/backend/internal/domain/shared"
)

// DefectService records defects found on orders
type DefectService struct {
	defectRepo quality.Repository
	orderRepo  order.Repository
}

// NewDefectService creates a new DefectService
func NewDefectService(defectRepo quality.Repository, orderRepo order.Repository) *DefectService {
	return &DefectService{
		defectRepo: defectRepo,
		orderRepo:  orderRepo,
	}
}

// Create records a defect against an existing order
func (s *DefectService) Create(ctx context.Context, req CreateDefectRequest) (*DefectResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	var reportDate time.Time
	if req.ReportDate != nil {
		reportDate = *req.ReportDate
	}

	d, err := quality.NewDefectRecord(req.OrderID, req.ResponsibleName, reportDate, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.defectRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	response := ToDefectResponse(d)
	return &response, nil
}

// GetByID retrieves a defect record
func (s *DefectService) GetByID(ctx context.Context, id uuid.UUID) (*DefectResponse, error) {
	d, err := s.defectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDefectResponse(d)
	return &response, nil
}

// List retrieves defect records with filtering and pagination
func (s *DefectService) List(ctx context.Context, filter DefectListFilter) ([]DefectResponse, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	defects, err := s.defectRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]DefectResponse, len(defects))
	for i := range defects {
		responses[i] = ToDefectResponse(&defects[i])
	}
	return responses, nil
}

// ListByOrder retrieves the defects recorded against one order
func (s *DefectService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]DefectResponse, error) {
	defects, err := s.defectRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]DefectResponse, len(defects))
	for i := range defects {
		responses[i] = ToDefectResponse(&defects[i])
	}
	return responses, nil
}

// Delete removes a defect record
func (s *DefectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.defectRepo.Delete(ctx, id)
}
