package finance

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/finance"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/infrastructure/storage"
)

// ExpenseService handles expense records and their receipt attachments
type ExpenseService struct {
	expenseRepo finance.Repository
	attachments storage.AttachmentStore
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.Repository, attachments storage.AttachmentStore) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		attachments: attachments,
	}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	e, err := finance.NewExpense(req.SupplierName, req.ExpenseDate, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// GetByID retrieves an expense
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// List retrieves expenses with filtering and pagination. A month filter
// returns every expense dated in that month instead of a paged slice.
func (s *ExpenseService) List(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, int64, error) {
	if filter.Month != "" {
		return s.listMonth(ctx, filter.Month)
	}

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

	expenses, err := s.expenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses, total, nil
}

func (s *ExpenseService) listMonth(ctx context.Context, month string) ([]ExpenseResponse, int64, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, 0, shared.NewDomainError("VALIDATION_ERROR", "Month must be formatted as YYYY-MM")
	}

	expenses, err := s.expenseRepo.FindDatedBetween(ctx, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses, int64(len(responses)), nil
}

// Update updates an expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.Update(req.SupplierName, req.ExpenseDate, req.Amount, req.Description); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// Delete removes an expense together with its stored receipt
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	if e.AttachmentKey != "" {
		return s.attachments.Delete(ctx, e.AttachmentKey)
	}
	return nil
}

// AttachReceipt uploads a receipt file and links it to the expense.
// A previously attached receipt is replaced.
func (s *ExpenseService) AttachReceipt(ctx context.Context, id uuid.UUID, filename, contentType string, data io.Reader) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storage.NewReceiptKey(e.GetID(), filename)
	if err := s.attachments.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	oldKey := e.AttachmentKey
	e.AttachReceipt(key)
	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	if oldKey != "" && oldKey != key {
		_ = s.attachments.Delete(ctx, oldKey)
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// OpenReceipt streams the expense's stored receipt
func (s *ExpenseService) OpenReceipt(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if e.AttachmentKey == "" {
		return nil, "", shared.ErrNotFound
	}

	reader, err := s.attachments.Open(ctx, e.AttachmentKey)
	if err != nil {
		return nil, "", err
	}
	return reader, e.AttachmentKey, nil
}
