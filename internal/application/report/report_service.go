package report

import (
	"context"
	"time"

	appfinance "github.com/opsportal/backend/internal/application/finance"
	apporder "github.com/opsportal/backend/internal/application/order"
	"github.com/opsportal/backend/internal/domain/finance"
	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/report"
	"github.com/opsportal/backend/internal/domain/shared"
)

// ReportService produces the monthly rollups and order listings
type ReportService struct {
	reportRepo  report.Repository
	orderRepo   order.Repository
	expenseRepo finance.Repository
	now         func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.Repository, orderRepo order.Repository, expenseRepo finance.Repository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Monthly builds the income and expense report for the selected month.
// The window is clamped to the months that actually hold data, across
// orders and expenses combined.
func (s *ReportService) Monthly(ctx context.Context, filter MonthFilter) (*MonthlyReportResponse, error) {
	requested, err := parseMonth(filter.Month)
	if err != nil {
		return nil, err
	}

	orderMin, orderMax, err := s.reportRepo.OrderDateBounds(ctx)
	if err != nil {
		return nil, err
	}
	expenseMin, expenseMax, err := s.reportRepo.ExpenseDateBounds(ctx)
	if err != nil {
		return nil, err
	}

	window := report.ResolveWindow(requested,
		earliest(orderMin, expenseMin), latest(orderMax, expenseMax), s.now())

	income, err := s.reportRepo.IncomeBetween(ctx, window.From(), window.To())
	if err != nil {
		return nil, err
	}
	expenses, err := s.reportRepo.ExpensesBetween(ctx, window.From(), window.To())
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindCreatedBetween(ctx, window.From(), window.To())
	if err != nil {
		return nil, err
	}
	incomeRows := make([]apporder.OrderResponse, len(orders))
	for i := range orders {
		incomeRows[i] = apporder.ToOrderResponse(&orders[i])
	}

	expenseRecords, err := s.expenseRepo.FindDatedBetween(ctx, window.From(), window.To())
	if err != nil {
		return nil, err
	}
	expenseRows := make([]appfinance.ExpenseResponse, len(expenseRecords))
	for i := range expenseRecords {
		expenseRows[i] = appfinance.ToExpenseResponse(&expenseRecords[i])
	}

	current, previous, next := windowLabels(window)
	return &MonthlyReportResponse{
		Month:       current,
		Previous:    previous,
		Next:        next,
		From:        window.From(),
		To:          window.To(),
		Income:      income,
		Expenses:    expenses,
		Net:         income.Sub(expenses),
		IncomeRows:  incomeRows,
		ExpenseRows: expenseRows,
	}, nil
}

// MonthlyOrders lists the orders created in the selected month. The
// window is clamped to the months that hold orders.
func (s *ReportService) MonthlyOrders(ctx context.Context, filter MonthFilter) (*MonthlyOrdersResponse, error) {
	requested, err := parseMonth(filter.Month)
	if err != nil {
		return nil, err
	}

	minDate, maxDate, err := s.reportRepo.OrderDateBounds(ctx)
	if err != nil {
		return nil, err
	}

	window := report.ResolveWindow(requested, minDate, maxDate, s.now())

	orders, err := s.orderRepo.FindCreatedBetween(ctx, window.From(), window.To())
	if err != nil {
		return nil, err
	}

	responses := make([]apporder.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = apporder.ToOrderResponse(&orders[i])
	}

	current, previous, next := windowLabels(window)
	return &MonthlyOrdersResponse{
		Month:    current,
		Previous: previous,
		Next:     next,
		From:     window.From(),
		To:       window.To(),
		Orders:   responses,
	}, nil
}

func parseMonth(value string) (*report.YearMonth, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Month must be formatted as YYYY-MM")
	}
	ym := report.YearMonthOf(t)
	return &ym, nil
}

func earliest(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Before(*b) {
		return a
	}
	return b
}

func latest(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.After(*b) {
		return a
	}
	return b
}
