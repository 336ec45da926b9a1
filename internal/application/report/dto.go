package report

import (
	"time"

	"github.com/shopspring/decimal"

	appfinance "github.com/opsportal/backend/internal/application/finance"
	apporder "github.com/opsportal/backend/internal/application/order"
	"github.com/opsportal/backend/internal/domain/report"
)

// MonthFilter selects the reporting month. An empty month means the
// latest month with data.
type MonthFilter struct {
	Month string `form:"month" binding:"omitempty,yearmonth"` // formatted as YYYY-MM
}

// MonthlyReportResponse is the income and expense rollup for one month,
// with the orders and expenses behind the totals as detail rows
type MonthlyReportResponse struct {
	Month       string                       `json:"month"`
	Previous    *string                      `json:"previous_month"`
	Next        *string                      `json:"next_month"`
	From        time.Time                    `json:"from"`
	To          time.Time                    `json:"to"`
	Income      decimal.Decimal              `json:"income"`
	Expenses    decimal.Decimal              `json:"expenses"`
	Net         decimal.Decimal              `json:"net"`
	IncomeRows  []apporder.OrderResponse     `json:"income_rows"`
	ExpenseRows []appfinance.ExpenseResponse `json:"expense_rows"`
}

// MonthlyOrdersResponse lists the orders created in one month
type MonthlyOrdersResponse struct {
	Month    string                   `json:"month"`
	Previous *string                  `json:"previous_month"`
	Next     *string                  `json:"next_month"`
	From     time.Time                `json:"from"`
	To       time.Time                `json:"to"`
	Orders   []apporder.OrderResponse `json:"orders"`
}

func windowLabels(w report.Window) (current string, previous, next *string) {
	current = w.Current.String()
	if w.Previous != nil {
		s := w.Previous.String()
		previous = &s
	}
	if w.Next != nil {
		s := w.Next.String()
		next = &s
	}
	return current, previous, next
}
