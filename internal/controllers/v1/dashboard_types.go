package v1

import (
	"time"

	"github.com/moneta-finance/backend/internal/dashboard"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/period"
)

type DashboardQueryFilter struct {
	DateRange period.Kind            `form:"dateRange"` // Named date range: today, week, month, last30 or custom. Defaults to month
	FromDate  time.Time              `form:"fromDate"`  // Start of a custom date range. Time is ignored.
	UntilDate time.Time              `form:"untilDate"` // End of a custom date range. Time is ignored.
	Type      models.TransactionType `form:"type"`      // Only use transactions of this type
}

// filter resolves the query parameters into the filter for the transactions.
func (f DashboardQueryFilter) filter(now time.Time) (dashboard.Filter, error) {
	if f.Type != "" && f.Type != models.TypeExpense && f.Type != models.TypeIncome {
		return dashboard.Filter{}, errTypeFilter
	}

	r, err := period.Resolve(f.DateRange, now, f.FromDate, f.UntilDate)
	if err != nil {
		return dashboard.Filter{}, err
	}

	return dashboard.Filter{Range: r, Type: f.Type}, nil
}

type Dashboard struct {
	Range   period.Range      `json:"range"`   // The date range of the transactions
	Summary dashboard.Summary `json:"summary"` // Income, expenses and balance
	Pie     []dashboard.Slice `json:"pie"`     // Expenses by category, largest first
	Bars    []dashboard.Bar   `json:"bars"`    // Income and expenses per month, oldest first
	Recent  []Transaction     `json:"recent"`  // The newest transactions
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                                               // Data for the dashboard
	Error *string    `json:"error" example:"the date range must be one of today, week, month, last30 or custom"` // The error, if any occurred
}

type Overview struct {
	Range        period.Range              `json:"range"`        // The date range of the transactions
	Summary      dashboard.OverviewSummary `json:"summary"`      // Totals and the state of installment purchases
	Transactions []Transaction             `json:"transactions"` // All transactions in the date range, newest first
}

type OverviewResponse struct {
	Data  *Overview `json:"data"`                                                                               // Data for the overview
	Error *string   `json:"error" example:"the date range must be one of today, week, month, last30 or custom"` // The error, if any occurred
}
