// Package dashboard aggregates transactions into the figures and chart
// series shown on the dashboard and the overview.
package dashboard

import (
	"cmp"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/period"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RecentCount is the number of transactions in the recent transactions list.
const RecentCount = 5

// Filter selects the transactions to aggregate.
type Filter struct {
	Range period.Range
	Type  models.TransactionType // Empty for all types
}

// Transactions returns the transactions of the user matching the filter,
// newest first, with their categories.
func Transactions(db *gorm.DB, userID uuid.UUID, f Filter) ([]models.Transaction, error) {
	q := models.Scope(db, userID).
		Preload("Category").
		Order("transaction_date DESC, created_at DESC")

	if !f.Range.From.IsZero() {
		q = q.Where("transaction_date >= ?", f.Range.From)
	}

	if end := f.Range.End(); !end.IsZero() {
		q = q.Where("transaction_date < ?", end)
	}

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Summary contains the totals of a list of transactions.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"5200"`  // Sum of all income
	TotalExpense decimal.Decimal `json:"totalExpense" example:"3120"` // Sum of all expenses
	Balance      decimal.Decimal `json:"balance" example:"2080"`      // Income minus expenses
}

// Summarize returns the totals of the transactions.
func Summarize(transactions []models.Transaction) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}

	for _, t := range transactions {
		if t.Type == models.TypeIncome {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// OverviewSummary extends the totals with the state of installment purchases.
type OverviewSummary struct {
	Summary
	OpenInstallments int             `json:"openInstallments" example:"2"` // Number of expenses with more than one installment
	PendingValue     decimal.Decimal `json:"pendingValue" example:"900"`   // Value of all installments not paid yet
}

// Overview returns the totals and the installment state of the transactions.
func Overview(transactions []models.Transaction) OverviewSummary {
	o := OverviewSummary{Summary: Summarize(transactions), PendingValue: decimal.Zero}

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}

		status := t.InstallmentStatus()
		if status.TotalInstallments > 1 {
			o.OpenInstallments++
			o.PendingValue = o.PendingValue.Add(status.RemainingValue)
		}
	}

	return o
}

// Slice is the share of one category in the expenses.
type Slice struct {
	CategoryID *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category, null for uncategorized expenses
	Name       string          `json:"name" example:"Alimentação"`                                // Display name of the category
	Icon       string          `json:"icon" example:"🍔"`                                          // Icon of the category
	Color      string          `json:"color" example:"#ef4444"`                                   // Color of the category
	Value      decimal.Decimal `json:"value" example:"740.5"`                                     // Sum of the expenses
	Percentage float64         `json:"percentage" example:"23.7"`                                 // Share of all expenses in percent, with one decimal
}

// Pie groups the expenses by category, largest first.
func Pie(transactions []models.Transaction) []Slice {
	result := make([]Slice, 0)
	index := make(map[uuid.UUID]int)
	total := decimal.Zero

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}
		total = total.Add(t.Amount)

		// uuid.Nil is the key for uncategorized expenses
		key := uuid.Nil
		if t.CategoryID != nil {
			key = *t.CategoryID
		}

		i, ok := index[key]
		if !ok {
			display := t.Category.Display()
			if t.CategoryID == nil {
				display = (*models.Category)(nil).Display()
			}

			result = append(result, Slice{
				CategoryID: t.CategoryID,
				Name:       display.Name,
				Icon:       display.Icon,
				Color:      display.Color,
				Value:      decimal.Zero,
			})
			i = len(result) - 1
			index[key] = i
		}

		result[i].Value = result[i].Value.Add(t.Amount)
	}

	for i := range result {
		result[i].Percentage = percentage(result[i].Value, total)
	}

	sortSlices(result)
	return result
}

func sortSlices(s []Slice) {
	slices.SortStableFunc(s, func(a, b Slice) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

func percentage(value, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}

	return value.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}

// Bar is the income and the expenses of one month.
type Bar struct {
	Name     string          `json:"name" example:"Jan/2024"` // Label of the month
	Month    types.Month     `json:"month" example:"2024-01"` // The month
	Expenses decimal.Decimal `json:"expenses" example:"3120"` // Sum of the expenses
	Income   decimal.Decimal `json:"income" example:"5200"`   // Sum of the income
}

// shortMonths are the abbreviated month names in Brazilian Portuguese.
var shortMonths = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel returns the label of the month on the bar chart, e.g. "Fev/2024".
func MonthLabel(m types.Month) string {
	t := time.Time(m)
	return fmt.Sprintf("%s/%d", shortMonths[t.Month()-1], t.Year())
}

// Bars returns the income and expenses per month, oldest month first.
// Months without transactions are left out.
func Bars(transactions []models.Transaction) []Bar {
	byMonth := make(map[string]*Bar)

	for _, t := range transactions {
		month := types.MonthOf(t.TransactionDate)

		b, ok := byMonth[month.String()]
		if !ok {
			b = &Bar{Name: MonthLabel(month), Month: month, Expenses: decimal.Zero, Income: decimal.Zero}
			byMonth[month.String()] = b
		}

		if t.Type == models.TypeIncome {
			b.Income = b.Income.Add(t.Amount)
		} else {
			b.Expenses = b.Expenses.Add(t.Amount)
		}
	}

	bars := make([]Bar, 0, len(byMonth))
	for _, b := range byMonth {
		bars = append(bars, *b)
	}

	slices.SortFunc(bars, func(a, b Bar) int {
		return cmp.Compare(a.Month.String(), b.Month.String())
	})

	return bars
}

// Recent returns the n newest transactions.
func Recent(transactions []models.Transaction, n int) []models.Transaction {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		if c := b.TransactionDate.Compare(a.TransactionDate); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
