// Package invoice calculates the monthly invoices of credit cards.
package invoice

import (
	"time"

	"github.com/moneta-finance/backend/internal/installment"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusOpen    Status = "open"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// Charge is a purchase on a card, possibly in multiple installments.
type Charge struct {
	Amount       decimal.Decimal
	Installments int
	Date         time.Time
}

// Total returns the sum of the installments of all charges that are
// billed in month.
func Total(charges []Charge, month types.Month) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(installment.InMonth(c.Amount, c.Installments, c.Date, month))
	}

	return total
}

// StatusFor returns the status of an invoice with the total and paid amounts.
//
// An invoice is paid when the paid amount covers the total and something
// was paid. Invoices with payments below the total are partial.
func StatusFor(total, paid decimal.Decimal) Status {
	if !paid.IsPositive() {
		return StatusOpen
	}

	if paid.GreaterThanOrEqual(total) {
		return StatusPaid
	}

	return StatusPartial
}

// DueDate returns the due date for an invoice in month. Due days after the
// end of the month are moved to the last day of the month.
func DueDate(day int, month types.Month) time.Time {
	day = min(max(day, 1), month.Days())
	return month.FirstDay().AddDate(0, 0, day-1)
}
