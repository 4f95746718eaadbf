// Package installment computes the state of purchases split into
// monthly installments.
package installment

import (
	"time"

	"github.com/moneta-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status is the computed installment state of a purchase.
type Status struct {
	TotalInstallments     int             `json:"totalInstallments" example:"12"`    // Number of installments, at least 1
	PaidInstallments      int             `json:"paidInstallments" example:"3"`      // Installments already paid
	RemainingInstallments int             `json:"remainingInstallments" example:"9"` // Installments still to be paid
	InstallmentValue      decimal.Decimal `json:"installmentValue" example:"100"`    // Value of a single installment
	PaidValue             decimal.Decimal `json:"paidValue" example:"300"`           // Value already paid
	RemainingValue        decimal.Decimal `json:"remainingValue" example:"900"`      // Value still to be paid
	IsPaidOff             bool            `json:"isPaidOff" example:"false"`         // Are all installments paid?
}

// Calculate returns the installment status for an amount split into total
// installments of which paid have been paid.
//
// total is floored at 1 and paid is clamped to [0, total], so any input
// produces a consistent status.
func Calculate(amount decimal.Decimal, total, paid int) Status {
	total = max(total, 1)
	paid = min(max(paid, 0), total)

	value := amount.Div(decimal.NewFromInt(int64(total)))
	remaining := max(total-paid, 0)

	return Status{
		TotalInstallments:     total,
		PaidInstallments:      paid,
		RemainingInstallments: remaining,
		InstallmentValue:      value,
		PaidValue:             value.Mul(decimal.NewFromInt(int64(paid))),
		RemainingValue:        value.Mul(decimal.NewFromInt(int64(remaining))),
		IsPaidOff:             remaining == 0,
	}
}

// ForTransaction returns the status for a stored transaction.
//
// A missing paid count means nothing has been paid for purchases in
// multiple installments, while single payments are considered paid off.
func ForTransaction(amount decimal.Decimal, installments int, installmentNumber *int) Status {
	total := max(installments, 1)

	paid := total
	if total > 1 {
		paid = 0
	}

	if installmentNumber != nil {
		paid = *installmentNumber
	}

	return Calculate(amount, total, paid)
}

// Part is a single installment of a Schedule.
type Part struct {
	Number int             `json:"number" example:"1"`      // 1-based number of the installment
	Month  types.Month     `json:"month" example:"2024-02"` // Month the installment is charged in
	Amount decimal.Decimal `json:"amount" example:"33.33"`  // Value of the installment
}

// Schedule splits amount into total monthly installments starting in the
// month of first. All parts are rounded down to cents except the last one,
// which carries the remainder so that the parts always sum to amount.
func Schedule(amount decimal.Decimal, total int, first time.Time) []Part {
	total = max(total, 1)

	value := amount.Div(decimal.NewFromInt(int64(total))).RoundFloor(2)
	month := types.MonthOf(first)

	parts := make([]Part, 0, total)
	sum := decimal.Zero
	for i := range total - 1 {
		parts = append(parts, Part{
			Number: i + 1,
			Month:  month.AddDate(0, i),
			Amount: value,
		})
		sum = sum.Add(value)
	}

	parts = append(parts, Part{
		Number: total,
		Month:  month.AddDate(0, total-1),
		Amount: amount.Sub(sum),
	})

	return parts
}

// InMonth returns the value of the installment of the schedule that is
// charged in month, or zero if none is.
func InMonth(amount decimal.Decimal, total int, first time.Time, month types.Month) decimal.Decimal {
	index := types.MonthOf(first).MonthsBetween(month)
	if index < 0 || index >= max(total, 1) {
		return decimal.Zero
	}

	return Schedule(amount, total, first)[index].Amount
}
