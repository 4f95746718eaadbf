package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionsSum returns the sum of all transactions matching incoming
// minus the sum of all transactions matching outgoing.
//
// Zero values in the filters are ignored, like in every gorm struct query.
func TransactionsSum(db *gorm.DB, incoming, outgoing Transaction) (decimal.Decimal, error) {
	var outgoingSum, incomingSum decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Where(&outgoing).
		Select("SUM(amount)").
		Row().
		Scan(&outgoingSum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting transactions with attributes %v failed: %w", outgoing, err)
	}

	err = db.Model(&Transaction{}).
		Where(&incoming).
		Select("SUM(amount)").
		Row().
		Scan(&incomingSum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting transactions with attributes %v failed: %w", incoming, err)
	}

	// If SUM() returns NULL, there are no transactions
	if !outgoingSum.Valid {
		outgoingSum.Decimal = decimal.Zero
	}

	if !incomingSum.Valid {
		incomingSum.Decimal = decimal.Zero
	}

	return incomingSum.Decimal.Sub(outgoingSum.Decimal), nil
}
