package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/invoice"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardInvoice is the invoice of a card for one month.
type CardInvoice struct {
	DefaultModel
	Owned
	CardID      uuid.UUID       `json:"cardId" gorm:"uniqueIndex:card_invoice_card_month"`
	Card        Card            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Month       types.Month     `json:"month" gorm:"uniqueIndex:card_invoice_card_month"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)"`
	PaidAmount  decimal.Decimal `json:"paidAmount" gorm:"type:DECIMAL(20,8)"`
	Status      invoice.Status  `json:"status"`
	PaidAt      *time.Time      `json:"paidAt"`
}

func (i *CardInvoice) BeforeSave(_ *gorm.DB) error {
	i.Status = invoice.StatusFor(i.TotalAmount, i.PaidAmount)

	if i.Status == invoice.StatusPaid && i.PaidAt == nil {
		now := time.Now().In(time.UTC)
		i.PaidAt = &now
	} else if i.Status != invoice.StatusPaid {
		i.PaidAt = nil
	}

	return nil
}

func (i *CardInvoice) AfterFind(tx *gorm.DB) (err error) {
	err = i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	if i.PaidAt != nil {
		t := i.PaidAt.In(time.UTC)
		i.PaidAt = &t
	}
	return nil
}

// Reconcile recalculates the invoice of the card for month from the card's
// expenses and stores it with an upsert on card and month. Payments already
// registered for the invoice are kept.
func (c Card) Reconcile(db *gorm.DB, month types.Month) (CardInvoice, error) {
	charges, err := c.Charges(db, month)
	if err != nil {
		return CardInvoice{}, err
	}

	var existing CardInvoice
	err = db.Where(&CardInvoice{CardID: c.ID}).Where("month = ?", month).First(&existing).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return CardInvoice{}, err
	}

	i := CardInvoice{
		Owned:       c.Owned,
		CardID:      c.ID,
		Month:       month,
		TotalAmount: invoice.Total(charges, month),
		PaidAmount:  existing.PaidAmount,
		PaidAt:      existing.PaidAt,
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "card_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_amount", "status", "paid_at", "updated_at"}),
	}).Create(&i).Error
	if err != nil {
		return CardInvoice{}, err
	}

	var stored CardInvoice
	err = db.Where(&CardInvoice{CardID: c.ID}).Where("month = ?", month).First(&stored).Error
	if err != nil {
		return CardInvoice{}, err
	}

	return stored, nil
}

// Pay registers a payment on the invoice.
func (i *CardInvoice) Pay(db *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrPaymentNotPositive
	}

	i.PaidAmount = i.PaidAmount.Add(amount)
	return db.Omit(clause.Associations).Save(i).Error
}

// DueDate returns the date the invoice is due, if the card has a due day.
func (i CardInvoice) DueDate(card Card) (time.Time, bool) {
	return card.DueDate(i.Month)
}
