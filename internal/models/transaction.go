package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/installment"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the type of transactions and categories.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

func (t TransactionType) valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// SourceType is the kind of account money is moved from or to.
type SourceType string

const (
	SourceCard SourceType = "card"
	SourceBank SourceType = "bank"
)

const DefaultPaymentMethod = "debit"

// Transaction is an income or an expense.
type Transaction struct {
	DefaultModel
	Owned
	Type              TransactionType `json:"type" gorm:"index"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Description       string          `json:"description"`
	CategoryID        *uuid.UUID      `json:"categoryId"`
	Category          *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	SourceType        SourceType      `json:"sourceType"`
	SourceID          *uuid.UUID      `json:"sourceId" gorm:"index"`
	DestinationType   SourceType      `json:"destinationType"`
	DestinationID     *uuid.UUID      `json:"destinationId"`
	TransferType      string          `json:"transferType"`
	PaymentMethod     string          `json:"paymentMethod"`
	TransactionDate   time.Time       `json:"transactionDate" gorm:"index"`
	Installments      int             `json:"installments"`
	InstallmentNumber *int            `json:"installmentNumber"` // Number of installments already paid
	Notes             string          `json:"notes"`
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.TransactionDate = t.TransactionDate.In(time.UTC)
	return nil
}

// BeforeSave validates and normalizes the transaction.
//
// Income is always paid at once and has no payment method. Expenses
// default to a debit payment.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Notes = strings.TrimSpace(t.Notes)
	t.PaymentMethod = strings.ToLower(strings.TrimSpace(t.PaymentMethod))
	t.TransferType = strings.TrimSpace(t.TransferType)

	if !t.Type.valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if utf8.RuneCountInString(t.Description) < 3 {
		return ErrDescriptionTooShort
	}

	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now().In(time.UTC).Truncate(24 * time.Hour)
	} else {
		t.TransactionDate = t.TransactionDate.In(time.UTC)
	}

	if t.Installments == 0 {
		t.Installments = 1
	}

	if t.Installments < 0 {
		return ErrInstallmentsInvalid
	}

	if t.Type == TypeIncome {
		t.Installments = 1
		t.PaymentMethod = ""
	} else if t.PaymentMethod == "" {
		t.PaymentMethod = DefaultPaymentMethod
	}

	if t.InstallmentNumber != nil && (*t.InstallmentNumber < 0 || *t.InstallmentNumber > t.Installments) {
		return ErrInstallmentNumberInvalid
	}

	// A nil UUID is the same as no reference
	t.CategoryID = nilIfEmpty(t.CategoryID)
	t.SourceID = nilIfEmpty(t.SourceID)
	t.DestinationID = nilIfEmpty(t.DestinationID)

	if t.CategoryID != nil {
		var category Category
		err := Scope(tx, t.UserID).First(&category, "id = ?", *t.CategoryID).Error
		if err != nil {
			return fmt.Errorf("no existing category with specified CategoryID: %w", err)
		}

		if category.Type != t.Type {
			return ErrCategoryTypeMismatch
		}
	}

	err := t.checkAccount(tx, t.SourceType, t.SourceID, ErrSourceIncomplete)
	if err != nil {
		return err
	}

	return t.checkAccount(tx, t.DestinationType, t.DestinationID, ErrDestinationIncomplete)
}

// checkAccount verifies that an account reference is complete and points
// to a card or bank of the user.
func (t *Transaction) checkAccount(tx *gorm.DB, kind SourceType, id *uuid.UUID, incomplete error) error {
	if kind == "" && id == nil {
		return nil
	}

	if kind == "" || id == nil {
		return incomplete
	}

	switch kind {
	case SourceCard:
		if err := cardExists(tx, t.UserID, *id); err != nil {
			return fmt.Errorf("no existing card with specified ID: %w", err)
		}
	case SourceBank:
		if err := bankExists(tx, t.UserID, *id); err != nil {
			return fmt.Errorf("no existing bank with specified ID: %w", err)
		}
	default:
		return ErrSourceTypeInvalid
	}

	return nil
}

// detachAccount clears the source and destination of all transactions that
// reference the card or bank with the ID.
func detachAccount(tx *gorm.DB, kind SourceType, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}

	err := tx.Unscoped().Model(&Transaction{}).
		Where("source_type = ? AND source_id = ?", kind, id).
		UpdateColumns(map[string]any{"source_type": "", "source_id": nil}).Error
	if err != nil {
		return err
	}

	return tx.Unscoped().Model(&Transaction{}).
		Where("destination_type = ? AND destination_id = ?", kind, id).
		UpdateColumns(map[string]any{"destination_type": "", "destination_id": nil}).Error
}

func nilIfEmpty(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

// InstallmentStatus returns the installment status of the transaction.
func (t Transaction) InstallmentStatus() installment.Status {
	return installment.ForTransaction(t.Amount, t.Installments, t.InstallmentNumber)
}
