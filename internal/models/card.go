package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/invoice"
	"github.com/moneta-finance/backend/internal/presets"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandElo        CardBrand = "elo"
)

// Card is a credit card.
type Card struct {
	DefaultModel
	Owned
	CardBrand         CardBrand        `json:"cardBrand"`
	CardNickname      string           `json:"cardNickname"`
	CardNumberLast4   string           `json:"cardNumberLast4"`
	CardholderName    string           `json:"cardholderName"`
	CardColor         string           `json:"cardColor"`
	CardGradientStart string           `json:"cardGradientStart"`
	CardGradientEnd   string           `json:"cardGradientEnd"`
	CreditLimit       *decimal.Decimal `json:"creditLimit" gorm:"type:DECIMAL(20,8)"`
	ExpirationMonth   *int             `json:"expirationMonth"`
	ExpirationYear    *int             `json:"expirationYear"`
	BillingDueDay     *int             `json:"billingDueDay"`
}

var (
	fourDigits = regexp.MustCompile(`^[0-9]{4}$`)
	hexColor   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// BeforeSave validates the card and applies the default colors.
func (c *Card) BeforeSave(_ *gorm.DB) error {
	c.CardBrand = CardBrand(strings.ToLower(strings.TrimSpace(string(c.CardBrand))))
	switch c.CardBrand {
	case BrandVisa, BrandMastercard, BrandAmex, BrandElo:
	default:
		return ErrCardBrandInvalid
	}

	c.CardNickname = strings.TrimSpace(c.CardNickname)
	if c.CardNickname == "" {
		return ErrCardNicknameEmpty
	}

	c.CardNumberLast4 = strings.TrimSpace(c.CardNumberLast4)
	if c.CardNumberLast4 != "" && !fourDigits.MatchString(c.CardNumberLast4) {
		return ErrCardLast4Invalid
	}

	c.CardholderName = strings.ToUpper(strings.TrimSpace(c.CardholderName))

	preset := presets.Default()
	if c.CardGradientStart == "" {
		c.CardGradientStart = preset.GradientStart
	}
	if c.CardGradientEnd == "" {
		c.CardGradientEnd = preset.GradientEnd
	}
	if c.CardColor == "" {
		c.CardColor = preset.Accent
	}

	for _, color := range []string{c.CardColor, c.CardGradientStart, c.CardGradientEnd} {
		if !hexColor.MatchString(color) {
			return ErrColorInvalid
		}
	}

	if c.CreditLimit != nil && c.CreditLimit.IsNegative() {
		return ErrCreditLimitNegative
	}

	if c.ExpirationMonth != nil && (*c.ExpirationMonth < 1 || *c.ExpirationMonth > 12) {
		return ErrExpirationMonthInvalid
	}

	if c.ExpirationYear != nil && (*c.ExpirationYear < 1000 || *c.ExpirationYear > 9999) {
		return ErrExpirationYearInvalid
	}

	if c.BillingDueDay != nil && (*c.BillingDueDay < 1 || *c.BillingDueDay > 31) {
		return ErrBillingDueDayInvalid
	}

	return nil
}

// ApplyPreset sets the colors of the card to the ones of the preset.
func (c *Card) ApplyPreset(p presets.Preset) {
	c.CardGradientStart = p.GradientStart
	c.CardGradientEnd = p.GradientEnd
	c.CardColor = p.Accent
}

// DueDate returns the date the invoice for month is due. The second
// return value is false if the card has no billing due day.
func (c Card) DueDate(month types.Month) (time.Time, bool) {
	if c.BillingDueDay == nil {
		return time.Time{}, false
	}

	return invoice.DueDate(*c.BillingDueDay, month), true
}

// Expenses returns the expenses charged to the card that started before
// the end of month, oldest first.
func (c Card) Expenses(db *gorm.DB, month types.Month) ([]Transaction, error) {
	var transactions []Transaction
	err := Scope(db, c.UserID).
		Where(&Transaction{Type: TypeExpense, SourceType: SourceCard, SourceID: &c.ID}).
		Where("transaction_date < ?", month.AddDate(0, 1).FirstDay()).
		Order("transaction_date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Charges returns the expenses of the card as input for the
// invoice calculation of month.
func (c Card) Charges(db *gorm.DB, month types.Month) ([]invoice.Charge, error) {
	transactions, err := c.Expenses(db, month)
	if err != nil {
		return nil, err
	}

	charges := make([]invoice.Charge, 0, len(transactions))
	for _, t := range transactions {
		charges = append(charges, invoice.Charge{
			Amount:       t.Amount,
			Installments: t.Installments,
			Date:         t.TransactionDate,
		})
	}

	return charges, nil
}

// cardExists verifies that a card with the ID exists for the user.
func cardExists(db *gorm.DB, userID, id uuid.UUID) error {
	return Scope(db, userID).First(&Card{}, "id = ?", id).Error
}

// BeforeDelete removes the card from the transactions that reference it.
// Its invoices are deleted by the foreign key.
func (c *Card) BeforeDelete(tx *gorm.DB) error {
	return detachAccount(tx, SourceCard, c.ID)
}
