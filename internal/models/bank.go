package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bank is a bank account transactions can be paid from or into.
type Bank struct {
	DefaultModel
	Owned
	BankName      string `json:"bankName"`
	BankCode      string `json:"bankCode"`
	BranchNumber  string `json:"branchNumber"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Nickname      string `json:"nickname"`
	LogoURL       string `json:"logoUrl"`
}

func (b *Bank) BeforeSave(_ *gorm.DB) error {
	b.BankName = strings.TrimSpace(b.BankName)
	b.BankCode = strings.TrimSpace(b.BankCode)
	b.BranchNumber = strings.TrimSpace(b.BranchNumber)
	b.AccountNumber = strings.TrimSpace(b.AccountNumber)
	b.AccountType = strings.TrimSpace(b.AccountType)
	b.Nickname = strings.TrimSpace(b.Nickname)
	b.LogoURL = strings.TrimSpace(b.LogoURL)

	if b.BankName == "" {
		return ErrBankNameEmpty
	}

	if b.LogoURL != "" {
		u, err := url.ParseRequestURI(b.LogoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrLogoURLInvalid
		}
	}

	return nil
}

// Balance returns the sum of all income minus the sum of all expenses
// that have the bank as source.
func (b Bank) Balance(db *gorm.DB) (decimal.Decimal, error) {
	id := b.ID
	incoming := Transaction{Owned: b.Owned, Type: TypeIncome, SourceType: SourceBank, SourceID: &id}
	outgoing := Transaction{Owned: b.Owned, Type: TypeExpense, SourceType: SourceBank, SourceID: &id}

	balance, err := TransactionsSum(db, incoming, outgoing)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance for bank %s: %w", b.ID, err)
	}

	return balance, nil
}

// bankExists verifies that a bank with the ID exists for the user.
func bankExists(db *gorm.DB, userID, id uuid.UUID) error {
	return Scope(db, userID).First(&Bank{}, "id = ?", id).Error
}

// BeforeDelete removes the bank from the transactions that reference it.
func (b *Bank) BeforeDelete(tx *gorm.DB) error {
	return detachAccount(tx, SourceBank, b.ID)
}
