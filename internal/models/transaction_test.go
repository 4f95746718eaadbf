package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	transaction := suite.createTestTransaction(models.Transaction{})

	suite.Assert().Equal(1, transaction.Installments)
	suite.Assert().Equal(models.DefaultPaymentMethod, transaction.PaymentMethod)
	suite.Assert().False(transaction.TransactionDate.IsZero())
	suite.Assert().Equal(time.UTC, transaction.TransactionDate.Location())
}

func (suite *TestSuiteStandard) TestTransactionIncomeNormalization() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:          models.TypeIncome,
		Installments:  6,
		PaymentMethod: "credit",
	})

	suite.Assert().Equal(1, transaction.Installments)
	suite.Assert().Equal("", transaction.PaymentMethod)
}

func (suite *TestSuiteStandard) TestTransactionTrimsFields() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description:   "  Mercado  ",
		Notes:         " semanal ",
		PaymentMethod: " PIX ",
	})

	suite.Assert().Equal("Mercado", transaction.Description)
	suite.Assert().Equal("semanal", transaction.Notes)
	suite.Assert().Equal("pix", transaction.PaymentMethod)
}

func (suite *TestSuiteStandard) TestTransactionNilUUIDs() {
	empty := uuid.Nil
	transaction := suite.createTestTransaction(models.Transaction{
		CategoryID: &empty,
		SourceID:   &empty,
	})

	suite.Assert().Nil(transaction.CategoryID)
	suite.Assert().Nil(transaction.SourceID)
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	income := suite.createTestCategory(models.Category{Type: models.TypeIncome})
	otherCategory := suite.createTestCategory(models.Category{UserID: test.OtherUserID})
	otherCard := suite.createTestCard(models.Card{Owned: models.Owned{UserID: test.OtherUserID}})
	missing := uuid.New()
	three := 3

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Invalid type", models.Transaction{Type: "transfer"}, models.ErrTransactionTypeInvalid},
		{"Negative amount", models.Transaction{Amount: decimal.NewFromFloat(-5)}, models.ErrAmountNotPositive},
		{"Short description", models.Transaction{Description: "ab"}, models.ErrDescriptionTooShort},
		{"Negative installments", models.Transaction{Installments: -2}, models.ErrInstallmentsInvalid},
		{"Installment number too high", models.Transaction{Installments: 2, InstallmentNumber: &three}, models.ErrInstallmentNumberInvalid},
		{"Source without ID", models.Transaction{SourceType: models.SourceCard}, models.ErrSourceIncomplete},
		{"Source ID without type", models.Transaction{SourceID: &missing}, models.ErrSourceIncomplete},
		{"Destination without ID", models.Transaction{DestinationType: models.SourceBank}, models.ErrDestinationIncomplete},
		{"Invalid source type", models.Transaction{SourceType: "wallet", SourceID: &missing}, models.ErrSourceTypeInvalid},
		{"Missing card", models.Transaction{SourceType: models.SourceCard, SourceID: &missing}, models.ErrResourceNotFound},
		{"Card of other user", models.Transaction{SourceType: models.SourceCard, SourceID: &otherCard.ID}, models.ErrResourceNotFound},
		{"Missing bank", models.Transaction{SourceType: models.SourceBank, SourceID: &missing}, models.ErrResourceNotFound},
		{"Category of other user", models.Transaction{CategoryID: &otherCategory.ID}, models.ErrResourceNotFound},
		{"Category type mismatch", models.Transaction{CategoryID: &income.ID}, models.ErrCategoryTypeMismatch},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := tt.transaction
			transaction.UserID = test.UserID
			if transaction.Type == "" {
				transaction.Type = models.TypeExpense
			}
			if transaction.Amount.IsZero() {
				transaction.Amount = decimal.NewFromFloat(10)
			}
			if transaction.Description == "" {
				transaction.Description = "Validation"
			}

			err := models.DB.Create(&transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionWithAccounts() {
	card := suite.createTestCard(models.Card{})
	bank := suite.createTestBank(models.Bank{})
	category := suite.createTestCategory(models.Category{Name: "Mercado"})

	transaction := suite.createTestTransaction(models.Transaction{
		CategoryID:      &category.ID,
		SourceType:      models.SourceCard,
		SourceID:        &card.ID,
		DestinationType: models.SourceBank,
		DestinationID:   &bank.ID,
	})

	var stored models.Transaction
	err := models.DB.Preload("Category").First(&stored, "id = ?", transaction.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("Mercado", stored.Category.Name)
	suite.Assert().Equal(card.ID, *stored.SourceID)
}

func (suite *TestSuiteStandard) TestTransactionCategoryDeleteSetsNull() {
	category := suite.createTestCategory(models.Category{})
	transaction := suite.createTestTransaction(models.Transaction{CategoryID: &category.ID})

	suite.Require().Nil(models.DB.Unscoped().Delete(&category).Error)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", transaction.ID).Error)
	suite.Assert().Nil(stored.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionInstallmentStatus() {
	paid := 2
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:            decimal.NewFromFloat(300),
		Installments:      3,
		InstallmentNumber: &paid,
	})

	status := transaction.InstallmentStatus()
	suite.Assert().Equal(1, status.RemainingInstallments)
	suite.Assert().True(status.RemainingValue.Equal(decimal.NewFromFloat(100)))
	suite.Assert().False(status.IsPaidOff)
}

func (suite *TestSuiteStandard) TestTransactionDBFail() {
	suite.CloseDB()

	err := models.DB.Create(&models.Transaction{
		Owned:       models.Owned{UserID: test.UserID},
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(1),
		Description: "Closed database",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
