package models_test

import (
	"time"

	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBankValidation() {
	tests := []struct {
		name string
		bank models.Bank
		err  error
	}{
		{"Name", models.Bank{BankName: " "}, models.ErrBankNameEmpty},
		{"Relative logo", models.Bank{BankName: "Nubank", LogoURL: "/logo.png"}, models.ErrLogoURLInvalid},
		{"Logo scheme", models.Bank{BankName: "Nubank", LogoURL: "ftp://example.com/logo.png"}, models.ErrLogoURLInvalid},
	}

	for _, tt := range tests {
		bank := tt.bank
		bank.UserID = test.UserID
		err := models.DB.Create(&bank).Error
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}

	bank := suite.createTestBank(models.Bank{BankName: " Itaú ", LogoURL: "https://example.com/itau.png"})
	suite.Assert().Equal("Itaú", bank.BankName)
}

func (suite *TestSuiteStandard) TestBankBalance() {
	bank := suite.createTestBank(models.Bank{})
	other := suite.createTestBank(models.Bank{})
	date := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)

	suite.createTestTransaction(models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromFloat(1000), SourceType: models.SourceBank, SourceID: &bank.ID, TransactionDate: date})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromFloat(250.5), SourceType: models.SourceBank, SourceID: &bank.ID, TransactionDate: date})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromFloat(99), SourceType: models.SourceBank, SourceID: &other.ID, TransactionDate: date})

	balance, err := bank.Balance(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(balance.Equal(decimal.NewFromFloat(749.5)), "Balance is %s", balance)
}

func (suite *TestSuiteStandard) TestBankBalanceDBFail() {
	bank := suite.createTestBank(models.Bank{})
	suite.CloseDB()

	_, err := bank.Balance(models.DB)
	suite.Assert().NotNil(err)
}

// TestBankDeleteDetachesTransactions verifies that deleting a bank removes
// it as source and destination of transactions, including deleted ones.
func (suite *TestSuiteStandard) TestBankDeleteDetachesTransactions() {
	bank := suite.createTestBank(models.Bank{})

	expense := suite.createTestTransaction(models.Transaction{SourceType: models.SourceBank, SourceID: &bank.ID})
	income := suite.createTestTransaction(models.Transaction{Type: models.TypeIncome, DestinationType: models.SourceBank, DestinationID: &bank.ID})
	deleted := suite.createTestTransaction(models.Transaction{SourceType: models.SourceBank, SourceID: &bank.ID})
	suite.Require().Nil(models.DB.Delete(&deleted).Error)

	suite.Require().Nil(models.DB.Unscoped().Delete(&bank).Error)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", expense.ID).Error)
	suite.Assert().Nil(stored.SourceID)
	suite.Assert().Equal(models.SourceType(""), stored.SourceType)

	suite.Require().Nil(models.DB.First(&stored, "id = ?", income.ID).Error)
	suite.Assert().Nil(stored.DestinationID)
	suite.Assert().Equal(models.SourceType(""), stored.DestinationType)

	suite.Require().Nil(models.DB.Unscoped().First(&stored, "id = ?", deleted.ID).Error)
	suite.Assert().Nil(stored.SourceID)
}
