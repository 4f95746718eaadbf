package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BankEditable struct {
	BankName      string `json:"bankName" example:"Nubank"`                                         // Name of the bank
	BankCode      string `json:"bankCode" example:"260" default:""`                                 // Code of the bank in the Brazilian payment system
	BranchNumber  string `json:"branchNumber" example:"0001" default:""`                            // Number of the branch
	AccountNumber string `json:"accountNumber" example:"1234567-8" default:""`                      // Number of the account
	AccountType   string `json:"accountType" example:"checking" default:""`                         // Type of the account, e.g. checking or savings
	Nickname      string `json:"nickname" example:"Conta principal" default:""`                     // Nickname for the account
	LogoURL       string `json:"logoUrl" example:"https://example.com/logos/nubank.png" default:""` // URL of the logo of the bank
}

// model returns the database resource for the editable fields
func (editable BankEditable) model() models.Bank {
	return models.Bank{
		BankName:      editable.BankName,
		BankCode:      editable.BankCode,
		BranchNumber:  editable.BranchNumber,
		AccountNumber: editable.AccountNumber,
		AccountType:   editable.AccountType,
		Nickname:      editable.Nickname,
		LogoURL:       editable.LogoURL,
	}
}

func newBankEditable(model models.Bank) BankEditable {
	return BankEditable{
		BankName:      model.BankName,
		BankCode:      model.BankCode,
		BranchNumber:  model.BranchNumber,
		AccountNumber: model.AccountNumber,
		AccountType:   model.AccountType,
		Nickname:      model.Nickname,
		LogoURL:       model.LogoURL,
	}
}

type BankLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/banks/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                       // The bank itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?source=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions moving money from or to the bank account
}

// Bank is the API representation of a bank account.
type Bank struct {
	models.DefaultModel
	BankEditable
	Balance decimal.Decimal `json:"balance" example:"1520.35"` // Income into the account minus expenses from it
	Links   BankLinks       `json:"links"`
}

func newBank(c *gin.Context, model models.Bank) (Bank, error) {
	url := c.GetString(string(models.DBContextURL))

	balance, err := model.Balance(models.DB)
	if err != nil {
		return Bank{}, err
	}

	return Bank{
		DefaultModel: model.DefaultModel,
		BankEditable: newBankEditable(model),
		Balance:      balance,
		Links: BankLinks{
			Self:         fmt.Sprintf("%s/v1/banks/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?source=%s", url, model.ID),
		},
	}, nil
}

type BankListResponse struct {
	Data       []Bank      `json:"data"`                                                          // List of banks
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BankCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BankResponse `json:"data"`                                                          // List of created banks
}

func (b *BankCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BankResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BankResponse struct {
	Data  *Bank   `json:"data"`                                                          // Data for the bank
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this bank
}

type BankQueryFilter struct {
	BankName    string `form:"bankName" filterField:"false"` // Fuzzy filter for the bank name
	Nickname    string `form:"nickname" filterField:"false"` // Fuzzy filter for the nickname
	BankCode    string `form:"bankCode"`                     // By bank code
	AccountType string `form:"accountType"`                  // By account type
	Search      string `form:"search" filterField:"false"`   // By string in bank name or nickname
	Offset      uint   `form:"offset" filterField:"false"`   // The offset of the first bank returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`    // Maximum number of banks to return. Defaults to 50.
}

func (f BankQueryFilter) model() models.Bank {
	return models.Bank{
		BankCode:    f.BankCode,
		AccountType: f.AccountType,
	}
}
