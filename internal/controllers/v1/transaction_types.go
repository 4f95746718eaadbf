package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/categorydisplay"
	"github.com/moneta-finance/backend/internal/installment"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/period"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type              models.TransactionType `json:"type" example:"expense"`                                                     // Either expense or income
	Amount            decimal.Decimal        `json:"amount" example:"1200" minimum:"0.00000001" maximum:"999999999999.99999999"` // The amount of the transaction, greater than 0
	Description       string                 `json:"description" example:"Notebook"`                                             // Description, at least 3 characters
	CategoryID        *uuid.UUID             `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                  // ID of the category. If empty on creation, the category rules are applied
	SourceType        models.SourceType      `json:"sourceType" example:"card" default:""`                                       // Type of the account the money comes from: card or bank
	SourceID          *uuid.UUID             `json:"sourceId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                    // ID of the card or bank the money comes from
	DestinationType   models.SourceType      `json:"destinationType" example:"bank" default:""`                                  // Type of the account the money goes to: card or bank
	DestinationID     *uuid.UUID             `json:"destinationId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`               // ID of the card or bank the money goes to
	TransferType      string                 `json:"transferType" example:"ted" default:""`                                      // Kind of transfer, e.g. ted or pix
	PaymentMethod     string                 `json:"paymentMethod" example:"credit" default:"debit"`                             // How the expense was paid. Always empty for income
	TransactionDate   time.Time              `json:"transactionDate" example:"2024-05-12T00:00:00Z"`                             // Date of the transaction. Defaults to today
	Installments      int                    `json:"installments" example:"12" default:"1"`                                      // Number of installments. Always 1 for income
	InstallmentNumber *int                   `json:"installmentNumber" example:"3" default:"1"`                                  // Number of installments already paid
	Notes             string                 `json:"notes" example:"Bought on sale" default:""`                                  // Notes on the transaction
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:              editable.Type,
		Amount:            editable.Amount,
		Description:       editable.Description,
		CategoryID:        editable.CategoryID,
		SourceType:        editable.SourceType,
		SourceID:          editable.SourceID,
		DestinationType:   editable.DestinationType,
		DestinationID:     editable.DestinationID,
		TransferType:      editable.TransferType,
		PaymentMethod:     editable.PaymentMethod,
		TransactionDate:   editable.TransactionDate,
		Installments:      editable.Installments,
		InstallmentNumber: editable.InstallmentNumber,
		Notes:             editable.Notes,
	}
}

func newTransactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		Type:              model.Type,
		Amount:            model.Amount,
		Description:       model.Description,
		CategoryID:        model.CategoryID,
		SourceType:        model.SourceType,
		SourceID:          model.SourceID,
		DestinationType:   model.DestinationType,
		DestinationID:     model.DestinationID,
		TransferType:      model.TransferType,
		PaymentMethod:     model.PaymentMethod,
		TransactionDate:   model.TransactionDate,
		Installments:      model.Installments,
		InstallmentNumber: model.InstallmentNumber,
		Notes:             model.Notes,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Source string `json:"source" example:"https://example.com/api/v1/cards/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`      // The card or bank the money comes from. Empty if the transaction has no source
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	InstallmentStatus installment.Status   `json:"installmentStatus"` // Computed state of the installments
	Category          categorydisplay.Info `json:"category"`          // Name, icon and color of the category to display
	Links             TransactionLinks     `json:"links"`
}

// newTransaction returns the API representation of the transaction. The
// category of the model must be loaded.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	links := TransactionLinks{
		Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
	}

	if model.SourceID != nil {
		links.Source = fmt.Sprintf("%s/v1/%ss/%s", url, model.SourceType, *model.SourceID)
	}

	return Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: newTransactionEditable(model),
		InstallmentStatus:   model.InstallmentStatus(),
		Category:            model.Category.Display(),
		Links:               links,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
}

type TransactionQueryFilter struct {
	Type              models.TransactionType `form:"type"`                                  // Either expense or income
	CategoryID        string                 `form:"category" filterField:"false"`          // By ID of the category. Empty for uncategorized transactions
	SourceID          string                 `form:"source" filterField:"false"`            // By ID of the card or bank the money comes from
	SourceType        models.SourceType      `form:"sourceType"`                            // By type of the source: card or bank
	PaymentMethod     string                 `form:"paymentMethod"`                         // By payment method
	DateRange         period.Kind            `form:"dateRange" filterField:"false"`         // Named date range: today, week, month, last30 or custom
	FromDate          time.Time              `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time              `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Search            string                 `form:"search" filterField:"false"`            // By string in description or notes
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	if f.Type != "" && f.Type != models.TypeExpense && f.Type != models.TypeIncome {
		return models.Transaction{}, errTypeFilter
	}

	if f.SourceType != "" && f.SourceType != models.SourceCard && f.SourceType != models.SourceBank {
		return models.Transaction{}, errSourceTypeFilter
	}

	return models.Transaction{
		Type:          f.Type,
		SourceType:    f.SourceType,
		PaymentMethod: f.PaymentMethod,
	}, nil
}

// dateRange resolves the date filters. Without a named range, fromDate and
// untilDate are used as a custom range.
func (f TransactionQueryFilter) dateRange(now time.Time) (period.Range, error) {
	kind := f.DateRange
	if kind == "" {
		kind = period.Custom
	}

	return period.Resolve(kind, now, f.FromDate, f.UntilDate)
}
