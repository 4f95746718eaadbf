package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/invoice"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

type InvoiceEditable struct {
	CardID     uuid.UUID       `json:"cardId" example:"4ad3e4c5-8e2a-4a3e-bb0f-2f1a9bf3c1de"` // ID of the card. Cannot be changed
	Month      types.Month     `json:"month" example:"2024-05"`                               // Month of the invoice. Cannot be changed
	PaidAmount decimal.Decimal `json:"paidAmount" example:"250" minimum:"0"`                  // Amount already paid
}

type InvoiceLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/invoices/0e6c3f0a-18ae-4bb8-9cd5-2f5e8f3a9d11"`                    // The invoice itself
	Card      string `json:"card" example:"https://example.com/api/v1/cards/4ad3e4c5-8e2a-4a3e-bb0f-2f1a9bf3c1de"`                       // The card of the invoice
	Payments  string `json:"payments" example:"https://example.com/api/v1/invoices/0e6c3f0a-18ae-4bb8-9cd5-2f5e8f3a9d11/payments"`       // Endpoint to register payments
	Statement string `json:"statement" example:"https://example.com/api/v1/invoices/0e6c3f0a-18ae-4bb8-9cd5-2f5e8f3a9d11/statement.pdf"` // PDF statement of the invoice
}

// Invoice is the API representation of the invoice of a card for one month.
type Invoice struct {
	models.DefaultModel
	InvoiceEditable
	TotalAmount     decimal.Decimal `json:"totalAmount" example:"740.5"`            // Sum of the installments charged in the month
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"490.5"`        // Amount still to be paid, never negative
	Status          invoice.Status  `json:"status" example:"partial"`               // One of open, partial or paid
	PaidAt          *time.Time      `json:"paidAt" example:"2024-06-08T12:00:00Z"`  // Time the invoice was paid in full
	DueDate         *time.Time      `json:"dueDate" example:"2024-05-10T00:00:00Z"` // Due date, if the card has a billing due day
	Links           InvoiceLinks    `json:"links"`
}

func newInvoice(c *gin.Context, model models.CardInvoice, card models.Card) Invoice {
	url := c.GetString(string(models.DBContextURL))

	remaining := model.TotalAmount.Sub(model.PaidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	var dueDate *time.Time
	if d, ok := model.DueDate(card); ok {
		dueDate = &d
	}

	return Invoice{
		DefaultModel: model.DefaultModel,
		InvoiceEditable: InvoiceEditable{
			CardID:     model.CardID,
			Month:      model.Month,
			PaidAmount: model.PaidAmount,
		},
		TotalAmount:     model.TotalAmount,
		RemainingAmount: remaining,
		Status:          model.Status,
		PaidAt:          model.PaidAt,
		DueDate:         dueDate,
		Links: InvoiceLinks{
			Self:      fmt.Sprintf("%s/v1/invoices/%s", url, model.ID),
			Card:      fmt.Sprintf("%s/v1/cards/%s", url, model.CardID),
			Payments:  fmt.Sprintf("%s/v1/invoices/%s/payments", url, model.ID),
			Statement: fmt.Sprintf("%s/v1/invoices/%s/statement.pdf", url, model.ID),
		},
	}
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                                          // List of invoices
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InvoiceCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []InvoiceResponse `json:"data"`                                                          // List of created invoices
}

func (r *InvoiceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, InvoiceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvoiceResponse struct {
	Data  *Invoice `json:"data"`                                                          // Data for the invoice
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this invoice
}

type InvoiceQueryFilter struct {
	CardID string         `form:"card"`                       // By card ID
	Month  types.Month    `form:"month"`                      // By month
	Status invoice.Status `form:"status"`                     // By status
	Offset uint           `form:"offset" filterField:"false"` // The offset of the first invoice returned. Defaults to 0.
	Limit  int            `form:"limit" filterField:"false"`  // Maximum number of invoices to return. Defaults to 50.
}

func (f InvoiceQueryFilter) model() (models.CardInvoice, error) {
	cardID, err := httputil.UUIDFromString(f.CardID)
	if err != nil {
		return models.CardInvoice{}, err
	}

	return models.CardInvoice{
		CardID: cardID,
		Month:  f.Month,
		Status: f.Status,
	}, nil
}

type PaymentEditable struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001"` // Amount paid
}
