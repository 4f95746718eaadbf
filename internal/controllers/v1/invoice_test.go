package v1_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/invoice"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/moneta-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCardWithExpense creates a card with one expense of amount
// in May 2024.
func createTestCardWithExpense(t *testing.T, amount decimal.Decimal) v1.CardResponse {
	card := createTestCard(t, v1.CardEditable{BillingDueDay: intPtr(31)})

	_ = createTestTransaction(t, v1.TransactionEditable{
		Description:     "Supermercado",
		Amount:          amount,
		SourceType:      models.SourceCard,
		SourceID:        &card.Data.ID,
		PaymentMethod:   "credit",
		TransactionDate: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
	})

	return card
}

var may2024 = types.NewMonth(2024, time.May)

func (suite *TestSuiteStandard) TestInvoicesDBClosed() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestInvoice(t, v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/invoices", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.InvoiceListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesOptions() {
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{Month: may2024})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Invoice with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Invoice exists", i.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, idPath("invoices", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}

			r = test.Request(t, http.MethodOptions, fmt.Sprintf("%s/payments", idPath("invoices", tt.id)), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesCreate() {
	card := createTestCardWithExpense(suite.T(), decimal.NewFromInt(400))

	tests := []struct {
		name    string
		invoice v1.InvoiceEditable
		status  int
		err     error
	}{
		{"Card does not exist", v1.InvoiceEditable{CardID: uuid.New(), Month: may2024}, http.StatusNotFound, nil},
		{"Negative paid amount", v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024, PaidAmount: decimal.NewFromInt(-1)}, http.StatusBadRequest, nil},
		{"Partially paid", v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024, PaidAmount: decimal.NewFromInt(150)}, http.StatusCreated, nil},
		{"Duplicate", v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024}, http.StatusBadRequest, models.ErrInvoiceNotUnique},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", []v1.InvoiceEditable{tt.invoice})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.InvoiceCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}

			if tt.status != http.StatusCreated {
				return
			}

			i := response.Data[0].Data
			assert.True(t, i.TotalAmount.Equal(decimal.NewFromInt(400)), "Total is %s", i.TotalAmount)
			assert.True(t, i.RemainingAmount.Equal(decimal.NewFromInt(250)), "Remaining amount is %s", i.RemainingAmount)
			assert.Equal(t, invoice.StatusPartial, i.Status)
			assert.Nil(t, i.PaidAt)

			require.NotNil(t, i.DueDate)
			assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), i.DueDate.UTC())
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesGetSingle() {
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{Month: may2024})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Invoice", i.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No Invoice with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Invoice with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, idPath("invoices", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesGetFilter() {
	card := createTestCardWithExpense(suite.T(), decimal.NewFromInt(100))
	other := createTestCard(suite.T(), v1.CardEditable{})

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: types.NewMonth(2024, time.April)})
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024, PaidAmount: decimal.NewFromInt(100)})
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: other.Data.ID, Month: may2024})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 3, http.StatusOK},
		{"Card", "card=" + card.Data.ID.String(), 2, http.StatusOK},
		{"Invalid card", "card=NotAUUID", 0, http.StatusBadRequest},
		{"Month", "month=2024-05", 2, http.StatusOK},
		{"Invalid month", "month=May", 0, http.StatusBadRequest},
		{"Paid", "status=paid", 1, http.StatusOK},
		{"Open", "status=open", 2, http.StatusOK},
		{"Limit", "limit=1", 1, http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/invoices?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.InvoiceListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.len, response.Pagination.Count)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices", "")
	var response v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "2024-04", response.Data[2].Month.String(), "The newest month must come first")
}

func (suite *TestSuiteStandard) TestInvoicesUpdate() {
	card := createTestCardWithExpense(suite.T(), decimal.NewFromInt(300))
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024})

	tests := []struct {
		name   string
		body   any
		status int
		state  invoice.Status
	}{
		{"Partial payment", map[string]any{"paidAmount": 100}, http.StatusOK, invoice.StatusPartial},
		{"Full payment", map[string]any{"paidAmount": 300}, http.StatusOK, invoice.StatusPaid},
		{"Overpayment", map[string]any{"paidAmount": 350}, http.StatusOK, invoice.StatusPaid},
		{"Back to open", map[string]any{"paidAmount": 0}, http.StatusOK, invoice.StatusOpen},
		{"Negative", map[string]any{"paidAmount": -1}, http.StatusBadRequest, ""},
		{"Month cannot change", map[string]any{"month": "2024-06"}, http.StatusBadRequest, ""},
		{"Card cannot change", map[string]any{"cardId": uuid.New()}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, i.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.InvoiceResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.state, response.Data.Status)
			assert.Equal(t, tt.state == invoice.StatusPaid, response.Data.PaidAt != nil)
			assert.False(t, response.Data.RemainingAmount.IsNegative())
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesPayments() {
	card := createTestCardWithExpense(suite.T(), decimal.NewFromInt(500))
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024})

	tests := []struct {
		name      string
		amount    decimal.Decimal
		status    int
		paid      decimal.Decimal
		remaining decimal.Decimal
		state     invoice.Status
	}{
		{"Zero", decimal.Zero, http.StatusBadRequest, decimal.Zero, decimal.Zero, ""},
		{"Negative", decimal.NewFromInt(-10), http.StatusBadRequest, decimal.Zero, decimal.Zero, ""},
		{"First payment", decimal.NewFromInt(200), http.StatusOK, decimal.NewFromInt(200), decimal.NewFromInt(300), invoice.StatusPartial},
		{"Second payment", decimal.NewFromInt(300), http.StatusOK, decimal.NewFromInt(500), decimal.Zero, invoice.StatusPaid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, i.Data.Links.Payments, v1.PaymentEditable{Amount: tt.amount})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.InvoiceResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.Equal(t, models.ErrPaymentNotPositive.Error(), *response.Error)
				return
			}

			assert.True(t, response.Data.PaidAmount.Equal(tt.paid), "Paid amount is %s", response.Data.PaidAmount)
			assert.True(t, response.Data.RemainingAmount.Equal(tt.remaining), "Remaining amount is %s", response.Data.RemainingAmount)
			assert.Equal(t, tt.state, response.Data.Status)
		})
	}
}

// TestInvoicesDelete verifies that a deleted invoice can be created again.
func (suite *TestSuiteStandard) TestInvoicesDelete() {
	card := createTestCard(suite.T(), v1.CardEditable{})
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024})

	r := test.Request(suite.T(), http.MethodDelete, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024})
}

func (suite *TestSuiteStandard) TestInvoicesStatement() {
	card := createTestCardWithExpense(suite.T(), decimal.NewFromFloat(1234.56))
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: may2024})

	r := test.Request(suite.T(), http.MethodGet, i.Data.Links.Statement, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "fatura-visa-2024-05.pdf")
	assert.True(suite.T(), bytes.HasPrefix(r.Body.Bytes(), []byte("%PDF")), "Response is not a PDF")

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/statement.pdf", idPath("invoices", uuid.New())), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
