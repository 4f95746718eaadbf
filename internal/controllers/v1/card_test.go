package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/invoice"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/presets"
	"github.com/moneta-finance/backend/internal/types"
	"github.com/moneta-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCardsDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCard(t, v1.CardEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/cards", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CardListResponse
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

func (suite *TestSuiteStandard) TestCardsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Card with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Card exists", createTestCard(suite.T(), v1.CardEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, idPath("cards", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}

			r = test.Request(t, http.MethodOptions, fmt.Sprintf("%s/invoices/2024-05", idPath("cards", tt.id)), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, PUT", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCardsPresets() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/cards/presets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PresetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), presets.All(), response.Data)
}

func (suite *TestSuiteStandard) TestCardsCreate() {
	tests := []struct {
		name   string
		card   v1.CardEditable
		status int
		err    error
	}{
		{"Defaults", v1.CardEditable{CardBrand: "VISA", CardholderName: " maria silva "}, http.StatusCreated, nil},
		{"Preset", v1.CardEditable{CardBrand: models.BrandElo, PresetID: "itau"}, http.StatusCreated, nil},
		{"Unknown preset", v1.CardEditable{CardBrand: models.BrandElo, PresetID: "does-not-exist"}, http.StatusBadRequest, nil},
		{"Invalid brand", v1.CardEditable{CardBrand: "diners"}, http.StatusBadRequest, models.ErrCardBrandInvalid},
		{"Invalid last digits", v1.CardEditable{CardNumberLast4: "12a4"}, http.StatusBadRequest, models.ErrCardLast4Invalid},
		{"Invalid color", v1.CardEditable{CardColor: "purple"}, http.StatusBadRequest, models.ErrColorInvalid},
		{"Negative limit", v1.CardEditable{CreditLimit: decimalPtr(decimal.NewFromInt(-1))}, http.StatusBadRequest, models.ErrCreditLimitNegative},
		{"Invalid due day", v1.CardEditable{BillingDueDay: intPtr(32)}, http.StatusBadRequest, models.ErrBillingDueDayInvalid},
		{"Invalid expiration month", v1.CardEditable{ExpirationMonth: intPtr(13)}, http.StatusBadRequest, models.ErrExpirationMonthInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.card.CardBrand == "" {
				tt.card.CardBrand = models.BrandMastercard
			}
			tt.card.CardNickname = uuid.NewString()

			r := test.Request(t, http.MethodPost, "http://example.com/v1/cards", []v1.CardEditable{tt.card})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CardCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCardsCreateNormalization() {
	card := createTestCard(suite.T(), v1.CardEditable{CardBrand: "VISA", CardholderName: " maria silva "})
	assert.Equal(suite.T(), models.BrandVisa, card.Data.CardBrand)
	assert.Equal(suite.T(), "MARIA SILVA", card.Data.CardholderName)

	preset := presets.Default()
	assert.Equal(suite.T(), preset.GradientStart, card.Data.CardGradientStart, "Cards without colors get the default preset")
	assert.Equal(suite.T(), preset.GradientEnd, card.Data.CardGradientEnd)
	assert.Equal(suite.T(), preset.Accent, card.Data.CardColor)

	itau, ok := presets.ByID("itau")
	require.True(suite.T(), ok)

	card = createTestCard(suite.T(), v1.CardEditable{PresetID: "itau", CardColor: "#000000"})
	assert.Equal(suite.T(), itau.Accent, card.Data.CardColor, "The preset overrides the colors")
	assert.Equal(suite.T(), itau.GradientStart, card.Data.CardGradientStart)
}

func (suite *TestSuiteStandard) TestCardsGetSingle() {
	c := createTestCard(suite.T(), v1.CardEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Card", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Card with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No Card with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Card with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Existing Card", c.Data.ID.String(), http.StatusNoContent, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, idPath("cards", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCardsGetFilter() {
	_ = createTestCard(suite.T(), v1.CardEditable{CardBrand: models.BrandVisa, CardNickname: "Roxinho", CardNumberLast4: "4242", CardholderName: "Maria Silva"})
	_ = createTestCard(suite.T(), v1.CardEditable{CardBrand: models.BrandMastercard, CardNickname: "Black", CardNumberLast4: "5555"})
	_ = createTestCard(suite.T(), v1.CardEditable{CardBrand: models.BrandVisa, CardNickname: "Viagens", CardholderName: "João Souza"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Brand", "brand=visa", 2},
		{"Last four digits", "last4=5555", 1},
		{"Fuzzy nickname", "nickname=ox", 1},
		{"Search in cardholder", "search=SOUZA", 1},
		{"Limit", "limit=1", 1},
		{"All", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/cards?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CardListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCardsUpdate() {
	c := createTestCard(suite.T(), v1.CardEditable{CardNickname: "Roxinho", BillingDueDay: intPtr(10)})

	r := test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"cardNickname": "Roxo", "creditLimit": "5000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Roxo", response.Data.CardNickname)
	require.NotNil(suite.T(), response.Data.CreditLimit)
	assert.True(suite.T(), response.Data.CreditLimit.Equal(decimal.NewFromInt(5000)))
	require.NotNil(suite.T(), response.Data.BillingDueDay)
	assert.Equal(suite.T(), 10, *response.Data.BillingDueDay, "Fields not in the body must keep their values")

	r = test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"cardBrand": "diners"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"presetId": "nubank"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	nubank, _ := presets.ByID("nubank")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), nubank.GradientEnd, response.Data.CardGradientEnd)
}

// TestCardsReconcileInvoice verifies that invoices are calculated from
// the installments charged in the month.
func (suite *TestSuiteStandard) TestCardsReconcileInvoice() {
	card := createTestCard(suite.T(), v1.CardEditable{BillingDueDay: intPtr(10)})

	// 3 installments of 100 in January, February and March
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:          decimal.NewFromInt(300),
		SourceType:      models.SourceCard,
		SourceID:        &card.Data.ID,
		PaymentMethod:   "credit",
		Installments:    3,
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	// Charged once in February
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:          decimal.NewFromFloat(49.9),
		SourceType:      models.SourceCard,
		SourceID:        &card.Data.ID,
		PaymentMethod:   "credit",
		TransactionDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		month  string
		status int
		total  decimal.Decimal
	}{
		{"2023-12", http.StatusOK, decimal.Zero},
		{"2024-01", http.StatusOK, decimal.NewFromInt(100)},
		{"2024-02", http.StatusOK, decimal.NewFromFloat(149.9)},
		{"2024-03", http.StatusOK, decimal.NewFromInt(100)},
		{"2024-04", http.StatusOK, decimal.Zero},
		{"2024-13", http.StatusBadRequest, decimal.Zero},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("%s/invoices/%s", card.Data.Links.Self, tt.month), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.InvoiceResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Data.TotalAmount.Equal(tt.total), "Total is %s, expected %s", response.Data.TotalAmount, tt.total)
			assert.Equal(t, invoice.StatusOpen, response.Data.Status)
			assert.Equal(t, tt.month, response.Data.Month.String())

			require.NotNil(t, response.Data.DueDate)
			assert.Equal(t, 10, response.Data.DueDate.Day())
		})
	}
}

// TestCardsReconcileKeepsPayments verifies that reconciling an invoice
// again updates the total, but keeps the payments.
func (suite *TestSuiteStandard) TestCardsReconcileKeepsPayments() {
	card := createTestCard(suite.T(), v1.CardEditable{})
	date := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:          decimal.NewFromInt(200),
		SourceType:      models.SourceCard,
		SourceID:        &card.Data.ID,
		TransactionDate: date,
	})

	i := createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: types.NewMonth(2024, time.May), PaidAmount: decimal.NewFromInt(200)})
	assert.Equal(suite.T(), invoice.StatusPaid, i.Data.Status)
	assert.NotNil(suite.T(), i.Data.PaidAt)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:          decimal.NewFromInt(50),
		SourceType:      models.SourceCard,
		SourceID:        &card.Data.ID,
		TransactionDate: date,
	})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("%s/invoices/2024-05", card.Data.Links.Self), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), i.Data.ID, response.Data.ID, "Reconciling must update the existing invoice")
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromInt(250)))
	assert.True(suite.T(), response.Data.PaidAmount.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), response.Data.RemainingAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(suite.T(), invoice.StatusPartial, response.Data.Status)
	assert.Nil(suite.T(), response.Data.PaidAt)
}

// TestCardsDelete verifies that deleting a card removes its invoices and
// keeps its transactions without a source.
func (suite *TestSuiteStandard) TestCardsDelete() {
	card := createTestCard(suite.T(), v1.CardEditable{})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:            decimal.NewFromInt(300),
		SourceType:        models.SourceCard,
		SourceID:          &card.Data.ID,
		PaymentMethod:     "credit",
		Installments:      3,
		InstallmentNumber: intPtr(1),
		TransactionDate:   time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
	})
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{CardID: card.Data.ID, Month: types.NewMonth(2024, time.May)})

	r := test.Request(suite.T(), http.MethodDelete, card.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, card.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, idPath("invoices", i.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var invoices v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &r, &invoices)
	assert.Len(suite.T(), invoices.Data, 0)

	r = test.Request(suite.T(), http.MethodPatch, idPath("transactions", transaction.Data.ID), map[string]any{"notes": "Cartão cancelado"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Cartão cancelado", updated.Data.Notes)
	assert.Nil(suite.T(), updated.Data.SourceID)
	assert.Equal(suite.T(), models.SourceType(""), updated.Data.SourceType)
	assert.Equal(suite.T(), 3, updated.Data.Installments)

	// The export of the user can still be imported
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", r.Body.String(), test.AuthHeader(suite.T(), test.OtherUserID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var imported v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &imported)
	assert.Equal(suite.T(), 0, imported.Data.Cards)
	assert.Equal(suite.T(), 0, imported.Data.Invoices)
	assert.Equal(suite.T(), 1, imported.Data.Transactions)
}

func intPtr(i int) *int {
	return &i
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
