package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/categorydisplay"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, v1.TransactionEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TransactionListResponse
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

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Transaction exists", createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, idPath("transactions", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	expense := createTestCategory(suite.T(), v1.CategoryEditable{Type: models.TypeExpense})
	income := createTestCategory(suite.T(), v1.CategoryEditable{Type: models.TypeIncome})
	card := createTestCard(suite.T(), v1.CardEditable{})

	tests := []struct {
		name        string
		transaction map[string]any
		status      int
		err         error
	}{
		{"Invalid type", map[string]any{"type": "transfer", "amount": 10, "description": "Test"}, http.StatusBadRequest, models.ErrTransactionTypeInvalid},
		{"Zero amount", map[string]any{"type": "expense", "amount": 0, "description": "Test"}, http.StatusBadRequest, models.ErrAmountNotPositive},
		{"Negative amount", map[string]any{"type": "expense", "amount": -5, "description": "Test"}, http.StatusBadRequest, models.ErrAmountNotPositive},
		{"Short description", map[string]any{"type": "expense", "amount": 10, "description": " ab "}, http.StatusBadRequest, models.ErrDescriptionTooShort},
		{"Negative installments", map[string]any{"type": "expense", "amount": 10, "description": "Test", "installments": -1}, http.StatusBadRequest, models.ErrInstallmentsInvalid},
		{"Too many installments paid", map[string]any{"type": "expense", "amount": 10, "description": "Test", "installments": 2, "installmentNumber": 3}, http.StatusBadRequest, models.ErrInstallmentNumberInvalid},
		{"Category of other type", map[string]any{"type": "expense", "amount": 10, "description": "Test", "categoryId": income.Data.ID}, http.StatusBadRequest, models.ErrCategoryTypeMismatch},
		{"Source without type", map[string]any{"type": "expense", "amount": 10, "description": "Test", "sourceId": card.Data.ID}, http.StatusBadRequest, models.ErrSourceIncomplete},
		{"Invalid source type", map[string]any{"type": "expense", "amount": 10, "description": "Test", "sourceId": card.Data.ID, "sourceType": "wallet"}, http.StatusBadRequest, models.ErrSourceTypeInvalid},
		{"Destination without ID", map[string]any{"type": "expense", "amount": 10, "description": "Test", "destinationType": "bank"}, http.StatusBadRequest, models.ErrDestinationIncomplete},
		{"Source does not exist", map[string]any{"type": "expense", "amount": 10, "description": "Test", "sourceId": uuid.New(), "sourceType": "card"}, http.StatusNotFound, nil},
		{"Source is a card, not a bank", map[string]any{"type": "expense", "amount": 10, "description": "Test", "sourceId": card.Data.ID, "sourceType": "bank"}, http.StatusNotFound, nil},
		{"Category does not exist", map[string]any{"type": "expense", "amount": 10, "description": "Test", "categoryId": uuid.New()}, http.StatusNotFound, nil},
		{"Valid", map[string]any{"type": "expense", "amount": 10, "description": "Test", "categoryId": expense.Data.ID, "sourceId": card.Data.ID, "sourceType": "card"}, http.StatusCreated, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []map[string]any{tt.transaction})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}
}

// TestTransactionsCreateMixed verifies that the status of a bulk creation
// is the highest status of all transactions.
func (suite *TestSuiteStandard) TestTransactionsCreateMixed() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(10), Description: "Padaria"},
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(10), Description: "P"},
		{Type: models.TypeExpense, Amount: decimal.NewFromInt(10), Description: "Mercado", CategoryID: &uuid.UUID{1}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.Nil(suite.T(), response.Data[0].Error)
	assert.NotNil(suite.T(), response.Data[1].Error)
	assert.NotNil(suite.T(), response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	today := time.Now().In(time.UTC).Truncate(24 * time.Hour)

	expense := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromInt(50),
		Description: "  Cinema  ",
	})
	assert.Equal(suite.T(), "Cinema", expense.Data.Description)
	assert.Equal(suite.T(), models.DefaultPaymentMethod, expense.Data.PaymentMethod)
	assert.Equal(suite.T(), 1, expense.Data.Installments)
	require.NotNil(suite.T(), expense.Data.InstallmentNumber)
	assert.Equal(suite.T(), 1, *expense.Data.InstallmentNumber)
	assert.True(suite.T(), expense.Data.TransactionDate.Equal(today), "Date is %s, expected %s", expense.Data.TransactionDate, today)
	assert.Equal(suite.T(), categorydisplay.Uncategorized, expense.Data.Category)
	assert.Empty(suite.T(), expense.Data.Links.Source)

	income := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:          models.TypeIncome,
		Amount:        decimal.NewFromInt(3000),
		Description:   "Salário",
		PaymentMethod: "credit",
		Installments:  4,
	})
	assert.Equal(suite.T(), "", income.Data.PaymentMethod, "Income has no payment method")
	assert.Equal(suite.T(), 1, income.Data.Installments, "Income is always paid at once")
	assert.True(suite.T(), income.Data.InstallmentStatus.IsPaidOff)
}

func (suite *TestSuiteStandard) TestTransactionsInstallmentStatus() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	tests := []struct {
		name              string
		installments      int
		installmentNumber *int
		paid              int
		remainingValue    decimal.Decimal
		isPaidOff         bool
	}{
		{"Default paid count", 12, nil, 1, decimal.NewFromInt(1100), false},
		{"Nothing paid", 12, intPtr(0), 0, decimal.NewFromInt(1200), false},
		{"Half paid", 12, intPtr(6), 6, decimal.NewFromInt(600), false},
		{"All paid", 12, intPtr(12), 12, decimal.Zero, true},
		{"Single payment", 1, nil, 1, decimal.Zero, true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := createTestTransaction(t, v1.TransactionEditable{
				Amount:            decimal.NewFromInt(1200),
				Description:       "Notebook",
				SourceType:        models.SourceCard,
				SourceID:          &card.Data.ID,
				PaymentMethod:     "credit",
				Installments:      tt.installments,
				InstallmentNumber: tt.installmentNumber,
			})

			status := transaction.Data.InstallmentStatus
			assert.Equal(t, tt.installments, status.TotalInstallments)
			assert.Equal(t, tt.paid, status.PaidInstallments)
			assert.True(t, status.RemainingValue.Equal(tt.remainingValue), "Remaining value is %s, expected %s", status.RemainingValue, tt.remainingValue)
			assert.Equal(t, tt.isPaidOff, status.IsPaidOff)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/cards/%s", card.Data.ID), transaction.Data.Links.Source)
		})
	}
}

// TestTransactionsCategoryRules verifies that transactions without a
// category get the category of the first matching rule.
func (suite *TestSuiteStandard) TestTransactionsCategoryRules() {
	transport := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transporte", Icon: "🚗"})
	food := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Comida"})
	salary := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salário", Type: models.TypeIncome})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: transport.Data.ID, Match: "*uber*", Priority: 1})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: food.Data.ID, Match: "*uber eats*", Priority: 0})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: salary.Data.ID, Match: "*acme*", Priority: 0})

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		category    *uuid.UUID
	}{
		{"Lower priority first", v1.TransactionEditable{Description: "UBER EATS *Pedido"}, &food.Data.ID},
		{"Case insensitive", v1.TransactionEditable{Description: "Uber trip"}, &transport.Data.ID},
		{"No match", v1.TransactionEditable{Description: "Padaria"}, nil},
		{"Only rules of the same type", v1.TransactionEditable{Description: "ACME payment"}, nil},
		{"Income rule", v1.TransactionEditable{Type: models.TypeIncome, Description: "ACME payment"}, &salary.Data.ID},
		{"Explicit category wins", v1.TransactionEditable{Description: "Uber trip", CategoryID: &food.Data.ID}, &food.Data.ID},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := createTestTransaction(t, tt.transaction)
			assert.Equal(t, tt.category, transaction.Data.CategoryID)
		})
	}

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Uber trip"})
	assert.Equal(suite.T(), "Transporte", transaction.Data.Category.Name)
	assert.Equal(suite.T(), "🚗", transaction.Data.Category.Icon)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Transaction", transaction.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No Transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Existing Transaction", transaction.Data.ID.String(), http.StatusNoContent, http.MethodDelete},
		{"GET Deleted Transaction", transaction.Data.ID.String(), http.StatusNotFound, http.MethodGet},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, idPath("transactions", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	card := createTestCard(suite.T(), v1.CardEditable{})
	bank := createTestBank(suite.T(), v1.BankEditable{})
	food := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Comida"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description:     "Mercado",
		Amount:          decimal.NewFromInt(250),
		CategoryID:      &food.Data.ID,
		SourceType:      models.SourceCard,
		SourceID:        &card.Data.ID,
		PaymentMethod:   "credit",
		TransactionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description:     "Restaurante",
		Amount:          decimal.NewFromInt(80),
		CategoryID:      &food.Data.ID,
		Notes:           "Aniversário",
		TransactionDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:            models.TypeIncome,
		Description:     "Salário",
		Amount:          decimal.NewFromInt(5000),
		SourceType:      models.SourceBank,
		SourceID:        &bank.Data.ID,
		TransactionDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name   string
		query  url.Values
		len    int
		status int
	}{
		{"All", url.Values{}, 3, http.StatusOK},
		{"Type", url.Values{"type": {"expense"}}, 2, http.StatusOK},
		{"Invalid type", url.Values{"type": {"transfer"}}, 0, http.StatusBadRequest},
		{"Category", url.Values{"category": {food.Data.ID.String()}}, 2, http.StatusOK},
		{"Uncategorized", url.Values{"category": {""}}, 1, http.StatusOK},
		{"Invalid category", url.Values{"category": {"NotAUUID"}}, 0, http.StatusBadRequest},
		{"Source", url.Values{"source": {card.Data.ID.String()}}, 1, http.StatusOK},
		{"Source type", url.Values{"sourceType": {"bank"}}, 1, http.StatusOK},
		{"Invalid source type", url.Values{"sourceType": {"wallet"}}, 0, http.StatusBadRequest},
		{"Payment method", url.Values{"paymentMethod": {"credit"}}, 1, http.StatusOK},
		{"From date", url.Values{"fromDate": {"2024-02-01T00:00:00Z"}}, 2, http.StatusOK},
		{"Until date includes the day", url.Values{"untilDate": {"2024-02-03T00:00:00Z"}}, 2, http.StatusOK},
		{"Custom range", url.Values{"dateRange": {"custom"}, "fromDate": {"2024-01-01T00:00:00Z"}, "untilDate": {"2024-01-31T00:00:00Z"}}, 1, http.StatusOK},
		{"Inverted range", url.Values{"fromDate": {"2024-02-01T00:00:00Z"}, "untilDate": {"2024-01-01T00:00:00Z"}}, 0, http.StatusBadRequest},
		{"Unknown range", url.Values{"dateRange": {"decade"}}, 0, http.StatusBadRequest},
		{"Amount less or equal", url.Values{"amountLessOrEqual": {"250"}}, 2, http.StatusOK},
		{"Amount more or equal", url.Values{"amountMoreOrEqual": {"250"}}, 2, http.StatusOK},
		{"Search in notes", url.Values{"search": {"anivers"}}, 1, http.StatusOK},
		{"Search in description", url.Values{"search": {"merc"}}, 1, http.StatusOK},
		{"Limit", url.Values{"limit": {"1"}}, 1, http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query.Encode(), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestTransactionsGetOrder verifies that the newest transactions come first
// and that the total ignores the pagination.
func (suite *TestSuiteStandard) TestTransactionsGetOrder() {
	for _, day := range []int{3, 1, 2} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Description:     fmt.Sprintf("Day %d", day),
			TransactionDate: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Day 3", response.Data[0].Description)
	assert.Equal(suite.T(), "Day 2", response.Data[1].Description)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	food := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Comida"})
	income := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salário", Type: models.TypeIncome})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description:  "Geladeira",
		Amount:       decimal.NewFromInt(3000),
		Installments: 10,
		Notes:        "Loja A",
	})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Pay installments", map[string]any{"installmentNumber": 4}, http.StatusOK},
		{"Category", map[string]any{"categoryId": food.Data.ID}, http.StatusOK},
		{"Category of other type", map[string]any{"categoryId": income.Data.ID}, http.StatusBadRequest},
		{"Short description", map[string]any{"description": "ab"}, http.StatusBadRequest},
		{"Broken body", `{ "amount": "many" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Geladeira", response.Data.Description)
	assert.Equal(suite.T(), "Loja A", response.Data.Notes, "Fields not in the body must keep their values")
	assert.Equal(suite.T(), &food.Data.ID, response.Data.CategoryID)
	assert.Equal(suite.T(), "Comida", response.Data.Category.Name)
	assert.Equal(suite.T(), 4, response.Data.InstallmentStatus.PaidInstallments)
	assert.True(suite.T(), response.Data.InstallmentStatus.RemainingValue.Equal(decimal.NewFromInt(1800)))
}
