package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
	"github.com/shopspring/decimal"
)

func createTestBank(t *testing.T, b v1.BankEditable, expectedStatus ...int) v1.BankResponse {
	if b.BankName == "" {
		b.BankName = "Nubank"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/banks", []v1.BankEditable{b})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var bank v1.BankCreateResponse
	test.DecodeResponse(t, &r, &bank)

	if r.Code == http.StatusCreated {
		return bank.Data[0]
	}

	return v1.BankResponse{}
}

func createTestCard(t *testing.T, c v1.CardEditable, expectedStatus ...int) v1.CardResponse {
	if c.CardBrand == "" {
		c.CardBrand = models.BrandVisa
	}

	if c.CardNickname == "" {
		c.CardNickname = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/cards", []v1.CardEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var card v1.CardCreateResponse
	test.DecodeResponse(t, &r, &card)

	if r.Code == http.StatusCreated {
		return card.Data[0]
	}

	return v1.CardResponse{}
}

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Type == "" {
		c.Type = models.TypeExpense
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)

	if r.Code == http.StatusCreated {
		return category.Data[0]
	}

	return v1.CategoryResponse{}
}

func createTestCategoryRule(t *testing.T, c v1.CategoryRuleEditable, expectedStatus ...int) v1.CategoryRuleResponse {
	if c.CategoryID == uuid.Nil {
		c.CategoryID = createTestCategory(t, v1.CategoryEditable{}).Data.ID
	}

	if c.Match == "" {
		c.Match = "*uber*"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", []v1.CategoryRuleEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var rule v1.CategoryRuleCreateResponse
	test.DecodeResponse(t, &r, &rule)

	if r.Code == http.StatusCreated {
		return rule.Data[0]
	}

	return v1.CategoryRuleResponse{}
}

func createTestTransaction(t *testing.T, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.Type == "" {
		c.Type = models.TypeExpense
	}

	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromFloat(17.32)
	}

	if c.Description == "" {
		c.Description = "Test transaction"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &transaction)

	if r.Code == http.StatusCreated {
		return transaction.Data[0]
	}

	return v1.TransactionResponse{}
}

func createTestInvoice(t *testing.T, c v1.InvoiceEditable, expectedStatus ...int) v1.InvoiceResponse {
	if c.CardID == uuid.Nil {
		c.CardID = createTestCard(t, v1.CardEditable{}).Data.ID
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", []v1.InvoiceEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var invoice v1.InvoiceCreateResponse
	test.DecodeResponse(t, &r, &invoice)

	if r.Code == http.StatusCreated {
		return invoice.Data[0]
	}

	return v1.InvoiceResponse{}
}

// idPath returns the URL of the resource with the ID at the endpoint.
func idPath(endpoint string, id any) string {
	return fmt.Sprintf("http://example.com/v1/%s/%s", endpoint, id)
}
