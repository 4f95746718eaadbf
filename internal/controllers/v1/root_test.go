package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.Links{
		Banks:         "http://example.com/v1/banks",
		Cards:         "http://example.com/v1/cards",
		Categories:    "http://example.com/v1/categories",
		CategoryRules: "http://example.com/v1/category-rules",
		Dashboard:     "http://example.com/v1/dashboard",
		Export:        "http://example.com/v1/export",
		Import:        "http://example.com/v1/import",
		Invoices:      "http://example.com/v1/invoices",
		Overview:      "http://example.com/v1/overview",
		Profile:       "http://example.com/v1/profile",
		Transactions:  "http://example.com/v1/transactions",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootUnauthenticated() {
	tests := []struct {
		name   string
		header map[string]string
	}{
		{"No token", map[string]string{"Authorization": ""}},
		{"Not a bearer token", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"Garbage", map[string]string{"Authorization": "Bearer not.a.token"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/banks", "", tt.header)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanup() {
	createTestTransaction(suite.T(), v1.TransactionEditable{})
	createTestInvoice(suite.T(), v1.InvoiceEditable{Month: may2024})
	createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{})
	createTestBank(suite.T(), v1.BankEditable{})

	other := test.AuthHeader(suite.T(), test.OtherUserID)
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/banks", []v1.BankEditable{{BankName: "Itaú"}}, other)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	tests := []struct {
		name   string
		status int
		query  string
	}{
		{"Missing confirmation", http.StatusBadRequest, ""},
		{"Wrong confirmation", http.StatusBadRequest, "?confirm=yes"},
		{"Confirmed", http.StatusNoContent, "?confirm=yes-please-delete-everything"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}

	for _, endpoint := range []string{"banks", "cards", "categories", "category-rules", "invoices", "transactions"} {
		suite.T().Run(endpoint, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/"+endpoint, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &recorder, &response)

			// Default categories are seeded again on the first list request
			if endpoint == "categories" {
				assert.Len(t, response.Data, 11)
				return
			}
			assert.Len(t, response.Data, 0, "%s have not been deleted", endpoint)
		})
	}

	// Resources of other users are kept
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/banks", "", other)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var banks v1.BankListResponse
	test.DecodeResponse(suite.T(), &recorder, &banks)
	assert.Len(suite.T(), banks.Data, 1)
}

func (suite *TestSuiteStandard) TestCleanupDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
