package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/categorydisplay"
	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
		{
			"Defaults fail",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodPost, "http://example.com/v1/categories/defaults", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
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

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, idPath("categories", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	tests := []struct {
		name     string
		category v1.CategoryEditable
		status   int
		err      error
	}{
		{"Expense", v1.CategoryEditable{Name: "Pets", Type: models.TypeExpense, Icon: "🐶", Color: "#112233"}, http.StatusCreated, nil},
		{"Same name for income", v1.CategoryEditable{Name: "Pets", Type: models.TypeIncome}, http.StatusCreated, nil},
		{"Duplicate name", v1.CategoryEditable{Name: "Pets", Type: models.TypeExpense}, http.StatusBadRequest, models.ErrCategoryNameNotUnique},
		{"Empty name", v1.CategoryEditable{Name: "  ", Type: models.TypeExpense}, http.StatusBadRequest, models.ErrCategoryNameEmpty},
		{"Invalid type", v1.CategoryEditable{Name: "Gifts", Type: "transfer"}, http.StatusBadRequest, models.ErrTransactionTypeInvalid},
		{"Invalid color", v1.CategoryEditable{Name: "Gifts", Type: models.TypeIncome, Color: "red"}, http.StatusBadRequest, models.ErrColorInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{tt.category})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
				return
			}

			assert.False(t, response.Data[0].Data.IsDefault)
			assert.Equal(t, tt.category.Name, response.Data[0].Data.Display.Name)
		})
	}
}

// TestCategoriesSeeding verifies that default categories are created
// for every type the user has no categories of.
func (suite *TestSuiteStandard) TestCategoriesSeeding() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	expected := len(categorydisplay.DefaultExpense()) + len(categorydisplay.DefaultIncome())
	assert.Len(suite.T(), response.Data, expected)
	assert.Equal(suite.T(), int64(expected), response.Pagination.Total)

	for _, c := range response.Data {
		assert.True(suite.T(), c.IsDefault, "Category %s is not a default category", c.Name)
	}

	// Listing again does not create the defaults twice
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, expected)
}

// TestCategoriesSeedingPerType verifies that the defaults are only created
// for types without categories.
func (suite *TestSuiteStandard) TestCategoriesSeedingPerType() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Mercado", Type: models.TypeExpense})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=expense", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Mercado", response.Data[0].Name)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=income", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, len(categorydisplay.DefaultIncome()))
}

func (suite *TestSuiteStandard) TestCategoriesDefaults() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Alimentacao", Type: models.TypeExpense})

	tests := []struct {
		name   string
		query  string
		status int
		len    int
	}{
		{"Invalid type", "?type=transfer", http.StatusBadRequest, 0},
		{"Expense, existing name differs in accents", "?type=expense", http.StatusCreated, len(categorydisplay.DefaultExpense()) - 1},
		{"All types", "", http.StatusCreated, len(categorydisplay.DefaultIncome())},
		{"Nothing left to create", "", http.StatusCreated, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories/defaults"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "NotParseableAsUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, idPath("categories", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Mercado", Type: models.TypeExpense})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Mercado Livre", Type: models.TypeExpense})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Freelas", Type: models.TypeIncome})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Type", "type=expense", 2},
		{"Fuzzy name", "name=ercad", 2},
		{"Search", "search=livre", 1},
		{"Not default", "isDefault=false", 3},
		{"Default", "isDefault=true", 0},
		{"Offset", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/categories?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Mercado", Icon: "🛒"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Farmácia"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Rename", map[string]any{"name": "Supermercado"}, http.StatusOK},
		{"Duplicate name", map[string]any{"name": "Farmácia"}, http.StatusBadRequest},
		{"Invalid color", map[string]any{"color": "#zzz"}, http.StatusBadRequest},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, c.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	assert.Equal(suite.T(), "Supermercado", category.Data.Name)
	assert.Equal(suite.T(), "🛒", category.Data.Icon, "Fields not in the body must keep their values")
}

// TestCategoriesDelete verifies that transactions of a deleted category
// become uncategorized and its rules are removed.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Assinaturas"})
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: c.Data.ID, Match: "netflix*"})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &c.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data.CategoryID)
	assert.Equal(suite.T(), categorydisplay.Uncategorized, response.Data.Category)

	// The name can be used again
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Assinaturas"})
}
