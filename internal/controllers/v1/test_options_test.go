package v1_test

import (
	"net/http"
	"testing"

	"github.com/moneta-finance/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/banks", "OPTIONS, GET, POST"},
		{"http://example.com/v1/cards", "OPTIONS, GET, POST"},
		{"http://example.com/v1/cards/presets", "OPTIONS, GET"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories/defaults", "OPTIONS, POST"},
		{"http://example.com/v1/category-rules", "OPTIONS, GET, POST"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/export", "OPTIONS, GET"},
		{"http://example.com/v1/import", "OPTIONS, POST"},
		{"http://example.com/v1/invoices", "OPTIONS, GET, POST"},
		{"http://example.com/v1/overview", "OPTIONS, GET"},
		{"http://example.com/v1/profile", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
