package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/moneta-finance/backend/internal/controllers/v1"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileURL = "http://example.com/v1/profile"

func getProfile(t *testing.T, headers ...map[string]string) v1.Profile {
	recorder := test.Request(t, http.MethodGet, profileURL, "", headers...)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestProfileDBClosed() {
	suite.CloseDB()

	for _, method := range []string{http.MethodGet, http.MethodPatch} {
		suite.T().Run(method, func(t *testing.T) {
			recorder := test.Request(t, method, profileURL, `{"fullName": "Maria"}`)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, *response.Error, models.ErrGeneral.Error())
		})
	}
}

// TestProfileGet verifies that an empty profile is created on first read
// and that reading it again returns the same profile.
func (suite *TestSuiteStandard) TestProfileGet() {
	first := getProfile(suite.T())
	assert.Equal(suite.T(), "", first.FullName)
	assert.Equal(suite.T(), "http://example.com/v1/profile", first.Links.Self)

	second := getProfile(suite.T())
	assert.Equal(suite.T(), first.ID, second.ID)
}

func (suite *TestSuiteStandard) TestProfileUpdate() {
	recorder := test.Request(suite.T(), http.MethodPatch, profileURL, map[string]any{
		"fullName":     "  Maria da Silva ",
		"cpf":          "123.456.789-09",
		"addressZip":   "01310-200",
		"addressState": "sp",
		"addressCity":  "São Paulo",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Maria da Silva", response.Data.FullName)
	assert.Equal(suite.T(), "12345678909", response.Data.CPF)
	assert.Equal(suite.T(), "01310200", response.Data.AddressZip)
	assert.Equal(suite.T(), "SP", response.Data.AddressState)

	// Only specified fields are updated
	recorder = test.Request(suite.T(), http.MethodPatch, profileURL, map[string]any{
		"phone": "+55 11 91234-5678",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	profile := getProfile(suite.T())
	assert.Equal(suite.T(), "+55 11 91234-5678", profile.Phone)
	assert.Equal(suite.T(), "12345678909", profile.CPF)
	assert.Equal(suite.T(), "São Paulo", profile.AddressCity)
	assert.Equal(suite.T(), response.Data.ID, profile.ID)
}

func (suite *TestSuiteStandard) TestProfileUpdateFails() {
	tests := []struct {
		name string
		body any
		err  error
	}{
		{"CPF too short", map[string]any{"cpf": "123.456.789"}, models.ErrCPFInvalid},
		{"CPF too long", map[string]any{"cpf": "123456789012"}, models.ErrCPFInvalid},
		{"Zip invalid", map[string]any{"addressZip": "1310-200"}, models.ErrZipInvalid},
		{"State too long", map[string]any{"addressState": "SPO"}, models.ErrStateInvalid},
		{"State with digits", map[string]any{"addressState": "S1"}, models.ErrStateInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, profileURL, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, *response.Error, tt.err.Error())
		})
	}

	suite.T().Run("Broken body", func(t *testing.T) {
		recorder := test.Request(t, http.MethodPatch, profileURL, `{ "fullName": 2 }`)
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})
}

// TestProfileIsolation verifies that every user has their own profile.
func (suite *TestSuiteStandard) TestProfileIsolation() {
	recorder := test.Request(suite.T(), http.MethodPatch, profileURL, map[string]any{"fullName": "Maria"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	other := getProfile(suite.T(), test.AuthHeader(suite.T(), test.OtherUserID))
	assert.Equal(suite.T(), "", other.FullName)

	own := getProfile(suite.T())
	assert.Equal(suite.T(), "Maria", own.FullName)
	assert.NotEqual(suite.T(), own.ID, other.ID)
}
