package models_test

import (
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
)

func (suite *TestSuiteStandard) TestProfileFor() {
	profile, err := models.ProfileFor(models.DB, test.UserID)
	suite.Require().Nil(err)
	suite.Assert().Equal(test.UserID, profile.UserID)

	again, err := models.ProfileFor(models.DB, test.UserID)
	suite.Require().Nil(err)
	suite.Assert().Equal(profile.ID, again.ID)
}

func (suite *TestSuiteStandard) TestProfileNormalization() {
	profile, err := models.ProfileFor(models.DB, test.UserID)
	suite.Require().Nil(err)

	profile.CPF = "123.456.789-09"
	profile.AddressZip = "01310-100"
	profile.AddressState = " sp "
	profile.FullName = " Maria Silva "

	suite.Require().Nil(models.DB.Save(&profile).Error)
	suite.Assert().Equal("12345678909", profile.CPF)
	suite.Assert().Equal("01310100", profile.AddressZip)
	suite.Assert().Equal("SP", profile.AddressState)
	suite.Assert().Equal("Maria Silva", profile.FullName)
}

func (suite *TestSuiteStandard) TestProfileValidation() {
	tests := []struct {
		name    string
		profile models.Profile
		err     error
	}{
		{"CPF", models.Profile{CPF: "123"}, models.ErrCPFInvalid},
		{"Zip", models.Profile{AddressZip: "1234"}, models.ErrZipInvalid},
		{"State", models.Profile{AddressState: "São Paulo"}, models.ErrStateInvalid},
	}

	for _, tt := range tests {
		profile := tt.profile
		profile.UserID = test.UserID
		err := models.DB.Create(&profile).Error
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestProfileUnique() {
	_, err := models.ProfileFor(models.DB, test.UserID)
	suite.Require().Nil(err)

	err = models.DB.Create(&models.Profile{UserID: test.UserID}).Error
	suite.Assert().ErrorIs(err, models.ErrProfileNotUnique)
}
