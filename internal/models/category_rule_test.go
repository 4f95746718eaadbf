package models_test

import (
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/test"
)

func (suite *TestSuiteStandard) createTestCategoryRule(rule models.CategoryRule) models.CategoryRule {
	if rule.UserID == uuid.Nil {
		rule.UserID = test.UserID
	}

	err := models.DB.Create(&rule).Error
	if err != nil {
		suite.Assert().FailNow("CategoryRule could not be saved", "Error: %s, CategoryRule: %#v", err, rule)
	}

	return rule
}

func (suite *TestSuiteStandard) TestCategoryRuleValidation() {
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.CategoryRule{Owned: models.Owned{UserID: test.UserID}, Match: " ", CategoryID: category.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryRuleMatchEmpty)

	err = models.DB.Create(&models.CategoryRule{Owned: models.Owned{UserID: test.UserID}, Match: "*", CategoryID: uuid.New()}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryRuleMatches() {
	rule := models.CategoryRule{Match: "uber*"}

	suite.Assert().True(rule.Matches("Uber Trip"))
	suite.Assert().True(rule.Matches("  UBER  "))
	suite.Assert().False(rule.Matches("Pagamento Uber"))
}

func (suite *TestSuiteStandard) TestMatchCategory() {
	transport := suite.createTestCategory(models.Category{Name: "Transporte"})
	food := suite.createTestCategory(models.Category{Name: "Alimentação"})
	salary := suite.createTestCategory(models.Category{Name: "Salário", Type: models.TypeIncome})

	_ = suite.createTestCategoryRule(models.CategoryRule{Priority: 2, Match: "*uber*", CategoryID: transport.ID})
	_ = suite.createTestCategoryRule(models.CategoryRule{Priority: 1, Match: "*uber eats*", CategoryID: food.ID})
	_ = suite.createTestCategoryRule(models.CategoryRule{Priority: 0, Match: "*", CategoryID: salary.ID})

	tests := []struct {
		name        string
		t           models.TransactionType
		description string
		want        *uuid.UUID
	}{
		{"Higher priority wins", models.TypeExpense, "Uber Eats pedido", &food.ID},
		{"Fallback to lower priority", models.TypeExpense, "Corrida Uber", &transport.ID},
		{"No match", models.TypeExpense, "Cinema", nil},
		{"Type is respected", models.TypeIncome, "Uber", &salary.ID},
	}

	for _, tt := range tests {
		got, err := models.MatchCategory(models.DB, test.UserID, tt.t, tt.description)
		suite.Require().Nil(err, tt.name)
		suite.Assert().Equal(tt.want, got, tt.name)
	}

	// Rules of other users are ignored
	got, err := models.MatchCategory(models.DB, test.OtherUserID, models.TypeExpense, "Uber")
	suite.Require().Nil(err)
	suite.Assert().Nil(got)
}
