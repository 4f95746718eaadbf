package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/models"
)

type CategoryRuleEditable struct {
	Priority   uint      `json:"priority" example:"10" default:"0"`                         // Rules with lower priority are checked first
	Match      string    `json:"match" example:"*uber*"`                                    // Glob pattern matched against the description, case insensitive
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // Category assigned to matching transactions
}

func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: editable.CategoryID,
	}
}

func newCategoryRuleEditable(model models.CategoryRule) CategoryRuleEditable {
	return CategoryRuleEditable{
		Priority:   model.Priority,
		Match:      model.Match,
		CategoryID: model.CategoryID,
	}
}

type CategoryRuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/category-rules/9e6b7d6c-54e0-4b43-8d31-e2b7a4ff3c63"` // The rule itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category the rule assigns
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel:         model.DefaultModel,
		CategoryRuleEditable: newCategoryRuleEditable(model),
		Links: CategoryRuleLinks{
			Self:     fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of category rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created category rules
}

func (r *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the category rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category rule
}

type CategoryRuleQueryFilter struct {
	CategoryID string `form:"category" filterField:"false"` // By ID of the category
	Match      string `form:"match" filterField:"false"`    // Fuzzy filter for the pattern
	Offset     uint   `form:"offset" filterField:"false"`   // The offset of the first rule returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`    // Maximum number of rules to return. Defaults to 50.
}
