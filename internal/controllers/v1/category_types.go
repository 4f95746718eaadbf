package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/categorydisplay"
	"github.com/moneta-finance/backend/internal/models"
)

type CategoryEditable struct {
	Name  string                 `json:"name" example:"Alimentação"`         // Name of the category, unique per type
	Type  models.TransactionType `json:"type" example:"expense"`             // Type of the transactions in the category. One of expense or income
	Icon  string                 `json:"icon" example:"🍔" default:""`        // Icon of the category
	Color string                 `json:"color" example:"#ef4444" default:""` // Color of the category as hex code
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:  editable.Name,
		Type:  editable.Type,
		Icon:  editable.Icon,
		Color: editable.Color,
	}
}

func newCategoryEditable(model models.Category) CategoryEditable {
	return CategoryEditable{
		Name:  model.Name,
		Type:  model.Type,
		Icon:  model.Icon,
		Color: model.Color,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in the category
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	IsDefault bool                 `json:"isDefault" example:"true"` // Is this one of the default categories?
	Display   categorydisplay.Info `json:"display"`                  // Name, icon and color to display, with broken encodings repaired
	Links     CategoryLinks        `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel:     model.DefaultModel,
		CategoryEditable: newCategoryEditable(model),
		IsDefault:        model.IsDefault,
		Display:          model.Display(),
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
}

type CategoryQueryFilter struct {
	Name      string                 `form:"name" filterField:"false"`   // Fuzzy filter for the name
	Type      models.TransactionType `form:"type"`                       // By type
	IsDefault bool                   `form:"isDefault"`                  // Is the category a default category?
	Search    string                 `form:"search" filterField:"false"` // By string in the name
	Offset    uint                   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit     int                    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Type:      f.Type,
		IsDefault: f.IsDefault,
	}
}

type CategoryDefaultsQuery struct {
	Type models.TransactionType `form:"type"` // Only create the defaults for this type
}
