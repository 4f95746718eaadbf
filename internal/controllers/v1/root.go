package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Banks         string `json:"banks" example:"https://example.com/api/v1/banks"`                  // URL of Bank collection endpoint
	Cards         string `json:"cards" example:"https://example.com/api/v1/cards"`                  // URL of Card collection endpoint
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of Category collection endpoint
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"` // URL of Category Rule collection endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`          // URL of the dashboard endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
	Import        string `json:"import" example:"https://example.com/api/v1/import"`                // URL of the import endpoint
	Invoices      string `json:"invoices" example:"https://example.com/api/v1/invoices"`            // URL of Invoice collection endpoint
	Overview      string `json:"overview" example:"https://example.com/api/v1/overview"`            // URL of the overview endpoint
	Profile       string `json:"profile" example:"https://example.com/api/v1/profile"`              // URL of the profile endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`    // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Security		BearerAuth
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Banks:         url + "/v1/banks",
			Cards:         url + "/v1/cards",
			Categories:    url + "/v1/categories",
			CategoryRules: url + "/v1/category-rules",
			Dashboard:     url + "/v1/dashboard",
			Export:        url + "/v1/export",
			Import:        url + "/v1/import",
			Invoices:      url + "/v1/invoices",
			Overview:      url + "/v1/overview",
			Profile:       url + "/v1/profile",
			Transactions:  url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Security		BearerAuth
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources of the user
// @Tags			v1
// @Security		BearerAuth
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httputil.HTTPError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		models.CategoryRule{},
		models.CardInvoice{},
		models.Transaction{},
		models.Category{},
		models.Card{},
		models.Bank{},
		models.Profile{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := models.Scope(tx.Unscoped(), auth.UserID(c)).Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httputil.HTTPError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
