package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterBankRoutes registers the routes for banks with
// the RouterGroup that is passed.
func RegisterBankRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankList)
		r.GET("", GetBanks)
		r.POST("", CreateBanks)
	}

	// Bank with ID
	{
		r.OPTIONS("/:id", OptionsBankDetail)
		r.GET("/:id", GetBank)
		r.PATCH("/:id", UpdateBank)
		r.DELETE("/:id", DeleteBank)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Security		BearerAuth
// @Success		204
// @Router			/v1/banks [options]
func OptionsBankList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [options]
func OptionsBankDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	err = models.Scope(models.DB, auth.UserID(c)).First(&models.Bank{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create banks
// @Description	Creates new bank accounts
// @Tags			Banks
// @Security		BearerAuth
// @Produce		json
// @Success		201		{object}	BankCreateResponse
// @Failure		400		{object}	BankCreateResponse
// @Failure		500		{object}	BankCreateResponse
// @Param			banks	body		[]BankEditable	true	"Banks"
// @Router			/v1/banks [post]
func CreateBanks(c *gin.Context) {
	var editables []BankEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BankCreateResponse{}

	for _, editable := range editables {
		bank := editable.model()
		bank.UserID = auth.UserID(c)

		err = models.DB.Create(&bank).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data, err := newBank(c, bank)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, BankResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List banks
// @Description	Returns a list of bank accounts
// @Tags			Banks
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	BankListResponse
// @Failure		400	{object}	BankListResponse
// @Failure		500	{object}	BankListResponse
// @Router			/v1/banks [get]
// @Param			bankName	query	string	false	"Filter by bank name"
// @Param			nickname	query	string	false	"Filter by nickname"
// @Param			bankCode	query	string	false	"Filter by bank code"
// @Param			accountType	query	string	false	"Filter by account type"
// @Param			search		query	string	false	"Search for this text in bank name and nickname"
// @Param			offset		query	uint	false	"The offset of the first bank returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of banks to return. Defaults to 50."
func GetBanks(c *gin.Context) {
	var filter BankQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BankListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.Scope(models.DB, auth.UserID(c)).
		Order("bank_name ASC").
		Where(&model, queryFields...)

	q = likeFilter(q, setFields, "BankName", "bank_name", filter.BankName)
	q = likeFilter(q, setFields, "Nickname", "nickname", filter.Nickname)
	q = searchFilter(models.DB, q, filter.Search, "bank_name", "nickname")

	q, limit := page(q, setFields, filter.Offset, filter.Limit)

	var banks []models.Bank
	err := q.Find(&banks).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Bank, 0)
	for _, bank := range banks {
		apiResource, err := newBank(c, bank)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BankListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, BankListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bank
// @Description	Returns a specific bank account
// @Tags			Banks
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	BankResponse
// @Failure		400	{object}	BankResponse
// @Failure		404	{object}	BankResponse
// @Failure		500	{object}	BankResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [get]
func GetBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	var bank models.Bank
	err = models.Scope(models.DB, auth.UserID(c)).First(&bank, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	data, err := newBank(c, bank)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BankResponse{Data: &data})
}

// @Summary		Update bank
// @Description	Updates a bank account. Only values to be updated need to be specified.
// @Tags			Banks
// @Security		BearerAuth
// @Produce		json
// @Success		200		{object}	BankResponse
// @Failure		400		{object}	BankResponse
// @Failure		404		{object}	BankResponse
// @Failure		500		{object}	BankResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bank	body		BankEditable	true	"Bank"
// @Router			/v1/banks/{id} [patch]
func UpdateBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	var bank models.Bank
	err = models.Scope(models.DB, auth.UserID(c)).First(&bank, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	// Fields not present in the body keep their current values
	editable := newBankEditable(bank)
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	updated := editable.model()
	updated.DefaultModel = bank.DefaultModel
	updated.Owned = bank.Owned

	err = models.DB.Omit(clause.Associations).Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	data, err := newBank(c, updated)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BankResponse{Data: &data})
}

// @Summary		Delete bank
// @Description	Deletes a bank account. Transactions of the bank are kept without a source or destination.
// @Tags			Banks
// @Security		BearerAuth
// @Produce		json
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [delete]
func DeleteBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	var bank models.Bank
	err = models.Scope(models.DB, auth.UserID(c)).First(&bank, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	// Hard delete so that the transactions lose the reference to the bank
	err = models.DB.Unscoped().Delete(&bank).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
