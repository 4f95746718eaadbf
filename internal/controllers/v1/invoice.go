package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/money"
	"github.com/moneta-finance/backend/internal/statement"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// formatter formats the amounts on PDF statements
var formatter = money.Default()

// SetFormatter sets the currency formatter used for PDF statements.
func SetFormatter(f money.Formatter) {
	formatter = f
}

// RegisterInvoiceRoutes registers the routes for invoices with
// the RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvoiceList)
		r.GET("", GetInvoices)
		r.POST("", CreateInvoices)
	}

	// Invoice with ID
	{
		r.OPTIONS("/:id", OptionsInvoiceDetail)
		r.GET("/:id", GetInvoice)
		r.PATCH("/:id", UpdateInvoice)
		r.DELETE("/:id", DeleteInvoice)
		r.OPTIONS("/:id/payments", OptionsInvoicePayments)
		r.POST("/:id/payments", CreateInvoicePayment)
		r.GET("/:id/statement.pdf", GetInvoiceStatement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Security		BearerAuth
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoiceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	_, _, ok := getInvoice(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/payments [options]
func OptionsInvoicePayments(c *gin.Context) {
	_, _, ok := getInvoice(c)
	if !ok {
		return
	}

	httputil.OptionsPost(c)
}

// getInvoice binds the invoice ID from the URI and loads the invoice
// of the user with its card. If an error occurs, it is written to the
// response and ok is false.
func getInvoice(c *gin.Context) (i models.CardInvoice, card models.Card, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	err = models.Scope(models.DB, auth.UserID(c)).Preload("Card").First(&i, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	return i, i.Card, true
}

// @Summary		Create invoices
// @Description	Creates the invoices of cards for months. The total is calculated from the expenses of the card.
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		json
// @Success		201			{object}	InvoiceCreateResponse
// @Failure		400			{object}	InvoiceCreateResponse
// @Failure		404			{object}	InvoiceCreateResponse
// @Failure		500			{object}	InvoiceCreateResponse
// @Param			invoices	body		[]InvoiceEditable	true	"Invoices"
// @Router			/v1/invoices [post]
func CreateInvoices(c *gin.Context) {
	var editables []InvoiceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvoiceCreateResponse{}

	for _, editable := range editables {
		i, card, err := createInvoice(auth.UserID(c), editable)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInvoice(c, i, card)
		r.Data = append(r.Data, InvoiceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// createInvoice reconciles a new invoice and registers the paid amount.
func createInvoice(userID uuid.UUID, editable InvoiceEditable) (models.CardInvoice, models.Card, error) {
	if editable.PaidAmount.IsNegative() {
		return models.CardInvoice{}, models.Card{}, errInvoicePaidAmount
	}

	var card models.Card
	err := models.Scope(models.DB, userID).First(&card, "id = ?", editable.CardID).Error
	if err != nil {
		return models.CardInvoice{}, models.Card{}, err
	}

	var count int64
	err = models.DB.Model(&models.CardInvoice{}).
		Where(&models.CardInvoice{CardID: card.ID}).
		Where("month = ?", editable.Month).
		Count(&count).Error
	if err != nil {
		return models.CardInvoice{}, models.Card{}, err
	}
	if count > 0 {
		return models.CardInvoice{}, models.Card{}, models.ErrInvoiceNotUnique
	}

	i, err := card.Reconcile(models.DB, editable.Month)
	if err != nil {
		return models.CardInvoice{}, models.Card{}, err
	}

	if editable.PaidAmount.IsPositive() {
		err = i.Pay(models.DB, editable.PaidAmount)
		if err != nil {
			return models.CardInvoice{}, models.Card{}, err
		}
	}

	return i, card, nil
}

// @Summary		List invoices
// @Description	Returns a list of card invoices, newest month first
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	InvoiceListResponse
// @Failure		400	{object}	InvoiceListResponse
// @Failure		500	{object}	InvoiceListResponse
// @Router			/v1/invoices [get]
// @Param			card	query	string	false	"Filter by card ID"
// @Param			month	query	string	false	"Filter by month (YYYY-MM)"
// @Param			status	query	string	false	"Filter by status: open, partial or paid"
// @Param			offset	query	uint	false	"The offset of the first invoice returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of invoices to return. Defaults to 50."
func GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &s,
		})
		return
	}

	q := models.Scope(models.DB, auth.UserID(c)).
		Order("month DESC, created_at ASC").
		Where(&model, queryFields...)

	q, limit := page(q, setFields, filter.Offset, filter.Limit)

	// The preload must not be part of the count query
	var invoices []models.CardInvoice
	err = q.Session(&gorm.Session{}).Preload("Card").Find(&invoices).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.CardInvoice{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Invoice, 0)
	for _, i := range invoices {
		data = append(data, newInvoice(c, i, i.Card))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get invoice
// @Description	Returns a specific invoice
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	InvoiceResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	i, card, ok := getInvoice(c)
	if !ok {
		return
	}

	data := newInvoice(c, i, card)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &data})
}

// @Summary		Update invoice
// @Description	Updates the paid amount of an invoice. The status is recalculated.
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	InvoiceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices/{id} [patch]
func UpdateInvoice(c *gin.Context) {
	i, card, ok := getInvoice(c)
	if !ok {
		return
	}

	// Fields not present in the body keep their current values
	editable := InvoiceEditable{
		CardID:     i.CardID,
		Month:      i.Month,
		PaidAmount: i.PaidAmount,
	}
	err := httputil.BindData(c, &editable)
	if err == nil && (editable.CardID != i.CardID || !editable.Month.Equal(i.Month)) {
		err = errInvoiceImmutable
	}
	if err == nil && editable.PaidAmount.IsNegative() {
		err = errInvoicePaidAmount
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	i.PaidAmount = editable.PaidAmount
	err = models.DB.Omit(clause.Associations).Save(&i).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	data := newInvoice(c, i, card)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &data})
}

// @Summary		Delete invoice
// @Description	Deletes an invoice
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		json
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	i, _, ok := getInvoice(c)
	if !ok {
		return
	}

	// Invoices are deleted permanently so that the month can be reconciled again
	err := models.DB.Unscoped().Delete(&i).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Register payment
// @Description	Adds a payment to the paid amount of the invoice. The status is recalculated.
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	InvoiceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/invoices/{id}/payments [post]
func CreateInvoicePayment(c *gin.Context) {
	i, card, ok := getInvoice(c)
	if !ok {
		return
	}

	var payment PaymentEditable
	err := httputil.BindData(c, &payment)
	if err == nil {
		err = i.Pay(models.DB, payment.Amount)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	data := newInvoice(c, i, card)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &data})
}

// @Summary		Get invoice statement
// @Description	Returns the statement of the invoice as PDF, listing every installment charged in the month
// @Tags			Invoices
// @Security		BearerAuth
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/statement.pdf [get]
func GetInvoiceStatement(c *gin.Context) {
	i, card, ok := getInvoice(c)
	if !ok {
		return
	}

	transactions, err := card.Expenses(models.DB, i.Month)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	s := statement.New(card, i, transactions)

	var buf bytes.Buffer
	err = statement.Render(&buf, s, formatter)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httputil.HTTPError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.Filename()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
