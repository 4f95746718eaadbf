package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/presets"
	"gorm.io/gorm/clause"
)

// RegisterCardRoutes registers the routes for cards with
// the RouterGroup that is passed.
func RegisterCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCardList)
		r.GET("", GetCards)
		r.POST("", CreateCards)
		r.OPTIONS("/presets", OptionsCardPresets)
		r.GET("/presets", GetCardPresets)
	}

	// Card with ID
	{
		r.OPTIONS("/:id", OptionsCardDetail)
		r.GET("/:id", GetCard)
		r.PATCH("/:id", UpdateCard)
		r.DELETE("/:id", DeleteCard)
		r.OPTIONS("/:id/invoices/:month", OptionsCardInvoice)
		r.PUT("/:id/invoices/:month", ReconcileCardInvoice)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Security		BearerAuth
// @Success		204
// @Router			/v1/cards [options]
func OptionsCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Security		BearerAuth
// @Success		204
// @Router			/v1/cards/presets [options]
func OptionsCardPresets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [options]
func OptionsCardDetail(c *gin.Context) {
	_, ok := getCard(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Security		BearerAuth
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id}/invoices/{month} [options]
func OptionsCardInvoice(c *gin.Context) {
	_, ok := getCard(c)
	if !ok {
		return
	}

	c.Header("allow", "OPTIONS, PUT")
	c.Status(http.StatusNoContent)
}

// getCard binds the card ID from the URI and loads the card of the user.
// If an error occurs, it is written to the response and ok is false.
func getCard(c *gin.Context) (card models.Card, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	err = models.Scope(models.DB, auth.UserID(c)).First(&card, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	return card, true
}

// @Summary		List card color presets
// @Description	Returns the color presets that can be applied to cards with the presetId
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	PresetListResponse
// @Router			/v1/cards/presets [get]
func GetCardPresets(c *gin.Context) {
	c.JSON(http.StatusOK, PresetListResponse{Data: presets.All()})
}

// @Summary		Create cards
// @Description	Creates new credit cards. If presetId is set, the colors of the preset are used.
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		201		{object}	CardCreateResponse
// @Failure		400		{object}	CardCreateResponse
// @Failure		500		{object}	CardCreateResponse
// @Param			cards	body		[]CardEditable	true	"Cards"
// @Router			/v1/cards [post]
func CreateCards(c *gin.Context) {
	var editables []CardEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CardCreateResponse{}

	for _, editable := range editables {
		card, err := editable.model()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		card.UserID = auth.UserID(c)

		err = models.DB.Create(&card).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCard(c, card)
		r.Data = append(r.Data, CardResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List cards
// @Description	Returns a list of credit cards
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	CardListResponse
// @Failure		400	{object}	CardListResponse
// @Failure		500	{object}	CardListResponse
// @Router			/v1/cards [get]
// @Param			brand		query	string	false	"Filter by brand"
// @Param			nickname	query	string	false	"Filter by nickname"
// @Param			last4		query	string	false	"Filter by the last four digits of the card number"
// @Param			search		query	string	false	"Search for this text in nickname and cardholder name"
// @Param			offset		query	uint	false	"The offset of the first card returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of cards to return. Defaults to 50."
func GetCards(c *gin.Context) {
	var filter CardQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CardListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.Scope(models.DB, auth.UserID(c)).
		Order("card_nickname ASC").
		Where(&model, queryFields...)

	q = likeFilter(q, setFields, "CardNickname", "card_nickname", filter.CardNickname)
	q = searchFilter(models.DB, q, filter.Search, "card_nickname", "cardholder_name")

	q, limit := page(q, setFields, filter.Offset, filter.Limit)

	var cards []models.Card
	err := q.Find(&cards).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Card, 0)
	for _, card := range cards {
		data = append(data, newCard(c, card))
	}

	c.JSON(http.StatusOK, CardListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get card
// @Description	Returns a specific credit card
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	CardResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [get]
func GetCard(c *gin.Context) {
	card, ok := getCard(c)
	if !ok {
		return
	}

	data := newCard(c, card)
	c.JSON(http.StatusOK, CardResponse{Data: &data})
}

// @Summary		Update card
// @Description	Updates a credit card. Only values to be updated need to be specified.
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		200		{object}	CardResponse
// @Failure		400		{object}	CardResponse
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	CardResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CardEditable	true	"Card"
// @Router			/v1/cards/{id} [patch]
func UpdateCard(c *gin.Context) {
	card, ok := getCard(c)
	if !ok {
		return
	}

	// Fields not present in the body keep their current values
	editable := newCardEditable(card)
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	updated, err := editable.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}
	updated.DefaultModel = card.DefaultModel
	updated.Owned = card.Owned

	err = models.DB.Omit(clause.Associations).Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	data := newCard(c, updated)
	c.JSON(http.StatusOK, CardResponse{Data: &data})
}

// @Summary		Delete card
// @Description	Deletes a credit card and its invoices. Transactions of the card are kept without a source.
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [delete]
func DeleteCard(c *gin.Context) {
	card, ok := getCard(c)
	if !ok {
		return
	}

	// Hard delete so that the transactions lose the reference to the
	// card and its invoices are removed
	err := models.DB.Unscoped().Delete(&card).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Reconcile invoice
// @Description	Calculates the invoice of the card for the month from the card's expenses and stores it.
// @Description	Payments already registered for the invoice are kept.
// @Tags			Cards
// @Security		BearerAuth
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	InvoiceResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id}/invoices/{month} [put]
func ReconcileCardInvoice(c *gin.Context) {
	card, ok := getCard(c)
	if !ok {
		return
	}

	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	i, err := card.Reconcile(models.DB, uri.Month)
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
