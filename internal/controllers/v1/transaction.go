package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Security		BearerAuth
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	_, ok := getTransaction(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// getTransaction binds the transaction ID from the URI and loads the
// transaction of the user with its category. If an error occurs, it is
// written to the response and ok is false.
func getTransaction(c *gin.Context) (transaction models.Transaction, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	transaction, err = loadTransaction(auth.UserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	return transaction, true
}

func loadTransaction(userID, id uuid.UUID) (transaction models.Transaction, err error) {
	err = models.Scope(models.DB, userID).Preload("Category").First(&transaction, "id = ?", id).Error
	return
}

// createTransaction creates the transaction for the user. Transactions
// without a category get the category of the first matching rule.
func createTransaction(userID uuid.UUID, editable TransactionEditable) (models.Transaction, error) {
	transaction := editable.model()
	transaction.UserID = userID

	if transaction.InstallmentNumber == nil {
		paid := 1
		transaction.InstallmentNumber = &paid
	}

	if transaction.CategoryID == nil || *transaction.CategoryID == uuid.Nil {
		id, err := models.MatchCategory(models.DB, userID, transaction.Type, transaction.Description)
		if err != nil {
			return models.Transaction{}, err
		}
		transaction.CategoryID = id
	}

	err := models.DB.Omit(clause.Associations).Create(&transaction).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return loadTransaction(userID, transaction.ID)
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number
// @Description	that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Security		BearerAuth
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction, err := createTransaction(auth.UserID(c), editable)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			type				query	string	false	"Filter by type: expense or income"
// @Param			category			query	string	false	"Filter by category ID. Empty for uncategorized transactions"
// @Param			source				query	string	false	"Filter by ID of the card or bank the money comes from"
// @Param			sourceType			query	string	false	"Filter by type of the source: card or bank"
// @Param			paymentMethod		query	string	false	"Filter by payment method"
// @Param			dateRange			query	string	false	"Named date range: today, week, month, last30 or custom. Custom uses fromDate and untilDate"
// @Param			fromDate			query	string	false	"Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate			query	string	false	"Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			search				query	string	false	"Search for this text in description and notes"
// @Param			offset				query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	q, err := transactionQuery(c, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)
	q, limit := page(q, setFields, filter.Offset, filter.Limit)

	// The preload must not be part of the count query
	var transactions []models.Transaction
	err = q.Session(&gorm.Session{}).Preload("Category").Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.Transaction{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// transactionQuery builds the query for the filter, without pagination.
func transactionQuery(c *gin.Context, filter TransactionQueryFilter) (*gorm.DB, error) {
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		return nil, err
	}

	q := models.Scope(models.DB, auth.UserID(c)).
		Order("transaction_date DESC, created_at DESC").
		Where(&model, queryFields...)

	if slices.Contains(setFields, "CategoryID") {
		if filter.CategoryID == "" {
			q = q.Where("category_id IS NULL")
		} else {
			id, err := httputil.UUIDFromString(filter.CategoryID)
			if err != nil {
				return nil, err
			}
			q = q.Where("category_id = ?", id)
		}
	}

	if filter.SourceID != "" {
		id, err := httputil.UUIDFromString(filter.SourceID)
		if err != nil {
			return nil, err
		}
		q = q.Where("source_id = ?", id)
	}

	r, err := filter.dateRange(time.Now().In(time.UTC))
	if err != nil {
		return nil, err
	}

	if !r.From.IsZero() {
		q = q.Where("transaction_date >= ?", r.From)
	}

	if end := r.End(); !end.IsZero() {
		q = q.Where("transaction_date < ?", end)
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("amount >= ?", filter.AmountMoreOrEqual)
	}

	return searchFilter(models.DB, q, filter.Search, "description", "notes"), nil
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := getTransaction(c)
	if !ok {
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Security		BearerAuth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, ok := getTransaction(c)
	if !ok {
		return
	}

	// Fields not present in the body keep their current values
	editable := newTransactionEditable(transaction)
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	updated := editable.model()
	updated.DefaultModel = transaction.DefaultModel
	updated.Owned = transaction.Owned

	err = models.DB.Omit(clause.Associations).Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	updated, err = loadTransaction(updated.UserID, updated.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	data := newTransaction(c, updated)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, ok := getTransaction(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
