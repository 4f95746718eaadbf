package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategories)
		r.OPTIONS("/defaults", OptionsCategoryDefaults)
		r.POST("/defaults", CreateDefaultCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Security		BearerAuth
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Security		BearerAuth
// @Success		204
// @Router			/v1/categories/defaults [options]
func OptionsCategoryDefaults(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	_, ok := getCategory(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// getCategory binds the category ID from the URI and loads the category
// of the user. If an error occurs, it is written to the response and ok is false.
func getCategory(c *gin.Context) (category models.Category, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	err = models.Scope(models.DB, auth.UserID(c)).First(&category, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	return category, true
}

// @Summary		Create categories
// @Description	Creates new categories
// @Tags			Categories
// @Security		BearerAuth
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model()
		category.UserID = auth.UserID(c)

		err = models.DB.Create(&category).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Create default categories
// @Description	Creates the default categories the user does not have yet. Categories whose name only differs in
// @Description	accents or broken encoding count as existing.
// @Tags			Categories
// @Security		BearerAuth
// @Produce		json
// @Success		201		{object}	CategoryCreateResponse
// @Failure		400		{object}	CategoryCreateResponse
// @Failure		500		{object}	CategoryCreateResponse
// @Param			type	query		string	false	"Only create defaults of this type: expense or income"
// @Router			/v1/categories/defaults [post]
func CreateDefaultCategories(c *gin.Context) {
	var query CategoryDefaultsQuery
	err := c.Bind(&query)
	if err == nil && query.Type != "" && query.Type != models.TypeExpense && query.Type != models.TypeIncome {
		err = errTypeFilter
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	types := []models.TransactionType{models.TypeExpense, models.TypeIncome}
	if query.Type != "" {
		types = []models.TransactionType{query.Type}
	}

	r := CategoryCreateResponse{Data: make([]CategoryResponse, 0)}
	for _, t := range types {
		created, err := models.SeedCategories(models.DB, auth.UserID(c), t)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CategoryCreateResponse{
				Error: &e,
			})
			return
		}

		for _, category := range created {
			data := newCategory(c, category)
			r.Data = append(r.Data, CategoryResponse{Data: &data})
		}
	}

	c.JSON(http.StatusCreated, r)
}

// @Summary		List categories
// @Description	Returns a list of categories. If the user has no categories of a type, the default categories
// @Description	for the type are created first.
// @Tags			Categories
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			type		query	string	false	"Filter by type: expense or income"
// @Param			isDefault	query	bool	false	"Is the category a default category?"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	userID := auth.UserID(c)
	for _, t := range []models.TransactionType{models.TypeExpense, models.TypeIncome} {
		err := models.EnsureCategories(models.DB, userID, t)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryListResponse{
				Error: &s,
			})
			return
		}
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.Scope(models.DB, userID).
		Order("type ASC, name ASC").
		Where(&model, queryFields...)

	q = likeFilter(q, setFields, "Name", "name", filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name")

	q, limit := page(q, setFields, filter.Offset, filter.Limit)

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Category, 0)
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Security		BearerAuth
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	// Fields not present in the body keep their current values
	editable := newCategoryEditable(category)
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	updated := editable.model()
	updated.DefaultModel = category.DefaultModel
	updated.UserID = category.UserID
	updated.IsDefault = category.IsDefault

	err = models.DB.Omit(clause.Associations).Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, updated)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions in the category become uncategorized.
// @Tags			Categories
// @Security		BearerAuth
// @Produce		json
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	// Hard delete so that the database uncategorizes the transactions
	// and removes the rules of the category
	err := models.DB.Unscoped().Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
