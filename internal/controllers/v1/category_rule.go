package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}

	// Category rule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Security		BearerAuth
// @Success		204
// @Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	_, ok := getCategoryRule(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func getCategoryRule(c *gin.Context) (rule models.CategoryRule, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	err = models.Scope(models.DB, auth.UserID(c)).First(&rule, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	return rule, true
}

// @Summary		Create category rules
// @Description	Creates new category rules. New transactions without a category get the category of the first matching rule.
// @Tags			Category Rules
// @Security		BearerAuth
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		404		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"Category rules"
// @Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var editables []CategoryRuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()
		rule.UserID = auth.UserID(c)

		err = models.DB.Omit(clause.Associations).Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryRule(c, rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List category rules
// @Description	Returns a list of category rules, ordered by priority
// @Tags			Category Rules
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		400	{object}	CategoryRuleListResponse
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			match		query	string	false	"Filter by pattern"
// @Param			offset		query	uint	false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rules to return. Defaults to 50."
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.Scope(models.DB, auth.UserID(c)).Order("priority ASC, created_at ASC")

	if slices.Contains(setFields, "CategoryID") {
		id, err := httputil.UUIDFromString(filter.CategoryID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryRuleListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("category_id = ?", id)
	}

	q = likeFilter(q, setFields, "Match", "match", filter.Match)
	q, limit := page(q, setFields, filter.Offset, filter.Limit)

	var rules []models.CategoryRule
	err := q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.CategoryRule{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CategoryRule, 0)
	for _, rule := range rules {
		data = append(data, newCategoryRule(c, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	rule, ok := getCategoryRule(c)
	if !ok {
		return
	}

	data := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Update category rule
// @Description	Updates a category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Security		BearerAuth
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	rule, ok := getCategoryRule(c)
	if !ok {
		return
	}

	editable := newCategoryRuleEditable(rule)
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	updated := editable.model()
	updated.DefaultModel = rule.DefaultModel
	updated.Owned = rule.Owned

	err = models.DB.Omit(clause.Associations).Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryRule(c, updated)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	rule, ok := getCategoryRule(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
