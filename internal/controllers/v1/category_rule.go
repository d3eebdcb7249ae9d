package v1

import (
	"net/http"

	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
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
// @Success		204
// @Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	_, err := householdCategoryRule(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func householdCategoryRule(c *gin.Context) (models.CategoryRule, error) {
	householdID, err := currentHousehold(c)
	if err != nil {
		return models.CategoryRule{}, err
	}

	return householdResource[models.CategoryRule](c, householdID)
}

// @Summary		Create category rules
// @Description	Creates new category rules for the household of the authenticated user
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"Category rules"
// @Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	householdID, err := currentHousehold(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []CategoryRuleEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model(householdID)

		err = models.DB.WithContext(c).Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryRule(c, rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get category rules
// @Description	Returns the category rules of the household of the authenticated user in the order they are applied
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		400	{object}	CategoryRuleListResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	CategoryRuleListResponse
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
// @Param			category	query	string	false	"Filter by category"
// @Param			store		query	string	false	"Only rules whose pattern matches this store name"
// @Param			offset		query	uint	false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rules to return. Defaults to 50."
func GetCategoryRules(c *gin.Context) {
	householdID, err := currentHousehold(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	var filter CategoryRuleQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	rules, err := categoryRules(c, householdID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	// Glob patterns cannot be matched in SQL, so all filtering happens here
	matching := make([]models.CategoryRule, 0, len(rules))
	for _, rule := range rules {
		if slices.Contains(setFields, "Category") && rule.Category != models.NormalizeCategory(filter.Category) {
			continue
		}

		if slices.Contains(setFields, "Store") && !rule.Matches(filter.Store) {
			continue
		}

		matching = append(matching, rule)
	}

	total := int64(len(matching))
	limit := queryLimit(setFields, filter.Limit)

	start := min(int(filter.Offset), len(matching))
	end := len(matching)
	if limit >= 0 {
		end = min(start+limit, len(matching))
	}

	data := make([]CategoryRule, 0, end-start)
	for _, rule := range matching[start:end] {
		data = append(data, newCategoryRule(c, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	rule, err := householdCategoryRule(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Update category rule
// @Description	Update an existing category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	rule, err := householdCategoryRule(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	var data CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	update := data.model(rule.HouseholdID)
	merged := merge(rule, update, updateFields)
	if err := merged.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	update.Match = merged.Match
	update.Category = merged.Category

	err = models.DB.WithContext(c).Model(&rule).Select("", updateFields...).Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	r := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &r})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	rule, err := householdCategoryRule(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c).Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
