package v1

import (
	"fmt"
	"net/http"

	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/period"
	"github.com/basketwise/backend/internal/spending"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)

		r.OPTIONS("/:id/periods", OptionsBudgetCalculated)
		r.GET("/:id/periods", GetBudgetPeriods)
		r.OPTIONS("/:id/comparison", OptionsBudgetCalculated)
		r.GET("/:id/comparison", GetBudgetComparison)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	_, err := householdBudget(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/periods [options]
// @Router			/v1/budgets/{id}/comparison [options]
func OptionsBudgetCalculated(c *gin.Context) {
	_, err := householdBudget(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// householdBudget returns the budget with the ID from the URI if it
// belongs to the household of the authenticated user.
func householdBudget(c *gin.Context) (models.Budget, error) {
	householdID, err := currentHousehold(c)
	if err != nil {
		return models.Budget{}, err
	}

	return householdResource[models.Budget](c, householdID)
}

// @Summary		Create budgets
// @Description	Creates new budgets for the household of the authenticated user
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	householdID, err := currentHousehold(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []BudgetEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model(householdID)

		err = models.DB.WithContext(c).Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns a list of budgets of the household of the authenticated user
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the budget active?"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	householdID, err := currentHousehold(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var filter BudgetQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.WithContext(c).
		Order("period_start DESC, name ASC").
		Where("household_id = ?", householdID).
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("name = ?", filter.Name)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	limit := queryLimit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.Budget{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, err := householdBudget(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, err := householdBudget(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	update := data.model(budget.HouseholdID)
	merged := merge(budget, update, updateFields)
	if err := merged.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&budget).Select("", updateFields...).Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	r := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, err := householdBudget(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c).Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get budget periods
// @Description	Returns the period of the budget and the period it is compared to for the preset
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetPeriodsResponse
// @Failure		400		{object}	BudgetPeriodsResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	BudgetPeriodsResponse
// @Failure		404		{object}	BudgetPeriodsResponse
// @Failure		500		{object}	BudgetPeriodsResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			preset	query		string	false	"Comparison preset"	Enums(default, month-on-month, 3-months-ago, 6-months-ago, year-on-year, 2-years-ago)
// @Router			/v1/budgets/{id}/periods [get]
func GetBudgetPeriods(c *gin.Context) {
	budget, err := householdBudget(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetPeriodsResponse{
			Error: &s,
		})
		return
	}

	var query QueryPreset
	_ = c.ShouldBind(&query)

	preset := period.ParsePreset(query.Preset)
	data := BudgetPeriods{
		Preset:  preset,
		Aligned: period.GetBudgetAlignedPeriods(&budget, preset),
	}

	c.JSON(http.StatusOK, BudgetPeriodsResponse{Data: &data})
}

// @Summary		Get budget comparison
// @Description	Compares the spending in the budget period with the spending in the comparison period of the preset
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetComparisonResponse
// @Failure		400		{object}	BudgetComparisonResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	BudgetComparisonResponse
// @Failure		404		{object}	BudgetComparisonResponse
// @Failure		500		{object}	BudgetComparisonResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			preset	query		string	false	"Comparison preset"	Enums(default, month-on-month, 3-months-ago, 6-months-ago, year-on-year, 2-years-ago)
// @Router			/v1/budgets/{id}/comparison [get]
func GetBudgetComparison(c *gin.Context) {
	budget, err := householdBudget(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetComparisonResponse{
			Error: &s,
		})
		return
	}

	var query QueryPreset
	_ = c.ShouldBind(&query)

	preset := period.ParsePreset(query.Preset)
	aligned := period.GetBudgetAlignedPeriods(&budget, preset)

	receipts, err := alignedReceipts(c, budget.HouseholdID, aligned)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetComparisonResponse{
			Error: &s,
		})
		return
	}

	spent := spending.Summarize(period.FilterRecordsByPeriod(receipts, aligned.Current))
	comparisonSpent := spending.Summarize(period.FilterRecordsByPeriod(receipts, aligned.Comparison))

	data := BudgetComparison{
		BudgetPeriods: BudgetPeriods{
			Preset:  preset,
			Aligned: aligned,
		},
		Amount:          budget.Amount,
		Spent:           spent,
		ComparisonSpent: comparisonSpent,
		Remaining:       budget.Amount.Sub(spent.Total),
		Changes:         spending.Compare(spent, comparisonSpent),
	}

	c.JSON(http.StatusOK, BudgetComparisonResponse{Data: &data})
}

// alignedReceipts loads all receipts of the household that can lie in
// one of the aligned periods, ordered by purchase date.
func alignedReceipts(c *gin.Context, householdID uuid.UUID, aligned period.Aligned) ([]models.Receipt, error) {
	receipts := make([]models.Receipt, 0)
	if !aligned.Current.Valid() {
		return receipts, nil
	}

	from, to := aligned.Current.From, aligned.Current.To
	if aligned.Comparison.Valid() {
		if aligned.Comparison.From.Before(from) {
			from = aligned.Comparison.From
		}

		if aligned.Comparison.To.After(to) {
			to = aligned.Comparison.To
		}
	}

	err := models.DB.WithContext(c).
		Where("household_id = ? AND purchase_date >= ? AND purchase_date <= ?", householdID, from, to).
		Order("purchase_date ASC, created_at ASC").
		Find(&receipts).Error

	return receipts, err
}
