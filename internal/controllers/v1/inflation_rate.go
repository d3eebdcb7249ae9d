package v1

import (
	"net/http"

	"github.com/basketwise/backend/internal/auth"
	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterInflationRateRoutes registers the routes for inflation rates with
// the RouterGroup that is passed. Changing rates is restricted to admins.
func RegisterInflationRateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInflationRateList)
		r.GET("", GetInflationRates)
		r.POST("", auth.RequireAdmin(), CreateInflationRates)
	}

	// Inflation rate with ID
	{
		r.OPTIONS("/:id", OptionsInflationRateDetail)
		r.GET("/:id", GetInflationRate)
		r.PATCH("/:id", auth.RequireAdmin(), UpdateInflationRate)
		r.DELETE("/:id", auth.RequireAdmin(), DeleteInflationRate)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inflation Rates
// @Success		204
// @Router			/v1/inflation-rates [options]
func OptionsInflationRateList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inflation Rates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/inflation-rates/{id} [options]
func OptionsInflationRateDetail(c *gin.Context) {
	_, err := getInflationRate(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func getInflationRate(c *gin.Context) (models.InflationRate, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.InflationRate{}, httputil.ErrInvalidUUID
	}

	var rate models.InflationRate
	err := models.DB.WithContext(c).First(&rate, "id = ?", uri.ID.UUID).Error
	return rate, err
}

func notifyInflationRate(c *gin.Context, rate models.InflationRate, action string) {
	user := currentUser(c)

	events.Notify(c, events.Event{
		Type:       events.InflationRateChanged,
		UserID:     &user.ID,
		ResourceID: rate.ID,
		Data: map[string]any{
			"action":   action,
			"month":    rate.Month.String(),
			"category": rate.Category,
			"rate":     rate.Rate.String(),
		},
	})
}

// @Summary		Create inflation rates
// @Description	Creates new inflation rates. Admins only.
// @Tags			Inflation Rates
// @Accept			json
// @Produce		json
// @Success		201		{object}	InflationRateCreateResponse
// @Failure		400		{object}	InflationRateCreateResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	InflationRateCreateResponse
// @Param			rates	body		[]InflationRateEditable	true	"Inflation rates"
// @Router			/v1/inflation-rates [post]
func CreateInflationRates(c *gin.Context) {
	var editables []InflationRateEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InflationRateCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InflationRateCreateResponse{}

	for _, editable := range editables {
		rate := editable.model()

		err = models.DB.WithContext(c).Create(&rate).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		notifyInflationRate(c, rate, "created")

		data := newInflationRate(c, rate)
		r.Data = append(r.Data, InflationRateResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get inflation rates
// @Description	Returns a list of inflation rates, newest months first
// @Tags			Inflation Rates
// @Produce		json
// @Success		200	{object}	InflationRateListResponse
// @Failure		400	{object}	InflationRateListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	InflationRateListResponse
// @Router			/v1/inflation-rates [get]
// @Param			month		query	string	false	"Filter by month (YYYY-MM)"
// @Param			fromMonth	query	string	false	"Rates for this month (YYYY-MM) and later"
// @Param			untilMonth	query	string	false	"Rates for this month (YYYY-MM) and earlier"
// @Param			category	query	string	false	"Filter by category"
// @Param			offset		query	uint	false	"The offset of the first rate returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rates to return. Defaults to 50."
func GetInflationRates(c *gin.Context) {
	var filter InflationRateQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, InflationRateListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.WithContext(c).Order("month DESC, category ASC")

	if !filter.Month.IsZero() {
		q = q.Where("month = ?", filter.Month)
	}

	if !filter.FromMonth.IsZero() {
		q = q.Where("month >= ?", filter.FromMonth)
	}

	if !filter.UntilMonth.IsZero() {
		q = q.Where("month <= ?", filter.UntilMonth)
	}

	if slices.Contains(setFields, "Category") {
		q = q.Where("category = ?", models.NormalizeCategory(filter.Category))
	}

	limit := queryLimit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var rates []models.InflationRate
	err := q.Find(&rates).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.InflationRate{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateListResponse{
			Error: &s,
		})
		return
	}

	data := make([]InflationRate, 0, len(rates))
	for _, rate := range rates {
		data = append(data, newInflationRate(c, rate))
	}

	c.JSON(http.StatusOK, InflationRateListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get inflation rate
// @Description	Returns a specific inflation rate
// @Tags			Inflation Rates
// @Produce		json
// @Success		200	{object}	InflationRateResponse
// @Failure		400	{object}	InflationRateResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	InflationRateResponse
// @Failure		500	{object}	InflationRateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/inflation-rates/{id} [get]
func GetInflationRate(c *gin.Context) {
	rate, err := getInflationRate(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateResponse{
			Error: &s,
		})
		return
	}

	data := newInflationRate(c, rate)
	c.JSON(http.StatusOK, InflationRateResponse{Data: &data})
}

// @Summary		Update inflation rate
// @Description	Update an existing inflation rate. Only values to be updated need to be specified. Admins only.
// @Tags			Inflation Rates
// @Accept			json
// @Produce		json
// @Success		200		{object}	InflationRateResponse
// @Failure		400		{object}	InflationRateResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	InflationRateResponse
// @Failure		500		{object}	InflationRateResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rate	body		InflationRateEditable	true	"Inflation rate"
// @Router			/v1/inflation-rates/{id} [patch]
func UpdateInflationRate(c *gin.Context) {
	rate, err := getInflationRate(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InflationRateEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateResponse{
			Error: &s,
		})
		return
	}

	var data InflationRateEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateResponse{
			Error: &s,
		})
		return
	}

	update := data.model()
	merged := merge(rate, update, updateFields)
	if err := merged.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateResponse{
			Error: &s,
		})
		return
	}

	update.Category = merged.Category
	update.Source = merged.Source

	err = models.DB.WithContext(c).Model(&rate).Select("", updateFields...).Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InflationRateResponse{
			Error: &s,
		})
		return
	}

	notifyInflationRate(c, rate, "updated")

	r := newInflationRate(c, rate)
	c.JSON(http.StatusOK, InflationRateResponse{Data: &r})
}

// @Summary		Delete inflation rate
// @Description	Deletes an inflation rate permanently. Admins only.
// @Tags			Inflation Rates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/inflation-rates/{id} [delete]
func DeleteInflationRate(c *gin.Context) {
	rate, err := getInflationRate(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Rates are deleted permanently so that the month and category can be used again
	err = models.DB.WithContext(c).Unscoped().Delete(&rate).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	notifyInflationRate(c, rate, "deleted")

	c.JSON(http.StatusNoContent, nil)
}
