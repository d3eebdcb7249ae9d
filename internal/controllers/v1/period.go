package v1

import (
	"net/http"

	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/period"
	"github.com/basketwise/backend/internal/spending"
	"github.com/gin-gonic/gin"
)

// RegisterPeriodRoutes registers the routes for period calculations with
// the RouterGroup that is passed.
func RegisterPeriodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/presets", OptionsPeriodPresets)
	r.GET("/presets", GetPeriodPresets)
	r.OPTIONS("/align", OptionsPeriodCalculation)
	r.POST("/align", AlignPeriod)
	r.OPTIONS("/filter", OptionsPeriodCalculation)
	r.POST("/filter", FilterRecords)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Router			/v1/periods/presets [options]
func OptionsPeriodPresets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Router			/v1/periods/align [options]
// @Router			/v1/periods/filter [options]
func OptionsPeriodCalculation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get comparison presets
// @Description	Returns all presets that can be used to compare periods
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	PeriodPresetsResponse
// @Failure		401	{object}	httpError
// @Router			/v1/periods/presets [get]
func GetPeriodPresets(c *gin.Context) {
	c.JSON(http.StatusOK, PeriodPresetsResponse{Data: period.Presets()})
}

// @Summary		Align period
// @Description	Returns the period and the period it is compared to for the preset. Incomplete periods have no alignment.
// @Tags			Periods
// @Accept			json
// @Produce		json
// @Success		200		{object}	PeriodAlignResponse
// @Failure		400		{object}	PeriodAlignResponse
// @Failure		401		{object}	httpError
// @Param			period	body		PeriodAlign	true	"Period"
// @Router			/v1/periods/align [post]
func AlignPeriod(c *gin.Context) {
	var data PeriodAlign
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodAlignResponse{
			Error: &s,
		})
		return
	}

	preset := period.ParsePreset(data.Preset)
	r := BudgetPeriods{
		Preset:  preset,
		Aligned: period.GetBudgetAlignedPeriods(data, preset),
	}

	c.JSON(http.StatusOK, PeriodAlignResponse{Data: &r})
}

// @Summary		Filter records
// @Description	Returns the records within the period and their spending summary. Records with invalid dates and periods with missing or invalid boundaries yield no records.
// @Tags			Periods
// @Accept			json
// @Produce		json
// @Success		200		{object}	PeriodFilterResponse
// @Failure		400		{object}	PeriodFilterResponse
// @Failure		401		{object}	httpError
// @Param			filter	body		PeriodFilter	true	"Records and period"
// @Router			/v1/periods/filter [post]
func FilterRecords(c *gin.Context) {
	var data PeriodFilter
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodFilterResponse{
			Error: &s,
		})
		return
	}

	records := period.FilterRecordsByRange(data.Records, data.From, data.To)
	r := PeriodFilterResult{
		Records: records,
		Summary: spending.Summarize(records),
	}

	c.JSON(http.StatusOK, PeriodFilterResponse{Data: &r})
}
