package v1

import (
	"fmt"

	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InflationRateEditable represents all parameters admins can configure
type InflationRateEditable struct {
	Month    types.Month     `json:"month" example:"2024-03" swaggertype:"string"`   // Month the rate applies to
	Category string          `json:"category" example:"Dairy" default:""`            // Category the rate applies to. Empty for all groceries
	Rate     decimal.Decimal `json:"rate" example:"3.2" swaggertype:"string"`        // Year-on-year price change in percent
	Source   string          `json:"source" example:"Statistics office" default:""` // Where the rate was published
}

func (editable InflationRateEditable) model() models.InflationRate {
	return models.InflationRate{
		Month:    editable.Month,
		Category: editable.Category,
		Rate:     editable.Rate,
		Source:   editable.Source,
	}
}

type InflationRateLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/inflation-rates/0f6d3c2b-4a8e-4c51-9b7e-2d1a6f5e8c90"` // The inflation rate itself
}

type InflationRate struct {
	models.DefaultModel
	InflationRateEditable
	Links InflationRateLinks `json:"links"`
}

func newInflationRate(c *gin.Context, model models.InflationRate) InflationRate {
	url := c.GetString(string(models.DBContextURL))

	return InflationRate{
		DefaultModel: model.DefaultModel,
		InflationRateEditable: InflationRateEditable{
			Month:    model.Month,
			Category: model.Category,
			Rate:     model.Rate,
			Source:   model.Source,
		},
		Links: InflationRateLinks{
			Self: fmt.Sprintf("%s/v1/inflation-rates/%s", url, model.ID),
		},
	}
}

type InflationRateListResponse struct {
	Data       []InflationRate `json:"data"`                                                          // List of inflation rates
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type InflationRateCreateResponse struct {
	Data  []InflationRateResponse `json:"data"`                                                          // List of created inflation rates or their respective error
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *InflationRateCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, InflationRateResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InflationRateResponse struct {
	Data  *InflationRate `json:"data"`                                                          // Data for the inflation rate
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InflationRateQueryFilter struct {
	Month      types.Month `form:"month" filterField:"false"`      // By month
	FromMonth  types.Month `form:"fromMonth" filterField:"false"`  // Rates for this month and later
	UntilMonth types.Month `form:"untilMonth" filterField:"false"` // Rates for this month and earlier
	Category   string      `form:"category" filterField:"false"`   // By category. An empty value selects the rates for all groceries
	Offset     uint        `form:"offset" filterField:"false"`     // The offset of the first rate returned. Defaults to 0.
	Limit      int         `form:"limit" filterField:"false"`      // Maximum number of rates to return. Defaults to 50.
}
