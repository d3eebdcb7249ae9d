package v1

import (
	"fmt"

	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/period"
	"github.com/basketwise/backend/internal/spending"
	"github.com/basketwise/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name        string          `json:"name" example:"Groceries March" default:""`              // Name of the budget
	Amount      decimal.Decimal `json:"amount" example:"450" swaggertype:"string"`              // Amount that can be spent in the period
	PeriodStart types.Date      `json:"periodStart" example:"2024-03-01" swaggertype:"string"` // First day of the budget period
	PeriodEnd   types.Date      `json:"periodEnd" example:"2024-03-31" swaggertype:"string"`   // Last day of the budget period
	Active      bool            `json:"active" example:"true" default:"false"`                 // Is the budget active?
}

func (editable BudgetEditable) model(householdID uuid.UUID) models.Budget {
	return models.Budget{
		HouseholdID: householdID,
		Name:        editable.Name,
		Amount:      editable.Amount,
		PeriodStart: editable.PeriodStart,
		PeriodEnd:   editable.PeriodEnd,
		Active:      editable.Active,
	}
}

type BudgetLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                       // The budget itself
	Periods    string `json:"periods" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/periods"`            // Aligned periods of the budget
	Comparison string `json:"comparison" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/comparison"`      // Spending comparison for the budget
	Receipts   string `json:"receipts" example:"https://example.com/api/v1/receipts?fromDate=2024-03-01&untilDate=2024-03-31"` // Receipts in the budget period
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	HouseholdID uuid.UUID   `json:"householdId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the household the budget belongs to
	Links       BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:        model.Name,
			Amount:      model.Amount,
			PeriodStart: model.PeriodStart,
			PeriodEnd:   model.PeriodEnd,
			Active:      model.Active,
		},
		HouseholdID: model.HouseholdID,
		Links: BudgetLinks{
			Self:       fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Periods:    fmt.Sprintf("%s/v1/budgets/%s/periods", url, model.ID),
			Comparison: fmt.Sprintf("%s/v1/budgets/%s/comparison", url, model.ID),
			Receipts:   fmt.Sprintf("%s/v1/receipts?fromDate=%s&untilDate=%s", url, model.PeriodStart, model.PeriodEnd),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Active bool   `form:"active"`                     // Is the budget active?
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Active: f.Active,
	}
}

type QueryPreset struct {
	Preset string `form:"preset" example:"year-on-year"` // Comparison preset, unknown values fall back to "default"
}

type BudgetPeriods struct {
	Preset period.Preset `json:"preset" example:"year-on-year"` // The preset that was applied
	period.Aligned
}

type BudgetPeriodsResponse struct {
	Data  *BudgetPeriods `json:"data"`                                                          // Aligned periods of the budget
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetComparison struct {
	BudgetPeriods
	Amount          decimal.Decimal     `json:"amount" example:"450" swaggertype:"string"`    // Amount of the budget
	Spent           spending.Summary    `json:"spent"`                                         // Spending in the current period
	ComparisonSpent spending.Summary    `json:"comparisonSpent"`                               // Spending in the comparison period
	Remaining       decimal.Decimal     `json:"remaining" example:"107.63" swaggertype:"string"` // Amount minus spending in the current period
	Changes         spending.Comparison `json:"changes"`                                       // Changes between the periods, overall and per category
}

type BudgetComparisonResponse struct {
	Data  *BudgetComparison `json:"data"`                                                          // Spending comparison for the budget
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
