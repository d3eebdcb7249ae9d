package v1

import (
	"github.com/basketwise/backend/internal/period"
	"github.com/basketwise/backend/internal/spending"
	"github.com/basketwise/backend/internal/types"
)

// PeriodAlign is a period that is not stored as a budget
type PeriodAlign struct {
	PeriodStart types.Date `json:"periodStart" example:"2024-03-01" swaggertype:"string"` // First day of the period
	PeriodEnd   types.Date `json:"periodEnd" example:"2024-03-31" swaggertype:"string"`   // Last day of the period
	Preset      string     `json:"preset" example:"month-on-month"`                        // Comparison preset, unknown values fall back to "default"
}

func (p PeriodAlign) PeriodBounds() (start, end types.Date) {
	return p.PeriodStart, p.PeriodEnd
}

type PeriodAlignResponse struct {
	Data  *BudgetPeriods `json:"data"`                                                          // Aligned periods
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// PeriodFilter is a list of records and the period to filter them by
type PeriodFilter struct {
	Records []period.Record `json:"records"`                   // Records to filter
	From    string          `json:"from" example:"2024-03-01"` // First day of the period. If it is missing or invalid, no record is returned
	To      string          `json:"to" example:"2024-03-31"`   // Last day of the period. If it is missing or invalid, no record is returned
}

type PeriodFilterResult struct {
	Records []period.Record  `json:"records"` // Records within the period, in their original order
	Summary spending.Summary `json:"summary"` // Spending of the records within the period
}

type PeriodFilterResponse struct {
	Data  *PeriodFilterResult `json:"data"`                                                          // Filtered records
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PeriodPresetsResponse struct {
	Data []period.Preset `json:"data" example:"default,month-on-month,3-months-ago,6-months-ago,year-on-year,2-years-ago"` // All comparison presets
}
