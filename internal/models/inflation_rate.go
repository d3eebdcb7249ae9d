package models

import (
	"strings"

	"github.com/basketwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InflationRate is the reference grocery inflation for a month.
//
// An empty category applies to all groceries.
type InflationRate struct {
	DefaultModel
	Month    types.Month     `gorm:"uniqueIndex:idx_inflation_rate_month_category"`
	Category string          `gorm:"uniqueIndex:idx_inflation_rate_month_category"`
	Rate     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Source   string
}

func (InflationRate) Self() string {
	return "Inflation Rate"
}

func (r *InflationRate) Validate() error {
	if r.Month.IsZero() {
		return ErrInflationRateNoMonth
	}

	r.Category = NormalizeCategory(r.Category)
	r.Source = strings.TrimSpace(r.Source)
	return nil
}

func (r *InflationRate) BeforeSave(_ *gorm.DB) error {
	return r.Validate()
}
