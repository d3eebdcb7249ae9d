package models

import (
	"github.com/basketwise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending limit of a household for a period.
type Budget struct {
	DefaultModel
	HouseholdID uuid.UUID
	Household   Household `json:"-"`
	Name        string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PeriodStart types.Date
	PeriodEnd   types.Date
	Active      bool
}

func (Budget) Self() string {
	return "Budget"
}

// PeriodBounds returns the inclusive period of the budget.
// A nil budget has no bounds.
func (b *Budget) PeriodBounds() (start, end types.Date) {
	if b == nil {
		return types.Date{}, types.Date{}
	}

	return b.PeriodStart, b.PeriodEnd
}

func (b *Budget) Validate() error {
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !b.PeriodStart.IsZero() && !b.PeriodEnd.IsZero() && b.PeriodStart.After(b.PeriodEnd) {
		return ErrBudgetPeriodInvalid
	}

	return nil
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	return b.Validate()
}
