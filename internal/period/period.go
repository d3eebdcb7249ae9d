// Package period aligns budget periods with comparison periods and filters
// dated records into period windows.
package period

import (
	"strings"

	"github.com/basketwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Preset selects how far back a budget period is shifted for comparison.
type Preset string

const (
	PresetDefault        Preset = "default"
	PresetMonthOnMonth   Preset = "month-on-month"
	PresetThreeMonthsAgo Preset = "3-months-ago"
	PresetSixMonthsAgo   Preset = "6-months-ago"
	PresetYearOnYear     Preset = "year-on-year"
	PresetTwoYearsAgo    Preset = "2-years-ago"
)

// offsets are the calendar offsets in months. PresetDefault has none.
var offsets = map[Preset]int{
	PresetMonthOnMonth:   -1,
	PresetThreeMonthsAgo: -3,
	PresetSixMonthsAgo:   -6,
	PresetYearOnYear:     -12,
	PresetTwoYearsAgo:    -24,
}

var presets = []Preset{
	PresetDefault,
	PresetMonthOnMonth,
	PresetThreeMonthsAgo,
	PresetSixMonthsAgo,
	PresetYearOnYear,
	PresetTwoYearsAgo,
}

// Presets returns all known presets.
func Presets() []Preset {
	return slices.Clone(presets)
}

// ParsePreset returns the preset for s. Unknown values are PresetDefault.
func ParsePreset(s string) Preset {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(presets, p) {
		return PresetDefault
	}

	return p
}

// Shift returns the offset of the preset in whole calendar months and
// whether the preset has a comparison at all.
func (p Preset) Shift() (months int, ok bool) {
	months, ok = offsets[p]
	return
}

// Period is an inclusive range of calendar dates.
type Period struct {
	From types.Date `json:"from" example:"2024-03-01"`
	To   types.Date `json:"to" example:"2024-03-31"`
}

// Valid reports whether both boundaries are set.
func (p *Period) Valid() bool {
	return p != nil && !p.From.IsZero() && !p.To.IsZero()
}

// Contains reports whether the date lies within the period, boundaries included.
func (p Period) Contains(d types.Date) bool {
	return !d.Before(p.From) && !d.After(p.To)
}

// Aligned is a budget's current period and the period it is compared to.
type Aligned struct {
	Current    *Period `json:"current"`    // The budget period, null when the budget has no complete period
	Comparison *Period `json:"comparison"` // The comparison period, null for the default preset
}

// Budget is anything with an inclusive period. Zero dates mean the
// boundary is missing.
type Budget interface {
	PeriodBounds() (start, end types.Date)
}

// GetBudgetAlignedPeriods returns the budget's current period and the
// comparison period for the preset.
//
// Both boundaries are shifted by the same number of calendar months, days
// that do not exist in the target month are clamped to its last day.
func GetBudgetAlignedPeriods(budget Budget, preset Preset) Aligned {
	if budget == nil {
		return Aligned{}
	}

	start, end := budget.PeriodBounds()
	current := Period{From: start, To: end}
	if !current.Valid() {
		return Aligned{}
	}

	aligned := Aligned{Current: &current}

	months, ok := preset.Shift()
	if !ok {
		return aligned
	}

	aligned.Comparison = &Period{
		From: start.AddMonths(months),
		To:   end.AddMonths(months),
	}

	return aligned
}
