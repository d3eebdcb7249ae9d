// Package spending summarizes and compares spending of dated records.
package spending

import (
	"sort"

	"github.com/shopspring/decimal"
)

// UncategorizedCategory is used for records without a category.
const UncategorizedCategory = "Uncategorized"

// Record is a record with a category and an amount.
type Record interface {
	RecordCategory() string
	RecordAmount() decimal.Decimal
}

// Summary is the spending of a set of records.
type Summary struct {
	Total      decimal.Decimal            `json:"total" example:"142.37"` // Sum of all amounts
	Count      int                        `json:"count" example:"12"`     // Number of records
	Categories map[string]decimal.Decimal `json:"categories"`             // Sum of amounts per category
}

// Summarize sums up the records in total and per category.
func Summarize[R Record](records []R) Summary {
	s := Summary{
		Total:      decimal.Zero,
		Categories: make(map[string]decimal.Decimal),
	}

	for _, r := range records {
		category := r.RecordCategory()
		if category == "" {
			category = UncategorizedCategory
		}

		s.Total = s.Total.Add(r.RecordAmount())
		s.Categories[category] = s.Categories[category].Add(r.RecordAmount())
		s.Count++
	}

	return s
}

// Change is the difference of the spending between two periods.
type Change struct {
	Current       decimal.Decimal  `json:"current" example:"120"`      // Spending in the current period
	Comparison    decimal.Decimal  `json:"comparison" example:"100"`   // Spending in the comparison period
	Difference    decimal.Decimal  `json:"difference" example:"20"`    // Current minus comparison
	ChangePercent *decimal.Decimal `json:"changePercent" example:"20"` // Relative change in percent, null when nothing was spent in the comparison period
}

// CategoryChange is the Change for a single category.
type CategoryChange struct {
	Category string `json:"category" example:"Dairy"`
	Change
}

// Comparison compares the spending of two periods.
type Comparison struct {
	Total      Change           `json:"total"`
	Categories []CategoryChange `json:"categories"` // Sorted by category name
}

func change(current, comparison decimal.Decimal) Change {
	c := Change{
		Current:    current,
		Comparison: comparison,
		Difference: current.Sub(comparison),
	}

	if !comparison.IsZero() {
		p := c.Difference.Div(comparison).Mul(decimal.NewFromInt(100)).Round(2)
		c.ChangePercent = &p
	}

	return c
}

// Compare compares two summaries. Categories present in only one
// of the summaries are compared against zero.
func Compare(current, comparison Summary) Comparison {
	names := make(map[string]bool)
	for name := range current.Categories {
		names[name] = true
	}
	for name := range comparison.Categories {
		names[name] = true
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	result := Comparison{
		Total:      change(current.Total, comparison.Total),
		Categories: make([]CategoryChange, 0, len(sorted)),
	}

	for _, name := range sorted {
		result.Categories = append(result.Categories, CategoryChange{
			Category: name,
			Change:   change(current.Categories[name], comparison.Categories[name]),
		})
	}

	return result
}
