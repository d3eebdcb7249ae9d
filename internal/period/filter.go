package period

import (
	"github.com/basketwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Dated is a record with a single date, e.g. a receipt's purchase date.
type Dated interface {
	RecordDate() string
}

// FilterRecordsByPeriod returns the records whose date lies within the
// period. The input order is preserved.
//
// It never fails: a missing period or missing boundaries return an empty
// result and records with missing or unparsable dates are left out.
func FilterRecordsByPeriod[R Dated](records []R, p *Period) []R {
	filtered := make([]R, 0)
	if records == nil || !p.Valid() {
		return filtered
	}

	for _, r := range records {
		d, err := types.ParseDate(r.RecordDate())
		if err != nil {
			continue
		}

		if p.Contains(d) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// FilterRecordsByRange is FilterRecordsByPeriod for string boundaries.
// If either boundary does not parse, the result is empty.
func FilterRecordsByRange[R Dated](records []R, from, to string) []R {
	f, err := types.ParseDate(from)
	if err != nil {
		return make([]R, 0)
	}

	t, err := types.ParseDate(to)
	if err != nil {
		return make([]R, 0)
	}

	return FilterRecordsByPeriod(records, &Period{From: f, To: t})
}

// Record is a dated record supplied by API clients.
type Record struct {
	PurchaseDate string          `json:"purchaseDate" example:"2024-03-14"` // Date of the purchase. Records with unparsable dates are filtered out.
	Category     string          `json:"category" example:"Dairy"`          // Category of the purchase
	Cost         decimal.Decimal `json:"cost" example:"12.99"`              // Cost of the purchase
}

func (r Record) RecordDate() string {
	return r.PurchaseDate
}

func (r Record) RecordCategory() string {
	return r.Category
}

func (r Record) RecordAmount() decimal.Decimal {
	return r.Cost
}
