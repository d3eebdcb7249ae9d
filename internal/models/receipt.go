package models

import (
	"fmt"
	"strings"

	"github.com/basketwise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// UncategorizedCategory is used for spending without a category.
const UncategorizedCategory = "Uncategorized"

// Receipt is a single grocery purchase.
type Receipt struct {
	DefaultModel
	HouseholdID  uuid.UUID
	Household    Household `json:"-"`
	UserID       uuid.UUID
	User         User `json:"-"`
	Store        string
	PurchaseDate types.Date `gorm:"index"`
	Category     string
	Total        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note         string
	ImportHash   string `gorm:"index"`
}

func (Receipt) Self() string {
	return "Receipt"
}

// RecordDate returns the purchase date of the receipt.
func (r Receipt) RecordDate() string {
	return r.PurchaseDate.String()
}

// RecordCategory returns the category, falling back to UncategorizedCategory.
func (r Receipt) RecordCategory() string {
	if r.Category == "" {
		return UncategorizedCategory
	}
	return r.Category
}

// RecordAmount returns the total of the receipt.
func (r Receipt) RecordAmount() decimal.Decimal {
	return r.Total
}

// Hash returns a hash identifying the purchase, used to detect duplicate imports.
func (r Receipt) Hash() string {
	return HashToken(fmt.Sprintf("%s|%s|%s|%s", r.HouseholdID, r.PurchaseDate, strings.ToLower(r.Store), r.Total.String()))
}

// NormalizeCategory collapses whitespace and title cases a category name.
func NormalizeCategory(category string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(category), " "))
}

func (r *Receipt) Validate() error {
	if r.Total.IsNegative() {
		return ErrNegativeAmount
	}

	r.Store = strings.TrimSpace(r.Store)
	r.Category = NormalizeCategory(r.Category)
	return nil
}

func (r *Receipt) BeforeSave(_ *gorm.DB) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.ImportHash == "" {
		r.ImportHash = r.Hash()
	}

	return nil
}
