package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to receipts from stores matching a
// glob pattern.
type CategoryRule struct {
	DefaultModel
	HouseholdID uuid.UUID
	Household   Household `json:"-"`
	Priority    uint
	Match       string
	Category    string
}

func (CategoryRule) Self() string {
	return "Category Rule"
}

// Matches reports whether the store name matches the rule. Matching
// ignores case.
func (r CategoryRule) Matches(store string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(store))
}

func (r *CategoryRule) Validate() error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	r.Category = NormalizeCategory(r.Category)
	if r.Category == "" {
		return ErrCategoryRuleCategoryEmpty
	}

	return nil
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	return r.Validate()
}

// ApplyCategoryRules returns the category of the first matching rule.
// Rules must be sorted by ascending priority.
func ApplyCategoryRules(rules []CategoryRule, store string) (string, bool) {
	for _, rule := range rules {
		if rule.Matches(store) {
			return rule.Category, true
		}
	}

	return "", false
}
