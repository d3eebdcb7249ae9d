package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInvalidReference = errors.New("a resource ID you specified does not identify an existing resource")
)

// User errors
var (
	ErrUserEmailEmpty     = errors.New("the email address must not be empty")
	ErrUserEmailNotUnique = errors.New("the email address is already in use")
	ErrCurrencyInvalid    = errors.New("the currency is not a valid ISO 4217 code")
)

// Household errors
var (
	ErrHouseholdNameEmpty = errors.New("the household name must not be empty")
	ErrAlreadyMember      = errors.New("the user is already a member of this household")
	ErrMemberRoleInvalid  = errors.New("the role must be either 'owner' or 'member'")
)

// Budget errors
var (
	ErrBudgetPeriodInvalid = errors.New("the period start must not be after the period end")
	ErrNegativeAmount      = errors.New("amounts must not be negative")
)

// InflationRate errors
var (
	ErrInflationRateNotUnique = errors.New("there already is an inflation rate for this month and category")
	ErrInflationRateNoMonth   = errors.New("the month of an inflation rate must be set")
)

// CategoryRule errors
var (
	ErrCategoryRuleMatchEmpty    = errors.New("the match pattern of a category rule must not be empty")
	ErrCategoryRuleCategoryEmpty = errors.New("the category of a category rule must not be empty")
)
