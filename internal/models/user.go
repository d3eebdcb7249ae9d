package models

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// User is a person using Basketwise.
//
// HouseholdID is a cached pointer to the household the user belongs to.
// It may be missing or stale, memberships are the source of truth.
type User struct {
	DefaultModel
	Email       string `gorm:"uniqueIndex"`
	Name        string
	HouseholdID *uuid.UUID
	Currency    *string
	Admin       bool
	TokenHash   string `json:"-" gorm:"uniqueIndex"`
}

func (User) Self() string {
	return "User"
}

// HashToken returns the hex encoded SHA-256 hash of a bearer token.
func HashToken(token string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(token)))
}

// NewToken returns a new random bearer token.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// NormalizeCurrency validates an ISO 4217 currency code and returns
// it in its canonical upper case form.
func NormalizeCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", ErrCurrencyInvalid
	}

	return unit.String(), nil
}

// Validate checks the user and normalizes its fields.
func (u *User) Validate() error {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if u.Currency != nil {
		if *u.Currency == "" {
			u.Currency = nil
			return nil
		}

		c, err := NormalizeCurrency(*u.Currency)
		if err != nil {
			return err
		}
		u.Currency = &c
	}

	return nil
}

// BeforeCreate sets the ID and makes sure a token hash is always present
// so that users without a token can never authenticate.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.TokenHash == "" {
		u.TokenHash = HashToken(NewToken())
	}

	return u.DefaultModel.BeforeCreate(tx)
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	return u.Validate()
}
