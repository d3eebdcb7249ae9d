package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRole is the role of a user in a household.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)

// Household is a group of users sharing receipts and budgets.
type Household struct {
	DefaultModel
	Name       string
	Currency   string
	InviteCode string `gorm:"uniqueIndex"`
}

func (Household) Self() string {
	return "Household"
}

// NewInviteCode returns a new random invite code.
func NewInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func (h *Household) Validate() error {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return ErrHouseholdNameEmpty
	}

	if h.Currency != "" {
		c, err := NormalizeCurrency(h.Currency)
		if err != nil {
			return err
		}
		h.Currency = c
	}

	return nil
}

func (h *Household) BeforeCreate(tx *gorm.DB) error {
	if h.InviteCode == "" {
		h.InviteCode = NewInviteCode()
	}

	return h.DefaultModel.BeforeCreate(tx)
}

func (h *Household) BeforeSave(_ *gorm.DB) error {
	return h.Validate()
}

// HouseholdMember links a user to a household.
//
// Memberships are deleted permanently when a user leaves so that
// they can join again later.
type HouseholdMember struct {
	DefaultModel
	HouseholdID uuid.UUID  `gorm:"uniqueIndex:idx_household_member"`
	Household   Household  `json:"-"`
	UserID      uuid.UUID  `gorm:"uniqueIndex:idx_household_member"`
	User        User       `json:"-"`
	Role        MemberRole `gorm:"default:member"`
}

func (HouseholdMember) Self() string {
	return "Household Member"
}

func (m *HouseholdMember) BeforeSave(_ *gorm.DB) error {
	switch m.Role {
	case "":
		m.Role = RoleMember
	case RoleOwner, RoleMember:
	default:
		return ErrMemberRoleInvalid
	}

	return nil
}
