package household

import (
	"context"
	"errors"
	"strings"

	"github.com/basketwise/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoHousehold = errors.New("you are not a member of any household")

// Store implements all lookups with gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

func (s Store) LatestMembership(ctx context.Context, userID uuid.UUID) (*models.HouseholdMember, error) {
	var memberships []models.HouseholdMember
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}

	if len(memberships) == 0 {
		return nil, nil
	}

	return &memberships[0], nil
}

func (s Store) Memberships(ctx context.Context, householdID uuid.UUID) ([]models.HouseholdMember, error) {
	var memberships []models.HouseholdMember
	err := s.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at ASC").
		Find(&memberships).Error

	return memberships, err
}

func (s Store) User(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, err
}

func (s Store) Household(ctx context.Context, id uuid.UUID) (*models.Household, error) {
	var household models.Household
	err := s.db.WithContext(ctx).First(&household, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &household, nil
}

// IsMember reports whether the user is a member of the household.
func (s Store) IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.HouseholdMember{}).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		Count(&count).Error

	return count > 0, err
}

// Create creates a household with the user as its owner and makes it
// the user's current household.
func (s Store) Create(ctx context.Context, user *models.User, household models.Household) (models.Household, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&household).Error; err != nil {
			return err
		}

		return join(tx, user, household.ID, models.RoleOwner)
	})

	return household, err
}

// Join adds the user to the household with the invite code and makes it
// the user's current household.
func (s Store) Join(ctx context.Context, user *models.User, inviteCode string) (models.Household, error) {
	var household models.Household

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("invite_code = ?", strings.ToUpper(strings.TrimSpace(inviteCode))).First(&household).Error
		if err != nil {
			return err
		}

		return join(tx, user, household.ID, models.RoleMember)
	})

	return household, err
}

// Leave removes the user from their current household.
//
// The cached household of the user is cleared, so the next resolution
// falls back to the user's remaining memberships.
func (s Store) Leave(ctx context.Context, user *models.User) (uuid.UUID, error) {
	id, err := ResolveHouseholdID(ctx, user, s)
	if err != nil {
		return uuid.Nil, err
	}

	if id == nil {
		return uuid.Nil, ErrNoHousehold
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().
			Where("household_id = ? AND user_id = ?", *id, user.ID).
			Delete(&models.HouseholdMember{}).Error
		if err != nil {
			return err
		}

		return tx.Model(user).Update("household_id", nil).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	user.HouseholdID = nil
	return *id, nil
}

func join(tx *gorm.DB, user *models.User, householdID uuid.UUID, role models.MemberRole) error {
	err := tx.Create(&models.HouseholdMember{
		HouseholdID: householdID,
		UserID:      user.ID,
		Role:        role,
	}).Error
	if err != nil {
		return err
	}

	err = tx.Model(user).Update("household_id", householdID).Error
	if err != nil {
		return err
	}

	user.HouseholdID = &householdID
	return nil
}
